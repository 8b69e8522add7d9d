package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/notargets/gocalix/model"
)

// From here: https://su2code.github.io/docs_v7/Mesh-File/
type SU2ElementType uint8

const (
	ELType_LINE          SU2ElementType = 3
	ELType_Triangle      SU2ElementType = 5
	ELType_Quadrilateral SU2ElementType = 9
	ELType_Tetrahedral   SU2ElementType = 10
	ELType_Hexahedral    SU2ElementType = 12
	ELType_Prism         SU2ElementType = 13
	ELType_Pyramid       SU2ElementType = 14
)

var su2NodeCount = map[SU2ElementType]int{
	ELType_LINE:          2,
	ELType_Triangle:      3,
	ELType_Quadrilateral: 4,
	ELType_Tetrahedral:   4,
	ELType_Hexahedral:    8,
	ELType_Prism:         6,
	ELType_Pyramid:       5,
}

// DefaultElementTypes is the CalculiX element written for each SU2 volume
// element. Planar meshes become plane stress elements.
var DefaultElementTypes = map[SU2ElementType]string{
	ELType_Triangle:      "CPS3",
	ELType_Quadrilateral: "CPS4",
	ELType_Tetrahedral:   "C3D4",
	ELType_Hexahedral:    "C3D8",
	ELType_Prism:         "C3D6",
}

// SU2Mesh is a mesh read from an SU2 file, numbered from 1. Every marker
// becomes a node set holding the nodes of its boundary elements.
type SU2Mesh struct {
	Dimensions  int
	Mesh        model.Mesh
	NodeSets    []model.NodeSet
	ElementSets []model.ElementSet
}

// AllElements names the element set holding every element of the mesh
const AllElements = "Eall"

func ReadSU2File(filename string, elementTypes map[SU2ElementType]string) (*SU2Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to open file %s: %w", filename, err)
	}
	defer file.Close()
	sm, err := ReadSU2(file, elementTypes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return sm, nil
}

// ReadSU2 reads an SU2 mesh. elementTypes overrides DefaultElementTypes.
func ReadSU2(r io.Reader, elementTypes map[SU2ElementType]string) (sm *SU2Mesh, err error) {
	var (
		reader = bufio.NewReader(r)
		nPts   = -1
	)
	sm = &SU2Mesh{}
	if sm.Dimensions, err = readNumber(reader, "NDIME"); err != nil {
		return nil, err
	}
	if sm.Dimensions != 2 && sm.Dimensions != 3 {
		return nil, fmt.Errorf("NDIME must be 2 or 3, have %d", sm.Dimensions)
	}
	for {
		var key, value string
		if key, value, err = getToken(reader); err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		switch key {
		case "NELEM":
			if err = sm.readElements(reader, value, elementTypes); err != nil {
				return nil, err
			}
		case "NPOIN":
			if nPts, err = sm.readVertices(reader, value); err != nil {
				return nil, err
			}
		case "NMARK":
			if err = sm.readMarkers(reader, value); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unexpected section %s", key)
		}
	}
	if nPts < 0 {
		return nil, fmt.Errorf("no NPOIN section")
	}
	if len(sm.Mesh.Blocks) == 0 {
		return nil, fmt.Errorf("no NELEM section")
	}
	if err = sm.checkConnectivity(nPts); err != nil {
		return nil, err
	}
	return sm, nil
}

func (sm *SU2Mesh) readElements(reader *bufio.Reader, value string, elementTypes map[SU2ElementType]string) error {
	K, err := parseCount("NELEM", value)
	if err != nil {
		return err
	}
	blocks := make(map[string]int)
	all := model.ElementSet{Name: AllElements, IDs: make([]int, 0, K)}
	for k := 0; k < K; k++ {
		nType, verts, err := readElement(reader)
		if err != nil {
			return fmt.Errorf("element %d: %w", k, err)
		}
		ccxType := elementTypes[nType]
		if ccxType == "" {
			ccxType = DefaultElementTypes[nType]
		}
		if ccxType == "" {
			return fmt.Errorf("element %d: SU2 element type %d has no CalculiX equivalent", k, nType)
		}
		ind, ok := blocks[ccxType]
		if !ok {
			ind = len(sm.Mesh.Blocks)
			blocks[ccxType] = ind
			sm.Mesh.Blocks = append(sm.Mesh.Blocks, model.ElementBlock{Type: ccxType})
		}
		for i := range verts {
			verts[i]++
		}
		sm.Mesh.Blocks[ind].Elements = append(sm.Mesh.Blocks[ind].Elements, model.Element{ID: k + 1, Nodes: verts})
		all.IDs = append(all.IDs, k+1)
	}
	sm.ElementSets = append(sm.ElementSets, all)
	return nil
}

func (sm *SU2Mesh) readVertices(reader *bufio.Reader, value string) (int, error) {
	Nv, err := parseCount("NPOIN", value)
	if err != nil {
		return 0, err
	}
	sm.Mesh.Nodes = make([]model.Node, Nv)
	for i := 0; i < Nv; i++ {
		line, err := getLineNoComments(reader)
		if err != nil {
			return 0, err
		}
		fields := strings.Fields(line)
		if len(fields) < sm.Dimensions {
			return 0, fmt.Errorf("point %d: unable to read coordinates from [%s]", i, line)
		}
		var x [3]float64
		for d := 0; d < sm.Dimensions; d++ {
			if x[d], err = strconv.ParseFloat(fields[d], 64); err != nil {
				return 0, fmt.Errorf("point %d: %w", i, err)
			}
		}
		sm.Mesh.Nodes[i] = model.Node{ID: i + 1, X: x[0], Y: x[1], Z: x[2]}
	}
	return Nv, nil
}

// readMarkers collects marker nodes into node sets, markers sharing a tag
// are merged into one set
func (sm *SU2Mesh) readMarkers(reader *bufio.Reader, value string) error {
	NBCs, err := parseCount("NMARK", value)
	if err != nil {
		return err
	}
	sets := make(map[string]map[int]struct{}, NBCs)
	var order []string
	for n := 0; n < NBCs; n++ {
		label, err := readLabel(reader, "MARKER_TAG")
		if err != nil {
			return err
		}
		name := setName(label)
		if _, ok := sets[name]; !ok {
			sets[name] = make(map[int]struct{})
			order = append(order, name)
		}
		nEdges, err := readNumber(reader, "MARKER_ELEMS")
		if err != nil {
			return fmt.Errorf("marker %s: %w", label, err)
		}
		for i := 0; i < nEdges; i++ {
			_, verts, err := readElement(reader)
			if err != nil {
				return fmt.Errorf("marker %s: %w", label, err)
			}
			for _, v := range verts {
				sets[name][v+1] = struct{}{}
			}
		}
	}
	for _, name := range order {
		ids := make([]int, 0, len(sets[name]))
		for id := range sets[name] {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		sm.NodeSets = append(sm.NodeSets, model.NodeSet{Name: name, IDs: ids})
	}
	return nil
}

func (sm *SU2Mesh) checkConnectivity(nPts int) error {
	for _, b := range sm.Mesh.Blocks {
		for _, e := range b.Elements {
			for _, v := range e.Nodes {
				if v < 1 || v > nPts {
					return fmt.Errorf("element %d references point %d, mesh has %d points", e.ID, v-1, nPts)
				}
			}
		}
	}
	for _, ns := range sm.NodeSets {
		for _, v := range ns.IDs {
			if v < 1 || v > nPts {
				return fmt.Errorf("marker %s references point %d, mesh has %d points", ns.Name, v-1, nPts)
			}
		}
	}
	return nil
}

// AddTo places the mesh ahead of the nodes, elements and sets already in m
func (sm *SU2Mesh) AddTo(m *model.Model) {
	m.Mesh.Nodes = append(sm.Mesh.Nodes, m.Mesh.Nodes...)
	m.Mesh.Blocks = append(sm.Mesh.Blocks, m.Mesh.Blocks...)
	m.NodeSets = append(sm.NodeSets, m.NodeSets...)
	m.ElementSets = append(sm.ElementSets, m.ElementSets...)
}

// setName turns a marker tag into a CalculiX set name
func setName(label string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, label)
}

func readElement(reader *bufio.Reader) (nType SU2ElementType, verts []int, err error) {
	line, err := getLineNoComments(reader)
	if err != nil {
		return 0, nil, err
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, nil, fmt.Errorf("empty element line")
	}
	t, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, nil, fmt.Errorf("unable to read element type from [%s]", line)
	}
	nType = SU2ElementType(t)
	nv, ok := su2NodeCount[nType]
	if !ok {
		return 0, nil, fmt.Errorf("unknown SU2 element type %d", t)
	}
	if len(fields) < nv+1 {
		return 0, nil, fmt.Errorf("unable to read %d vertices from [%s]", nv, line)
	}
	verts = make([]int, nv)
	for i := range verts {
		if verts[i], err = strconv.Atoi(fields[i+1]); err != nil {
			return 0, nil, fmt.Errorf("unable to read vertices from [%s]", line)
		}
	}
	return nType, verts, nil
}

func parseCount(key, value string) (num int, err error) {
	if num, err = strconv.Atoi(strings.TrimSpace(value)); err != nil || num < 0 {
		return 0, fmt.Errorf("unable to read number from %s= [%s]", key, value)
	}
	return num, nil
}

func readNumber(reader *bufio.Reader, want string) (int, error) {
	key, value, err := getToken(reader)
	if err == io.EOF {
		return 0, fmt.Errorf("early end of file, expected %s", want)
	} else if err != nil {
		return 0, err
	}
	if key != want {
		return 0, fmt.Errorf("expected %s, found %s", want, key)
	}
	return parseCount(key, value)
}

func readLabel(reader *bufio.Reader, want string) (string, error) {
	key, value, err := getToken(reader)
	if err == io.EOF {
		return "", fmt.Errorf("early end of file, expected %s", want)
	} else if err != nil {
		return "", err
	}
	label := strings.TrimSpace(value)
	if key != want || label == "" {
		return "", fmt.Errorf("expected %s= <label>, found [%s= %s]", want, key, value)
	}
	return label, nil
}

// getToken splits the next KEY= value line, returning io.EOF at the end of the file
func getToken(reader *bufio.Reader) (key, value string, err error) {
	var line string
	for line == "" {
		if line, err = getLine(reader); err != nil {
			return
		}
		line = stripComment(line)
	}
	ind := strings.Index(line, "=")
	if ind < 0 {
		return "", "", fmt.Errorf("badly formed input line [%s], should have an =", line)
	}
	return strings.TrimSpace(line[:ind]), line[ind+1:], nil
}

func getLineNoComments(reader *bufio.Reader) (line string, err error) {
	for line == "" {
		if line, err = getLine(reader); err == io.EOF {
			return "", fmt.Errorf("early end of file")
		} else if err != nil {
			return "", err
		}
		line = stripComment(line)
	}
	return line, nil
}

func stripComment(line string) string {
	if ind := strings.Index(line, "%"); ind >= 0 {
		line = line[:ind]
	}
	return strings.TrimSpace(line)
}

// getLine returns the next line without its terminator, io.EOF once the file is exhausted
func getLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
