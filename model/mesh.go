package model

type Node struct {
	ID      int
	X, Y, Z float64
}

type Element struct {
	ID    int
	Nodes []int
}

// ElementBlock is a group of elements of one CalculiX element type
type ElementBlock struct {
	Type       string // C3D4, C3D10, S8R, B32...
	ElementSet string // optional
	Elements   []Element
}

type Mesh struct {
	Nodes  []Node
	Blocks []ElementBlock
}

type NodeSet struct {
	Name string
	IDs  []int
}

type ElementSet struct {
	Name string
	IDs  []int
}

type SurfaceType uint8

const (
	Surface_Element SurfaceType = iota
	Surface_Node
)

// SurfaceFace is one line of an element face surface: an element set (or
// element number) and a face label such as S1
type SurfaceFace struct {
	Elements string
	Face     string
}

type Surface struct {
	Name    string
	Type    SurfaceType
	Faces   []SurfaceFace // element surfaces
	NodeSet string        // node surfaces
}
