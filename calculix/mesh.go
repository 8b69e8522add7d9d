package calculix

import (
	"strconv"
	"strings"

	"github.com/notargets/gocalix/model"
)

type Nodes struct {
	Nodes []model.Node
}

func (n *Nodes) KeywordString() string { return "*Node" + EOL }
func (n *Nodes) DataString() string {
	var sb strings.Builder
	for _, node := range n.Nodes {
		sb.WriteString(line(strconv.Itoa(node.ID), formatFloat(node.X), formatFloat(node.Y), formatFloat(node.Z)))
	}
	return sb.String()
}

type Elements struct {
	Block model.ElementBlock
}

func NewElements(block model.ElementBlock) (*Elements, error) {
	if strings.TrimSpace(block.Type) == "" {
		return nil, unsupported("element block without an element type")
	}
	return &Elements{Block: block}, nil
}

func (e *Elements) KeywordString() string {
	kw := "*Element" + param("Type", e.Block.Type)
	if e.Block.ElementSet != "" {
		kw += param("Elset", e.Block.ElementSet)
	}
	return kw + EOL
}

func (e *Elements) DataString() string {
	var sb strings.Builder
	for _, el := range e.Block.Elements {
		entries := make([]string, 0, len(el.Nodes)+1)
		entries = append(entries, strconv.Itoa(el.ID))
		for _, n := range el.Nodes {
			entries = append(entries, strconv.Itoa(n))
		}
		sb.WriteString(continuedLine(entries))
	}
	return sb.String()
}

type NodeSet struct {
	Set model.NodeSet
}

func NewNodeSet(set model.NodeSet) (*NodeSet, error) {
	if len(set.IDs) == 0 {
		return nil, unsupported("node set %q has no nodes", set.Name)
	}
	return &NodeSet{Set: set}, nil
}

func (n *NodeSet) KeywordString() string { return "*Nset" + param("Nset", n.Set.Name) + EOL }
func (n *NodeSet) DataString() string    { return idLines(n.Set.IDs) }

type ElementSet struct {
	Set model.ElementSet
}

func NewElementSet(set model.ElementSet) (*ElementSet, error) {
	if len(set.IDs) == 0 {
		return nil, unsupported("element set %q has no elements", set.Name)
	}
	return &ElementSet{Set: set}, nil
}

func (e *ElementSet) KeywordString() string { return "*Elset" + param("Elset", e.Set.Name) + EOL }
func (e *ElementSet) DataString() string    { return idLines(e.Set.IDs) }

type Surface struct {
	Surface model.Surface
}

func NewSurface(s model.Surface) (*Surface, error) {
	switch s.Type {
	case model.Surface_Element:
		if len(s.Faces) == 0 {
			return nil, unsupported("element surface %q has no faces", s.Name)
		}
	case model.Surface_Node:
		if s.NodeSet == "" {
			return nil, unsupported("node surface %q has no node set", s.Name)
		}
	default:
		return nil, unsupported("surface %q has unknown type %d", s.Name, s.Type)
	}
	return &Surface{Surface: s}, nil
}

func (s *Surface) KeywordString() string {
	typ := "Element"
	if s.Surface.Type == model.Surface_Node {
		typ = "Node"
	}
	return "*Surface" + param("Name", s.Surface.Name) + param("Type", typ) + EOL
}

func (s *Surface) DataString() string {
	if s.Surface.Type == model.Surface_Node {
		return line(s.Surface.NodeSet)
	}
	var sb strings.Builder
	for _, f := range s.Surface.Faces {
		sb.WriteString(line(f.Elements, f.Face))
	}
	return sb.String()
}
