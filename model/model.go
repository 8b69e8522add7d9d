package model

import (
	"fmt"

	"github.com/notargets/gocalix/units"
)

type PhysicalConstants struct {
	AbsoluteZero    float64
	StefanBoltzmann float64
}

// SubmodelDefinition names the global model result file driving SubmodelBCs
type SubmodelDefinition struct {
	NodeSet    string
	GlobalFile string
}

// Model is everything written to one CalculiX input deck
type Model struct {
	Title      string
	UnitSystem units.System
	Includes   []string // mesh files written by an external mesher

	Mesh        Mesh
	NodeSets    []NodeSet
	ElementSets []ElementSet
	Surfaces    []Surface

	Materials           []Material
	Sections            []Section
	SurfaceInteractions []SurfaceInteraction
	ContactPairs        []ContactPair
	Ties                []Tie
	InitialConditions   []InitialCondition
	PhysicalConstants   *PhysicalConstants
	Submodel            *SubmodelDefinition

	Steps []*Step
}

func NewModel(title string, system units.System) *Model {
	return &Model{Title: title, UnitSystem: system}
}

// Units returns the unit context values of this model are expressed in
func (m *Model) Units() units.Context {
	return units.NewContext(m.UnitSystem)
}

func (m *Model) NodeSet(name string) (*NodeSet, bool) {
	for i := range m.NodeSets {
		if m.NodeSets[i].Name == name {
			return &m.NodeSets[i], true
		}
	}
	return nil, false
}

func (m *Model) ContactPair(name string) (*ContactPair, bool) {
	for i := range m.ContactPairs {
		if m.ContactPairs[i].Name == name {
			return &m.ContactPairs[i], true
		}
	}
	return nil, false
}

func (m *Model) Material(name string) (*Material, bool) {
	for i := range m.Materials {
		if m.Materials[i].Name == name {
			return &m.Materials[i], true
		}
	}
	return nil, false
}

func (m *Model) SurfaceInteraction(name string) (*SurfaceInteraction, bool) {
	for i := range m.SurfaceInteractions {
		if m.SurfaceInteractions[i].Name == name {
			return &m.SurfaceInteractions[i], true
		}
	}
	return nil, false
}

func (m *Model) AddStep(s *Step) error {
	for _, existing := range m.Steps {
		if existing.Name == s.Name {
			return fmt.Errorf("%w: duplicate step name %q", ErrInvalidValue, s.Name)
		}
	}
	m.Steps = append(m.Steps, s)
	return nil
}

// Validate checks references between model objects and every step
func (m *Model) Validate() error {
	for _, sec := range m.Sections {
		var material string
		switch s := sec.(type) {
		case *SolidSection:
			material = s.Material
		case *ShellSection:
			material = s.Material
		case *MembraneSection:
			material = s.Material
		case *BeamSection:
			material = s.Material
		default:
			return fmt.Errorf("%w: section %q of type %T", ErrUnsupportedKind, sec.Label(), sec)
		}
		if _, ok := m.Material(material); !ok {
			return fmt.Errorf("%w: section %q references unknown material %q", ErrInvalidValue, sec.Label(), material)
		}
	}
	for _, cp := range m.ContactPairs {
		if _, ok := m.SurfaceInteraction(cp.Interaction); !ok {
			return fmt.Errorf("%w: contact pair %q references unknown surface interaction %q",
				ErrInvalidValue, cp.Name, cp.Interaction)
		}
	}
	names := make(map[string]bool)
	for _, s := range m.Steps {
		if names[s.Name] {
			return fmt.Errorf("%w: duplicate step name %q", ErrInvalidValue, s.Name)
		}
		names[s.Name] = true
		if err := s.Validate(); err != nil {
			return err
		}
		for _, o := range s.HistoryOutputs {
			if ch, ok := o.(*ContactHistoryOutput); ok {
				if _, found := m.ContactPair(ch.ContactPair); !found {
					return fmt.Errorf("%w: output %q references unknown contact pair %q",
						ErrInvalidValue, ch.Name, ch.ContactPair)
				}
			}
		}
		for _, l := range s.Loads {
			if st, ok := l.(*STLoad); ok {
				if ns, found := m.NodeSet(st.NodeSet); !found || len(ns.IDs) == 0 {
					return fmt.Errorf("%w: surface traction %q needs the nodes of node set %q",
						ErrUnsupportedCombination, st.Name, st.NodeSet)
				}
			}
		}
		for _, bc := range s.BoundaryConditions {
			if _, ok := bc.(*SubmodelBC); ok && m.Submodel == nil {
				return fmt.Errorf("%w: submodel boundary condition %q without a submodel definition",
					ErrUnsupportedCombination, bc.Label())
			}
		}
	}
	return nil
}
