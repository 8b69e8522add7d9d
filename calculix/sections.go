package calculix

import "github.com/notargets/gocalix/model"

type SolidSection struct {
	Section *model.SolidSection
}

func (s *SolidSection) KeywordString() string {
	return "*Solid section" + param("Elset", s.Section.ElementSet) + param("Material", s.Section.Material) + EOL
}
func (s *SolidSection) DataString() string {
	if s.Section.Thickness > 0 {
		return line(formatFloat(s.Section.Thickness))
	}
	return ""
}

type ShellSection struct {
	Section *model.ShellSection
}

func (s *ShellSection) KeywordString() string {
	kw := "*Shell section" + param("Elset", s.Section.ElementSet) + param("Material", s.Section.Material)
	if s.Section.Offset != 0 {
		kw += param("Offset", s.Section.Offset)
	}
	return kw + EOL
}
func (s *ShellSection) DataString() string { return line(formatFloat(s.Section.Thickness)) }

type MembraneSection struct {
	Section *model.MembraneSection
}

func (s *MembraneSection) KeywordString() string {
	kw := "*Membrane section" + param("Elset", s.Section.ElementSet) + param("Material", s.Section.Material)
	if s.Section.Offset != 0 {
		kw += param("Offset", s.Section.Offset)
	}
	return kw + EOL
}
func (s *MembraneSection) DataString() string { return line(formatFloat(s.Section.Thickness)) }

type BeamSection struct {
	Section   *model.BeamSection
	direction [3]float64
}

var beamDimensions = map[model.BeamShape]int{
	model.Beam_Rect: 2,
	model.Beam_Circ: 1,
	model.Beam_Pipe: 2,
	model.Beam_Box:  6,
}

func (s *BeamSection) KeywordString() string {
	return "*Beam section" + param("Elset", s.Section.ElementSet) + param("Material", s.Section.Material) +
		param("Section", s.Section.Shape) + EOL
}
func (s *BeamSection) DataString() string {
	return line(floats(s.Section.Dimensions...)...) + line(floats(s.direction[:]...)...)
}

// NewSection picks the section directive for a model section
func NewSection(sec model.Section) (Keyword, error) {
	switch s := sec.(type) {
	case *model.SolidSection:
		return &SolidSection{Section: s}, nil
	case *model.ShellSection:
		if s.Thickness <= 0 {
			return nil, unsupported("shell section %q needs a positive thickness", s.Name)
		}
		return &ShellSection{Section: s}, nil
	case *model.MembraneSection:
		if s.Thickness <= 0 {
			return nil, unsupported("membrane section %q needs a positive thickness", s.Name)
		}
		return &MembraneSection{Section: s}, nil
	case *model.BeamSection:
		want, ok := beamDimensions[s.Shape]
		if !ok {
			return nil, unsupported("beam section %q has unknown shape %d", s.Name, s.Shape)
		}
		if len(s.Dimensions) != want {
			return nil, unsupported("beam section %q of shape %s needs %d dimensions, has %d",
				s.Name, s.Shape, want, len(s.Dimensions))
		}
		dir, err := unit3("beam section "+s.Name, s.Direction)
		if err != nil {
			return nil, err
		}
		return &BeamSection{Section: s, direction: dir}, nil
	}
	return nil, unsupported("section %q of type %T", sec.Label(), sec)
}
