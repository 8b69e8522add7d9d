package model

// Section assigns a material and section geometry to an element set
type Section interface {
	Label() string
	Elset() string
}

type SolidSection struct {
	Name       string
	ElementSet string
	Material   string
	Thickness  float64 // plane stress/strain elements only, 0 = not written
}

type ShellSection struct {
	Name       string
	ElementSet string
	Material   string
	Thickness  float64
	Offset     float64
}

type MembraneSection struct {
	Name       string
	ElementSet string
	Material   string
	Thickness  float64
	Offset     float64
}

type BeamShape uint8

const (
	Beam_Rect BeamShape = iota
	Beam_Circ
	Beam_Pipe
	Beam_Box
)

func (b BeamShape) String() string {
	switch b {
	case Beam_Circ:
		return "Circ"
	case Beam_Pipe:
		return "Pipe"
	case Beam_Box:
		return "Box"
	}
	return "Rect"
}

// BeamSection dimensions follow the CalculiX order for the shape: Rect (a, b),
// Circ (r), Pipe (r, t), Box (a, b, t1, t2, t3, t4)
type BeamSection struct {
	Name       string
	ElementSet string
	Material   string
	Shape      BeamShape
	Dimensions []float64
	Direction  [3]float64 // first local beam axis
}

func (s *SolidSection) Label() string    { return s.Name }
func (s *ShellSection) Label() string    { return s.Name }
func (s *MembraneSection) Label() string { return s.Name }
func (s *BeamSection) Label() string     { return s.Name }

func (s *SolidSection) Elset() string    { return s.ElementSet }
func (s *ShellSection) Elset() string    { return s.ElementSet }
func (s *MembraneSection) Elset() string { return s.ElementSet }
func (s *BeamSection) Elset() string     { return s.ElementSet }
