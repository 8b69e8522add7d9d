package model

type PressureOverclosure uint8

const (
	Overclosure_Hard PressureOverclosure = iota
	Overclosure_Linear
	Overclosure_Exponential
	Overclosure_Tabular
	Overclosure_Tied
)

func (p PressureOverclosure) String() string {
	switch p {
	case Overclosure_Linear:
		return "Linear"
	case Overclosure_Exponential:
		return "Exponential"
	case Overclosure_Tabular:
		return "Tabular"
	case Overclosure_Tied:
		return "Tied"
	}
	return "Hard"
}

// SurfaceBehavior parameters: Linear (K, sigma_inf, c0), Exponential (c0, p0),
// Tied (K); Tabular uses Table rows of (pressure, overclosure)
type SurfaceBehavior struct {
	PressureOverclosure PressureOverclosure
	Parameters          []float64
	Table               [][2]float64
}

type Friction struct {
	Coefficient float64
	StickSlope  float64
}

type GapConductanceRow struct{ Conductance, Pressure, Temperature float64 }

type SurfaceInteraction struct {
	Name           string
	Behavior       *SurfaceBehavior
	Friction       *Friction
	GapConductance []GapConductanceRow
}

type ContactType uint8

const (
	Contact_NodeToSurface ContactType = iota
	Contact_SurfaceToSurface
	Contact_Mortar
)

func (c ContactType) String() string {
	switch c {
	case Contact_SurfaceToSurface:
		return "Surface to surface"
	case Contact_Mortar:
		return "Mortar"
	}
	return "Node to surface"
}

type ContactPair struct {
	Name        string
	Interaction string
	Type        ContactType
	Master      string
	Slave       string
	Adjust      float64 // adjust slave nodes closer than this, 0 = no adjust
}

type Tie struct {
	Name              string
	Master            string
	Slave             string
	PositionTolerance float64 // 0 = solver default
	NoAdjust          bool
}
