package model

// Temperature dependent material data is given as rows; a property whose rows
// span more than one temperature is written with the temperature in the last column.

type DensityRow struct{ Density, Temperature float64 }

type ElasticRow struct{ Young, Poisson, Temperature float64 }

type ExpansionRow struct{ Alpha, Temperature float64 }

type ConductivityRow struct{ Conductivity, Temperature float64 }

type SpecificHeatRow struct{ SpecificHeat, Temperature float64 }

type PlasticRow struct{ YieldStress, PlasticStrain, Temperature float64 }

type Hardening uint8

const (
	Hardening_Isotropic Hardening = iota
	Hardening_Kinematic
	Hardening_Combined
)

func (h Hardening) String() string {
	switch h {
	case Hardening_Kinematic:
		return "Kinematic"
	case Hardening_Combined:
		return "Combined"
	}
	return "Isotropic"
}

type Material struct {
	Name         string
	Density      []DensityRow
	Elastic      []ElasticRow
	Expansion    []ExpansionRow
	ExpansionRef *float64 // zero-strain reference temperature
	Conductivity []ConductivityRow
	SpecificHeat []SpecificHeatRow
	Plastic      []PlasticRow
	Hardening    Hardening
}
