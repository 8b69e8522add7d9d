package units

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/unit"
)

// Quantity is the physical kind of a scalar value in the analysis model
type Quantity uint8

const (
	Dimensionless Quantity = iota
	Length
	Area
	Volume
	Mass
	Time
	Temperature
	Force
	Moment
	Pressure
	Density
	Energy
	Power
	Velocity
	Acceleration
	Angle
	RotationalSpeed
	ForcePerLength
	ThermalExpansion
	ThermalConductivity
	SpecificHeat
	HeatFlux
	BodyHeatFlux
	HeatTransferCoefficient
	numQuantities
)

var quantityNames = [numQuantities]string{
	"Dimensionless", "Length", "Area", "Volume", "Mass", "Time", "Temperature",
	"Force", "Moment", "Pressure", "Density", "Energy", "Power", "Velocity",
	"Acceleration", "Angle", "RotationalSpeed", "ForcePerLength",
	"ThermalExpansion", "ThermalConductivity", "SpecificHeat", "HeatFlux",
	"BodyHeatFlux", "HeatTransferCoefficient",
}

func (q Quantity) String() string {
	if q < numQuantities {
		return quantityNames[q]
	}
	return "Unknown"
}

// ParseQuantityKind looks up a quantity kind by name, case-insensitive
func ParseQuantityKind(name string) (Quantity, bool) {
	name = strings.TrimSpace(name)
	for i, qn := range quantityNames {
		if strings.EqualFold(qn, name) {
			return Quantity(i), true
		}
	}
	if strings.EqualFold(name, "stress") {
		return Pressure, true
	}
	return Dimensionless, false
}

const (
	mass = unit.MassDim
	leng = unit.LengthDim
	tim  = unit.TimeDim
	temp = unit.TemperatureDim
	ang  = unit.AngleDim
)

type dm = unit.Dimensions

var quantityDims = [numQuantities]unit.Dimensions{
	Dimensionless:           {},
	Length:                  dm{leng: 1},
	Area:                    dm{leng: 2},
	Volume:                  dm{leng: 3},
	Mass:                    dm{mass: 1},
	Time:                    dm{tim: 1},
	Temperature:             dm{temp: 1},
	Force:                   dm{mass: 1, leng: 1, tim: -2},
	Moment:                  dm{mass: 1, leng: 2, tim: -2},
	Pressure:                dm{mass: 1, leng: -1, tim: -2},
	Density:                 dm{mass: 1, leng: -3},
	Energy:                  dm{mass: 1, leng: 2, tim: -2},
	Power:                   dm{mass: 1, leng: 2, tim: -3},
	Velocity:                dm{leng: 1, tim: -1},
	Acceleration:            dm{leng: 1, tim: -2},
	Angle:                   dm{ang: 1},
	RotationalSpeed:         dm{ang: 1, tim: -1},
	ForcePerLength:          dm{mass: 1, tim: -2},
	ThermalExpansion:        dm{temp: -1},
	ThermalConductivity:     dm{mass: 1, leng: 1, tim: -3, temp: -1},
	SpecificHeat:            dm{leng: 2, tim: -2, temp: -1},
	HeatFlux:                dm{mass: 1, tim: -3},
	BodyHeatFlux:            dm{mass: 1, leng: -1, tim: -3},
	HeatTransferCoefficient: dm{mass: 1, tim: -3, temp: -1},
}

// Dimensions returns the physical dimensions of the quantity kind
func (q Quantity) Dimensions() unit.Dimensions {
	if q < numQuantities {
		return quantityDims[q]
	}
	return nil
}

// Definition converts a unit to SI: si = value*Factor + Offset
type Definition struct {
	Abbreviation string
	Factor       float64
	Offset       float64
	Dims         unit.Dimensions
}

// ToSI converts a value expressed in this unit to the SI base unit
func (d Definition) ToSI(v float64) float64 { return v*d.Factor + d.Offset }

// FromSI converts an SI value to this unit
func (d Definition) FromSI(v float64) float64 { return (v - d.Offset) / d.Factor }

// Unit returns the gonum representation of one of this unit in SI
func (d Definition) Unit() *unit.Unit { return unit.New(d.Factor, d.Dims) }

const (
	inch  = 0.0254
	pound = 0.45359237
	lbf   = 4.4482216152605
	slinc = lbf / inch // mass unit of the inch-pound-second system
	degF  = 5. / 9.
)

var definitions = map[string]Definition{}

func define(q Quantity, factor, offset float64, abbreviations ...string) {
	for _, a := range abbreviations {
		definitions[a] = Definition{Abbreviation: a, Factor: factor, Offset: offset, Dims: q.Dimensions()}
	}
}

func init() {
	define(Length, 1, 0, "m")
	define(Length, 1e-3, 0, "mm")
	define(Length, 1e-2, 0, "cm")
	define(Length, 1e-6, 0, "um", "µm")
	define(Length, 1e3, 0, "km")
	define(Length, inch, 0, "in")
	define(Length, 12*inch, 0, "ft")

	define(Area, 1, 0, "m^2")
	define(Area, 1e-6, 0, "mm^2")
	define(Area, 1e-4, 0, "cm^2")
	define(Area, inch*inch, 0, "in^2")

	define(Volume, 1, 0, "m^3")
	define(Volume, 1e-9, 0, "mm^3")
	define(Volume, 1e-6, 0, "cm^3")
	define(Volume, 1e-3, 0, "l")
	define(Volume, inch*inch*inch, 0, "in^3")

	define(Mass, 1, 0, "kg")
	define(Mass, 1e-3, 0, "g")
	define(Mass, 1e3, 0, "t")
	define(Mass, pound, 0, "lb")
	define(Mass, slinc, 0, "lbf*s^2/in")

	define(Time, 1, 0, "s")
	define(Time, 1e-3, 0, "ms")
	define(Time, 60, 0, "min")
	define(Time, 3600, 0, "h")

	define(Temperature, 1, 0, "K")
	define(Temperature, 1, 273.15, "°C", "C", "degC")
	define(Temperature, degF, 459.67*degF, "°F", "F", "degF")

	define(Force, 1, 0, "N")
	define(Force, 1e-3, 0, "mN")
	define(Force, 1e3, 0, "kN")
	define(Force, 1e6, 0, "MN")
	define(Force, lbf, 0, "lbf")
	define(Force, 1e3*lbf, 0, "kip")

	define(Moment, 1, 0, "N*m")
	define(Moment, 1e-3, 0, "N*mm")
	define(Moment, 1e3, 0, "kN*m")
	define(Moment, lbf*inch, 0, "lbf*in")

	define(Pressure, 1, 0, "Pa")
	define(Pressure, 1e3, 0, "kPa")
	define(Pressure, 1e6, 0, "MPa", "N/mm^2")
	define(Pressure, 1e9, 0, "GPa")
	define(Pressure, 1e5, 0, "bar")
	define(Pressure, lbf/(inch*inch), 0, "psi")
	define(Pressure, 1e3*lbf/(inch*inch), 0, "ksi")

	define(Density, 1, 0, "kg/m^3")
	define(Density, 1e12, 0, "t/mm^3")
	define(Density, 1e3, 0, "g/cm^3")
	define(Density, pound/(inch*inch*inch), 0, "lb/in^3")
	define(Density, slinc/(inch*inch*inch), 0, "lbf*s^2/in^4")

	define(Energy, 1, 0, "J")
	define(Energy, 1e-3, 0, "mJ")
	define(Energy, 1e3, 0, "kJ")
	define(Energy, lbf*inch, 0, "in*lbf")

	define(Power, 1, 0, "W")
	define(Power, 1e-3, 0, "mW")
	define(Power, 1e3, 0, "kW")
	define(Power, lbf*inch, 0, "in*lbf/s")

	define(Velocity, 1, 0, "m/s")
	define(Velocity, 1e-3, 0, "mm/s")
	define(Velocity, inch, 0, "in/s")

	define(Acceleration, 1, 0, "m/s^2")
	define(Acceleration, 1e-3, 0, "mm/s^2")
	define(Acceleration, inch, 0, "in/s^2")

	define(Angle, 1, 0, "rad")
	define(Angle, math.Pi/180, 0, "deg", "°")

	define(RotationalSpeed, 1, 0, "rad/s")
	define(RotationalSpeed, 2*math.Pi/60, 0, "rpm")

	define(ForcePerLength, 1, 0, "N/m")
	define(ForcePerLength, 1e3, 0, "N/mm")
	define(ForcePerLength, lbf/inch, 0, "lbf/in")

	define(ThermalExpansion, 1, 0, "1/K", "1/°C", "1/C")
	define(ThermalExpansion, 1/degF, 0, "1/°F", "1/F")

	define(ThermalConductivity, 1, 0, "W/(m*K)", "W/(m*°C)", "mW/(mm*°C)", "mW/(mm*K)")
	define(ThermalConductivity, lbf/degF, 0, "lbf/(s*°F)")

	define(SpecificHeat, 1, 0, "J/(kg*K)", "J/(kg*°C)")
	define(SpecificHeat, 1e-6, 0, "mJ/(t*°C)", "mJ/(t*K)")
	define(SpecificHeat, inch*inch/degF, 0, "in^2/(s^2*°F)")

	define(HeatFlux, 1, 0, "W/m^2")
	define(HeatFlux, 1e3, 0, "mW/mm^2")
	define(HeatFlux, lbf/inch, 0, "lbf/(in*s)")

	define(BodyHeatFlux, 1, 0, "W/m^3")
	define(BodyHeatFlux, 1e6, 0, "mW/mm^3")
	define(BodyHeatFlux, lbf/(inch*inch), 0, "lbf/(in^2*s)")

	define(HeatTransferCoefficient, 1, 0, "W/(m^2*K)", "W/(m^2*°C)")
	define(HeatTransferCoefficient, 1e3, 0, "mW/(mm^2*°C)", "mW/(mm^2*K)")
	define(HeatTransferCoefficient, lbf/inch/degF, 0, "lbf/(in*s*°F)")
}

// Lookup finds a unit definition by abbreviation
func Lookup(abbreviation string) (Definition, bool) {
	d, ok := definitions[normalize(abbreviation)]
	return d, ok
}

var unitReplacer = strings.NewReplacer(
	" ", "",
	"\t", "",
	"·", "*",
	"²", "^2",
	"³", "^3",
	"⁴", "^4",
	"deg C", "°C",
	"deg F", "°F",
)

func normalize(abbreviation string) string {
	return unitReplacer.Replace(strings.TrimSpace(abbreviation))
}
