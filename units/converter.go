package units

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/unit"
)

// ErrParse is returned for strings that are neither a number nor a quantity expression
var ErrParse = errors.New("unable to parse quantity")

// System is a consistent set of units the solver input is written in
type System uint8

const (
	Unitless System = iota
	MM_TON_S_C
	M_KG_S_C
	M_KG_S_K
	IN_LB_S_F
	numSystems
)

var systemNames = [numSystems]string{"Unitless", "MM_TON_S_C", "M_KG_S_C", "M_KG_S_K", "IN_LB_S_F"}

func (s System) String() string {
	if s < numSystems {
		return systemNames[s]
	}
	return "Unknown"
}

// ParseSystem converts a unit system name to a System, matching is case-insensitive
func ParseSystem(name string) (System, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Unitless, nil
	}
	for i, sn := range systemNames {
		if strings.EqualFold(sn, name) {
			return System(i), nil
		}
	}
	return Unitless, fmt.Errorf("unknown unit system %q, expected one of %v", name, systemNames)
}

// Abbreviations of the unit used for each quantity kind, per unit system
var systemUnits = [numSystems]map[Quantity]string{
	Unitless: {},
	MM_TON_S_C: {
		Length: "mm", Area: "mm^2", Volume: "mm^3", Mass: "t", Time: "s", Temperature: "°C",
		Force: "N", Moment: "N*mm", Pressure: "MPa", Density: "t/mm^3", Energy: "mJ",
		Power: "mW", Velocity: "mm/s", Acceleration: "mm/s^2", Angle: "rad",
		RotationalSpeed: "rad/s", ForcePerLength: "N/mm", ThermalExpansion: "1/°C",
		ThermalConductivity: "mW/(mm*°C)", SpecificHeat: "mJ/(t*°C)", HeatFlux: "mW/mm^2",
		BodyHeatFlux: "mW/mm^3", HeatTransferCoefficient: "mW/(mm^2*°C)",
	},
	M_KG_S_C: {
		Length: "m", Area: "m^2", Volume: "m^3", Mass: "kg", Time: "s", Temperature: "°C",
		Force: "N", Moment: "N*m", Pressure: "Pa", Density: "kg/m^3", Energy: "J",
		Power: "W", Velocity: "m/s", Acceleration: "m/s^2", Angle: "rad",
		RotationalSpeed: "rad/s", ForcePerLength: "N/m", ThermalExpansion: "1/°C",
		ThermalConductivity: "W/(m*°C)", SpecificHeat: "J/(kg*°C)", HeatFlux: "W/m^2",
		BodyHeatFlux: "W/m^3", HeatTransferCoefficient: "W/(m^2*°C)",
	},
	M_KG_S_K: {
		Length: "m", Area: "m^2", Volume: "m^3", Mass: "kg", Time: "s", Temperature: "K",
		Force: "N", Moment: "N*m", Pressure: "Pa", Density: "kg/m^3", Energy: "J",
		Power: "W", Velocity: "m/s", Acceleration: "m/s^2", Angle: "rad",
		RotationalSpeed: "rad/s", ForcePerLength: "N/m", ThermalExpansion: "1/K",
		ThermalConductivity: "W/(m*K)", SpecificHeat: "J/(kg*K)", HeatFlux: "W/m^2",
		BodyHeatFlux: "W/m^3", HeatTransferCoefficient: "W/(m^2*K)",
	},
	IN_LB_S_F: {
		Length: "in", Area: "in^2", Volume: "in^3", Mass: "lbf*s^2/in", Time: "s", Temperature: "°F",
		Force: "lbf", Moment: "lbf*in", Pressure: "psi", Density: "lbf*s^2/in^4", Energy: "in*lbf",
		Power: "in*lbf/s", Velocity: "in/s", Acceleration: "in/s^2", Angle: "rad",
		RotationalSpeed: "rad/s", ForcePerLength: "lbf/in", ThermalExpansion: "1/°F",
		ThermalConductivity: "lbf/(s*°F)", SpecificHeat: "in^2/(s^2*°F)", HeatFlux: "lbf/(in*s)",
		BodyHeatFlux: "lbf/(in^2*s)", HeatTransferCoefficient: "lbf/(in*s*°F)",
	},
}

// Context is the unit configuration a conversion runs under. It is passed by
// value to every conversion, the zero value is the unitless context.
type Context struct {
	System System
}

func NewContext(system System) Context {
	return Context{System: system}
}

// Abbreviation returns the unit abbreviation for the quantity kind, or "" when
// the context has no unit for it
func (c Context) Abbreviation(q Quantity) string {
	if c.System >= numSystems {
		return ""
	}
	return systemUnits[c.System][q]
}

func (c Context) definition(q Quantity) (Definition, bool) {
	abbr := c.Abbreviation(q)
	if abbr == "" {
		return Definition{}, false
	}
	return Lookup(abbr)
}

// Converter parses and formats values of one quantity kind under a context
type Converter struct {
	Quantity Quantity
	Context  Context
}

func NewConverter(q Quantity, ctx Context) Converter {
	return Converter{Quantity: q, Context: ctx}
}

var quantityRE = regexp.MustCompile(`^([+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)\s*(.+)$`)

// Parse converts a free-form string into a value in the context's unit.
// Blank input is 0, a bare number is taken as is, a quantity expression is
// converted into the context's unit for the converter's quantity kind.
func (c Converter) Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: %q is not a finite number", ErrParse, s)
		}
		return v, nil
	}
	match := quantityRE.FindStringSubmatch(s)
	if match == nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}
	v, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
	}
	from, ok := Lookup(match[2])
	if !ok {
		return 0, fmt.Errorf("%w: unknown unit %q in %q", ErrParse, match[2], s)
	}
	want := unit.New(1, c.Quantity.Dimensions())
	if !unit.DimensionsMatch(from.Unit(), want) {
		return 0, fmt.Errorf("%w: unit %q is not a %s unit", ErrParse, from.Abbreviation, c.Quantity)
	}
	to, ok := c.Context.definition(c.Quantity)
	if !ok {
		// Without a unit for this quantity the suffix is advisory only
		return v, nil
	}
	if to.Abbreviation == from.Abbreviation {
		return v, nil
	}
	return snap(to.FromSI(from.ToSI(v))), nil
}

// Format renders a value with the context's unit abbreviation appended, or
// as a bare number when the context has no unit for the quantity kind
func (c Converter) Format(v float64) string {
	num := strconv.FormatFloat(v, 'g', -1, 64)
	if abbr := c.Context.Abbreviation(c.Quantity); abbr != "" {
		return num + " " + abbr
	}
	return num
}

// snap removes round-off picked up by the factor/offset conversion
func snap(v float64) float64 {
	if r := math.Round(v); scalar.EqualWithinULP(v, r, 4) {
		return r
	}
	return v
}

// ParseQuantity parses s as a value of kind q under ctx
func ParseQuantity(s string, q Quantity, ctx Context) (float64, error) {
	return NewConverter(q, ctx).Parse(s)
}

// FormatQuantity renders v as a value of kind q under ctx
func FormatQuantity(v float64, q Quantity, ctx Context) string {
	return NewConverter(q, ctx).Format(v)
}
