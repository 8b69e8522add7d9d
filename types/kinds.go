package types

import (
	"fmt"
	"strings"
)

// BCKind is the closed catalogue of boundary condition kinds
type BCKind uint8

const (
	BC_None BCKind = iota
	BC_Fixed
	BC_DisplacementRotation
	BC_Submodel
	BC_Temperature
	BC_Count // number of kinds, not a kind
)

var bcNames = [BC_Count]string{"None", "Fixed", "DisplacementRotation", "Submodel", "Temperature"}

func (k BCKind) String() string {
	if k < BC_Count {
		return bcNames[k]
	}
	return fmt.Sprintf("BCKind(%d)", uint8(k))
}

var BCNameMap = map[string]BCKind{
	"fixed":                BC_Fixed,
	"encastre":             BC_Fixed,
	"displacementrotation": BC_DisplacementRotation,
	"displacement":         BC_DisplacementRotation,
	"submodel":             BC_Submodel,
	"temperature":          BC_Temperature,
}

// LoadKind is the closed catalogue of load kinds, mechanical then thermal
type LoadKind uint8

const (
	Load_None LoadKind = iota
	Load_CLoad
	Load_Moment
	Load_DLoad
	Load_STLoad
	Load_ShellEdge
	Load_Gravity
	Load_Centrif
	Load_PreTension
	Load_CFlux
	Load_DFlux
	Load_BodyFlux
	Load_Film
	Load_Radiate
	Load_Count // number of kinds, not a kind
)

var loadNames = [Load_Count]string{
	"None", "CLoad", "MomentLoad", "DLoad", "STLoad", "ShellEdgeLoad", "GravityLoad",
	"CentrifLoad", "PreTensionLoad", "CFlux", "DFlux", "BodyFlux", "FilmHeatTransfer",
	"RadiationHeatTransfer",
}

func (k LoadKind) String() string {
	if k < Load_Count {
		return loadNames[k]
	}
	return fmt.Sprintf("LoadKind(%d)", uint8(k))
}

// IsThermal is true for heat transfer loads
func (k LoadKind) IsThermal() bool {
	return k >= Load_CFlux && k < Load_Count
}

var LoadNameMap = map[string]LoadKind{
	"cload":                 Load_CLoad,
	"moment":                Load_Moment,
	"momentload":            Load_Moment,
	"dload":                 Load_DLoad,
	"pressure":              Load_DLoad,
	"stload":                Load_STLoad,
	"surfacetraction":       Load_STLoad,
	"shelledge":             Load_ShellEdge,
	"shelledgeload":         Load_ShellEdge,
	"gravity":               Load_Gravity,
	"gravityload":           Load_Gravity,
	"centrif":               Load_Centrif,
	"centrifload":           Load_Centrif,
	"pretension":            Load_PreTension,
	"pretensionload":        Load_PreTension,
	"cflux":                 Load_CFlux,
	"dflux":                 Load_DFlux,
	"bodyflux":              Load_BodyFlux,
	"film":                  Load_Film,
	"filmheattransfer":      Load_Film,
	"radiate":               Load_Radiate,
	"radiationheattransfer": Load_Radiate,
}

// FieldKind is the closed catalogue of defined field kinds
type FieldKind uint8

const (
	Field_None FieldKind = iota
	Field_Temperature
	Field_Count // number of kinds, not a kind
)

var fieldNames = [Field_Count]string{"None", "DefinedTemperature"}

func (k FieldKind) String() string {
	if k < Field_Count {
		return fieldNames[k]
	}
	return fmt.Sprintf("FieldKind(%d)", uint8(k))
}

var FieldNameMap = map[string]FieldKind{
	"temperature":        Field_Temperature,
	"definedtemperature": Field_Temperature,
}

// StepKind is the closed catalogue of analysis procedures
type StepKind uint8

const (
	Step_None StepKind = iota
	Step_Static
	Step_Frequency
	Step_Buckle
	Step_HeatTransfer
	Step_CoupledTempDisp
	Step_UncoupledTempDisp
	Step_Count // number of kinds, not a kind
)

var stepNames = [Step_Count]string{
	"None", "Static", "Frequency", "Buckle", "HeatTransfer",
	"CoupledTemperatureDisplacement", "UncoupledTemperatureDisplacement",
}

func (k StepKind) String() string {
	if k < Step_Count {
		return stepNames[k]
	}
	return fmt.Sprintf("StepKind(%d)", uint8(k))
}

var StepNameMap = map[string]StepKind{
	"static":                           Step_Static,
	"frequency":                        Step_Frequency,
	"buckle":                           Step_Buckle,
	"heattransfer":                     Step_HeatTransfer,
	"coupledtemperaturedisplacement":   Step_CoupledTempDisp,
	"coupled":                          Step_CoupledTempDisp,
	"uncoupledtemperaturedisplacement": Step_UncoupledTempDisp,
	"uncoupled":                        Step_UncoupledTempDisp,
}

// TotalsMode selects whether a print output also reports summed quantities
type TotalsMode uint8

const (
	Totals_No TotalsMode = iota
	Totals_Yes
	Totals_Only
)

func (t TotalsMode) String() string {
	switch t {
	case Totals_No:
		return "No"
	case Totals_Yes:
		return "Yes"
	case Totals_Only:
		return "Only"
	}
	return fmt.Sprintf("TotalsMode(%d)", uint8(t))
}

var TotalsNameMap = map[string]TotalsMode{
	"":     Totals_No,
	"no":   Totals_No,
	"yes":  Totals_Yes,
	"only": Totals_Only,
}

// Key normalizes a catalogue name for lookup in the name maps: lower case,
// no spaces, dashes or underscores
func Key(name string) string {
	return strings.ToLower(keyReplacer.Replace(strings.TrimSpace(name)))
}

var keyReplacer = strings.NewReplacer(" ", "", "-", "", "_", "")

func ParseBCKind(name string) (BCKind, error) {
	if k, ok := BCNameMap[Key(name)]; ok {
		return k, nil
	}
	return BC_None, fmt.Errorf("unknown boundary condition type %q", name)
}

func ParseLoadKind(name string) (LoadKind, error) {
	if k, ok := LoadNameMap[Key(name)]; ok {
		return k, nil
	}
	return Load_None, fmt.Errorf("unknown load type %q", name)
}

func ParseFieldKind(name string) (FieldKind, error) {
	if k, ok := FieldNameMap[Key(name)]; ok {
		return k, nil
	}
	return Field_None, fmt.Errorf("unknown defined field type %q", name)
}

func ParseStepKind(name string) (StepKind, error) {
	if k, ok := StepNameMap[Key(name)]; ok {
		return k, nil
	}
	return Step_None, fmt.Errorf("unknown step type %q", name)
}

func ParseTotalsMode(name string) (TotalsMode, error) {
	if t, ok := TotalsNameMap[Key(name)]; ok {
		return t, nil
	}
	return Totals_No, fmt.Errorf("unknown totals mode %q, expected Yes, Only or No", name)
}
