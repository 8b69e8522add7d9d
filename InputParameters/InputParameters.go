package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML model file. Dimensional values are
// Quantity strings, converted into the unit system of the file when mapped.
type InputParameters struct {
	Title               string             `json:"Title"`
	UnitSystem          string             `json:"UnitSystem"`
	Include             []string           `json:"Include"`
	PhysicalConstants   *PhysicalConstants `json:"PhysicalConstants"`
	Submodel            *SubmodelInput     `json:"Submodel"`
	MeshFile            string             `json:"MeshFile"` // SU2 mesh, relative to the model file
	Nodes               [][4]float64       `json:"Nodes"`    // id, x, y, z
	Elements            []ElementBlock     `json:"Elements"`
	NodeSets            []SetInput         `json:"NodeSets"`
	ElementSets         []SetInput         `json:"ElementSets"`
	Surfaces            []SurfaceInput     `json:"Surfaces"`
	Materials           []MaterialInput    `json:"Materials"`
	Sections            []SectionInput     `json:"Sections"`
	SurfaceInteractions []InteractionInput `json:"SurfaceInteractions"`
	ContactPairs        []ContactPairInput `json:"ContactPairs"`
	Ties                []TieInput         `json:"Ties"`
	InitialConditions   []InitialInput     `json:"InitialConditions"`
	Steps               []StepInput        `json:"Steps"`
}

type PhysicalConstants struct {
	AbsoluteZero    Quantity `json:"AbsoluteZero"`
	StefanBoltzmann float64  `json:"StefanBoltzmann"`
}

type SubmodelInput struct {
	NodeSet    string `json:"NodeSet"`
	GlobalFile string `json:"GlobalFile"`
}

type ElementBlock struct {
	Type     string  `json:"Type"`
	Elset    string  `json:"Elset"`
	Elements [][]int `json:"Elements"` // id followed by the node ids
}

type SetInput struct {
	Name string `json:"Name"`
	IDs  []int  `json:"IDs"`
}

type FaceInput struct {
	Elements Text `json:"Elements"` // element set name or element number
	Face     Text `json:"Face"`
}

type SurfaceInput struct {
	Name    string      `json:"Name"`
	Type    string      `json:"Type"` // Element (default) or Node
	Faces   []FaceInput `json:"Faces"`
	NodeSet string      `json:"NodeSet"`
}

type ElasticInput struct {
	Young       Quantity `json:"Young"`
	Poisson     float64  `json:"Poisson"`
	Temperature Quantity `json:"Temperature"`
}

type ExpansionInput struct {
	Alpha       Quantity `json:"Alpha"`
	Temperature Quantity `json:"Temperature"`
}

type ConductivityInput struct {
	Conductivity Quantity `json:"Conductivity"`
	Temperature  Quantity `json:"Temperature"`
}

type SpecificHeatInput struct {
	SpecificHeat Quantity `json:"SpecificHeat"`
	Temperature  Quantity `json:"Temperature"`
}

type PlasticInput struct {
	YieldStress   Quantity `json:"YieldStress"`
	PlasticStrain float64  `json:"PlasticStrain"`
	Temperature   Quantity `json:"Temperature"`
}

type MaterialInput struct {
	Name          string              `json:"Name"`
	Density       Quantity            `json:"Density"`
	Elastic       []ElasticInput      `json:"Elastic"`
	Expansion     []ExpansionInput    `json:"Expansion"`
	ExpansionZero Quantity            `json:"ExpansionZero"`
	Conductivity  []ConductivityInput `json:"Conductivity"`
	SpecificHeat  []SpecificHeatInput `json:"SpecificHeat"`
	Plastic       []PlasticInput      `json:"Plastic"`
	Hardening     string              `json:"Hardening"`
}

type SectionInput struct {
	Name       string     `json:"Name"`
	Type       string     `json:"Type"` // Solid, Shell, Membrane, Beam
	Elset      string     `json:"Elset"`
	Material   string     `json:"Material"`
	Thickness  Quantity   `json:"Thickness"`
	Offset     float64    `json:"Offset"`
	Shape      string     `json:"Shape"` // beams: Rect, Circ, Pipe, Box
	Dimensions []Quantity `json:"Dimensions"`
	Direction  [3]float64 `json:"Direction"`
}

type FrictionInput struct {
	Coefficient float64  `json:"Coefficient"`
	StickSlope  Quantity `json:"StickSlope"`
}

type InteractionInput struct {
	Name           string         `json:"Name"`
	Behavior       string         `json:"Behavior"` // Hard, Linear, Exponential, Tabular, Tied
	Parameters     []float64      `json:"Parameters"`
	Table          [][2]float64   `json:"Table"`
	Friction       *FrictionInput `json:"Friction"`
	GapConductance [][3]float64   `json:"GapConductance"` // conductance, pressure, temperature
}

type ContactPairInput struct {
	Name        string   `json:"Name"`
	Interaction string   `json:"Interaction"`
	Type        string   `json:"Type"`
	Master      string   `json:"Master"`
	Slave       string   `json:"Slave"`
	Adjust      Quantity `json:"Adjust"`
}

type TieInput struct {
	Name              string   `json:"Name"`
	Master            string   `json:"Master"`
	Slave             string   `json:"Slave"`
	PositionTolerance Quantity `json:"PositionTolerance"`
	NoAdjust          bool     `json:"NoAdjust"`
}

type InitialInput struct {
	Name        string      `json:"Name"`
	Type        string      `json:"Type"` // Temperature or Velocity
	Region      string      `json:"Region"`
	Temperature Quantity    `json:"Temperature"`
	Velocity    [3]Quantity `json:"Velocity"`
}

// BCInput covers every boundary condition type; displacement components
// left empty are unconstrained
type BCInput struct {
	Name        string   `json:"Name"`
	Type        string   `json:"Type"`
	Region      string   `json:"Region"`
	Rotations   bool     `json:"Rotations"`
	U1          Quantity `json:"U1"`
	U2          Quantity `json:"U2"`
	U3          Quantity `json:"U3"`
	UR1         Quantity `json:"UR1"`
	UR2         Quantity `json:"UR2"`
	UR3         Quantity `json:"UR3"`
	GlobalStep  int      `json:"GlobalStep"`
	DOFs        []int    `json:"DOFs"`
	Temperature Quantity `json:"Temperature"`
}

// LoadInput covers every load type. Magnitude is a pressure, edge load,
// pre-tension force or length, or heat flux depending on the type.
type LoadInput struct {
	Name            string      `json:"Name"`
	Type            string      `json:"Type"`
	Region          string      `json:"Region"`
	F1              Quantity    `json:"F1"`
	F2              Quantity    `json:"F2"`
	F3              Quantity    `json:"F3"`
	M1              Quantity    `json:"M1"`
	M2              Quantity    `json:"M2"`
	M3              Quantity    `json:"M3"`
	Magnitude       Quantity    `json:"Magnitude"`
	Gravity         [3]Quantity `json:"Gravity"`
	Omega           Quantity    `json:"Omega"`
	Point           [3]Quantity `json:"Point"`
	Axis            [3]float64  `json:"Axis"`
	Direction       [3]float64  `json:"Direction"`
	ReferenceNode   int         `json:"ReferenceNode"`
	PreTension      string      `json:"PreTension"` // Force (default) or Length
	SinkTemperature Quantity    `json:"SinkTemperature"`
	FilmCoefficient Quantity    `json:"FilmCoefficient"`
	Emissivity      float64     `json:"Emissivity"`
	Cavity          bool        `json:"Cavity"`
}

type FieldInput struct {
	Name        string   `json:"Name"`
	Type        string   `json:"Type"`
	Region      string   `json:"Region"`
	Temperature Quantity `json:"Temperature"`
}

// OutputInput is a field or history output request. Region is the node or
// element set, or the contact pair of a contact output.
type OutputInput struct {
	Name            string   `json:"Name"`
	Type            string   `json:"Type"` // Node, Element, Contact
	Region          string   `json:"Region"`
	Frequency       int      `json:"Frequency"`
	Variables       []string `json:"Variables"`
	Totals          Text     `json:"Totals"`
	LocalAxes       bool     `json:"LocalAxes"`
	LastIterations  bool     `json:"LastIterations"`
	ContactElements bool     `json:"ContactElements"`
}

type StepInput struct {
	Name               string        `json:"Name"`
	Type               string        `json:"Type"`
	Nlgeom             bool          `json:"Nlgeom"`
	MaxIncrements      int           `json:"MaxIncrements"`
	Solver             string        `json:"Solver"`
	Direct             bool          `json:"Direct"`
	TimePeriod         Quantity      `json:"TimePeriod"`
	InitialIncrement   Quantity      `json:"InitialIncrement"`
	MinIncrement       Quantity      `json:"MinIncrement"`
	MaxIncrement       Quantity      `json:"MaxIncrement"`
	NumEigenvalues     int           `json:"NumEigenvalues"`
	Storage            bool          `json:"Storage"`
	Accuracy           float64       `json:"Accuracy"`
	SteadyState        bool          `json:"SteadyState"`
	Deltmx             float64       `json:"Deltmx"` // temperature change, written as given
	BoundaryConditions []BCInput     `json:"BoundaryConditions"`
	Loads              []LoadInput   `json:"Loads"`
	DefinedFields      []FieldInput  `json:"DefinedFields"`
	FieldOutputs       []OutputInput `json:"FieldOutputs"` // replace the default field outputs when given
	HistoryOutputs     []OutputInput `json:"HistoryOutputs"`
}

func (ip *InputParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t= Unit System\n", ip.UnitSystem)
	if ip.MeshFile != "" {
		fmt.Printf("[%s]\t\t= Mesh File\n", ip.MeshFile)
	}
	fmt.Printf("[%d]\t\t\t= Nodes\n", len(ip.Nodes))
	var elements int
	for _, b := range ip.Elements {
		elements += len(b.Elements)
	}
	fmt.Printf("[%d]\t\t\t= Elements\n", elements)
	for _, inc := range ip.Include {
		fmt.Printf("Include[%s]\n", inc)
	}
	for _, m := range ip.Materials {
		fmt.Printf("Material[%s]\n", m.Name)
	}
	for _, s := range ip.Steps {
		fmt.Printf("Step[%s] = %s, %d BCs, %d Loads, %d Outputs\n", s.Name, s.Type,
			len(s.BoundaryConditions), len(s.Loads), len(s.FieldOutputs)+len(s.HistoryOutputs))
	}
}
