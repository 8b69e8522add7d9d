package model

import (
	"fmt"
	"strings"

	"github.com/notargets/gocalix/types"
)

type SolverType uint8

const (
	Solver_Default SolverType = iota
	Solver_Spooles
	Solver_Pardiso
	Solver_PaStiX
	Solver_IterativeScaling
	Solver_IterativeCholesky
)

var solverNames = []string{"Default", "Spooles", "Pardiso", "PaStiX", "Iterative scaling", "Iterative Cholesky"}

func (s SolverType) String() string {
	if int(s) < len(solverNames) {
		return solverNames[s]
	}
	return fmt.Sprintf("SolverType(%d)", uint8(s))
}

func ParseSolverType(name string) (SolverType, error) {
	key := types.Key(name)
	if key == "" {
		return Solver_Default, nil
	}
	for i, sn := range solverNames {
		if types.Key(sn) == key {
			return SolverType(i), nil
		}
	}
	return Solver_Default, fmt.Errorf("%w: unknown solver %q", ErrInvalidValue, name)
}

// Step is one phase of the analysis. The procedure is selected by Kind, the
// procedure specific settings are ignored by procedures that do not use them.
type Step struct {
	Name          string
	Kind          types.StepKind
	Nlgeom        bool
	MaxIncrements int
	Solver        SolverType
	Direct        bool // fixed incrementation

	TimePeriod       float64
	InitialIncrement float64
	MinIncrement     float64
	MaxIncrement     float64

	// Frequency and Buckle
	NumEigenvalues int
	Storage        bool
	Accuracy       float64

	// HeatTransfer and thermo-mechanical steps
	SteadyState bool
	Deltmx      float64 // max temperature change per increment, 0 = unlimited

	BoundaryConditions []BoundaryCondition
	Loads              []Load
	DefinedFields      []DefinedField
	FieldOutputs       []FieldOutput
	HistoryOutputs     []HistoryOutput
}

// NewStep creates a step of the given procedure with solver defaults and the
// default field outputs of that procedure
func NewStep(name string, kind types.StepKind) (*Step, error) {
	s := &Step{
		Name:             name,
		Kind:             kind,
		MaxIncrements:    100,
		TimePeriod:       1,
		InitialIncrement: 1,
		MinIncrement:     1e-5,
		MaxIncrement:     1,
	}
	var (
		nodal   NodalFieldVariable
		element ElementFieldVariable
	)
	switch kind {
	case types.Step_Static:
		nodal, element = NF_U|NF_RF, EF_S|EF_E
	case types.Step_Frequency:
		s.NumEigenvalues = 10
		nodal, element = NF_U, EF_S|EF_E
	case types.Step_Buckle:
		s.NumEigenvalues = 1
		s.Accuracy = 0.01
		nodal, element = NF_U, EF_S|EF_E
	case types.Step_HeatTransfer:
		nodal, element = NF_NT|NF_RFL, EF_HFL
	case types.Step_CoupledTempDisp, types.Step_UncoupledTempDisp:
		nodal, element = NF_U|NF_RF|NF_NT|NF_RFL, EF_S|EF_E|EF_HFL
	default:
		return nil, fmt.Errorf("%w: step %q has procedure %s", ErrUnsupportedKind, name, kind)
	}
	nf, _ := NewNodalFieldOutput("NF-Output-1", 1, nodal)
	ef, _ := NewElementFieldOutput("EF-Output-1", 1, element)
	s.FieldOutputs = []FieldOutput{nf, ef}
	return s, nil
}

func (s *Step) unsupportedStep() error {
	return fmt.Errorf("%w: step %q has procedure %s", ErrUnsupportedKind, s.Name, s.Kind)
}

// SupportsBoundaryCondition reports whether the procedure accepts a boundary
// condition kind. Kinds outside the catalogue are an error, not false.
func (s *Step) SupportsBoundaryCondition(k types.BCKind) (bool, error) {
	switch k {
	case types.BC_Fixed, types.BC_DisplacementRotation, types.BC_Submodel:
		switch s.Kind {
		case types.Step_Static, types.Step_Frequency, types.Step_Buckle,
			types.Step_CoupledTempDisp, types.Step_UncoupledTempDisp:
			return true, nil
		case types.Step_HeatTransfer:
			return false, nil
		}
	case types.BC_Temperature:
		switch s.Kind {
		case types.Step_HeatTransfer, types.Step_CoupledTempDisp, types.Step_UncoupledTempDisp:
			return true, nil
		case types.Step_Static, types.Step_Frequency, types.Step_Buckle:
			return false, nil
		}
	default:
		return false, fmt.Errorf("%w: boundary condition %s", ErrUnsupportedKind, k)
	}
	return false, s.unsupportedStep()
}

// SupportsLoad reports whether the procedure accepts a load kind
func (s *Step) SupportsLoad(k types.LoadKind) (bool, error) {
	switch k {
	case types.Load_CLoad, types.Load_Moment, types.Load_DLoad, types.Load_STLoad,
		types.Load_ShellEdge, types.Load_Gravity, types.Load_Centrif, types.Load_PreTension:
		switch s.Kind {
		case types.Step_Static, types.Step_Buckle,
			types.Step_CoupledTempDisp, types.Step_UncoupledTempDisp:
			return true, nil
		case types.Step_Frequency, types.Step_HeatTransfer:
			return false, nil
		}
	case types.Load_CFlux, types.Load_DFlux, types.Load_BodyFlux, types.Load_Film, types.Load_Radiate:
		switch s.Kind {
		case types.Step_HeatTransfer, types.Step_CoupledTempDisp, types.Step_UncoupledTempDisp:
			return true, nil
		case types.Step_Static, types.Step_Frequency, types.Step_Buckle:
			return false, nil
		}
	default:
		return false, fmt.Errorf("%w: load %s", ErrUnsupportedKind, k)
	}
	return false, s.unsupportedStep()
}

// SupportsDefinedField reports whether the procedure accepts a defined field kind
func (s *Step) SupportsDefinedField(k types.FieldKind) (bool, error) {
	switch k {
	case types.Field_Temperature:
		switch s.Kind {
		case types.Step_Static, types.Step_Frequency, types.Step_Buckle:
			return true, nil
		case types.Step_HeatTransfer, types.Step_CoupledTempDisp, types.Step_UncoupledTempDisp:
			return false, nil
		}
	default:
		return false, fmt.Errorf("%w: defined field %s", ErrUnsupportedKind, k)
	}
	return false, s.unsupportedStep()
}

func refuse(step *Step, what, name string, kind fmt.Stringer) error {
	return fmt.Errorf("%w: %s step %q does not support %s %q (%s)",
		ErrUnsupportedCombination, step.Kind, step.Name, what, name, kind)
}

func (s *Step) AddBoundaryCondition(bc BoundaryCondition) error {
	ok, err := s.SupportsBoundaryCondition(bc.BCKind())
	if err != nil {
		return err
	}
	if !ok {
		return refuse(s, "boundary condition", bc.Label(), bc.BCKind())
	}
	s.BoundaryConditions = append(s.BoundaryConditions, bc)
	return nil
}

func (s *Step) AddLoad(l Load) error {
	ok, err := s.SupportsLoad(l.LoadKind())
	if err != nil {
		return err
	}
	if !ok {
		return refuse(s, "load", l.Label(), l.LoadKind())
	}
	s.Loads = append(s.Loads, l)
	return nil
}

func (s *Step) AddDefinedField(f DefinedField) error {
	ok, err := s.SupportsDefinedField(f.FieldKind())
	if err != nil {
		return err
	}
	if !ok {
		return refuse(s, "defined field", f.Label(), f.FieldKind())
	}
	s.DefinedFields = append(s.DefinedFields, f)
	return nil
}

func (s *Step) AddFieldOutput(o FieldOutput) {
	s.FieldOutputs = append(s.FieldOutputs, o)
}

func (s *Step) AddHistoryOutput(o HistoryOutput) {
	s.HistoryOutputs = append(s.HistoryOutputs, o)
}

// Validate re-checks everything attached to the step, including items
// appended to the exported slices directly
// FixedDeltmx reports a thermal step limiting the temperature change per
// increment while using fixed incrementation, where the limit never applies
func (s *Step) FixedDeltmx() bool {
	switch s.Kind {
	case types.Step_HeatTransfer, types.Step_CoupledTempDisp, types.Step_UncoupledTempDisp:
		return s.Direct && s.Deltmx > 0
	}
	return false
}

func (s *Step) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: step name is empty", ErrInvalidValue)
	}
	if s.Kind == types.Step_None || s.Kind >= types.Step_Count {
		return s.unsupportedStep()
	}
	if s.Kind == types.Step_HeatTransfer && s.Nlgeom {
		return fmt.Errorf("%w: heat transfer step %q cannot use Nlgeom", ErrUnsupportedCombination, s.Name)
	}
	if s.MaxIncrements < 1 {
		return fmt.Errorf("%w: step %q max increments %d must be at least 1", ErrInvalidValue, s.Name, s.MaxIncrements)
	}
	if s.FixedDeltmx() {
		return fmt.Errorf("%w: step %q limits the temperature change per increment under fixed incrementation", ErrUnsupportedCombination, s.Name)
	}
	for _, bc := range s.BoundaryConditions {
		ok, err := s.SupportsBoundaryCondition(bc.BCKind())
		if err != nil {
			return err
		}
		if !ok {
			return refuse(s, "boundary condition", bc.Label(), bc.BCKind())
		}
	}
	for _, l := range s.Loads {
		ok, err := s.SupportsLoad(l.LoadKind())
		if err != nil {
			return err
		}
		if !ok {
			return refuse(s, "load", l.Label(), l.LoadKind())
		}
	}
	for _, f := range s.DefinedFields {
		ok, err := s.SupportsDefinedField(f.FieldKind())
		if err != nil {
			return err
		}
		if !ok {
			return refuse(s, "defined field", f.Label(), f.FieldKind())
		}
	}
	for _, o := range s.FieldOutputs {
		if err := checkFrequency(o.Label(), o.OutputFrequency()); err != nil {
			return err
		}
	}
	for _, o := range s.HistoryOutputs {
		if err := checkFrequency(o.Label(), o.OutputFrequency()); err != nil {
			return err
		}
	}
	return nil
}
