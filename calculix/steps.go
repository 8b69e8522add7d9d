package calculix

import (
	"strconv"

	"github.com/notargets/gocalix/model"
	"github.com/notargets/gocalix/types"
)

const defaultIncrements = 100

// Step opens a step: *Step[, Nlgeom][, Inc=N]
type Step struct {
	Step *model.Step
}

func (s *Step) KeywordString() string {
	kw := "*Step"
	if s.Step.Nlgeom && s.Step.Kind != types.Step_HeatTransfer {
		kw += ", Nlgeom"
	}
	if s.Step.MaxIncrements != defaultIncrements {
		kw += param("Inc", s.Step.MaxIncrements)
	}
	return kw + EOL
}
func (s *Step) DataString() string { return "" }

type EndStep struct{}

func (EndStep) KeywordString() string { return "*End step" + EOL }
func (EndStep) DataString() string    { return "" }

var solverParams = map[model.SolverType]string{
	model.Solver_Spooles:           "Spooles",
	model.Solver_Pardiso:           "Pardiso",
	model.Solver_PaStiX:            "Pastix",
	model.Solver_IterativeScaling:  "Iterative scaling",
	model.Solver_IterativeCholesky: "Iterative Cholesky",
}

func solverParam(s model.SolverType) string {
	if name, ok := solverParams[s]; ok {
		return param("Solver", name)
	}
	return ""
}

// incrementation writes the time incrementation data line shared by the
// static and thermal procedures
func incrementation(s *model.Step, deltmx bool) string {
	if s.Direct {
		return line(floats(s.InitialIncrement, s.TimePeriod)...)
	}
	values := []float64{s.InitialIncrement, s.TimePeriod, s.MinIncrement, s.MaxIncrement}
	if deltmx && s.Deltmx > 0 {
		values = append(values, s.Deltmx)
	}
	return line(floats(values...)...)
}

type Static struct {
	Step *model.Step
}

func (s *Static) KeywordString() string {
	kw := "*Static" + solverParam(s.Step.Solver)
	if s.Step.Direct {
		kw += ", Direct"
	}
	return kw + EOL
}
func (s *Static) DataString() string { return incrementation(s.Step, false) }

type Frequency struct {
	Step *model.Step
}

func (f *Frequency) KeywordString() string {
	kw := "*Frequency" + solverParam(f.Step.Solver)
	if f.Step.Storage {
		kw += param("Storage", "Yes")
	}
	return kw + EOL
}
func (f *Frequency) DataString() string { return line(strconv.Itoa(f.Step.NumEigenvalues)) }

type Buckle struct {
	Step *model.Step
}

func (b *Buckle) KeywordString() string {
	kw := "*Buckle" + solverParam(b.Step.Solver)
	if b.Step.Storage {
		kw += param("Storage", "Yes")
	}
	return kw + EOL
}
func (b *Buckle) DataString() string {
	return line(strconv.Itoa(b.Step.NumEigenvalues), formatFloat(b.Step.Accuracy))
}

// Thermal covers *Heat transfer and the coupled and uncoupled
// temperature-displacement procedures, which share their parameters
type Thermal struct {
	Step *model.Step
}

func (t *Thermal) KeywordString() string {
	var kw string
	switch t.Step.Kind {
	case types.Step_HeatTransfer:
		kw = "*Heat transfer"
	case types.Step_CoupledTempDisp:
		kw = "*Coupled temperature-displacement"
	default:
		kw = "*Uncoupled temperature-displacement"
	}
	kw += solverParam(t.Step.Solver)
	if t.Step.Direct {
		kw += ", Direct"
	}
	if t.Step.SteadyState {
		kw += ", Steady state"
	}
	return kw + EOL
}
func (t *Thermal) DataString() string { return incrementation(t.Step, true) }

// NewProcedure returns the procedure keyword of a step
func NewProcedure(s *model.Step) (Keyword, error) {
	switch s.Kind {
	case types.Step_Static:
		return &Static{Step: s}, nil
	case types.Step_Frequency:
		if s.NumEigenvalues < 1 {
			return nil, unsupported("frequency step %q needs at least one eigenfrequency", s.Name)
		}
		return &Frequency{Step: s}, nil
	case types.Step_Buckle:
		if s.NumEigenvalues < 1 {
			return nil, unsupported("buckle step %q needs at least one buckling factor", s.Name)
		}
		return &Buckle{Step: s}, nil
	case types.Step_HeatTransfer, types.Step_CoupledTempDisp, types.Step_UncoupledTempDisp:
		if s.FixedDeltmx() {
			return nil, unsupported("step %q sets Deltmx, which fixed incrementation ignores", s.Name)
		}
		return &Thermal{Step: s}, nil
	}
	return nil, unsupported("step %q has procedure %s", s.Name, s.Kind)
}
