package calculix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gocalix/model"
	"github.com/notargets/gocalix/types"
)

func procedure(t *testing.T, s *model.Step) string {
	t.Helper()
	k, err := NewProcedure(s)
	require.NoError(t, err)
	return Render(k)
}

func TestStaticStep(t *testing.T) {
	s, err := model.NewStep("Step-1", types.Step_Static)
	require.NoError(t, err)
	assert.Equal(t, "*Step\n", Render(&Step{Step: s}))
	assert.Equal(t, "*Static\n1, 1, 1e-05, 1\n", procedure(t, s))

	s.Nlgeom, s.MaxIncrements = true, 1000
	assert.Equal(t, "*Step, Nlgeom, Inc=1000\n", Render(&Step{Step: s}))

	s.Direct, s.Solver = true, model.Solver_Pardiso
	s.InitialIncrement = 0.1
	assert.Equal(t, "*Static, Solver=Pardiso, Direct\n0.1, 1\n", procedure(t, s))
	assert.Equal(t, "*End step\n", Render(EndStep{}))
}

func TestEigenSteps(t *testing.T) {
	s, err := model.NewStep("Modal", types.Step_Frequency)
	require.NoError(t, err)
	assert.Equal(t, "*Frequency\n10\n", procedure(t, s))
	s.Storage = true
	assert.Equal(t, "*Frequency, Storage=Yes\n10\n", procedure(t, s))
	s.NumEigenvalues = 0
	_, err = NewProcedure(s)
	assert.ErrorIs(t, err, ErrUnsupported)

	b, err := model.NewStep("Buckling", types.Step_Buckle)
	require.NoError(t, err)
	b.Solver = model.Solver_Spooles
	assert.Equal(t, "*Buckle, Solver=Spooles\n1, 0.01\n", procedure(t, b))
}

func TestThermalSteps(t *testing.T) {
	s, err := model.NewStep("Heat", types.Step_HeatTransfer)
	require.NoError(t, err)
	s.Nlgeom = true
	s.SteadyState = true
	s.Deltmx = 5
	assert.Equal(t, "*Step\n", Render(&Step{Step: s}))
	assert.Equal(t, "*Heat transfer, Steady state\n1, 1, 1e-05, 1, 5\n", procedure(t, s))

	s.Kind = types.Step_CoupledTempDisp
	s.SteadyState = false
	assert.Equal(t, "*Step, Nlgeom\n", Render(&Step{Step: s}))
	assert.Equal(t, "*Coupled temperature-displacement\n1, 1, 1e-05, 1, 5\n", procedure(t, s))

	s.Kind = types.Step_UncoupledTempDisp
	s.Direct = true
	_, err = NewProcedure(s)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.ErrorIs(t, s.Validate(), model.ErrUnsupportedCombination)
	s.Deltmx = 0
	assert.Equal(t, "*Uncoupled temperature-displacement, Direct\n1, 1\n", procedure(t, s))

	s.Kind = types.StepKind(42)
	_, err = NewProcedure(s)
	assert.Error(t, err)
}
