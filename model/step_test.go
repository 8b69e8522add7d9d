package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gocalix/types"
)

func newStep(t *testing.T, kind types.StepKind) *Step {
	t.Helper()
	s, err := NewStep("Step-1", kind)
	require.NoError(t, err)
	return s
}

func TestCapabilitiesAreExhaustive(t *testing.T) {
	// Every step procedure answers for every known kind without an error
	for sk := types.Step_Static; sk < types.Step_Count; sk++ {
		s := newStep(t, sk)
		for k := types.BC_Fixed; k < types.BC_Count; k++ {
			_, err := s.SupportsBoundaryCondition(k)
			assert.NoError(t, err, "%s %s", sk, k)
		}
		for k := types.Load_CLoad; k < types.Load_Count; k++ {
			_, err := s.SupportsLoad(k)
			assert.NoError(t, err, "%s %s", sk, k)
		}
		for k := types.Field_Temperature; k < types.Field_Count; k++ {
			_, err := s.SupportsDefinedField(k)
			assert.NoError(t, err, "%s %s", sk, k)
		}
	}
}

func TestUnknownKindsAreErrors(t *testing.T) {
	s := newStep(t, types.Step_Static)
	for _, k := range []types.BCKind{types.BC_None, types.BC_Count, 200} {
		ok, err := s.SupportsBoundaryCondition(k)
		assert.False(t, ok)
		assert.True(t, errors.Is(err, ErrUnsupportedKind), k.String())
	}
	_, err := s.SupportsLoad(types.Load_None)
	assert.ErrorIs(t, err, ErrUnsupportedKind)
	_, err = s.SupportsLoad(types.LoadKind(99))
	assert.ErrorIs(t, err, ErrUnsupportedKind)
	_, err = s.SupportsDefinedField(types.Field_None)
	assert.ErrorIs(t, err, ErrUnsupportedKind)

	// An unknown procedure is also an error for known kinds
	s.Kind = types.StepKind(77)
	_, err = s.SupportsBoundaryCondition(types.BC_Fixed)
	assert.ErrorIs(t, err, ErrUnsupportedKind)
	_, err = s.SupportsLoad(types.Load_CLoad)
	assert.ErrorIs(t, err, ErrUnsupportedKind)

	_, err = NewStep("bad", types.Step_None)
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}

func TestCapabilityTable(t *testing.T) {
	type row struct {
		step        types.StepKind
		fixed, temp bool
		cload, film bool
		definedTemp bool
	}
	rows := []row{
		{types.Step_Static, true, false, true, false, true},
		{types.Step_Frequency, true, false, false, false, true},
		{types.Step_Buckle, true, false, true, false, true},
		{types.Step_HeatTransfer, false, true, false, true, false},
		{types.Step_CoupledTempDisp, true, true, true, true, false},
		{types.Step_UncoupledTempDisp, true, true, true, true, false},
	}
	for _, r := range rows {
		s := newStep(t, r.step)
		got, err := s.SupportsBoundaryCondition(types.BC_Fixed)
		require.NoError(t, err)
		assert.Equal(t, r.fixed, got, "%s fixed", r.step)
		got, err = s.SupportsBoundaryCondition(types.BC_Temperature)
		require.NoError(t, err)
		assert.Equal(t, r.temp, got, "%s temperature", r.step)
		got, err = s.SupportsLoad(types.Load_CLoad)
		require.NoError(t, err)
		assert.Equal(t, r.cload, got, "%s cload", r.step)
		got, err = s.SupportsLoad(types.Load_Film)
		require.NoError(t, err)
		assert.Equal(t, r.film, got, "%s film", r.step)
		got, err = s.SupportsDefinedField(types.Field_Temperature)
		require.NoError(t, err)
		assert.Equal(t, r.definedTemp, got, "%s defined temperature", r.step)
	}
}

func TestAddRefusesUnsupported(t *testing.T) {
	s := newStep(t, types.Step_HeatTransfer)
	err := s.AddBoundaryCondition(&FixedBC{Name: "Fix", NodeSet: "N1"})
	assert.ErrorIs(t, err, ErrUnsupportedCombination)
	assert.Empty(t, s.BoundaryConditions)
	require.NoError(t, s.AddBoundaryCondition(&TemperatureBC{Name: "T", NodeSet: "N1", Temperature: 100}))
	assert.Len(t, s.BoundaryConditions, 1)

	err = s.AddLoad(&CLoad{Name: "F", NodeSet: "N1"})
	assert.ErrorIs(t, err, ErrUnsupportedCombination)
	require.NoError(t, s.AddLoad(&DFlux{Name: "Q", Surface: "S1", Flux: 10}))
	err = s.AddDefinedField(&DefinedTemperature{Name: "DT", NodeSet: "N1"})
	assert.ErrorIs(t, err, ErrUnsupportedCombination)

	// Validate catches items appended past the Add methods
	s.Loads = append(s.Loads, &GravityLoad{Name: "g", ElementSet: "Eall"})
	assert.ErrorIs(t, s.Validate(), ErrUnsupportedCombination)

	s = newStep(t, types.Step_HeatTransfer)
	s.Nlgeom = true
	assert.ErrorIs(t, s.Validate(), ErrUnsupportedCombination)
}

func TestNewStepDefaults(t *testing.T) {
	s := newStep(t, types.Step_Static)
	require.Len(t, s.FieldOutputs, 2)
	nf := s.FieldOutputs[0].(*NodalFieldOutput)
	assert.Equal(t, "RF, U", nf.Variables.String())
	assert.Equal(t, 1, nf.OutputFrequency())
	assert.NoError(t, s.Validate())

	f := newStep(t, types.Step_Frequency)
	assert.Equal(t, 10, f.NumEigenvalues)

	h := newStep(t, types.Step_HeatTransfer)
	h.Direct, h.Deltmx = true, 5
	assert.ErrorIs(t, h.Validate(), ErrUnsupportedCombination)
	h.Direct = false
	assert.NoError(t, h.Validate())
	// Static steps ignore thermal settings
	s.Direct, s.Deltmx = true, 5
	assert.NoError(t, s.Validate())

	_, err := NewNodalHistoryOutput("bad", "N1", 0, NH_RF)
	assert.ErrorIs(t, err, ErrInvalidValue)

	solver, err := ParseSolverType("iterative cholesky")
	require.NoError(t, err)
	assert.Equal(t, Solver_IterativeCholesky, solver)
}
