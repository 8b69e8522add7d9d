package calculix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gocalix/model"
)

func TestBoundaries(t *testing.T) {
	render := func(bc model.BoundaryCondition) string {
		b, err := NewBoundary(bc)
		require.NoError(t, err)
		return Render(b)
	}
	assert.Equal(t, "*Boundary\nNfix, 1, 3\n", render(&model.FixedBC{NodeSet: "Nfix"}))
	assert.Equal(t, "*Boundary\nNfix, 1, 6\n", render(&model.FixedBC{NodeSet: "Nfix", Rotations: true}))

	dr := model.NewDisplacementRotation("Disp", "Ndisp")
	_, err := NewBoundary(dr)
	assert.ErrorIs(t, err, ErrUnsupported)
	dr.DOF[2], dr.DOF[3] = 0, 0.1
	assert.Equal(t, "*Boundary\nNdisp, 3, 3, 0\nNdisp, 4, 4, 0.1\n", render(dr))

	sub := &model.SubmodelBC{Name: "Sub", NodeSet: "Nsub", GlobalStep: 2, DOF: [6]bool{true, true, true}}
	assert.Equal(t, "*Boundary, Submodel, Step=2\nNsub, 1, 1\nNsub, 2, 2\nNsub, 3, 3\n", render(sub))
	sub.GlobalStep = 0
	_, err = NewBoundary(sub)
	assert.Error(t, err)

	assert.Equal(t, "*Boundary\nNt, 11, 11, 20\n", render(&model.TemperatureBC{NodeSet: "Nt", Temperature: 20}))
}

func TestLoads(t *testing.T) {
	m := model.NewModel("", 0)
	m.NodeSets = []model.NodeSet{{Name: "Ntrac", IDs: []int{1, 2, 3, 4}}}
	render := func(l model.Load) string {
		k, err := NewLoad(l, m)
		require.NoError(t, err)
		return Render(k)
	}
	assert.Equal(t, "*Cload\nNl, 3, -100\n", render(&model.CLoad{NodeSet: "Nl", F: [3]float64{0, 0, -100}}))
	assert.Equal(t, "*Cload\nNl, 1, 0\n", render(&model.CLoad{NodeSet: "Nl"}))
	assert.Equal(t, "*Cload\nNl, 4, 10\n", render(&model.MomentLoad{NodeSet: "Nl", M: [3]float64{10, 0, 0}}))
	assert.Equal(t, "*Cload\nNtrac, 3, 25\n", render(&model.STLoad{NodeSet: "Ntrac", F: [3]float64{0, 0, 100}}))
	assert.Equal(t, "*Dload\nSurf, P, 1.5\n", render(&model.DLoad{Surface: "Surf", Pressure: 1.5}))
	assert.Equal(t, "*Dload\nEdge, EDNOR, 3\n", render(&model.ShellEdgeLoad{Surface: "Edge", Magnitude: 3}))
	assert.Equal(t, "*Dload\nEall, GRAV, 9810, 0, 0, -1\n",
		render(&model.GravityLoad{ElementSet: "Eall", G: [3]float64{0, 0, -9810}}))
	assert.Equal(t, "*Dload\nEall, CENTRIF, 4, 0, 0, 0, 0, 0, 1\n",
		render(&model.CentrifLoad{ElementSet: "Eall", Omega: 2, Axis: [3]float64{0, 0, 5}}))
	assert.Equal(t, "*Cflux\nN, 11, 5\n", render(&model.CFlux{NodeSet: "N", Flux: 5}))
	assert.Equal(t, "*Dflux\nS, S, 5\n", render(&model.DFlux{Surface: "S", Flux: 5}))
	assert.Equal(t, "*Dflux\nE, BF, 5\n", render(&model.BodyFlux{ElementSet: "E", Flux: 5}))
	assert.Equal(t, "*Film\nS, F, 20, 25\n", render(&model.FilmHeatTransfer{Surface: "S", SinkTemperature: 20, FilmCoefficient: 25}))
	assert.Equal(t, "*Radiate\nS, CR, 20, 0.8\n",
		render(&model.RadiationHeatTransfer{Surface: "S", SinkTemperature: 20, Emissivity: 0.8, Cavity: true}))

	for _, l := range []model.Load{
		&model.STLoad{Name: "missing", NodeSet: "Nowhere"},
		&model.GravityLoad{Name: "g0", ElementSet: "Eall"},
		&model.CentrifLoad{Name: "c0", ElementSet: "Eall", Omega: 1},
		&model.RadiationHeatTransfer{Name: "r", Surface: "S", Emissivity: 1.5},
	} {
		_, err := NewLoad(l, m)
		assert.ErrorIs(t, err, ErrUnsupported, l.Label())
	}
}

func TestPreTension(t *testing.T) {
	m := model.NewModel("", 0)
	l := &model.PreTensionLoad{Name: "Bolt", Surface: "Sbolt", ReferenceNode: 100,
		Direction: [3]float64{0, 3, 0}, Magnitude: 1000}
	sec, err := NewPreTensionSection(l)
	require.NoError(t, err)
	assert.Equal(t, "*Pre-tension section, Surface=Sbolt, Node=100\n0, 1, 0\n", Render(sec))

	k, err := NewLoad(l, m)
	require.NoError(t, err)
	assert.Equal(t, "*Cload\n100, 1, 1000\n", Render(k))
	l.Type, l.Magnitude = model.PreTension_Length, 0.5
	k, err = NewLoad(l, m)
	require.NoError(t, err)
	assert.Equal(t, "*Boundary\n100, 1, 1, 0.5\n", Render(k))

	_, err = NewPreTensionSection(&model.PreTensionLoad{Name: "Bad", Surface: "S", ReferenceNode: 1})
	assert.Error(t, err)
}

func TestFieldsAndInitialConditions(t *testing.T) {
	f, err := NewDefinedField(&model.DefinedTemperature{NodeSet: "Nall", Temperature: 100})
	require.NoError(t, err)
	assert.Equal(t, "*Temperature\nNall, 100\n", Render(f))

	ic, err := NewInitialConditions(&model.InitialTemperature{NodeSet: "Nall", Temperature: 20})
	require.NoError(t, err)
	assert.Equal(t, "*Initial conditions, Type=Temperature\nNall, 20\n", Render(ic))
	ic, err = NewInitialConditions(&model.InitialVelocity{NodeSet: "Nall", V: [3]float64{1, 0, 0}})
	require.NoError(t, err)
	assert.Equal(t, "*Initial conditions, Type=Velocity\nNall, 1, 1\n", Render(ic))
}
