package calculix

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gocalix/model"
)

func seq(from, n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = from + i
	}
	return ids
}

func TestLineHelpers(t *testing.T) {
	assert.Equal(t, "a, b\n", line("a", "b"))
	assert.Equal(t, ", Name=Steel", param("Name", "Steel"))
	assert.Equal(t, ", Zero=20", param("Zero", 20.))
	assert.Equal(t, ", Inc=1000", param("Inc", 1000))
	assert.Equal(t, "", frequencyParam(1))
	assert.Equal(t, "", frequencyParam(0))
	assert.Equal(t, ", Frequency=3", frequencyParam(3))
	assert.Equal(t, "1e-05", formatFloat(1e-5))
	assert.Equal(t, "210000", formatFloat(210000))
	assert.Equal(t, "-0.5", formatFloat(-0.5))
}

func TestIDLinesWrap(t *testing.T) {
	s := idLines(seq(1, 20))
	lines := strings.Split(strings.TrimSuffix(s, EOL), EOL)
	require.Len(t, lines, 2)
	assert.Equal(t, "1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16", lines[0])
	assert.Equal(t, "17, 18, 19, 20", lines[1])
	assert.Equal(t, "", idLines(nil))
	assert.Equal(t, 1, strings.Count(idLines(seq(1, 16)), EOL))
}

func TestGeneralKeywords(t *testing.T) {
	assert.Equal(t, "*Heading\nModel\n", Render(&Heading{}))
	assert.Equal(t, "*Heading\nBracket\n", Render(&Heading{Title: " Bracket "}))
	assert.Equal(t, "** Name: Fix\n", Render(&Comment{Text: "Name: Fix"}))
	assert.Equal(t, titleRule+"\n** Steps\n"+titleRule+"\n", Render(&Title{Text: "Steps"}))
	assert.Equal(t, "*Include, Input=mesh.inp\n", Render(&Include{File: "mesh.inp"}))
	pc := &PhysicalConstants{Constants: model.PhysicalConstants{AbsoluteZero: -273.15, StefanBoltzmann: 5.669e-11}}
	assert.Equal(t, "*Physical constants, Absolute zero=-273.15, Stefan Boltzmann=5.669e-11\n", Render(pc))

	sub, err := NewSubmodel(model.SubmodelDefinition{NodeSet: "Nsub", GlobalFile: "global.frd"})
	require.NoError(t, err)
	assert.Equal(t, "*Submodel, Type=Node, Input=global.frd\nNsub\n", Render(sub))
	_, err = NewSubmodel(model.SubmodelDefinition{NodeSet: "Nsub"})
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestMeshKeywords(t *testing.T) {
	nodes := &Nodes{Nodes: []model.Node{{ID: 1}, {ID: 2, X: 1.5, Y: -2, Z: 1e-6}}}
	assert.Equal(t, "*Node\n1, 0, 0, 0\n2, 1.5, -2, 1e-06\n", Render(nodes))

	{ // A C3D20 element needs a continuation line
		el, err := NewElements(model.ElementBlock{Type: "C3D20", ElementSet: "Eall",
			Elements: []model.Element{{ID: 7, Nodes: seq(1, 20)}}})
		require.NoError(t, err)
		assert.Equal(t, "*Element, Type=C3D20, Elset=Eall\n", el.KeywordString())
		lines := strings.Split(strings.TrimSuffix(el.DataString(), EOL), EOL)
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], "7, 1, 2,"))
		assert.True(t, strings.HasSuffix(lines[0], ", 15,"))
		assert.Equal(t, "16, 17, 18, 19, 20", lines[1])
	}
	{
		el, err := NewElements(model.ElementBlock{Type: "C3D4", Elements: []model.Element{{ID: 1, Nodes: []int{1, 2, 3, 4}}}})
		require.NoError(t, err)
		assert.Equal(t, "*Element, Type=C3D4\n1, 1, 2, 3, 4\n", Render(el))
		_, err = NewElements(model.ElementBlock{})
		assert.Error(t, err)
	}

	assert.Equal(t, "*Nset, Nset=Nfix\n1, 2, 3\n", Render(&NodeSet{Set: model.NodeSet{Name: "Nfix", IDs: []int{1, 2, 3}}}))
	assert.Equal(t, "*Elset, Elset=Eall\n4\n", Render(&ElementSet{Set: model.ElementSet{Name: "Eall", IDs: []int{4}}}))
	{ // Sets need members
		ns, err := NewNodeSet(model.NodeSet{Name: "Nfix", IDs: []int{7}})
		require.NoError(t, err)
		assert.Equal(t, "*Nset, Nset=Nfix\n7\n", Render(ns))
		_, err = NewNodeSet(model.NodeSet{Name: "Empty"})
		assert.ErrorIs(t, err, ErrUnsupported)
		es, err := NewElementSet(model.ElementSet{Name: "Eall", IDs: []int{1, 2}})
		require.NoError(t, err)
		assert.Equal(t, "*Elset, Elset=Eall\n1, 2\n", Render(es))
		_, err = NewElementSet(model.ElementSet{Name: "Empty", IDs: []int{}})
		assert.ErrorIs(t, err, ErrUnsupported)
	}

	s, err := NewSurface(model.Surface{Name: "Load", Faces: []model.SurfaceFace{{Elements: "1", Face: "S2"}, {Elements: "Eface", Face: "S4"}}})
	require.NoError(t, err)
	assert.Equal(t, "*Surface, Name=Load, Type=Element\n1, S2\nEface, S4\n", Render(s))
	s, err = NewSurface(model.Surface{Name: "Slave", Type: model.Surface_Node, NodeSet: "Nslave"})
	require.NoError(t, err)
	assert.Equal(t, "*Surface, Name=Slave, Type=Node\nNslave\n", Render(s))
	_, err = NewSurface(model.Surface{Name: "Empty"})
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestMaterialKeywords(t *testing.T) {
	zero := 20.
	steel := &model.Material{
		Name:         "Steel",
		Density:      []model.DensityRow{{Density: 7.85e-9}},
		Elastic:      []model.ElasticRow{{Young: 210000, Poisson: 0.3, Temperature: 20}, {Young: 190000, Poisson: 0.3, Temperature: 400}},
		Expansion:    []model.ExpansionRow{{Alpha: 1.2e-5}},
		ExpansionRef: &zero,
		Plastic:      []model.PlasticRow{{YieldStress: 235}, {YieldStress: 300, PlasticStrain: 0.1}},
		Hardening:    model.Hardening_Kinematic,
	}
	kws, err := MaterialKeywords(steel)
	require.NoError(t, err)
	var sb strings.Builder
	for _, k := range kws {
		sb.WriteString(Render(k))
	}
	assert.Equal(t, "*Material, Name=Steel\n"+
		"*Density\n7.85e-09\n"+
		"*Elastic\n210000, 0.3, 20\n190000, 0.3, 400\n"+
		"*Expansion, Zero=20\n1.2e-05\n"+
		"*Plastic, Hardening=Kinematic\n235, 0\n300, 0.1\n", sb.String())

	thermal := &model.Material{Name: "Copper",
		Conductivity: []model.ConductivityRow{{Conductivity: 0.4}},
		SpecificHeat: []model.SpecificHeatRow{{SpecificHeat: 3.85e8}}}
	kws, err = MaterialKeywords(thermal)
	require.NoError(t, err)
	require.Len(t, kws, 3)
	assert.Equal(t, "*Conductivity\n0.4\n", Render(kws[1]))
	assert.Equal(t, "*Specific heat\n3.85e+08\n", Render(kws[2]))

	_, err = MaterialKeywords(&model.Material{Name: "Empty"})
	assert.ErrorIs(t, err, ErrUnsupported)
	_, err = MaterialKeywords(&model.Material{Elastic: steel.Elastic})
	assert.Error(t, err)
	_, err = MaterialKeywords(&model.Material{Name: "P", Plastic: steel.Plastic})
	assert.Error(t, err)
}

func TestSectionKeywords(t *testing.T) {
	k, err := NewSection(&model.SolidSection{ElementSet: "Eall", Material: "Steel"})
	require.NoError(t, err)
	assert.Equal(t, "*Solid section, Elset=Eall, Material=Steel\n", Render(k))

	k, err = NewSection(&model.ShellSection{ElementSet: "Eshell", Material: "Steel", Thickness: 2, Offset: -0.5})
	require.NoError(t, err)
	assert.Equal(t, "*Shell section, Elset=Eshell, Material=Steel, Offset=-0.5\n2\n", Render(k))
	_, err = NewSection(&model.ShellSection{Name: "S", ElementSet: "Eshell", Material: "Steel"})
	assert.Error(t, err)

	k, err = NewSection(&model.MembraneSection{ElementSet: "Em", Material: "Rubber", Thickness: 0.1})
	require.NoError(t, err)
	assert.Equal(t, "*Membrane section, Elset=Em, Material=Rubber\n0.1\n", Render(k))

	beam := &model.BeamSection{ElementSet: "Ebeam", Material: "Steel", Shape: model.Beam_Rect,
		Dimensions: []float64{10, 20}, Direction: [3]float64{0, 0, 2}}
	k, err = NewSection(beam)
	require.NoError(t, err)
	assert.Equal(t, "*Beam section, Elset=Ebeam, Material=Steel, Section=Rect\n10, 20\n0, 0, 1\n", Render(k))

	beam.Shape = model.Beam_Box
	_, err = NewSection(beam)
	assert.ErrorIs(t, err, ErrUnsupported)
	beam.Shape, beam.Direction = model.Beam_Pipe, [3]float64{}
	_, err = NewSection(beam)
	assert.Error(t, err)
}

func TestContactKeywords(t *testing.T) {
	si := &model.SurfaceInteraction{Name: "SI",
		Behavior:       &model.SurfaceBehavior{PressureOverclosure: model.Overclosure_Linear, Parameters: []float64{1e6, 0.1}},
		Friction:       &model.Friction{Coefficient: 0.2, StickSlope: 5000},
		GapConductance: []model.GapConductanceRow{{Conductance: 100, Pressure: 0}},
	}
	kws, err := InteractionKeywords(si)
	require.NoError(t, err)
	var sb strings.Builder
	for _, k := range kws {
		sb.WriteString(Render(k))
	}
	assert.Equal(t, "*Surface interaction, Name=SI\n"+
		"*Surface behavior, Pressure-overclosure=Linear\n1e+06, 0.1\n"+
		"*Friction\n0.2, 5000\n"+
		"*Gap conductance\n100, 0\n", sb.String())

	hard, err := NewSurfaceBehavior(model.SurfaceBehavior{})
	require.NoError(t, err)
	assert.Equal(t, "*Surface behavior, Pressure-overclosure=Hard\n", Render(hard))
	tab, err := NewSurfaceBehavior(model.SurfaceBehavior{PressureOverclosure: model.Overclosure_Tabular,
		Table: [][2]float64{{0, 0}, {100, 0.01}}})
	require.NoError(t, err)
	assert.Equal(t, "0, 0\n100, 0.01\n", tab.DataString())
	_, err = NewSurfaceBehavior(model.SurfaceBehavior{PressureOverclosure: model.Overclosure_Exponential, Parameters: []float64{1}})
	assert.Error(t, err)
	_, err = NewSurfaceBehavior(model.SurfaceBehavior{PressureOverclosure: model.Overclosure_Tabular})
	assert.Error(t, err)
	_, err = InteractionKeywords(&model.SurfaceInteraction{Name: "Bare"})
	assert.Error(t, err)

	cp, err := NewContactPair(model.ContactPair{Name: "C", Interaction: "SI", Type: model.Contact_SurfaceToSurface,
		Master: "M1", Slave: "S1", Adjust: 0.1})
	require.NoError(t, err)
	assert.Equal(t, "*Contact pair, Interaction=SI, Type=Surface to surface, Adjust=0.1\nS1, M1\n", Render(cp))
	_, err = NewContactPair(model.ContactPair{Name: "C", Master: "A", Slave: "A"})
	assert.Error(t, err)

	tie, err := NewTie(model.Tie{Name: "T1", Master: "M", Slave: "S", PositionTolerance: 0.5, NoAdjust: true})
	require.NoError(t, err)
	assert.Equal(t, "*Tie, Name=T1, Position tolerance=0.5, Adjust=No\nS, M\n", Render(tie))
	_, err = NewTie(model.Tie{Name: "T2", Master: "M"})
	assert.Error(t, err)
}
