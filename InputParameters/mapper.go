package InputParameters

import (
	"fmt"
	"strings"

	"github.com/notargets/gocalix/model"
	"github.com/notargets/gocalix/types"
	"github.com/notargets/gocalix/units"
)

// mapper converts the file's quantities under one unit context and keeps the
// first error, so a mapping pass reads straight through
type mapper struct {
	ctx units.Context
	err error
}

func (mp *mapper) fail(err error) {
	if mp.err == nil {
		mp.err = err
	}
}

func (mp *mapper) q(v Quantity, kind units.Quantity, what string) float64 {
	if mp.err != nil {
		return 0
	}
	f, err := units.ParseQuantity(string(v), kind, mp.ctx)
	if err != nil {
		mp.fail(fmt.Errorf("%s: %w", what, err))
	}
	return f
}

func (mp *mapper) q3(v [3]Quantity, kind units.Quantity, what string) [3]float64 {
	return [3]float64{mp.q(v[0], kind, what), mp.q(v[1], kind, what), mp.q(v[2], kind, what)}
}

// optional returns Free for an empty value, the DOF is then left unconstrained
func (mp *mapper) optional(v Quantity, kind units.Quantity, what string) float64 {
	if strings.TrimSpace(string(v)) == "" {
		return model.Free
	}
	return mp.q(v, kind, what)
}

// ToModel maps the file onto an analysis model. The file's UnitSystem wins,
// system is used when the file names none.
func (ip *InputParameters) ToModel(system units.System) (*model.Model, error) {
	if ip.UnitSystem != "" {
		s, err := units.ParseSystem(ip.UnitSystem)
		if err != nil {
			return nil, err
		}
		system = s
	}
	m := model.NewModel(ip.Title, system)
	mp := &mapper{ctx: m.Units()}
	m.Includes = ip.Include
	if pc := ip.PhysicalConstants; pc != nil {
		m.PhysicalConstants = &model.PhysicalConstants{
			AbsoluteZero:    mp.q(pc.AbsoluteZero, units.Temperature, "absolute zero"),
			StefanBoltzmann: pc.StefanBoltzmann,
		}
	}
	if sm := ip.Submodel; sm != nil {
		m.Submodel = &model.SubmodelDefinition{NodeSet: sm.NodeSet, GlobalFile: sm.GlobalFile}
	}
	mp.mesh(ip, m)
	for _, mi := range ip.Materials {
		m.Materials = append(m.Materials, mp.material(mi))
	}
	for _, si := range ip.Sections {
		m.Sections = append(m.Sections, mp.section(si))
	}
	for _, ii := range ip.SurfaceInteractions {
		m.SurfaceInteractions = append(m.SurfaceInteractions, mp.interaction(ii))
	}
	for _, ci := range ip.ContactPairs {
		m.ContactPairs = append(m.ContactPairs, mp.contactPair(ci))
	}
	for _, ti := range ip.Ties {
		m.Ties = append(m.Ties, model.Tie{Name: ti.Name, Master: ti.Master, Slave: ti.Slave,
			PositionTolerance: mp.q(ti.PositionTolerance, units.Length, "tie "+ti.Name),
			NoAdjust:          ti.NoAdjust})
	}
	for _, ic := range ip.InitialConditions {
		m.InitialConditions = append(m.InitialConditions, mp.initial(ic))
	}
	if mp.err != nil {
		return nil, mp.err
	}
	for _, si := range ip.Steps {
		s, err := mp.step(si)
		if err != nil {
			return nil, err
		}
		if err = m.AddStep(s); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (mp *mapper) mesh(ip *InputParameters, m *model.Model) {
	for _, n := range ip.Nodes {
		m.Mesh.Nodes = append(m.Mesh.Nodes, model.Node{ID: int(n[0]), X: n[1], Y: n[2], Z: n[3]})
	}
	for _, b := range ip.Elements {
		block := model.ElementBlock{Type: b.Type, ElementSet: b.Elset}
		for _, e := range b.Elements {
			if len(e) < 2 {
				mp.fail(fmt.Errorf("element block %s: element %v needs an id and nodes", b.Type, e))
				return
			}
			block.Elements = append(block.Elements, model.Element{ID: e[0], Nodes: e[1:]})
		}
		m.Mesh.Blocks = append(m.Mesh.Blocks, block)
	}
	for _, s := range ip.NodeSets {
		m.NodeSets = append(m.NodeSets, model.NodeSet{Name: s.Name, IDs: s.IDs})
	}
	for _, s := range ip.ElementSets {
		m.ElementSets = append(m.ElementSets, model.ElementSet{Name: s.Name, IDs: s.IDs})
	}
	for _, s := range ip.Surfaces {
		surf := model.Surface{Name: s.Name, NodeSet: s.NodeSet}
		switch types.Key(s.Type) {
		case "", "element":
			surf.Type = model.Surface_Element
		case "node":
			surf.Type = model.Surface_Node
		default:
			mp.fail(fmt.Errorf("surface %q: unknown type %q", s.Name, s.Type))
		}
		for _, f := range s.Faces {
			surf.Faces = append(surf.Faces, model.SurfaceFace{Elements: string(f.Elements), Face: string(f.Face)})
		}
		m.Surfaces = append(m.Surfaces, surf)
	}
}

func (mp *mapper) material(mi MaterialInput) model.Material {
	what := "material " + mi.Name
	mat := model.Material{Name: mi.Name}
	if mi.Density != "" {
		mat.Density = []model.DensityRow{{Density: mp.q(mi.Density, units.Density, what)}}
	}
	for _, r := range mi.Elastic {
		mat.Elastic = append(mat.Elastic, model.ElasticRow{
			Young:       mp.q(r.Young, units.Pressure, what),
			Poisson:     r.Poisson,
			Temperature: mp.q(r.Temperature, units.Temperature, what),
		})
	}
	for _, r := range mi.Expansion {
		mat.Expansion = append(mat.Expansion, model.ExpansionRow{
			Alpha:       mp.q(r.Alpha, units.ThermalExpansion, what),
			Temperature: mp.q(r.Temperature, units.Temperature, what),
		})
	}
	if mi.ExpansionZero != "" {
		zero := mp.q(mi.ExpansionZero, units.Temperature, what)
		mat.ExpansionRef = &zero
	}
	for _, r := range mi.Conductivity {
		mat.Conductivity = append(mat.Conductivity, model.ConductivityRow{
			Conductivity: mp.q(r.Conductivity, units.ThermalConductivity, what),
			Temperature:  mp.q(r.Temperature, units.Temperature, what),
		})
	}
	for _, r := range mi.SpecificHeat {
		mat.SpecificHeat = append(mat.SpecificHeat, model.SpecificHeatRow{
			SpecificHeat: mp.q(r.SpecificHeat, units.SpecificHeat, what),
			Temperature:  mp.q(r.Temperature, units.Temperature, what),
		})
	}
	for _, r := range mi.Plastic {
		mat.Plastic = append(mat.Plastic, model.PlasticRow{
			YieldStress:   mp.q(r.YieldStress, units.Pressure, what),
			PlasticStrain: r.PlasticStrain,
			Temperature:   mp.q(r.Temperature, units.Temperature, what),
		})
	}
	switch types.Key(mi.Hardening) {
	case "", "isotropic":
		mat.Hardening = model.Hardening_Isotropic
	case "kinematic":
		mat.Hardening = model.Hardening_Kinematic
	case "combined":
		mat.Hardening = model.Hardening_Combined
	default:
		mp.fail(fmt.Errorf("%s: unknown hardening %q", what, mi.Hardening))
	}
	return mat
}

func (mp *mapper) section(si SectionInput) model.Section {
	what := "section " + si.Name
	thickness := mp.q(si.Thickness, units.Length, what)
	switch types.Key(si.Type) {
	case "solid":
		return &model.SolidSection{Name: si.Name, ElementSet: si.Elset, Material: si.Material, Thickness: thickness}
	case "shell":
		return &model.ShellSection{Name: si.Name, ElementSet: si.Elset, Material: si.Material,
			Thickness: thickness, Offset: si.Offset}
	case "membrane":
		return &model.MembraneSection{Name: si.Name, ElementSet: si.Elset, Material: si.Material,
			Thickness: thickness, Offset: si.Offset}
	case "beam":
		b := &model.BeamSection{Name: si.Name, ElementSet: si.Elset, Material: si.Material, Direction: si.Direction}
		switch types.Key(si.Shape) {
		case "rect":
			b.Shape = model.Beam_Rect
		case "circ":
			b.Shape = model.Beam_Circ
		case "pipe":
			b.Shape = model.Beam_Pipe
		case "box":
			b.Shape = model.Beam_Box
		default:
			mp.fail(fmt.Errorf("%s: unknown beam shape %q", what, si.Shape))
		}
		for _, d := range si.Dimensions {
			b.Dimensions = append(b.Dimensions, mp.q(d, units.Length, what))
		}
		return b
	}
	mp.fail(fmt.Errorf("%w: %s has type %q", model.ErrUnsupportedKind, what, si.Type))
	return &model.SolidSection{Name: si.Name}
}

var overclosureNames = map[string]model.PressureOverclosure{
	"":            model.Overclosure_Hard,
	"hard":        model.Overclosure_Hard,
	"linear":      model.Overclosure_Linear,
	"exponential": model.Overclosure_Exponential,
	"tabular":     model.Overclosure_Tabular,
	"tied":        model.Overclosure_Tied,
}

func (mp *mapper) interaction(ii InteractionInput) model.SurfaceInteraction {
	po, ok := overclosureNames[types.Key(ii.Behavior)]
	if !ok {
		mp.fail(fmt.Errorf("surface interaction %q: unknown pressure-overclosure %q", ii.Name, ii.Behavior))
	}
	si := model.SurfaceInteraction{Name: ii.Name,
		Behavior: &model.SurfaceBehavior{PressureOverclosure: po, Parameters: ii.Parameters, Table: ii.Table}}
	if f := ii.Friction; f != nil {
		si.Friction = &model.Friction{Coefficient: f.Coefficient,
			StickSlope: mp.q(f.StickSlope, units.ForcePerLength, "friction of "+ii.Name)}
	}
	for _, g := range ii.GapConductance {
		si.GapConductance = append(si.GapConductance, model.GapConductanceRow{Conductance: g[0], Pressure: g[1], Temperature: g[2]})
	}
	return si
}

func (mp *mapper) contactPair(ci ContactPairInput) model.ContactPair {
	cp := model.ContactPair{Name: ci.Name, Interaction: ci.Interaction, Master: ci.Master, Slave: ci.Slave,
		Adjust: mp.q(ci.Adjust, units.Length, "contact pair "+ci.Name)}
	switch types.Key(ci.Type) {
	case "", "surfacetosurface":
		cp.Type = model.Contact_SurfaceToSurface
	case "nodetosurface":
		cp.Type = model.Contact_NodeToSurface
	case "mortar":
		cp.Type = model.Contact_Mortar
	default:
		mp.fail(fmt.Errorf("contact pair %q: unknown type %q", ci.Name, ci.Type))
	}
	return cp
}

func (mp *mapper) initial(ic InitialInput) model.InitialCondition {
	what := "initial condition " + ic.Name
	switch types.Key(ic.Type) {
	case "temperature":
		return &model.InitialTemperature{Name: ic.Name, NodeSet: ic.Region,
			Temperature: mp.q(ic.Temperature, units.Temperature, what)}
	case "velocity":
		return &model.InitialVelocity{Name: ic.Name, NodeSet: ic.Region, V: mp.q3(ic.Velocity, units.Velocity, what)}
	}
	mp.fail(fmt.Errorf("%w: %s has type %q", model.ErrUnsupportedKind, what, ic.Type))
	return &model.InitialTemperature{Name: ic.Name}
}

func (mp *mapper) step(si StepInput) (*model.Step, error) {
	kind, err := types.ParseStepKind(si.Type)
	if err != nil {
		return nil, fmt.Errorf("step %q: %w", si.Name, err)
	}
	s, err := model.NewStep(si.Name, kind)
	if err != nil {
		return nil, err
	}
	what := "step " + si.Name
	s.Nlgeom, s.Direct, s.Storage, s.SteadyState = si.Nlgeom, si.Direct, si.Storage, si.SteadyState
	if s.Solver, err = model.ParseSolverType(si.Solver); err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	if si.MaxIncrements > 0 {
		s.MaxIncrements = si.MaxIncrements
	}
	if si.NumEigenvalues > 0 {
		s.NumEigenvalues = si.NumEigenvalues
	}
	if si.Accuracy > 0 {
		s.Accuracy = si.Accuracy
	}
	s.Deltmx = si.Deltmx
	for _, t := range []struct {
		v   Quantity
		dst *float64
	}{
		{si.TimePeriod, &s.TimePeriod}, {si.InitialIncrement, &s.InitialIncrement},
		{si.MinIncrement, &s.MinIncrement}, {si.MaxIncrement, &s.MaxIncrement},
	} {
		if t.v != "" {
			*t.dst = mp.q(t.v, units.Time, what)
		}
	}
	for _, bi := range si.BoundaryConditions {
		bc := mp.boundary(bi)
		if mp.err != nil {
			return nil, mp.err
		}
		if err = s.AddBoundaryCondition(bc); err != nil {
			return nil, err
		}
	}
	for _, li := range si.Loads {
		l := mp.load(li)
		if mp.err != nil {
			return nil, mp.err
		}
		if err = s.AddLoad(l); err != nil {
			return nil, err
		}
	}
	for _, fi := range si.DefinedFields {
		kind, err := types.ParseFieldKind(fi.Type)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", what, err)
		}
		if kind != types.Field_Temperature {
			return nil, fmt.Errorf("%w: defined field %q of kind %s", model.ErrUnsupportedKind, fi.Name, kind)
		}
		f := &model.DefinedTemperature{Name: fi.Name, NodeSet: fi.Region,
			Temperature: mp.q(fi.Temperature, units.Temperature, what)}
		if mp.err != nil {
			return nil, mp.err
		}
		if err = s.AddDefinedField(f); err != nil {
			return nil, err
		}
	}
	if len(si.FieldOutputs) > 0 {
		s.FieldOutputs = nil
		for _, oi := range si.FieldOutputs {
			o, err := fieldOutput(oi)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", what, err)
			}
			s.AddFieldOutput(o)
		}
	}
	for _, oi := range si.HistoryOutputs {
		o, err := historyOutput(oi)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", what, err)
		}
		s.AddHistoryOutput(o)
	}
	return s, mp.err
}

func (mp *mapper) boundary(bi BCInput) model.BoundaryCondition {
	kind, err := types.ParseBCKind(bi.Type)
	if err != nil {
		mp.fail(fmt.Errorf("boundary condition %q: %w", bi.Name, err))
		return nil
	}
	what := "boundary condition " + bi.Name
	switch kind {
	case types.BC_Fixed:
		return &model.FixedBC{Name: bi.Name, NodeSet: bi.Region, Rotations: bi.Rotations}
	case types.BC_DisplacementRotation:
		dr := model.NewDisplacementRotation(bi.Name, bi.Region)
		for i, u := range []Quantity{bi.U1, bi.U2, bi.U3} {
			dr.DOF[i] = mp.optional(u, units.Length, what)
		}
		for i, ur := range []Quantity{bi.UR1, bi.UR2, bi.UR3} {
			dr.DOF[3+i] = mp.optional(ur, units.Angle, what)
		}
		return dr
	case types.BC_Submodel:
		sb := &model.SubmodelBC{Name: bi.Name, NodeSet: bi.Region, GlobalStep: bi.GlobalStep}
		for _, d := range bi.DOFs {
			if d < 1 || d > 6 {
				mp.fail(fmt.Errorf("%w: %s selects DOF %d", model.ErrInvalidValue, what, d))
				return nil
			}
			sb.DOF[d-1] = true
		}
		return sb
	case types.BC_Temperature:
		return &model.TemperatureBC{Name: bi.Name, NodeSet: bi.Region,
			Temperature: mp.q(bi.Temperature, units.Temperature, what)}
	}
	mp.fail(fmt.Errorf("%w: %s of kind %s", model.ErrUnsupportedKind, what, kind))
	return nil
}

func (mp *mapper) load(li LoadInput) model.Load {
	kind, err := types.ParseLoadKind(li.Type)
	if err != nil {
		mp.fail(fmt.Errorf("load %q: %w", li.Name, err))
		return nil
	}
	what := "load " + li.Name
	force := func() [3]float64 { return mp.q3([3]Quantity{li.F1, li.F2, li.F3}, units.Force, what) }
	switch kind {
	case types.Load_CLoad:
		return &model.CLoad{Name: li.Name, NodeSet: li.Region, F: force()}
	case types.Load_Moment:
		return &model.MomentLoad{Name: li.Name, NodeSet: li.Region,
			M: mp.q3([3]Quantity{li.M1, li.M2, li.M3}, units.Moment, what)}
	case types.Load_DLoad:
		return &model.DLoad{Name: li.Name, Surface: li.Region, Pressure: mp.q(li.Magnitude, units.Pressure, what)}
	case types.Load_STLoad:
		return &model.STLoad{Name: li.Name, NodeSet: li.Region, F: force()}
	case types.Load_ShellEdge:
		return &model.ShellEdgeLoad{Name: li.Name, Surface: li.Region,
			Magnitude: mp.q(li.Magnitude, units.ForcePerLength, what)}
	case types.Load_Gravity:
		return &model.GravityLoad{Name: li.Name, ElementSet: li.Region, G: mp.q3(li.Gravity, units.Acceleration, what)}
	case types.Load_Centrif:
		return &model.CentrifLoad{Name: li.Name, ElementSet: li.Region,
			Omega: mp.q(li.Omega, units.RotationalSpeed, what),
			Point: mp.q3(li.Point, units.Length, what), Axis: li.Axis}
	case types.Load_PreTension:
		pt := &model.PreTensionLoad{Name: li.Name, Surface: li.Region, ReferenceNode: li.ReferenceNode,
			Direction: li.Direction}
		switch types.Key(li.PreTension) {
		case "", "force":
			pt.Type, pt.Magnitude = model.PreTension_Force, mp.q(li.Magnitude, units.Force, what)
		case "length":
			pt.Type, pt.Magnitude = model.PreTension_Length, mp.q(li.Magnitude, units.Length, what)
		default:
			mp.fail(fmt.Errorf("%s: unknown pre-tension type %q", what, li.PreTension))
		}
		return pt
	case types.Load_CFlux:
		return &model.CFlux{Name: li.Name, NodeSet: li.Region, Flux: mp.q(li.Magnitude, units.Power, what)}
	case types.Load_DFlux:
		return &model.DFlux{Name: li.Name, Surface: li.Region, Flux: mp.q(li.Magnitude, units.HeatFlux, what)}
	case types.Load_BodyFlux:
		return &model.BodyFlux{Name: li.Name, ElementSet: li.Region, Flux: mp.q(li.Magnitude, units.BodyHeatFlux, what)}
	case types.Load_Film:
		return &model.FilmHeatTransfer{Name: li.Name, Surface: li.Region,
			SinkTemperature: mp.q(li.SinkTemperature, units.Temperature, what),
			FilmCoefficient: mp.q(li.FilmCoefficient, units.HeatTransferCoefficient, what)}
	case types.Load_Radiate:
		return &model.RadiationHeatTransfer{Name: li.Name, Surface: li.Region,
			SinkTemperature: mp.q(li.SinkTemperature, units.Temperature, what),
			Emissivity:      li.Emissivity, Cavity: li.Cavity}
	}
	mp.fail(fmt.Errorf("%w: %s of kind %s", model.ErrUnsupportedKind, what, kind))
	return nil
}

func frequency(oi OutputInput) int {
	if oi.Frequency == 0 {
		return 1
	}
	return oi.Frequency
}

func fieldOutput(oi OutputInput) (model.FieldOutput, error) {
	switch types.Key(oi.Type) {
	case "node", "nodal":
		vars, err := model.ParseNodalFieldVariables(oi.Variables)
		if err != nil {
			return nil, err
		}
		o, err := model.NewNodalFieldOutput(oi.Name, frequency(oi), vars)
		if err != nil {
			return nil, err
		}
		o.LastIterations, o.ContactElements, o.LocalAxes = oi.LastIterations, oi.ContactElements, oi.LocalAxes
		return o, nil
	case "element":
		vars, err := model.ParseElementFieldVariables(oi.Variables)
		if err != nil {
			return nil, err
		}
		o, err := model.NewElementFieldOutput(oi.Name, frequency(oi), vars)
		if err != nil {
			return nil, err
		}
		o.LastIterations, o.ContactElements, o.LocalAxes = oi.LastIterations, oi.ContactElements, oi.LocalAxes
		return o, nil
	case "contact":
		vars, err := model.ParseContactFieldVariables(oi.Variables)
		if err != nil {
			return nil, err
		}
		o, err := model.NewContactFieldOutput(oi.Name, frequency(oi), vars)
		if err != nil {
			return nil, err
		}
		o.LastIterations = oi.LastIterations
		return o, nil
	}
	return nil, fmt.Errorf("%w: field output %q has type %q", model.ErrUnsupportedKind, oi.Name, oi.Type)
}

func historyOutput(oi OutputInput) (model.HistoryOutput, error) {
	totals, err := types.ParseTotalsMode(string(oi.Totals))
	if err != nil {
		return nil, fmt.Errorf("output %q: %w", oi.Name, err)
	}
	switch types.Key(oi.Type) {
	case "node", "nodal":
		vars, err := model.ParseNodalHistoryVariables(oi.Variables)
		if err != nil {
			return nil, err
		}
		o, err := model.NewNodalHistoryOutput(oi.Name, oi.Region, frequency(oi), vars)
		if err != nil {
			return nil, err
		}
		o.Totals, o.LocalAxes = totals, oi.LocalAxes
		return o, nil
	case "element":
		vars, err := model.ParseElementHistoryVariables(oi.Variables)
		if err != nil {
			return nil, err
		}
		o, err := model.NewElementHistoryOutput(oi.Name, oi.Region, frequency(oi), vars)
		if err != nil {
			return nil, err
		}
		o.Totals, o.LocalAxes = totals, oi.LocalAxes
		return o, nil
	case "contact":
		vars, err := model.ParseContactHistoryVariables(oi.Variables)
		if err != nil {
			return nil, err
		}
		o, err := model.NewContactHistoryOutput(oi.Name, oi.Region, frequency(oi), vars)
		if err != nil {
			return nil, err
		}
		o.Totals = totals
		return o, nil
	}
	return nil, fmt.Errorf("%w: history output %q has type %q", model.ErrUnsupportedKind, oi.Name, oi.Type)
}
