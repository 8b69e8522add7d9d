package calculix

import (
	"math"
	"strconv"
	"strings"

	"github.com/notargets/gocalix/model"
)

type dataRows [][]string

func (r dataRows) String() string {
	var sb strings.Builder
	for _, row := range r {
		sb.WriteString(line(row...))
	}
	return sb.String()
}

// componentRows writes one "region, dof, value" row per non-zero component
// starting at firstDOF, or a single zero row when all components are zero
func componentRows(region string, firstDOF int, values []float64) dataRows {
	var rows dataRows
	for i, v := range values {
		if v != 0 {
			rows = append(rows, []string{region, strconv.Itoa(firstDOF + i), formatFloat(v)})
		}
	}
	if len(rows) == 0 {
		rows = dataRows{{region, strconv.Itoa(firstDOF), "0"}}
	}
	return rows
}

const temperatureDOF = 11

// Boundary is the *Boundary directive; SubmodelStep > 0 writes a submodel boundary
type Boundary struct {
	SubmodelStep int
	Rows         dataRows
}

func (b *Boundary) KeywordString() string {
	if b.SubmodelStep > 0 {
		return "*Boundary, Submodel" + param("Step", b.SubmodelStep) + EOL
	}
	return "*Boundary" + EOL
}
func (b *Boundary) DataString() string { return b.Rows.String() }

func NewBoundary(bc model.BoundaryCondition) (*Boundary, error) {
	switch b := bc.(type) {
	case *model.FixedBC:
		last := "3"
		if b.Rotations {
			last = "6"
		}
		return &Boundary{Rows: dataRows{{b.NodeSet, "1", last}}}, nil
	case *model.DisplacementRotation:
		var rows dataRows
		for i, v := range b.DOF {
			if model.IsFree(v) {
				continue
			}
			dof := strconv.Itoa(i + 1)
			rows = append(rows, []string{b.NodeSet, dof, dof, formatFloat(v)})
		}
		if len(rows) == 0 {
			return nil, unsupported("displacement/rotation %q constrains no degree of freedom", b.Name)
		}
		return &Boundary{Rows: rows}, nil
	case *model.SubmodelBC:
		if b.GlobalStep < 1 {
			return nil, unsupported("submodel boundary condition %q needs a global step", b.Name)
		}
		var rows dataRows
		for i, on := range b.DOF {
			if on {
				dof := strconv.Itoa(i + 1)
				rows = append(rows, []string{b.NodeSet, dof, dof})
			}
		}
		if len(rows) == 0 {
			return nil, unsupported("submodel boundary condition %q selects no degree of freedom", b.Name)
		}
		return &Boundary{SubmodelStep: b.GlobalStep, Rows: rows}, nil
	case *model.TemperatureBC:
		dof := strconv.Itoa(temperatureDOF)
		return &Boundary{Rows: dataRows{{b.NodeSet, dof, dof, formatFloat(b.Temperature)}}}, nil
	}
	return nil, unsupported("boundary condition %q of type %T", bc.Label(), bc)
}

type Cload struct{ Rows dataRows }

func (c *Cload) KeywordString() string { return "*Cload" + EOL }
func (c *Cload) DataString() string    { return c.Rows.String() }

type Dload struct{ Rows dataRows }

func (d *Dload) KeywordString() string { return "*Dload" + EOL }
func (d *Dload) DataString() string    { return d.Rows.String() }

type Cflux struct{ Rows dataRows }

func (c *Cflux) KeywordString() string { return "*Cflux" + EOL }
func (c *Cflux) DataString() string    { return c.Rows.String() }

type Dflux struct{ Rows dataRows }

func (d *Dflux) KeywordString() string { return "*Dflux" + EOL }
func (d *Dflux) DataString() string    { return d.Rows.String() }

type Film struct{ Rows dataRows }

func (f *Film) KeywordString() string { return "*Film" + EOL }
func (f *Film) DataString() string    { return f.Rows.String() }

type Radiate struct{ Rows dataRows }

func (r *Radiate) KeywordString() string { return "*Radiate" + EOL }
func (r *Radiate) DataString() string    { return r.Rows.String() }

// NewLoad returns the directive writing a step load. The model resolves node
// counts for surface tractions.
func NewLoad(l model.Load, m *model.Model) (Keyword, error) {
	switch ld := l.(type) {
	case *model.CLoad:
		return &Cload{Rows: componentRows(ld.NodeSet, 1, ld.F[:])}, nil
	case *model.MomentLoad:
		return &Cload{Rows: componentRows(ld.NodeSet, 4, ld.M[:])}, nil
	case *model.STLoad:
		ns, ok := m.NodeSet(ld.NodeSet)
		if !ok || len(ns.IDs) == 0 {
			return nil, unsupported("surface traction %q needs the nodes of node set %q", ld.Name, ld.NodeSet)
		}
		n := float64(len(ns.IDs))
		share := []float64{ld.F[0] / n, ld.F[1] / n, ld.F[2] / n}
		return &Cload{Rows: componentRows(ld.NodeSet, 1, share)}, nil
	case *model.DLoad:
		return &Dload{Rows: dataRows{{ld.Surface, "P", formatFloat(ld.Pressure)}}}, nil
	case *model.ShellEdgeLoad:
		return &Dload{Rows: dataRows{{ld.Surface, "EDNOR", formatFloat(ld.Magnitude)}}}, nil
	case *model.GravityLoad:
		g := norm(ld.G)
		dir, err := unit3("gravity load "+ld.Name, ld.G)
		if err != nil {
			return nil, err
		}
		row := append([]string{ld.ElementSet, "GRAV", formatFloat(g)}, floats(dir[:]...)...)
		return &Dload{Rows: dataRows{row}}, nil
	case *model.CentrifLoad:
		axis, err := unit3("centrifugal load "+ld.Name, ld.Axis)
		if err != nil {
			return nil, err
		}
		row := []string{ld.ElementSet, "CENTRIF", formatFloat(ld.Omega * ld.Omega)}
		row = append(row, floats(ld.Point[:]...)...)
		row = append(row, floats(axis[:]...)...)
		return &Dload{Rows: dataRows{row}}, nil
	case *model.PreTensionLoad:
		node := strconv.Itoa(ld.ReferenceNode)
		if ld.Type == model.PreTension_Length {
			return &Boundary{Rows: dataRows{{node, "1", "1", formatFloat(ld.Magnitude)}}}, nil
		}
		return &Cload{Rows: dataRows{{node, "1", formatFloat(ld.Magnitude)}}}, nil
	case *model.CFlux:
		return &Cflux{Rows: dataRows{{ld.NodeSet, strconv.Itoa(temperatureDOF), formatFloat(ld.Flux)}}}, nil
	case *model.DFlux:
		return &Dflux{Rows: dataRows{{ld.Surface, "S", formatFloat(ld.Flux)}}}, nil
	case *model.BodyFlux:
		return &Dflux{Rows: dataRows{{ld.ElementSet, "BF", formatFloat(ld.Flux)}}}, nil
	case *model.FilmHeatTransfer:
		return &Film{Rows: dataRows{{ld.Surface, "F", formatFloat(ld.SinkTemperature), formatFloat(ld.FilmCoefficient)}}}, nil
	case *model.RadiationHeatTransfer:
		if ld.Emissivity < 0 || ld.Emissivity > 1 || math.IsNaN(ld.Emissivity) {
			return nil, unsupported("radiation %q emissivity %v is outside [0, 1]", ld.Name, ld.Emissivity)
		}
		label := "R"
		if ld.Cavity {
			label = "CR"
		}
		return &Radiate{Rows: dataRows{{ld.Surface, label, formatFloat(ld.SinkTemperature), formatFloat(ld.Emissivity)}}}, nil
	}
	return nil, unsupported("load %q of type %T", l.Label(), l)
}

// PreTensionSection is the model level definition of a bolt pre-tension section
type PreTensionSection struct {
	Load      *model.PreTensionLoad
	direction [3]float64
}

func NewPreTensionSection(l *model.PreTensionLoad) (*PreTensionSection, error) {
	if l.Surface == "" || l.ReferenceNode < 1 {
		return nil, unsupported("pre-tension %q needs a surface and a reference node", l.Name)
	}
	dir, err := unit3("pre-tension "+l.Name, l.Direction)
	if err != nil {
		return nil, err
	}
	return &PreTensionSection{Load: l, direction: dir}, nil
}

func (p *PreTensionSection) KeywordString() string {
	return "*Pre-tension section" + param("Surface", p.Load.Surface) + param("Node", p.Load.ReferenceNode) + EOL
}
func (p *PreTensionSection) DataString() string { return line(floats(p.direction[:]...)...) }

// Temperature is the *Temperature defined field directive
type Temperature struct{ Rows dataRows }

func (t *Temperature) KeywordString() string { return "*Temperature" + EOL }
func (t *Temperature) DataString() string    { return t.Rows.String() }

func NewDefinedField(f model.DefinedField) (*Temperature, error) {
	switch df := f.(type) {
	case *model.DefinedTemperature:
		return &Temperature{Rows: dataRows{{df.NodeSet, formatFloat(df.Temperature)}}}, nil
	}
	return nil, unsupported("defined field %q of type %T", f.Label(), f)
}

type InitialConditions struct {
	Type string
	Rows dataRows
}

func (i *InitialConditions) KeywordString() string {
	return "*Initial conditions" + param("Type", i.Type) + EOL
}
func (i *InitialConditions) DataString() string { return i.Rows.String() }

func NewInitialConditions(c model.InitialCondition) (*InitialConditions, error) {
	switch ic := c.(type) {
	case *model.InitialTemperature:
		return &InitialConditions{Type: "Temperature", Rows: dataRows{{ic.NodeSet, formatFloat(ic.Temperature)}}}, nil
	case *model.InitialVelocity:
		return &InitialConditions{Type: "Velocity", Rows: componentRows(ic.NodeSet, 1, ic.V[:])}, nil
	}
	return nil, unsupported("initial condition %q of type %T", c.Label(), c)
}
