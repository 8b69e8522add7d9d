package calculix

import (
	"strings"

	"github.com/notargets/gocalix/model"
)

type SurfaceInteraction struct {
	Name string
}

func (s *SurfaceInteraction) KeywordString() string {
	return "*Surface interaction" + param("Name", s.Name) + EOL
}
func (s *SurfaceInteraction) DataString() string { return "" }

type SurfaceBehavior struct {
	Behavior model.SurfaceBehavior
}

// parameter count limits of the pressure-overclosure relations
var behaviorParameters = map[model.PressureOverclosure][2]int{
	model.Overclosure_Hard:        {0, 0},
	model.Overclosure_Linear:      {1, 3},
	model.Overclosure_Exponential: {2, 2},
	model.Overclosure_Tied:        {1, 1},
	model.Overclosure_Tabular:     {0, 0},
}

func NewSurfaceBehavior(b model.SurfaceBehavior) (*SurfaceBehavior, error) {
	limits, ok := behaviorParameters[b.PressureOverclosure]
	if !ok {
		return nil, unsupported("pressure-overclosure %d", b.PressureOverclosure)
	}
	if n := len(b.Parameters); n < limits[0] || n > limits[1] {
		return nil, unsupported("%s pressure-overclosure takes %d to %d parameters, has %d",
			b.PressureOverclosure, limits[0], limits[1], n)
	}
	if b.PressureOverclosure == model.Overclosure_Tabular && len(b.Table) == 0 {
		return nil, unsupported("tabular pressure-overclosure without table rows")
	}
	return &SurfaceBehavior{Behavior: b}, nil
}

func (s *SurfaceBehavior) KeywordString() string {
	return "*Surface behavior" + param("Pressure-overclosure", s.Behavior.PressureOverclosure) + EOL
}

func (s *SurfaceBehavior) DataString() string {
	if s.Behavior.PressureOverclosure == model.Overclosure_Tabular {
		var sb strings.Builder
		for _, r := range s.Behavior.Table {
			sb.WriteString(line(floats(r[0], r[1])...))
		}
		return sb.String()
	}
	if len(s.Behavior.Parameters) == 0 {
		return ""
	}
	return line(floats(s.Behavior.Parameters...)...)
}

type Friction struct {
	Friction model.Friction
}

func (f *Friction) KeywordString() string { return "*Friction" + EOL }
func (f *Friction) DataString() string {
	return line(floats(f.Friction.Coefficient, f.Friction.StickSlope)...)
}

type GapConductance struct {
	Rows []model.GapConductanceRow
}

func (g *GapConductance) KeywordString() string { return "*Gap conductance" + EOL }
func (g *GapConductance) DataString() string {
	rows, ts := make([][]float64, len(g.Rows)), make([]float64, len(g.Rows))
	for i, r := range g.Rows {
		rows[i], ts[i] = []float64{r.Conductance, r.Pressure}, r.Temperature
	}
	return table(rows, ts)
}

// InteractionKeywords returns *Surface interaction and its property keywords
func InteractionKeywords(si *model.SurfaceInteraction) ([]Keyword, error) {
	kws := []Keyword{&SurfaceInteraction{Name: si.Name}}
	if si.Behavior == nil {
		return nil, unsupported("surface interaction %q has no surface behavior", si.Name)
	}
	sb, err := NewSurfaceBehavior(*si.Behavior)
	if err != nil {
		return nil, err
	}
	kws = append(kws, sb)
	if si.Friction != nil {
		kws = append(kws, &Friction{Friction: *si.Friction})
	}
	if len(si.GapConductance) > 0 {
		kws = append(kws, &GapConductance{Rows: si.GapConductance})
	}
	return kws, nil
}

type ContactPair struct {
	Pair model.ContactPair
}

func NewContactPair(cp model.ContactPair) (*ContactPair, error) {
	if cp.Master == "" || cp.Slave == "" {
		return nil, unsupported("contact pair %q needs a master and a slave surface", cp.Name)
	}
	if cp.Master == cp.Slave {
		return nil, unsupported("contact pair %q uses %q as master and slave", cp.Name, cp.Master)
	}
	return &ContactPair{Pair: cp}, nil
}

func (c *ContactPair) KeywordString() string {
	kw := "*Contact pair" + param("Interaction", c.Pair.Interaction) + param("Type", c.Pair.Type)
	if c.Pair.Adjust > 0 {
		kw += param("Adjust", c.Pair.Adjust)
	}
	return kw + EOL
}
func (c *ContactPair) DataString() string { return line(c.Pair.Slave, c.Pair.Master) }

type Tie struct {
	Tie model.Tie
}

func NewTie(t model.Tie) (*Tie, error) {
	if t.Master == "" || t.Slave == "" {
		return nil, unsupported("tie %q needs a master and a slave surface", t.Name)
	}
	return &Tie{Tie: t}, nil
}

func (t *Tie) KeywordString() string {
	kw := "*Tie" + param("Name", t.Tie.Name)
	if t.Tie.PositionTolerance > 0 {
		kw += param("Position tolerance", t.Tie.PositionTolerance)
	}
	if t.Tie.NoAdjust {
		kw += param("Adjust", "No")
	}
	return kw + EOL
}
func (t *Tie) DataString() string { return line(t.Tie.Slave, t.Tie.Master) }
