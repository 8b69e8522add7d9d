package calculix

import "github.com/notargets/gocalix/model"

type Material struct {
	Name string
}

func (m *Material) KeywordString() string { return "*Material" + param("Name", m.Name) + EOL }
func (m *Material) DataString() string    { return "" }

type Density struct {
	Rows []model.DensityRow
}

func (d *Density) KeywordString() string { return "*Density" + EOL }
func (d *Density) DataString() string {
	rows, ts := make([][]float64, len(d.Rows)), make([]float64, len(d.Rows))
	for i, r := range d.Rows {
		rows[i], ts[i] = []float64{r.Density}, r.Temperature
	}
	return table(rows, ts)
}

type Elastic struct {
	Rows []model.ElasticRow
}

func (e *Elastic) KeywordString() string { return "*Elastic" + EOL }
func (e *Elastic) DataString() string {
	rows, ts := make([][]float64, len(e.Rows)), make([]float64, len(e.Rows))
	for i, r := range e.Rows {
		rows[i], ts[i] = []float64{r.Young, r.Poisson}, r.Temperature
	}
	return table(rows, ts)
}

type Expansion struct {
	Rows []model.ExpansionRow
	Zero *float64
}

func (e *Expansion) KeywordString() string {
	kw := "*Expansion"
	if e.Zero != nil {
		kw += param("Zero", *e.Zero)
	}
	return kw + EOL
}
func (e *Expansion) DataString() string {
	rows, ts := make([][]float64, len(e.Rows)), make([]float64, len(e.Rows))
	for i, r := range e.Rows {
		rows[i], ts[i] = []float64{r.Alpha}, r.Temperature
	}
	return table(rows, ts)
}

type Conductivity struct {
	Rows []model.ConductivityRow
}

func (c *Conductivity) KeywordString() string { return "*Conductivity" + EOL }
func (c *Conductivity) DataString() string {
	rows, ts := make([][]float64, len(c.Rows)), make([]float64, len(c.Rows))
	for i, r := range c.Rows {
		rows[i], ts[i] = []float64{r.Conductivity}, r.Temperature
	}
	return table(rows, ts)
}

type SpecificHeat struct {
	Rows []model.SpecificHeatRow
}

func (s *SpecificHeat) KeywordString() string { return "*Specific heat" + EOL }
func (s *SpecificHeat) DataString() string {
	rows, ts := make([][]float64, len(s.Rows)), make([]float64, len(s.Rows))
	for i, r := range s.Rows {
		rows[i], ts[i] = []float64{r.SpecificHeat}, r.Temperature
	}
	return table(rows, ts)
}

type Plastic struct {
	Rows      []model.PlasticRow
	Hardening model.Hardening
}

func (p *Plastic) KeywordString() string {
	kw := "*Plastic"
	if p.Hardening != model.Hardening_Isotropic {
		kw += param("Hardening", p.Hardening)
	}
	return kw + EOL
}
func (p *Plastic) DataString() string {
	rows, ts := make([][]float64, len(p.Rows)), make([]float64, len(p.Rows))
	for i, r := range p.Rows {
		rows[i], ts[i] = []float64{r.YieldStress, r.PlasticStrain}, r.Temperature
	}
	return table(rows, ts)
}

// MaterialKeywords returns the *Material keyword followed by one keyword per
// defined property
func MaterialKeywords(m *model.Material) ([]Keyword, error) {
	if m.Name == "" {
		return nil, unsupported("material without a name")
	}
	kws := []Keyword{&Material{Name: m.Name}}
	if len(m.Density) > 0 {
		kws = append(kws, &Density{Rows: m.Density})
	}
	if len(m.Elastic) > 0 {
		kws = append(kws, &Elastic{Rows: m.Elastic})
	}
	if len(m.Expansion) > 0 {
		kws = append(kws, &Expansion{Rows: m.Expansion, Zero: m.ExpansionRef})
	}
	if len(m.Conductivity) > 0 {
		kws = append(kws, &Conductivity{Rows: m.Conductivity})
	}
	if len(m.SpecificHeat) > 0 {
		kws = append(kws, &SpecificHeat{Rows: m.SpecificHeat})
	}
	if len(m.Plastic) > 0 {
		if len(m.Elastic) == 0 {
			return nil, unsupported("material %q has plastic data but no elastic data", m.Name)
		}
		kws = append(kws, &Plastic{Rows: m.Plastic, Hardening: m.Hardening})
	}
	if len(kws) == 1 {
		return nil, unsupported("material %q has no properties", m.Name)
	}
	return kws, nil
}
