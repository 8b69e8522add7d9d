package calculix

import (
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/notargets/gocalix/model"
)

type Options struct {
	CRLF   bool        // write "\r\n" line terminators
	Logger *zap.Logger // nil logs nothing
}

// Deck is the ordered list of keywords making up one CalculiX input file.
// A Deck only exists when every keyword of the model was built successfully.
type Deck struct {
	keywords []Keyword
	crlf     bool
}

// builder collects keywords and keeps the first error, after which further
// additions are ignored
type builder struct {
	keywords []Keyword
	err      error
}

func (b *builder) add(kws ...Keyword) {
	if b.err == nil {
		b.keywords = append(b.keywords, kws...)
	}
}

func (b *builder) addErr(k Keyword, err error) {
	if b.err != nil {
		return
	}
	if err != nil {
		b.err = err
		return
	}
	b.keywords = append(b.keywords, k)
}

func (b *builder) addAll(kws []Keyword, err error) {
	if b.err != nil {
		return
	}
	if err != nil {
		b.err = err
		return
	}
	b.keywords = append(b.keywords, kws...)
}

func (b *builder) title(text string) { b.add(&Title{Text: text}) }

func (b *builder) name(name string) {
	if name != "" {
		b.add(&Comment{Text: "Name: " + name})
	}
}

// NewDeck validates the model and builds its keywords in the order the
// solver reads them: model definition first, then one block per step
func NewDeck(m *model.Model, opts Options) (*Deck, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	b := &builder{}
	b.add(&Heading{Title: m.Title})
	if m.UnitSystem.String() != "Unitless" {
		b.add(&Comment{Text: "Unit system: " + m.UnitSystem.String()})
	}
	if m.PhysicalConstants != nil {
		b.add(&PhysicalConstants{Constants: *m.PhysicalConstants})
	}

	if len(m.Includes) > 0 {
		b.title("Mesh files")
		for _, inc := range m.Includes {
			b.add(&Include{File: inc})
		}
	}
	if len(m.Mesh.Nodes) > 0 {
		b.title("Nodes")
		b.add(&Nodes{Nodes: m.Mesh.Nodes})
	}
	if len(m.Mesh.Blocks) > 0 {
		b.title("Elements")
		for _, block := range m.Mesh.Blocks {
			b.addErr(NewElements(block))
		}
	}
	if len(m.NodeSets) > 0 {
		b.title("Node sets")
		for _, ns := range m.NodeSets {
			b.addErr(NewNodeSet(ns))
		}
	}
	if len(m.ElementSets) > 0 {
		b.title("Element sets")
		for _, es := range m.ElementSets {
			b.addErr(NewElementSet(es))
		}
	}
	if len(m.Surfaces) > 0 {
		b.title("Surfaces")
		for _, s := range m.Surfaces {
			b.addErr(NewSurface(s))
		}
	}
	if m.Submodel != nil {
		b.title("Submodel")
		b.addErr(NewSubmodel(*m.Submodel))
	}
	if len(m.Materials) > 0 {
		b.title("Materials")
		for i := range m.Materials {
			b.addAll(MaterialKeywords(&m.Materials[i]))
		}
	}
	if len(m.Sections) > 0 {
		b.title("Sections")
		for _, sec := range m.Sections {
			b.name(sec.Label())
			b.addErr(NewSection(sec))
		}
	}
	if pretension := preTensionLoads(m); len(pretension) > 0 {
		b.title("Pre-tension sections")
		for _, l := range pretension {
			b.name(l.Name)
			b.addErr(NewPreTensionSection(l))
		}
	}
	if len(m.SurfaceInteractions) > 0 {
		b.title("Surface interactions")
		for i := range m.SurfaceInteractions {
			b.addAll(InteractionKeywords(&m.SurfaceInteractions[i]))
		}
	}
	if len(m.ContactPairs) > 0 || len(m.Ties) > 0 {
		b.title("Constraints and contact pairs")
		for _, t := range m.Ties {
			b.addErr(NewTie(t))
		}
		for _, cp := range m.ContactPairs {
			b.name(cp.Name)
			b.addErr(NewContactPair(cp))
		}
	}
	if len(m.InitialConditions) > 0 {
		b.title("Initial conditions")
		for _, ic := range m.InitialConditions {
			b.name(ic.Label())
			b.addErr(NewInitialConditions(ic))
		}
	}
	log.Debug("model definition built", zap.Int("keywords", len(b.keywords)))

	for _, s := range m.Steps {
		buildStep(b, s, m)
		log.Debug("step built", zap.String("step", s.Name), zap.Stringer("procedure", s.Kind))
	}
	if b.err != nil {
		log.Error("deck not written", zap.String("title", m.Title), zap.Error(b.err))
		return nil, b.err
	}
	log.Info("deck built", zap.String("title", m.Title),
		zap.Int("steps", len(m.Steps)), zap.Int("keywords", len(b.keywords)))
	return &Deck{keywords: b.keywords, crlf: opts.CRLF}, nil
}

func buildStep(b *builder, s *model.Step, m *model.Model) {
	b.title("Step " + s.Name)
	b.add(&Step{Step: s})
	b.addErr(NewProcedure(s))
	if len(s.BoundaryConditions) > 0 {
		b.title("Boundary conditions")
		for _, bc := range s.BoundaryConditions {
			b.name(bc.Label())
			b.addErr(NewBoundary(bc))
		}
	}
	if len(s.Loads) > 0 {
		b.title("Loads")
		for _, l := range s.Loads {
			b.name(l.Label())
			b.addErr(NewLoad(l, m))
		}
	}
	if len(s.DefinedFields) > 0 {
		b.title("Defined fields")
		for _, f := range s.DefinedFields {
			b.name(f.Label())
			b.addErr(NewDefinedField(f))
		}
	}
	if len(s.FieldOutputs) > 0 {
		b.title("Field outputs")
		for _, o := range s.FieldOutputs {
			b.name(o.Label())
			b.addErr(NewFieldOutput(o))
		}
	}
	if len(s.HistoryOutputs) > 0 {
		b.title("History outputs")
		for _, o := range s.HistoryOutputs {
			b.name(o.Label())
			b.addErr(NewHistoryOutput(o, m))
		}
	}
	b.title("End step")
	b.add(EndStep{})
}

// preTensionLoads collects the pre-tension loads of all steps, each section
// is defined once at model level however many steps load it
func preTensionLoads(m *model.Model) (loads []*model.PreTensionLoad) {
	seen := make(map[string]bool)
	for _, s := range m.Steps {
		for _, l := range s.Loads {
			if pt, ok := l.(*model.PreTensionLoad); ok && !seen[pt.Name] {
				seen[pt.Name] = true
				loads = append(loads, pt)
			}
		}
	}
	return
}

func (d *Deck) Keywords() []Keyword { return d.keywords }

// String renders the whole deck
func (d *Deck) String() string {
	var sb strings.Builder
	for _, k := range d.keywords {
		sb.WriteString(Render(k))
	}
	if d.crlf {
		return strings.ReplaceAll(sb.String(), EOL, "\r\n")
	}
	return sb.String()
}

// WriteTo renders the deck and writes it to w in one call
func (d *Deck) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}
