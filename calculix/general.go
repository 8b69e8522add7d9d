package calculix

import (
	"strings"

	"github.com/notargets/gocalix/model"
)

const titleRule = "************************************************************"

// Title is a block comment separating the sections of the deck
type Title struct {
	Text string
}

func (t *Title) KeywordString() string {
	return titleRule + EOL + "** " + t.Text + EOL + titleRule + EOL
}
func (t *Title) DataString() string { return "" }

// Comment is a single "**" line
type Comment struct {
	Text string
}

func (c *Comment) KeywordString() string { return "** " + c.Text + EOL }
func (c *Comment) DataString() string    { return "" }

// Heading is written first; its data line is echoed by the solver
type Heading struct {
	Title string
}

func (h *Heading) KeywordString() string { return "*Heading" + EOL }
func (h *Heading) DataString() string {
	title := strings.TrimSpace(h.Title)
	if title == "" {
		title = "Model"
	}
	return title + EOL
}

type Include struct {
	File string
}

func (i *Include) KeywordString() string { return "*Include" + param("Input", i.File) + EOL }
func (i *Include) DataString() string    { return "" }

type PhysicalConstants struct {
	Constants model.PhysicalConstants
}

func (p *PhysicalConstants) KeywordString() string {
	return "*Physical constants" +
		param("Absolute zero", p.Constants.AbsoluteZero) +
		param("Stefan Boltzmann", p.Constants.StefanBoltzmann) + EOL
}
func (p *PhysicalConstants) DataString() string { return "" }

type Submodel struct {
	Definition model.SubmodelDefinition
}

func NewSubmodel(def model.SubmodelDefinition) (*Submodel, error) {
	if def.GlobalFile == "" || def.NodeSet == "" {
		return nil, unsupported("submodel needs a node set and a global result file")
	}
	return &Submodel{Definition: def}, nil
}

func (s *Submodel) KeywordString() string {
	return "*Submodel, Type=Node" + param("Input", s.Definition.GlobalFile) + EOL
}
func (s *Submodel) DataString() string { return line(s.Definition.NodeSet) }
