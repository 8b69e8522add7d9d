package calculix

import (
	"github.com/notargets/gocalix/model"
	"github.com/notargets/gocalix/types"
)

func totalsParam(t types.TotalsMode) string {
	switch t {
	case types.Totals_Yes, types.Totals_Only:
		return param("Totals", t)
	}
	return ""
}

func globalParam(local bool) string {
	if local {
		return param("Global", "No")
	}
	return ""
}

func flag(on bool, name string) string {
	if on {
		return ", " + name
	}
	return ""
}

// emptyVariables also covers sets holding only bits outside their catalogue
func emptyVariables(name string) error {
	return unsupported("output %q requests no variables", name)
}

// NodePrint writes nodal history output to the .dat file
type NodePrint struct {
	Output *model.NodalHistoryOutput
}

func NewNodePrint(o *model.NodalHistoryOutput) (*NodePrint, error) {
	if o.Variables.String() == "" {
		return nil, emptyVariables(o.Name)
	}
	if o.NodeSet == "" {
		return nil, unsupported("node print %q has no node set", o.Name)
	}
	return &NodePrint{Output: o}, nil
}

func (p *NodePrint) KeywordString() string {
	return "*Node print" + param("Nset", p.Output.NodeSet) + frequencyParam(p.Output.Frequency) +
		totalsParam(p.Output.Totals) + globalParam(p.Output.LocalAxes) + EOL
}
func (p *NodePrint) DataString() string { return p.Output.Variables.String() + EOL }

// ElPrint writes element history output to the .dat file
type ElPrint struct {
	Output *model.ElementHistoryOutput
}

func NewElPrint(o *model.ElementHistoryOutput) (*ElPrint, error) {
	if o.Variables.String() == "" {
		return nil, emptyVariables(o.Name)
	}
	if o.ElementSet == "" {
		return nil, unsupported("element print %q has no element set", o.Name)
	}
	return &ElPrint{Output: o}, nil
}

func (p *ElPrint) KeywordString() string {
	return "*El print" + param("Elset", p.Output.ElementSet) + frequencyParam(p.Output.Frequency) +
		totalsParam(p.Output.Totals) + globalParam(p.Output.LocalAxes) + EOL
}
func (p *ElPrint) DataString() string { return p.Output.Variables.String() + EOL }

// ContactPrint writes contact history output for the surfaces of a contact
// pair to the .dat file
type ContactPrint struct {
	Output *model.ContactHistoryOutput
	Master string
	Slave  string
}

func NewContactPrint(o *model.ContactHistoryOutput, pair *model.ContactPair) (*ContactPrint, error) {
	if o.Variables.String() == "" {
		return nil, emptyVariables(o.Name)
	}
	if pair == nil || pair.Master == "" || pair.Slave == "" {
		return nil, unsupported("contact print %q needs a contact pair with master and slave surfaces", o.Name)
	}
	return &ContactPrint{Output: o, Master: pair.Master, Slave: pair.Slave}, nil
}

func (p *ContactPrint) KeywordString() string {
	return "*Contact print" + frequencyParam(p.Output.Frequency) + totalsParam(p.Output.Totals) +
		param("Master", p.Master) + param("Slave", p.Slave) + EOL
}
func (p *ContactPrint) DataString() string { return p.Output.Variables.String() + EOL }

// NodeFile writes nodal field output to the .frd file
type NodeFile struct {
	Output *model.NodalFieldOutput
}

func (f *NodeFile) KeywordString() string {
	o := f.Output
	return "*Node file" + frequencyParam(o.Frequency) + globalParam(o.LocalAxes) +
		flag(o.LastIterations, "Last iterations") + flag(o.ContactElements, "Contact elements") + EOL
}
func (f *NodeFile) DataString() string { return f.Output.Variables.String() + EOL }

// ElFile writes element field output to the .frd file
type ElFile struct {
	Output *model.ElementFieldOutput
}

func (f *ElFile) KeywordString() string {
	o := f.Output
	return "*El file" + frequencyParam(o.Frequency) + globalParam(o.LocalAxes) +
		flag(o.LastIterations, "Last iterations") + flag(o.ContactElements, "Contact elements") + EOL
}
func (f *ElFile) DataString() string { return f.Output.Variables.String() + EOL }

// ContactFile writes contact field output to the .frd file
type ContactFile struct {
	Output *model.ContactFieldOutput
}

func (f *ContactFile) KeywordString() string {
	return "*Contact file" + frequencyParam(f.Output.Frequency) + flag(f.Output.LastIterations, "Last iterations") + EOL
}
func (f *ContactFile) DataString() string { return f.Output.Variables.String() + EOL }

// NewFieldOutput returns the *_file directive of a field output
func NewFieldOutput(o model.FieldOutput) (Keyword, error) {
	switch fo := o.(type) {
	case *model.NodalFieldOutput:
		if fo.Variables.String() == "" {
			return nil, emptyVariables(fo.Name)
		}
		return &NodeFile{Output: fo}, nil
	case *model.ElementFieldOutput:
		if fo.Variables.String() == "" {
			return nil, emptyVariables(fo.Name)
		}
		return &ElFile{Output: fo}, nil
	case *model.ContactFieldOutput:
		if fo.Variables.String() == "" {
			return nil, emptyVariables(fo.Name)
		}
		return &ContactFile{Output: fo}, nil
	}
	return nil, unsupported("field output %q of type %T", o.Label(), o)
}

// NewHistoryOutput returns the *_print directive of a history output;
// contact outputs resolve their surfaces through the model's contact pairs
func NewHistoryOutput(o model.HistoryOutput, m *model.Model) (Keyword, error) {
	var (
		k   Keyword
		err error
	)
	switch ho := o.(type) {
	case *model.NodalHistoryOutput:
		k, err = NewNodePrint(ho)
	case *model.ElementHistoryOutput:
		k, err = NewElPrint(ho)
	case *model.ContactHistoryOutput:
		pair, _ := m.ContactPair(ho.ContactPair)
		k, err = NewContactPrint(ho, pair)
	default:
		return nil, unsupported("history output %q of type %T", o.Label(), o)
	}
	if err != nil {
		return nil, err
	}
	return k, nil
}
