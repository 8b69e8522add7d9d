package model

import (
	"fmt"

	"github.com/notargets/gocalix/types"
)

// Output is a named result request sampled every Frequency-th increment
type Output interface {
	Label() string
	OutputFrequency() int
}

// HistoryOutput requests tabular *_print results written to the .dat file
type HistoryOutput interface {
	Output
	isHistoryOutput()
}

// FieldOutput requests *_file results written to the .frd file
type FieldOutput interface {
	Output
	isFieldOutput()
}

type outputBase struct {
	Name      string
	Frequency int // every Frequency-th increment, at least 1
}

func (o *outputBase) Label() string        { return o.Name }
func (o *outputBase) OutputFrequency() int { return o.Frequency }

func checkFrequency(name string, frequency int) error {
	if frequency < 1 {
		return fmt.Errorf("%w: output %q frequency %d must be at least 1", ErrInvalidValue, name, frequency)
	}
	return nil
}

type NodalHistoryOutput struct {
	outputBase
	NodeSet   string
	Totals    types.TotalsMode
	LocalAxes bool // report in local coordinate systems (Global=No)
	Variables NodalHistoryVariable
}

func NewNodalHistoryOutput(name, nodeSet string, frequency int, vars NodalHistoryVariable) (*NodalHistoryOutput, error) {
	if err := checkFrequency(name, frequency); err != nil {
		return nil, err
	}
	return &NodalHistoryOutput{
		outputBase: outputBase{Name: name, Frequency: frequency},
		NodeSet:    nodeSet,
		Variables:  vars,
	}, nil
}

type ElementHistoryOutput struct {
	outputBase
	ElementSet string
	Totals     types.TotalsMode
	LocalAxes  bool
	Variables  ElementHistoryVariable
}

func NewElementHistoryOutput(name, elementSet string, frequency int, vars ElementHistoryVariable) (*ElementHistoryOutput, error) {
	if err := checkFrequency(name, frequency); err != nil {
		return nil, err
	}
	return &ElementHistoryOutput{
		outputBase: outputBase{Name: name, Frequency: frequency},
		ElementSet: elementSet,
		Variables:  vars,
	}, nil
}

// ContactHistoryOutput reports contact results for the surfaces of a contact pair
type ContactHistoryOutput struct {
	outputBase
	ContactPair string
	Totals      types.TotalsMode
	Variables   ContactHistoryVariable
}

func NewContactHistoryOutput(name, contactPair string, frequency int, vars ContactHistoryVariable) (*ContactHistoryOutput, error) {
	if err := checkFrequency(name, frequency); err != nil {
		return nil, err
	}
	return &ContactHistoryOutput{
		outputBase:  outputBase{Name: name, Frequency: frequency},
		ContactPair: contactPair,
		Variables:   vars,
	}, nil
}

type NodalFieldOutput struct {
	outputBase
	LastIterations  bool
	ContactElements bool
	LocalAxes       bool
	Variables       NodalFieldVariable
}

func NewNodalFieldOutput(name string, frequency int, vars NodalFieldVariable) (*NodalFieldOutput, error) {
	if err := checkFrequency(name, frequency); err != nil {
		return nil, err
	}
	return &NodalFieldOutput{outputBase: outputBase{Name: name, Frequency: frequency}, Variables: vars}, nil
}

type ElementFieldOutput struct {
	outputBase
	LastIterations  bool
	ContactElements bool
	LocalAxes       bool
	Variables       ElementFieldVariable
}

func NewElementFieldOutput(name string, frequency int, vars ElementFieldVariable) (*ElementFieldOutput, error) {
	if err := checkFrequency(name, frequency); err != nil {
		return nil, err
	}
	return &ElementFieldOutput{outputBase: outputBase{Name: name, Frequency: frequency}, Variables: vars}, nil
}

type ContactFieldOutput struct {
	outputBase
	LastIterations bool
	Variables      ContactFieldVariable
}

func NewContactFieldOutput(name string, frequency int, vars ContactFieldVariable) (*ContactFieldOutput, error) {
	if err := checkFrequency(name, frequency); err != nil {
		return nil, err
	}
	return &ContactFieldOutput{outputBase: outputBase{Name: name, Frequency: frequency}, Variables: vars}, nil
}

func (*NodalHistoryOutput) isHistoryOutput()   {}
func (*ElementHistoryOutput) isHistoryOutput() {}
func (*ContactHistoryOutput) isHistoryOutput() {}
func (*NodalFieldOutput) isFieldOutput()       {}
func (*ElementFieldOutput) isFieldOutput()     {}
func (*ContactFieldOutput) isFieldOutput()     {}
