package model

import (
	"math"

	"github.com/notargets/gocalix/types"
)

// BoundaryCondition constrains degrees of freedom of a node set
type BoundaryCondition interface {
	Label() string
	BCKind() types.BCKind
}

// Load is a mechanical or thermal load applied within a step
type Load interface {
	Label() string
	LoadKind() types.LoadKind
}

// DefinedField prescribes a field value, such as temperature, within a step
type DefinedField interface {
	Label() string
	FieldKind() types.FieldKind
}

// Free marks an unconstrained degree of freedom of a DisplacementRotation
var Free = math.NaN()

// IsFree reports whether a displacement component is unconstrained
func IsFree(v float64) bool { return math.IsNaN(v) }

// FixedBC fixes all translational, and optionally rotational, DOFs of a node set
type FixedBC struct {
	Name      string
	NodeSet   string
	Rotations bool // also fix DOFs 4-6, for shells and beams
}

// DisplacementRotation prescribes U1-U3 and UR1-UR3 (DOFs 1-6); components
// set to Free are left unconstrained
type DisplacementRotation struct {
	Name    string
	NodeSet string
	DOF     [6]float64
}

func NewDisplacementRotation(name, nodeSet string) *DisplacementRotation {
	return &DisplacementRotation{Name: name, NodeSet: nodeSet, DOF: [6]float64{Free, Free, Free, Free, Free, Free}}
}

// SubmodelBC drives the selected DOFs from the global model results of GlobalStep
type SubmodelBC struct {
	Name       string
	NodeSet    string
	GlobalStep int
	DOF        [6]bool
}

// TemperatureBC prescribes the temperature (DOF 11) of a node set
type TemperatureBC struct {
	Name        string
	NodeSet     string
	Temperature float64
}

func (b *FixedBC) Label() string              { return b.Name }
func (b *DisplacementRotation) Label() string { return b.Name }
func (b *SubmodelBC) Label() string           { return b.Name }
func (b *TemperatureBC) Label() string        { return b.Name }

func (*FixedBC) BCKind() types.BCKind              { return types.BC_Fixed }
func (*DisplacementRotation) BCKind() types.BCKind { return types.BC_DisplacementRotation }
func (*SubmodelBC) BCKind() types.BCKind           { return types.BC_Submodel }
func (*TemperatureBC) BCKind() types.BCKind        { return types.BC_Temperature }

// CLoad is a concentrated force on every node of a node set
type CLoad struct {
	Name    string
	NodeSet string
	F       [3]float64
}

// MomentLoad is a concentrated moment (DOFs 4-6) on every node of a node set
type MomentLoad struct {
	Name    string
	NodeSet string
	M       [3]float64
}

// DLoad is a uniform pressure on a surface
type DLoad struct {
	Name     string
	Surface  string
	Pressure float64
}

// STLoad is a total surface traction force, shared equally by the nodes of NodeSet
type STLoad struct {
	Name    string
	NodeSet string
	F       [3]float64
}

// ShellEdgeLoad is a normal force per unit length on a shell edge surface
type ShellEdgeLoad struct {
	Name      string
	Surface   string
	Magnitude float64
}

// GravityLoad is an acceleration field acting on an element set
type GravityLoad struct {
	Name       string
	ElementSet string
	G          [3]float64
}

// CentrifLoad is a centrifugal load from rotation about an axis through Point
type CentrifLoad struct {
	Name       string
	ElementSet string
	Omega      float64 // rotational speed, rad per unit time
	Point      [3]float64
	Axis       [3]float64
}

type PreTensionType uint8

const (
	PreTension_Force PreTensionType = iota
	PreTension_Length
)

// PreTensionLoad tensions a bolt section through a reference node
type PreTensionLoad struct {
	Name          string
	Surface       string
	ReferenceNode int
	Direction     [3]float64
	Type          PreTensionType
	Magnitude     float64 // force, or fixed length change
}

// CFlux is a concentrated heat flux on every node of a node set
type CFlux struct {
	Name    string
	NodeSet string
	Flux    float64
}

// DFlux is a distributed heat flux on a surface
type DFlux struct {
	Name    string
	Surface string
	Flux    float64
}

// BodyFlux is a volumetric heat source on an element set
type BodyFlux struct {
	Name       string
	ElementSet string
	Flux       float64
}

// FilmHeatTransfer is convection from a surface to a sink temperature
type FilmHeatTransfer struct {
	Name            string
	Surface         string
	SinkTemperature float64
	FilmCoefficient float64
}

// RadiationHeatTransfer is radiation from a surface to the environment, or
// to the rest of the cavity when Cavity is set
type RadiationHeatTransfer struct {
	Name            string
	Surface         string
	SinkTemperature float64
	Emissivity      float64
	Cavity          bool
}

func (l *CLoad) Label() string                 { return l.Name }
func (l *MomentLoad) Label() string            { return l.Name }
func (l *DLoad) Label() string                 { return l.Name }
func (l *STLoad) Label() string                { return l.Name }
func (l *ShellEdgeLoad) Label() string         { return l.Name }
func (l *GravityLoad) Label() string           { return l.Name }
func (l *CentrifLoad) Label() string           { return l.Name }
func (l *PreTensionLoad) Label() string        { return l.Name }
func (l *CFlux) Label() string                 { return l.Name }
func (l *DFlux) Label() string                 { return l.Name }
func (l *BodyFlux) Label() string              { return l.Name }
func (l *FilmHeatTransfer) Label() string      { return l.Name }
func (l *RadiationHeatTransfer) Label() string { return l.Name }

func (*CLoad) LoadKind() types.LoadKind                 { return types.Load_CLoad }
func (*MomentLoad) LoadKind() types.LoadKind            { return types.Load_Moment }
func (*DLoad) LoadKind() types.LoadKind                 { return types.Load_DLoad }
func (*STLoad) LoadKind() types.LoadKind                { return types.Load_STLoad }
func (*ShellEdgeLoad) LoadKind() types.LoadKind         { return types.Load_ShellEdge }
func (*GravityLoad) LoadKind() types.LoadKind           { return types.Load_Gravity }
func (*CentrifLoad) LoadKind() types.LoadKind           { return types.Load_Centrif }
func (*PreTensionLoad) LoadKind() types.LoadKind        { return types.Load_PreTension }
func (*CFlux) LoadKind() types.LoadKind                 { return types.Load_CFlux }
func (*DFlux) LoadKind() types.LoadKind                 { return types.Load_DFlux }
func (*BodyFlux) LoadKind() types.LoadKind              { return types.Load_BodyFlux }
func (*FilmHeatTransfer) LoadKind() types.LoadKind      { return types.Load_Film }
func (*RadiationHeatTransfer) LoadKind() types.LoadKind { return types.Load_Radiate }

type DefinedTemperature struct {
	Name        string
	NodeSet     string
	Temperature float64
}

func (f *DefinedTemperature) Label() string            { return f.Name }
func (*DefinedTemperature) FieldKind() types.FieldKind { return types.Field_Temperature }

// InitialCondition is a model level starting state
type InitialCondition interface {
	Label() string
	isInitialCondition()
}

type InitialTemperature struct {
	Name        string
	NodeSet     string
	Temperature float64
}

type InitialVelocity struct {
	Name    string
	NodeSet string
	V       [3]float64
}

func (c *InitialTemperature) Label() string { return c.Name }
func (c *InitialVelocity) Label() string    { return c.Name }

func (*InitialTemperature) isInitialCondition() {}
func (*InitialVelocity) isInitialCondition()    {}
