package model

import (
	"fmt"
	"strings"
)

/*
Variable sets are bit sets over a fixed catalogue of CalculiX output variable
names. Their string form lists the set members in catalogue order, separated
by ", ", which is the form the data line of an output directive takes.
*/

type NodalHistoryVariable uint16

const (
	NH_RF NodalHistoryVariable = 1 << iota
	NH_U
	NH_NT
	NH_RFL
)

var nodalHistoryNames = []string{"RF", "U", "NT", "RFL"}

type ElementHistoryVariable uint16

const (
	EH_S ElementHistoryVariable = 1 << iota
	EH_E
	EH_PEEQ
	EH_ENER
	EH_ELSE
	EH_EVOL
	EH_HFL
	EH_HFLF
)

var elementHistoryNames = []string{"S", "E", "PEEQ", "ENER", "ELSE", "EVOL", "HFL", "HFLF"}

type ContactHistoryVariable uint16

const (
	CH_CSTR ContactHistoryVariable = 1 << iota
	CH_CDIS
	CH_CELS
	CH_CNUM
	CH_CF
	CH_CFN
	CH_CFS
)

var contactHistoryNames = []string{"CSTR", "CDIS", "CELS", "CNUM", "CF", "CFN", "CFS"}

type NodalFieldVariable uint16

const (
	NF_RF NodalFieldVariable = 1 << iota
	NF_U
	NF_NT
	NF_RFL
	NF_PU
	NF_PNT
)

var nodalFieldNames = []string{"RF", "U", "NT", "RFL", "PU", "PNT"}

type ElementFieldVariable uint16

const (
	EF_S ElementFieldVariable = 1 << iota
	EF_E
	EF_PEEQ
	EF_ENER
	EF_ZZS
	EF_ERR
	EF_HFL
	EF_HER
)

var elementFieldNames = []string{"S", "E", "PEEQ", "ENER", "ZZS", "ERR", "HFL", "HER"}

type ContactFieldVariable uint16

const (
	CF_CDIS ContactFieldVariable = 1 << iota
	CF_CSTR
	CF_CELS
	CF_PCON
)

var contactFieldNames = []string{"CDIS", "CSTR", "CELS", "PCON"}

type variableSet interface {
	~uint16
}

func flagString[T variableSet](v T, names []string) string {
	var parts []string
	for i, name := range names {
		if v&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, ", ")
}

func parseFlags[T variableSet](kind string, names []string, list []string) (v T, err error) {
	for _, item := range list {
		item = strings.ToUpper(strings.TrimSpace(item))
		found := false
		for i, name := range names {
			if name == item {
				v |= 1 << i
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: %q is not a %s variable, expected one of %v",
				ErrInvalidValue, item, kind, names)
		}
	}
	return
}

func (v NodalHistoryVariable) String() string   { return flagString(v, nodalHistoryNames) }
func (v ElementHistoryVariable) String() string { return flagString(v, elementHistoryNames) }
func (v ContactHistoryVariable) String() string { return flagString(v, contactHistoryNames) }
func (v NodalFieldVariable) String() string     { return flagString(v, nodalFieldNames) }
func (v ElementFieldVariable) String() string   { return flagString(v, elementFieldNames) }
func (v ContactFieldVariable) String() string   { return flagString(v, contactFieldNames) }

func ParseNodalHistoryVariables(list []string) (NodalHistoryVariable, error) {
	return parseFlags[NodalHistoryVariable]("nodal history", nodalHistoryNames, list)
}

func ParseElementHistoryVariables(list []string) (ElementHistoryVariable, error) {
	return parseFlags[ElementHistoryVariable]("element history", elementHistoryNames, list)
}

func ParseContactHistoryVariables(list []string) (ContactHistoryVariable, error) {
	return parseFlags[ContactHistoryVariable]("contact history", contactHistoryNames, list)
}

func ParseNodalFieldVariables(list []string) (NodalFieldVariable, error) {
	return parseFlags[NodalFieldVariable]("nodal field", nodalFieldNames, list)
}

func ParseElementFieldVariables(list []string) (ElementFieldVariable, error) {
	return parseFlags[ElementFieldVariable]("element field", elementFieldNames, list)
}

func ParseContactFieldVariables(list []string) (ContactFieldVariable, error) {
	return parseFlags[ContactFieldVariable]("contact field", contactFieldNames, list)
}
