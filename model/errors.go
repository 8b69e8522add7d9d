package model

import "errors"

var (
	// ErrUnsupportedKind is returned when a kind falls outside the known catalogue
	ErrUnsupportedKind = errors.New("unsupported kind")
	// ErrUnsupportedCombination is returned when an object is paired with a
	// step, directive or capability that cannot accept it
	ErrUnsupportedCombination = errors.New("unsupported combination")
	// ErrInvalidValue is returned for out of range settings
	ErrInvalidValue = errors.New("invalid value")
)
