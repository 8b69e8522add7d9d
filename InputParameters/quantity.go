package InputParameters

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Quantity is a YAML scalar holding a number, with or without a unit, such as
// 0.3, "210 GPa" or "-100 N". An absent value is the empty string.
type Quantity string

func (q *Quantity) UnmarshalJSON(b []byte) error {
	t, err := scalarText(b)
	if err != nil {
		return fmt.Errorf("quantity: %w", err)
	}
	*q = Quantity(t)
	return nil
}

// Text is a YAML scalar read as text whatever its YAML type, so face labels
// like 1 and switches like Yes survive YAML's type resolution
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	s, err := scalarText(b)
	if err != nil {
		return err
	}
	*t = Text(s)
	return nil
}

func scalarText(b []byte) (string, error) {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		return "", nil
	case bytes.Equal(b, []byte("true")):
		return "Yes", nil
	case bytes.Equal(b, []byte("false")):
		return "No", nil
	case len(b) > 0 && b[0] == '"':
		var s string
		err := json.Unmarshal(b, &s)
		return s, err
	}
	if _, err := strconv.ParseFloat(string(b), 64); err != nil {
		return "", fmt.Errorf("expected a number or a string, got %s", b)
	}
	return string(b), nil
}
