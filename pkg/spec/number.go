package spec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Number is a numeric input field that tolerates blank values. Forms submit
// untouched fields as "" and contributed datasets omit them entirely; both
// decode to 0 instead of failing or producing NaN.
type Number float64

// Float returns the value as a float64.
func (n Number) Float() float64 {
	return float64(n)
}

// UnmarshalJSON accepts a JSON number, a numeric string, "", or null.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return n.parse(s)
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("decoding number: %w", err)
	}
	*n = Number(f)
	return nil
}

// UnmarshalYAML accepts a YAML scalar; empty and null scalars decode to 0.
func (n *Number) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number", value.Line)
	}
	if value.Tag == "!!null" {
		*n = 0
		return nil
	}
	if err := n.parse(value.Value); err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	return nil
}

func (n *Number) parse(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, "_", ""), 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	*n = Number(f)
	return nil
}
