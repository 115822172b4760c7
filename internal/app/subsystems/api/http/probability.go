package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/statcalc/statcalc/pkg/stats"
)

// Probability is an optional probability that accepts a json number,
// a numeric string, an empty string or null. The last two, and an
// absent field, leave Value nil. Strings such as "NaN" and "Inf" are
// rejected.
type Probability struct {
	Value *float64
}

func (p *Probability) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		p.Value = nil
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		p.Value = &f
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("probability must be a number or a numeric string, got %s", b)
	}

	s = strings.TrimSpace(s)
	if s == "" {
		p.Value = nil
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("probability must be a number or a numeric string, got %q", s)
	}
	if !stats.Finite(f) {
		return fmt.Errorf("probability must be a finite number, got %q", s)
	}

	p.Value = &f
	return nil
}

func (p Probability) MarshalJSON() ([]byte, error) {
	if p.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*p.Value)
}

func (p Probability) String() string {
	if p.Value == nil {
		return "?"
	}
	return strconv.FormatFloat(*p.Value, 'g', -1, 64)
}
