package entities

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Measure is a raw numeric input entered on a takeoff (feet, linear feet).
//
// Decoding never fails: blank, non-numeric, NaN/Inf and negative input read as 0.
// Validation and blocking of incomplete data is the caller's job.
type Measure float64

func (m Measure) Float64() float64 {
	return float64(m.Clamp())
}

// Clamp returns m with invalid values coerced to 0.
func (m Measure) Clamp() Measure {
	f := float64(m)
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return m
}

// ParseMeasure reads a user-entered value. Anything that is not a finite
// non-negative number becomes 0.
func ParseMeasure(raw string) Measure {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return Measure(f).Clamp()
}

func (m *Measure) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*m = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*m = 0
			return nil
		}
		*m = ParseMeasure(s)
		return nil
	}
	*m = ParseMeasure(string(b))
	return nil
}

// Count reads an integer count (electrical boxes); negatives read as 0.
func Count(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
