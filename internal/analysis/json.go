package analysis

import (
	"encoding/json"
	"math"
)

// NullableFloat marshals NaN as null. JSON has no NaN literal, and both the
// describe table and the correlation matrix legitimately carry undefined
// entries (degenerate pairs, all-missing columns).
type NullableFloat float64

func (f NullableFloat) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(f))
}

func (f *NullableFloat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = NullableFloat(math.NaN())
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = NullableFloat(v)
	return nil
}

// IsNaN reports whether the value is undefined
func (f NullableFloat) IsNaN() bool {
	return math.IsNaN(float64(f))
}
