// Package coerce provides JSON number types that tolerate the loosely typed
// payloads produced by form-driven clients, where numeric fields arrive as
// either numbers or strings ("15", "", "abc").
package coerce

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Int unmarshals from a JSON number or a numeric string. Empty or
// non-numeric input coerces to zero. It always marshals as a number.
type Int int

func (i *Int) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*i = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*i = 0
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			*i = 0
			return nil
		}
		*i = Int(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		// Tolerate floats submitted for integer fields.
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			*i = 0
			return nil
		}
		*i = Int(int(f))
		return nil
	}
	*i = Int(n)
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(i))
}

// NullInt is like Int but preserves absence: empty or non-numeric input
// coerces to null rather than zero.
type NullInt struct {
	Value int
	Valid bool
}

func (n *NullInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		n.Valid = false
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			n.Valid = false
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			n.Valid = false
			return nil
		}
		n.Value, n.Valid = v, true
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			n.Valid = false
			return nil
		}
		n.Value, n.Valid = int(f), true
		return nil
	}
	n.Value, n.Valid = v, true
	return nil
}

func (n NullInt) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// NullFloat preserves absence for fractional fields such as temperature.
type NullFloat struct {
	Value float64
	Valid bool
}

func (n *NullFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		n.Valid = false
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			n.Valid = false
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			n.Valid = false
			return nil
		}
		n.Value, n.Valid = v, true
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		n.Valid = false
		return nil
	}
	n.Value, n.Valid = v, true
	return nil
}

func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}
