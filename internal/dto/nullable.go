package dto

import (
	"bytes"
	"encoding/json"
)

// NullableString distinguishes the three states a PATCH body field can be in:
// absent (leave unchanged), explicitly null (clear), and set to a value.
type NullableString struct {
	Present bool
	Valid   bool
	Value   string
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Present = true
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

func (n NullableString) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}
