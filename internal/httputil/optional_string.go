package httputil

import (
	"bytes"
	"encoding/json"
)

// OptionalString tracks presence and value of a JSON string field, so a handler can
// tell an absent field from an explicit empty string:
//   - Present=false: field absent from JSON
//   - Present=true, Value=nil: field is JSON null
//   - Present=true, Value=&"": field is empty string
type OptionalString struct {
	Present bool
	Value   *string
}

// UnmarshalJSON implements json.Unmarshaler.
// When this method is called, the field was present in the JSON.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Present = true

	if string(bytes.TrimSpace(data)) == "null" {
		o.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// IsSet reports whether the field was present with a non-null value
func (o OptionalString) IsSet() bool {
	return o.Present && o.Value != nil
}
