package domain

import "encoding/json"

// Optional is the tri-state field used by partial-update payloads. A
// field left out of the JSON body is skipped entirely, an explicit null
// clears the stored column, and a value replaces it. The column each
// field maps to is fixed in the repository layer, never derived from
// payload keys.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
