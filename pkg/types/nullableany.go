package types

import "encoding/json"

// NullableAny holds an arbitrary JSON payload (string/number/boolean/list)
// and distinguishes "absent" from an explicit null.
type NullableAny struct {
	Value any
	Valid bool // Valid is true if Value is not nil
}

func (na NullableAny) IsNil() bool {
	return !na.Valid
}

func (na *NullableAny) Set(value any) {
	na.Value = value
	na.Valid = true
}

var _ json.Marshaler = &NullableAny{}
var _ json.Unmarshaler = &NullableAny{}
var _ Nullable = &NullableAny{}

func (na NullableAny) MarshalJSON() ([]byte, error) {
	if na.Valid {
		return json.Marshal(na.Value)
	}
	return json.Marshal(nil)
}

func (na *NullableAny) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		na.Value = nil
		na.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &na.Value); err != nil {
		return err
	}
	na.Valid = true
	return nil
}
