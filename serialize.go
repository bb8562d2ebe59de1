package symbol

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotString is returned when unmarshaling a Symbol from a JSON value
// that is not a string.
var ErrNotString = errors.New("value is not a string")

// MarshalText returns the Symbol's raw text. Serialization is a
// transparent pass-through: a Symbol encodes exactly as its text does.
func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(s.Text()), nil
}

// UnmarshalText interns the decoded text in the default table and
// replaces *s with the resulting Symbol, so unmarshaling the output of
// MarshalText yields a Symbol identical to the original.
func (s *Symbol) UnmarshalText(text []byte) error {
	*s = FromBytes(text)
	return nil
}

// MarshalJSON encodes the Symbol as a JSON string of its text.
func (s Symbol) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Text())
}

// UnmarshalJSON decodes a JSON string and interns it in the default
// table. Any other JSON value, including null, fails with ErrNotString.
func (s *Symbol) UnmarshalJSON(data []byte) error {
	var text *string
	if err := json.Unmarshal(data, &text); err != nil || text == nil {
		return fmt.Errorf("%w: %s", ErrNotString, data)
	}
	*s = From(*text)
	return nil
}
