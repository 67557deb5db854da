package size

import (
	"encoding/json"

	"github.com/ARM-software/humansize/commonerrors"
)

// MarshalText implements encoding.TextMarshaler.
func (s Size) MarshalText() ([]byte, error) {
	if !s.multiple.IsValid() {
		return nil, commonerrors.Newf(commonerrors.ErrMarshalling, "%v", s)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Size) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalJSON implements json.Marshaler. Sizes are represented as strings e.g. "5 GiB".
func (s Size) MarshalJSON() ([]byte, error) {
	text, err := s.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null leaves the size unchanged.
func (s *Size) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return commonerrors.WrapError(commonerrors.ErrMarshalling, err, "size must be a string")
	}
	return s.UnmarshalText([]byte(text))
}
