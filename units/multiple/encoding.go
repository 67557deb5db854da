package multiple

import "github.com/ARM-software/humansize/commonerrors"

// MarshalText implements encoding.TextMarshaler.
func (m Multiple) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, commonerrors.Newf(commonerrors.ErrMarshalling, "%v", m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Multiple) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
