package size

import (
	"strconv"
	"strings"

	"github.com/ARM-software/humansize/commonerrors"
	"github.com/ARM-software/humansize/units/multiple"
)

// Errors returned when parsing a size. They all are of category commonerrors.ErrInvalid.
var (
	ErrNoValue         = commonerrors.New(commonerrors.ErrInvalid, "no value")
	ErrInvalidValue    = commonerrors.New(commonerrors.ErrInvalid, "invalid value")
	ErrNoMultiple      = commonerrors.New(commonerrors.ErrInvalid, "no multiple")
	ErrUnknownMultiple = multiple.ErrUnknownMultiple
	ErrUnknownExtra    = commonerrors.New(commonerrors.ErrInvalid, "unknown extra data")
)

// Parse parses a size written as a decimal magnitude followed by the token of
// a multiple, e.g. "1000 B" or "2 PiB". Tokens are separated by whitespace and
// surrounding whitespace is ignored. The magnitude may carry a single leading '+'.
//
// The error returned when the magnitude is not a valid unsigned integer wraps
// both ErrInvalidValue and the *strconv.NumError describing the failure.
func Parse(text string) (s Size, err error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		err = ErrNoValue
		return
	}
	value, err := strconv.ParseUint(strings.TrimPrefix(fields[0], "+"), 10, 64)
	if err != nil {
		err = commonerrors.WrapError(ErrInvalidValue, err, "")
		return
	}
	if len(fields) < 2 {
		err = ErrNoMultiple
		return
	}
	m, err := multiple.Parse(fields[1])
	if err != nil {
		return
	}
	if len(fields) > 2 {
		err = commonerrors.Newf(ErrUnknownExtra, "%q", strings.Join(fields[2:], " "))
		return
	}
	s = New(value, m)
	return
}

// String returns the size as written by a human, "<value> <multiple>", without any normalisation.
func (s Size) String() string {
	return strconv.FormatUint(s.value, 10) + " " + s.multiple.String()
}
