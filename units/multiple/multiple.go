// Package multiple defines the unit steps a byte quantity can be expressed in.
//
// Two independent scales are supported: the decimal scale (powers of 1000, from
// kilobyte to yottabyte) and the binary scale (powers of 1024, from kibibyte to
// yobibyte). Each multiple has a canonical token used for parsing and display.
package multiple

import (
	"fmt"

	"lukechampine.com/uint128"

	"github.com/ARM-software/humansize/commonerrors"
)

// ErrUnknownMultiple is returned when a token does not describe any multiple.
var ErrUnknownMultiple = commonerrors.New(commonerrors.ErrInvalid, "unknown multiple")

// Multiple is a multiple of bytes e.g. Kilobyte or Kibibyte.
type Multiple int

const (
	// Byte represents a single byte, "B" in text.
	Byte Multiple = iota

	Kilobyte  // 1000^1 bytes, "kB"
	Megabyte  // 1000^2 bytes, "MB"
	Gigabyte  // 1000^3 bytes, "GB"
	Terabyte  // 1000^4 bytes, "TB"
	Petabyte  // 1000^5 bytes, "PB"
	Exabyte   // 1000^6 bytes, "EB"
	Zettabyte // 1000^7 bytes, "ZB"
	Yottabyte // 1000^8 bytes, "YB"

	Kibibyte // 1024^1 bytes, "KiB" ("KB" is also accepted when parsing)
	Mebibyte // 1024^2 bytes, "MiB"
	Gigibyte // 1024^3 bytes, "GiB"
	Tebibyte // 1024^4 bytes, "TiB"
	Pebibyte // 1024^5 bytes, "PiB"
	Exbibyte // 1024^6 bytes, "EiB"
	Zebibyte // 1024^7 bytes, "ZiB"
	Yobibyte // 1024^8 bytes, "YiB"
)

// Scale is the family a multiple belongs to.
//
//go:generate go run github.com/dmarkham/enumer -type=Scale -transform=lower -text -json
type Scale int

const (
	Decimal Scale = iota
	Binary
)

// KibibyteAlias is accepted as a Kibibyte token on input but never produced on output.
const KibibyteAlias = "KB"

type definition struct {
	token     string
	scale     Scale
	exponent  int
	magnitude uint128.Uint128
}

var (
	definitions = [...]definition{
		Byte:      {token: "B", scale: Decimal},
		Kilobyte:  {token: "kB", scale: Decimal, exponent: 1},
		Megabyte:  {token: "MB", scale: Decimal, exponent: 2},
		Gigabyte:  {token: "GB", scale: Decimal, exponent: 3},
		Terabyte:  {token: "TB", scale: Decimal, exponent: 4},
		Petabyte:  {token: "PB", scale: Decimal, exponent: 5},
		Exabyte:   {token: "EB", scale: Decimal, exponent: 6},
		Zettabyte: {token: "ZB", scale: Decimal, exponent: 7},
		Yottabyte: {token: "YB", scale: Decimal, exponent: 8},
		Kibibyte:  {token: "KiB", scale: Binary, exponent: 1},
		Mebibyte:  {token: "MiB", scale: Binary, exponent: 2},
		Gigibyte:  {token: "GiB", scale: Binary, exponent: 3},
		Tebibyte:  {token: "TiB", scale: Binary, exponent: 4},
		Pebibyte:  {token: "PiB", scale: Binary, exponent: 5},
		Exbibyte:  {token: "EiB", scale: Binary, exponent: 6},
		Zebibyte:  {token: "ZiB", scale: Binary, exponent: 7},
		Yobibyte:  {token: "YiB", scale: Binary, exponent: 8},
	}
	tokens = map[string]Multiple{KibibyteAlias: Kibibyte}
)

func init() {
	for i := range definitions {
		d := &definitions[i]
		base := uint64(1000)
		if d.scale == Binary {
			base = 1024
		}
		d.magnitude = uint128.From64(1)
		for j := 0; j < d.exponent; j++ {
			d.magnitude = d.magnitude.Mul64(base)
		}
		tokens[d.token] = Multiple(i)
	}
}

// All returns every multiple, decimal scale first, in increasing order of magnitude within each scale.
func All() []Multiple {
	all := make([]Multiple, 0, len(definitions))
	for i := range definitions {
		all = append(all, Multiple(i))
	}
	return all
}

// Parse returns the multiple described by token. The token must match exactly (case-sensitive).
func Parse(token string) (Multiple, error) {
	m, found := tokens[token]
	if !found {
		return Byte, commonerrors.Newf(ErrUnknownMultiple, "%q", token)
	}
	return m, nil
}

// IsValid states whether m is one of the defined multiples.
func (m Multiple) IsValid() bool {
	return m >= 0 && int(m) < len(definitions)
}

// String returns the canonical token of the multiple.
func (m Multiple) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("Multiple(%d)", int(m))
	}
	return definitions[m].token
}

// Scale returns the scale the multiple belongs to. Byte is reported as Decimal.
func (m Multiple) Scale() Scale {
	if !m.IsValid() {
		return Decimal
	}
	return definitions[m].scale
}

// Exponent returns n such that the magnitude of m is base^n, base being 1000 or 1024 depending on the scale.
func (m Multiple) Exponent() int {
	if !m.IsValid() {
		return 0
	}
	return definitions[m].exponent
}
