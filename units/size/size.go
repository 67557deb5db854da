// Package size represents quantities of bytes the way humans write them e.g. "1000 B", "1 kB" or "2 PiB".
//
// A Size pairs a magnitude with a multiple and keeps both as provided: "1000 B"
// and "1 kB" are equal sizes but are displayed differently. The number of bytes
// a size represents is only computed on demand, by converting it into an
// unsigned integer of a given width. Conversions never truncate and fail with
// an error of category commonerrors.ErrOverflow when the result does not fit.
package size

import (
	"lukechampine.com/uint128"

	"github.com/ARM-software/humansize/commonerrors"
	"github.com/ARM-software/humansize/safecast"
	"github.com/ARM-software/humansize/units/multiple"
)

// Size is a magnitude expressed in a multiple of bytes. The zero value is "0 B".
type Size struct {
	value    uint64
	multiple multiple.Multiple
}

// New creates a size. No range checking is performed: whether the size can be
// represented as an integer is only determined on conversion.
func New(value uint64, m multiple.Multiple) Size {
	return Size{
		value:    value,
		multiple: m,
	}
}

// Value returns the magnitude of the size, expressed in Multiple().
func (s Size) Value() uint64 {
	return s.value
}

// Multiple returns the multiple the size is expressed in.
func (s Size) Multiple() multiple.Multiple {
	return s.multiple
}

// ToUint32 returns the number of bytes the size represents. Any size with a
// multiple bigger than Gigabyte or Gigibyte cannot be converted.
func (s Size) ToUint32() (uint32, error) {
	m, err := s.multiple.ToUint32()
	if err != nil {
		return 0, s.conversionError(multiple.Width32, err)
	}
	v, ok := safecast.Narrow[uint32](s.value)
	if !ok {
		return 0, multiple.Width32.OverflowError(s)
	}
	bytes, ok := safecast.Mul(v, m)
	if !ok {
		return 0, multiple.Width32.OverflowError(s)
	}
	return bytes, nil
}

// ToUint64 returns the number of bytes the size represents. Any size with a
// multiple bigger than Petabyte or Pebibyte cannot be converted.
func (s Size) ToUint64() (uint64, error) {
	m, err := s.multiple.ToUint64()
	if err != nil {
		return 0, s.conversionError(multiple.Width64, err)
	}
	bytes, ok := safecast.Mul(s.value, m)
	if !ok {
		return 0, multiple.Width64.OverflowError(s)
	}
	return bytes, nil
}

// ToUint128 returns the number of bytes the size represents.
func (s Size) ToUint128() (uint128.Uint128, error) {
	m, err := s.multiple.ToUint128()
	if err != nil {
		return uint128.Zero, s.conversionError(multiple.Width128, err)
	}
	bytes, ok := safecast.Mul128(m, s.value)
	if !ok {
		return uint128.Zero, multiple.Width128.OverflowError(s)
	}
	return bytes, nil
}

// To returns the number of bytes the size represents provided it fits in an
// unsigned integer of the given width. The result is widened to 128 bits.
func (s Size) To(width multiple.Width) (uint128.Uint128, error) {
	switch width {
	case multiple.Width32:
		v, err := s.ToUint32()
		return uint128.From64(uint64(v)), err
	case multiple.Width64:
		v, err := s.ToUint64()
		return uint128.From64(v), err
	case multiple.Width128:
		return s.ToUint128()
	default:
		return uint128.Zero, commonerrors.Newf(commonerrors.ErrUnsupported, "width %d", int(width))
	}
}

// A multiple too large for the width and a product too large for the width are reported the same way.
func (s Size) conversionError(width multiple.Width, err error) error {
	if commonerrors.Any(err, commonerrors.ErrOverflow) {
		return width.OverflowError(s)
	}
	return err
}

// Compare compares the number of bytes represented by s and other. It returns
// -1, 0 or +1 and ok set to true, or ok set to false when the sizes cannot be
// compared because either of them does not fit in 128 bits.
func (s Size) Compare(other Size) (order int, ok bool) {
	left, err := s.ToUint128()
	if err != nil {
		return
	}
	right, err := other.ToUint128()
	if err != nil {
		return
	}
	return left.Cmp(right), true
}

// Equal states whether s and other represent the same number of bytes.
// Sizes which cannot be compared are never equal, not even to themselves.
func (s Size) Equal(other Size) bool {
	order, ok := s.Compare(other)
	return ok && order == 0
}

// Less states whether s represents fewer bytes than other. Sizes which cannot be compared are never less.
func (s Size) Less(other Size) bool {
	order, ok := s.Compare(other)
	return ok && order < 0
}
