package multiple

import (
	"fmt"

	"lukechampine.com/uint128"

	"github.com/ARM-software/humansize/commonerrors"
	"github.com/ARM-software/humansize/safecast"
)

// Width is the number of bits of an unsigned integer a quantity can be converted into.
type Width int

const (
	Width32  Width = 32
	Width64  Width = 64
	Width128 Width = 128
)

// Widths lists the supported widths, narrowest first.
var Widths = []Width{Width32, Width64, Width128}

// IsValid states whether w is a supported width.
func (w Width) IsValid() bool {
	switch w {
	case Width32, Width64, Width128:
		return true
	default:
		return false
	}
}

func (w Width) String() string {
	return fmt.Sprintf("%d bits", int(w))
}

// OverflowError returns the error describing that what does not fit in an unsigned integer of width w.
func (w Width) OverflowError(what fmt.Stringer) error {
	return commonerrors.Newf(commonerrors.ErrOverflow, "%v does not fit in %v", what, w)
}

// ToUint128 returns the number of bytes the multiple represents.
func (m Multiple) ToUint128() (uint128.Uint128, error) {
	if !m.IsValid() {
		return uint128.Zero, commonerrors.Newf(commonerrors.ErrUndefined, "%v", m)
	}
	return definitions[m].magnitude, nil
}

// ToUint64 returns the number of bytes the multiple represents. Multiples
// larger than Petabyte or Pebibyte do not fit and return an overflow error.
func (m Multiple) ToUint64() (uint64, error) {
	magnitude, err := m.ToUint128()
	if err != nil {
		return 0, err
	}
	narrowed, ok := safecast.Narrow128[uint64](magnitude)
	if !ok {
		return 0, Width64.OverflowError(m)
	}
	return narrowed, nil
}

// ToUint32 returns the number of bytes the multiple represents. Multiples
// larger than Gigabyte or Gigibyte do not fit and return an overflow error.
func (m Multiple) ToUint32() (uint32, error) {
	magnitude, err := m.ToUint64()
	if err != nil {
		if commonerrors.Any(err, commonerrors.ErrOverflow) {
			err = Width32.OverflowError(m)
		}
		return 0, err
	}
	narrowed, ok := safecast.Narrow[uint32](magnitude)
	if !ok {
		return 0, Width32.OverflowError(m)
	}
	return narrowed, nil
}

// To returns the number of bytes the multiple represents provided it fits in
// an unsigned integer of the given width. The result is widened to 128 bits.
func (m Multiple) To(width Width) (uint128.Uint128, error) {
	switch width {
	case Width32:
		v, err := m.ToUint32()
		return uint128.From64(uint64(v)), err
	case Width64:
		v, err := m.ToUint64()
		return uint128.From64(v), err
	case Width128:
		return m.ToUint128()
	default:
		return uint128.Zero, commonerrors.Newf(commonerrors.ErrUnsupported, "width %d", int(width))
	}
}
