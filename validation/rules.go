// Package validation provides ozzo-validation rules for human readable sizes.
package validation

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/humansize/commonerrors"
	"github.com/ARM-software/humansize/units/multiple"
	"github.com/ARM-software/humansize/units/size"
)

var (
	// IsSize validates whether a value is a size or a string describing a size e.g. "5 GiB".
	IsSize = validation.By(isSize)
	// IsMultiple validates whether a value is a multiple or a string describing one e.g. "GiB".
	IsMultiple = validation.By(isMultiple)
)

func isSize(value any) error {
	_, err := toSize(value)
	return err
}

func isMultiple(value any) (err error) {
	switch v := value.(type) {
	case multiple.Multiple:
		if !v.IsValid() {
			err = commonerrors.Newf(commonerrors.ErrInvalid, "%v is not a multiple", v)
		}
	case *multiple.Multiple:
		if v == nil {
			err = commonerrors.New(commonerrors.ErrMarshalling, "nil multiple")
			return
		}
		err = isMultiple(*v)
	case string:
		_, err = multiple.Parse(v)
	case []byte:
		_, err = multiple.Parse(string(v))
	default:
		err = commonerrors.Newf(commonerrors.ErrMarshalling, "cannot validate a value of type %T as a multiple", value)
	}
	return
}

func toSize(value any) (s size.Size, err error) {
	switch v := value.(type) {
	case size.Size:
		s = v
	case *size.Size:
		if v == nil {
			err = commonerrors.New(commonerrors.ErrMarshalling, "nil size")
			return
		}
		s = *v
	case string:
		s, err = size.Parse(v)
	case []byte:
		s, err = size.Parse(string(v))
	default:
		err = commonerrors.Newf(commonerrors.ErrMarshalling, "cannot validate a value of type %T as a size", value)
	}
	return
}

// FitsIn validates whether a size can be converted into an unsigned integer of the given width.
func FitsIn(width multiple.Width) validation.Rule {
	return validation.By(func(value any) error {
		s, err := toSize(value)
		if err != nil {
			return err
		}
		if _, err := s.To(width); err != nil {
			return commonerrors.WrapError(commonerrors.ErrInvalid, err, "")
		}
		return nil
	})
}

// AtMost validates whether a size is not larger than limit.
func AtMost(limit size.Size) validation.Rule {
	return compareTo(limit, func(order int) bool { return order <= 0 }, "larger than")
}

// AtLeast validates whether a size is not smaller than limit.
func AtLeast(limit size.Size) validation.Rule {
	return compareTo(limit, func(order int) bool { return order >= 0 }, "smaller than")
}

// Between validates whether a size is within [lower, upper].
func Between(lower, upper size.Size) validation.Rule {
	atLeast := AtLeast(lower)
	atMost := AtMost(upper)
	return validation.By(func(value any) error {
		if err := atLeast.Validate(value); err != nil {
			return err
		}
		return atMost.Validate(value)
	})
}

func compareTo(limit size.Size, accept func(order int) bool, relation string) validation.Rule {
	return validation.By(func(value any) error {
		s, err := toSize(value)
		if err != nil {
			return err
		}
		order, ok := s.Compare(limit)
		if !ok {
			return commonerrors.Newf(commonerrors.ErrInvalid, "%v cannot be compared to %v", s, limit)
		}
		if !accept(order) {
			return commonerrors.Newf(commonerrors.ErrInvalid, "%v is %v %v", s, relation, limit)
		}
		return nil
	})
}
