package config

import (
	"reflect"

	"github.com/go-viper/mapstructure/v2"

	"github.com/ARM-software/humansize/commonerrors"
	"github.com/ARM-software/humansize/units/multiple"
	"github.com/ARM-software/humansize/units/size"
)

var (
	sizeType     = reflect.TypeOf(size.Size{})
	multipleType = reflect.TypeOf(multiple.Byte)
)

// SizeHookFunc returns a decode hook converting strings such as "5 GiB" into sizes.
// Unsigned integers (or non-negative signed ones) are considered to be a number of bytes.
func SizeHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != sizeType {
			return data, nil
		}
		switch from.Kind() {
		case reflect.String:
			return size.Parse(reflect.ValueOf(data).String())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return size.New(reflect.ValueOf(data).Uint(), multiple.Byte), nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			v := reflect.ValueOf(data).Int()
			if v < 0 {
				return nil, commonerrors.Newf(commonerrors.ErrInvalid, "size cannot be negative: %d", v)
			}
			return size.New(uint64(v), multiple.Byte), nil
		default:
			return data, nil
		}
	}
}

// MultipleHookFunc returns a decode hook converting tokens such as "GiB" into multiples.
// Multiples can only be described by their token: numbers are rejected.
func MultipleHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != multipleType {
			return data, nil
		}
		if from == multipleType {
			m := data.(multiple.Multiple)
			if !m.IsValid() {
				return nil, commonerrors.Newf(commonerrors.ErrInvalid, "%v is not a multiple", m)
			}
			return m, nil
		}
		if from.Kind() != reflect.String {
			return nil, commonerrors.Newf(commonerrors.ErrInvalid, "a multiple must be described by its token, got %v", data)
		}
		return multiple.Parse(reflect.ValueOf(data).String())
	}
}
