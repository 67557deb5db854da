package size

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/humansize/commonerrors"
	"github.com/ARM-software/humansize/commonerrors/errortest"
	"github.com/ARM-software/humansize/units/multiple"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Size
	}{
		{"1000 B", New(1000, multiple.Byte)},
		{"1 kB", New(1, multiple.Kilobyte)},
		{"2 PiB", New(2, multiple.Pebibyte)},
		{"0 YB", New(0, multiple.Yottabyte)},
		{"5 KB", New(5, multiple.Kibibyte)},
		{"5 KiB", New(5, multiple.Kibibyte)},
		{"18446744073709551615 YiB", New(18446744073709551615, multiple.Yobibyte)},
		{"007 MB", New(7, multiple.Megabyte)},
		{"+5 kB", New(5, multiple.Kilobyte)},
		{"+0 B", New(0, multiple.Byte)},
		{"   12    GiB   ", New(12, multiple.Gigibyte)},
		{"12\tGiB", New(12, multiple.Gigibyte)},
		{"\n12\n\tTB\n", New(12, multiple.Terabyte)},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.input, func(t *testing.T) {
			s, err := Parse(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.expected, s)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		err   error
	}{
		{"", ErrNoValue},
		{"   ", ErrNoValue},
		{"\t\n", ErrNoValue},
		{"5", ErrNoMultiple},
		{" 5 ", ErrNoMultiple},
		{"5 zz", ErrUnknownMultiple},
		{"5 kb", ErrUnknownMultiple},
		{"5kB", ErrInvalidValue},
		{"kB", ErrInvalidValue},
		{"kB 5", ErrInvalidValue},
		{"-5 kB", ErrInvalidValue},
		{"+ kB", ErrInvalidValue},
		{"++5 kB", ErrInvalidValue},
		{"+-5 kB", ErrInvalidValue},
		{"-+5 kB", ErrInvalidValue},
		{"+", ErrInvalidValue},
		{"1.5 kB", ErrInvalidValue},
		{"1_000 kB", ErrInvalidValue},
		{"18446744073709551616 B", ErrInvalidValue},
		{"abc", ErrInvalidValue},
		{"5 kB extra", ErrUnknownExtra},
		{"5 kB 6 MB", ErrUnknownExtra},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.input, func(t *testing.T) {
			s, err := Parse(test.input)
			errortest.AssertError(t, err, test.err)
			errortest.AssertError(t, err, commonerrors.ErrInvalid)
			errortest.AssertNotError(t, err, commonerrors.ErrOverflow)
			assert.Equal(t, Size{}, s)
		})
	}
}

func TestParseErrorsAreDistinct(t *testing.T) {
	errs := []error{ErrNoValue, ErrInvalidValue, ErrNoMultiple, ErrUnknownMultiple, ErrUnknownExtra}
	for i := range errs {
		for j := range errs {
			assert.Equal(t, i == j, errors.Is(errs[i], errs[j]), "%v vs %v", errs[i], errs[j])
		}
	}
}

func TestParseInvalidValueCause(t *testing.T) {
	_, err := Parse("twelve MB")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidValue))
	assert.True(t, errors.Is(err, strconv.ErrSyntax))
	var numErr *strconv.NumError
	require.True(t, errors.As(err, &numErr))
	assert.Equal(t, "twelve", numErr.Num)

	_, err = Parse("99999999999999999999 B")
	assert.True(t, errors.Is(err, ErrInvalidValue))
	assert.True(t, errors.Is(err, strconv.ErrRange))
	// A magnitude out of range is a parsing error, not a conversion one.
	errortest.AssertNotError(t, err, commonerrors.ErrOverflow)
}

func TestParseAlias(t *testing.T) {
	alias, err := Parse("5 KB")
	require.NoError(t, err)
	canonical, err := Parse("5 KiB")
	require.NoError(t, err)
	assert.True(t, alias.Equal(canonical))
	assert.Equal(t, canonical, alias)
	assert.Equal(t, "5 KiB", alias.String())
}

func TestParseRandomUnits(t *testing.T) {
	for i := 0; i < 20; i++ {
		word := faker.Word()
		if _, err := multiple.Parse(word); err == nil {
			continue
		}
		_, err := Parse(fmt.Sprintf("12 %v", word))
		errortest.AssertError(t, err, ErrUnknownMultiple)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		size     Size
		expected string
	}{
		{New(1000, multiple.Byte), "1000 B"},
		{New(1, multiple.Kilobyte), "1 kB"},
		{New(2, multiple.Pebibyte), "2 PiB"},
		{New(0, multiple.Byte), "0 B"},
		{New(1_000_000, multiple.Byte), "1000000 B"},
		{New(18446744073709551615, multiple.Yottabyte), "18446744073709551615 YB"},
		{New(3, multiple.Multiple(99)), "3 Multiple(99)"},
	}
	for i := range tests {
		test := tests[i]
		assert.Equal(t, test.expected, test.size.String())
		assert.Equal(t, test.expected, fmt.Sprint(test.size))
	}
}

func TestRoundTrip(t *testing.T) {
	for _, m := range multiple.All() {
		for _, v := range []uint64{0, 1, 42, 1000, 1024, 18446744073709551615} {
			s := New(v, m)
			parsed, err := Parse(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	}
}

func FuzzParse(f *testing.F) {
	f.Add("1000 B")
	f.Add("5 KB")
	f.Add("+5 kB")
	f.Add("")
	f.Add("5 kB extra")
	f.Add("18446744073709551616 B")
	f.Fuzz(func(t *testing.T, input string) {
		s, err := Parse(input)
		if err != nil {
			if !commonerrors.Any(err, commonerrors.ErrInvalid) {
				t.Fatalf("%q: unexpected error category: %v", input, err)
			}
			return
		}
		reparsed, err := Parse(s.String())
		if err != nil {
			t.Fatalf("%q: rendered form %q does not parse: %v", input, s.String(), err)
		}
		if reparsed != s {
			t.Fatalf("%q: round trip changed %v into %v", input, s, reparsed)
		}
	})
}
