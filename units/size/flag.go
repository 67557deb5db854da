package size

import "github.com/spf13/pflag"

var _ pflag.Value = (*Size)(nil)

// Set implements pflag.Value.
func (s *Size) Set(value string) error {
	return s.UnmarshalText([]byte(value))
}

// Type implements pflag.Value.
func (s *Size) Type() string {
	return "size"
}

// FlagVar defines a size flag with specified name, default value, and usage string.
// The argument p points to a Size variable in which to store the value of the flag.
func FlagVar(flags *pflag.FlagSet, p *Size, name string, value Size, usage string) {
	*p = value
	flags.Var(p, name, usage)
}

// FlagVarP is like FlagVar, but accepts a shorthand letter that can be used after a single dash.
func FlagVarP(flags *pflag.FlagSet, p *Size, name, shorthand string, value Size, usage string) {
	*p = value
	flags.VarP(p, name, shorthand, usage)
}
