//go:build tools

package multiple

// Pins the enumer code generator used by the go:generate directive in
// multiple.go (go.mod "tool" directives need Go 1.24+).
import _ "github.com/dmarkham/enumer"
