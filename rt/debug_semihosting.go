//go:build tinygo && semihosting

package rt

import "tinygo.org/x/drivers/semihosting"

// Diagnostics go to the debugger console when built with -tags semihosting
func init() {
	SetDebugWriter(func(s string) {
		semihosting.Stdout.Write(stringBytes(s))
	})
}
