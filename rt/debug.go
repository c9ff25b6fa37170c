package rt

import "unsafe"

// DebugWriter receives runtime diagnostics as raw text. A line ends with
// its own "\n" call. Writers run on the halt path and must not allocate.
type DebugWriter func(string)

// debugPrint is a no-op until a writer is installed
var debugPrint DebugWriter = func(string) {}

// SetDebugWriter installs the diagnostics sink. nil restores the no-op.
func SetDebugWriter(w DebugWriter) {
	if w == nil {
		w = func(string) {}
	}
	debugPrint = w
}

// stringBytes views s as a byte slice without copying. The result must not
// be written to.
func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
