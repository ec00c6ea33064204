package keys

import "runtime"

// Zero overwrites a byte slice with zeros to clear sensitive data from memory.
// Uses runtime.KeepAlive to keep the compiler from eliding the writes.
func Zero(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
