package common

// WipeByteArray overwrites the contents of b with zeros so sensitive data
// such as passwords does not linger in memory.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
