package common

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. This is used to remove passwords, salts and derived keys from
// memory after their last required use.
//
// Zeroing is best effort in Go (the runtime may have made copies), but
// it keeps the exposure window as small as the language allows.
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
