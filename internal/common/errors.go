// Package common defines the shared sentinel errors and the byte-wiping
// helper used across grubpass components. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// ErrInput — the secret could not be read (end of input, or the
	// input source failed before a full line was obtained).
	ErrInput = errors.New("failure to read password")

	// ErrMismatch — the confirmation entry differs from the primary one.
	ErrMismatch = errors.New("passwords don't match")

	// ErrEntropy — the requested amount of cryptographically strong
	// random data could not be sourced.
	ErrEntropy = errors.New("couldn't retrieve random data for salt")

	// ErrDerivation — the key-derivation primitive reported failure.
	ErrDerivation = errors.New("cryptographic error")
)
