// Package kdf invokes the external key-derivation primitive and
// serializes the resulting credential record into its canonical
// GRUB-compatible textual token.
//
// The primitive itself (PBKDF2 over a keyed hash) is consumed from
// golang.org/x/crypto; this package never implements the hash.
package kdf

import (
	"crypto/sha512"
	"fmt"
	"math"

	"golang.org/x/crypto/pbkdf2"

	"github.com/dmitrijs2005/grubpass/internal/common"
)

// Primitive is the capability interface over a password-based
// key-derivation function. Derive fills exactly keyLen bytes
// deterministically from (secret, salt, iterations), or fails with an
// error wrapping common.ErrDerivation. On failure no partial output is
// returned.
type Primitive interface {
	Derive(secret, salt []byte, iterations uint64, keyLen int) ([]byte, error)
}

// SHA512 derives keys with PBKDF2 over HMAC-SHA512.
type SHA512 struct{}

// Derive implements Primitive.
func (SHA512) Derive(secret, salt []byte, iterations uint64, keyLen int) ([]byte, error) {
	if iterations == 0 || iterations > math.MaxInt32 {
		return nil, fmt.Errorf("%w: invalid iteration count %d", common.ErrDerivation, iterations)
	}
	if keyLen <= 0 {
		return nil, fmt.Errorf("%w: invalid output length %d", common.ErrDerivation, keyLen)
	}
	if len(salt) == 0 {
		return nil, fmt.Errorf("%w: empty salt", common.ErrDerivation)
	}
	return pbkdf2.Key(secret, salt, int(iterations), keyLen, sha512.New), nil
}
