// Package entropy sources cryptographically strong random bytes for
// salt generation. The platform CSPRNG is the only acceptable source;
// a short read is fatal, never retried and never padded.
package entropy

import (
	"crypto/rand"
	"fmt"
	"io"
	"runtime"

	"github.com/dmitrijs2005/grubpass/internal/common"
	"github.com/dmitrijs2005/grubpass/internal/secbuf"
)

// randReader is a test seam for the system random source.
var randReader io.Reader = rand.Reader

// NewSalt returns a freshly generated salt of exactly n bytes. Any
// failure to obtain the full n bytes is common.ErrEntropy: derivation
// must never proceed with partial or substitute entropy.
func NewSalt(n int) (*secbuf.Buffer, error) {
	salt := secbuf.New(n)
	if _, err := io.ReadFull(randReader, salt.Bytes()); err != nil {
		salt.Destroy()
		return nil, fmt.Errorf("%w: %v", common.ErrEntropy, err)
	}
	return salt, nil
}

// knownStrong lists the platforms where crypto/rand is backed by a
// kernel CSPRNG.
var knownStrong = map[string]bool{
	"linux":     true,
	"freebsd":   true,
	"openbsd":   true,
	"netbsd":    true,
	"dragonfly": true,
	"darwin":    true,
	"windows":   true,
	"solaris":   true,
	"illumos":   true,
}

// Advisory returns a warning message when the current platform's random
// source is not known to be cryptographically strong, or an empty
// string when no warning applies. The warning is advisory only and
// never gates salt generation.
func Advisory() string {
	return AdvisoryFor(runtime.GOOS)
}

// AdvisoryFor is the platform-parameterized form of Advisory.
func AdvisoryFor(goos string) string {
	if knownStrong[goos] {
		return ""
	}
	return "your random generator isn't known to be secure"
}
