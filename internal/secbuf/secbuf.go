// Package secbuf provides a byte buffer with an owned lifecycle: the
// buffer is always zeroed before its backing slice is released. Every
// secret, salt, derived-key and hex buffer in the derivation pipeline
// is held in one of these, so that no exit path can leave sensitive
// bytes reachable.
//
// A Buffer has exactly one owner at a time. The owner either hands the
// buffer off or calls Destroy; typical usage is
//
//	buf, err := ...
//	if err != nil { ... }
//	defer buf.Destroy()
package secbuf

import (
	"bytes"

	"github.com/dmitrijs2005/grubpass/internal/common"
)

// Buffer owns a byte slice holding sensitive data.
type Buffer struct {
	b []byte
}

// New allocates a zero-filled buffer of n bytes.
func New(n int) *Buffer {
	return &Buffer{b: make([]byte, n)}
}

// Adopt takes ownership of b. The caller must not use or retain b
// afterwards; the returned Buffer will zero it on Destroy.
func Adopt(b []byte) *Buffer {
	return &Buffer{b: b}
}

// Bytes exposes the underlying slice for in-place use. The slice must
// not be retained past Destroy.
func (s *Buffer) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.b
}

// Len returns the buffer length, 0 for nil or destroyed buffers.
func (s *Buffer) Len() int {
	if s == nil {
		return 0
	}
	return len(s.b)
}

// Equal reports whether both buffers hold identical bytes.
func (s *Buffer) Equal(o *Buffer) bool {
	return bytes.Equal(s.Bytes(), o.Bytes())
}

// Destroy zeroes the buffer and drops the reference to it. It is
// idempotent and nil-safe, so it can be deferred unconditionally and
// also called early on the paths where the data is no longer needed.
func (s *Buffer) Destroy() {
	if s == nil || s.b == nil {
		return
	}
	common.WipeByteArray(s.b)
	s.b = nil
}
