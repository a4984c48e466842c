package kdf

import (
	"crypto/subtle"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/grubpass/internal/common"
)

// TokenPrefix is the fixed algorithm tag of the credential token. Any
// downstream verifier keys off this exact prefix.
const TokenPrefix = "grub.pbkdf2.sha512"

// Credential is the derived credential record: iteration count, salt
// and derived key material. It is immutable once constructed; the
// caller owns the wiping of Salt and Key.
type Credential struct {
	Iterations uint64
	Salt       []byte
	Key        []byte
}

// Encode serializes c into the canonical dot-delimited token
//
//	grub.pbkdf2.sha512.<iterations>.<SALT_HEX>.<KEY_HEX>
//
// with decimal iterations and uppercase hex. Note that the returned
// string cannot be wiped; callers needing zeroization should compose
// the token from Hexify output instead.
func (c *Credential) Encode() string {
	return fmt.Sprintf("%s.%d.%s.%s", TokenPrefix, c.Iterations, Hexify(c.Salt), Hexify(c.Key))
}

// Verify re-derives key material from password using p and reports
// whether it matches the credential, comparing in constant time. The
// re-derived material is wiped before returning.
func (c *Credential) Verify(p Primitive, password []byte) (bool, error) {
	derived, err := p.Derive(password, c.Salt, c.Iterations, len(c.Key))
	if err != nil {
		return false, err
	}
	defer common.WipeByteArray(derived)
	return subtle.ConstantTimeCompare(derived, c.Key) == 1, nil
}

// Decode parses a canonical token back into a credential record. The
// token must carry the exact TokenPrefix, a decimal iteration count
// with no leading zeros, and uppercase even-length hex salt and key
// fields.
func Decode(token string) (*Credential, error) {
	fields := strings.Split(strings.TrimSuffix(token, "\n"), ".")
	if len(fields) != 6 {
		return nil, fmt.Errorf("malformed credential token: wrong field count")
	}
	if prefix := strings.Join(fields[:3], "."); prefix != TokenPrefix {
		return nil, fmt.Errorf("unsupported credential format %q", prefix)
	}

	iterField := fields[3]
	if len(iterField) > 1 && iterField[0] == '0' {
		return nil, fmt.Errorf("malformed iteration count %q", iterField)
	}
	iterations, err := strconv.ParseUint(iterField, 10, 64)
	if err != nil || iterations == 0 {
		return nil, fmt.Errorf("malformed iteration count %q", iterField)
	}

	salt, err := unhexify(fields[4])
	if err != nil {
		return nil, fmt.Errorf("malformed salt field: %w", err)
	}
	key, err := unhexify(fields[5])
	if err != nil {
		return nil, fmt.Errorf("malformed hash field: %w", err)
	}

	return &Credential{Iterations: iterations, Salt: salt, Key: key}, nil
}

const hexDigits = "0123456789ABCDEF"

// Hexify encodes bin as uppercase hexadecimal, two characters per byte,
// most-significant nibble first, no separators.
func Hexify(bin []byte) []byte {
	hex := make([]byte, 2*len(bin))
	for i, b := range bin {
		hex[2*i] = hexDigits[b>>4]
		hex[2*i+1] = hexDigits[b&0x0f]
	}
	return hex
}

// unhexify decodes an uppercase hex field. Lowercase digits are
// rejected: the canonical encoding is uppercase only.
func unhexify(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("odd hex length %d", len(s))
	}
	bin := make([]byte, len(s)/2)
	for i := range bin {
		hi, err := nibble(s[2*i])
		if err != nil {
			return nil, err
		}
		lo, err := nibble(s[2*i+1])
		if err != nil {
			return nil, err
		}
		bin[i] = hi<<4 | lo
	}
	return bin, nil
}

func nibble(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	}
	return 0, fmt.Errorf("invalid hex digit %q", c)
}
