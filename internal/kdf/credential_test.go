package kdf

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHexify(t *testing.T) {
	tests := []struct {
		name     string
		bin      []byte
		expected string
	}{
		{"empty", nil, ""},
		{"all nibble shapes", []byte{0x00, 0x0F, 0xA5, 0xFF}, "000FA5FF"},
		{"single byte", []byte{0x7B}, "7B"},
		{"msb nibble first", []byte{0x12}, "12"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, string(Hexify(tc.bin)))
		})
	}
}

func TestEncode_CanonicalShape(t *testing.T) {
	c := &Credential{
		Iterations: 10000,
		Salt:       []byte{0xAB, 0xCD},
		Key:        []byte{0x01, 0x23, 0x45, 0x67},
	}
	token := c.Encode()
	require.Equal(t, "grub.pbkdf2.sha512.10000.ABCD.01234567", token)

	pattern := regexp.MustCompile(`^grub\.pbkdf2\.sha512\.[1-9][0-9]*\.[0-9A-F]+\.[0-9A-F]+$`)
	require.Regexp(t, pattern, token)
}

func TestDecode_RoundTrip(t *testing.T) {
	orig := &Credential{
		Iterations: 123456,
		Salt:       []byte{0x00, 0xFF, 0x10, 0x20},
		Key:        []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00},
	}

	decoded, err := Decode(orig.Encode())
	require.NoError(t, err)
	require.Equal(t, orig, decoded)
}

func TestDecode_TrailingNewlineAccepted(t *testing.T) {
	c := &Credential{Iterations: 10, Salt: []byte{0x01}, Key: []byte{0x02}}
	decoded, err := Decode(c.Encode() + "\n")
	require.NoError(t, err)
	require.Equal(t, c, decoded)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"too few fields", "grub.pbkdf2.sha512.10000.ABCD"},
		{"too many fields", "grub.pbkdf2.sha512.10000.ABCD.ABCD.ABCD"},
		{"wrong prefix", "grub.scrypt.sha512.10000.ABCD.ABCD"},
		{"wrong tag", "lilo.pbkdf2.sha512.10000.ABCD.ABCD"},
		{"zero iterations", "grub.pbkdf2.sha512.0.ABCD.ABCD"},
		{"leading zero iterations", "grub.pbkdf2.sha512.010000.ABCD.ABCD"},
		{"non-numeric iterations", "grub.pbkdf2.sha512.10k.ABCD.ABCD"},
		{"negative iterations", "grub.pbkdf2.sha512.-1.ABCD.ABCD"},
		{"lowercase salt hex", "grub.pbkdf2.sha512.10000.abcd.ABCD"},
		{"lowercase key hex", "grub.pbkdf2.sha512.10000.ABCD.abcd"},
		{"odd salt hex length", "grub.pbkdf2.sha512.10000.ABC.ABCD"},
		{"non-hex digit", "grub.pbkdf2.sha512.10000.ABCG.ABCD"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.token)
			require.Error(t, err)
		})
	}
}

func TestVerify(t *testing.T) {
	password := []byte("abc")
	salt := []byte{0x10, 0x20, 0x30, 0x40}

	key, err := SHA512{}.Derive(password, salt, 1000, 32)
	require.NoError(t, err)

	c := &Credential{Iterations: 1000, Salt: salt, Key: key}

	ok, err := c.Verify(SHA512{}, []byte("abc"))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = c.Verify(SHA512{}, []byte("abd"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerify_PropagatesPrimitiveError(t *testing.T) {
	c := &Credential{Iterations: 0, Salt: []byte{1}, Key: []byte{2}}
	_, err := c.Verify(SHA512{}, []byte("x"))
	require.Error(t, err)
}

// End-to-end encoding contract: a token derived from a real credential
// survives Decode and still verifies the original password.
func TestEncodeDecodeVerify(t *testing.T) {
	password := []byte("correct horse battery staple")
	salt := []byte{9, 8, 7, 6, 5, 4, 3, 2}

	key, err := SHA512{}.Derive(password, salt, 2000, 64)
	require.NoError(t, err)

	decoded, err := Decode((&Credential{Iterations: 2000, Salt: salt, Key: key}).Encode())
	require.NoError(t, err)

	ok, err := decoded.Verify(SHA512{}, password)
	require.NoError(t, err)
	require.True(t, ok)
}
