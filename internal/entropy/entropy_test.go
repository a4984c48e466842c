package entropy

import (
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/grubpass/internal/common"
)

func TestNewSalt_Length(t *testing.T) {
	salt, err := NewSalt(64)
	require.NoError(t, err)
	defer salt.Destroy()
	require.Equal(t, 64, salt.Len())
}

func TestNewSalt_Freshness(t *testing.T) {
	a, err := NewSalt(32)
	require.NoError(t, err)
	defer a.Destroy()

	b, err := NewSalt(32)
	require.NoError(t, err)
	defer b.Destroy()

	// Identical 32-byte salts would indicate a broken random source.
	require.False(t, a.Equal(b), "two independently generated salts are identical")
}

func TestNewSalt_ReaderFailure(t *testing.T) {
	old := randReader
	t.Cleanup(func() { randReader = old })
	randReader = iotest.ErrReader(assertableErr{})

	_, err := NewSalt(16)
	require.ErrorIs(t, err, common.ErrEntropy)
}

func TestNewSalt_ShortRead(t *testing.T) {
	old := randReader
	t.Cleanup(func() { randReader = old })
	randReader = strings.NewReader("only-a-few-bytes")

	_, err := NewSalt(64)
	require.ErrorIs(t, err, common.ErrEntropy)
}

func TestAdvisoryFor(t *testing.T) {
	require.Empty(t, AdvisoryFor("linux"))
	require.Empty(t, AdvisoryFor("freebsd"))
	require.NotEmpty(t, AdvisoryFor("plan9"))
	require.NotEmpty(t, AdvisoryFor("js"))
}

type assertableErr struct{}

func (assertableErr) Error() string { return "rng unavailable" }
