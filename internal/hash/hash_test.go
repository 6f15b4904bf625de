package hash

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	h := New()

	// Known SHA-256 vector
	digest := h.Sum([]byte("abc"))
	assert.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		hex.EncodeToString(digest))
}

func TestSumLength(t *testing.T) {
	h := New()

	require.Len(t, h.Sum(nil), 32)
	require.Len(t, h.Sum([]byte("seed")), 32)
}

func TestSumDeterministic(t *testing.T) {
	h := New()

	assert.Equal(t, h.Sum([]byte("seed")), h.Sum([]byte("seed")))
	assert.NotEqual(t, h.Sum([]byte("seed")), h.Sum([]byte("forged")))
}
