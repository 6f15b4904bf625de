package hash

import (
	"crypto/sha256"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_hasher.go github.com/fairgame-io/gametable/internal/hash Hasher

// Hasher computes the fixed-length digest used for commit-reveal
// verification. The engine treats it as a pure, deterministic call.
type Hasher interface {
	Sum(data []byte) []byte
}

// SHA256 implements the Hasher interface using SHA-256
type SHA256 struct{}

// New creates a new SHA-256 hasher
func New() *SHA256 {
	return &SHA256{}
}

// Sum returns the SHA-256 digest of data
func (h *SHA256) Sum(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}
