package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"github.com/pkg/errors"

	"gamevault/internal/domain/service"
)

// rawTokenBytes is the entropy of a raw refresh token before hex encoding.
const rawTokenBytes = 48

// randomTokenGenerator produces opaque refresh token values from the
// system CSPRNG and hashes them with SHA-256 for storage.
type randomTokenGenerator struct{}

// NewRefreshTokenGenerator is the constructor for randomTokenGenerator.
func NewRefreshTokenGenerator() service.RefreshTokenGenerator {
	return &randomTokenGenerator{}
}

// Generate returns a new 96-character hex token value.
func (g *randomTokenGenerator) Generate() (string, error) {
	buf := make([]byte, rawTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "read random bytes")
	}

	return hex.EncodeToString(buf), nil
}

// Hash returns the hex-encoded SHA-256 digest of a raw token value.
func (g *randomTokenGenerator) Hash(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}
