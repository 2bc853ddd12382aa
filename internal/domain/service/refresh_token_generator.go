package service

// RefreshTokenGenerator produces raw refresh token values and their storage
// hashes. Injected so tests can substitute a deterministic generator.
type RefreshTokenGenerator interface {
	// Generate returns a new high-entropy raw token value.
	Generate() (string, error)

	// Hash returns the digest of a raw token value as stored and compared
	// in persistence. The raw value itself is never persisted.
	Hash(raw string) string
}
