package core

// PasswordHasher turns plaintext passwords into one-way encoded hashes
type PasswordHasher interface {
	// Hash returns an encoded hash that embeds its own salt and parameters
	Hash(password string) (string, error)
	// Verify reports whether password matches the encoded hash
	Verify(password, encodedHash string) (bool, error)
}
