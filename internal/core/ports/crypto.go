package ports

// PasswordHasher performs the one-way transform used for credential storage.
// Hash embeds a per-call random salt, so two hashes of the same plaintext
// differ while both verify. Check must compare in constant time.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}

// TokenIssuer issues and verifies the signed bearer tokens handed out at
// login. Tokens carry a single subject claim and do not self-expire; the
// service keeps no session state.
type TokenIssuer interface {
	Issue(username string) (string, error)
	// Verify returns the subject username, or domain.ErrInvalidToken for any
	// malformed, mis-signed, or otherwise unacceptable token.
	Verify(token string) (string, error)
}
