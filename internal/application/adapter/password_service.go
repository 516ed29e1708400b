package adapter

// PasswordService hashes and checks account passwords.
type PasswordService interface {
	HashPassword(password string) (string, error)

	// VerifyPassword returns an error unless password matches hashedPassword.
	VerifyPassword(hashedPassword, password string) error

	// NeedsRehash reports whether hashedPassword was produced with weaker
	// parameters than HashPassword currently uses.
	NeedsRehash(hashedPassword string) bool

	// ValidatePasswordStrength rejects passwords that cannot be registered.
	ValidatePasswordStrength(password string) error
}
