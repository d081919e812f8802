package user

// PasswordHasher abstracts password hashing so the aggregate stays free of
// crypto imports.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
