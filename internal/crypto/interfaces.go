package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns admin secrets into salted one-way hashes and checks
// candidate secrets against them.
//
// Implementations must compare in constant time and must never return the
// plaintext or anything derived from it other than the hash itself.
type PasswordHasher interface {
	// Hash returns a salted hash of secret suitable for storage.
	Hash(secret string) (string, error)

	// Compare reports whether secret matches hash. A mismatch returns
	// [ErrMismatchedPassword]; a malformed hash returns another error.
	Compare(hash, secret string) error
}
