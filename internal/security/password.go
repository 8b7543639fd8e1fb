package security

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor the platform has always used; raising it
// only affects newly stored hashes since the cost is embedded in the digest.
const bcryptCost = 10

// HashPassword produces a salted bcrypt digest of plain. A fresh salt is
// generated on every call, so two hashes of the same input never compare
// equal as strings; use CheckPassword for verification.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain hashes to digest under the salt
// embedded in digest. Malformed digests simply report false.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
