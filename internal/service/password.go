package service

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a bcrypt digest of the plaintext. The digest embeds
// the algorithm version and cost, so old digests stay verifiable after a
// cost bump.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain hashes to the stored digest.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
