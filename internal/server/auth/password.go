package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when the user does not exist, so a lookup
// miss costs the same as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("langgpt-dummy-password"), bcrypt.DefaultCost)

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash. Malformed hashes
// count as a mismatch.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// BurnPasswordCheck performs a full bcrypt comparison whose result is
// discarded.
func BurnPasswordCheck(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

// IsPasswordTooLong reports whether HashPassword failed because the input
// exceeds bcrypt's 72 byte limit.
func IsPasswordTooLong(err error) bool {
	return errors.Is(err, bcrypt.ErrPasswordTooLong)
}
