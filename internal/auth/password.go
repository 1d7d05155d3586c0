package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrBadCredential = errors.New("invalid credentials")

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword compares a login attempt against the stored hash. Every
// failure mode collapses to ErrBadCredential so callers cannot leak whether
// a credential exists.
func VerifyPassword(hash, password string) error {
	if hash == "" || password == "" {
		return ErrBadCredential
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrBadCredential
	}
	return nil
}
