package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/libshelf/catalog/internal/config"
)

var ErrInvalidPassword = errors.New("invalid password")

// EncodePassword prepares a password for storage under the given scheme.
// The plain scheme stores the literal string; bcrypt stores a hash.
func EncodePassword(scheme config.PasswordScheme, password string, cost int) (string, error) {
	if scheme == config.PasswordSchemeBcrypt {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
		if err != nil {
			return "", err
		}
		return string(hash), nil
	}
	return password, nil
}

// CheckPassword compares a submitted password with its stored form.
// Plain scheme is an exact string match.
func CheckPassword(scheme config.PasswordScheme, password, stored string) error {
	if scheme == config.PasswordSchemeBcrypt {
		err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
		if err != nil {
			if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
				return ErrInvalidPassword
			}
			return err
		}
		return nil
	}

	if password != stored {
		return ErrInvalidPassword
	}
	return nil
}
