package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

type HashServiceInterface interface {
	HashKey(key string) (string, error)
	CompareKey(hashedKey, key string) bool
}

// HashService hashes API keys so only their bcrypt hash lives in config.
type HashService struct{}

func (b *HashService) HashKey(key string) (string, error) {
	if key == "" {
		return "", errors.New("key cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (b *HashService) CompareKey(hashedKey, key string) bool {
	if hashedKey == "" || key == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashedKey), []byte(key))
	return err == nil
}
