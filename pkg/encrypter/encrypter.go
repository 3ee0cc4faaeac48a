package encrypter

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Encrypter hashes and checks user passwords.
type Encrypter interface {
	HashPassword(password string) (string, error)
	CheckPassword(password, hash string) bool
}

type bcryptEncrypter struct {
	cost int
}

// New returns a bcrypt Encrypter. A cost outside bcrypt's range falls back to bcrypt.DefaultCost.
func New(cost int) Encrypter {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return bcryptEncrypter{cost: cost}
}

func (e bcryptEncrypter) HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), e.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (e bcryptEncrypter) CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
