package password

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost bcrypt cost factor used for stored hashes
const DefaultCost = bcrypt.DefaultCost

// Hash hashes password using bcrypt
func Hash(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

// Verify compares password with hash
func Verify(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
