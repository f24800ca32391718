// Package id provides cryptographically random identifier and secret
// generation helpers.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Base62 alphabet: 0-9, A-Z, a-z
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// DefaultLength is the default length for generated random strings.
const DefaultLength = 12

// Generate creates a random Base62 string of the given length from a
// cryptographically secure source. Used for temporary admin passwords.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// MustGenerate creates a random string and panics on error. Only for use
// where the entropy source is known to be available.
func MustGenerate(length int) string {
	s, err := Generate(length)
	if err != nil {
		panic(err)
	}
	return s
}
