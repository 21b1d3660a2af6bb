package utils

import (
	"math/rand"

	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// RandomHex returns n random lowercase hex characters. Used for generated
// guest wallet addresses.
func RandomHex(n int) string {
	const digits = "0123456789abcdef"
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = digits[rand.Intn(len(digits))]
	}
	return string(buf)
}
