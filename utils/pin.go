package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GeneratePin generates a uniformly random 4-digit decimal PIN,
// left-zero-padded ("0000"-"9999").
func GeneratePin() string {
	num, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		// crypto/rand failing means the platform RNG is broken; nothing
		// sensible to fall back to.
		panic(fmt.Sprintf("pin generation: %v", err))
	}
	return fmt.Sprintf("%04d", num.Int64())
}

// IsValidPin reports whether s is exactly 4 decimal digits.
func IsValidPin(s string) bool {
	if len(s) != 4 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
