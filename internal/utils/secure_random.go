package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
)

// GenerateSecureRandomString generates a cryptographically secure random string of the specified byte length,
// then hex encodes it. For example, lengthInBytes=32 will result in a 64-character hex string.
func GenerateSecureRandomString(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateSecureDigits generates a cryptographically secure string of n
// decimal digits. The first digit is never zero so the length is stable.
func GenerateSecureDigits(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("digit count must be positive")
	}
	digits := make([]byte, n)
	for i := range digits {
		max := big.NewInt(10)
		if i == 0 {
			max = big.NewInt(9)
		}
		v, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random digit: %w", err)
		}
		if i == 0 {
			digits[i] = byte('1' + v.Int64())
		} else {
			digits[i] = byte('0' + v.Int64())
		}
	}
	return string(digits), nil
}
