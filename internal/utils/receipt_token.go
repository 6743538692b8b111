package utils

import (
	"github.com/transparify/transparify_backend/internal/core/domain"
)

// receiptTokenDigits is the suffix length of a receipt token. Sixteen random
// digits keep the legacy DON-<digits>/INKIND-<digits> shape while making
// collisions under concurrent creation negligible (wall-clock milliseconds,
// which the tokens previously encoded, are not enough entropy).
const receiptTokenDigits = 16

// GenerateReceiptToken produces the public receipt token for a new
// transaction: a type-namespaced prefix plus a cryptographically random
// numeric suffix. The token is the only identifier ever handed to
// third-party verifiers.
func GenerateReceiptToken(txnType domain.TransactionType) (string, error) {
	prefix := "DON-"
	if txnType == domain.InKind {
		prefix = "INKIND-"
	}
	suffix, err := GenerateSecureDigits(receiptTokenDigits)
	if err != nil {
		return "", err
	}
	return prefix + suffix, nil
}
