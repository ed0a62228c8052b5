package signing

import (
	"encoding/hex"
	"fmt"
	"io"
)

// NonceBytes is the amount of randomness in each nonce (12 hex characters).
const NonceBytes = 6

// NewNonce reads NonceBytes from src and hex-encodes them.
func NewNonce(src io.Reader) (string, error) {
	buf := make([]byte, NonceBytes)
	if _, err := io.ReadFull(src, buf); err != nil {
		return "", fmt.Errorf("read nonce: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
