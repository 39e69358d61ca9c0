package keyparts

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Decode parses a hex encoded key or key part. Both upper and lower case
// digits are accepted. The string must be non-empty and of even length.
func Decode(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: empty string", ErrMalformedInput)
	}
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", ErrMalformedInput, len(s))
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	return b, nil
}

// Encode returns the uppercase hex encoding of b without separators.
func Encode(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
