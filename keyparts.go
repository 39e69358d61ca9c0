// Package keyparts splits HSM key material into XOR parts and merges them
// back together.
//
// A key split into n parts can only be recovered with all n parts; any
// smaller subset is independent of the key. Keys and parts are exchanged as
// hex strings, the way they are entered into an HSM.
package keyparts

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
)

var defaultRandSrc = rand.Reader

// MaxParts is the largest number of parts a key can be split into.
const MaxParts = 1 << 16

// Mode selects how a key is split.
type Mode int

const (
	// Random pads every part with cryptographically secure random data.
	Random Mode = iota
	// Keypad builds parts from digits that are easy to type on a phone
	// keypad. Keypad parts are predictable and only suitable for test keys.
	Keypad
)

func (m Mode) String() string {
	switch m {
	case Random:
		return "random"
	case Keypad:
		return "keypad"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses the name of a split mode as returned by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "random":
		return Random, nil
	case "keypad":
		return Keypad, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
	}
}

// Splitter splits keys into XOR parts. A zero-value Splitter is ready to use
// and reads random data from crypto/rand.Reader.
type Splitter struct {
	Rand io.Reader // cryptographically secure random source
}

// Split splits a hex encoded key into n parts which XOR together to the key.
// n must be between 1 and MaxParts. With n == 1 the only part is the key
// itself. Parts are returned as uppercase hex and have the same length as
// the key. Every split is checked by merging the parts again before they are
// returned.
func (s *Splitter) Split(key string, n int, mode Mode) ([]string, error) {
	if n < 1 || n > MaxParts {
		return nil, fmt.Errorf("%w: got %d, want 1 to %d", ErrInvalidPartCount, n, MaxParts)
	}

	k, err := Decode(key)
	if err != nil {
		return nil, err
	}
	defer wipe(k)

	var parts [][]byte
	switch {
	case n == 1:
		return []string{Encode(k)}, nil
	case mode == Random:
		parts, err = splitRandom(s.random(), k, n)
	case mode == Keypad:
		parts, err = splitKeypad(k, n)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMode, mode)
	}
	if err != nil {
		return nil, err
	}
	defer wipeAll(parts)

	hexParts := make([]string, len(parts))
	for i := range parts {
		hexParts[i] = Encode(parts[i])
	}

	return hexParts, nil
}

// Default reads its random data from crypto/rand.Reader.
var Default = new(Splitter)

// Split a key using the default splitter.
func Split(key string, n int, mode Mode) ([]string, error) {
	return Default.Split(key, n, mode)
}

// random returns s.Rand, or crypto/rand.Reader if unset. It does not modify
// s so a Splitter may be shared between goroutines.
func (s *Splitter) random() io.Reader {
	if s.Rand == nil {
		return defaultRandSrc
	}
	return s.Rand
}
