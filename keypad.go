package keyparts

import (
	"fmt"
	"strings"
)

// keypadTable maps every nibble v to a pair {a, b} with a^b == v. The pairs
// avoid 2 and 3 (ABC and DEF on a phone keypad) everywhere except the second
// digit of A and B, which cannot be built from two other digits.
var keypadTable = [16][2]byte{
	0x0: {0x6, 0x6},
	0x1: {0x4, 0x5},
	0x2: {0x7, 0x5},
	0x3: {0x7, 0x4},

	0x4: {0x1, 0x5},
	0x5: {0x1, 0x4},
	0x6: {0x7, 0x1},
	0x7: {0x1, 0x6},

	0x8: {0x1, 0x9},
	0x9: {0x1, 0x8},
	0xA: {0x8, 0x2},
	0xB: {0x8, 0x3},

	0xC: {0x8, 0x4},
	0xD: {0x8, 0x5},
	0xE: {0x9, 0x7},
	0xF: {0x9, 0x6},
}

// substrings that must never appear in the hex of a keypad part
var keypadForbidden = []string{"22", "33"}

func init() {
	if err := checkKeypadTable(&keypadTable); err != nil {
		panic(err)
	}
}

func checkKeypadTable(t *[16][2]byte) error {
	for v, pair := range t {
		if pair[0] > 0xF || pair[1] > 0xF {
			return fmt.Errorf("keypad table entry %X: %X, %X is not a pair of nibbles", v, pair[0], pair[1])
		}
		if pair[0]^pair[1] != byte(v) {
			return fmt.Errorf("keypad table entry %X: %X ^ %X != %X", v, pair[0], pair[1], v)
		}
	}

	return nil
}

// candidates for a single nibble: two table digits, or three when the second
// is substituted once more. With two digits the third slot is zero.
func keypadCandidates(v byte, expand bool) [3]byte {
	pair := keypadTable[v]
	if !expand {
		return [3]byte{pair[0], pair[1], 0}
	}

	sub := keypadTable[pair[1]]
	return [3]byte{pair[0], sub[0], sub[1]}
}

// splitKeypad splits key into n >= 2 parts made of digits that are easy to
// enter on a phone keypad. The parts are not random: this is for test keys
// only.
func splitKeypad(key []byte, n int) ([][]byte, error) {
	parts := make([][]byte, n)
	for i := range parts {
		parts[i] = make([]byte, len(key))
	}

	// Two parts can hold the pair of table digits directly. Beyond three
	// parts the second digit is split once more so that every part gets
	// some of the key. This is a single extra lookup, never more.
	expand := n > 3
	m := min(3, n)

	for i, b := range key {
		h := keypadCandidates(b>>4, expand)
		l := keypadCandidates(b&0x0F, expand)

		// rotate the starting part by m for every byte so consecutive bytes
		// spread over all n parts
		for j := 0; j < m; j++ {
			parts[(m*i+j)%n][i] |= h[j] << 4
			parts[(m*i+j+1)%n][i] |= l[j]
		}
	}

	if err := verify(key, parts); err != nil {
		wipeAll(parts)
		return nil, err
	}

	for i, p := range parts {
		s := Encode(p)
		for _, f := range keypadForbidden {
			if strings.Contains(s, f) {
				wipeAll(parts)
				return nil, fmt.Errorf("%w: part %d contains %q", ErrForbiddenPattern, i+1, f)
			}
		}
	}

	return parts, nil
}
