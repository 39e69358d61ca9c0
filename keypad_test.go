package keyparts

import (
	"bytes"
	"crypto/rand"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func Test_keypadTable(t *testing.T) {
	for v, pair := range keypadTable {
		if pair[0]^pair[1] != byte(v) {
			t.Errorf("%X: %X ^ %X != %X", v, pair[0], pair[1], v)
		}
	}

	if err := checkKeypadTable(&keypadTable); err != nil {
		t.Error(err)
	}
}

func Test_checkKeypadTable_invalid(t *testing.T) {
	bad := keypadTable
	bad[0x7] = [2]byte{0x1, 0x7}
	if err := checkKeypadTable(&bad); err == nil {
		t.Error("expected error for wrong pair")
	}

	bad = keypadTable
	bad[0x0] = [2]byte{0x16, 0x16}
	if err := checkKeypadTable(&bad); err == nil {
		t.Error("expected error for value out of range")
	}
}

func Test_keypadCandidates(t *testing.T) {
	for v := byte(0); v < 16; v++ {
		for _, expand := range []bool{false, true} {
			c := keypadCandidates(v, expand)
			if c[0]^c[1]^c[2] != v {
				t.Errorf("%X expand=%v: candidates %v do not fold to %X", v, expand, c, v)
			}
			if expand {
				// a second substitution never produces a 2 or 3
				for _, d := range c {
					if d == 0x2 || d == 0x3 {
						t.Errorf("%X: candidates %v contain %X", v, c, d)
					}
				}
			}
		}
	}
}

func Test_splitKeypad(t *testing.T) {
	tests := []struct {
		name string
		key  []byte
		n    int
		want [][]byte
	}{
		{
			name: "two parts",
			key:  []byte{0xab},
			n:    2,
			want: [][]byte{{0x83}, {0x28}},
		},
		{
			name: "two parts rotated",
			key:  []byte{0xab, 0xcd},
			n:    2,
			want: [][]byte{{0x83, 0x85}, {0x28, 0x48}},
		},
		{ // no second substitution, third slot is empty
			name: "three parts",
			key:  []byte{0x12},
			n:    3,
			want: [][]byte{{0x40}, {0x57}, {0x05}},
		},
		{
			name: "four parts",
			key:  []byte{0x00},
			n:    4,
			want: [][]byte{{0x60}, {0x76}, {0x17}, {0x01}},
		},
		{
			name: "five parts",
			key:  []byte{0xff},
			n:    5,
			want: [][]byte{{0x90}, {0x79}, {0x17}, {0x01}, {0x00}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := splitKeypad(tt.key, tt.n)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitKeypad() = %x, want %x", got, tt.want)
			}
		})
	}
}

func checkKeypadParts(t *testing.T, key []byte, n int) {
	t.Helper()

	parts, err := splitKeypad(key, n)
	if err != nil {
		t.Fatalf("%X n=%d: %v", key, n, err)
	}
	if got := fold(parts); !bytes.Equal(got, key) {
		t.Fatalf("%X n=%d: parts fold to %X", key, n, got)
	}
	for _, p := range parts {
		s := Encode(p)
		if strings.Contains(s, "22") || strings.Contains(s, "33") {
			t.Fatalf("%X n=%d: part %s repeats 2 or 3", key, n, s)
		}
	}
}

func Test_splitKeypad_noRepeats(t *testing.T) {
	// every pair of adjacent bytes at an even and an odd offset
	step := 1
	if testing.Short() {
		step = 251
	}

	key := make([]byte, 3)
	for v := 0; v < 1<<16; v += step {
		key[1], key[2] = byte(v>>8), byte(v)
		for n := 2; n <= 8; n++ {
			checkKeypadParts(t, key[1:], n)
			checkKeypadParts(t, key, n)
		}
	}
}

func Test_splitKeypad_randomKeys(t *testing.T) {
	for range 100 {
		key := make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			t.Fatal(err)
		}

		for n := 2; n <= 12; n++ {
			checkKeypadParts(t, key, n)
		}
	}
}

func Test_splitKeypad_forbiddenPattern(t *testing.T) {
	saved := keypadTable
	t.Cleanup(func() { keypadTable = saved })

	// still a valid pair, 2 ^ 2 == 0, but it puts "22" into a part
	keypadTable[0x0] = [2]byte{0x2, 0x2}
	if err := checkKeypadTable(&keypadTable); err != nil {
		t.Fatal(err)
	}

	parts, err := splitKeypad([]byte{0x00}, 2)
	if !errors.Is(err, ErrForbiddenPattern) {
		t.Fatalf("expected error %v, got %v", ErrForbiddenPattern, err)
	}
	if !IsInternal(err) {
		t.Errorf("expected %v to be internal", err)
	}
	if parts != nil {
		t.Errorf("expected no parts, got %X", parts)
	}
}
