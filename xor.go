package keyparts

// set z to a ^ b; all three must have the same length
func xorInto(z, a, b []byte) {
	for i := 0; i < len(a); i++ {
		z[i] = a[i] ^ b[i]
	}
}

// returns the positional XOR of all parts, folded in order
func fold(parts [][]byte) []byte {
	z := make([]byte, len(parts[0]))
	for _, p := range parts {
		xorInto(z, z, p)
	}

	return z
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func wipeAll(parts [][]byte) {
	for _, p := range parts {
		wipe(p)
	}
}
