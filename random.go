package keyparts

import (
	"fmt"
	"io"
)

// splitRandom splits key into n >= 2 parts padded with random data so that
// any n-1 of them are independent of the key.
func splitRandom(random io.Reader, key []byte, n int) ([][]byte, error) {
	pad := make([]byte, n*len(key))
	defer wipe(pad)

	if _, err := io.ReadFull(random, pad); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}

	pads := make([][]byte, n)
	for i := range pads {
		pads[i] = pad[i*len(key) : (i+1)*len(key)]
	}

	total := fold(pads)
	defer wipe(total)

	// each part is the key XOR the random data of every other part
	base := make([]byte, len(key))
	defer wipe(base)
	xorInto(base, key, total)

	parts := make([][]byte, n)
	for i := range parts {
		parts[i] = make([]byte, len(key))
		xorInto(parts[i], base, pads[i])
	}

	// The parts above fold to (n*key) ^ (n*total) ^ total, where n*x is x
	// XORed with itself n times: x for odd n, zero for even n. For odd n this
	// is key ^ total ^ total = key. For even n it is total, so part 0 is
	// replaced with pads[0]: the remaining n-1 (odd) parts fold to
	// key ^ total ^ total ^ pads[0], and adding pads[0] leaves key.
	if n%2 == 0 {
		copy(parts[0], pads[0])
	}

	if err := verify(key, parts); err != nil {
		wipeAll(parts)
		return nil, err
	}

	return parts, nil
}
