package keyparts

import (
	"fmt"
	"slices"
)

// Merge combines hex encoded key parts into the key they were split from by
// XORing them together. All parts must decode to the same number of bytes.
// The order of parts does not affect the result. Merge returns the key as
// uppercase hex.
func Merge(parts []string) (string, error) {
	if len(parts) == 0 {
		return "", ErrEmptyInput
	}

	byteParts := make([][]byte, len(parts))
	defer wipeAll(byteParts)

	for i, part := range parts {
		b, err := Decode(part)
		if err != nil {
			return "", fmt.Errorf("part %d: %w", i+1, err)
		}
		byteParts[i] = b
	}

	key, err := merge(byteParts)
	if err != nil {
		return "", err
	}
	defer wipe(key)

	return Encode(key), nil
}

func merge(parts [][]byte) ([]byte, error) {
	if len(parts) == 0 {
		return nil, ErrEmptyInput
	}

	var lengths []int
	for _, p := range parts {
		if !slices.Contains(lengths, len(p)) {
			lengths = append(lengths, len(p))
		}
	}
	if len(lengths) != 1 {
		slices.Sort(lengths)
		return nil, &LengthMismatchError{Lengths: lengths}
	}

	return fold(parts), nil
}

// verify that parts recombine to key
func verify(key []byte, parts [][]byte) error {
	merged, err := merge(parts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReconstructionFailure, err)
	}
	defer wipe(merged)

	if !slices.Equal(merged, key) {
		return ErrReconstructionFailure
	}

	return nil
}
