// Package kcv computes key check values: short fingerprints used to confirm
// that a key or key part was entered correctly without revealing it.
package kcv

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/aead/cmac"
	aescmac "github.com/jacobsa/crypto/cmac"

	"github.com/wbrc/keyparts"
)

var (
	ErrUnsupportedAlgorithm = errors.New("unsupported KCV algorithm")
	ErrInvalidKeyLength     = errors.New("invalid key length")
)

// Algorithm names a check value algorithm.
type Algorithm string

const (
	TDES     Algorithm = "3des"      // Triple DES, encrypted zero block
	AES      Algorithm = "aes"       // AES, encrypted zero block
	TDESCMAC Algorithm = "3des-cmac" // Triple DES CMAC of a zero block
	AESCMAC  Algorithm = "aes-cmac"  // AES CMAC of a zero block
)

type algorithm struct {
	description string
	keySizes    []int
	cipher      func(key []byte) (cipher.Block, error)
	mac         func(key []byte, b cipher.Block, msg []byte) ([]byte, error)
}

var algorithms = map[Algorithm]algorithm{
	TDES: {
		description: "Triple DES, first block of CBC with a zero IV",
		keySizes:    []int{16, 24},
		cipher:      newTripleDES,
	},
	AES: {
		description: "AES, first block of CBC with a zero IV",
		keySizes:    []int{16, 24, 32},
		cipher:      aes.NewCipher,
	},
	TDESCMAC: {
		description: "Triple DES CMAC",
		keySizes:    []int{16, 24},
		cipher:      newTripleDES,
		mac: func(_ []byte, b cipher.Block, msg []byte) ([]byte, error) {
			return cmac.Sum(msg, b, b.BlockSize())
		},
	},
	AESCMAC: {
		description: "AES CMAC",
		keySizes:    []int{16, 24, 32},
		cipher:      aes.NewCipher,
		mac: func(key []byte, _ cipher.Block, msg []byte) ([]byte, error) {
			h, err := aescmac.New(key)
			if err != nil {
				return nil, err
			}

			// never fails
			h.Write(msg)
			return h.Sum(nil), nil
		},
	},
}

// double length keys are used as K1 K2 K1
func newTripleDES(key []byte) (cipher.Block, error) {
	if len(key) == 16 {
		key = slices.Concat(key, key[:8])
	}

	return des.NewTripleDESCipher(key)
}

// Algorithms returns the supported algorithms in name order.
func Algorithms() []Algorithm {
	algs := make([]Algorithm, 0, len(algorithms))
	for a := range algorithms {
		algs = append(algs, a)
	}
	slices.Sort(algs)

	return algs
}

// ParseAlgorithm looks up an algorithm by name, ignoring case.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(s))
	if _, ok := algorithms[a]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}

	return a, nil
}

// Description returns a human readable description of the algorithm.
func (a Algorithm) Description() string {
	return algorithms[a].description
}

// Compute returns the full check value of key as uppercase hex: one block
// of zeros either encrypted under the key or MACed with it. Callers usually
// display only the first three bytes.
func Compute(key []byte, alg Algorithm) (string, error) {
	a, ok := algorithms[alg]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, string(alg))
	}

	if !slices.Contains(a.keySizes, len(key)) {
		return "", fmt.Errorf("%w: %d bytes for %s", ErrInvalidKeyLength, len(key), alg)
	}

	b, err := a.cipher(key)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	zero := make([]byte, b.BlockSize())
	if a.mac != nil {
		sum, err := a.mac(key, b, zero)
		if err != nil {
			return "", fmt.Errorf("failed to compute MAC: %w", err)
		}
		return keyparts.Encode(sum), nil
	}

	// CBC with a zero IV over a single block is a single block encryption
	out := make([]byte, b.BlockSize())
	cipher.NewCBCEncrypter(b, make([]byte, b.BlockSize())).CryptBlocks(out, zero)

	return keyparts.Encode(out), nil
}

// ComputeHex is Compute for a hex encoded key.
func ComputeHex(key string, alg Algorithm) (string, error) {
	k, err := keyparts.Decode(key)
	if err != nil {
		return "", err
	}

	return Compute(k, alg)
}
