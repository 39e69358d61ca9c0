package kcv

import (
	"crypto/aes"
	"strings"
	"testing"

	"github.com/aead/cmac"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbrc/keyparts"
)

func mustDecode(t *testing.T, s string) []byte {
	t.Helper()

	b, err := keyparts.Decode(s)
	require.NoError(t, err)
	return b
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name string
		key  string
		alg  Algorithm
		want string
	}{
		{
			name: "aes-128 zero key",
			key:  strings.Repeat("00", 16),
			alg:  AES,
			want: "66E94BD4EF8A2C3B884CFA59CA342B2E",
		},
		{
			name: "aes-256 zero key",
			key:  strings.Repeat("00", 32),
			alg:  AES,
			want: "DC95C078A2408989AD48A21492842087",
		},
		{
			name: "3des double length zero key",
			key:  strings.Repeat("00", 16),
			alg:  TDES,
			want: "8CA64DE9C1B123A7",
		},
		{
			name: "3des triple length zero key",
			key:  strings.Repeat("00", 24),
			alg:  TDES,
			want: "8CA64DE9C1B123A7",
		},
		{
			name: "aes-128 cmac zero key",
			key:  strings.Repeat("00", 16),
			alg:  AESCMAC,
			want: "763CBCDE81DF9131BF897712C088EDAD",
		},
		{
			name: "3des cmac test key",
			key:  "0123456789ABCDEFFEDCBA9876543210",
			alg:  TDESCMAC,
			want: "0A8245866490475B",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(mustDecode(t, tt.key), tt.alg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeHex_tdesTestKey(t *testing.T) {
	got, err := ComputeHex("0123456789ABCDEFFEDCBA9876543210", TDES)
	require.NoError(t, err)
	assert.Equal(t, "08D7B4FB629D0885", got)
}

func TestCompute_doubleLengthExpansion(t *testing.T) {
	double := mustDecode(t, "0123456789ABCDEFFEDCBA9876543210")
	triple := mustDecode(t, "0123456789ABCDEFFEDCBA98765432100123456789ABCDEF")

	for _, alg := range []Algorithm{TDES, TDESCMAC} {
		a, err := Compute(double, alg)
		require.NoError(t, err)
		b, err := Compute(triple, alg)
		require.NoError(t, err)
		assert.Equal(t, a, b, alg)
		assert.Len(t, a, 16, alg)
	}
}

func TestCompute_aesCMAC(t *testing.T) {
	for _, size := range []int{16, 24, 32} {
		key := make([]byte, size)
		for i := range key {
			key[i] = byte(i * 7)
		}

		got, err := Compute(key, AESCMAC)
		require.NoError(t, err)
		assert.Len(t, got, 32)

		// both CMAC implementations agree for AES
		b, err := aes.NewCipher(key)
		require.NoError(t, err)
		want, err := cmac.Sum(make([]byte, aes.BlockSize), b, aes.BlockSize)
		require.NoError(t, err)
		assert.Equal(t, keyparts.Encode(want), got)

		plain, err := Compute(key, AES)
		require.NoError(t, err)
		assert.NotEqual(t, plain, got)
	}
}

func TestCompute_errors(t *testing.T) {
	_, err := Compute(make([]byte, 16), Algorithm("des"))
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)

	_, err = Compute(make([]byte, 8), TDES)
	assert.ErrorIs(t, err, ErrInvalidKeyLength)

	_, err = Compute(make([]byte, 32), TDESCMAC)
	assert.ErrorIs(t, err, ErrInvalidKeyLength)

	_, err = Compute(make([]byte, 20), AES)
	assert.ErrorIs(t, err, ErrInvalidKeyLength)

	_, err = Compute(make([]byte, 15), AESCMAC)
	assert.ErrorIs(t, err, ErrInvalidKeyLength)

	_, err = ComputeHex("0011223", AES)
	assert.ErrorIs(t, err, keyparts.ErrMalformedInput)
}

func TestCompute_deterministic(t *testing.T) {
	key := mustDecode(t, "00112233445566778899AABBCCDDEEFF")

	for _, alg := range Algorithms() {
		a, err := Compute(key, alg)
		require.NoError(t, err)
		b, err := Compute(key, alg)
		require.NoError(t, err)
		assert.Equal(t, a, b, alg)
		assert.Equal(t, strings.ToUpper(a), a, alg)
	}
}

func TestParseAlgorithm(t *testing.T) {
	assert.Equal(t, []Algorithm{TDES, TDESCMAC, AES, AESCMAC}, Algorithms())

	for _, alg := range Algorithms() {
		got, err := ParseAlgorithm(strings.ToUpper(string(alg)))
		require.NoError(t, err)
		assert.Equal(t, alg, got)
		assert.NotEmpty(t, alg.Description())
	}

	_, err := ParseAlgorithm("des-cbc")
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}
