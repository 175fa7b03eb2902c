package vlq

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEncodeDecodeBig(t *testing.T) {
	huge, ok := new(big.Int).SetString("340282366920938463463374607431768211455", 10) // 2^128-1
	require.True(t, ok)

	for _, v := range []*big.Int{
		big.NewInt(0),
		big.NewInt(300),
		new(big.Int).SetUint64(math.MaxUint64),
		huge,
	} {
		encoded, err := EncodeBig(v)
		require.NoError(t, err)

		decoded, n, err := DecodeBig(encoded)
		require.NoError(t, err)
		assert.Equal(t, 0, v.Cmp(decoded), "want %s got %s", v, decoded)
		assert.Equal(t, len(encoded), n)
	}

	encoded, err := EncodeBig(huge)
	require.NoError(t, err)
	assert.Len(t, encoded, 19)
}

func TestEncodeBigMatchesEncode(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Uint64().Draw(t, "v")
		encoded, err := EncodeBig(new(big.Int).SetUint64(v))
		require.NoError(t, err)
		require.Equal(t, Encode(v), encoded)
	})
}

func TestBigErrors(t *testing.T) {
	_, err := EncodeBig(big.NewInt(-1))
	assert.ErrorIs(t, err, ErrNegative)

	_, _, err = DecodeBig([]byte{0xff, 0xff})
	assert.ErrorIs(t, err, ErrTruncatedInput)
}
