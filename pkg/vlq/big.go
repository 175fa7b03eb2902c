package vlq

import (
	"math/big"
)

// EncodeBig encodes a non-negative integer of any size.
func EncodeBig(v *big.Int) ([]byte, error) {
	if v.Sign() < 0 {
		return nil, ErrNegative
	}

	groups := (v.BitLen() + groupBits - 1) / groupBits
	if groups == 0 {
		return []byte{0}, nil
	}

	out := make([]byte, groups)
	for i := 0; i < groups; i++ {
		var g byte
		for j := 0; j < groupBits; j++ {
			g |= byte(v.Bit(i*groupBits+j)) << j
		}
		if i > 0 {
			g |= continuationBit
		}
		out[groups-1-i] = g
	}
	return out, nil
}

// DecodeBig decodes a value of any size from the start of buf. Unlike Decode
// it never fails with ErrOverflow.
func DecodeBig(buf []byte) (*big.Int, int, error) {
	v := new(big.Int)
	group := new(big.Int)
	for i, b := range buf {
		v.Lsh(v, groupBits)
		v.Or(v, group.SetUint64(uint64(b&groupMask)))
		if b&continuationBit == 0 {
			return v, i + 1, nil
		}
	}
	return nil, 0, ErrTruncatedInput
}
