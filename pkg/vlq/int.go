package vlq

// Signed values are reinterpreted as the unsigned integer of the same width
// (two's complement), so negative numbers always take the longest encoding.

func EncodeInt32(v int32) []byte {
	return Encode(uint32(v))
}

func DecodeInt32(buf []byte) (int32, int, error) {
	u, n, err := Decode[uint32](buf)
	if err != nil {
		return 0, 0, err
	}
	return int32(u), n, nil
}

func EncodeInt64(v int64) []byte {
	return Encode(uint64(v))
}

func DecodeInt64(buf []byte) (int64, int, error) {
	u, n, err := Decode[uint64](buf)
	if err != nil {
		return 0, 0, err
	}
	return int64(u), n, nil
}
