package codec

// Codec encodes integers to and from a variable-length byte representation.
// Unmarshal methods return the number of bytes consumed so values laid out
// back to back in one buffer can be decoded in sequence.
type Codec interface {
	MarshalUint(x uint64) ([]byte, error)
	UnmarshalUint(data []byte, v *uint64) (int, error)
	MarshalInt(x int64) ([]byte, error)
	UnmarshalInt(data []byte, v *int64) (int, error)
}
