package serialization

import (
	"fmt"

	"github.com/eigerco/vlq/pkg/serialization/codec"
)

// Serializer provides methods to encode and decode using a specified codec.
type Serializer struct {
	codec codec.Codec
}

// NewSerializer initializes a new Serializer with the given codec.
func NewSerializer(c codec.Codec) *Serializer {
	return &Serializer{codec: c}
}

// EncodeUint serializes a single unsigned value.
func (s *Serializer) EncodeUint(v uint64) ([]byte, error) {
	return s.codec.MarshalUint(v)
}

// DecodeUint deserializes a single unsigned value from the start of data and
// returns the number of bytes it occupied.
func (s *Serializer) DecodeUint(data []byte, v *uint64) (int, error) {
	return s.codec.UnmarshalUint(data, v)
}

func (s *Serializer) EncodeInt(v int64) ([]byte, error) {
	return s.codec.MarshalInt(v)
}

func (s *Serializer) DecodeInt(data []byte, v *int64) (int, error) {
	return s.codec.UnmarshalInt(data, v)
}

// EncodeAll serializes values back to back into a single buffer.
func (s *Serializer) EncodeAll(values []uint64) ([]byte, error) {
	out := make([]byte, 0, len(values))
	for i, v := range values {
		b, err := s.codec.MarshalUint(v)
		if err != nil {
			return nil, fmt.Errorf("encoding value %d: %w", i, err)
		}
		out = append(out, b...)
	}
	return out, nil
}

// DecodeAll deserializes every value in data, which must contain whole
// encodings only.
func (s *Serializer) DecodeAll(data []byte) ([]uint64, error) {
	var values []uint64
	for offset := 0; offset < len(data); {
		var v uint64
		n, err := s.codec.UnmarshalUint(data[offset:], &v)
		if err != nil {
			return nil, fmt.Errorf("decoding value at offset %d: %w", offset, err)
		}
		values = append(values, v)
		offset += n
	}
	return values, nil
}

// DecodeAllInt is the signed counterpart of DecodeAll.
func (s *Serializer) DecodeAllInt(data []byte) ([]int64, error) {
	var values []int64
	for offset := 0; offset < len(data); {
		var v int64
		n, err := s.codec.UnmarshalInt(data[offset:], &v)
		if err != nil {
			return nil, fmt.Errorf("decoding value at offset %d: %w", offset, err)
		}
		values = append(values, v)
		offset += n
	}
	return values, nil
}
