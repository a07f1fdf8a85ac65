package serializer

import (
	"fmt"

	"github.com/golang/snappy"
)

// snappySerializer implements the Serializer interface using snappy block
// compression.
type snappySerializer struct{}

func (s snappySerializer) Serialize(data []byte) ([]byte, error) {
	// passing a nil dst allocates a slice of the correct size
	return snappy.Encode(nil, data), nil
}

func (s snappySerializer) Deserialize(data []byte) ([]byte, error) {
	b, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("snappy decode failed: %w", err)
	}

	return b, nil
}
