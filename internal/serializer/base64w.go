package serializer

import (
	"github.com/josephcopenhaver/base64w"
)

// base64wSerializer implements the Serializer interface using web-safe
// base64, padded unless raw is set.
type base64wSerializer struct {
	raw bool
}

func (s base64wSerializer) encoding() base64w.Encoding {
	if s.raw {
		return base64w.Raw
	}

	return base64w.Padded
}

func (s base64wSerializer) Serialize(data []byte) ([]byte, error) {
	return s.encoding().AppendEncode([]byte{}, data), nil
}

func (s base64wSerializer) Deserialize(data []byte) ([]byte, error) {
	return s.encoding().AppendDecode([]byte{}, data)
}
