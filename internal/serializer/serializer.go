package serializer

import (
	"fmt"
	"strings"
)

// Serializer transforms a whole payload and back.
//
// Implementations are stateless and safe for concurrent use.
type Serializer interface {
	Serialize([]byte) ([]byte, error)
	Deserialize([]byte) ([]byte, error)
}

// Get returns a Serializer instance by name.
//
// An unknown name is an error rather than a nil Serializer so the caller
// has to handle the missing codec explicitly.
func Get(name string) (Serializer, error) {
	switch strings.ToLower(name) {
	case "base64w":
		return base64wSerializer{raw: false}, nil
	case "base64w-raw":
		return base64wSerializer{raw: true}, nil
	case "gzip":
		return gzipSerializer{}, nil
	case "snappy":
		return snappySerializer{}, nil
	default:
		return nil, fmt.Errorf("unknown serializer: %q", name)
	}
}

// Names lists every name Get accepts.
func Names() []string {
	return []string{"base64w", "base64w-raw", "gzip", "snappy"}
}

// Chain composes serializers. Serialize runs them in order and
// Deserialize runs them in reverse order.
type Chain []Serializer

// Lookup resolves each name with Get and returns them as a Chain.
func Lookup(names ...string) (Chain, error) {
	c := make(Chain, 0, len(names))

	for _, name := range names {
		s, err := Get(name)
		if err != nil {
			return nil, err
		}

		c = append(c, s)
	}

	return c, nil
}

func (c Chain) Serialize(data []byte) ([]byte, error) {
	for i, s := range c {
		var err error
		if data, err = s.Serialize(data); err != nil {
			return nil, fmt.Errorf("serialize stage %d: %w", i, err)
		}
	}

	return data, nil
}

func (c Chain) Deserialize(data []byte) ([]byte, error) {
	for i := len(c) - 1; i >= 0; i-- {
		var err error
		if data, err = c[i].Deserialize(data); err != nil {
			return nil, fmt.Errorf("deserialize stage %d: %w", i, err)
		}
	}

	return data, nil
}
