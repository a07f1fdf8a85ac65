// Package base64w implements a web-safe variant of base64.
//
// The standard alphabet characters '+', '/' and '=' are replaced by '-',
// '_' and '.' so encoded text can appear unescaped in URLs and file
// names. The package level functions use the padded canonical form.
// Raw omits pad markers entirely.
//
// All functions are safe for concurrent use.
package base64w

// Encoding selects a padding policy. The zero value is Raw.
type Encoding struct {
	padded bool
}

var (
	// Padded fills the final group with '.' up to a multiple of four
	// characters. Decoding accepts text with canonical padding or with
	// none at all.
	Padded = Encoding{padded: true}

	// Raw never emits pad markers and rejects them when decoding.
	Raw = Encoding{}
)

// Padded reports whether e emits pad markers.
func (e Encoding) Padded() bool {
	return e.padded
}

// UnsafeEncode calls Padded.UnsafeEncode.
func UnsafeEncode(dst []byte, src []byte) int {
	return Padded.UnsafeEncode(dst, src)
}

// Encode calls Padded.Encode.
func Encode(src []byte) []byte {
	return Padded.Encode(src)
}

// EncodeString calls Padded.EncodeString.
func EncodeString(src string) string {
	return Padded.EncodeString(src)
}

// AppendEncode calls Padded.AppendEncode.
func AppendEncode(dst, src []byte) []byte {
	return Padded.AppendEncode(dst, src)
}

// AppendEncodeString calls Padded.AppendEncodeString.
func AppendEncodeString(dst []byte, src string) []byte {
	return Padded.AppendEncodeString(dst, src)
}

// EncodeInPlace calls Padded.EncodeInPlace.
func EncodeInPlace(buf *[]byte) {
	Padded.EncodeInPlace(buf)
}

// UnsafeDecode calls Padded.UnsafeDecode.
func UnsafeDecode(dst []byte, src []byte) (int, error) {
	return Padded.UnsafeDecode(dst, src)
}

// Decode calls Padded.Decode.
func Decode(src []byte) ([]byte, error) {
	return Padded.Decode(src)
}

// DecodeString calls Padded.DecodeString.
func DecodeString(src string) ([]byte, error) {
	return Padded.DecodeString(src)
}

// AppendDecode calls Padded.AppendDecode.
func AppendDecode(dst, src []byte) ([]byte, error) {
	return Padded.AppendDecode(dst, src)
}

// AppendDecodeString calls Padded.AppendDecodeString.
func AppendDecodeString(dst []byte, src string) ([]byte, error) {
	return Padded.AppendDecodeString(dst, src)
}

// DecodeInPlace calls Padded.DecodeInPlace.
func DecodeInPlace(buf *[]byte) error {
	return Padded.DecodeInPlace(buf)
}
