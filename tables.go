// A web-safe base64 implementation.

package base64w

const (
	b64Invalid = 0xFF
	b64Pad     = '.'
)

//
// encode and decode tables use the web-safe alphabet where '+' and '/'
// are replaced by '-' and '_'
//

var encodeTab, decodeTab = func() ([64]byte, [256]byte) {
	const b64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

	var enc [64]byte
	var dec [256]byte

	for i := range dec {
		dec[i] = b64Invalid
	}

	for i := range b64Chars {
		i := byte(i)
		v := b64Chars[i]

		enc[i] = v
		dec[v] = i
	}

	return enc, dec
}()
