// This base64 decoding implementation is all-or-nothing: any byte outside
// the web-safe alphabet, including whitespace and the standard '+' and '/'
// characters, fails the whole decode. Inputs that contain non-canonical
// tail bits that are non-zero are rejected as well. Callers that want to
// tolerate line breaks or other framing must strip them before decoding.

package base64w

import (
	"errors"
	"fmt"
	"slices"
	"unsafe"
)

var (
	// ErrInvalidEncoding is matched by every decode failure.
	ErrInvalidEncoding = errors.New("invalid base64w encoding")

	ErrInvalidBase64Length = fmt.Errorf("%w: invalid length", ErrInvalidEncoding)
	ErrInvalidBase64Char   = fmt.Errorf("%w: invalid character", ErrInvalidEncoding)
)

// DecodeCapacity returns the number of bytes a destination should have
// to decode n encoded bytes. It may be more than the number of bytes
// actually written, which is always returned explicitly by the decode
// functions.
//
// It returns -1 if n is negative.
func DecodeCapacity(n int) int {
	if n < 0 {
		return -1
	}

	return n/4*3 + 2
}

// DecodedLength returns the decoded byte length of n base64 data
// characters, not counting any pad markers.
//
// If the input is zero the output will be zero.
//
// If the input is invalid then -1 will be returned. A data length with
// a remainder of one when divided by four cannot carry a whole byte.
func DecodedLength(n int) int {
	if n < 0 {
		return -1
	}

	rem := n % 4
	if rem == 1 {
		return -1
	}

	return (n/4)*3 + (rem*3)/4
}

// decodedLen returns the number of data characters at srcPtr and the
// number of bytes they decode to.
//
// Under the padded policy up to two trailing pad markers are removed and
// must exactly complete the final group. Under the raw policy pad markers
// are left in place and later rejected as invalid characters.
func (e Encoding) decodedLen(srcPtr unsafe.Pointer, n int) (int, int, error) {
	var pads int
	if e.padded {
		for pads < 2 && pads < n && *(*byte)(unsafe.Add(srcPtr, n-1-pads)) == b64Pad {
			pads++
		}
	}

	dataLen := n - pads

	m := DecodedLength(dataLen)
	if m < 0 {
		return 0, 0, ErrInvalidBase64Length
	}

	if pads != 0 && n%4 != 0 {
		return 0, 0, ErrInvalidBase64Length
	}

	return dataLen, m, nil
}

// decode reads all n bytes at srcPtr before writing the corresponding
// output so dstPtr may equal srcPtr.
func decode(dstPtr, srcPtr unsafe.Pointer, n int) error {
	for range n / 4 {
		c0 := decodeTab[*(*byte)(srcPtr)]
		c1 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 1))]
		c2 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 2))]
		c3 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 3))]

		if (c0 | c1 | c2 | c3) == b64Invalid {
			return ErrInvalidBase64Char
		}

		*(*byte)(dstPtr) = (c0<<2 | c1>>4)
		*(*byte)(unsafe.Add(dstPtr, 1)) = (c1<<4 | c2>>2)
		*(*byte)(unsafe.Add(dstPtr, 2)) = (c2<<6 | c3)

		srcPtr = unsafe.Add(srcPtr, 4)
		dstPtr = unsafe.Add(dstPtr, 3)
	}

	// Tail.
	switch n % 4 {
	case 2:
		c0 := decodeTab[*(*byte)(srcPtr)]
		c1 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 1))]

		// last 4 LSBs of last decoded value must be zero for remainder=2
		if (c0|c1) == b64Invalid || (c1&0x0F) != 0 {
			return ErrInvalidBase64Char
		}

		*(*byte)(dstPtr) = (c0<<2 | c1>>4)
	case 3:
		c0 := decodeTab[*(*byte)(srcPtr)]
		c1 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 1))]
		c2 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 2))]

		// last 2 LSBs of last decoded value must be zero for remainder=3
		if (c0|c1|c2) == b64Invalid || (c2&0x03) != 0 {
			return ErrInvalidBase64Char
		}

		*(*byte)(dstPtr) = (c0<<2 | c1>>4)
		*(*byte)(unsafe.Add(dstPtr, 1)) = (c1<<4 | c2>>2)
	}

	return nil
}

// UnsafeDecode decodes the source slice into the destination slice and
// returns the number of bytes written.
//
// It should generally only be used when working with pre-validated
// sizes of data like in the case of data types with known byte-lengths.
//
// This function panics if the destination does not have enough space in
// the slice for the decoded form of src. A destination of
// DecodeCapacity(len(src)) bytes is always large enough. dst and src may
// be the same slice.
//
// When an error is returned the contents of dst are unspecified. It is
// the parent context's responsibility to clear the dst slice should that
// be the ideal rollback state.
func (e Encoding) UnsafeDecode(dst []byte, src []byte) (int, error) {
	n := len(src)
	if n == 0 {
		return 0, nil
	}

	srcPtr := unsafe.Pointer(&src[0])

	dataLen, m, err := e.decodedLen(srcPtr, n)
	if err != nil {
		return 0, err
	}

	// guard statements forcing panics rather than letting next call
	// lead to undefined behaviors

	if len(dst) < m {
		panic("base64w: decode destination too short")
	}

	if err := decode(unsafe.Pointer(&dst[0]), srcPtr, dataLen); err != nil {
		return 0, err
	}

	return m, nil
}

// Decode returns the decoded form of src if src is not empty. If src is
// empty nil is returned.
//
// If an error occurs during decoding then nil and the error are returned.
func (e Encoding) Decode(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}

	return e.appendDecode(nil, unsafe.Pointer(&src[0]), len(src))
}

// DecodeString is like Decode but takes its source as a string.
func (e Encoding) DecodeString(src string) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}

	return e.appendDecode(nil, unsafe.Pointer(unsafe.StringData(src)), len(src))
}

// AppendDecode returns the decoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
//
// If an error occurs during decoding then dst is returned with its
// original length along with the error. Bytes between len(dst) and
// cap(dst) may have been overwritten.
func (e Encoding) AppendDecode(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	return e.appendDecode(dst, unsafe.Pointer(&src[0]), len(src))
}

// AppendDecodeString is like AppendDecode but takes its source as a
// string.
func (e Encoding) AppendDecodeString(dst []byte, src string) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	return e.appendDecode(dst, unsafe.Pointer(unsafe.StringData(src)), len(src))
}

func (e Encoding) appendDecode(dst []byte, srcPtr unsafe.Pointer, srcLen int) ([]byte, error) {
	dataLen, n, err := e.decodedLen(srcPtr, srcLen)
	if err != nil {
		return dst, err
	}

	orig := len(dst)

	buf := slices.Grow(dst, n)
	buf = buf[:orig+n]

	if err := decode(unsafe.Pointer(&buf[orig]), srcPtr, dataLen); err != nil {
		return dst, err
	}

	return buf, nil
}

// DecodeInPlace replaces the contents of *buf with their decoded form,
// reusing the same backing array.
//
// On failure *buf is truncated to zero length and the error is returned.
func (e Encoding) DecodeInPlace(buf *[]byte) error {
	b := *buf

	n, err := e.UnsafeDecode(b, b)
	if err != nil {
		*buf = b[:0]
		return err
	}

	*buf = b[:n]

	return nil
}
