package base64w

import (
	"slices"
	"unsafe"
)

// EncodeCapacity returns the number of bytes a destination must have
// to hold the encoded form of n source bytes under any padding policy.
// It is always ceil(n/3)*4. It returns -1 if n is negative or the
// result would overflow an int.
func EncodeCapacity(n int) int {
	return EncodedLength(n)
}

// EncodedLength returns the exact length of the padded encoded form of
// n bytes. It returns -1 if the input byte length cannot be encoded
// properly.
//
// Use it to validate an externally supplied encoded length before
// decoding into a value of known byte-length.
func EncodedLength(n int) int {
	return Padded.EncodedLen(n)
}

// RawEncodedLength returns the exact length of the unpadded encoded form
// of n bytes. It returns -1 if the input byte length cannot be encoded
// properly.
func RawEncodedLength(n int) int {
	return Raw.EncodedLen(n)
}

// EncodedLen returns the exact length of the encoded form of n bytes
// under e's padding policy or -1 if n cannot be encoded.
//
// If the input is zero, zero will be returned.
func (e Encoding) EncodedLen(n int) int {
	if n < 0 {
		return -1
	}

	result := encodedLenExpression(n, e.padded)
	if result <= n && n != 0 {
		return -1
	}

	return result
}

func encodedLenExpression(n int, padded bool) int {
	result := (n / 3) * 4

	if rem := n % 3; rem != 0 {
		if padded {
			result += 4
		} else {
			result += rem + 1
		}
	}

	return result
}

func encodedLen(n int, padded bool) int {
	result := encodedLenExpression(n, padded)
	if result <= n {
		panic("base64w: invalid encode source length")
	}

	return result
}

// encode writes the encoded form of the n bytes at srcPtr to dstPtr and
// returns the number of bytes written.
func encode(dstPtr, srcPtr unsafe.Pointer, n int, padded bool) int {
	written := (n / 3) * 4

	for range n / 3 {
		b0 := *(*byte)(srcPtr)
		b1 := *(*byte)(unsafe.Add(srcPtr, 1))
		b2 := *(*byte)(unsafe.Add(srcPtr, 2))

		*(*byte)(dstPtr) = encodeTab[b0>>2]
		*(*byte)(unsafe.Add(dstPtr, 1)) = encodeTab[((b0<<4)|(b1>>4))&63]
		*(*byte)(unsafe.Add(dstPtr, 2)) = encodeTab[((b1<<2)|(b2>>6))&63]
		*(*byte)(unsafe.Add(dstPtr, 3)) = encodeTab[b2&63]

		srcPtr = unsafe.Add(srcPtr, 3)
		dstPtr = unsafe.Add(dstPtr, 4)
	}

	// Tail.
	switch n % 3 {
	case 1:
		b0 := *(*byte)(srcPtr)

		*(*byte)(dstPtr) = encodeTab[b0>>2]
		*(*byte)(unsafe.Add(dstPtr, 1)) = encodeTab[(b0<<4)&63]
		written += 2

		if padded {
			*(*byte)(unsafe.Add(dstPtr, 2)) = b64Pad
			*(*byte)(unsafe.Add(dstPtr, 3)) = b64Pad
			written += 2
		}
	case 2:
		b0 := *(*byte)(srcPtr)
		b1 := *(*byte)(unsafe.Add(srcPtr, 1))

		*(*byte)(dstPtr) = encodeTab[b0>>2]
		*(*byte)(unsafe.Add(dstPtr, 1)) = encodeTab[((b0<<4)|(b1>>4))&63]
		*(*byte)(unsafe.Add(dstPtr, 2)) = encodeTab[(b1<<2)&63]
		written += 3

		if padded {
			*(*byte)(unsafe.Add(dstPtr, 3)) = b64Pad
			written++
		}
	}

	return written
}

// UnsafeEncode fills dst with the encoded form of src and returns the
// number of bytes written.
//
// It should generally only be used when working with pre-validated
// sizes of data like in the case of data types with known byte-lengths.
//
// This function panics if the destination does not have enough space in
// the slice for the encoded form of src. A destination of
// EncodeCapacity(len(src)) bytes is always large enough.
//
// invariants:
//
// - len(dst) >= e.EncodedLen(len(src))
func (e Encoding) UnsafeEncode(dst []byte, src []byte) int {
	n := len(src)
	if n == 0 {
		return 0
	}

	// guard statements forcing panics rather than letting next call
	// lead to undefined behaviors

	if m := encodedLen(n, e.padded); len(dst) < m {
		panic("base64w: encode destination too short")
	}

	return encode(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), n, e.padded)
}

// Encode returns nil if src is empty, otherwise it returns the
// encoded form of src.
func (e Encoding) Encode(src []byte) []byte {
	n := len(src)
	if n == 0 {
		return nil
	}

	n = encodedLen(n, e.padded)
	dst := make([]byte, n)

	encode(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), len(src), e.padded)

	return dst
}

// EncodeString returns "" if src is empty, otherwise it returns the
// encoded form of src.
func (e Encoding) EncodeString(src string) string {
	n := len(src)
	if n == 0 {
		return ""
	}

	n = encodedLen(n, e.padded)
	dst := make([]byte, n)

	encode(unsafe.Pointer(&dst[0]), unsafe.Pointer(unsafe.StringData(src)), len(src), e.padded)

	return unsafe.String(&dst[0], n)
}

// AppendEncode returns the encoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
func (e Encoding) AppendEncode(dst, src []byte) []byte {
	if len(src) == 0 {
		return dst
	}

	return e.appendEncode(dst, unsafe.Pointer(&src[0]), len(src))
}

// AppendEncodeString returns the encoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
func (e Encoding) AppendEncodeString(dst []byte, src string) []byte {
	if len(src) == 0 {
		return dst
	}

	return e.appendEncode(dst, unsafe.Pointer(unsafe.StringData(src)), len(src))
}

func (e Encoding) appendEncode(dst []byte, srcPtr unsafe.Pointer, srcLen int) []byte {
	n := encodedLen(srcLen, e.padded)
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	encode(unsafe.Pointer(&dst[orig]), srcPtr, srcLen, e.padded)

	return dst
}

// EncodeInPlace replaces the contents of *buf with their encoded form.
//
// The encoded form is always longer than the source so a new backing
// array is allocated. An empty buffer is left as-is.
func (e Encoding) EncodeInPlace(buf *[]byte) {
	if len(*buf) == 0 {
		return
	}

	*buf = e.Encode(*buf)
}
