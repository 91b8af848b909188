// Package padding implements the PKCS#7 style codec used around the block
// ciphers. Pad always appends between 1 and blockSize bytes, so input that
// is already block aligned grows by one full block.
package padding

import "errors"

// ErrMalformed is returned when the trailing padding bytes are missing or
// inconsistent. After decryption it is the usual sign of a wrong key or a
// corrupted ciphertext.
var ErrMalformed = errors.New("padding: malformed padding")

// Pad returns a new buffer holding data followed by n bytes of value n,
// where n = blockSize - len(data) mod blockSize. The result is always a
// multiple of blockSize long and always longer than data.
func Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+n)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

// Unpad strips the bytes appended by Pad. It fails when the final byte is
// not a plausible pad length or any trailing byte disagrees with it.
func Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrMalformed
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, ErrMalformed
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrMalformed
		}
	}
	return data[:len(data)-n], nil
}
