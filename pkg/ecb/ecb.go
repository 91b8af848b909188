// Package ecb drives a block cipher over whole buffers in electronic
// codebook mode, padding on the way in and stripping padding on the way
// out.
//
// ECB leaks equal plaintext blocks as equal ciphertext blocks; the mode is
// kept for compatibility with the file format this engine reads and writes.
package ecb

import (
	"crypto/cipher"
	"errors"

	"github.com/daniildemkin/Information-protection/pkg/padding"
)

// ErrInvalidLength is returned when a ciphertext is not a whole number of
// blocks.
var ErrInvalidLength = errors.New("ecb: ciphertext length is not a multiple of the block size")

// Progress receives completion percentages from 0 to 100 while a buffer is
// transformed. *progressbar.ProgressBar satisfies it; nil disables
// reporting.
type Progress interface {
	Set(num int) error
}

// Encrypt pads plaintext and encrypts it block by block. The result is
// always a whole number of blocks and at least one block long.
func Encrypt(b cipher.Block, plaintext []byte, bar Progress) []byte {
	bs := b.BlockSize()
	padded := padding.Pad(plaintext, bs)
	out := make([]byte, len(padded))

	blocks := len(padded) / bs
	for i := 0; i < blocks; i++ {
		b.Encrypt(out[i*bs:(i+1)*bs], padded[i*bs:(i+1)*bs])
		report(bar, i+1, blocks)
	}
	return out
}

// Decrypt decrypts ciphertext block by block and strips the padding. It
// returns only an error when the length is not a whole number of blocks or
// the padding does not verify; a padding failure usually means a wrong key
// or a damaged ciphertext.
func Decrypt(b cipher.Block, ciphertext []byte, bar Progress) ([]byte, error) {
	bs := b.BlockSize()
	if len(ciphertext)%bs != 0 {
		return nil, ErrInvalidLength
	}

	out := make([]byte, len(ciphertext))
	blocks := len(ciphertext) / bs
	for i := 0; i < blocks; i++ {
		b.Decrypt(out[i*bs:(i+1)*bs], ciphertext[i*bs:(i+1)*bs])
		report(bar, i+1, blocks)
	}
	return padding.Unpad(out, bs)
}

// report forwards the completion percentage after each block.
func report(bar Progress, done, total int) {
	if bar == nil {
		return
	}
	bar.Set(done * 100 / total)
}
