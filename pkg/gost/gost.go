// Package gost implements a GOST 28147-89 style block cipher: a 32 round
// Feistel network over 8 byte blocks with a 256 bit key and a fixed
// substitution table.
//
// The round key schedule cycles the eight key words uniformly through all
// 32 rounds rather than using the standardized 8-8-8-reversed order;
// decryption walks the same schedule backwards. Block halves and key words
// are read little-endian.
package gost

import (
	"crypto/cipher"
	"encoding/binary"
	"fmt"

	"github.com/daniildemkin/Information-protection/pkg/bitops"
)

const (
	// BlockSize is the cipher block size in bytes.
	BlockSize = 8
	// KeySize is the length of a raw key in bytes.
	KeySize = 32

	rounds = 32
)

// KeySizeError is returned when a raw key is not exactly KeySize bytes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return fmt.Sprintf("gost: invalid key size %d", int(k))
}

// Cipher is a keyed instance with both round key schedules precomputed.
// It implements crypto/cipher.Block.
type Cipher struct {
	enc [rounds]uint32
	dec [rounds]uint32
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher interprets key as eight little-endian 32 bit words and returns
// the initialized cipher.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}

	var words [8]uint32
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(key[i*4:])
	}

	c := new(Cipher)
	for i := 0; i < rounds; i++ {
		c.enc[i] = words[i%8]
	}
	for i := 0; i < rounds; i++ {
		c.dec[i] = c.enc[rounds-1-i]
	}
	return c, nil
}

// BlockSize returns the cipher block size in bytes.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt encrypts the first 8 bytes of src into dst. Dst and src may be
// the same slice.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("gost: input not full block")
	}
	if len(dst) < BlockSize {
		panic("gost: output not full block")
	}
	c.crypt(dst, src, &c.enc)
}

// Decrypt decrypts the first 8 bytes of src into dst. Dst and src may be
// the same slice.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("gost: input not full block")
	}
	if len(dst) < BlockSize {
		panic("gost: output not full block")
	}
	c.crypt(dst, src, &c.dec)
}

// crypt runs the 32 rounds with the given schedule. Every round swaps the
// halves; packing (n2, n1) at the end undoes the last swap.
func (c *Cipher) crypt(dst, src []byte, schedule *[rounds]uint32) {
	n1 := binary.LittleEndian.Uint32(src[0:4])
	n2 := binary.LittleEndian.Uint32(src[4:8])

	for i := 0; i < rounds; i++ {
		s := n1 + schedule[i]
		s = bitops.RotL32(substitute(s), 11)
		n1, n2 = n2^s, n1
	}

	binary.LittleEndian.PutUint32(dst[0:4], n2)
	binary.LittleEndian.PutUint32(dst[4:8], n1)
}
