// Package feistel implements a 16 round toy Feistel cipher over 8 byte
// blocks with a 64 bit key.
//
// This is a teaching construction. Its round function spreads a single-bit
// change across only a few output bits and the 64 bit key space is far too
// small for real use; it exists to make the Feistel structure observable,
// not to protect data. Blocks are read as big-endian 64 bit words, the left
// half being the high 32 bits.
package feistel

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"fmt"

	mtwist "blitter.com/go/mtwist"

	"github.com/daniildemkin/Information-protection/pkg/bitops"
)

const (
	// BlockSize is the cipher block size in bytes.
	BlockSize = 8
	// KeySize is the length of a raw key in bytes.
	KeySize = 8

	rounds = 16

	// keyTweak spreads the round index over the master key during round
	// key derivation.
	keyTweak = 0x0123456789ABCDEF
)

// KeySizeError is returned when a raw key is not exactly KeySize bytes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return fmt.Sprintf("feistel: invalid key size %d", int(k))
}

// Cipher is a keyed instance with all 16 round keys derived up front.
// It implements crypto/cipher.Block.
type Cipher struct {
	keys [rounds]uint32
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher derives the round keys from a 64 bit master key. Every key
// value is accepted, including zero.
func NewCipher(key uint64) *Cipher {
	c := new(Cipher)
	for i := 0; i < rounds; i++ {
		c.keys[i] = uint32(bitops.RotL64(key, uint(i)) ^ uint64(i)*keyTweak)
	}
	return c
}

// NewCipherFromBytes reads an 8 byte big-endian master key.
func NewCipherFromBytes(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}
	return NewCipher(binary.BigEndian.Uint64(key)), nil
}

// GenerateKey draws a fresh 64 bit master key from a Mersenne Twister
// seeded with OS entropy.
func GenerateKey() (uint64, error) {
	seed := make([]byte, 32)
	if _, err := rand.Read(seed); err != nil {
		return 0, err
	}

	m := mtwist.New()
	m.SeedFullState(seed)
	return bitops.Join64(uint32(m.Int63()), uint32(m.Int63())), nil
}

// BlockSize returns the cipher block size in bytes.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt encrypts the first 8 bytes of src into dst. Dst and src may be
// the same slice.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("feistel: input not full block")
	}
	if len(dst) < BlockSize {
		panic("feistel: output not full block")
	}

	left, right := bitops.Split64(binary.BigEndian.Uint64(src))
	for i := 0; i < rounds; i++ {
		left, right = right, left^round(right, c.keys[i])
	}
	binary.BigEndian.PutUint64(dst, bitops.Join64(right, left))
}

// Decrypt decrypts the first 8 bytes of src into dst. Dst and src may be
// the same slice.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("feistel: input not full block")
	}
	if len(dst) < BlockSize {
		panic("feistel: output not full block")
	}

	left, right := bitops.Split64(binary.BigEndian.Uint64(src))
	for i := rounds - 1; i >= 0; i-- {
		left, right = right, left^round(right, c.keys[i])
	}
	binary.BigEndian.PutUint64(dst, bitops.Join64(right, left))
}

// round mixes one half with a round key.
func round(half, rk uint32) uint32 {
	return bitops.RotL32(bitops.RotR32(half^rk, 8), 3) ^ rk<<5
}
