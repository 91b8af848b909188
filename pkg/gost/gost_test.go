package gost

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func seqKey() []byte {
	key := make([]byte, KeySize)
	for i := range key {
		key[i] = byte(i)
	}
	return key
}

func TestNewCipherKeySize(t *testing.T) {
	for _, n := range []int{0, 8, 16, 31, 33, 64} {
		_, err := NewCipher(make([]byte, n))
		assert.Equal(t, KeySizeError(n), err, "key length %d", n)
	}

	c, err := NewCipher(make([]byte, KeySize))
	assert.NoError(t, err)
	assert.Equal(t, BlockSize, c.BlockSize())
}

func TestEncryptVectors(t *testing.T) {
	tests := []struct {
		name  string
		key   []byte
		plain string
		want  string
	}{
		{"zero key, zero block", make([]byte, KeySize), "0000000000000000", "b3f72675c32b09de"},
		{"sequential key", seqKey(), "0123456789abcdef", "a6eab087165cca46"},
		{"zero key, ones block", make([]byte, KeySize), "ffffffffffffffff", "1e25698eb7b1ef62"},
	}

	for _, tt := range tests {
		c, err := NewCipher(tt.key)
		require.NoError(t, err, tt.name)

		dst := make([]byte, BlockSize)
		c.Encrypt(dst, mustHex(t, tt.plain))
		assert.Equal(t, tt.want, hex.EncodeToString(dst), tt.name)

		back := make([]byte, BlockSize)
		c.Decrypt(back, dst)
		assert.Equal(t, tt.plain, hex.EncodeToString(back), tt.name)
	}
}

func TestEncryptDecrypt(t *testing.T) {
	keys := [][]byte{
		make([]byte, KeySize),
		seqKey(),
		bytes.Repeat([]byte{0xAA}, KeySize),
	}

	for _, key := range keys {
		c, err := NewCipher(key)
		require.NoError(t, err)

		plaintext := make([]byte, BlockSize)
		for i := range plaintext {
			plaintext[i] = byte(i + 0x80)
		}

		ciphertext := make([]byte, BlockSize)
		decrypted := make([]byte, BlockSize)
		c.Encrypt(ciphertext, plaintext)
		c.Decrypt(decrypted, ciphertext)

		assert.Equal(t, plaintext, decrypted, "key %x", key)
		assert.NotEqual(t, plaintext, ciphertext, "key %x", key)
	}
}

func TestEncryptInPlace(t *testing.T) {
	c, err := NewCipher(make([]byte, KeySize))
	require.NoError(t, err)

	buf := mustHex(t, "ffffffffffffffff")
	c.Encrypt(buf, buf)
	assert.Equal(t, "1e25698eb7b1ef62", hex.EncodeToString(buf))

	c.Decrypt(buf, buf)
	assert.Equal(t, "ffffffffffffffff", hex.EncodeToString(buf))
}

func TestAvalancheEffect(t *testing.T) {
	c, err := NewCipher(seqKey())
	require.NoError(t, err)

	p1 := make([]byte, BlockSize)
	p2 := make([]byte, BlockSize)
	p2[0] = 0x01

	c1 := make([]byte, BlockSize)
	c2 := make([]byte, BlockSize)
	c.Encrypt(c1, p1)
	c.Encrypt(c2, p2)

	diffBits := 0
	for i := 0; i < BlockSize; i++ {
		diff := c1[i] ^ c2[i]
		for diff != 0 {
			diffBits++
			diff &= diff - 1
		}
	}

	if diffBits < 16 || diffBits > 48 {
		t.Errorf("weak avalanche: %d bits changed (expected ~32)", diffBits)
	}
}

func TestKeySensitivity(t *testing.T) {
	flipped := make([]byte, KeySize)
	flipped[0] = 0x01

	c1, err := NewCipher(make([]byte, KeySize))
	require.NoError(t, err)
	c2, err := NewCipher(flipped)
	require.NoError(t, err)

	block := make([]byte, BlockSize)
	ct1 := make([]byte, BlockSize)
	ct2 := make([]byte, BlockSize)
	c1.Encrypt(ct1, block)
	c2.Encrypt(ct2, block)

	assert.NotEqual(t, ct1, ct2)
}

func TestBlockLengthPanics(t *testing.T) {
	c, err := NewCipher(make([]byte, KeySize))
	require.NoError(t, err)

	short := make([]byte, BlockSize-1)
	full := make([]byte, BlockSize)

	assert.Panics(t, func() { c.Encrypt(full, short) })
	assert.Panics(t, func() { c.Encrypt(short, full) })
	assert.Panics(t, func() { c.Decrypt(full, short) })
	assert.Panics(t, func() { c.Decrypt(short, full) })
}

func BenchmarkEncrypt(b *testing.B) {
	c, _ := NewCipher(make([]byte, KeySize))
	src := make([]byte, BlockSize)
	dst := make([]byte, BlockSize)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Encrypt(dst, src)
	}
}

func BenchmarkDecrypt(b *testing.B) {
	c, _ := NewCipher(make([]byte, KeySize))
	src := make([]byte, BlockSize)
	dst := make([]byte, BlockSize)
	c.Encrypt(src, src)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Decrypt(dst, src)
	}
}

func BenchmarkNewCipher(b *testing.B) {
	key := seqKey()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NewCipher(key)
	}
}
