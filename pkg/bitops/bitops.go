// Package bitops provides the word rotations and half packing shared by the
// cipher cores.
package bitops

// RotL32 rotates x left by k bits. The count wraps modulo 32.
func RotL32(x uint32, k uint) uint32 {
	k &= 31
	return x<<k | x>>(32-k)
}

// RotR32 rotates x right by k bits. The count wraps modulo 32.
func RotR32(x uint32, k uint) uint32 {
	k &= 31
	return x>>k | x<<(32-k)
}

// RotL64 rotates x left by k bits. The count wraps modulo 64.
func RotL64(x uint64, k uint) uint64 {
	k &= 63
	return x<<k | x>>(64-k)
}

// RotR64 rotates x right by k bits. The count wraps modulo 64.
func RotR64(x uint64, k uint) uint64 {
	k &= 63
	return x>>k | x<<(64-k)
}

// Split64 breaks v into its high and low 32-bit halves.
func Split64(v uint64) (hi, lo uint32) {
	return uint32(v >> 32), uint32(v)
}

// Join64 assembles a 64-bit word from two 32-bit halves.
func Join64(hi, lo uint32) uint64 {
	return uint64(hi)<<32 | uint64(lo)
}
