package gost

// sbox holds the eight substitution rows. Row j replaces the j-th 4-bit
// nibble of the round value, counting from the most significant nibble.
var sbox = [8][16]byte{
	{4, 10, 9, 2, 13, 8, 0, 14, 6, 11, 1, 12, 7, 15, 5, 3},
	{14, 11, 4, 12, 6, 13, 15, 10, 2, 3, 8, 1, 0, 7, 5, 9},
	{5, 8, 1, 13, 10, 3, 4, 2, 14, 15, 12, 7, 6, 0, 9, 11},
	{7, 13, 10, 1, 0, 8, 9, 15, 14, 4, 6, 11, 2, 5, 3, 12},
	{12, 6, 15, 10, 2, 9, 1, 7, 4, 14, 0, 5, 11, 3, 8, 13},
	{11, 3, 6, 8, 15, 0, 1, 12, 2, 5, 14, 7, 9, 10, 4, 13},
	{8, 15, 2, 5, 12, 11, 7, 6, 0, 4, 14, 9, 10, 1, 13, 3},
	{10, 2, 7, 1, 13, 8, 15, 9, 12, 0, 5, 11, 6, 14, 3, 4},
}

// substitute passes every nibble of value through its row of the table.
func substitute(value uint32) uint32 {
	var out uint32
	for j := uint(0); j < 8; j++ {
		shift := 28 - 4*j
		nibble := (value >> shift) & 0xF
		out |= uint32(sbox[j][nibble]) << shift
	}
	return out
}
