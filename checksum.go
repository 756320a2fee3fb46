// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

// checksumLength is the number of 5-bit digits appended to every payload.
const checksumLength = 8

// generator holds the 40-bit values folded into the checksum state for each
// set bit of the five bits shifted out of it.  Entry i is {2^i}*k(x), where
// k(x) = x^8 mod g(x) for the degree-8 generator g(x) over GF(32).
var generator = [5]uint64{
	0x98f2bc8e61,
	0x79b76d99e2,
	0xf33e5fb3c4,
	0xae2eabe2a8,
	0x1e4f43e470,
}

// PolyMod computes the 40-bit checksum residue of the 5-bit values in data.
// The state starts at 1 and every value is shifted in five bits at a time;
// the five bits shifted out of the top select which generator entries are
// folded back in.  The final xor with 1 makes a valid codeword reduce to 0.
func PolyMod(data []byte) uint64 {
	chk := uint64(1)
	for _, v := range data {
		top := chk >> 35
		chk = (chk&0x07ffffffff)<<5 ^ uint64(v)
		for i := 0; i < len(generator); i++ {
			if (top>>uint(i))&1 == 1 {
				chk ^= generator[i]
			}
		}
	}
	return chk ^ 1
}

// expandPrefix returns the prefix contribution to the checksum input: the
// low five bits of each character followed by a zero separator.
func expandPrefix(prefix string) []byte {
	expanded := make([]byte, len(prefix)+1)
	for i := 0; i < len(prefix); i++ {
		expanded[i] = prefix[i] & 0x1f
	}
	return expanded
}

// VerifyChecksum reports whether payload, which must include its trailing
// checksum digits, carries a valid checksum for prefix.
func VerifyChecksum(prefix string, payload []byte) bool {
	return PolyMod(append(expandPrefix(prefix), payload...)) == 0
}

// CreateChecksum returns the checksum digits to append to payload for the
// given prefix.  The residue is computed with eight zero placeholders in
// place of the digits it determines.
func CreateChecksum(prefix string, payload []byte) []byte {
	values := expandPrefix(prefix)
	values = append(values, payload...)
	values = append(values, make([]byte, checksumLength)...)
	return checksumDigits(PolyMod(values))
}

// checksumDigits splits a residue into its eight 5-bit digits, most
// significant first.
func checksumDigits(residue uint64) []byte {
	digits := make([]byte, checksumLength)
	for i := checksumLength - 1; i >= 0; i-- {
		digits[i] = byte(residue & 0x1f)
		residue >>= 5
	}
	return digits
}
