// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

import (
	"fmt"
	"strings"
)

// charset is the set of 32 symbols used by the base32 encoding.  The index of
// a symbol is the 5-bit value it encodes.
const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// charsetRev maps an ASCII character to its index in charset, or -1 when the
// character is not a lower case symbol of the charset.
var charsetRev = [128]int8{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	15, -1, 10, 17, 21, 20, 26, 30, 7, 5, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, 29, -1, 24, 13, 25, 9, 8, 23, -1, 18, 22, 31, 27, 19, -1,
	1, 0, 3, 16, 11, 28, 12, 14, 6, 4, 2, -1, -1, -1, -1, -1,
}

// EncodeBase32 maps each 5-bit value of data to its charset symbol.  A
// ValidationError with ErrOutOfRange is returned if any value is 32 or more.
func EncodeBase32(data []byte) (string, error) {
	var sb strings.Builder
	sb.Grow(len(data))
	for i, v := range data {
		if err := validate(v < 32, ErrOutOfRange,
			"invalid 5-bit value %d at index %d", v, i); err != nil {
			return "", err
		}
		sb.WriteByte(charset[v])
	}
	return sb.String(), nil
}

// DecodeBase32 maps each symbol of s back to its 5-bit value.  The lookup is
// case sensitive: only the lower case charset is accepted, so callers must
// normalize case beforehand.  A ValidationError with ErrUnknownSymbol is
// returned for any other character.
func DecodeBase32(s string) ([]byte, error) {
	data := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 128 || charsetRev[c] == -1 {
			str := fmt.Sprintf("invalid character %q at index %d", c, i)
			return nil, validationError(ErrUnknownSymbol, str)
		}
		data[i] = byte(charsetRev[c])
	}
	return data, nil
}
