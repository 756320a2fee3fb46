// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

// ConvertBits regroups data, a sequence of fromBits-wide values, into a
// sequence of toBits-wide values.  The input is treated as one big-endian
// bit stream, so output value i always holds bits [i*toBits, (i+1)*toBits)
// of the concatenated input.  Both widths must be between 1 and 8.
//
// When strict is false, leftover bits are left-justified and zero-padded into
// one final value.  When strict is true, the leftover bits must be fewer than
// fromBits and all zero; otherwise a ValidationError with ErrPaddingRequired
// is returned.  Strict mode is used when recovering bytes from a decoded
// payload, where non-zero padding can only be the result of corruption.
func ConvertBits(data []byte, fromBits, toBits uint8, strict bool) ([]byte, error) {
	if err := validate(fromBits >= 1 && fromBits <= 8 && toBits >= 1 && toBits <= 8,
		ErrOutOfRange, "invalid bit widths %d -> %d", fromBits, toBits); err != nil {
		return nil, err
	}

	// The accumulator never needs more than fromBits+toBits-1 bits of
	// state, so mask it to that width as values are shifted in.
	maxAcc := uint32(1)<<(fromBits+toBits-1) - 1
	mask := uint32(1)<<toBits - 1

	var (
		acc  uint32
		bits uint8
	)
	regrouped := make([]byte, 0, (len(data)*int(fromBits)+int(toBits)-1)/int(toBits))
	for i, v := range data {
		if err := validate(v>>fromBits == 0, ErrOutOfRange,
			"invalid %d-bit value %d at index %d", fromBits, v, i); err != nil {
			return nil, err
		}
		acc = (acc<<fromBits | uint32(v)) & maxAcc
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			regrouped = append(regrouped, byte(acc>>bits&mask))
		}
	}

	if !strict {
		if bits > 0 {
			regrouped = append(regrouped, byte(acc<<(toBits-bits)&mask))
		}
		return regrouped, nil
	}

	if err := validate(bits < fromBits && acc<<(toBits-bits)&mask == 0,
		ErrPaddingRequired, "input cannot be converted to %d bits without "+
			"padding, but strict mode was used", toBits); err != nil {
		return nil, err
	}
	return regrouped, nil
}
