// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

import (
	"fmt"
	"strings"
)

// AddressType is the kind of hash an address commits to.  Its value is the
// bit pattern the type occupies within the version byte.
type AddressType uint8

const (
	// P2PKH identifies a pay-to-pubkey-hash address.
	P2PKH AddressType = 0x00

	// P2SH identifies a pay-to-script-hash address.
	P2SH AddressType = 0x08
)

// Masks for the fields of the version byte.
const (
	versionReservedMask = 0x80
	versionTypeMask     = 0x78
	versionSizeMask     = 0x07
)

// addressTypeNames maps each defined address type to its name.
var addressTypeNames = map[AddressType]string{
	P2PKH: "P2PKH",
	P2SH:  "P2SH",
}

// String returns the AddressType as a human-readable name.
func (t AddressType) String() string {
	if s, ok := addressTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Unknown AddressType (%d)", uint8(t))
}

// IsValid reports whether t is a defined address type.
func (t AddressType) IsValid() bool {
	_, ok := addressTypeNames[t]
	return ok
}

// ParseAddressType returns the address type named by s, compared case
// insensitively against "P2PKH" and "P2SH".
func ParseAddressType(s string) (AddressType, error) {
	for t, name := range addressTypeNames {
		if strings.EqualFold(s, name) {
			return t, nil
		}
	}
	return 0, validationError(ErrInvalidAddressType,
		fmt.Sprintf("invalid address type %q", s))
}

// hashSizes lists the supported hash lengths in bytes.  The index of a
// length is the value of the size field of the version byte.
var hashSizes = [8]int{20, 24, 28, 32, 40, 48, 56, 64}

// hashSizeBits maps a supported hash length in bytes to its size field.
var hashSizeBits = func() map[int]byte {
	m := make(map[int]byte, len(hashSizes))
	for bits, size := range hashSizes {
		m[size] = byte(bits)
	}
	return m
}()

// IsValidHashSize reports whether n is a supported hash length in bytes.
func IsValidHashSize(n int) bool {
	_, ok := hashSizeBits[n]
	return ok
}

// packVersion builds the version byte for a hash of the given type and
// length in bytes.
func packVersion(t AddressType, hashLen int) (byte, error) {
	if err := validate(t.IsValid(), ErrInvalidAddressType,
		"invalid address type %d", uint8(t)); err != nil {
		return 0, err
	}
	sizeBits, ok := hashSizeBits[hashLen]
	if !ok {
		str := fmt.Sprintf("invalid hash size %d bytes", hashLen)
		return 0, validationError(ErrInvalidHashSize, str)
	}
	return byte(t) | sizeBits, nil
}

// unpackVersion splits a version byte into its address type and the hash
// length in bytes it announces.
func unpackVersion(version byte) (AddressType, int, error) {
	if err := validate(version&versionReservedMask == 0, ErrReservedBit,
		"reserved bit set in version byte %#02x", version); err != nil {
		return 0, 0, err
	}
	t := AddressType(version & versionTypeMask)
	if err := validate(t.IsValid(), ErrInvalidAddressType,
		"invalid address type in version byte %#02x", version); err != nil {
		return 0, 0, err
	}
	return t, hashSizes[version&versionSizeMask], nil
}
