// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

import (
	"fmt"
	"strings"

	"github.com/btcsuite/cashaddr/chaincfg"
	"github.com/davecgh/go-spew/spew"
)

// separator splits the prefix from the payload of an address.
const separator = ':'

// dumper renders decoded records for trace logging without invoking their
// String methods.
var dumper = spew.ConfigState{Indent: "  ", DisableMethods: true}

// DecodedAddress is the result of a successful Decode.
type DecodedAddress struct {
	// Prefix is the network prefix exactly as it appeared in the address.
	Prefix string

	// Type is the address type carried by the version byte.
	Type AddressType

	// Hash is the hash committed to by the address.
	Hash []byte
}

// caseOf reports whether s contains lower case and upper case ASCII letters.
func caseOf(s string) (lower, upper bool) {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= 'A' && c <= 'Z':
			upper = true
		}
	}
	return lower, upper
}

// hasSingleCase reports whether s does not mix upper and lower case letters.
func hasSingleCase(s string) bool {
	lower, upper := caseOf(s)
	return !(lower && upper)
}

// validatePrefix ensures prefix is single-case and names a registered
// network.
func validatePrefix(prefix string) error {
	if err := validate(prefix != "", ErrMissingPrefix,
		"empty prefix"); err != nil {
		return err
	}
	if err := validate(hasSingleCase(prefix), ErrMixedCase,
		"prefix %q mixes upper and lower case", prefix); err != nil {
		return err
	}
	return validate(chaincfg.IsCashAddressPrefix(prefix), ErrUnknownPrefix,
		"unknown network prefix %q", prefix)
}

// Encode returns the address for a hash of the given type on the network
// identified by prefix.  The hash must be 20, 24, 28, 32, 40, 48, 56 or 64
// bytes long.  An upper case prefix produces an upper case address.
func Encode(prefix string, t AddressType, hash []byte) (string, error) {
	if err := validatePrefix(prefix); err != nil {
		return "", err
	}
	version, err := packVersion(t, len(hash))
	if err != nil {
		return "", err
	}

	raw := make([]byte, 0, len(hash)+1)
	raw = append(raw, version)
	raw = append(raw, hash...)
	payload, err := ConvertBits(raw, 8, 5, false)
	if err != nil {
		return "", err
	}
	payload = append(payload, CreateChecksum(prefix, payload)...)

	encoded, err := EncodeBase32(payload)
	if err != nil {
		return "", err
	}
	if _, upper := caseOf(prefix); upper {
		encoded = strings.ToUpper(encoded)
	}

	addr := prefix + string(separator) + encoded
	log.Tracef("Encoded %v hash %x as %s", t, hash, addr)
	return addr, nil
}

// Decode parses addr into its prefix, address type and hash.  The address
// may be all lower case or all upper case, but not a mix of both.  The
// checksum is verified before any payload bits are interpreted.  Decode
// either succeeds entirely or returns a ValidationError.
func Decode(addr string) (*DecodedAddress, error) {
	if err := validate(hasSingleCase(addr), ErrMixedCase,
		"address %q mixes upper and lower case", addr); err != nil {
		return nil, err
	}
	pieces := strings.Split(addr, string(separator))
	if err := validate(len(pieces) == 2, ErrMissingPrefix,
		"missing prefix in address %q", addr); err != nil {
		return nil, err
	}
	prefix := pieces[0]
	if err := validatePrefix(prefix); err != nil {
		return nil, err
	}

	payload, err := DecodeBase32(strings.ToLower(pieces[1]))
	if err != nil {
		return nil, err
	}
	if err := validate(len(payload) >= checksumLength, ErrInvalidChecksum,
		"payload of %d symbols is too short for a checksum",
		len(payload)); err != nil {
		return nil, err
	}
	if err := validate(VerifyChecksum(prefix, payload), ErrInvalidChecksum,
		"invalid checksum in address %q", addr); err != nil {
		return nil, err
	}

	raw, err := ConvertBits(payload[:len(payload)-checksumLength], 5, 8, true)
	if err != nil {
		return nil, err
	}
	if err := validate(len(raw) > 0, ErrInvalidHashSize,
		"missing version byte in address %q", addr); err != nil {
		return nil, err
	}
	t, size, err := unpackVersion(raw[0])
	if err != nil {
		return nil, err
	}
	hash := raw[1:]
	if err := validate(size == len(hash), ErrInvalidHashSize,
		"version byte announces a %d byte hash, but address %q carries %d",
		size, addr, len(hash)); err != nil {
		return nil, err
	}

	decoded := &DecodedAddress{Prefix: prefix, Type: t, Hash: hash}
	log.Tracef("Decoded %s: %v", addr, newLogClosure(func() string {
		return dumper.Sdump(decoded)
	}))
	return decoded, nil
}

// String returns the address the record decodes from.
func (a *DecodedAddress) String() string {
	addr, err := Encode(a.Prefix, a.Type, a.Hash)
	if err != nil {
		return fmt.Sprintf("<invalid address: %v>", err)
	}
	return addr
}
