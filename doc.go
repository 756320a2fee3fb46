// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package cashaddr implements the cash address format used by Bitcoin Cash.

A cash address is a printable string of the form

	<prefix>:<payload>

where the prefix names the network (bitcoincash, bchtest or bchreg by
default, see the chaincfg package) and the payload is a base32 encoding of
a version byte, a hash and an eight digit checksum.  The version byte packs
the address type (P2PKH or P2SH) together with the length of the hash, which
may be 20, 24, 28, 32, 40, 48, 56 or 64 bytes.

The checksum is a BCH code over 5-bit symbols computed over the prefix and
the payload.  It detects any error affecting up to four symbols and any
burst of up to eight symbols, so a mistyped address is rejected instead of
silently paying to the wrong hash.  Errors beyond those limits are
detected with a probability of about 1 - 2^-40.

Addresses are either all lower case or all upper case.  Mixed case input is
rejected.

Usage

Encoding a hash and decoding it again:

	addr, err := cashaddr.Encode("bitcoincash", cashaddr.P2PKH, hash)
	if err != nil {
		return err
	}
	decoded, err := cashaddr.Decode(addr)
	if err != nil {
		return err
	}
	fmt.Println(decoded.Prefix, decoded.Type, hex.EncodeToString(decoded.Hash))

Errors

Every rejection is reported as a ValidationError wrapping an ErrorKind, so
callers can test for the reason with errors.Is:

	if errors.Is(err, cashaddr.ErrInvalidChecksum) {
		// The address was mistyped or corrupted.
	}

The lower level building blocks, EncodeBase32, DecodeBase32, ConvertBits,
PolyMod, CreateChecksum and VerifyChecksum, are exported for tooling that
needs to work with the payload directly.
*/
package cashaddr
