// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

import (
	"fmt"
)

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific ValidationError.
const (
	// ErrOutOfRange indicates a value does not fit in the bit width it is
	// declared to have, or a requested bit width is unsupported.
	ErrOutOfRange = ErrorKind("ErrOutOfRange")

	// ErrUnknownSymbol indicates a character that is not part of the
	// base32 charset.
	ErrUnknownSymbol = ErrorKind("ErrUnknownSymbol")

	// ErrPaddingRequired indicates a strict bit conversion was left with
	// too many or non-zero padding bits.
	ErrPaddingRequired = ErrorKind("ErrPaddingRequired")

	// ErrMixedCase indicates an address containing both upper and lower
	// case letters.
	ErrMixedCase = ErrorKind("ErrMixedCase")

	// ErrMissingPrefix indicates an address that does not split into
	// exactly a prefix and a payload around a single separator.
	ErrMissingPrefix = ErrorKind("ErrMissingPrefix")

	// ErrUnknownPrefix indicates a prefix that does not belong to any
	// registered network.
	ErrUnknownPrefix = ErrorKind("ErrUnknownPrefix")

	// ErrInvalidAddressType indicates an address type that is not defined,
	// either as an argument or within a version byte.
	ErrInvalidAddressType = ErrorKind("ErrInvalidAddressType")

	// ErrInvalidHashSize indicates a hash length that is not one of the
	// eight supported sizes, or one that disagrees with the size encoded in
	// the version byte.
	ErrInvalidHashSize = ErrorKind("ErrInvalidHashSize")

	// ErrReservedBit indicates a version byte with its reserved most
	// significant bit set.
	ErrReservedBit = ErrorKind("ErrReservedBit")

	// ErrInvalidChecksum indicates the checksum over the prefix and
	// payload does not verify.
	ErrInvalidChecksum = ErrorKind("ErrInvalidChecksum")

	// ErrNetworkMismatch indicates an address which decodes correctly but
	// belongs to a network other than the one requested.
	ErrNetworkMismatch = ErrorKind("ErrNetworkMismatch")

	// ErrInvalidPubKey indicates a serialized public key that does not
	// parse as a point on the secp256k1 curve.
	ErrInvalidPubKey = ErrorKind("ErrInvalidPubKey")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// ValidationError identifies rejected input.  It has full support for
// errors.Is and errors.As, so the caller can ascertain the specific reason
// for the error by checking the underlying error.
type ValidationError struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e ValidationError) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e ValidationError) Unwrap() error {
	return e.Err
}

// validationError creates a ValidationError given a set of arguments.
func validationError(kind ErrorKind, desc string) ValidationError {
	return ValidationError{Err: kind, Description: desc}
}

// validate returns a ValidationError of the given kind when cond does not
// hold and nil otherwise.
func validate(cond bool, kind ErrorKind, format string, args ...interface{}) error {
	if cond {
		return nil
	}
	return validationError(kind, fmt.Sprintf(format, args...))
}
