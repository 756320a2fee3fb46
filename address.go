// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/cashaddr/chaincfg"
)

// Address is an interface type for any type of destination a transaction
// output may spend to that can be expressed as a cash address.
type Address interface {
	// String returns the string encoding of the transaction output
	// destination.
	String() string

	// EncodeAddress returns the string encoding of the payment address
	// associated with the Address value.
	EncodeAddress() string

	// ScriptAddress returns the raw bytes of the address to be used
	// when inserting the address into a txout's script.
	ScriptAddress() []byte

	// IsForNet returns whether or not the address is associated with the
	// passed network.
	IsForNet(*chaincfg.Params) bool
}

// hashAddress holds the parts shared by every address kind.
type hashAddress struct {
	prefix string
	hash   []byte
}

func newHashAddress(hash []byte, net *chaincfg.Params) (hashAddress, error) {
	if err := validatePrefix(net.CashAddressPrefix); err != nil {
		return hashAddress{}, err
	}
	if err := validate(IsValidHashSize(len(hash)), ErrInvalidHashSize,
		"invalid hash size %d bytes", len(hash)); err != nil {
		return hashAddress{}, err
	}
	h := make([]byte, len(hash))
	copy(h, hash)
	return hashAddress{prefix: net.CashAddressPrefix, hash: h}, nil
}

// encode returns the cash address of the hash for the given type.  The hash
// size and prefix were checked on construction.
func (a *hashAddress) encode(t AddressType) string {
	addr, err := Encode(a.prefix, t, a.hash)
	if err != nil {
		return ""
	}
	return addr
}

// ScriptAddress returns the bytes to be included in a txout script to pay
// to the hash.
func (a *hashAddress) ScriptAddress() []byte {
	return a.hash
}

// IsForNet returns whether or not the address is associated with the passed
// network.
func (a *hashAddress) IsForNet(net *chaincfg.Params) bool {
	return strings.EqualFold(a.prefix, net.CashAddressPrefix)
}

// Hash returns the hash of the address.  The returned slice must not be
// modified.
func (a *hashAddress) Hash() []byte {
	return a.hash
}

// AddressPubKeyHash is an Address for a pay-to-pubkey-hash (P2PKH)
// transaction.
type AddressPubKeyHash struct {
	hashAddress
}

// NewAddressPubKeyHash returns a new AddressPubKeyHash.  pkHash must be one
// of the supported hash sizes.
func NewAddressPubKeyHash(pkHash []byte, net *chaincfg.Params) (*AddressPubKeyHash, error) {
	ha, err := newHashAddress(pkHash, net)
	if err != nil {
		return nil, err
	}
	return &AddressPubKeyHash{hashAddress: ha}, nil
}

// NewAddressPubKey returns the AddressPubKeyHash paying to the hash160 of a
// serialized secp256k1 public key.  The key is hashed in the serialization
// it was given in, so compressed and uncompressed keys yield different
// addresses.
func NewAddressPubKey(serializedPubKey []byte, net *chaincfg.Params) (*AddressPubKeyHash, error) {
	if _, err := btcec.ParsePubKey(serializedPubKey); err != nil {
		str := fmt.Sprintf("invalid public key: %v", err)
		return nil, validationError(ErrInvalidPubKey, str)
	}
	return NewAddressPubKeyHash(Hash160(serializedPubKey), net)
}

// EncodeAddress returns the string encoding of a pay-to-pubkey-hash
// address.  Part of the Address interface.
func (a *AddressPubKeyHash) EncodeAddress() string {
	return a.encode(P2PKH)
}

// String returns a human-readable string for the pay-to-pubkey-hash address.
// This is equivalent to calling EncodeAddress, but is provided so the type
// can be used as a fmt.Stringer.
func (a *AddressPubKeyHash) String() string {
	return a.EncodeAddress()
}

// AddressScriptHash is an Address for a pay-to-script-hash (P2SH)
// transaction.
type AddressScriptHash struct {
	hashAddress
}

// NewAddressScriptHash returns a new AddressScriptHash paying to the hash160
// of serializedScript.
func NewAddressScriptHash(serializedScript []byte, net *chaincfg.Params) (*AddressScriptHash, error) {
	return NewAddressScriptHashFromHash(Hash160(serializedScript), net)
}

// NewAddressScriptHashFromHash returns a new AddressScriptHash.  scriptHash
// must be one of the supported hash sizes.
func NewAddressScriptHashFromHash(scriptHash []byte, net *chaincfg.Params) (*AddressScriptHash, error) {
	ha, err := newHashAddress(scriptHash, net)
	if err != nil {
		return nil, err
	}
	return &AddressScriptHash{hashAddress: ha}, nil
}

// EncodeAddress returns the string encoding of a pay-to-script-hash
// address.  Part of the Address interface.
func (a *AddressScriptHash) EncodeAddress() string {
	return a.encode(P2SH)
}

// String returns a human-readable string for the pay-to-script-hash address.
// This is equivalent to calling EncodeAddress, but is provided so the type
// can be used as a fmt.Stringer.
func (a *AddressScriptHash) String() string {
	return a.EncodeAddress()
}

// DecodeAddress decodes the string encoding of an address and returns the
// Address if addr is a valid encoding for a known address type on
// defaultNet.  An address given without its prefix is assumed to carry the
// prefix of defaultNet.
func DecodeAddress(addr string, defaultNet *chaincfg.Params) (Address, error) {
	if !strings.ContainsRune(addr, separator) {
		prefix := defaultNet.CashAddressPrefix
		if _, upper := caseOf(addr); upper {
			prefix = strings.ToUpper(prefix)
		}
		addr = prefix + string(separator) + addr
	}

	decoded, err := Decode(addr)
	if err != nil {
		return nil, err
	}
	if err := validate(strings.EqualFold(decoded.Prefix, defaultNet.CashAddressPrefix),
		ErrNetworkMismatch, "address %q is not for network %s", addr,
		defaultNet.Name); err != nil {
		return nil, err
	}

	switch decoded.Type {
	case P2PKH:
		return NewAddressPubKeyHash(decoded.Hash, defaultNet)
	case P2SH:
		return NewAddressScriptHashFromHash(decoded.Hash, defaultNet)
	}
	str := fmt.Sprintf("unsupported address type %v", decoded.Type)
	return nil, validationError(ErrInvalidAddressType, str)
}
