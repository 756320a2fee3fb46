// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr_test

import (
	"encoding/hex"
	"errors"
	"reflect"
	"testing"

	"github.com/btcsuite/cashaddr"
	"github.com/btcsuite/cashaddr/chaincfg"
	"github.com/stretchr/testify/require"
)

// hexToBytes converts the passed hex string into bytes and will panic if
// there is an error.  This is only provided for the hard-coded constants so
// errors in the source code can be detected.  It will only (and must only)
// be called with hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

func TestAddresses(t *testing.T) {
	tests := []struct {
		name    string
		addr    string
		encoded string
		valid   bool
		result  cashaddr.Address
		f       func() (cashaddr.Address, error)
		net     *chaincfg.Params
	}{
		// Positive P2PKH tests.
		{
			name:    "mainnet p2pkh",
			addr:    "bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a",
			encoded: "bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a",
			valid:   true,
			f: func() (cashaddr.Address, error) {
				pkHash := hexToBytes("76a04053bda0a88bda5177b86a15c3b29f559873")
				return cashaddr.NewAddressPubKeyHash(pkHash, &chaincfg.MainNetParams)
			},
			net: &chaincfg.MainNetParams,
		},
		{
			name:    "mainnet p2pkh without prefix",
			addr:    "qr95sy3j9xwd2ap32xkykttr4cvcu7as4y0qverfuy",
			encoded: "bitcoincash:qr95sy3j9xwd2ap32xkykttr4cvcu7as4y0qverfuy",
			valid:   true,
			f: func() (cashaddr.Address, error) {
				pkHash := hexToBytes("cb481232299cd5743151ac4b2d63ae198e7bb0a9")
				return cashaddr.NewAddressPubKeyHash(pkHash, &chaincfg.MainNetParams)
			},
			net: &chaincfg.MainNetParams,
		},
		{
			name:    "mainnet p2pkh upper case without prefix",
			addr:    "QPM2QSZNHKS23Z7629MMS6S4CWEF74VCWVY22GDX6A",
			encoded: "bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a",
			valid:   true,
			f: func() (cashaddr.Address, error) {
				pkHash := hexToBytes("76a04053bda0a88bda5177b86a15c3b29f559873")
				return cashaddr.NewAddressPubKeyHash(pkHash, &chaincfg.MainNetParams)
			},
			net: &chaincfg.MainNetParams,
		},
		{
			name:    "testnet p2pkh",
			addr:    "bchtest:qqq3728yw0y47sqn6l2na30mcw6zm78dzq8tpg8vdl",
			encoded: "bchtest:qqq3728yw0y47sqn6l2na30mcw6zm78dzq8tpg8vdl",
			valid:   true,
			f: func() (cashaddr.Address, error) {
				pkHash := hexToBytes("011f28e473c95f4013d7d53ec5fbc3b42df8ed10")
				return cashaddr.NewAddressPubKeyHash(pkHash, &chaincfg.TestNet3Params)
			},
			net: &chaincfg.TestNet3Params,
		},
		{
			name:  "p2pkh wrong network",
			addr:  "bchtest:qqq3728yw0y47sqn6l2na30mcw6zm78dzq8tpg8vdl",
			valid: false,
			net:   &chaincfg.MainNetParams,
		},
		{
			name:  "p2pkh bad checksum",
			addr:  "bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6q",
			valid: false,
			net:   &chaincfg.MainNetParams,
		},
		{
			name:  "p2pkh mixed case",
			addr:  "bitcoincash:QPM2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a",
			valid: false,
			net:   &chaincfg.MainNetParams,
		},

		// Positive P2SH tests.
		{
			name:    "mainnet p2sh",
			addr:    "bitcoincash:ppm2qsznhks23z7629mms6s4cwef74vcwvn0h829pq",
			encoded: "bitcoincash:ppm2qsznhks23z7629mms6s4cwef74vcwvn0h829pq",
			valid:   true,
			f: func() (cashaddr.Address, error) {
				hash := hexToBytes("76a04053bda0a88bda5177b86a15c3b29f559873")
				return cashaddr.NewAddressScriptHashFromHash(hash, &chaincfg.MainNetParams)
			},
			net: &chaincfg.MainNetParams,
		},
		{
			name:    "regtest p2sh",
			addr:    "bchreg:ppm2qsznhks23z7629mms6s4cwef74vcwvdp9ptp96",
			encoded: "bchreg:ppm2qsznhks23z7629mms6s4cwef74vcwvdp9ptp96",
			valid:   true,
			f: func() (cashaddr.Address, error) {
				hash := hexToBytes("76a04053bda0a88bda5177b86a15c3b29f559873")
				return cashaddr.NewAddressScriptHashFromHash(hash, &chaincfg.RegressionNetParams)
			},
			net: &chaincfg.RegressionNetParams,
		},

		// Negative version byte tests.
		{
			name:  "undefined address type",
			addr:  "bitcoincash:zpm2qsznhks23z7629mms6s4cwef74vcwvrqekrq9w",
			valid: false,
			net:   &chaincfg.MainNetParams,
		},
		{
			name:  "reserved bit set",
			addr:  "bitcoincash:spm2qsznhks23z7629mms6s4cwef74vcwv4glwxl5g",
			valid: false,
			net:   &chaincfg.MainNetParams,
		},
	}

	for _, test := range tests {
		// Decode addr and compare error against valid.
		decoded, err := cashaddr.DecodeAddress(test.addr, test.net)
		if (err == nil) != test.valid {
			t.Errorf("%v: decoding test failed: %v", test.name, err)
			return
		}

		if err == nil {
			// Ensure the stringer returns the same address as the
			// original.
			if test.encoded != decoded.String() {
				t.Errorf("%v: String on decoded value does not match expected value: %v != %v",
					test.name, test.encoded, decoded.String())
				return
			}

			// Encode again and compare against the expected address.
			encoded := decoded.EncodeAddress()
			if test.encoded != encoded {
				t.Errorf("%v: decoding and encoding produced different addresses: %v != %v",
					test.name, test.encoded, encoded)
				return
			}

			// Perform type-specific calculations.
			var saddr []byte
			switch d := decoded.(type) {
			case *cashaddr.AddressPubKeyHash:
				saddr = d.Hash()
			case *cashaddr.AddressScriptHash:
				saddr = d.Hash()
			}

			// Check script address, as well as the Hash method.
			if !reflect.DeepEqual(saddr, decoded.ScriptAddress()) {
				t.Errorf("%v: script addresses do not match:\n%x != \n%x",
					test.name, saddr, decoded.ScriptAddress())
				return
			}

			// Ensure the address is for the expected network.
			if !decoded.IsForNet(test.net) {
				t.Errorf("%v: calculated network does not match expected",
					test.name)
				return
			}
		}

		if !test.valid {
			// If address is invalid, but a creation function exists,
			// verify that it returns a nil addr and non-nil error.
			if test.f != nil {
				_, err := test.f()
				if err == nil {
					t.Errorf("%v: address is invalid but creating new address succeeded",
						test.name)
					return
				}
			}
			continue
		}

		// Valid test, compare address created with f against expected result.
		addr, err := test.f()
		if err != nil {
			t.Errorf("%v: address is valid but creating new address failed with error %v",
				test.name, err)
			return
		}

		if !reflect.DeepEqual(addr, decoded) {
			t.Errorf("%v: created address does not match expected result",
				test.name)
			return
		}
	}
}

func TestDecodeAddressErrors(t *testing.T) {
	tests := []struct {
		name string
		addr string
		net  *chaincfg.Params
		err  error
	}{
		{"network mismatch", "bchtest:qqq3728yw0y47sqn6l2na30mcw6zm78dzq8tpg8vdl",
			&chaincfg.MainNetParams, cashaddr.ErrNetworkMismatch},
		{"payload for another network", "qqq3728yw0y47sqn6l2na30mcw6zm78dzq8tpg8vdl",
			&chaincfg.MainNetParams, cashaddr.ErrInvalidChecksum},
		{"unknown prefix", "bitcoin:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a",
			&chaincfg.MainNetParams, cashaddr.ErrUnknownPrefix},
		{"reserved bit", "bitcoincash:spm2qsznhks23z7629mms6s4cwef74vcwv4glwxl5g",
			&chaincfg.MainNetParams, cashaddr.ErrReservedBit},
	}

	for _, test := range tests {
		_, err := cashaddr.DecodeAddress(test.addr, test.net)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: unexpected error: got %v, want %v", test.name,
				err, test.err)
		}
	}
}

func TestNewAddressErrors(t *testing.T) {
	_, err := cashaddr.NewAddressPubKeyHash(make([]byte, 21), &chaincfg.MainNetParams)
	require.ErrorIs(t, err, cashaddr.ErrInvalidHashSize)

	_, err = cashaddr.NewAddressScriptHashFromHash(nil, &chaincfg.MainNetParams)
	require.ErrorIs(t, err, cashaddr.ErrInvalidHashSize)

	unknown := chaincfg.Params{Name: "unregistered", CashAddressPrefix: "bchunknown"}
	_, err = cashaddr.NewAddressPubKeyHash(make([]byte, 20), &unknown)
	require.ErrorIs(t, err, cashaddr.ErrUnknownPrefix)
}

func TestNewAddressPubKey(t *testing.T) {
	// The secp256k1 generator point, compressed and uncompressed.
	compressed := hexToBytes("0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	uncompressed := hexToBytes("0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")

	addr, err := cashaddr.NewAddressPubKey(compressed, &chaincfg.MainNetParams)
	require.NoError(t, err)
	require.Equal(t, "bitcoincash:qp63uahgrxged4z5jswyt5dn5v3lzsem6cy4spdc2h", addr.EncodeAddress())
	require.Equal(t, hexToBytes("751e76e8199196d454941c45d1b3a323f1433bd6"), addr.Hash())

	// The uncompressed serialization hashes to a different address.
	addr2, err := cashaddr.NewAddressPubKey(uncompressed, &chaincfg.MainNetParams)
	require.NoError(t, err)
	require.NotEqual(t, addr.EncodeAddress(), addr2.EncodeAddress())
	require.Equal(t, cashaddr.Hash160(uncompressed), addr2.Hash())

	// Not a point on the curve.
	bad := make([]byte, len(compressed))
	copy(bad, compressed)
	bad[0] = 0x05
	_, err = cashaddr.NewAddressPubKey(bad, &chaincfg.MainNetParams)
	require.ErrorIs(t, err, cashaddr.ErrInvalidPubKey)

	_, err = cashaddr.NewAddressPubKey(nil, &chaincfg.MainNetParams)
	require.ErrorIs(t, err, cashaddr.ErrInvalidPubKey)
}

func TestNewAddressScriptHash(t *testing.T) {
	// OP_TRUE
	script := []byte{0x51}

	addr, err := cashaddr.NewAddressScriptHash(script, &chaincfg.TestNet3Params)
	require.NoError(t, err)

	want, err := cashaddr.NewAddressScriptHashFromHash(cashaddr.Hash160(script),
		&chaincfg.TestNet3Params)
	require.NoError(t, err)
	require.Equal(t, want, addr)
	require.True(t, addr.IsForNet(&chaincfg.TestNet3Params))
	require.False(t, addr.IsForNet(&chaincfg.MainNetParams))

	decoded, err := cashaddr.Decode(addr.EncodeAddress())
	require.NoError(t, err)
	require.Equal(t, cashaddr.P2SH, decoded.Type)
	require.Equal(t, "bchtest", decoded.Prefix)
}

func TestAddressHashIsCopied(t *testing.T) {
	hash := hexToBytes("76a04053bda0a88bda5177b86a15c3b29f559873")
	addr, err := cashaddr.NewAddressPubKeyHash(hash, &chaincfg.MainNetParams)
	require.NoError(t, err)

	hash[0] ^= 0xff
	require.Equal(t, "bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a", addr.String())
}

func TestHash160(t *testing.T) {
	require.Equal(t, hexToBytes("b472a266d0bd89c13706a4132ccfb16f7c3b9fcb"),
		cashaddr.Hash160(nil))
}
