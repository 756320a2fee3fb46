// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// TestNet3 represents the test network (version 3).
const TestNet3 BitcoinNet = 0xf4f3e5f4

// TestNet3Params defines the network parameters for the test network
// (version 3).
var TestNet3Params = Params{
	Name:              "testnet3",
	Net:               TestNet3,
	DefaultPort:       "18333",
	CashAddressPrefix: "bchtest",
}
