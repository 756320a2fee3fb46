// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// TestNet represents the regression test network.
const TestNet BitcoinNet = 0xfabfb5da

// RegressionNetParams defines the network parameters for the regression test
// network.  Not to be confused with the test network (version 3), this
// network is sometimes simply called "testnet".
var RegressionNetParams = Params{
	Name:              "regtest",
	Net:               TestNet,
	DefaultPort:       "18444",
	CashAddressPrefix: "bchreg",
}
