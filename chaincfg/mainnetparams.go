// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// MainNet represents the main network.
const MainNet BitcoinNet = 0xe8f3e1e3

// MainNetParams defines the network parameters for the main network.
var MainNetParams = Params{
	Name:              "mainnet",
	Net:               MainNet,
	DefaultPort:       "8333",
	CashAddressPrefix: "bitcoincash",
}
