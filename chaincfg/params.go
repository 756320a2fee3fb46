// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the networks an address can belong to and the
// prefixes that identify them.
package chaincfg

import (
	"errors"
	"strings"
)

// BitcoinNet identifies a network by the magic bytes of its wire protocol.
type BitcoinNet uint32

// Params defines a network by its parameters.  These parameters may be used
// by applications to differentiate networks as well as addresses for one
// network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net BitcoinNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// CashAddressPrefix is the prefix of every cash address on the
	// network.  It is stored lower case; addresses may carry it in either
	// case.
	CashAddressPrefix string
}

var (
	// ErrDuplicateNet describes an error where the parameters for a
	// network could not be set due to the network already being a standard
	// network or previously-registered into this package.
	ErrDuplicateNet = errors.New("duplicate network")

	// ErrUnknownPrefix describes an error where the provided prefix does
	// not identify any default or registered network.
	ErrUnknownPrefix = errors.New("unknown cash address prefix")
)

var (
	registeredNets = make(map[BitcoinNet]struct{})
	cashAddrNets   = make(map[string]*Params)
)

// Register registers the network parameters for a network.  This may error
// with ErrDuplicateNet if the network or its cash address prefix is already
// registered (either due to a previous Register call, or the network being
// one of the default networks).
//
// Network parameters should be registered into this package by a main package
// as early as possible.  Then, library packages may lookup networks or network
// parameters based on inputs and work regardless of the network being standard
// or not.
func Register(params *Params) error {
	prefix := strings.ToLower(params.CashAddressPrefix)
	if _, ok := registeredNets[params.Net]; ok {
		log.Debugf("Rejected network %s: magic %#08x already registered",
			params.Name, uint32(params.Net))
		return ErrDuplicateNet
	}
	if _, ok := cashAddrNets[prefix]; ok {
		log.Debugf("Rejected network %s: prefix %q already registered",
			params.Name, prefix)
		return ErrDuplicateNet
	}
	registeredNets[params.Net] = struct{}{}
	cashAddrNets[prefix] = params
	log.Debugf("Registered network %s with prefix %q", params.Name, prefix)
	return nil
}

// mustRegister performs the same function as Register except it panics if there
// is an error.  This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

// IsCashAddressPrefix returns whether the prefix, compared case
// insensitively, is known to identify a default or registered network.
func IsCashAddressPrefix(prefix string) bool {
	_, ok := cashAddrNets[strings.ToLower(prefix)]
	return ok
}

// ParamsForPrefix returns the parameters of the network identified by the
// prefix, compared case insensitively.  ErrUnknownPrefix is returned when no
// default or registered network uses it.
func ParamsForPrefix(prefix string) (*Params, error) {
	params, ok := cashAddrNets[strings.ToLower(prefix)]
	if !ok {
		return nil, ErrUnknownPrefix
	}
	return params, nil
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(&MainNetParams)
	mustRegister(&TestNet3Params)
	mustRegister(&RegressionNetParams)
}
