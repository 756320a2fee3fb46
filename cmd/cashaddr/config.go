// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/btcsuite/cashaddr"
	"github.com/btcsuite/cashaddr/chaincfg"
	"github.com/btcsuite/cashaddr/internal/log"
	"github.com/btcsuite/cashaddr/internal/version"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultAddrType    = "p2pkh"
	defaultLogLevel    = "info"
	defaultLogFilename = "cashaddr.log"
)

// config defines the configuration options for cashaddr.
//
// See loadConfig for details on the configuration load process.
type config struct {
	TestNet     bool   `long:"testnet" description:"Use the test network"`
	RegTest     bool   `long:"regtest" description:"Use the regression test network"`
	AddrType    string `short:"t" long:"type" description:"Address type to encode {p2pkh, p2sh}"`
	Upper       bool   `short:"u" long:"upper" description:"Print encoded addresses in upper case"`
	LogDir      string `long:"logdir" description:"Directory to log output in addition to stderr"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`

	params   *chaincfg.Params
	addrType cashaddr.AddressType
}

// errShowed is returned by loadConfig when it has already printed what the
// user asked for and the program should exit successfully.
var errShowed = errors.New("nothing left to do")

// loadConfig initializes and parses the config using command line options.
// Help, version and subsystem listings are written to w.  Usage is written to
// errW when the options do not parse.
func loadConfig(args []string, w, errW io.Writer) (*config, []string, error) {
	// Default config.
	cfg := config{
		AddrType:   defaultAddrType,
		DebugLevel: defaultLogLevel,
		params:     &chaincfg.MainNetParams,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = "[OPTIONS] <encode|decode|pubkey> [ARGS...]"
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			fmt.Fprintln(w, err)
			return nil, nil, errShowed
		}
		parser.WriteHelp(errW)
		return nil, nil, err
	}

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		fmt.Fprintf(w, "%s version %s\n", appName, version.String())
		return nil, nil, errShowed
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Fprintln(w, "Supported subsystems", log.SupportedSubsystems())
		return nil, nil, errShowed
	}

	// Multiple networks can't be selected simultaneously.
	funcName := "loadConfig"
	numNets := 0
	if cfg.TestNet {
		numNets++
		cfg.params = &chaincfg.TestNet3Params
	}
	if cfg.RegTest {
		numNets++
		cfg.params = &chaincfg.RegressionNetParams
	}
	if numNets > 1 {
		str := "%s: the testnet and regtest params can't be used " +
			"together -- choose one of the two"
		return nil, nil, fmt.Errorf(str, funcName)
	}

	cfg.addrType, err = cashaddr.ParseAddressType(cfg.AddrType)
	if err != nil {
		str := "%s: the specified address type [%v] is invalid -- " +
			"supported types [p2pkh p2sh]"
		return nil, nil, fmt.Errorf(str, funcName, cfg.AddrType)
	}

	// Initialize log rotation.  After log rotation has been initialized,
	// the logger variables may be used.
	if cfg.LogDir != "" {
		logDir := filepath.Join(cfg.LogDir, cfg.params.Name)
		err := log.InitLogRotator(filepath.Join(logDir, defaultLogFilename))
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %v", funcName, err)
		}
	}

	// Parse, validate, and set debug log level(s).
	if err := log.ParseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return nil, nil, fmt.Errorf("%s: %v", funcName, err)
	}

	return &cfg, remainingArgs, nil
}
