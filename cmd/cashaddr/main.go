// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/btcsuite/cashaddr"
	"github.com/btcsuite/cashaddr/internal/log"
)

const appName = "cashaddr"

// errRejected is returned when at least one input of a command could not be
// converted.
var errRejected = errors.New("one or more inputs were rejected")

// command converts a single input into the line printed for it.
type command func(cfg *config, input string) (string, error)

var commands = map[string]command{
	"encode": encodeHash,
	"decode": decodeAddr,
	"pubkey": encodePubKey,
}

// outputPrefix returns the prefix of the configured network in the case
// requested by the config.
func outputPrefix(cfg *config) string {
	if cfg.Upper {
		return strings.ToUpper(cfg.params.CashAddressPrefix)
	}
	return cfg.params.CashAddressPrefix
}

// encodeHash encodes a hex hash as an address of the configured type.
func encodeHash(cfg *config, input string) (string, error) {
	hash, err := hex.DecodeString(input)
	if err != nil {
		return "", fmt.Errorf("invalid hex: %v", err)
	}
	return cashaddr.Encode(outputPrefix(cfg), cfg.addrType, hash)
}

// decodeAddr decodes an address into its prefix, type and hex hash.  An
// address without a prefix is taken to be on the configured network.
func decodeAddr(cfg *config, input string) (string, error) {
	if !strings.ContainsRune(input, ':') {
		addr, err := cashaddr.DecodeAddress(input, cfg.params)
		if err != nil {
			return "", err
		}
		input = addr.EncodeAddress()
	}
	decoded, err := cashaddr.Decode(input)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %v %x", decoded.Prefix, decoded.Type,
		decoded.Hash), nil
}

// encodePubKey encodes the P2PKH address of a hex serialized public key.
func encodePubKey(cfg *config, input string) (string, error) {
	pubKey, err := hex.DecodeString(input)
	if err != nil {
		return "", fmt.Errorf("invalid hex: %v", err)
	}
	addr, err := cashaddr.NewAddressPubKey(pubKey, cfg.params)
	if err != nil {
		return "", err
	}
	if cfg.Upper {
		return strings.ToUpper(addr.EncodeAddress()), nil
	}
	return addr.EncodeAddress(), nil
}

// readLines returns the non-empty trimmed lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

// run parses args and executes the requested command.  Results go to stdout
// one line per input, rejections to stderr.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, args, err := loadConfig(args, stdout, stderr)
	if errors.Is(err, errShowed) {
		return nil
	}
	if err != nil {
		return err
	}
	defer func() {
		if log.LogRotator != nil {
			log.LogRotator.Close()
		}
	}()

	if len(args) == 0 {
		return fmt.Errorf("no command specified -- choose one of encode, " +
			"decode or pubkey")
	}
	name, inputs := args[0], args[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	if len(inputs) == 0 {
		if name != "decode" {
			return fmt.Errorf("%s requires at least one argument", name)
		}
		inputs, err = readLines(stdin)
		if err != nil {
			return fmt.Errorf("unable to read stdin: %v", err)
		}
	}

	log.ToolLog.Debugf("Running %s on %d %s (%s)", name, len(inputs),
		log.PickNoun(uint64(len(inputs)), "input", "inputs"),
		cfg.params.Name)

	var rejected uint64
	for _, input := range inputs {
		out, err := cmd(cfg, input)
		if err != nil {
			rejected++
			fmt.Fprintf(stderr, "%s: %v\n", input, err)
			var vErr cashaddr.ValidationError
			if errors.As(err, &vErr) {
				log.ToolLog.Debugf("Rejected %s: %v", input, vErr.Err)
			}
			continue
		}
		fmt.Fprintln(stdout, out)
	}

	if rejected > 0 {
		log.ToolLog.Warnf("Rejected %d %s", rejected,
			log.PickNoun(rejected, "input", "inputs"))
		return errRejected
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errRejected) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
