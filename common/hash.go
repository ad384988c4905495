// Package common contains helpers shared by the Service Layer initialization
// tooling: Hash160 byte-order normalization and Neo N3 address conversions.
package common

import (
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/util"
)

// ReverseHash160 flips the byte order of a 20-byte hash given as a hex string
// (optionally 0x-prefixed) and returns the 0x-prefixed result. Neo tooling is
// inconsistent about endianness between RPC/display output and contract
// invocation arguments: deployment registries store hashes in display order,
// while `neoxp contract run` interprets Hash160 arguments in the opposite
// byte order. Every hash passed as an invocation argument must go through
// this normalization exactly once.
//
// The empty string is treated as an absent hash and maps to the empty string.
func ReverseHash160(s string) (string, error) {
	if s == "" {
		return "", nil
	}

	u, err := util.Uint160DecodeStringBE(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return "", fmt.Errorf("decode Hash160 %q: %w", s, err)
	}

	return "0x" + u.StringLE(), nil
}

// ParseHash160 decodes a registry-format (display order, optionally
// 0x-prefixed) hash string into util.Uint160.
func ParseHash160(s string) (util.Uint160, error) {
	u, err := util.Uint160DecodeStringLE(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return u, fmt.Errorf("decode Hash160 %q: %w", s, err)
	}

	return u, nil
}
