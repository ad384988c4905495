package common

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// N3AddressVersion is the address version prefix used by Neo N3 networks.
const N3AddressVersion = 0x35

// ErrBadChecksum is returned when a base58check string fails checksum
// verification.
var ErrBadChecksum = errors.New("invalid base58check checksum")

// ScriptHashToAddress converts a script hash to its Neo N3 base58check
// address representation.
func ScriptHashToAddress(u util.Uint160) string {
	buf := make([]byte, 0, 1+util.Uint160Size+4)
	buf = append(buf, N3AddressVersion)
	buf = append(buf, u.BytesBE()...)
	buf = append(buf, checksum(buf)...)

	return base58.Encode(buf)
}

// AddressToScriptHash converts a Neo N3 base58check address to the script
// hash it encodes. It is used to normalize wallet entries that carry an
// address but no script-hash field.
func AddressToScriptHash(addr string) (util.Uint160, error) {
	var u util.Uint160

	buf, err := base58.Decode(addr)
	if err != nil {
		return u, fmt.Errorf("base58 decode address: %w", err)
	}
	if len(buf) != 1+util.Uint160Size+4 {
		return u, fmt.Errorf("expected address length of %d got %d", 1+util.Uint160Size+4, len(buf))
	}
	if !bytes.Equal(buf[len(buf)-4:], checksum(buf[:len(buf)-4])) {
		return u, ErrBadChecksum
	}
	if buf[0] != N3AddressVersion {
		return u, fmt.Errorf("unexpected address version %d", buf[0])
	}

	return util.Uint160DecodeBytesBE(buf[1 : 1+util.Uint160Size])
}

// first 4 bytes of double-SHA256, the base58check convention.
func checksum(b []byte) []byte {
	h := sha256.Sum256(b)
	h = sha256.Sum256(h[:])

	return h[:4]
}
