package common

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestAddressRoundTrip(t *testing.T) {
	var u util.Uint160
	for i := range u {
		u[i] = byte(i + 1)
	}

	addr := ScriptHashToAddress(u)
	require.NotEmpty(t, addr)
	require.Equal(t, byte('N'), addr[0]) // version 0x35 addresses start with N

	got, err := AddressToScriptHash(addr)
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestAddressToScriptHashRejectsGarbage(t *testing.T) {
	var u util.Uint160
	addr := ScriptHashToAddress(u)

	t.Run("corrupted checksum", func(t *testing.T) {
		corrupted := []byte(addr)
		if corrupted[len(corrupted)-1] == 'x' {
			corrupted[len(corrupted)-1] = 'y'
		} else {
			corrupted[len(corrupted)-1] = 'x'
		}

		_, err := AddressToScriptHash(string(corrupted))
		require.Error(t, err)
	})

	t.Run("not base58", func(t *testing.T) {
		_, err := AddressToScriptHash("0OIl")
		require.Error(t, err)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := AddressToScriptHash("NKuyBkoGdZZSLyPbJEetheRhMjez")
		require.Error(t, err)
	})
}
