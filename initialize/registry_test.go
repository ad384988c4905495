package initialize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deployed_contracts.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"ServiceLayerGateway": "0x0102030405060708090a0b0c0d0e0f1011121314",
		"OracleService": "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	}`), 0o600))

	r, err := LoadRegistry(path)
	require.NoError(t, err)
	require.Len(t, r, 2)

	h, ok := r.Hash("OracleService")
	require.True(t, ok)
	require.Equal(t, "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", h)

	_, ok = r.Hash("VRFService")
	require.False(t, ok)
}

func TestLoadRegistryMissing(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorContains(t, err, "deploy contracts first")
}

func TestLoadRegistryMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deployed_contracts.json")
	require.NoError(t, os.WriteFile(path, []byte("[1,2,3]"), 0o600))

	_, err := LoadRegistry(path)
	require.Error(t, err)
}

func TestRegistryHashEmptyValue(t *testing.T) {
	r := Registry{"GasBankService": ""}

	_, ok := r.Hash("GasBankService")
	require.False(t, ok)
}
