package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPickNetwork(t *testing.T) {
	networks := DefaultNetworks()

	local, err := PickNetwork(networks, "neoexpress")
	require.NoError(t, err)
	require.True(t, local.IsLocal())
	require.EqualValues(t, 1234512345, local.Magic)

	remote, err := PickNetwork(networks, "testnet")
	require.NoError(t, err)
	require.False(t, remote.IsLocal())
	require.EqualValues(t, 877933390, remote.Magic)

	_, err = PickNetwork(networks, "mainnet")
	require.Error(t, err)
}

func TestLoadNetworks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "networks.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
privnet:
  rpc_url: http://10.0.0.1:30333
  network_magic: 42
testnet:
  name: testnet
  rpc_url: https://rpc.t5.n3.nspcc.ru:20331
  network_magic: 894710606
`), 0o600))

	networks, err := LoadNetworks(path)
	require.NoError(t, err)

	// new profile picks up its map key as name
	privnet, err := PickNetwork(networks, "privnet")
	require.NoError(t, err)
	require.Equal(t, "privnet", privnet.Name)
	require.EqualValues(t, 42, privnet.Magic)
	require.False(t, privnet.IsLocal())

	// built-in profile overridden
	testnet, err := PickNetwork(networks, "testnet")
	require.NoError(t, err)
	require.Equal(t, "https://rpc.t5.n3.nspcc.ru:20331", testnet.RPCURL)

	// built-in profile untouched
	_, err = PickNetwork(networks, "neoexpress")
	require.NoError(t, err)
}

func TestLoadNetworksErrors(t *testing.T) {
	_, err := LoadNetworks(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o600))
	_, err = LoadNetworks(path)
	require.Error(t, err)
}

func TestGatewayServices(t *testing.T) {
	services := GatewayServices()
	require.Len(t, services, 4)
	require.Equal(t, GatewayService{Type: "oracle", Contract: "OracleService"}, services[0])

	for _, svc := range services {
		require.NotEqual(t, "DataFeedsService", svc.Contract)
	}
}

func TestResolveNeoExpress(t *testing.T) {
	errNotFound := errors.New("not found")

	t.Run("PATH lookup wins", func(t *testing.T) {
		e := Env{NeoExpress: "neoxp-custom"}
		p, err := e.resolveNeoExpress(
			func(name string) (string, error) {
				require.Equal(t, "neoxp-custom", name)
				return "/usr/local/bin/neoxp-custom", nil
			},
			func() (string, error) { return "", errNotFound },
		)
		require.NoError(t, err)
		require.Equal(t, "/usr/local/bin/neoxp-custom", p)
	})

	t.Run("dotnet tools fallback", func(t *testing.T) {
		home := t.TempDir()
		toolDir := filepath.Join(home, ".dotnet", "tools")
		require.NoError(t, os.MkdirAll(toolDir, 0o700))
		require.NoError(t, os.WriteFile(filepath.Join(toolDir, "neoxp"), []byte("#!/bin/sh\n"), 0o700))

		var e Env
		p, err := e.resolveNeoExpress(
			func(string) (string, error) { return "", errNotFound },
			func() (string, error) { return home, nil },
		)
		require.NoError(t, err)
		require.Equal(t, filepath.Join(toolDir, "neoxp"), p)
	})

	t.Run("missing everywhere", func(t *testing.T) {
		var e Env
		_, err := e.resolveNeoExpress(
			func(string) (string, error) { return "", errNotFound },
			func() (string, error) { return t.TempDir(), nil },
		)
		require.ErrorContains(t, err, "dotnet tool install")
	})
}

func TestParseEnv(t *testing.T) {
	t.Setenv("NEOXP", "/opt/neoxp")
	t.Setenv("TEE_PUBKEY", "02abc")
	t.Setenv("DOTNET_ROOT", "/opt/dotnet")

	e, err := ParseEnv()
	require.NoError(t, err)
	require.Equal(t, "/opt/neoxp", e.NeoExpress)
	require.Equal(t, "02abc", e.TEEPublicKey)
	require.Equal(t, "/opt/dotnet", e.DotnetRoot)
}

func TestParseEnvDefaults(t *testing.T) {
	t.Setenv("NEOXP", "")
	os.Unsetenv("NEOXP")

	e, err := ParseEnv()
	require.NoError(t, err)
	require.Equal(t, "neoxp", e.NeoExpress)
}
