// Package config holds the static configuration of the Service Layer
// initialization procedure: network profiles, the gateway service table and
// environment-derived overrides. Everything here is plain data passed into
// the orchestrator, there is no package-level mutable state.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default file locations relative to the repository root.
const (
	DefaultRegistryPath   = "deploy/config/deployed_contracts.json"
	DefaultNeoExpressPath = "deploy/config/default.neo-express"
)

// Network is a single network profile the initializer can run against. A
// non-empty NeoExpressConfig marks a local Neo Express network driven through
// the neoxp tool, otherwise calls go through JSON-RPC.
type Network struct {
	Name             string `yaml:"name"`
	RPCURL           string `yaml:"rpc_url"`
	Magic            uint32 `yaml:"network_magic"`
	NeoExpressConfig string `yaml:"neo_express_config,omitempty"`
}

// IsLocal reports whether the profile describes a local Neo Express network.
func (n Network) IsLocal() bool {
	return n.NeoExpressConfig != ""
}

// DefaultNetworks returns the built-in network profiles.
func DefaultNetworks() map[string]Network {
	return map[string]Network{
		"neoexpress": {
			Name:             "neoexpress",
			RPCURL:           "http://127.0.0.1:50012",
			Magic:            1234512345,
			NeoExpressConfig: DefaultNeoExpressPath,
		},
		"testnet": {
			Name:   "testnet",
			RPCURL: "https://testnet1.neo.coz.io:443",
			Magic:  877933390,
		},
	}
}

// LoadNetworks reads network profiles from a YAML file and merges them over
// the built-in ones. Profiles with an empty name inherit their map key.
func LoadNetworks(path string) (map[string]Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read network profiles: %w", err)
	}

	var loaded map[string]Network
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parse network profiles %s: %w", path, err)
	}

	networks := DefaultNetworks()
	for name, n := range loaded {
		if n.Name == "" {
			n.Name = name
		}
		networks[name] = n
	}

	return networks, nil
}

// PickNetwork selects a profile by name, failing closed on unknown names.
func PickNetwork(networks map[string]Network, name string) (Network, error) {
	n, ok := networks[name]
	if !ok {
		return Network{}, fmt.Errorf("unknown network %q", name)
	}

	return n, nil
}

// GatewayService binds a gateway service-type tag to the contract registered
// under it.
type GatewayService struct {
	Type     string
	Contract string
}

// GatewayServices returns the request/response services routed through the
// Gateway, in registration order. DataFeeds is a push-style contract and is
// not invoked via Gateway.requestService, so it is absent here.
func GatewayServices() []GatewayService {
	return []GatewayService{
		{Type: "oracle", Contract: "OracleService"},
		{Type: "vrf", Contract: "VRFService"},
		{Type: "automation", Contract: "NeoFlowService"},
		{Type: "confidential", Contract: "ConfidentialService"},
	}
}

// ExampleContracts returns the example consumer contracts wired to the
// Gateway during initialization.
func ExampleContracts() []string {
	return []string{"ExampleConsumer", "VRFLottery", "DeFiPriceConsumer"}
}
