// Package initialize wires an already-deployed set of Service Layer
// contracts together: it registers the TEE operator and the request/response
// services with the ServiceLayerGateway, points service and example
// contracts at the Gateway and funds test accounts on local networks.
//
// The procedure is sequential and best-effort. A missing optional
// prerequisite or a failed contract call only skips its own step, it never
// aborts the run.
package initialize

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Well-known logical contract names from the deployment registry.
const (
	GatewayContract   = "ServiceLayerGateway"
	DataFeedsContract = "DataFeedsService"

	// DeFiPriceConsumer is the one example contract that additionally needs
	// the DataFeeds contract address wired in.
	DeFiPriceConsumer = "DeFiPriceConsumer"
)

// Registry maps logical contract names to their deployed script hashes in
// display (registry) byte order. It is loaded once and read-only afterwards.
type Registry map[string]string

// LoadRegistry reads the deployed contracts registry produced by the
// deployment scripts. A missing file is fatal for the whole run.
func LoadRegistry(path string) (Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("deployed contracts registry %s not found, deploy contracts first: %w", path, err)
		}
		return nil, fmt.Errorf("read deployed contracts registry: %w", err)
	}

	var r Registry
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse deployed contracts registry %s: %w", path, err)
	}

	return r, nil
}

// Hash returns the deployed script hash of the named contract.
func (r Registry) Hash(name string) (string, bool) {
	h, ok := r[name]
	return h, ok && h != ""
}
