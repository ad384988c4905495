// Package gateway contains RPC wrappers for the ServiceLayerGateway
// contract, the on-chain directory of registered Service Layer services.
package gateway

import (
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Invoker is used by ContractReader to perform test invocations of the
// gateway contract.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// ContractReader reads ServiceLayerGateway state via test invocations. It
// produces no transactions and changes no chain state.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// NewReader creates a ContractReader using the given invoker and the
// gateway's script hash.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker: invoker, hash: hash}
}

// Hash returns the gateway's script hash.
func (c *ContractReader) Hash() util.Uint160 {
	return c.hash
}

// ServiceContract returns the contract registered under the given service
// type tag ("oracle", "vrf", "automation", "confidential").
func (c *ContractReader) ServiceContract(serviceType string) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "getServiceContract", serviceType))
}

// IsTEEAccount reports whether the account is a registered TEE operator.
func (c *ContractReader) IsTEEAccount(acc util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isTEEAccount", acc))
}
