package initialize

import (
	"context"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"go.uber.org/zap"
)

// Result carries whatever a transport produced for a single contract call.
// Exactly one of the fields is meaningful depending on the transport and the
// outcome.
type Result struct {
	// NotFound reports that the target contract is absent from the registry
	// and the call was skipped.
	NotFound bool
	// Output is the captured tool output of a local neoxp invocation.
	Output string
	// Invocation is the raw decoded response of a remote invokefunction
	// call. It is returned uninterpreted.
	Invocation *result.Invoke
}

// Transport executes a single contract method call against a script hash in
// registry byte order. Argument strings are passed through verbatim, so any
// Hash160 among them must already be reversed by the caller.
type Transport interface {
	InvokeContract(ctx context.Context, hash, method string, args []string) (Result, error)
}

// Caller resolves logical contract names through the registry before handing
// the call to the transport. Unknown names are reported and skipped, never
// raised: deployments are allowed to carry a subset of the contracts.
type Caller struct {
	log       *zap.Logger
	registry  Registry
	transport Transport
}

// NewCaller combines a registry with an invocation transport.
func NewCaller(log *zap.Logger, registry Registry, transport Transport) *Caller {
	if log == nil {
		log = zap.NewNop()
	}

	return &Caller{log: log, registry: registry, transport: transport}
}

// Invoke calls method on the named contract.
func (c *Caller) Invoke(ctx context.Context, contract, method string, args ...string) (Result, error) {
	hash, ok := c.registry.Hash(contract)
	if !ok {
		c.log.Warn("contract not found in deployed registry, skipping call",
			zap.String("contract", contract), zap.String("method", method))
		return Result{NotFound: true}, nil
	}

	res, err := c.transport.InvokeContract(ctx, hash, method, args)
	if err != nil {
		return res, fmt.Errorf("invoke %s.%s: %w", contract, method, err)
	}

	return res, nil
}
