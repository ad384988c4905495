package initialize

import (
	"context"
	"fmt"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/r3e-network/neo-service-layer/common"
	"go.uber.org/zap"
)

// RPCInvoker performs informational invokefunction calls against a remote
// Neo RPC endpoint. Nothing is signed or relayed: the response reflects a
// test execution only, which is all the remote profiles currently need.
type RPCInvoker struct {
	log *zap.Logger
	inv *invoker.Invoker

	closer func()
}

// NewRPCInvoker dials the RPC endpoint. Connection and requests share a 15s
// timeout, matching the rest of the Neo tooling here.
func NewRPCInvoker(ctx context.Context, log *zap.Logger, endpoint string) (*RPCInvoker, error) {
	c, err := rpcclient.New(ctx, endpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial %s: %w", endpoint, err)
	}

	r := newRPCInvoker(log, c)
	r.closer = c.Close

	return r, nil
}

func newRPCInvoker(log *zap.Logger, client invoker.RPCInvoke) *RPCInvoker {
	if log == nil {
		log = zap.NewNop()
	}

	return &RPCInvoker{log: log, inv: invoker.New(client, nil)}
}

// Invoker exposes the underlying test-execution invoker for typed contract
// wrappers sharing the connection.
func (r *RPCInvoker) Invoker() *invoker.Invoker {
	return r.inv
}

// InvokeContract implements Transport with an invokefunction request. The
// raw decoded invocation result is returned as-is, interpretation is left to
// the caller.
func (r *RPCInvoker) InvokeContract(_ context.Context, hash, method string, args []string) (Result, error) {
	u, err := common.ParseHash160(hash)
	if err != nil {
		return Result{}, err
	}

	params := make([]any, len(args))
	for i := range args {
		params[i] = args[i]
	}

	r.log.Debug("test-executing contract function",
		zap.Stringer("contract", u), zap.String("method", method))

	res, err := r.inv.Call(u, method, params...)
	if err != nil {
		return Result{}, fmt.Errorf("invokefunction: %w", err)
	}

	return Result{Invocation: res}, nil
}

// Close releases the underlying RPC connection.
func (r *RPCInvoker) Close() {
	if r.closer != nil {
		r.closer()
	}
}
