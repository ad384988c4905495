package initialize

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/r3e-network/neo-service-layer/common"
	"github.com/r3e-network/neo-service-layer/config"
	"go.uber.org/zap"
)

// WalletSource provides Neo Express wallet lookups. Only local networks have
// one.
type WalletSource interface {
	WalletAccount(ctx context.Context, name string) (WalletAccount, bool, error)
}

// Funder transfers the fee token between named wallets. Only local networks
// have one.
type Funder interface {
	Transfer(ctx context.Context, amount, asset, from, to string) error
}

// GatewayReader reads back the gateway's on-chain service registry. Optional,
// used for post-initialization verification on RPC-backed networks.
type GatewayReader interface {
	ServiceContract(serviceType string) (util.Uint160, error)
}

// Prm groups all parameters of the Service Layer initialization procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Network profile the run targets.
	Network config.Network

	// Registry of deployed contracts, read-only.
	Registry Registry

	// Transport executing individual contract calls.
	Transport Transport

	// Wallets is nil on remote networks.
	Wallets WalletSource

	// Funder is nil on remote networks.
	Funder Funder

	// Gateway is nil when post-run verification is unavailable.
	Gateway GatewayReader

	// Services maps gateway service types to contract names, in
	// registration order.
	Services []config.GatewayService

	// Examples lists the example consumer contracts to wire.
	Examples []string

	// TEEPublicKey is the operator key to register when no wallet can
	// provide one (remote profiles).
	TEEPublicKey string
}

// Initialize runs the full initialization sequence over the deployed
// Service Layer contracts:
//
//  1. register the TEE operator account and the request/response services
//     with the ServiceLayerGateway,
//  2. point every service contract at the Gateway,
//  3. point every example consumer contract at the Gateway,
//  4. fund the test user account (local networks only).
//
// Every step is best-effort: a missing contract, absent wallet data or a
// failed call is logged and skipped, the sequence continues. Initialize
// returns an error only when the context is cancelled.
func Initialize(ctx context.Context, prm Prm) error {
	log := prm.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("run", uuid.NewString()))

	in := &initializer{
		prm:    prm,
		log:    log,
		caller: NewCaller(log, prm.Registry, prm.Transport),
	}

	log.Info("starting Service Layer initialization",
		zap.String("network", prm.Network.Name),
		zap.String("rpc", prm.Network.RPCURL),
		zap.Int("contracts", len(prm.Registry)))

	for _, phase := range []func(context.Context){
		in.setUpGateway,
		in.wireServices,
		in.wireExamples,
		in.fundTestAccounts,
		in.verifyGateway,
	} {
		if err := ctx.Err(); err != nil {
			return err
		}
		phase(ctx)
	}

	log.Info("initialization complete")

	names := make([]string, 0, len(prm.Registry))
	for name := range prm.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		log.Info("deployed contract", zap.String("name", name), zap.String("hash", prm.Registry[name]))
	}

	return nil
}

type initializer struct {
	prm    Prm
	log    *zap.Logger
	caller *Caller
}

// invoke runs a single contract call, downgrading any failure to a warning.
func (in *initializer) invoke(ctx context.Context, contract, method string, args ...string) {
	if _, err := in.caller.Invoke(ctx, contract, method, args...); err != nil {
		in.log.Warn("contract call failed, continuing",
			zap.String("contract", contract), zap.String("method", method), zap.Error(err))
	}
}

// setUpGateway registers the TEE operator account and the gateway services
// with the ServiceLayerGateway contract. Registrations are idempotent
// re-registrations, re-running them is safe.
func (in *initializer) setUpGateway(ctx context.Context) {
	in.log.Info("initializing ServiceLayerGateway...")

	if _, ok := in.prm.Registry.Hash(GatewayContract); !ok {
		in.log.Warn("ServiceLayerGateway is not deployed, skipping gateway setup")
		return
	}

	acc := in.teeAccount(ctx)
	if acc.ScriptHash == "" || acc.PublicKey == "" {
		in.log.Warn("missing TEE wallet info (script-hash/public-key), skipping TEE registration")
	} else if hashArg, err := common.ReverseHash160(acc.ScriptHash); err != nil {
		in.log.Warn("malformed TEE account script hash, skipping TEE registration",
			zap.String("hash", acc.ScriptHash), zap.Error(err))
	} else {
		pubKey := acc.PublicKey
		if !strings.HasPrefix(pubKey, "0x") {
			pubKey = "0x" + pubKey
		}

		in.log.Info("registering TEE account...", zap.String("account", acc.ScriptHash))
		in.invoke(ctx, GatewayContract, "registerTEEAccount", hashArg, pubKey)
	}

	for _, svc := range in.prm.Services {
		hash, ok := in.prm.Registry.Hash(svc.Contract)
		if !ok {
			continue
		}

		arg, err := common.ReverseHash160(hash)
		if err != nil {
			in.log.Warn("malformed contract hash in registry, skipping service registration",
				zap.String("contract", svc.Contract), zap.Error(err))
			continue
		}

		in.invoke(ctx, GatewayContract, "registerService", svc.Type, arg)
		in.log.Info("registered service",
			zap.String("type", svc.Type), zap.String("contract", svc.Contract), zap.String("hash", hash))
	}
}

// teeAccount resolves the TEE operator account: from the tee wallet on local
// networks, from the configured public key alone otherwise (which leaves the
// script hash empty and makes the caller skip registration).
func (in *initializer) teeAccount(ctx context.Context) WalletAccount {
	if in.prm.Wallets == nil {
		return WalletAccount{PublicKey: in.prm.TEEPublicKey}
	}

	acc, ok, err := in.prm.Wallets.WalletAccount(ctx, "tee")
	if err != nil {
		in.log.Warn("TEE wallet lookup failed", zap.Error(err))
		return WalletAccount{}
	}
	if !ok {
		return WalletAccount{}
	}

	if acc.PublicKey == "" {
		acc.PublicKey = in.prm.TEEPublicKey
	}

	return acc
}

// wireServices informs every deployed service contract of the gateway's
// address.
func (in *initializer) wireServices(ctx context.Context) {
	in.log.Info("initializing service contracts...")

	gatewayArg, ok := in.reversedHash(GatewayContract)
	if !ok {
		in.log.Warn("ServiceLayerGateway is not deployed, skipping service wiring")
		return
	}

	for _, svc := range in.prm.Services {
		if _, ok := in.prm.Registry.Hash(svc.Contract); !ok {
			continue
		}

		in.log.Info("configuring service contract...", zap.String("contract", svc.Contract))
		in.invoke(ctx, svc.Contract, "setGateway", gatewayArg)
	}
}

// wireExamples configures the example consumer contracts the same way, plus
// the DataFeeds address for the one example that consumes it.
func (in *initializer) wireExamples(ctx context.Context) {
	in.log.Info("initializing example contracts...")

	gatewayArg, _ := in.reversedHash(GatewayContract)
	dataFeedsArg, _ := in.reversedHash(DataFeedsContract)

	for _, example := range in.prm.Examples {
		if _, ok := in.prm.Registry.Hash(example); !ok {
			continue
		}

		in.log.Info("configuring example contract...", zap.String("contract", example))
		in.invoke(ctx, example, "setGateway", gatewayArg)

		if example == DeFiPriceConsumer && dataFeedsArg != "" {
			in.invoke(ctx, example, "setDataFeedsContract", dataFeedsArg)
		}
	}
}

// fundTestAccounts transfers GAS from the genesis wallet to the user wallet
// so that service fees can be paid during testing. Remote networks have no
// genesis wallet to draw from, so this is a local-only step.
func (in *initializer) fundTestAccounts(ctx context.Context) {
	in.log.Info("funding test accounts...")

	if !in.prm.Network.IsLocal() || in.prm.Funder == nil {
		in.log.Info("skipping test account funding, not a Neo Express network")
		return
	}

	if err := in.prm.Funder.Transfer(ctx, "100", "GAS", "genesis", "user"); err != nil {
		in.log.Warn("failed to fund user account", zap.Error(err))
		return
	}

	in.log.Info("funded user account", zap.String("amount", "100 GAS"))
}

// verifyGateway reads the gateway's service registry back and reports
// entries that do not match the deployment registry. Informational only.
func (in *initializer) verifyGateway(_ context.Context) {
	if in.prm.Gateway == nil {
		return
	}

	in.log.Info("verifying gateway service registrations...")

	for _, svc := range in.prm.Services {
		hash, ok := in.prm.Registry.Hash(svc.Contract)
		if !ok {
			continue
		}

		onChain, err := in.prm.Gateway.ServiceContract(svc.Type)
		if err != nil {
			in.log.Warn("reading registered service failed",
				zap.String("type", svc.Type), zap.Error(err))
			continue
		}

		want, err := common.ParseHash160(hash)
		if err != nil {
			in.log.Warn("malformed contract hash in registry",
				zap.String("contract", svc.Contract), zap.Error(err))
			continue
		}

		if !onChain.Equals(want) {
			in.log.Warn("registered service does not match deployment registry",
				zap.String("type", svc.Type),
				zap.Stringer("on-chain", onChain), zap.Stringer("registry", want))
			continue
		}

		in.log.Info("service registration verified", zap.String("type", svc.Type))
	}
}

// reversedHash returns the registry hash of the named contract in invocation
// byte order, or ok=false when the contract is absent.
func (in *initializer) reversedHash(contract string) (string, bool) {
	hash, ok := in.prm.Registry.Hash(contract)
	if !ok {
		return "", false
	}

	arg, err := common.ReverseHash160(hash)
	if err != nil {
		in.log.Warn("malformed contract hash in registry",
			zap.String("contract", contract), zap.Error(err))
		return "", false
	}

	return arg, true
}
