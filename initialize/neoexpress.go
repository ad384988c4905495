package initialize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/r3e-network/neo-service-layer/common"
	"github.com/r3e-network/neo-service-layer/config"
	"go.uber.org/zap"
)

// WalletAccount is a single account of a Neo Express wallet as reported by
// `neoxp wallet list --json`.
type WalletAccount struct {
	Address    string `json:"address"`
	ScriptHash string `json:"script-hash"`
	PublicKey  string `json:"public-key"`
}

// walletEntry absorbs the two shapes neoxp emits per wallet: most wallets
// map to a list of accounts, the genesis wallet maps to a single account
// object. The union is resolved here at the boundary so the rest of the code
// deals with a normalized account list only.
type walletEntry struct {
	accounts []WalletAccount
}

func (e *walletEntry) UnmarshalJSON(b []byte) error {
	if err := json.Unmarshal(b, &e.accounts); err == nil {
		return nil
	}

	var single WalletAccount
	if err := json.Unmarshal(b, &single); err != nil {
		return err
	}

	e.accounts = []WalletAccount{single}

	return nil
}

// runCommandFunc runs a subprocess and returns its captured stdout/stderr.
type runCommandFunc func(ctx context.Context, environ []string, name string, args ...string) (stdout, stderr string, err error)

func runCommand(ctx context.Context, environ []string, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = environ

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	return stdout.String(), stderr.String(), err
}

// NeoExpress drives a local Neo Express network through the neoxp tool. It
// implements Transport for contract calls and additionally provides wallet
// lookups and token transfers, both neoxp-only operations.
type NeoExpress struct {
	log        *zap.Logger
	toolPath   string
	configPath string
	environ    []string

	run runCommandFunc
}

// NewNeoExpress resolves the neoxp binary and returns a runner bound to the
// network's Neo Express configuration file. A missing binary is fatal.
func NewNeoExpress(log *zap.Logger, network config.Network, env config.Env) (*NeoExpress, error) {
	toolPath, err := env.ResolveNeoExpress()
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &NeoExpress{
		log:        log,
		toolPath:   toolPath,
		configPath: network.NeoExpressConfig,
		environ:    env.ToolEnv(),
		run:        runCommand,
	}, nil
}

// InvokeContract implements Transport via `neoxp contract run`, signing with
// the owner account. Nonzero exit status is a hard failure for this call
// with the captured output surfaced in the error.
func (x *NeoExpress) InvokeContract(ctx context.Context, hash, method string, args []string) (Result, error) {
	cmdArgs := append([]string{
		"contract", "run",
		"-i", x.configPath,
		"-a", "owner",
		hash, method,
	}, args...)

	stdout, stderr, err := x.run(ctx, x.environ, x.toolPath, cmdArgs...)
	if err != nil {
		return Result{}, fmt.Errorf("neoxp invoke failed: %s: %w", firstNonEmpty(stderr, stdout), err)
	}

	return Result{Output: stdout}, nil
}

// WalletAccount returns the first account of the named Neo Express wallet.
// The second return value is false when the wallet is absent or empty.
// Accounts lacking a script-hash field but carrying an address get the hash
// derived from the address.
func (x *NeoExpress) WalletAccount(ctx context.Context, name string) (WalletAccount, bool, error) {
	stdout, stderr, err := x.run(ctx, x.environ, x.toolPath,
		"wallet", "list", "-i", x.configPath, "--json")
	if err != nil {
		return WalletAccount{}, false, fmt.Errorf("list wallets: %s: %w", firstNonEmpty(stderr, stdout), err)
	}

	var wallets map[string]walletEntry
	if err := json.Unmarshal([]byte(stdout), &wallets); err != nil {
		return WalletAccount{}, false, fmt.Errorf("parse wallet list JSON: %w", err)
	}

	entry, ok := wallets[name]
	if !ok || len(entry.accounts) == 0 {
		return WalletAccount{}, false, nil
	}

	acc := entry.accounts[0]
	if acc.ScriptHash == "" && acc.Address != "" {
		u, err := common.AddressToScriptHash(acc.Address)
		if err != nil {
			return WalletAccount{}, false, fmt.Errorf("derive script hash of wallet %q from address: %w", name, err)
		}
		acc.ScriptHash = "0x" + u.StringLE()
	}

	return acc, true, nil
}

// Transfer moves amount of the named asset between Neo Express wallets.
func (x *NeoExpress) Transfer(ctx context.Context, amount, asset, from, to string) error {
	stdout, stderr, err := x.run(ctx, x.environ, x.toolPath,
		"transfer", amount, asset, from, to, "-i", x.configPath)
	if err != nil {
		return fmt.Errorf("neoxp transfer failed: %s: %w", firstNonEmpty(stderr, stdout), err)
	}

	return nil
}

func firstNonEmpty(a, b string) string {
	if s := strings.TrimSpace(a); s != "" {
		return s
	}

	return strings.TrimSpace(b)
}
