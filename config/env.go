package config

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Env groups the environment-variable overrides recognized by the
// initializer.
type Env struct {
	// NeoExpress is the neoxp binary name or path.
	NeoExpress string `env:"NEOXP" envDefault:"neoxp"`
	// TEEPublicKey is the TEE operator key used on remote networks where no
	// Neo Express wallet is available.
	TEEPublicKey string `env:"TEE_PUBKEY"`
	// DotnetRoot points at the dotnet installation hosting neoxp.
	DotnetRoot string `env:"DOTNET_ROOT"`
}

// ParseEnv loads overrides from the process environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("parse env: %w", err)
	}

	return e, nil
}

// ResolveNeoExpress locates the neoxp binary: the NEOXP override (or plain
// "neoxp") looked up on PATH first, then the dotnet-tool install location
// under the home directory. Absence is fatal for local profiles.
func (e Env) ResolveNeoExpress() (string, error) {
	return e.resolveNeoExpress(exec.LookPath, os.UserHomeDir)
}

func (e Env) resolveNeoExpress(lookPath func(string) (string, error), homeDir func() (string, error)) (string, error) {
	tool := e.NeoExpress
	if tool == "" {
		tool = "neoxp"
	}

	if p, err := lookPath(tool); err == nil {
		return p, nil
	}

	if home, err := homeDir(); err == nil {
		p := filepath.Join(home, ".dotnet", "tools", "neoxp")
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%s not found: install with `dotnet tool install -g Neo.Express` and ensure $HOME/.dotnet/tools is on PATH", tool)
}

// ToolEnv returns the environment for neoxp subprocesses. DOTNET_ROOT is
// defaulted to ~/.dotnet when unset and a dotnet-local install is present,
// which dotnet-tool builds of neoxp require.
func (e Env) ToolEnv() []string {
	environ := os.Environ()
	if e.DotnetRoot != "" {
		return environ
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return environ
	}

	root := filepath.Join(home, ".dotnet")
	if _, err := os.Stat(filepath.Join(root, "dotnet")); err == nil {
		environ = append(environ, "DOTNET_ROOT="+root)
	}

	return environ
}
