// Command slinit initializes an already-deployed set of Service Layer
// contracts: it registers the TEE operator and services with the
// ServiceLayerGateway, wires service and example contracts to the gateway
// and funds test accounts on local networks.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/r3e-network/neo-service-layer/common"
	"github.com/r3e-network/neo-service-layer/config"
	"github.com/r3e-network/neo-service-layer/initialize"
	"github.com/r3e-network/neo-service-layer/rpc/gateway"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

func main() {
	app := cli.NewApp()
	app.Name = "slinit"
	app.Usage = "initialize deployed Service Layer contracts"
	app.ArgsUsage = "[network]"
	app.Description = `Runs the Service Layer initialization sequence against the selected
network profile (default: neoexpress). Individual steps are best-effort,
only missing prerequisites such as the contracts registry abort the run.`
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "registry, r",
			Value: config.DefaultRegistryPath,
			Usage: "deployed contracts registry `FILE`",
		},
		cli.StringFlag{
			Name:  "networks, n",
			Usage: "YAML `FILE` with additional network profiles",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	networkName := c.Args().First()
	if networkName == "" {
		networkName = "neoexpress"
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	envCfg, err := config.ParseEnv()
	if err != nil {
		return err
	}

	networks := config.DefaultNetworks()
	if path := c.String("networks"); path != "" {
		if networks, err = config.LoadNetworks(path); err != nil {
			return err
		}
	}

	network, err := config.PickNetwork(networks, networkName)
	if err != nil {
		return err
	}

	registry, err := initialize.LoadRegistry(c.String("registry"))
	if err != nil {
		return err
	}

	ctx := context.Background()

	prm := initialize.Prm{
		Logger:       log,
		Network:      network,
		Registry:     registry,
		Services:     config.GatewayServices(),
		Examples:     config.ExampleContracts(),
		TEEPublicKey: envCfg.TEEPublicKey,
	}

	if network.IsLocal() {
		neoxp, err := initialize.NewNeoExpress(log, network, envCfg)
		if err != nil {
			return err
		}

		prm.Transport = neoxp
		prm.Wallets = neoxp
		prm.Funder = neoxp
	} else {
		rpcInv, err := initialize.NewRPCInvoker(ctx, log, network.RPCURL)
		if err != nil {
			return err
		}
		defer rpcInv.Close()

		prm.Transport = rpcInv

		if gatewayHash, ok := registry.Hash(initialize.GatewayContract); ok {
			u, err := common.ParseHash160(gatewayHash)
			if err != nil {
				return fmt.Errorf("gateway hash in registry: %w", err)
			}
			prm.Gateway = gateway.NewReader(rpcInv.Invoker(), u)
		}
	}

	return initialize.Initialize(ctx, prm)
}
