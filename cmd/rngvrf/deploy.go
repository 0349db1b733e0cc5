package rngvrf

import (
	"encoding/json"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	deploy "github.com/rngvrf/rngvrf-deploy"
	"github.com/rngvrf/rngvrf-deploy/pkg/config"
	"github.com/rngvrf/rngvrf-deploy/pkg/contract"
	"github.com/rngvrf/rngvrf-deploy/sdk"
)

func runDeploy(cmd *cobra.Command, v *viper.Viper, dial Dialer) error {
	logger, err := sdk.NewLogger(v.GetBool(flagDebug))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With("run", uuid.NewString())

	ctx, cancel := withTimeout(cmd.Context(), v.GetDuration(flagTimeout))
	defer cancel()
	ctx = sdk.WithLogger(ctx, logger)

	// Load networks
	networks, err := config.LoadNetworks(v.GetString(flagConfig))
	if err != nil {
		return err
	}
	network, err := networks.Resolve(v.GetString(flagNetwork))
	if err != nil {
		return err
	}
	if networks.Solidity != "" {
		logger.Debugw("Artifacts compiled with pinned solidity version", "solidity", networks.Solidity)
	}

	// Load credentials
	env, err := config.LoadEnv(v.GetStringSlice(flagEnvFile)...)
	if err != nil {
		return err
	}
	keys, err := config.ResolveKeys(network, env)
	if err != nil {
		return err
	}

	// Load constructor parameters
	params, err := config.LoadParams(v.GetString(flagParams))
	if err != nil {
		return err
	}

	client, err := dial(ctx, network)
	if err != nil {
		return err
	}
	if c, ok := client.(interface{ Close() }); ok {
		defer c.Close()
	}

	out := cmd.OutOrStdout()
	jsonOut := v.GetBool(flagJSON)

	// The text report is replaced by the JSON document in json mode.
	report := out
	if jsonOut {
		report = io.Discard
	}

	opts := []deploy.Option{
		deploy.WithContractName(v.GetString(flagContract)),
		deploy.WithOutput(report),
		deploy.WithGasLimit(v.GetUint64(flagGasLimit)),
	}
	if v.GetBool(flagWait) {
		opts = append(opts, deploy.WithConfirmation(v.GetDuration(flagConfirmInterval)))
	}

	registry := contract.NewDirRegistry(v.GetString(flagArtifacts))

	result, err := deploy.NewDeployer(network, client, keys, registry, *params, opts...).Deploy(ctx)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(result)
	}

	return nil
}
