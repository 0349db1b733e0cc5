package rngvrf

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	deploy "github.com/rngvrf/rngvrf-deploy"
	"github.com/rngvrf/rngvrf-deploy/pkg/config"
	"github.com/rngvrf/rngvrf-deploy/sdk"
	"github.com/rngvrf/rngvrf-deploy/sdk/evm"
	"github.com/rngvrf/rngvrf-deploy/types"
)

// Version is set at build time.
var Version = "dev"

// Flag names. Each flag can also be set through an RNGVRF_ prefixed environment variable,
// e.g. RNGVRF_NETWORK or RNGVRF_ENV_FILE.
const (
	flagConfig          = "config"
	flagNetwork         = "network"
	flagParams          = "params"
	flagArtifacts       = "artifacts"
	flagContract        = "contract"
	flagEnvFile         = "env-file"
	flagGasLimit        = "gas-limit"
	flagWait            = "wait"
	flagConfirmInterval = "confirm-interval"
	flagTimeout         = "timeout"
	flagJSON            = "json"
	flagDebug           = "debug"
)

// Dialer connects to the JSON-RPC endpoint of a network.
type Dialer func(ctx context.Context, network types.Network) (sdk.EVMChainClient, error)

// DialNetwork dials the network's URL with ethclient.
func DialNetwork(ctx context.Context, network types.Network) (sdk.EVMChainClient, error) {
	client, err := evm.Dial(ctx, network)
	if err != nil {
		return nil, err
	}

	return client, nil
}

// Execute runs the CLI and returns the process exit code. Errors are written to stderr.
func Execute(args []string, stdout, stderr io.Writer) int {
	return execute(context.Background(), args, stdout, stderr, DialNetwork)
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer, dial Dialer) int {
	rootCmd := BuildRootCmd(dial)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
	}

	return deploy.ExitCode(err)
}

// BuildRootCmd builds the rngvrf-deploy command. Running it without a subcommand deploys
// the contract to the selected network.
func BuildRootCmd(dial Dialer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "rngvrf-deploy",
		Short: "Deploy the RNGVRF consumer contract",
		Long: `rngvrf-deploy deploys the RNGVRF randomness consumer to an EVM network.

The network is read from the networks file, the constructor parameters
(coordinator, keyHash, fee) from the parameters file and the compiled
contract from a Hardhat artifacts directory. Private keys are never stored
in the networks file: each network lists the environment variables that
hold them, which may be provided through .env files.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeploy(cmd, v, dial)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String(flagConfig, "networks.yaml", "Networks file (yaml, json or toml)")
	flags.String(flagNetwork, "", "Network to deploy to (default is the configured default network)")
	flags.Bool(flagDebug, false, "Enable debug logging")

	cmd.Flags().String(flagParams, "vrf.config.json", "Deployment parameters file")
	cmd.Flags().String(flagArtifacts, "artifacts", "Hardhat artifacts directory")
	cmd.Flags().String(flagContract, deploy.DefaultContractName, "Contract to deploy, by name or as source:name")
	cmd.Flags().StringSlice(flagEnvFile, nil, "Env files holding the private keys (default .env if present)")
	cmd.Flags().Uint64(flagGasLimit, 0, "Gas limit of the deployment transaction (0 lets the node estimate it)")
	cmd.Flags().Bool(flagWait, false, "Wait until the deployment transaction is mined")
	cmd.Flags().Duration(flagConfirmInterval, evm.DefaultConfirmInterval, "Receipt polling interval used with --wait")
	cmd.Flags().Duration(flagTimeout, 0, "Abort the run after this duration (0 disables)")
	cmd.Flags().Bool(flagJSON, false, "Print the deployment result as JSON")

	cobra.CheckErr(v.BindPFlags(flags))
	cobra.CheckErr(v.BindPFlags(cmd.Flags()))

	cmd.AddCommand(buildNetworksCmd(v))
	cmd.AddCommand(buildVersionCmd())

	return cmd
}

func buildVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rngvrf-deploy version %s\n", Version)
		},
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, timeout)
}
