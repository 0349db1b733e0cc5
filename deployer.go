package deploy

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rngvrf/rngvrf-deploy/pkg/contract"
	"github.com/rngvrf/rngvrf-deploy/sdk"
	sdkerrors "github.com/rngvrf/rngvrf-deploy/sdk/errors"
	"github.com/rngvrf/rngvrf-deploy/sdk/evm"
	"github.com/rngvrf/rngvrf-deploy/types"
)

// DefaultContractName is the artifact deployed when no other name is configured.
const DefaultContractName = "RNGVRF"

// Deployer deploys a single contract to a single network.
type Deployer struct {
	network  types.Network
	client   sdk.EVMChainClient
	keys     []*ecdsa.PrivateKey
	registry contract.Registry
	params   types.DeploymentParams

	contractName    string
	gasLimit        uint64
	waitMined       bool
	confirmInterval time.Duration
	out             io.Writer
}

// Option configures a Deployer.
type Option func(*Deployer)

// WithContractName selects the artifact to deploy.
func WithContractName(name string) Option {
	return func(d *Deployer) {
		d.contractName = name
	}
}

// WithGasLimit fixes the gas limit of the deployment transaction. Zero, the default, lets the
// node estimate it.
func WithGasLimit(limit uint64) Option {
	return func(d *Deployer) {
		d.gasLimit = limit
	}
}

// WithConfirmation makes Deploy wait until the deployment transaction is mined, polling
// for the receipt every interval.
func WithConfirmation(interval time.Duration) Option {
	return func(d *Deployer) {
		d.waitMined = true
		d.confirmInterval = interval
	}
}

// WithOutput sets where the deployment report is written. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(d *Deployer) {
		d.out = w
	}
}

// NewDeployer returns a Deployer for the network. The keys are the network's credentials in
// configuration order; the first one signs the deployment.
func NewDeployer(
	network types.Network,
	client sdk.EVMChainClient,
	keys []*ecdsa.PrivateKey,
	registry contract.Registry,
	params types.DeploymentParams,
	opts ...Option,
) *Deployer {
	d := &Deployer{
		network:      network,
		client:       client,
		keys:         keys,
		registry:     registry,
		params:       params,
		contractName: DefaultContractName,
		out:          os.Stdout,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Deploy runs the deployment: it reports the signer and its balance, resolves the contract
// artifact and submits the creation transaction with the configured constructor parameters.
// Nothing is retried; any error ends the run.
func (d *Deployer) Deploy(ctx context.Context) (*types.DeploymentResult, error) {
	logger := sdk.LoggerFrom(ctx)

	signer, err := evm.FirstSigner(d.network.Name, d.keys)
	if err != nil {
		return nil, err
	}
	deployer := signer.Address()

	chainID, err := evm.ResolveChainID(ctx, d.client, d.network)
	if err != nil {
		return nil, err
	}
	logger.Infow("Connected to network",
		"network", d.network.Name, "chainId", chainID, "chain", types.ChainName(chainID.Uint64()),
	)

	fmt.Fprintf(d.out, "Deploying %s with the account: %s\n", d.contractName, deployer.Hex())

	// A low balance is only reported; the node decides whether the deployment is affordable.
	balance, err := d.client.BalanceAt(ctx, deployer, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch balance of %s: %w", deployer.Hex(), err)
	}
	fmt.Fprintf(d.out, "Account balance: %s\n", balance.String())

	artifact, err := d.registry.Artifact(d.contractName)
	if err != nil {
		return nil, err
	}
	factory, err := evm.NewFactory(artifact)
	if err != nil {
		return nil, err
	}

	opts, err := signer.TransactOpts(ctx, chainID)
	if err != nil {
		return nil, err
	}
	opts.GasLimit = d.gasLimit

	logger.Infow("Submitting deployment",
		"contract", artifact.FullyQualifiedName(),
		"coordinator", d.params.Coordinator.Hex(),
		"keyHash", d.params.KeyHash.Hex(),
		"fee", d.params.Fee.String(),
	)
	deployment, err := contract.Deploy(evm.ContractDeployment(opts, d.client, factory, d.params.ConstructorArgs()...))
	if err != nil {
		return nil, sdkerrors.NewDeploymentRejectedError(d.contractName, err)
	}
	logger.Infow("Deployment transaction sent", "hash", deployment.Tx.Hash().Hex())

	result := &types.DeploymentResult{
		Network:  d.network.Name,
		ChainID:  chainID.Uint64(),
		Contract: d.contractName,
		Deployer: deployer,
		Balance:  types.NewAmount(balance),
		Address:  deployment.Address,
		TxHash:   deployment.Tx.Hash(),
	}

	if d.waitMined {
		receipt, errConfirm := evm.Confirm(ctx, d.client, deployment.Tx, d.confirmInterval)
		if errConfirm != nil {
			return nil, sdkerrors.NewDeploymentRejectedError(d.contractName, errConfirm)
		}

		result.Confirmed = true
		result.BlockNumber = receipt.BlockNumber.Uint64()
		result.GasUsed = receipt.GasUsed
		logger.Infow("Deployment confirmed", "block", result.BlockNumber, "gasUsed", result.GasUsed)
	}

	fmt.Fprintf(d.out, "%s address: %s\n", d.contractName, deployment.Address.Hex())

	return result, nil
}

// ExitCode maps the outcome of a run to the process exit status.
func ExitCode(err error) int {
	if err != nil {
		return 1
	}

	return 0
}
