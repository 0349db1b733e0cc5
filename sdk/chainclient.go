package sdk

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

type ContractDeployBackend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// EVMChainClient is the JSON-RPC surface the deployer needs from a node. Both
// *ethclient.Client and the simulated backend client satisfy it.
type EVMChainClient interface {
	ContractDeployBackend

	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	ChainID(ctx context.Context) (*big.Int, error)
}
