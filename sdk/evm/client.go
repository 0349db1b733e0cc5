package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/rngvrf/rngvrf-deploy/sdk"
	sdkerrors "github.com/rngvrf/rngvrf-deploy/sdk/errors"
	"github.com/rngvrf/rngvrf-deploy/types"
)

var _ sdk.EVMChainClient = (*ethclient.Client)(nil)

// Dial connects to the JSON-RPC endpoint of a network.
func Dial(ctx context.Context, network types.Network) (*ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, network.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to network %s: %w", network.Name, err)
	}

	return client, nil
}

// ResolveChainID asks the node for its chain id and checks it against the chain the network
// is pinned to, if any.
func ResolveChainID(ctx context.Context, client sdk.EVMChainClient, network types.Network) (*big.Int, error) {
	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chain id: %w", err)
	}

	expected, err := network.ExpectedChainID()
	if err != nil {
		return nil, err
	}

	if expected != 0 && (!chainID.IsUint64() || chainID.Uint64() != expected) {
		return nil, sdkerrors.NewInvalidChainIDError(expected, chainID.Uint64())
	}

	return chainID, nil
}
