package deploy

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/mock"

	"github.com/rngvrf/rngvrf-deploy/pkg/contract"
)

// recordingClient wraps a simulated client and counts the calls made through it.
type recordingClient struct {
	simulated.Client

	mu    sync.Mutex
	calls map[string]int

	// zeroBalance makes BalanceAt report an empty account regardless of the chain state.
	zeroBalance bool
}

func newRecordingClient(c simulated.Client) *recordingClient {
	return &recordingClient{Client: c, calls: map[string]int{}}
}

func (c *recordingClient) record(method string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls[method]++
}

func (c *recordingClient) count(method string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.calls[method]
}

func (c *recordingClient) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	c.record("BalanceAt")
	if c.zeroBalance {
		return new(big.Int), nil
	}

	return c.Client.BalanceAt(ctx, account, blockNumber)
}

func (c *recordingClient) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	c.record("EstimateGas")
	return c.Client.EstimateGas(ctx, msg)
}

func (c *recordingClient) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	c.record("SendTransaction")
	return c.Client.SendTransaction(ctx, tx)
}

// mockRegistry is a testify mock of contract.Registry.
type mockRegistry struct {
	mock.Mock
}

func (m *mockRegistry) Artifact(name string) (*contract.Artifact, error) {
	args := m.Called(name)
	a, _ := args.Get(0).(*contract.Artifact)

	return a, args.Error(1)
}
