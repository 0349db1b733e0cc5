package evm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/rngvrf/rngvrf-deploy/sdk"
)

// DefaultConfirmInterval is how often the receipt is polled while waiting for a deployment.
const DefaultConfirmInterval = time.Second

// ErrDeploymentReverted is returned when the deployment transaction was mined with a failed status.
var ErrDeploymentReverted = errors.New("deployment transaction reverted")

// Confirm waits for the deployment transaction to be mined and checks that code was placed at
// the contract address.
func Confirm(
	ctx context.Context, b bind.DeployBackend, tx *types.Transaction, interval time.Duration,
) (*types.Receipt, error) {
	if interval <= 0 {
		interval = DefaultConfirmInterval
	}

	queryTicker := time.NewTicker(interval)
	defer queryTicker.Stop()

	logger := sdk.LoggerFrom(ctx)
	for {
		receipt, err := b.TransactionReceipt(ctx, tx.Hash())
		if err == nil {
			return checkReceipt(ctx, b, tx, receipt)
		}

		if errors.Is(err, ethereum.NotFound) {
			logger.Debugw("Transaction not yet mined", "hash", tx.Hash())
		} else {
			logger.Debugw("Receipt retrieval failed", "hash", tx.Hash(), "err", err)
		}

		// Wait for the next round.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-queryTicker.C:
		}
	}
}

func checkReceipt(
	ctx context.Context, b bind.DeployBackend, tx *types.Transaction, receipt *types.Receipt,
) (*types.Receipt, error) {
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("%w: %s", ErrDeploymentReverted, tx.Hash())
	}

	code, err := b.CodeAt(ctx, receipt.ContractAddress, nil)
	if err != nil {
		return receipt, err
	}
	if len(code) == 0 {
		return receipt, bind.ErrNoCodeAfterDeploy
	}

	return receipt, nil
}
