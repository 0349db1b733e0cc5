package evm

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/rngvrf/rngvrf-deploy/pkg/contract"
)

// Deployment is the outcome of submitting a contract creation transaction.
type Deployment struct {
	Address common.Address
	Tx      *types.Transaction
}

// ContractDeployment returns a DeployFunc that deploys the factory's contract with args.
func ContractDeployment(
	auth *bind.TransactOpts, backend bind.ContractBackend, factory *Factory, args ...any,
) contract.DeployFunc[Deployment] {
	return func() (Deployment, error) {
		addr, tx, err := factory.Deploy(auth, backend, args...)

		return Deployment{Address: addr, Tx: tx}, err
	}
}
