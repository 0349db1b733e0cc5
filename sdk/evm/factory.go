package evm

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/rngvrf/rngvrf-deploy/pkg/contract"
)

var (
	// ErrNotDeployable is returned for artifacts without creation bytecode, such as interfaces
	// and abstract contracts.
	ErrNotDeployable = errors.New("artifact has no bytecode")

	// ErrUnlinkedLibraries is returned when the bytecode still contains library placeholders.
	ErrUnlinkedLibraries = errors.New("bytecode contains unlinked library references")
)

// Factory combines the ABI and creation bytecode of a contract to deploy new instances.
type Factory struct {
	name     string
	abi      abi.ABI
	bytecode []byte
}

// NewFactory builds a factory from a compiled artifact.
func NewFactory(a *contract.Artifact) (*Factory, error) {
	parsed, err := abi.JSON(bytes.NewReader(a.ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse abi of %s: %w", a.ContractName, err)
	}

	if strings.Contains(a.Bytecode, "__$") {
		return nil, fmt.Errorf("%w: %s", ErrUnlinkedLibraries, a.ContractName)
	}

	raw := a.Bytecode
	if raw != "" && !strings.HasPrefix(raw, "0x") {
		raw = "0x" + raw
	}

	var code []byte
	if raw != "" {
		code, err = hexutil.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode bytecode of %s: %w", a.ContractName, err)
		}
	}

	if len(code) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotDeployable, a.ContractName)
	}

	return &Factory{name: a.ContractName, abi: parsed, bytecode: code}, nil
}

// Name returns the contract name.
func (f *Factory) Name() string {
	return f.name
}

// ConstructorInputs returns the constructor arguments declared by the ABI.
func (f *Factory) ConstructorInputs() abi.Arguments {
	return f.abi.Constructor.Inputs
}

// Deploy packs the constructor arguments and submits the contract creation transaction.
func (f *Factory) Deploy(
	opts *bind.TransactOpts, backend bind.ContractBackend, args ...any,
) (common.Address, *types.Transaction, error) {
	addr, tx, _, err := bind.DeployContract(opts, f.abi, f.bytecode, backend, args...)

	return addr, tx, err
}
