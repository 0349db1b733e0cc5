package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"errors"
	"fmt"

	chainsel "github.com/smartcontractkit/chain-selectors"
)

// ChainSelector is a unique identifier for a chain.
//
// These values are defined in the chain-selectors dependency.
// https://github.com/smartcontractkit/chain-selectors
type ChainSelector uint64

var (
	// ErrChainFamilyNotFound is returned when the chain family is not found for a selector
	ErrChainFamilyNotFound = errors.New("chain family not found")

	// ErrUnsupportedChainFamily is returned when the selector does not belong to an EVM chain
	ErrUnsupportedChainFamily = errors.New("unsupported chain family")
)

// EVMChainID returns the EVM chain id identified by the selector. Only EVM selectors are
// accepted since the deployer only speaks JSON-RPC to EVM nodes.
func (s ChainSelector) EVMChainID() (uint64, error) {
	family, err := chainsel.GetSelectorFamily(uint64(s))
	if err != nil {
		return 0, fmt.Errorf("%w for selector %d", ErrChainFamilyNotFound, s)
	}

	if family != chainsel.FamilyEVM {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedChainFamily, family)
	}

	chain, ok := chainsel.ChainBySelector(uint64(s))
	if !ok {
		return 0, fmt.Errorf("%w for selector %d", ErrChainFamilyNotFound, s)
	}

	return chain.EvmChainID, nil
}

// ChainName returns the human readable name registered for an EVM chain id, or an empty
// string when chain-selectors does not know the chain.
func ChainName(evmChainID uint64) string {
	sel, err := chainsel.SelectorFromChainId(evmChainID)
	if err != nil {
		return ""
	}

	chain, ok := chainsel.ChainBySelector(sel)
	if !ok {
		return ""
	}

	return chain.Name
}
