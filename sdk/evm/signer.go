package evm

import (
	"context"
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	sdkerrors "github.com/rngvrf/rngvrf-deploy/sdk/errors"
)

// Signer authorizes transactions with a private key.
type Signer struct {
	pk *ecdsa.PrivateKey
}

// NewSigner creates a new Signer.
func NewSigner(pk *ecdsa.PrivateKey) *Signer {
	return &Signer{pk: pk}
}

// FirstSigner returns a signer for the first credential of a network. It fails with a
// SignerUnavailableError when the network has no credentials.
func FirstSigner(network string, keys []*ecdsa.PrivateKey) (*Signer, error) {
	for _, k := range keys {
		if k != nil {
			return NewSigner(k), nil
		}
	}

	return nil, sdkerrors.NewSignerUnavailableError(network)
}

// Address returns the address of the signer.
func (s *Signer) Address() common.Address {
	return crypto.PubkeyToAddress(s.pk.PublicKey)
}

// TransactOpts returns keyed transaction options for the chain. Gas price, gas limit and
// nonce are left unset so the backend fills them in.
func (s *Signer) TransactOpts(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(s.pk, chainID)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx

	return opts, nil
}
