package evm

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdkerrors "github.com/rngvrf/rngvrf-deploy/sdk/errors"
)

func TestFirstSigner(t *testing.T) {
	t.Parallel()

	key1, err := crypto.GenerateKey()
	require.NoError(t, err)
	key2, err := crypto.GenerateKey()
	require.NoError(t, err)

	tests := []struct {
		name    string
		give    []*ecdsa.PrivateKey
		want    *ecdsa.PrivateKey
		wantErr string
	}{
		{
			name: "first of many",
			give: []*ecdsa.PrivateKey{key1, key2},
			want: key1,
		},
		{
			name: "skips empty slots",
			give: []*ecdsa.PrivateKey{nil, key2},
			want: key2,
		},
		{
			name:    "no credentials",
			give:    nil,
			wantErr: "signer unavailable: no credentials configured for network kcc_testnet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := FirstSigner("kcc_testnet", tt.give)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)

				var unavailable *sdkerrors.SignerUnavailableError
				require.ErrorAs(t, err, &unavailable)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, crypto.PubkeyToAddress(tt.want.PublicKey), got.Address())
		})
	}
}

func TestSigner_TransactOpts(t *testing.T) {
	t.Parallel()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	ctx := context.Background()
	s := NewSigner(key)

	opts, err := s.TransactOpts(ctx, big.NewInt(322))
	require.NoError(t, err)
	assert.Equal(t, s.Address(), opts.From)
	assert.Equal(t, ctx, opts.Context)
	assert.Zero(t, opts.GasLimit)
	assert.Nil(t, opts.Nonce)

	_, err = s.TransactOpts(ctx, nil)
	require.Error(t, err)
}
