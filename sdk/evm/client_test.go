package evm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chainsel "github.com/smartcontractkit/chain-selectors"

	"github.com/rngvrf/rngvrf-deploy/internal/testutils/evmsim"
	sdkerrors "github.com/rngvrf/rngvrf-deploy/sdk/errors"
	"github.com/rngvrf/rngvrf-deploy/types"
)

func TestResolveChainID(t *testing.T) {
	t.Parallel()

	sim := evmsim.NewSimulatedChain(t, 1)
	client := sim.Backend.Client()

	tests := []struct {
		name    string
		give    types.Network
		wantErr string
	}{
		{
			name: "unpinned",
			give: types.Network{Name: "local"},
		},
		{
			name: "pinned by chain id",
			give: types.Network{Name: "local", ChainID: evmsim.SimulatedChainID},
		},
		{
			name: "pinned by selector",
			give: types.Network{Name: "local", ChainSelector: types.ChainSelector(chainsel.GETH_TESTNET.Selector)},
		},
		{
			name:    "mismatch",
			give:    types.Network{Name: "kcc_testnet", ChainID: 322},
			wantErr: "invalid chain ID: expected 322, node reports 1337",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ResolveChainID(context.Background(), client, tt.give)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)

				var invalid *sdkerrors.InvalidChainIDError
				require.ErrorAs(t, err, &invalid)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, uint64(evmsim.SimulatedChainID), got.Uint64())
		})
	}
}

func TestDial_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := Dial(context.Background(), types.Network{Name: "broken", URL: "unknown://nowhere"})
	require.ErrorContains(t, err, "failed to connect to network broken")
}
