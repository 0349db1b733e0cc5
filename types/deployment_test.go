package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addressPtr(s string) *common.Address {
	a := common.HexToAddress(s)
	return &a
}

func hashPtr(s string) *common.Hash {
	h := common.HexToHash(s)
	return &h
}

func TestDeploymentParams_Decode(t *testing.T) {
	t.Parallel()

	raw := `{
		"coordinator": "0xAAAaAAAaaAaaAaAaAaaaaAaAaaaaaAaaAaaaaaAA",
		"keyHash": "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		"fee": 100000000000000000
	}`

	var got DeploymentParams
	require.NoError(t, json.Unmarshal([]byte(raw), &got))
	require.NoError(t, got.Validate())

	require.NotNil(t, got.Coordinator)
	require.NotNil(t, got.KeyHash)
	assert.Equal(t, common.HexToAddress("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"), *got.Coordinator)
	assert.Equal(t, common.HexToHash("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"), *got.KeyHash)
	assert.Equal(t, "100000000000000000", got.Fee.String())

	args := got.ConstructorArgs()
	require.Len(t, args, 3)
	assert.Equal(t, *got.Coordinator, args[0])
	assert.Equal(t, *got.KeyHash, args[1])
	assert.Equal(t, got.Fee.Int, args[2])
}

func TestDeploymentParams_DecodeZeroValues(t *testing.T) {
	t.Parallel()

	raw := `{
		"coordinator": "0x0000000000000000000000000000000000000000",
		"keyHash": "0x0000000000000000000000000000000000000000000000000000000000000000",
		"fee": 0
	}`

	var got DeploymentParams
	require.NoError(t, json.Unmarshal([]byte(raw), &got))
	require.NoError(t, got.Validate())

	args := got.ConstructorArgs()
	assert.Equal(t, common.Address{}, args[0])
	assert.Equal(t, common.Hash{}, args[1])
	assert.Equal(t, "0", got.Fee.String())
}

func TestDeploymentParams_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    DeploymentParams
		wantErr string
	}{
		{
			name: "success: zero fee is passed through",
			give: DeploymentParams{
				Coordinator: addressPtr("0x1"),
				KeyHash:     hashPtr("0x2"),
				Fee:         MustParseAmount("0"),
			},
		},
		{
			name: "success: zero coordinator and key hash are passed through",
			give: DeploymentParams{
				Coordinator: &common.Address{},
				KeyHash:     &common.Hash{},
				Fee:         MustParseAmount("1"),
			},
		},
		{
			name: "failure: missing coordinator",
			give: DeploymentParams{
				KeyHash: hashPtr("0x2"),
				Fee:     MustParseAmount("1"),
			},
			wantErr: "Key: 'DeploymentParams.Coordinator' Error:Field validation for 'Coordinator' failed on the 'required' tag",
		},
		{
			name: "failure: missing key hash",
			give: DeploymentParams{
				Coordinator: addressPtr("0x1"),
				Fee:         MustParseAmount("1"),
			},
			wantErr: "Key: 'DeploymentParams.KeyHash' Error:Field validation for 'KeyHash' failed on the 'required' tag",
		},
		{
			name: "failure: missing fee",
			give: DeploymentParams{
				Coordinator: addressPtr("0x1"),
				KeyHash:     hashPtr("0x2"),
			},
			wantErr: "Key: 'DeploymentParams.Fee' Error:Field validation for 'Fee' failed on the 'required' tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.give.Validate()
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}
