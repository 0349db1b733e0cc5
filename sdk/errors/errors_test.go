package sdkerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err      error
		expected string
	}{
		{NewSignerUnavailableError("kcc_testnet"), "signer unavailable: no credentials configured for network kcc_testnet"},
		{NewArtifactNotFoundError("RNGVRF"), "artifact not found: RNGVRF"},
		{NewDeploymentRejectedError("RNGVRF", errors.New("execution reverted")), "deployment of RNGVRF rejected: execution reverted"},
		{NewInvalidChainIDError(321, 322), "invalid chain ID: expected 321, node reports 322"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.err.Error())
	}
}

func TestDeploymentRejectedError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("insufficient funds for gas * price + value")
	err := error(NewDeploymentRejectedError("RNGVRF", cause))

	assert.ErrorIs(t, err, cause)

	var rejected *DeploymentRejectedError
	assert.ErrorAs(t, err, &rejected)
	assert.Equal(t, "RNGVRF", rejected.ContractName)
}
