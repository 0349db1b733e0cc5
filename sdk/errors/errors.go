package sdkerrors

import (
	"fmt"
)

// SignerUnavailableError is returned when the active network has no usable credential.
type SignerUnavailableError struct {
	Network string
}

func (e *SignerUnavailableError) Error() string {
	return fmt.Sprintf("signer unavailable: no credentials configured for network %s", e.Network)
}

func NewSignerUnavailableError(network string) *SignerUnavailableError {
	return &SignerUnavailableError{Network: network}
}

// ArtifactNotFoundError is returned when the named contract artifact was not compiled or is
// not present in the artifact source.
type ArtifactNotFoundError struct {
	ContractName string
}

func (e *ArtifactNotFoundError) Error() string {
	return "artifact not found: " + e.ContractName
}

func NewArtifactNotFoundError(name string) *ArtifactNotFoundError {
	return &ArtifactNotFoundError{ContractName: name}
}

// DeploymentRejectedError wraps any network or on-chain failure of the deployment
// transaction: insufficient funds, reverted constructor, RPC errors.
type DeploymentRejectedError struct {
	ContractName string
	Err          error
}

// Error returns the error message.
func (e *DeploymentRejectedError) Error() string {
	return fmt.Sprintf("deployment of %s rejected: %v", e.ContractName, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *DeploymentRejectedError) Unwrap() error {
	return e.Err
}

func NewDeploymentRejectedError(name string, err error) *DeploymentRejectedError {
	return &DeploymentRejectedError{ContractName: name, Err: err}
}

// InvalidChainIDError is returned when the node reports a chain id other than the one the
// network is pinned to.
type InvalidChainIDError struct {
	ExpectedChainID uint64
	ReceivedChainID uint64
}

func (e *InvalidChainIDError) Error() string {
	return fmt.Sprintf("invalid chain ID: expected %d, node reports %d", e.ExpectedChainID, e.ReceivedChainID)
}

func NewInvalidChainIDError(expected, received uint64) *InvalidChainIDError {
	return &InvalidChainIDError{ExpectedChainID: expected, ReceivedChainID: received}
}
