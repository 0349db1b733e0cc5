package contract

// DeployFunc defines a function type that deploys a contract, returning the deployment result.
//
// The result is defined by the type parameter R and is implemented by the chain sdk. Typically
// the address of the deployed contract and its transaction are returned in the result to
// provide the caller with the necessary information for interacting with the contract.
type DeployFunc[R any] func() (R, error)

// Deploy deploys a contract by calling the provided function and returns its result.
func Deploy[R any](deployFunc DeployFunc[R]) (R, error) {
	return deployFunc()
}
