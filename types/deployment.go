package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"reflect"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
)

// DeploymentParams are the constructor arguments of the VRF consumer contract. They are
// passed to the constructor verbatim; their meaning is defined by the VRF provider.
//
// Coordinator and KeyHash are pointers so that an explicit zero value is told apart from a
// missing one.
type DeploymentParams struct {
	Coordinator *common.Address `json:"coordinator" validate:"required"`
	KeyHash     *common.Hash    `json:"keyHash" validate:"required"`
	Fee         Amount          `json:"fee" validate:"required"`
}

// Validate checks that all three parameters were supplied. Their values, zero included, are
// not inspected.
func (p *DeploymentParams) Validate() error {
	validate := validator.New()
	validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		a, ok := field.Interface().(Amount)
		if !ok || a.Int == nil {
			return nil
		}

		return a.String()
	}, Amount{})

	return validate.Struct(p)
}

// ConstructorArgs returns the parameters in constructor order. The parameters must have
// passed Validate.
func (p DeploymentParams) ConstructorArgs() []any {
	return []any{*p.Coordinator, *p.KeyHash, p.Fee.Int}
}

// DeploymentResult describes a finished deployment. It is reported once and not persisted.
type DeploymentResult struct {
	Network     string         `json:"network"`
	ChainID     uint64         `json:"chainId"`
	Contract    string         `json:"contract"`
	Deployer    common.Address `json:"deployer"`
	Balance     Amount         `json:"balance"`
	Address     common.Address `json:"address"`
	TxHash      common.Hash    `json:"txHash"`
	Confirmed   bool           `json:"confirmed"`
	BlockNumber uint64         `json:"blockNumber,omitempty"`
	GasUsed     uint64         `json:"gasUsed,omitempty"`
}
