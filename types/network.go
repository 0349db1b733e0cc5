package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrDefaultNetworkNotFound is returned when the default network is not one of the configured
	// networks.
	ErrDefaultNetworkNotFound = errors.New("default network not found in networks")

	// ErrConflictingChainPins is returned when a network pins both a chain id and a chain selector
	// that disagree with each other.
	ErrConflictingChainPins = errors.New("chain_id and chain_selector refer to different chains")
)

// NetworkNotFoundError is returned when a network name is not present in the configuration.
type NetworkNotFoundError struct {
	Name string
}

// NewNetworkNotFoundError creates a new NetworkNotFoundError.
func NewNetworkNotFoundError(name string) *NetworkNotFoundError {
	return &NetworkNotFoundError{Name: name}
}

func (e *NetworkNotFoundError) Error() string {
	return fmt.Sprintf("network %q is not configured", e.Name)
}

// Network describes how to reach a single EVM network.
type Network struct {
	// Name is filled from the key of the network in NetworksConfig.
	Name string `json:"-" mapstructure:"-"`

	// URL is the JSON-RPC endpoint of the network.
	URL string `json:"url" mapstructure:"url" validate:"required,url"`

	// ChainID optionally pins the EVM chain id. The node must report the same id.
	ChainID uint64 `json:"chainId,omitempty" mapstructure:"chain_id"`

	// ChainSelector optionally pins the chain by its chain-selectors identifier.
	ChainSelector ChainSelector `json:"chainSelector,omitempty" mapstructure:"chain_selector"`

	// Accounts lists the names of environment variables holding hex encoded private keys. The
	// first variable that is set provides the deploying signer.
	Accounts []string `json:"accounts" mapstructure:"accounts" validate:"omitempty,dive,required"`
}

// ExpectedChainID returns the chain id the network is pinned to, or zero when unpinned.
func (n Network) ExpectedChainID() (uint64, error) {
	if n.ChainSelector == 0 {
		return n.ChainID, nil
	}

	id, err := n.ChainSelector.EVMChainID()
	if err != nil {
		return 0, err
	}

	if n.ChainID != 0 && n.ChainID != id {
		return 0, fmt.Errorf("%w: %d vs %d", ErrConflictingChainPins, n.ChainID, id)
	}

	return id, nil
}

// NetworksConfig is the static network configuration loaded once at startup.
type NetworksConfig struct {
	// DefaultNetwork names the network used when none is selected explicitly.
	DefaultNetwork string `json:"defaultNetwork" mapstructure:"default_network" validate:"required"`

	// Networks maps a network name to its connection parameters.
	Networks map[string]Network `json:"networks" mapstructure:"networks" validate:"required,min=1,dive"`

	// Solidity pins the compiler version the artifacts were built with.
	Solidity string `json:"solidity,omitempty" mapstructure:"solidity" validate:"omitempty,semver"`
}

// Validate checks the configuration for completeness.
func (c *NetworksConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}

	if _, ok := c.Networks[strings.ToLower(c.DefaultNetwork)]; !ok {
		return fmt.Errorf("%w: %s", ErrDefaultNetworkNotFound, c.DefaultNetwork)
	}

	return nil
}

// Lookup returns the network registered under name. Names are case insensitive since viper
// lower cases map keys when loading the configuration file.
func (c *NetworksConfig) Lookup(name string) (Network, error) {
	name = strings.ToLower(name)
	n, ok := c.Networks[name]
	if !ok {
		return Network{}, NewNetworkNotFoundError(name)
	}
	n.Name = name

	return n, nil
}

// Default returns the default network.
func (c *NetworksConfig) Default() (Network, error) {
	return c.Lookup(c.DefaultNetwork)
}

// Resolve returns the named network, or the default network when name is empty.
func (c *NetworksConfig) Resolve(name string) (Network, error) {
	if name == "" {
		return c.Default()
	}

	return c.Lookup(name)
}

// Names returns the configured network names in lexical order.
func (c *NetworksConfig) Names() []string {
	names := make([]string, 0, len(c.Networks))
	for name := range c.Networks {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
