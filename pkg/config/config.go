// Package config loads the static inputs of a deployment run: the network configuration,
// the credentials it references and the constructor parameters.
package config

import (
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/rngvrf/rngvrf-deploy/types"
)

// EnvPrefix prefixes environment variables that override values of the networks file.
const EnvPrefix = "RNGVRF"

// DefaultEnvFile is loaded when no env file is named explicitly. It is optional.
const DefaultEnvFile = ".env"

// ErrInvalidPrivateKey is returned when a credential variable does not hold a hex encoded
// secp256k1 private key.
var ErrInvalidPrivateKey = errors.New("invalid private key")

// LoadNetworks reads and validates the networks file. The format is taken from the file
// extension (yaml, json, toml).
func LoadNetworks(path string) (*types.NetworksConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	if err := v.BindEnv("default_network"); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read networks file %s: %w", path, err)
	}

	var cfg types.NetworksConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode networks file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadParams reads the deployment parameters record. Only the presence of the three values
// is checked.
func LoadParams(path string) (*types.DeploymentParams, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var params types.DeploymentParams
	if err := json.NewDecoder(f).Decode(&params); err != nil {
		return nil, fmt.Errorf("failed to decode deployment parameters %s: %w", path, err)
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	return &params, nil
}

// Env is a snapshot of environment variables used to resolve credentials.
type Env map[string]string

// LoadEnv reads the given env files and overlays the process environment, which takes
// precedence as it does with godotenv.Load. When no file is given the default .env file is
// read if it exists.
func LoadEnv(files ...string) (Env, error) {
	env := Env{}

	if len(files) == 0 {
		if _, err := os.Stat(DefaultEnvFile); err == nil {
			files = []string{DefaultEnvFile}
		}
	}

	if len(files) > 0 {
		values, err := godotenv.Read(files...)
		if err != nil {
			return nil, fmt.Errorf("failed to read env files: %w", err)
		}
		for k, v := range values {
			env[k] = v
		}
	}

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}

	return env, nil
}

// ResolveKeys returns the private keys referenced by the network's accounts, in order.
// Variables that are not set or empty are skipped.
func ResolveKeys(network types.Network, env Env) ([]*ecdsa.PrivateKey, error) {
	keys := make([]*ecdsa.PrivateKey, 0, len(network.Accounts))
	for _, name := range network.Accounts {
		raw := strings.TrimSpace(env[name])
		if raw == "" {
			continue
		}

		key, err := crypto.HexToECDSA(strings.TrimPrefix(raw, "0x"))
		if err != nil {
			// never echo the value
			return nil, fmt.Errorf("%w in %s", ErrInvalidPrivateKey, name)
		}

		keys = append(keys, key)
	}

	return keys, nil
}
