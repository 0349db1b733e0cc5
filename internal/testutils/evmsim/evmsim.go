// package evmsim implements a simulated EVM chain for testing purposes.
package evmsim

import (
	"crypto/ecdsa"
	"encoding/hex"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	gethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/require"

	"github.com/rngvrf/rngvrf-deploy/pkg/contract"
)

const (
	// DefaultGasLimit is the default block gas limit of the simulated chain
	DefaultGasLimit = uint64(8000000)

	// DefaultBalance is the default balance for each account in the simulated chain
	DefaultBalance = 1e18

	// SimulatedChainID is the chain ID used for the simulated chain. EVM Simulated chains always use 1337
	//
	// https://pkg.go.dev/github.com/ethereum/go-ethereum/ethclient/simulated#NewBackend
	SimulatedChainID = 1337

	// ConsumerABI declares the constructor of the VRF consumer: coordinator, key hash and fee.
	ConsumerABI = `[{"inputs":[{"internalType":"address","name":"vrfCoordinator","type":"address"},` +
		`{"internalType":"bytes32","name":"keyHash","type":"bytes32"},` +
		`{"internalType":"uint256","name":"fee","type":"uint256"}],` +
		`"stateMutability":"nonpayable","type":"constructor"}]`

	// ConsumerBytecode copies a single STOP byte as runtime code and ignores the appended
	// constructor arguments.
	ConsumerBytecode = "0x6001600c60003960016000f300"

	// RevertingBytecode reverts in the constructor.
	RevertingBytecode = "0x60006000fd"
)

// SimulatedChain represents a simulated chain with a backend and a list of signers.
type SimulatedChain struct {
	Backend *simulated.Backend
	Signers []*Signer
}

// Signer represents a signer with a private key.
type Signer struct {
	PrivateKey *ecdsa.PrivateKey
}

// Address extracts the address from the signer's private key.
func (s *Signer) Address(t *testing.T) common.Address {
	t.Helper()

	publicKeyECDSA, ok := s.PrivateKey.Public().(*ecdsa.PublicKey)
	if !ok {
		t.Fatal("error casting public key from crypto to ecdsa")
	}

	return crypto.PubkeyToAddress(*publicKeyECDSA)
}

// HexKey returns the private key hex encoded without 0x prefix, as it would appear in a .env file.
func (s *Signer) HexKey() string {
	return hex.EncodeToString(crypto.FromECDSA(s.PrivateKey))
}

// NewSimulatedChain creates a new simulated chain with the given number of funded signers.
func NewSimulatedChain(t *testing.T, numSigners uint64) SimulatedChain {
	t.Helper()

	return NewSimulatedChainWithBalance(t, numSigners, big.NewInt(DefaultBalance))
}

// NewSimulatedChainWithBalance creates a simulated chain whose signers start with balance wei.
func NewSimulatedChainWithBalance(t *testing.T, numSigners uint64, balance *big.Int) SimulatedChain {
	t.Helper()

	signers := make([]*Signer, 0, numSigners)
	for range numSigners {
		key, err := crypto.GenerateKey()
		require.NoError(t, err)

		signers = append(signers, &Signer{PrivateKey: key})
	}

	genesisAlloc := gethTypes.GenesisAlloc{}
	for _, s := range signers {
		genesisAlloc[s.Address(t)] = gethTypes.Account{
			Balance: new(big.Int).Set(balance),
		}
	}

	sim := simulated.NewBackend(genesisAlloc,
		simulated.WithBlockGasLimit(DefaultGasLimit),
	)
	t.Cleanup(func() {
		_ = sim.Close()
	})

	return SimulatedChain{
		Backend: sim,
		Signers: signers,
	}
}

// AutoCommit mines a block every interval until the test ends, so code waiting for receipts
// makes progress.
func (s *SimulatedChain) AutoCommit(t *testing.T, interval time.Duration) {
	t.Helper()

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				s.Backend.Commit()
			}
		}
	}()

	t.Cleanup(func() {
		close(done)
		wg.Wait()
	})
}

// ConsumerArtifact returns a deployable artifact with the VRF consumer constructor.
func ConsumerArtifact(name string) *contract.Artifact {
	return &contract.Artifact{
		Format:       contract.HardhatArtifactFormat,
		ContractName: name,
		SourceName:   "contracts/" + name + ".sol",
		ABI:          []byte(ConsumerABI),
		Bytecode:     ConsumerBytecode,
	}
}

// RevertingArtifact returns an artifact whose constructor always reverts.
func RevertingArtifact(name string) *contract.Artifact {
	a := ConsumerArtifact(name)
	a.Bytecode = RevertingBytecode

	return a
}
