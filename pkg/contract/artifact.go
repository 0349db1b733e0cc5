package contract

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
)

// HardhatArtifactFormat is the format tag written by the Hardhat compiler pipeline.
const HardhatArtifactFormat = "hh-sol-artifact-1"

// ErrUnsupportedArtifactFormat is returned when an artifact carries an unknown _format tag.
var ErrUnsupportedArtifactFormat = errors.New("unsupported artifact format")

// Artifact is a compiled contract: its ABI and creation bytecode.
type Artifact struct {
	Format       string          `json:"_format"`
	ContractName string          `json:"contractName" validate:"required"`
	SourceName   string          `json:"sourceName"`
	ABI          json.RawMessage `json:"abi" validate:"required"`
	Bytecode     string          `json:"bytecode"`
}

// FullyQualifiedName returns the name in the "source:contract" form.
func (a *Artifact) FullyQualifiedName() string {
	if a.SourceName == "" {
		return a.ContractName
	}

	return a.SourceName + ":" + a.ContractName
}

// NewArtifact decodes an artifact from its JSON representation.
func NewArtifact(reader io.Reader) (*Artifact, error) {
	var out Artifact
	if err := json.NewDecoder(reader).Decode(&out); err != nil {
		return nil, err
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}

	return &out, nil
}

// LoadArtifact reads an artifact file from disk.
func LoadArtifact(path string) (*Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	a, err := NewArtifact(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode artifact %s: %w", path, err)
	}

	return a, nil
}

// Validate checks the artifact carries the fields needed to build a factory.
func (a *Artifact) Validate() error {
	if a.Format != "" && a.Format != HardhatArtifactFormat {
		return fmt.Errorf("%w: %s", ErrUnsupportedArtifactFormat, a.Format)
	}

	return validator.New().Struct(a)
}
