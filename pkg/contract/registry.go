package contract

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	sdkerrors "github.com/rngvrf/rngvrf-deploy/sdk/errors"
)

// ErrAmbiguousArtifact is returned when a bare contract name matches artifacts from more than one
// source file. The fully qualified "source:contract" name must be used instead.
var ErrAmbiguousArtifact = errors.New("multiple artifacts match contract name")

// Registry resolves compiled contracts by name.
type Registry interface {
	Artifact(name string) (*Artifact, error)
}

var (
	_ Registry = (*DirRegistry)(nil)
	_ Registry = MemoryRegistry{}
)

// DirRegistry reads artifacts from a Hardhat artifacts directory, laid out as
// <root>/<sourceName>/<ContractName>.json.
type DirRegistry struct {
	root string
}

// NewDirRegistry returns a registry rooted at dir. The directory is read on lookup, so a
// registry over a directory that does not exist yet is valid and simply finds nothing.
func NewDirRegistry(dir string) *DirRegistry {
	return &DirRegistry{root: dir}
}

// Artifact returns the artifact for a bare contract name or a fully qualified
// "source:contract" name.
func (r *DirRegistry) Artifact(name string) (*Artifact, error) {
	source, contractName := splitQualifiedName(name)

	candidates, err := r.candidates(contractName)
	if err != nil {
		return nil, err
	}

	var matches []*Artifact
	for _, path := range candidates {
		a, errLoad := LoadArtifact(path)
		if errLoad != nil {
			return nil, errLoad
		}

		if a.ContractName != contractName {
			continue
		}
		if source != "" && a.SourceName != source {
			continue
		}

		matches = append(matches, a)
	}

	switch len(matches) {
	case 0:
		return nil, sdkerrors.NewArtifactNotFoundError(name)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, 0, len(matches))
		for _, m := range matches {
			names = append(names, m.FullyQualifiedName())
		}

		return nil, fmt.Errorf("%w %s: %s", ErrAmbiguousArtifact, name, strings.Join(names, ", "))
	}
}

func (r *DirRegistry) candidates(contractName string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(r.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if d.Name() == "build-info" {
				return filepath.SkipDir
			}

			return nil
		}

		if d.Name() == contractName+".json" {
			paths = append(paths, path)
		}

		return nil
	})
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	return paths, err
}

// MemoryRegistry serves artifacts held in memory, keyed by contract name.
type MemoryRegistry map[string]*Artifact

// Artifact returns the artifact registered under name.
func (r MemoryRegistry) Artifact(name string) (*Artifact, error) {
	a, ok := r[name]
	if !ok {
		return nil, sdkerrors.NewArtifactNotFoundError(name)
	}

	return a, nil
}

func splitQualifiedName(name string) (string, string) {
	idx := strings.LastIndex(name, ":")
	if idx < 0 {
		return "", name
	}

	return name[:idx], name[idx+1:]
}
