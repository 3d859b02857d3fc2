package bbdist

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadManifest reads a distribution from a YAML manifest:
//
//	metadata:
//	  name: pkg
//	  version: "1.0"
//	dist_files:
//	  - command: sdist
//	    path: dist/pkg-1.0.tar.gz
//	  - command: bdist_wheel
//	    target: py3
//	    path: dist/pkg-1.0-py3-none-any.whl
//
// Entries without a command are classified from their file name; a target
// given in the manifest is kept.
func LoadManifest(path string) (*Distribution, error) {
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) //#nosec G304 -- path is user-provided manifest
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var dist Distribution
	if err := yaml.Unmarshal(data, &dist); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	for i := range dist.Files {
		f := &dist.Files[i]
		if f.Path == "" {
			return nil, fmt.Errorf("%w: dist file %d has no path", ErrInvalidManifest, i)
		}
		if f.Command == "" {
			guess := ClassifyDistFile(f.Path)
			f.Command = guess.Command
			if f.Target == "" {
				f.Target = guess.Target
			}
		}
	}

	return &dist, nil
}

// Save writes the metadata as YAML to path.
// Creates the parent directory if it doesn't exist.
func (m *Metadata) Save(path string) error {
	cleanPath := filepath.Clean(path)

	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create metadata directory: %w", err)
		}
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	if err := os.WriteFile(cleanPath, data, 0o600); err != nil {
		return fmt.Errorf("write metadata file: %w", err)
	}

	return nil
}
