package bbdist

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is the parent of every error detected before any
	// network call is made.
	ErrConfiguration = errors.New("configuration error")
	// ErrInvalidRepository is returned when a repository identifier is not
	// of the form owner/name.
	ErrInvalidRepository = fmt.Errorf("%w: repository must look like owner/name", ErrConfiguration)
	// ErrNoDistFiles is returned when there is nothing to upload.
	ErrNoDistFiles = fmt.Errorf("%w: no dist file created in earlier command", ErrConfiguration)
	// ErrInvalidManifest is returned when a manifest entry has no path.
	ErrInvalidManifest = fmt.Errorf("%w: invalid manifest", ErrConfiguration)
)
