package bbdist

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var repositoryPattern = regexp.MustCompile(`^[-_.a-z]+/[-_.a-z]+$`)

// IsValidRepository reports whether id looks like owner/name.
// Only lowercase letters, '-', '_' and '.' are allowed on either side.
func IsValidRepository(id string) bool {
	return repositoryPattern.MatchString(id)
}

// ValidateRepository returns ErrInvalidRepository if id is not a valid
// repository identifier.
func ValidateRepository(id string) error {
	if !IsValidRepository(id) {
		return fmt.Errorf("%w: %q", ErrInvalidRepository, id)
	}
	return nil
}

var sdistSuffixes = []string{".tar.gz", ".tar.bz2", ".tar.xz", ".tar.Z", ".tgz", ".tar", ".zip"}

// ClassifyDistFile guesses the dist command that produced path from its
// file name.
//
// Wheels carry their python tag as Target, e.g. "py3" for
// pkg-1.0-py3-none-any.whl.
func ClassifyDistFile(path string) DistFile {
	base := filepath.Base(path)

	switch {
	case strings.HasSuffix(base, ".whl"):
		return DistFile{Command: CommandBDistWheel, Target: wheelPythonTag(base), Path: path}
	case strings.HasSuffix(base, ".egg"):
		return DistFile{Command: CommandBDistEgg, Path: path}
	}

	for _, suffix := range sdistSuffixes {
		if strings.HasSuffix(base, suffix) {
			return DistFile{Command: CommandSDist, Path: path}
		}
	}

	return DistFile{Command: CommandBDist, Path: path}
}

// wheelPythonTag returns the python tag of a wheel file name
// ({name}-{version}(-{build})?-{python}-{abi}-{platform}.whl).
func wheelPythonTag(base string) string {
	parts := strings.Split(strings.TrimSuffix(base, ".whl"), "-")
	if len(parts) < 5 {
		return ""
	}
	return parts[len(parts)-3]
}
