package bbdist

// Dist commands recognized by ClassifyDistFile.
const (
	CommandSDist      = "sdist"
	CommandBDistWheel = "bdist_wheel"
	CommandBDistEgg   = "bdist_egg"
	CommandBDist      = "bdist"
)

// DistFile is a single artifact produced by the packaging pipeline.
type DistFile struct {
	Command string `yaml:"command" json:"command"`
	Target  string `yaml:"target,omitempty" json:"target,omitempty"`
	Path    string `yaml:"path" json:"path"`
}

// IsSDist reports whether the artifact is a source distribution.
func (f DistFile) IsSDist() bool {
	return f.Command == CommandSDist
}

// Metadata is the distribution metadata written back to the pipeline.
type Metadata struct {
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	Version     string `yaml:"version,omitempty" json:"version,omitempty"`
	DownloadURL string `yaml:"download_url,omitempty" json:"download_url,omitempty"`
}

// Distribution is the set of artifacts for one release.
type Distribution struct {
	Metadata Metadata   `yaml:"metadata"`
	Files    []DistFile `yaml:"dist_files"`
}

// UploadedFile pairs an artifact with the URL it was published at.
type UploadedFile struct {
	DistFile
	URL string `json:"url"`
}

// PublishResult is the outcome of a successful Publish.
type PublishResult struct {
	Repository  string         `json:"repository,omitempty"`
	Uploads     []UploadedFile `json:"uploads"`
	DownloadURL string         `json:"download_url"`
}
