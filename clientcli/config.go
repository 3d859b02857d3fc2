package clientcli

import (
	"fmt"
	"strings"

	"github.com/sagarc03/bbdist"
)

const (
	// DefaultHost is the hosting service base URL.
	DefaultHost = "https://bitbucket.org"

	// DefaultStorageURL is the object storage endpoint uploads are POSTed to.
	DefaultStorageURL = "https://bbuseruploads.s3.amazonaws.com/"
)

// Config holds resolved client configuration for one repository.
type Config struct {
	Host       string
	StorageURL string
	Repository string
	Username   string
	Password   string
}

// WithDefaults returns a copy of the config with default values applied.
// Host loses any trailing slash.
func (c *Config) WithDefaults() *Config {
	cfg := *c
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	cfg.Host = strings.TrimSuffix(cfg.Host, "/")
	if cfg.StorageURL == "" {
		cfg.StorageURL = DefaultStorageURL
	}
	return &cfg
}

// Validate checks the repository identifier and credentials.
func (c *Config) Validate() error {
	if err := bbdist.ValidateRepository(c.Repository); err != nil {
		return err
	}
	if c.Username == "" {
		return ErrUsernameRequired
	}
	if c.Password == "" {
		return ErrPasswordRequired
	}
	return nil
}

// SignInURL returns the sign-in page URL.
func (c *Config) SignInURL() string {
	return c.Host + "/account/signin/"
}

// DownloadsURL returns the repository's download-management page URL.
func (c *Config) DownloadsURL() string {
	return c.Host + "/" + c.Repository + "/downloads"
}

// DownloadURL returns the public URL of an uploaded file.
func (c *Config) DownloadURL(basename string) string {
	return fmt.Sprintf("%s/%s", c.DownloadsURL(), basename)
}
