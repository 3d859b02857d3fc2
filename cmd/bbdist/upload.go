package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/sagarc03/bbdist"
	"github.com/sagarc03/bbdist/clientcli"
	"github.com/sagarc03/bbdist/config"
)

var (
	uploadManifest    string
	uploadMetadataOut string
)

var uploadCmd = &cobra.Command{
	Use:   "upload [dist-file...]",
	Short: "Upload dist files to a repository's downloads",
	Long: `Upload dist files to a Bitbucket repository's downloads.

Files are uploaded one at a time in the order given. Files from --manifest
come first, followed by the file arguments. The kind of each file argument
(sdist, bdist_wheel, ...) is guessed from its name.

The recorded download URL is the sdist's URL if an sdist was uploaded,
otherwise the URL of the last file.

Examples:
  bbdist upload -R owner/repo dist/pkg-1.0.tar.gz dist/pkg-1.0-py3-none-any.whl
  bbdist upload -R owner/repo -u alice --manifest dist.yaml
  bbdist upload -R owner/repo -o build/metadata.yaml -q dist/*`,
	PreRunE: loadConfig,
	RunE:    runUpload,
}

func init() {
	uploadCmd.Flags().StringP("repository", "R", "", "Bitbucket repository name e.g. user/reponame (env: BBDIST_BITBUCKET_REPOSITORY)")
	uploadCmd.Flags().StringP("username", "u", "", "Bitbucket username (env: BBDIST_BITBUCKET_USERNAME)")
	uploadCmd.Flags().StringP("password", "p", "", "Bitbucket password (env: BBDIST_BITBUCKET_PASSWORD)")
	uploadCmd.Flags().String("host", "", "Bitbucket base URL (default: https://bitbucket.org)")
	uploadCmd.Flags().String("storage-url", "", "object storage upload URL (default: https://bbuseruploads.s3.amazonaws.com/)")
	uploadCmd.Flags().Duration("timeout", 0, "HTTP timeout per request (default: 5m)")
	uploadCmd.Flags().StringVarP(&uploadManifest, "manifest", "m", "", "YAML manifest listing dist files")
	uploadCmd.Flags().StringVarP(&uploadMetadataOut, "metadata-out", "o", "", "write distribution metadata with the download URL to this YAML file")
}

func runUpload(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return err
	}

	dist, err := buildDistribution(uploadManifest, args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	result, err := bbdist.Publish(ctx, dist, connector(cfg))
	if err != nil {
		return err
	}
	result.Repository = cfg.Bitbucket.Repository

	if uploadMetadataOut != "" {
		if err := dist.Metadata.Save(uploadMetadataOut); err != nil {
			return fmt.Errorf("save metadata: %w", err)
		}
		slog.Debug("metadata written", "path", uploadMetadataOut)
	}

	return getFormatter().FormatPublish(os.Stdout, result)
}

// buildDistribution combines the manifest (if any) with file arguments.
func buildDistribution(manifest string, args []string) (*bbdist.Distribution, error) {
	dist := &bbdist.Distribution{}
	if manifest != "" {
		loaded, err := bbdist.LoadManifest(manifest)
		if err != nil {
			return nil, err
		}
		dist = loaded
	}

	for _, path := range args {
		dist.Files = append(dist.Files, bbdist.ClassifyDistFile(path))
	}
	return dist, nil
}

// connector returns a ConnectFunc that resolves missing credentials and
// signs in. Prompts only happen once there is something to upload.
func connector(cfg *config.Config) bbdist.ConnectFunc {
	return func(ctx context.Context) (bbdist.Uploader, error) {
		bb := cfg.Bitbucket

		username, password, err := resolveCredentials(bb.Username, bb.Password)
		if err != nil {
			return nil, err
		}

		opts := []clientcli.Option{clientcli.WithLogger(slog.Default())}
		if bb.Timeout > 0 {
			opts = append(opts, clientcli.WithTimeout(bb.Timeout))
		}

		return clientcli.New(ctx, &clientcli.Config{
			Host:       bb.Host,
			StorageURL: bb.StorageURL,
			Repository: bb.Repository,
			Username:   username,
			Password:   password,
		}, opts...)
	}
}
