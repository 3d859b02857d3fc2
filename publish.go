package bbdist

import (
	"context"
	"fmt"
	"log/slog"
)

// Uploader uploads a single file and returns the URL it can be downloaded
// from.
type Uploader interface {
	Upload(ctx context.Context, path string) (string, error)
}

// ConnectFunc opens an authenticated Uploader. It is only called once the
// distribution has been checked, so no network traffic happens for an empty
// distribution.
type ConnectFunc func(ctx context.Context) (Uploader, error)

// Publish uploads every file of dist, one at a time and in order, and sets
// dist.Metadata.DownloadURL.
//
// The download URL is the sdist URL if an sdist was uploaded, otherwise the
// URL of the last file. Any error aborts the run and leaves dist.Metadata
// untouched.
func Publish(ctx context.Context, dist *Distribution, connect ConnectFunc) (*PublishResult, error) {
	if dist == nil || len(dist.Files) == 0 {
		return nil, ErrNoDistFiles
	}
	for i, f := range dist.Files {
		if f.Path == "" {
			return nil, fmt.Errorf("%w: dist file %d has no path", ErrInvalidManifest, i)
		}
	}

	uploader, err := connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	uploads := make([]UploadedFile, 0, len(dist.Files))
	var sdistURL, lastURL string

	for _, f := range dist.Files {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		url, uploadErr := uploader.Upload(ctx, f.Path)
		if uploadErr != nil {
			return nil, fmt.Errorf("upload %s: %w", f.Path, uploadErr)
		}

		slog.Info("uploaded dist file", "command", f.Command, "path", f.Path, "url", url)

		uploads = append(uploads, UploadedFile{DistFile: f, URL: url})
		lastURL = url
		if f.IsSDist() {
			sdistURL = url
		}
	}

	downloadURL := lastURL
	if sdistURL != "" {
		downloadURL = sdistURL
	}
	dist.Metadata.DownloadURL = downloadURL

	return &PublishResult{
		Uploads:     uploads,
		DownloadURL: downloadURL,
	}, nil
}
