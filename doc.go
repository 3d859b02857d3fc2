// Package bbdist publishes packaging-pipeline artifacts to a Bitbucket
// repository's downloads area and records the resulting download URL.
//
// The package models the build side of a release: the list of dist files a
// packaging pipeline produced and the metadata field that receives the final
// download URL. The network side lives in the clientcli package; this package
// only needs something that can upload a file and return its URL.
//
// # Key Components
//
//   - DistFile: one artifact as (command, target, path)
//   - Distribution: the artifacts of a build plus its Metadata
//   - Uploader: interface implemented by clientcli.Client
//   - Publish: uploads every artifact in order and sets Metadata.DownloadURL
//
// # Download URL Selection
//
// The recorded download URL is the URL of the sdist artifact when one was
// uploaded, otherwise the URL of the last uploaded artifact. Metadata is
// only touched after every upload succeeded.
//
// # Example Usage
//
//	dist := &bbdist.Distribution{
//		Files: []bbdist.DistFile{
//			bbdist.ClassifyDistFile("dist/pkg-1.0.tar.gz"),
//			bbdist.ClassifyDistFile("dist/pkg-1.0-py3-none-any.whl"),
//		},
//	}
//
//	result, err := bbdist.Publish(ctx, dist, func(ctx context.Context) (bbdist.Uploader, error) {
//		return clientcli.New(ctx, cfg)
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.DownloadURL)
package bbdist
