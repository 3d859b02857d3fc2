// Package clientcli provides a client for uploading release files to a
// Bitbucket repository's downloads area.
//
// Bitbucket does not proxy uploads. The downloads page carries a signed-POST
// policy (acl, success_action_redirect, AWSAccessKeyId, Policy, Signature,
// Content-Type, key) that lets the browser POST the file straight to object
// storage. The client signs in like a browser would, scrapes that policy and
// submits the multipart form itself.
//
// # Basic Usage
//
// Create a client (this signs in) and upload a file:
//
//	client, err := clientcli.New(ctx, &clientcli.Config{
//		Repository: "owner/repo",
//		Username:   "user",
//		Password:   "secret",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	url, err := client.Upload(ctx, "dist/pkg-1.0.tar.gz")
//
// # Sessions
//
// A Client keeps its cookies in a private jar for its whole lifetime and
// never follows redirects on its own. Sign-in does not check whether the
// credentials were accepted; a rejected session shows up on the first Upload
// as ErrNotAuthenticated or an *APIError.
//
// # Errors
//
// Network failures are returned as *TransportError, unexpected status codes
// as *APIError, and layout changes on scraped pages as *scrape.FieldError.
// Nothing is retried.
//
// # Output Formatting
//
// Use formatters for human-readable or JSON output:
//
//	formatter := clientcli.NewFormatter(jsonOutput, quiet)
//	formatter.FormatPublish(os.Stdout, result)
package clientcli
