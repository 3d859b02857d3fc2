package clientcli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"

	"github.com/sagarc03/bbdist/scrape"
)

const (
	// DefaultTimeout is the default HTTP client timeout. Uploads of large
	// artifacts over slow links may need more; see WithTimeout.
	DefaultTimeout = 5 * time.Minute

	// maxPageSize caps how much of an HTML page is read for scraping.
	maxPageSize = 8 << 20

	// maxSignInRedirects bounds the redirects followed to reach the
	// sign-in form.
	maxSignInRedirects = 10
)

// Form field names.
const (
	csrfField = "csrfmiddlewaretoken"
	fileField = "file"
)

// policyFields are the signed-POST fields scraped from the downloads page,
// in the order they are submitted to object storage.
var policyFields = []string{
	"acl",
	"success_action_redirect",
	"AWSAccessKeyId",
	"Policy",
	"Signature",
	"Content-Type",
	"key",
}

// Client signs in to the hosting service and uploads files to a
// repository's downloads area.
//
// A Client owns its cookie session. It is not safe for concurrent use:
// every request updates the cookies the next one sends.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *slog.Logger
	timeout    time.Duration
	signedIn   bool
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. The client is copied; its cookie
// jar is used if set, and redirects are never followed automatically.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		cp := *client
		c.httpClient = &cp
	}
}

// WithTimeout sets the HTTP client timeout. It applies to a client given
// with WithHTTPClient as well, whatever the option order.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Client and signs in with the configured credentials.
// No Client is returned if sign-in fails.
func New(ctx context.Context, cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, ErrConfigRequired
	}

	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config:     cfg,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.timeout > 0 {
		c.httpClient.Timeout = c.timeout
	}

	if c.httpClient.Jar == nil {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("create cookie jar: %w", err)
		}
		c.httpClient.Jar = jar
	}
	c.httpClient.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	c.logger = c.logger.With("session", uuid.NewString(), "repository", cfg.Repository)

	if err := c.SignIn(ctx, cfg.Username, cfg.Password); err != nil {
		return nil, err
	}

	return c, nil
}

// SignIn submits the sign-in form. The CSRF token is scraped from the
// sign-in page and posted back along with the page's cookies. Redirects on
// the way to the form are followed; the form is always posted to the
// configured sign-in URL.
//
// The response content is not inspected: wrong credentials are only
// noticed when a later Upload is rejected.
func (c *Client) SignIn(ctx context.Context, username, password string) error {
	signInURL := c.config.SignInURL()

	resp, page, err := c.getFollowing(ctx, "fetch sign-in page", signInURL, maxSignInRedirects)
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sign in: %w", parseServerError(resp.StatusCode, page))
	}

	token, err := scrape.ExtractField(string(page), csrfField)
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	form.Set(csrfField, token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, signInURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", signInURL)

	resp, err = c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: "submit sign-in form", URL: signInURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return &TransportError{Op: "read sign-in response", URL: signInURL, Err: err}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sign in: %w", parseServerError(resp.StatusCode, body))
	}

	c.signedIn = true
	c.logger.Info("signed in", "username", username)
	return nil
}

// Upload uploads the file at path to the repository's downloads area and
// returns its download URL.
//
// The upload policy is scraped from the downloads page on every call, so
// each file gets a fresh signature.
func (c *Client) Upload(ctx context.Context, path string) (string, error) {
	if !c.signedIn {
		return "", ErrNotSignedIn
	}
	if path == "" {
		return "", fmt.Errorf("upload: %w", ErrEmptyPath)
	}

	fields, err := c.uploadPolicy(ctx)
	if err != nil {
		return "", err
	}

	basename := filepath.Base(path)
	fields.Set("Content-Type", detectContentType(basename))
	key, _ := fields.Get("key")
	fields.Set("key", key+basename)

	if err := c.postFile(ctx, fields, path, basename); err != nil {
		return "", err
	}

	downloadURL := c.config.DownloadURL(basename)
	c.logger.Info("upload complete", "file", basename, "url", downloadURL)
	return downloadURL, nil
}

// uploadPolicy scrapes the signed-POST fields from the downloads page.
func (c *Client) uploadPolicy(ctx context.Context) (*FormFields, error) {
	downloadsURL := c.config.DownloadsURL()

	resp, page, err := c.get(ctx, "fetch downloads page", downloadsURL)
	if err != nil {
		return nil, err
	}

	switch {
	case isRedirect(resp.StatusCode):
		return nil, fmt.Errorf("%w: %s redirected to %q", ErrNotAuthenticated, downloadsURL, resp.Header.Get("Location"))
	case resp.StatusCode != http.StatusOK:
		return nil, parseServerError(resp.StatusCode, page)
	}

	values, err := scrape.ExtractFields(string(page), policyFields...)
	if err != nil {
		return nil, fmt.Errorf("read upload policy: %w", err)
	}

	fields := &FormFields{}
	for i, name := range policyFields {
		fields.Set(name, values[i])
	}
	return fields, nil
}

// postFile submits fields and the file at path to object storage, then
// completes the handshake if storage answers with a redirect.
func (c *Client) postFile(ctx context.Context, fields *FormFields, path, basename string) error {
	storageURL := c.config.StorageURL

	file, err := os.Open(path) //#nosec G304 -- path is a user-provided dist file
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}

	body, err := newMultipartBody(fields, fileField, basename, file, info.Size())
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, storageURL, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", body.ContentType)
	req.ContentLength = body.ContentLength

	c.logger.Debug("uploading file", "file", basename, "size", info.Size(), "storage", storageURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: "upload file", URL: storageURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return &TransportError{Op: "read upload response", URL: storageURL, Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return parseServerError(resp.StatusCode, respBody)
	}

	if !isRedirect(resp.StatusCode) {
		return nil
	}
	location, err := resp.Location()
	if errors.Is(err, http.ErrNoLocation) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("parse redirect location: %w", err)
	}
	return c.followRedirect(ctx, location.String())
}

// followRedirect issues the single GET that completes an upload.
func (c *Client) followRedirect(ctx context.Context, location string) error {
	c.logger.Debug("following upload redirect", "location", location)

	resp, body, err := c.get(ctx, "follow upload redirect", location)
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return parseServerError(resp.StatusCode, body)
	}
	return nil
}

// get performs a GET and reads the body. The response body is closed before
// returning.
func (c *Client) get(ctx context.Context, op, rawURL string) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, &TransportError{Op: op, URL: rawURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return nil, nil, &TransportError{Op: op, URL: rawURL, Err: err}
	}
	return resp, body, nil
}

// getFollowing is get, following up to maxHops redirects. A redirect
// without a Location header is returned as is.
func (c *Client) getFollowing(ctx context.Context, op, rawURL string, maxHops int) (*http.Response, []byte, error) {
	for hops := 0; ; hops++ {
		resp, body, err := c.get(ctx, op, rawURL)
		if err != nil {
			return nil, nil, err
		}
		if !isRedirect(resp.StatusCode) {
			return resp, body, nil
		}

		location, err := resp.Location()
		if errors.Is(err, http.ErrNoLocation) {
			return resp, body, nil
		}
		if err != nil {
			return nil, nil, fmt.Errorf("parse redirect location: %w", err)
		}
		if hops >= maxHops {
			return nil, nil, fmt.Errorf("%s %s: %w", op, rawURL, ErrTooManyRedirects)
		}

		c.logger.Debug("following redirect", "from", rawURL, "to", location.String())
		rawURL = location.String()
	}
}

func isRedirect(status int) bool {
	return status >= http.StatusMultipleChoices && status < http.StatusBadRequest
}

// distContentTypes maps archive suffixes that mime.TypeByExtension gets
// wrong or doesn't know to the type sent to object storage.
var distContentTypes = []struct {
	suffix      string
	contentType string
}{
	{".tar.gz", "application/x-tar"},
	{".tar.bz2", "application/x-tar"},
	{".tar.xz", "application/x-tar"},
	{".tgz", "application/x-tar"},
	{".tar", "application/x-tar"},
	{".zip", "application/zip"},
	{".whl", "application/zip"},
	{".egg", "application/zip"},
}

// detectContentType returns the MIME type for a file name, or "" if it
// cannot be guessed.
func detectContentType(name string) string {
	for _, t := range distContentTypes {
		if strings.HasSuffix(name, t.suffix) {
			return t.contentType
		}
	}

	ext := filepath.Ext(name)
	if ext == "" {
		return ""
	}
	return mime.TypeByExtension(ext)
}
