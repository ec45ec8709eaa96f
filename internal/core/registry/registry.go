// Package registry looks up published package versions on an npm registry.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultURL is the public npm registry.
const DefaultURL = "https://registry.npmjs.org"

// abbreviatedMetadata asks the registry for the small install document
// instead of the full packument.
const abbreviatedMetadata = "application/vnd.npm.install-v1+json"

// LookupError reports a package whose version could not be determined.
type LookupError struct {
	Package string
	Err     error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("failed to look up version of %s: %v", e.Package, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// Client queries a registry over HTTP.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a Client for baseURL, falling back to DefaultURL when empty.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: http.DefaultClient,
	}
}

type packageDocument struct {
	Name     string            `json:"name"`
	DistTags map[string]string `json:"dist-tags"`
}

// packagePath escapes the scope separator so scoped names stay one path segment.
func packagePath(name string) string {
	if strings.HasPrefix(name, "@") {
		return strings.Replace(name, "/", "%2F", 1)
	}
	return name
}

// Latest returns the version tagged "latest" for the named package.
func (c *Client) Latest(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", &LookupError{Package: name, Err: fmt.Errorf("empty package name")}
	}

	url := fmt.Sprintf("%s/%s", c.BaseURL, packagePath(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &LookupError{Package: name, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Accept", abbreviatedMetadata)

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return "", &LookupError{Package: name, Err: fmt.Errorf("failed to perform GET request to %s: %w", url, err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return "", &LookupError{Package: name, Err: fmt.Errorf("package not found in registry %s", c.BaseURL)}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &LookupError{Package: name, Err: fmt.Errorf("received status code %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &LookupError{Package: name, Err: fmt.Errorf("failed to read response body from %s: %w", url, err)}
	}

	var doc packageDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return "", &LookupError{Package: name, Err: fmt.Errorf("decoding registry response: %w", err)}
	}

	latest := doc.DistTags["latest"]
	if latest == "" {
		return "", &LookupError{Package: name, Err: fmt.Errorf("no latest dist-tag published")}
	}
	return latest, nil
}
