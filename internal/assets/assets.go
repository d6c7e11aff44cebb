// Package assets downloads third-party CSS/JS assets named in a YAML
// manifest into the static tree, for building the site offline.
package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

// Asset is one manifest item: a source URL and a destination path
// relative to the static directory.
type Asset struct {
	URL  string `yaml:"url"`
	Dest string `yaml:"dest"`
}

// Manifest lists the assets to import.
type Manifest struct {
	Assets []Asset `yaml:"assets"`
}

// LoadManifest reads a YAML asset manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	for i, a := range m.Assets {
		if a.URL == "" || a.Dest == "" {
			return nil, fmt.Errorf("manifest asset %d: url and dest are required", i+1)
		}
		if !filepath.IsLocal(a.Dest) {
			return nil, fmt.Errorf("manifest asset %d: dest %q escapes the static directory", i+1, a.Dest)
		}
	}
	return &m, nil
}

const (
	defaultTimeout = 30 * time.Second

	// requestsPerSecond keeps downloads polite to CDNs.
	requestsPerSecond = 4
)

// Fetcher downloads assets through a rate-limited HTTP client.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
}

// NewFetcher creates a Fetcher with default timeout and rate limit.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: defaultTimeout},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// WithHTTPClient replaces the HTTP client (for testing).
func (f *Fetcher) WithHTTPClient(hc *http.Client) *Fetcher {
	f.client = hc
	return f
}

// Fetch downloads every manifest asset under staticDir. The first
// failure aborts the import; partially written files are removed.
func (f *Fetcher) Fetch(ctx context.Context, m *Manifest, staticDir string) error {
	for _, a := range m.Assets {
		if err := f.fetchOne(ctx, a, staticDir); err != nil {
			return fmt.Errorf("fetching %s: %w", a.URL, err)
		}
	}
	return nil
}

func (f *Fetcher) fetchOne(ctx context.Context, a Asset, staticDir string) error {
	if err := f.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.URL, nil)
	if err != nil {
		return err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	dest := filepath.Join(staticDir, a.Dest)
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(dest)
		return err
	}
	return out.Close()
}
