// Package portal fetches entities from a research data portal. The contract
// is deliberately narrow: given an entity ID, download its file once, cache
// it locally, and hand back the path. The portal's richer API surface
// (provenance, annotations, uploads) is not modeled.
package portal

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/carbocation/pfx"
)

// Client talks to one portal with one credential. A zero HTTPClient falls
// back to http.DefaultClient.
type Client struct {
	BaseURL    string
	Token      string
	CacheDir   string
	HTTPClient *http.Client
}

// New returns a Client that authenticates with a bearer token and caches
// downloads under cacheDir.
func New(baseURL, token, cacheDir string) *Client {
	return &Client{
		BaseURL:  baseURL,
		Token:    token,
		CacheDir: cacheDir,
	}
}

// Fetch downloads the file behind entityID into the cache directory and
// returns its local path. A file already present in the cache is reused
// without touching the network, since portal entities are immutable once
// published. There is no retry: a failed fetch is terminal for the run and
// the run is simply re-launched.
func (c *Client) Fetch(entityID string) (string, error) {
	if entityID == "" {
		return "", fmt.Errorf("empty entity ID")
	}

	local := filepath.Join(c.CacheDir, entityID)
	if _, err := os.Stat(local); err == nil {
		log.Println("Already downloaded", entityID)
		return local, nil
	}

	if err := os.MkdirAll(c.CacheDir, 0o755); err != nil {
		return "", pfx.Err(err)
	}

	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/entity/%s/file", c.BaseURL, entityID), nil)
	if err != nil {
		return "", pfx.Err(err)
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	log.Println("Downloading", entityID)

	resp, err := client.Do(req)
	if err != nil {
		return "", pfx.Err(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("entity %s: portal returned %s", entityID, resp.Status)
	}

	// Write to a temp name first so a partial download never masquerades as
	// a cached entity.
	tmp, err := os.CreateTemp(c.CacheDir, entityID+".partial.*")
	if err != nil {
		return "", pfx.Err(err)
	}

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", pfx.Err(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", pfx.Err(err)
	}

	if err := os.Rename(tmp.Name(), local); err != nil {
		os.Remove(tmp.Name())
		return "", pfx.Err(err)
	}

	return local, nil
}
