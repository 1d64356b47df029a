package changelog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// DefaultFetchTimeout is the default timeout for remote changelog fetches.
const DefaultFetchTimeout = 15 * time.Second

// Fetch downloads the changelog document from the given URL. The body
// is spooled through a transient temporary file which is removed on
// every exit path; removal failures are ignored. The context controls
// timeout and cancellation.
//
// A fetch that fails or returns an empty document is not distinguished
// from a document missing the requested header: downstream extraction
// simply finds no matching section.
func Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching changelog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching changelog: unexpected status code %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp("", "deployctl-changelog-*.md")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		return "", fmt.Errorf("writing changelog to temp file: %w", err)
	}

	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewinding temp file: %w", err)
	}

	body, err := io.ReadAll(tmp)
	if err != nil {
		return "", fmt.Errorf("reading changelog: %w", err)
	}

	return string(body), nil
}
