package fetch

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/SustemFox/mods/pkg/logging"
)

const userAgent = "fontpatch/1.0"

// NetworkError reports a transport-level failure reaching the remote host
// (connection refused, timeout, DNS failure).
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// StatusError reports a response with a non-2xx status code.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status fetching %s: %s", e.URL, e.Status)
}

// Fetcher retrieves a remote resource into memory. Implementations must not
// retry internally; a failed fetch surfaces to the caller.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher downloads over HTTPS with certificate validation enforced by
// the underlying client.
type HTTPFetcher struct {
	Client *http.Client
	// Progress enables a progress bar on stderr while downloading.
	Progress bool
}

// NewHTTPFetcher returns a fetcher on a TLS-hardened client with sane
// timeouts. Interactive callers can enable Progress.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{Client: newSecureClient(), Progress: true}
}

func newSecureClient() *http.Client {
	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	return &http.Client{
		Transport: &http.Transport{
			DialContext: dialer.DialContext,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
			ForceAttemptHTTP2:     true,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
		Timeout: 60 * time.Second,
	}
}

// Fetch performs a single GET round trip and returns the response body.
// Transport failures surface as *NetworkError, non-2xx responses as
// *StatusError.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	client := f.Client
	if client == nil {
		client = newSecureClient()
	}

	logging.GetLogger(ctx).Debug("fetching", "url", url)
	resp, err := client.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var buf bytes.Buffer
	var out io.Writer = &buf
	if f.Progress {
		bar := progressbar.NewOptions64(
			resp.ContentLength,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetWidth(30),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetDescription("downloading"),
			progressbar.OptionThrottle(80*time.Millisecond),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(os.Stderr)
			}),
		)
		out = io.MultiWriter(&buf, bar)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	return buf.Bytes(), nil
}
