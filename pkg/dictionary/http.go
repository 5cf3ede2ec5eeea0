package dictionary

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"
)

// HTTPSource fetches per-query word files from a web server that mirrors the
// words directory layout.
type HTTPSource struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// NewHTTPSource fetches from baseURL, at most ratePerSecond requests per
// second. A non-positive rate disables throttling.
func NewHTTPSource(baseURL string, ratePerSecond int, client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	limit := rate.Inf
	burst := 1
	if ratePerSecond > 0 {
		limit = rate.Limit(ratePerSecond)
		burst = ratePerSecond
	}
	return &HTTPSource{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// URL returns the location of q's word file.
func (hs *HTTPSource) URL(q Query) string {
	return hs.baseURL + "/" + q.Path()
}

// Words downloads q's file. A 404 yields no words.
func (hs *HTTPSource) Words(ctx context.Context, q Query) ([]string, error) {
	if err := hs.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	url := hs.URL(q)
	log.Debugf("Checking file at %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	resp, err := hs.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return ParseLines(resp.Body)
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %s returned %s", ErrUnavailable, url, resp.Status)
	}
}
