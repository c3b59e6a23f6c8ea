// Package fetch retrieves raw HTML with a browser identity, retries, and a
// degrade-not-fail contract: an unreachable page yields empty content, never
// an error, so a single dead URL cannot abort a pipeline run.
package fetch

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// DefaultUserAgent is a fixed desktop Chrome identity. Sites that block
// default Go client identities must still be reachable.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) " +
	"Chrome/114.0.0.0 Safari/537.36"

// maxBodyBytes caps how much of a page is read. Contact pages are small;
// anything past this is boilerplate or an abuse response.
const maxBodyBytes = 2 * 1024 * 1024

// Options configures a Fetcher.
type Options struct {
	UserAgent         string
	Timeout           time.Duration
	MaxAttempts       int
	RequestsPerSecond float64
}

// Fetcher retrieves page HTML sequentially with retries.
type Fetcher struct {
	client      *http.Client
	userAgent   string
	maxAttempts int
	limiter     *rate.Limiter
}

// New creates a Fetcher. Zero option fields get defaults matching the
// scraping profile this pipeline was tuned for.
func New(opts Options) *Fetcher {
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = 20 * time.Second
	}
	if opts.MaxAttempts == 0 {
		opts.MaxAttempts = 3
	}
	if opts.RequestsPerSecond == 0 {
		opts.RequestsPerSecond = 4
	}

	return &Fetcher{
		client: &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		userAgent:   opts.UserAgent,
		maxAttempts: opts.MaxAttempts,
		limiter:     rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1),
	}
}

// Fetch retrieves the HTML at rawURL. Attempts are sequential; network
// errors and non-200 statuses are retried up to MaxAttempts. On exhaustion
// it returns "" — callers must treat empty as "no data".
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) string {
	if strings.TrimSpace(rawURL) == "" {
		return ""
	}

	log := zap.L().With(zap.String("url", rawURL))

	for attempt := 1; attempt <= f.maxAttempts; attempt++ {
		if err := f.limiter.Wait(ctx); err != nil {
			return ""
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			log.Warn("fetch: invalid url", zap.Error(err))
			return ""
		}
		req.Header.Set("User-Agent", f.userAgent)
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

		resp, err := f.client.Do(req)
		if err != nil {
			log.Warn("fetch: request failed", zap.Int("attempt", attempt), zap.Error(err))
			continue
		}

		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			log.Warn("fetch: unexpected status",
				zap.Int("attempt", attempt),
				zap.Int("status", resp.StatusCode),
			)
			continue
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		_ = resp.Body.Close()
		if err != nil {
			log.Warn("fetch: read body failed", zap.Int("attempt", attempt), zap.Error(err))
			continue
		}

		return string(body)
	}

	log.Debug("fetch: all attempts exhausted")
	return ""
}
