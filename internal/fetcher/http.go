package fetcher

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/time/rate"

	"github.com/inhuren/agency-scraper/internal/resilience"
)

const maxBodyBytes = 4 * 1024 * 1024

// HTTPOptions configures the HTTP fetcher.
type HTTPOptions struct {
	UserAgent   string
	Timeout     time.Duration
	MaxRetries  int
	HostRate    rate.Limit // requests per second per host
	HostBurst   int
}

// HTTPFetcher implements Fetcher using net/http with retry, per-host rate
// limiting, and a charset/compression fallback chain. It holds no
// per-request state beyond the limiter map and is safe for concurrent use.
type HTTPFetcher struct {
	client   *http.Client
	opts     HTTPOptions
	limiters *hostLimiters
}

// NewHTTPFetcher creates a new HTTPFetcher with the given options.
func NewHTTPFetcher(opts HTTPOptions) *HTTPFetcher {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = 3
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "Mozilla/5.0 (compatible; AgencyScraper/1.0)"
	}
	if opts.HostRate == 0 {
		opts.HostRate = 2
	}
	if opts.HostBurst == 0 {
		opts.HostBurst = 4
	}
	transport := &http.Transport{
		MaxIdleConnsPerHost: 10,
		MaxConnsPerHost:     20,
		IdleConnTimeout:     90 * time.Second,
		// Decompression is handled in decodeBody so the fallback chain
		// sees the declared encoding.
		DisableCompression: true,
	}
	return &HTTPFetcher{
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
		opts:     opts,
		limiters: newHostLimiters(opts.HostRate, opts.HostBurst),
	}
}

// Fetch retrieves a URL. Transient failures (timeout, connection reset,
// 5xx, 429) are retried with exponential backoff; other 4xx and malformed
// URLs fail immediately. The returned error is always a typed *Error.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (*Result, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, &Error{Kind: FailNetwork, URL: rawURL, Err: eris.New("malformed url")}
	}

	cfg := resilience.DefaultRetryConfig()
	cfg.MaxAttempts = f.opts.MaxRetries
	cfg.OnRetry = resilience.RetryLogger("fetcher", rawURL)

	res, err := resilience.DoVal(ctx, cfg, func(ctx context.Context) (*Result, error) {
		if err := f.limiters.wait(ctx, u.Host); err != nil {
			return nil, &Error{Kind: FailNetwork, URL: rawURL, Err: err}
		}
		return f.fetchOnce(ctx, rawURL)
	})
	if err != nil {
		var fe *Error
		if eris.As(err, &fe) {
			return nil, fe
		}
		if ctx.Err() == context.DeadlineExceeded {
			return nil, &Error{Kind: FailTimeout, URL: rawURL, Err: err}
		}
		return nil, &Error{Kind: FailNetwork, URL: rawURL, Err: err}
	}
	return res, nil
}

func (f *HTTPFetcher) fetchOnce(ctx context.Context, rawURL string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &Error{Kind: FailNetwork, URL: rawURL, Err: eris.Wrap(err, "fetcher: create request")}
	}
	req.Header.Set("User-Agent", f.opts.UserAgent)
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("Accept-Language", "nl,en;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, resilience.NewTransientError(&Error{Kind: FailTimeout, URL: rawURL, Err: err}, 0)
		}
		if resilience.IsTransient(err) {
			return nil, resilience.NewTransientError(err, 0)
		}
		return nil, &Error{Kind: FailNetwork, URL: rawURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resilience.IsTransientHTTPStatus(resp.StatusCode) {
		return nil, resilience.NewTransientError(
			&Error{Kind: FailHTTP, URL: rawURL, StatusCode: resp.StatusCode},
			resp.StatusCode,
		)
	}
	if resp.StatusCode >= 400 {
		return nil, &Error{Kind: FailHTTP, URL: rawURL, StatusCode: resp.StatusCode}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if isTimeout(err) {
			return nil, resilience.NewTransientError(&Error{Kind: FailTimeout, URL: rawURL, Err: err}, 0)
		}
		return nil, resilience.NewTransientError(&Error{Kind: FailNetwork, URL: rawURL, Err: err}, 0)
	}

	contentType := resp.Header.Get("Content-Type")
	body, encoding, text, err := decodeBody(raw, resp.Header.Get("Content-Encoding"), contentType)
	if err != nil {
		return nil, &Error{Kind: FailDecode, URL: rawURL, Err: err}
	}

	return &Result{
		URL:         rawURL,
		Body:        body,
		Text:        text,
		ContentType: contentType,
		Encoding:    encoding,
		StatusCode:  resp.StatusCode,
	}, nil
}

// decodeBody applies the declared content encoding, then falls back
// through a fixed list of strategies before giving up. Some sites declare
// an encoding their CDN does not actually apply, so a failed gzip decode
// falls through to treating the body as plain.
func decodeBody(raw []byte, contentEncoding, contentType string) (body []byte, encoding, text string, err error) {
	body = raw

	declared := strings.Contains(strings.ToLower(contentEncoding), "gzip")
	magic := len(raw) >= 2 && raw[0] == 0x1f && raw[1] == 0x8b
	if declared || magic {
		if plain, gzErr := gunzip(raw); gzErr == nil {
			body = plain
		} else if magic {
			// Gzip magic bytes but an unreadable stream: nothing else can
			// decode this.
			return nil, "", "", eris.Wrap(gzErr, "fetcher: gunzip")
		} else {
			zap.L().Debug("declared gzip did not decode, treating as plain",
				zap.String("content_encoding", contentEncoding))
		}
	}

	if isBinaryType(contentType, body) {
		return body, "", "", nil
	}

	// Charset negotiation: declared charset first, then sniffed, then
	// Windows-1252, then raw bytes as-is.
	if r, name, _ := charset.DetermineEncoding(body, contentType); r != nil {
		if decoded, decErr := io.ReadAll(r.NewDecoder().Reader(bytes.NewReader(body))); decErr == nil {
			return body, name, string(decoded), nil
		}
	}
	if decoded, decErr := charmap.Windows1252.NewDecoder().Bytes(body); decErr == nil {
		return body, "windows-1252", string(decoded), nil
	}
	return body, "unknown", string(body), nil
}

func gunzip(raw []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer func() { _ = zr.Close() }()
	return io.ReadAll(io.LimitReader(zr, maxBodyBytes))
}

func isBinaryType(contentType string, body []byte) bool {
	ct := strings.ToLower(contentType)
	if strings.Contains(ct, "application/pdf") || strings.Contains(ct, "image/") ||
		strings.Contains(ct, "application/octet-stream") {
		return true
	}
	return len(body) >= 5 && string(body[:5]) == "%PDF-"
}

func isTimeout(err error) bool {
	var ne interface{ Timeout() bool }
	if eris.As(err, &ne) {
		return ne.Timeout()
	}
	return strings.Contains(strings.ToLower(err.Error()), "timeout")
}
