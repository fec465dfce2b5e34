// Package fetcher retrieves page content over HTTP with retry, backoff,
// per-host rate limiting, and encoding negotiation. Every failure is
// reported as a typed *Error; the caller decides whether a failed page is
// fatal to a run (it never is, for the scrape engine).
package fetcher

import (
	"context"
	"fmt"
	"strings"
)

// FailureKind classifies a fetch failure.
type FailureKind string

const (
	FailTimeout FailureKind = "timeout"
	FailHTTP    FailureKind = "http_error"
	FailDecode  FailureKind = "decode_error"
	FailNetwork FailureKind = "network_error"
)

// Error is a typed fetch failure.
type Error struct {
	Kind       FailureKind
	URL        string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.Kind == FailHTTP {
		return fmt.Sprintf("fetch %s: http %d", e.URL, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Kind, e.Err)
	}
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Result is one successful page fetch. It is consumed immediately by the
// document parser and then discarded.
type Result struct {
	URL         string
	Body        []byte // decompressed raw bytes (PDF and other binary content)
	Text        string // charset-decoded text, empty for binary content
	ContentType string
	Encoding    string // detected charset, e.g. "utf-8"
	StatusCode  int
}

// IsPDF reports whether the fetched content is a PDF document, by header
// or by magic bytes.
func (r *Result) IsPDF() bool {
	if strings.Contains(strings.ToLower(r.ContentType), "application/pdf") {
		return true
	}
	return len(r.Body) >= 5 && string(r.Body[:5]) == "%PDF-"
}

// Fetcher retrieves a single URL. Implementations are safe for concurrent
// use across different URLs.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Result, error)
}
