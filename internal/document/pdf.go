package document

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// PDFExtractor extracts flat text from PDF bytes.
type PDFExtractor interface {
	ExtractText(ctx context.Context, pdf []byte) (string, error)
}

// PdfToText extracts text using the pdftotext CLI tool, reading the PDF
// from stdin. Page boundaries survive as form-feed characters.
type PdfToText struct {
	binPath string
}

// NewPdfToText creates a PdfToText extractor. If binPath is empty,
// "pdftotext" is used.
func NewPdfToText(binPath string) *PdfToText {
	if binPath == "" {
		binPath = "pdftotext"
	}
	return &PdfToText{binPath: binPath}
}

// ExtractText runs pdftotext -layout over the given bytes and returns
// stdout.
func (p *PdfToText) ExtractText(ctx context.Context, pdf []byte) (string, error) {
	cmd := exec.CommandContext(ctx, p.binPath, "-layout", "-", "-")
	cmd.Stdin = bytes.NewReader(pdf)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		zap.L().Debug("pdftotext failed", zap.Error(err), zap.String("stderr", stderr.String()))
		return "", err
	}
	return stdout.String(), nil
}

// ParsePDF builds a document from PDF bytes, preserving page boundaries.
// A malformed PDF yields an empty document with a degradation note, never
// an error.
func ParsePDF(ctx context.Context, pdf []byte, url string, extractor PDFExtractor) *Document {
	d := &Document{URL: url, Kind: KindPDF}

	raw, err := extractor.ExtractText(ctx, pdf)
	if err != nil {
		d.degraded = append(d.degraded, "pdf text extraction failed: "+err.Error())
		return d
	}

	for _, page := range strings.Split(raw, "\f") {
		page = normalizeWhitespace(page)
		if page != "" {
			d.pages = append(d.pages, page)
		}
	}
	d.text = strings.Join(d.pages, " ")
	return d
}
