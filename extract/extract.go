// Package extract pulls plain text out of uploaded documents and labels the
// kind of agreement they contain.
package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedFormat is returned for formats without a text extractor
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Text extracts plain text from a document held in r.
// PDFs are parsed page by page; text/* content is returned as is.
func Text(ctx context.Context, filename, mimeType string, r io.ReaderAt, size int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch {
	case mimeType == "application/pdf" || strings.EqualFold(filepath.Ext(filename), ".pdf"):
		return pdfText(r, size)
	case strings.HasPrefix(mimeType, "text/") || strings.EqualFold(filepath.Ext(filename), ".txt"):
		raw, err := io.ReadAll(io.NewSectionReader(r, 0, size))
		if err != nil {
			return "", fmt.Errorf("read text: %w", err)
		}
		if !utf8.Valid(raw) {
			raw = bytes.ToValidUTF8(raw, []byte("�"))
		}
		return normalize(string(raw)), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, mimeType)
	}
}

func pdfText(r io.ReaderAt, size int64) (text string, err error) {
	// the pdf reader panics on some malformed streams
	defer func() {
		if rec := recover(); rec != nil {
			text, err = "", fmt.Errorf("extract pdf text: %v", rec)
		}
	}()

	doc, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	plain, err := doc.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	buf := &bytes.Buffer{}
	if _, err := io.Copy(buf, plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return normalize(buf.String()), nil
}

// normalize unifies line endings and drops blank runs
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	out := lines[:0]
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
