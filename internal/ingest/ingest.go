// Package ingest loads raw insight payloads for the CLI. Upstream
// responses are saved in whatever shape the backend produced that day:
// a JSON object, a plain legacy string, or occasionally a whole HTML
// document wrapping the text. The loader normalizes all of them to the
// raw string the formatters consume; it never judges content, only
// unwraps transport noise.
package ingest

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ReadPayload reads a raw payload from path, or from r when path is
// "-" or empty. HTML document wrappers are stripped; JSON and plain
// text pass through untouched.
func ReadPayload(path string, r io.Reader) (string, error) {
	var data []byte
	var err error

	if path == "" || path == "-" {
		data, err = io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("failed to read payload from stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read payload file %s: %w", path, err)
		}
	}

	return Normalize(string(data)), nil
}

// Normalize unwraps an HTML document payload to its text content and
// leaves everything else alone.
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !looksLikeHTMLDocument(trimmed) {
		return trimmed
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(trimmed))
	if err != nil {
		return trimmed
	}

	body := doc.Find("body")
	if body.Length() == 0 {
		return trimmed
	}
	text := strings.TrimSpace(body.Text())
	if text == "" {
		return trimmed
	}
	return text
}

// looksLikeHTMLDocument is deliberately narrow: only full documents are
// unwrapped. Inline markup like <br> inside a legacy string is insight
// content and belongs to the sanitizer, not the loader.
func looksLikeHTMLDocument(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "<!doctype html") || strings.HasPrefix(lower, "<html")
}
