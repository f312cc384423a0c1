// Package ingestion loads job-description text from local files or URLs and
// normalizes it before ranking.
package ingestion

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jonathan/resume-ranker/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the HTTP fetch fails.
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when no text could be pulled
	// out of the fetched HTML.
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// FromFile reads a job description from a plain-text file and cleans it.
func FromFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("job description file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read job description: %w", err)
	}

	return CleanText(string(content)), nil
}

// FromURL fetches a job posting, extracts its main text and cleans it. When
// useBrowser is set and the plain HTTP fetch yields too little text, the page
// is re-rendered in a headless browser before giving up.
func FromURL(ctx context.Context, urlStr string, useBrowser, verbose bool) (string, error) {
	html, err := fetch.URL(ctx, urlStr)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	if verbose {
		log.Printf("[VERBOSE] fetched %s: %d bytes", urlStr, len(html))
	}

	text, err := fetch.ExtractMainText(html)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	if useBrowser && fetch.ShouldUseBrowser(text) {
		if verbose {
			log.Printf("[VERBOSE] content too short (%d chars), falling back to browser rendering", len(text))
		}
		browserHTML, browserErr := fetch.WithBrowser(ctx, urlStr, verbose)
		if browserErr != nil {
			if verbose {
				log.Printf("[VERBOSE] browser rendering failed: %v, keeping HTTP content", browserErr)
			}
		} else if rendered, renderErr := fetch.ExtractMainText(browserHTML); renderErr == nil {
			text = rendered
		}
	}

	return CleanText(text), nil
}

// CleanText normalizes line endings, trims trailing whitespace per line and
// collapses runs of blank lines, preserving the document's line structure so
// section and name heuristics still work on it.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	blanks := 0
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			blanks++
			// At most one blank line in a row.
			if blanks > 1 {
				continue
			}
			cleaned = append(cleaned, "")
			continue
		}
		blanks = 0
		cleaned = append(cleaned, line)
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}
