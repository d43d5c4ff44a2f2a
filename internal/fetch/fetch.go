// Package fetch retrieves a job description from a URL and extracts
// its readable text. Network access lives here, outside the scoring
// core.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// userAgent identifies the assistant to job boards.
const userAgent = "Mozilla/5.0 (compatible; ResumeAssistant/1.0)"

// maxBodyBytes caps the response body read.
const maxBodyBytes = 5 * 1024 * 1024

// noiseSelector matches elements stripped before text extraction.
const noiseSelector = "nav, footer, header, script, style, noscript, iframe, form, .ad, .advertisement, .sidebar, .cookie-banner, .popup"

// contentSelectors are tried in order for the main content block.
var contentSelectors = []string{"main", "article", "[role=main]", "#content", ".content", "body"}

var blankRunRe = regexp.MustCompile(`\n{3,}`)

// Fetcher downloads and extracts job description text.
type Fetcher struct {
	client *http.Client
}

// NewFetcher returns a Fetcher with the default timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: DefaultTimeout}}
}

// JobDescription fetches rawURL and returns the readable text of the
// page with navigation and boilerplate removed.
func (f *Fetcher) JobDescription(ctx context.Context, rawURL string) (string, error) {
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return "", fmt.Errorf("invalid job URL %q: %w", rawURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: unexpected status %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read response from %s: %w", rawURL, err)
	}

	text, err := ExtractText(string(body))
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", fmt.Errorf("no readable text at %s", rawURL)
	}
	return text, nil
}

// ExtractText parses HTML and returns the visible text of the main
// content block, one line per element, blank runs collapsed.
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(noiseSelector).Remove()

	var content *goquery.Selection
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		return "", nil
	}

	var lines []string
	content.Find("h1, h2, h3, h4, h5, h6, p, li, td, div").Each(func(_ int, s *goquery.Selection) {
		// leaf-ish nodes only; container divs repeat their children's text
		if s.Children().Length() > 0 && goquery.NodeName(s) == "div" {
			return
		}
		if t := strings.TrimSpace(s.Text()); t != "" {
			lines = append(lines, t)
		}
	})
	if len(lines) == 0 {
		lines = append(lines, strings.TrimSpace(content.Text()))
	}

	text := strings.Join(lines, "\n")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text), nil
}
