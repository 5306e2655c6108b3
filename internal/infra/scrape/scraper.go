package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

var (
	emailRe       = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	contactHrefRe = regexp.MustCompile(`(?i)contact`)
)

// Scraper extracts a contact email from a business website. It checks the
// homepage first and then the first link that looks like a contact page.
// A token bucket spaces fetches out so batch runs don't hammer sites.
type Scraper struct {
	http    *http.Client
	limiter *rate.Limiter
}

func NewScraper(delay time.Duration, timeout time.Duration) *Scraper {
	return &Scraper{
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Every(delay), 1),
	}
}

// FindEmail returns the first email-looking string found on the site, or an
// error when the site is unreachable or carries no email. Callers treat any
// error as "no email found"; a scrape failure is never fatal to a batch.
func (s *Scraper) FindEmail(ctx context.Context, website string) (string, error) {
	pageURL, err := normalizeURL(website)
	if err != nil {
		return "", err
	}

	doc, err := s.fetch(ctx, pageURL)
	if err != nil {
		return "", err
	}

	if email := emailRe.FindString(doc.Text()); email != "" {
		return email, nil
	}

	contactURL := findContactLink(doc, pageURL)
	if contactURL == "" {
		return "", fmt.Errorf("no email found on %s", pageURL)
	}

	contactDoc, err := s.fetch(ctx, contactURL)
	if err != nil {
		return "", err
	}

	if email := emailRe.FindString(contactDoc.Text()); email != "" {
		return email, nil
	}

	return "", fmt.Errorf("no email found on %s", pageURL)
}

func (s *Scraper) fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s failed: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s returned status %d", pageURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s failed: %w", pageURL, err)
	}

	return doc, nil
}

func findContactLink(doc *goquery.Document, base string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ""
	}

	var contact string
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		if !contactHrefRe.MatchString(href) {
			return true
		}

		ref, err := url.Parse(href)
		if err != nil {
			return true
		}

		resolved := baseURL.ResolveReference(ref)
		if resolved.Scheme != "http" && resolved.Scheme != "https" {
			return true
		}

		contact = resolved.String()
		return false
	})

	return contact
}

func normalizeURL(website string) (string, error) {
	website = strings.TrimSpace(website)
	if website == "" {
		return "", fmt.Errorf("empty website URL")
	}

	if !strings.HasPrefix(website, "http://") && !strings.HasPrefix(website, "https://") {
		website = "https://" + website
	}

	parsed, err := url.Parse(website)
	if err != nil {
		return "", fmt.Errorf("invalid website URL %q: %w", website, err)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("invalid website URL %q", website)
	}

	return parsed.String(), nil
}
