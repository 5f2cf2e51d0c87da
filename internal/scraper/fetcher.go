package scraper

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// Fixed desktop identity sent on every outbound request; the sources serve
// reduced markup to unknown agents.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

const (
	fetchTimeout      = 10 * time.Second
	fetchMaxBodyBytes = 4 << 20 // 4MB cap on article pages
)

// fetchHTML issues a plain GET with the fixed user agent. Any network
// failure or non-2xx status comes back as an error; callers decide the
// fallback, typically an empty result or a content sentinel.
func fetchHTML(url string) (string, error) {
	client := &http.Client{Timeout: fetchTimeout}
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, fetchMaxBodyBytes))
	if err != nil {
		return "", err
	}
	return string(body), nil
}
