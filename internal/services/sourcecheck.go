package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/truthlens/truthlens-backend/internal/config"
	"github.com/truthlens/truthlens-backend/internal/dto"
)

// ErrSourceUnknown means the lookup completed but no registered source
// matched the domain.
var ErrSourceUnknown = errors.New("source not found in metadata database")

// SourceChecker resolves a domain against the news-metadata API. The
// Unconfigured variant always fails with ErrUnconfigured; the pipeline
// swallows either outcome and moves on.
type SourceChecker interface {
	Lookup(ctx context.Context, domain string) (*dto.SourceInfo, error)
	Configured() bool
}

// NewSourceChecker selects the variant once at startup.
func NewSourceChecker(cfg *config.Config) SourceChecker {
	if cfg.NewsAPIKey == "" {
		return noSourceChecker{}
	}
	return &NewsAPIClient{
		apiKey:  cfg.NewsAPIKey,
		baseURL: strings.TrimRight(cfg.NewsAPIURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type noSourceChecker struct{}

func (noSourceChecker) Configured() bool { return false }

func (noSourceChecker) Lookup(context.Context, string) (*dto.SourceInfo, error) {
	return nil, ErrUnconfigured
}

// NewsAPIClient looks up source reputation via newsapi.org's sources index.
type NewsAPIClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func (c *NewsAPIClient) Configured() bool { return true }

type newsAPISource struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category"`
	Language string `json:"language"`
	Country  string `json:"country"`
}

func (c *NewsAPIClient) Lookup(ctx context.Context, domain string) (*dto.SourceInfo, error) {
	endpoint := fmt.Sprintf("%s/top-headlines/sources?apiKey=%s", c.baseURL, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sources request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		Sources []newsAPISource `json:"sources"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode sources: %w", err)
	}

	for _, s := range payload.Sources {
		if s.URL != "" && strings.Contains(s.URL, domain) {
			return &dto.SourceInfo{
				Name:     s.Name,
				Category: s.Category,
				Language: s.Language,
				Country:  s.Country,
			}, nil
		}
	}
	return nil, ErrSourceUnknown
}

// DomainOf extracts the bare hostname used for source matching.
func DomainOf(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Hostname() == "" {
		return "", fmt.Errorf("invalid url: %q", rawURL)
	}
	return strings.TrimPrefix(parsed.Hostname(), "www."), nil
}
