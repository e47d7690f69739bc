package search

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/ytgate/ytgate/internal/config"
)

// Client wraps the YouTube Data API v3 as the search provider. One query
// per call, no re-ranking: results keep the API's relevance order.
type Client struct {
	apiKey   string
	maxLimit int64
	timeout  time.Duration

	mu      sync.Mutex
	service *youtube.Service
}

func NewClient(cfg *config.SearchConfig, providerCfg *config.ProviderConfig) *Client {
	return &Client{
		apiKey:   cfg.APIKey,
		maxLimit: cfg.MaxLimit,
		timeout:  providerCfg.RequestTimeout,
	}
}

func (c *Client) getService(ctx context.Context) (*youtube.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.service != nil {
		return c.service, nil
	}
	if c.apiKey == "" {
		return nil, fmt.Errorf("search provider not configured: YOUTUBE_API_KEY is not set")
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating youtube service: %w", err)
	}
	c.service = service
	return service, nil
}
