// Package recommendation fetches display metadata for products the storefront
// catalog does not sell from the product recommendation API.
package recommendation

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	gocache "github.com/patrickmn/go-cache"
	"github.com/tidwall/gjson"

	"babylist/internal/babylist/models"
	"babylist/pkg/platform/httputil"
	"babylist/pkg/platform/sentinel"
)

const (
	DefaultTTL             = 10 * time.Minute
	defaultCleanupInterval = 30 * time.Minute
)

type Config struct {
	BaseURL  string
	RetryMax int
	CacheTTL time.Duration
	Timeout  time.Duration
}

// Client resolves SKUs in one request per call and memoizes the answers,
// including SKUs the API does not know.
type Client struct {
	endpoint string
	http     *retryablehttp.Client
	cache    *gocache.Cache
	logger   *slog.Logger
}

type Option func(*Client)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func New(cfg Config, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("recommendation url is required")
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	retryClient := httputil.NewRetryClient(cfg.RetryMax, cfg.Timeout)

	c := &Client{
		endpoint: strings.TrimRight(cfg.BaseURL, "/") + "/products",
		http:     retryClient,
		cache:    gocache.New(ttl, defaultCleanupInterval),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Fetch returns the entries known for skus. Unknown SKUs are absent.
func (c *Client) Fetch(ctx context.Context, skus []string) (map[string]models.RecommendationEntry, error) {
	result := make(map[string]models.RecommendationEntry, len(skus))
	missing := make([]string, 0, len(skus))
	for _, sku := range skus {
		cached, found := c.cache.Get(sku)
		if !found {
			missing = append(missing, sku)
			continue
		}
		if entry, ok := cached.(*models.RecommendationEntry); ok && entry != nil {
			result[sku] = *entry
		}
	}
	if len(missing) == 0 {
		return result, nil
	}

	fetched, err := c.fetch(ctx, missing)
	if err != nil {
		return nil, err
	}
	for _, sku := range missing {
		entry, ok := fetched[sku]
		if !ok {
			c.cache.SetDefault(sku, (*models.RecommendationEntry)(nil))
			continue
		}
		c.cache.SetDefault(sku, &entry)
		result[sku] = entry
	}

	c.logger.DebugContext(ctx, "recommendations fetched",
		"requested", len(skus),
		"fetched", len(missing),
		"found", len(fetched),
	)
	return result, nil
}

func (c *Client) fetch(ctx context.Context, skus []string) (map[string]models.RecommendationEntry, error) {
	query := url.Values{"skus": {strings.Join(skus, ",")}}
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build recommendation request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recommendation request: %w: %w", sentinel.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read recommendation response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recommendation status %d: %w", resp.StatusCode, sentinel.ErrUnavailable)
	}
	body := string(raw)
	if !gjson.Valid(body) {
		return nil, fmt.Errorf("recommendation returned malformed body: %w", sentinel.ErrUnavailable)
	}

	entries := make(map[string]models.RecommendationEntry)
	gjson.Get(body, "result").ForEach(func(_, product gjson.Result) bool {
		sku := product.Get("sku").String()
		if sku == "" {
			return true
		}
		entries[sku] = models.RecommendationEntry{
			SKU:       sku,
			FullTitle: product.Get("full_title").String(),
			Brand:     product.Get("brand").String(),
			Category:  product.Get("category").String(),
		}
		return true
	})
	return entries, nil
}
