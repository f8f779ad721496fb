// Package config reads the service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"babylist/pkg/platform/httputil"
	pstrings "babylist/pkg/platform/strings"
)

// Server is the complete process configuration.
type Server struct {
	Addr      string
	LogLevel  string
	LogFormat string

	DatabaseURL       string
	OrdersDatabaseURL string
	Redis             RedisConfig

	ListService    ListServiceConfig
	Recommendation RecommendationConfig

	CategoryMappingFile string
	Blacklist           string
	CatalogCacheTTL     time.Duration
	ReservationWindow   time.Duration

	ViewerJWTSigningKey string
	ViewerJWTIssuer     string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	Kafka KafkaConfig

	OTelEnabled  bool
	OTelExporter string
}

// RedisConfig configures the catalog cache client.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type ListServiceConfig struct {
	URL      string
	Token    string
	RetryMax int
	Timeout  time.Duration
}

type RecommendationConfig struct {
	URL      string
	CacheTTL time.Duration
	Timeout  time.Duration
}

type KafkaConfig struct {
	Brokers   []string
	ViewTopic string
	HashKey   string
}

// FromEnv builds the configuration from environment variables so main stays
// lean. Malformed numeric or duration values are reported, not defaulted.
func FromEnv() (Server, error) {
	p := parser{}
	cfg := Server{
		Addr:      p.str("BABYLIST_ADDR", ":8080"),
		LogLevel:  p.str("LOG_LEVEL", "info"),
		LogFormat: p.str("LOG_FORMAT", "json"),

		DatabaseURL:       os.Getenv("DATABASE_URL"),
		OrdersDatabaseURL: os.Getenv("ORDERS_DATABASE_URL"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     p.int("REDIS_POOL_SIZE", 10),
			MinIdleConns: p.int("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  p.duration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  p.duration("REDIS_READ_TIMEOUT", 500*time.Millisecond),
			WriteTimeout: p.duration("REDIS_WRITE_TIMEOUT", 500*time.Millisecond),
		},

		ListService: ListServiceConfig{
			URL:      os.Getenv("LIST_SERVICE_URL"),
			Token:    os.Getenv("LIST_SERVICE_TOKEN"),
			RetryMax: p.int("LIST_SERVICE_RETRY_MAX", httputil.DefaultRetryMax),
			Timeout:  p.duration("LIST_SERVICE_TIMEOUT", 5*time.Second),
		},
		Recommendation: RecommendationConfig{
			URL:      os.Getenv("RECOMMENDATION_URL"),
			CacheTTL: p.duration("RECOMMENDATION_CACHE_TTL", 10*time.Minute),
			Timeout:  p.duration("RECOMMENDATION_TIMEOUT", 3*time.Second),
		},

		CategoryMappingFile: os.Getenv("CATEGORY_MAPPING_FILE"),
		Blacklist:           os.Getenv("BABYLIST_BLACKLIST"),
		CatalogCacheTTL:     p.duration("CATALOG_CACHE_TTL", 5*time.Minute),
		ReservationWindow:   p.duration("RESERVATION_WINDOW", 72*time.Hour),

		ViewerJWTSigningKey: os.Getenv("VIEWER_JWT_SIGNING_KEY"),
		ViewerJWTIssuer:     p.str("VIEWER_JWT_ISSUER", "storefront"),

		RateLimitRequests: p.int("RATE_LIMIT_REQUESTS", 120),
		RateLimitWindow:   p.duration("RATE_LIMIT_WINDOW", time.Minute),

		Kafka: KafkaConfig{
			Brokers:   pstrings.SplitList(os.Getenv("KAFKA_BROKERS")),
			ViewTopic: p.str("KAFKA_VIEW_TOPIC", "babylist.views"),
			HashKey:   os.Getenv("KAFKA_VIEWER_HASH_KEY"),
		},

		OTelEnabled:  p.bool("OTEL_ENABLED", false),
		OTelExporter: p.str("OTEL_EXPORTER", "stdout"),
	}
	if p.err != nil {
		return Server{}, p.err
	}
	if cfg.ListService.URL == "" {
		return Server{}, fmt.Errorf("LIST_SERVICE_URL is required")
	}
	return cfg, nil
}

// parser keeps the first malformed value it meets.
type parser struct {
	err error
}

func (p *parser) str(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func (p *parser) int(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(key, raw, err)
		return def
	}
	return v
}

func (p *parser) duration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		p.fail(key, raw, err)
		return def
	}
	return v
}

func (p *parser) bool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.fail(key, raw, err)
		return def
	}
	return v
}

func (p *parser) fail(key, raw string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("invalid %s=%q: %w", key, raw, err)
	}
}

