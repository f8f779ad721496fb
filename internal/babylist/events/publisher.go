// Package events publishes list view events to Kafka.
//
// Viewer ids never leave the process in clear: they are replaced by a keyed
// BLAKE2b digest. Requests from crawlers are dropped before publishing.
package events

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mssola/useragent"
	"github.com/twmb/franz-go/pkg/kgo"
	"golang.org/x/crypto/blake2b"

	"babylist/internal/babylist/models"
)

// Producer is the subset of *kgo.Client the publisher uses. TryProduce must
// not block; the promise runs once the record is delivered or given up on.
type Producer interface {
	TryProduce(ctx context.Context, r *kgo.Record, promise func(*kgo.Record, error))
}

// Record is the wire shape of a view event.
type Record struct {
	EventID    string    `json:"event_id"`
	ListID     string    `json:"list_id"`
	View       string    `json:"view"`
	ViewerHash string    `json:"viewer_hash,omitempty"`
	Browser    string    `json:"browser,omitempty"`
	Platform   string    `json:"platform,omitempty"`
	Mobile     bool      `json:"mobile"`
	RequestID  string    `json:"request_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher struct {
	producer Producer
	topic    string
	hashKey  []byte
	logger   *slog.Logger
}

type Option func(*Publisher)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// WithHashKey sets the key for viewer digests. Up to 64 bytes are used.
func WithHashKey(key []byte) Option {
	return func(p *Publisher) {
		if len(key) > blake2b.Size {
			key = key[:blake2b.Size]
		}
		p.hashKey = key
	}
}

func New(producer Producer, topic string, opts ...Option) (*Publisher, error) {
	if producer == nil {
		return nil, fmt.Errorf("producer is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic is required")
	}
	p := &Publisher{
		producer: producer,
		topic:    topic,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// PublishViewed enqueues one view event keyed by list id and returns without
// waiting for the brokers. Delivery failures are logged. Crawler traffic is
// skipped without error.
func (p *Publisher) PublishViewed(ctx context.Context, event models.ViewedEvent) error {
	ua := useragent.New(event.UserAgent)
	if event.UserAgent != "" && ua.Bot() {
		p.logger.DebugContext(ctx, "skipping view event from bot",
			"list_id", event.ListID,
			"request_id", event.RequestID,
		)
		return nil
	}

	record, err := p.toRecord(event, ua)
	if err != nil {
		return err
	}
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode view event: %w", err)
	}

	// The record outlives the request.
	produceCtx := context.WithoutCancel(ctx)
	p.producer.TryProduce(produceCtx, &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.ListID),
		Value: value,
	}, func(_ *kgo.Record, err error) {
		if err != nil {
			p.logger.WarnContext(produceCtx, "view event not delivered",
				"list_id", event.ListID,
				"event_id", record.EventID,
				"request_id", event.RequestID,
				"error", err,
			)
		}
	})
	return nil
}

func (p *Publisher) toRecord(event models.ViewedEvent, ua *useragent.UserAgent) (Record, error) {
	id := event.EventID
	if id == "" {
		id = uuid.NewString()
	}
	occurred := event.OccurredAt
	if occurred.IsZero() {
		occurred = time.Now()
	}

	record := Record{
		EventID:    id,
		ListID:     event.ListID,
		View:       string(event.View),
		RequestID:  event.RequestID,
		OccurredAt: occurred.UTC(),
	}
	if event.UserAgent != "" {
		record.Browser, _ = ua.Browser()
		record.Platform = ua.Platform()
		record.Mobile = ua.Mobile()
	}
	if event.ViewerID != "" {
		hash, err := p.hashViewer(event.ViewerID)
		if err != nil {
			return Record{}, err
		}
		record.ViewerHash = hash
	}
	return record, nil
}

func (p *Publisher) hashViewer(viewerID string) (string, error) {
	h, err := blake2b.New256(p.hashKey)
	if err != nil {
		return "", fmt.Errorf("viewer hash: %w", err)
	}
	h.Write([]byte(viewerID))
	return hex.EncodeToString(h.Sum(nil)), nil
}
