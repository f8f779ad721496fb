package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/sync/errgroup"

	"babylist/internal/babylist/metrics"
	"babylist/internal/babylist/models"
	"babylist/internal/babylist/ports"
	"babylist/internal/babylist/pricing"
	"babylist/pkg/requestcontext"
)

// DefaultReservationWindow is how far back orders count as reservations.
const DefaultReservationWindow = 72 * time.Hour

// Lookup sources, used in errors, metrics and spans.
const (
	SourceCatalog        = "catalog"
	SourceRecommendation = "recommendation"
	SourceReservation    = "reservation"
)

// LookupError reports a failed external lookup. The whole pass fails with it.
type LookupError struct {
	Source string
	Err    error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s lookup failed: %v", e.Source, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Enricher runs the batched lookups for a registry and derives its items.
type Enricher struct {
	catalog         ports.CatalogLookup
	recommendations ports.RecommendationLookup
	reservations    ports.ReservationLookup
	categories      ports.CategoryMapping
	window          time.Duration
	metrics         *metrics.Metrics
	tracer          trace.Tracer
	logger          *slog.Logger
}

// Option configures an Enricher.
type Option func(*Enricher)

// WithRecommendations enables display metadata for unmatched SKUs.
func WithRecommendations(r ports.RecommendationLookup) Option {
	return func(e *Enricher) {
		e.recommendations = r
	}
}

// WithCategoryMapping sets the recommendation category mapping.
func WithCategoryMapping(c ports.CategoryMapping) Option {
	return func(e *Enricher) {
		e.categories = c
	}
}

// WithReservationWindow overrides the trailing order window.
func WithReservationWindow(d time.Duration) Option {
	return func(e *Enricher) {
		if d > 0 {
			e.window = d
		}
	}
}

// WithMetrics records enrichment latency and lookup outcomes on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Enricher) {
		e.metrics = m
	}
}

// WithTracer sets the tracer for lookup spans. A nil tracer is ignored.
func WithTracer(t trace.Tracer) Option {
	return func(e *Enricher) {
		if t != nil {
			e.tracer = t
		}
	}
}

// WithLogger sets the logger for degraded lookups.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Enricher) {
		e.logger = logger
	}
}

// New creates an Enricher.
func New(catalog ports.CatalogLookup, reservations ports.ReservationLookup, opts ...Option) (*Enricher, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog lookup is required")
	}
	if reservations == nil {
		return nil, fmt.Errorf("reservation lookup is required")
	}

	e := &Enricher{
		catalog:      catalog,
		reservations: reservations,
		window:       DefaultReservationWindow,
		tracer:       noop.NewTracerProvider().Tracer("babylist/enrich"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// lookups is the joined result of one batch of external calls.
type lookups struct {
	catalog         map[string]models.CatalogEntry
	recommendations map[string]models.RecommendationEntry
	reservations    Reservations
}

// EnrichAll derives every item of reg in registry order. Lookups run once per
// call: one bulk catalog call, one reservation query, and one recommendation
// call for the SKUs the catalog does not sell. Any lookup failure fails the
// pass with a *LookupError.
func (e *Enricher) EnrichAll(ctx context.Context, reg *models.Registry, pc pricing.Context) (models.Items, error) {
	start := time.Now()
	ctx, span := e.tracer.Start(ctx, "babylist.enrich_all",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("babylist.id", reg.ID),
			attribute.Int("babylist.lines", len(reg.Lines)),
		),
	)
	defer span.End()

	data, err := e.fetch(ctx, reg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	items := make(models.Items, 0, len(reg.Lines))
	matched := 0
	for _, line := range reg.Lines {
		source := models.SourceFor(line.SKU, data.catalog, data.recommendations)
		if _, ok := source.(models.Matched); ok {
			matched++
		}
		items = append(items, Item(line, source, data.reservations, e.categories, pc))
	}

	e.metrics.ObserveEnrichLatency(time.Since(start))
	e.metrics.AddEnrichedItems(matched, len(items)-matched)
	span.SetAttributes(attribute.Int("babylist.matched", matched))
	span.SetStatus(codes.Ok, "")
	return items, nil
}

func (e *Enricher) fetch(ctx context.Context, reg *models.Registry) (*lookups, error) {
	skus := reg.SKUs()
	data := &lookups{
		catalog:         map[string]models.CatalogEntry{},
		recommendations: map[string]models.RecommendationEntry{},
		reservations:    Reservations{},
	}

	g, gctx := errgroup.WithContext(ctx)

	if len(skus) > 0 {
		g.Go(func() error {
			entries, err := observe(gctx, e, SourceCatalog, func(ctx context.Context) (map[string]models.CatalogEntry, error) {
				return e.catalog.BulkFetch(ctx, skus)
			})
			if err != nil {
				return err
			}
			if entries != nil {
				data.catalog = entries
			}
			return nil
		})
	}

	g.Go(func() error {
		since := requestcontext.Now(ctx).Add(-e.window)
		refs, err := observe(gctx, e, SourceReservation, func(ctx context.Context) ([]models.LineRef, error) {
			return e.reservations.ReservedLines(ctx, reg.ID, since)
		})
		if err != nil {
			return err
		}
		data.reservations = NewReservations(refs)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if e.recommendations == nil {
		return data, nil
	}
	unmatched := make([]string, 0, len(skus))
	for _, sku := range skus {
		if _, ok := data.catalog[sku]; !ok {
			unmatched = append(unmatched, sku)
		}
	}
	if len(unmatched) == 0 {
		return data, nil
	}

	recs, err := observe(ctx, e, SourceRecommendation, func(ctx context.Context) (map[string]models.RecommendationEntry, error) {
		return e.recommendations.Fetch(ctx, unmatched)
	})
	if err != nil {
		return nil, err
	}
	if recs != nil {
		data.recommendations = recs
	}
	return data, nil
}

// observe runs one lookup inside a span, recording latency and failures.
func observe[T any](ctx context.Context, e *Enricher, source string, call func(context.Context) (T, error)) (T, error) {
	ctx, span := e.tracer.Start(ctx, "babylist.lookup."+source)
	defer span.End()

	start := time.Now()
	result, err := call(ctx)
	e.metrics.ObserveLookupLatency(source, time.Since(start))
	if err != nil {
		e.metrics.IncrementLookupFailure(source)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if e.logger != nil {
			e.logger.WarnContext(ctx, "babylist lookup failed",
				"source", source,
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
		}
		var zero T
		return zero, &LookupError{Source: source, Err: err}
	}
	return result, nil
}
