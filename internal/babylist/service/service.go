package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"babylist/internal/babylist/metrics"
	"babylist/internal/babylist/models"
	"babylist/internal/babylist/ports"
	"babylist/internal/babylist/pricing"
	dErrors "babylist/pkg/domain-errors"
	"babylist/pkg/platform/sentinel"
	"babylist/pkg/requestcontext"
)

// ItemEnricher derives the items of a registry in one pass.
type ItemEnricher interface {
	EnrichAll(ctx context.Context, reg *models.Registry, pc pricing.Context) (models.Items, error)
}

// Service assembles list views from the list service, catalog and order data.
type Service struct {
	lists     ports.ListSource
	enricher  ItemEnricher
	vip       ports.VipStatus
	stores    ports.StoreDirectory
	blacklist ports.Blacklist
	coupons   ports.CouponPolicy
	events    ports.EventPublisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithBlacklist hides the listed ids from every view.
func WithBlacklist(b ports.Blacklist) Option {
	return func(s *Service) {
		s.blacklist = b
	}
}

// WithCouponPolicy enables regular-price overrides for coupon holders.
func WithCouponPolicy(c ports.CouponPolicy) Option {
	return func(s *Service) {
		s.coupons = c
	}
}

// WithEventPublisher emits a view event for every summary served.
func WithEventPublisher(p ports.EventPublisher) Option {
	return func(s *Service) {
		s.events = p
	}
}

// New constructs a Service.
func New(
	lists ports.ListSource,
	enricher ItemEnricher,
	vip ports.VipStatus,
	stores ports.StoreDirectory,
	opts ...Option,
) (*Service, error) {
	if lists == nil {
		return nil, fmt.Errorf("list source is required")
	}
	if enricher == nil {
		return nil, fmt.Errorf("item enricher is required")
	}
	if vip == nil {
		return nil, fmt.Errorf("vip status is required")
	}
	if stores == nil {
		return nil, fmt.Errorf("store directory is required")
	}

	s := &Service{
		lists:    lists,
		enricher: enricher,
		vip:      vip,
		stores:   stores,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Find loads a list by id. It returns nil, nil when the id resolves to no
// list or is blacklisted.
func (s *Service) Find(ctx context.Context, listID string) (*models.Registry, error) {
	if listID == "" {
		return nil, nil
	}
	if s.blacklist != nil && s.blacklist.IsBlacklisted(listID) {
		s.logInfo(ctx, "blacklisted babylist requested", "list_id", listID)
		return nil, nil
	}

	raws, err := s.getLists(ctx, models.NewListQuery(listID))
	if err != nil {
		return nil, err
	}
	if len(raws) == 0 {
		return nil, nil
	}

	reg, err := models.NewRegistry(raws[0])
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			s.logWarn(ctx, "list service returned an invalid list", "list_id", listID, "error", err)
			return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "registry unavailable")
		}
		return nil, err
	}

	reg.IsVip, err = s.isVip(ctx, reg.CardNumber)
	if err != nil {
		return nil, err
	}
	return reg, nil
}

// getLists queries the list service. A failed call or a missing reply is an
// error. An unsuccessful reply carrying the closed-list error code still
// yields its lists, each marked closed; any other unsuccessful reply yields
// no lists.
func (s *Service) getLists(ctx context.Context, query models.ListQuery) ([]models.RawRegistry, error) {
	resp, err := s.lists.Query(ctx, query)
	if err == nil && resp == nil {
		err = fmt.Errorf("list service returned no response")
	}
	if err != nil {
		outcome := "error"
		if errors.Is(err, sentinel.ErrUnavailable) {
			outcome = "unavailable"
		}
		s.metrics.IncrementListSourceError(outcome)
		s.logError(ctx, "list service query failed",
			"list_code", query.ListCode,
			"store_id", query.StoreID,
			"error", err,
		)
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "registry unavailable")
	}

	if resp.Success {
		return resp.Lists, nil
	}

	if resp.ErrorCode == models.ClosedListErrorCode {
		s.metrics.IncrementListSourceError("closed")
		lists := make([]models.RawRegistry, 0, len(resp.Lists))
		for _, list := range resp.Lists {
			list.IsClosed = true
			lists = append(lists, list)
		}
		return lists, nil
	}

	s.metrics.IncrementListSourceError("rejected")
	s.logInfo(ctx, "list service returned no lists",
		"list_code", query.ListCode,
		"store_id", query.StoreID,
		"error_code", resp.ErrorCode,
		"message", resp.Message,
	)
	return nil, nil
}

// isVip reports whether the owner's card or the current viewer is VIP.
func (s *Service) isVip(ctx context.Context, ownerCard string) (bool, error) {
	if ownerCard != "" {
		vip, err := s.vip.IsVip(ctx, ownerCard)
		if err != nil {
			return false, s.lookupFailure(ctx, "vip", err)
		}
		if vip {
			return true, nil
		}
	}

	viewer := requestcontext.Viewer(ctx)
	if viewer.IsAnonymous() {
		return false, nil
	}
	vip, err := s.vip.IsVipViewer(ctx, viewer.ID)
	if err != nil {
		return false, s.lookupFailure(ctx, "vip", err)
	}
	return vip, nil
}

func (s *Service) lookupFailure(ctx context.Context, source string, err error) error {
	s.metrics.IncrementLookupFailure(source)
	s.logError(ctx, "babylist lookup failed", "source", source, "error", err)
	return dErrors.Wrap(err, dErrors.CodeUnavailable, "service unavailable")
}

func (s *Service) logInfo(ctx context.Context, msg string, args ...any) {
	if s.logger == nil {
		return
	}
	s.logger.InfoContext(ctx, msg, append(args, "request_id", requestcontext.RequestID(ctx))...)
}

func (s *Service) logWarn(ctx context.Context, msg string, args ...any) {
	if s.logger == nil {
		return
	}
	s.logger.WarnContext(ctx, msg, append(args, "request_id", requestcontext.RequestID(ctx))...)
}

func (s *Service) logError(ctx context.Context, msg string, args ...any) {
	if s.logger == nil {
		return
	}
	s.logger.ErrorContext(ctx, msg, append(args, "request_id", requestcontext.RequestID(ctx))...)
}
