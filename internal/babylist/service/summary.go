package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"babylist/internal/babylist/enrich"
	"babylist/internal/babylist/filter"
	"babylist/internal/babylist/models"
	"babylist/internal/babylist/paginate"
	"babylist/internal/babylist/pricing"
	"babylist/internal/babylist/reward"
	dErrors "babylist/pkg/domain-errors"
	"babylist/pkg/requestcontext"
)

const displayDateLayout = "02/01/2006"

// SummaryRequest selects what a list view shows.
type SummaryRequest struct {
	View    models.View
	Filters models.FilterSelection
	Page    int
	// CardNumber is the loyalty card the viewer claims, unlocking owner details.
	CardNumber string
}

// Summary builds the read model of a list. It returns nil, nil when the list
// does not exist. A lookup failure fails the whole summary.
func (s *Service) Summary(ctx context.Context, listID string, req SummaryRequest) (*models.Summary, error) {
	reg, err := s.Find(ctx, listID)
	if err != nil || reg == nil {
		return nil, err
	}

	viewer := requestcontext.Viewer(ctx)
	pc, err := s.pricingContext(ctx, reg, viewer)
	if err != nil {
		return nil, err
	}

	items, err := s.enricher.EnrichAll(ctx, reg, pc)
	if err != nil {
		return nil, s.enrichFailure(ctx, err)
	}

	store, err := s.stores.FindByLocateID(ctx, reg.StoreLocateID)
	if err != nil {
		return nil, s.lookupFailure(ctx, "store", err)
	}

	policy := newBuyPolicy(reg, viewer, req.CardNumber, store)
	summary := assemble(reg, items, req, policy, store, requestcontext.Now(ctx))

	s.metrics.IncrementSummariesServed(string(req.View))
	s.publishViewed(ctx, reg.ID, req.View)
	return summary, nil
}

func (s *Service) pricingContext(ctx context.Context, reg *models.Registry, viewer requestcontext.ViewerInfo) (pricing.Context, error) {
	pc := pricing.Context{ViewerIsVip: reg.IsVip}
	if s.coupons == nil || viewer.IsAnonymous() {
		return pc, nil
	}
	override, err := s.coupons.HasOverridingCoupon(ctx, viewer.ID)
	if err != nil {
		return pc, s.lookupFailure(ctx, "coupon", err)
	}
	pc.OverridingCoupon = override
	return pc, nil
}

func (s *Service) enrichFailure(ctx context.Context, err error) error {
	var lookupErr *enrich.LookupError
	if errors.As(err, &lookupErr) {
		s.logError(ctx, "babylist enrichment failed", "source", lookupErr.Source, "error", lookupErr.Err)
	} else {
		s.logError(ctx, "babylist enrichment failed", "error", err)
	}
	return dErrors.Wrap(err, dErrors.CodeUnavailable, "service unavailable")
}

func (s *Service) publishViewed(ctx context.Context, listID string, view models.View) {
	if s.events == nil {
		return
	}
	viewer := requestcontext.Viewer(ctx)
	event := models.ViewedEvent{
		EventID:    uuid.NewString(),
		ListID:     listID,
		View:       view,
		ViewerID:   viewer.ID,
		UserAgent:  requestcontext.UserAgent(ctx),
		RequestID:  requestcontext.RequestID(ctx),
		OccurredAt: requestcontext.Now(ctx),
	}
	if err := s.events.PublishViewed(ctx, event); err != nil {
		s.logWarn(ctx, "failed to publish babylist view", "list_id", listID, "error", err)
	}
}

// assemble derives every view of the summary from a single item collection.
func assemble(
	reg *models.Registry,
	items models.Items,
	req SummaryRequest,
	policy buyPolicy,
	store *models.Store,
	now time.Time,
) *models.Summary {
	gifted := items.Gifted()
	available := items.Available()
	participating := gifted.Where(func(i models.Item) bool { return i.Participates })

	rewardState := reward.Calculate(participating)

	statusFiltered := filter.ByStatus(items, req.Filters)
	bands := filter.Bands(statusFiltered)
	page := paginate.Paginate(filter.ByPriceBand(statusFiltered, req.Filters.PriceBand), req.Filters.SortOrder, req.Page)
	for i := range page.Items {
		page.Items[i].HideAddToCart = policy.hideAddToCart(page.Items[i])
	}

	totalAmount := items.Amount()
	giftedAmount := participating.Amount()

	return &models.Summary{
		Details: details(reg, policy, store, now),
		Stats: []models.Stat{
			{
				Percentage: percentage(decimal.NewFromInt(int64(len(items))), decimal.NewFromInt(int64(len(gifted)))),
				Details: []models.StatDetail{
					{Label: "ARTICOLI", Sublabel: "IN LISTA", Value: itoa(len(items))},
					{Label: "ARTICOLI", Sublabel: "REGALATI", Value: itoa(len(gifted))},
				},
			},
			{
				Percentage: percentage(totalAmount, giftedAmount),
				Details: []models.StatDetail{
					{Label: "IMPORTO", Sublabel: "LISTA", Value: totalAmount.StringFixed(2)},
					{Label: "IMPORTO", Sublabel: "REGALI", Value: giftedAmount.StringFixed(2)},
				},
			},
		},
		Reward: rewardState,
		GuestDetails: []models.StatDetail{
			{Label: "ARTICOLI DISPONIBILI", Value: itoa(len(items) - len(gifted))},
		},
		Products:          page,
		ProductCount:      len(items),
		Categories:        filter.Categories(items),
		Filters:           req.Filters.Params(),
		OrderBy:           req.Filters.OrderBy(),
		PriceRanges:       bands,
		GiftedProducts:    models.ItemGroup{Products: gifted, Count: len(gifted), Amount: giftedAmount},
		AvailableProducts: models.NewItemGroup(available),
		Discount:          rewardState.Discount,
		CanBuyFromList:    policy.canBuyFromList(),
	}
}

func details(reg *models.Registry, policy buyPolicy, store *models.Store, now time.Time) models.Details {
	d := models.Details{
		ID:          reg.ID,
		ListName:    reg.ListName(),
		Name:        reg.FullName(),
		FirstName:   reg.FirstName,
		LastName:    reg.LastName,
		IsClosed:    reg.IsClosed,
		DaysLeft:    reg.DaysLeft(now),
		IsEmpty:     reg.IsEmpty(),
		HasMustHave: reg.HasMustHave(),
		IsListUser:  policy.isListUser,
	}
	if store != nil {
		name := store.Name
		d.Store = &name
	}
	if policy.showAdminInfo {
		d.CardNumber = reg.CardNumber
	}
	if !reg.DonationTotal.IsZero() {
		d.DonationTotal = reg.DonationTotal.StringFixed(2)
	}
	if reg.OpenDate != nil {
		d.CreatedDate = reg.OpenDate.Format(displayDateLayout)
	}
	if reg.EndDate != nil {
		d.CloseDate = reg.EndDate.Format(displayDateLayout)
	}
	return d
}

// percentage is round(part / total * 100), 0 when either is zero.
func percentage(total, part decimal.Decimal) int64 {
	if total.IsZero() || part.IsZero() {
		return 0
	}
	return part.Div(total).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
