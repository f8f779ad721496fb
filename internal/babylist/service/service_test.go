package service

//go:generate mockgen -source=../ports/ports.go -destination=../ports/mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/mock/gomock"

	"babylist/internal/babylist/enrich"
	"babylist/internal/babylist/events"
	"babylist/internal/babylist/models"
	"babylist/internal/babylist/ports/mocks"
	dErrors "babylist/pkg/domain-errors"
	"babylist/pkg/requestcontext"
)

const listID = "0042000123"

type ServiceSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	lists        *mocks.MockListSource
	catalog      *mocks.MockCatalogLookup
	reservations *mocks.MockReservationLookup
	vip          *mocks.MockVipStatus
	stores       *mocks.MockStoreDirectory
	blacklist    *mocks.MockBlacklist
	coupons      *mocks.MockCouponPolicy
	events       *mocks.MockEventPublisher
	service      *Service
	ctx          context.Context
	now          time.Time
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.lists = mocks.NewMockListSource(s.ctrl)
	s.catalog = mocks.NewMockCatalogLookup(s.ctrl)
	s.reservations = mocks.NewMockReservationLookup(s.ctrl)
	s.vip = mocks.NewMockVipStatus(s.ctrl)
	s.stores = mocks.NewMockStoreDirectory(s.ctrl)
	s.blacklist = mocks.NewMockBlacklist(s.ctrl)
	s.coupons = mocks.NewMockCouponPolicy(s.ctrl)
	s.events = mocks.NewMockEventPublisher(s.ctrl)

	enricher, err := enrich.New(s.catalog, s.reservations)
	s.Require().NoError(err)

	s.service, err = New(s.lists, enricher, s.vip, s.stores,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithBlacklist(s.blacklist),
		WithCouponPolicy(s.coupons),
		WithEventPublisher(s.events),
	)
	s.Require().NoError(err)

	s.now = time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
	s.ctx = requestcontext.WithRequestID(s.ctx, "req-1")
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func rawList(lines ...models.RawLine) models.RawRegistry {
	return models.RawRegistry{
		ListCode:       listID,
		MotherName:     "Anna",
		MotherSurname:  "Rossi",
		FatherName:     "Marco",
		FatherSurname:  "Bianchi",
		OpenDate:       "2026-01-15",
		ExpirationDate: "2026-06-20",
		FidelityCode:   "CARD-1",
		StoreLocateID:  "0042",
		Lines:          lines,
	}
}

func (s *ServiceSuite) expectList(raw models.RawRegistry) {
	s.blacklist.EXPECT().IsBlacklisted(listID).Return(false)
	s.lists.EXPECT().Query(gomock.Any(), models.ListQuery{ListCode: listID, StoreID: "0042"}).
		Return(&models.ListResponse{Success: true, Lists: []models.RawRegistry{raw}}, nil)
	s.vip.EXPECT().IsVip(gomock.Any(), "CARD-1").Return(false, nil)
}

// =============================================================================
// Find
// =============================================================================

func (s *ServiceSuite) TestFind() {
	s.Run("returns the first list", func() {
		second := rawList()
		second.ListCode = "0042000999"
		s.blacklist.EXPECT().IsBlacklisted(listID).Return(false)
		s.lists.EXPECT().Query(gomock.Any(), gomock.Any()).
			Return(&models.ListResponse{Success: true, Lists: []models.RawRegistry{rawList(), second}}, nil)
		s.vip.EXPECT().IsVip(gomock.Any(), "CARD-1").Return(true, nil)

		reg, err := s.service.Find(s.ctx, listID)
		s.Require().NoError(err)
		s.Require().NotNil(reg)
		s.Equal(listID, reg.ID)
		s.True(reg.IsVip)
		s.False(reg.IsClosed)
	})

	s.Run("blacklisted list is not found", func() {
		s.blacklist.EXPECT().IsBlacklisted(listID).Return(true)

		reg, err := s.service.Find(s.ctx, listID)
		s.NoError(err)
		s.Nil(reg)
	})

	s.Run("no lists is not found", func() {
		s.blacklist.EXPECT().IsBlacklisted(listID).Return(false)
		s.lists.EXPECT().Query(gomock.Any(), gomock.Any()).Return(&models.ListResponse{Success: true}, nil)

		reg, err := s.service.Find(s.ctx, listID)
		s.NoError(err)
		s.Nil(reg)
	})

	s.Run("closed error code yields closed lists", func() {
		s.blacklist.EXPECT().IsBlacklisted(listID).Return(false)
		s.lists.EXPECT().Query(gomock.Any(), gomock.Any()).Return(&models.ListResponse{
			Success:   false,
			ErrorCode: models.ClosedListErrorCode,
			Lists:     []models.RawRegistry{rawList()},
		}, nil)
		s.vip.EXPECT().IsVip(gomock.Any(), "CARD-1").Return(false, nil)

		reg, err := s.service.Find(s.ctx, listID)
		s.Require().NoError(err)
		s.Require().NotNil(reg)
		s.True(reg.IsClosed)
	})

	s.Run("other error codes resolve to no list", func() {
		s.blacklist.EXPECT().IsBlacklisted(listID).Return(false)
		s.lists.EXPECT().Query(gomock.Any(), gomock.Any()).
			Return(&models.ListResponse{Success: false, ErrorCode: 2, Message: "list not found"}, nil)

		reg, err := s.service.Find(s.ctx, listID)
		s.NoError(err)
		s.Nil(reg)
	})

	s.Run("transport failure is unavailable", func() {
		s.blacklist.EXPECT().IsBlacklisted(listID).Return(false)
		s.lists.EXPECT().Query(gomock.Any(), gomock.Any()).Return(nil, errors.New("dial tcp: timeout"))

		_, err := s.service.Find(s.ctx, listID)
		s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
		s.Equal("registry unavailable", dErrors.MessageOf(err))
	})

	s.Run("missing response is unavailable", func() {
		s.blacklist.EXPECT().IsBlacklisted(listID).Return(false)
		s.lists.EXPECT().Query(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := s.service.Find(s.ctx, listID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
	})

	s.Run("viewer VIP status applies when the owner card is not VIP", func() {
		ctx := requestcontext.WithViewer(s.ctx, requestcontext.ViewerInfo{ID: "42"})
		s.blacklist.EXPECT().IsBlacklisted(listID).Return(false)
		s.lists.EXPECT().Query(gomock.Any(), gomock.Any()).
			Return(&models.ListResponse{Success: true, Lists: []models.RawRegistry{rawList()}}, nil)
		s.vip.EXPECT().IsVip(gomock.Any(), "CARD-1").Return(false, nil)
		s.vip.EXPECT().IsVipViewer(gomock.Any(), "42").Return(true, nil)

		reg, err := s.service.Find(ctx, listID)
		s.Require().NoError(err)
		s.True(reg.IsVip)
	})

	s.Run("VIP lookup failure is unavailable", func() {
		s.blacklist.EXPECT().IsBlacklisted(listID).Return(false)
		s.lists.EXPECT().Query(gomock.Any(), gomock.Any()).
			Return(&models.ListResponse{Success: true, Lists: []models.RawRegistry{rawList()}}, nil)
		s.vip.EXPECT().IsVip(gomock.Any(), "CARD-1").Return(false, errors.New("db down"))

		_, err := s.service.Find(s.ctx, listID)
		s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
		s.Equal("service unavailable", dErrors.MessageOf(err))
	})
}

// =============================================================================
// Summary
// =============================================================================

func (s *ServiceSuite) TestSummaryEndToEnd() {
	s.expectList(rawList(
		models.RawLine{SKU: "A", LineID: 1, Quantity: 1, AvailableQty: 1, UnitPrice: dec("28"), Participates: true},
		models.RawLine{SKU: "B", LineID: 2, Quantity: 1, AvailableQty: 1, UnitPrice: dec("55"), Participates: true},
		models.RawLine{SKU: "C", LineID: 3, Quantity: 1, AvailableQty: 0, UnitPrice: dec("40"), Participates: true},
	))
	s.catalog.EXPECT().BulkFetch(gomock.Any(), []string{"A", "B", "C"}).Return(map[string]models.CatalogEntry{
		"A": {SKU: "A", Name: "Ciuccio", Price: dec("30"), RegularPrice: dec("30"), VisibleOnline: true, AvailableOnline: true},
		"B": {SKU: "B", Name: "Seggiolino", Price: dec("60"), RegularPrice: dec("65"), VisibleOnline: true, AvailableOnline: true},
	}, nil)
	s.reservations.EXPECT().ReservedLines(gomock.Any(), listID, s.now.Add(-enrich.DefaultReservationWindow)).Return(nil, nil)
	s.stores.EXPECT().FindByLocateID(gomock.Any(), "0042").Return(&models.Store{Name: "Milano", AllowPurchase: true}, nil)
	s.events.EXPECT().PublishViewed(gomock.Any(), gomock.Any()).Return(nil)

	summary, err := s.service.Summary(s.ctx, listID, SummaryRequest{View: models.ViewGuest, Page: 1})
	s.Require().NoError(err)
	s.Require().NotNil(summary)

	s.True(dec("40").Equal(summary.Reward.Value))
	s.Equal(models.TierNone, summary.Reward.Tier)
	s.True(summary.Discount.IsZero())

	s.Require().Len(summary.PriceRanges, 4)
	s.Equal(2, summary.PriceRanges[0].Count) // 30 and the gifted 40
	s.Equal(1, summary.PriceRanges[1].Count) // 60
	s.Equal(0, summary.PriceRanges[2].Count)
	s.Equal(0, summary.PriceRanges[3].Count)

	s.Equal(3, summary.ProductCount)
	s.Equal(1, summary.GiftedProducts.Count)
	s.Equal(2, summary.AvailableProducts.Count)
	s.True(dec("90").Equal(summary.AvailableProducts.Amount))
	s.Equal(int64(33), summary.Stats[0].Percentage)
	s.Equal(int64(31), summary.Stats[1].Percentage) // 40 / 130
	s.Equal("2", summary.GuestDetails[0].Value)

	s.Equal("Anna Rossi", summary.Details.ListName)
	s.Equal("Anna Rossi e Marco Bianchi", summary.Details.Name)
	s.Equal("15/01/2026", summary.Details.CreatedDate)
	s.Equal("20/06/2026", summary.Details.CloseDate)
	s.Empty(summary.Details.CardNumber)
	s.Require().NotNil(summary.Details.Store)
	s.Equal("Milano", *summary.Details.Store)

	s.True(summary.CanBuyFromList)
	s.Require().Len(summary.Products.Items, 3)
	s.False(summary.Products.Items[0].HideAddToCart)
	s.True(summary.Products.Items[2].HideAddToCart)
}

// heldProducer accepts records and never resolves them, like a client whose
// brokers are down.
type heldProducer struct {
	held chan *kgo.Record
}

func (p *heldProducer) TryProduce(_ context.Context, r *kgo.Record, _ func(*kgo.Record, error)) {
	p.held <- r
}

func (s *ServiceSuite) TestSummaryReturnsWhileBrokersAreDown() {
	producer := &heldProducer{held: make(chan *kgo.Record, 1)}
	publisher, err := events.New(producer, "babylist.views",
		events.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	s.Require().NoError(err)
	enricher, err := enrich.New(s.catalog, s.reservations)
	s.Require().NoError(err)
	svc, err := New(s.lists, enricher, s.vip, s.stores,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithEventPublisher(publisher),
	)
	s.Require().NoError(err)

	s.lists.EXPECT().Query(gomock.Any(), gomock.Any()).
		Return(&models.ListResponse{Success: true, Lists: []models.RawRegistry{rawList(
			models.RawLine{SKU: "A", LineID: 1, Quantity: 1, AvailableQty: 1, UnitPrice: dec("28")},
		)}}, nil)
	s.vip.EXPECT().IsVip(gomock.Any(), "CARD-1").Return(false, nil)
	s.catalog.EXPECT().BulkFetch(gomock.Any(), gomock.Any()).Return(map[string]models.CatalogEntry{}, nil)
	s.reservations.EXPECT().ReservedLines(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	s.stores.EXPECT().FindByLocateID(gomock.Any(), gomock.Any()).Return(nil, nil)

	type result struct {
		summary *models.Summary
		err     error
	}
	done := make(chan result, 1)
	go func() {
		summary, err := svc.Summary(s.ctx, listID, SummaryRequest{View: models.ViewGuest, Page: 1})
		done <- result{summary, err}
	}()

	select {
	case r := <-done:
		s.Require().NoError(r.err)
		s.NotNil(r.summary)
	case <-time.After(2 * time.Second):
		s.FailNow("Summary waited on the event brokers")
	}
	s.Len(producer.held, 1)
}

func (s *ServiceSuite) TestSummaryFiltersAndPages() {
	lines := make([]models.RawLine, 0, 25)
	for i := 1; i <= 25; i++ {
		lines = append(lines, models.RawLine{
			SKU: "X", LineID: int64(i), Quantity: 1, AvailableQty: 1, UnitPrice: decimal.NewFromInt(int64(i * 10)),
		})
	}
	s.expectList(rawList(lines...))
	s.catalog.EXPECT().BulkFetch(gomock.Any(), []string{"X"}).Return(map[string]models.CatalogEntry{}, nil)
	s.reservations.EXPECT().ReservedLines(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.LineRef{{SKU: "X", LineID: 25}}, nil)
	s.stores.EXPECT().FindByLocateID(gomock.Any(), gomock.Any()).Return(nil, nil)
	s.events.EXPECT().PublishViewed(gomock.Any(), gomock.Any()).Return(nil)

	sel := models.FilterSelection{Available: true, PriceBand: "150", SortOrder: models.SortPriceDesc}
	summary, err := s.service.Summary(s.ctx, listID, SummaryRequest{View: models.ViewGuest, Filters: sel, Page: 1})
	s.Require().NoError(err)

	// line 25 is reserved and drops out of the available set
	s.Equal(10, summary.Products.Total)
	s.Equal(int64(24), summary.Products.Items[0].LineID)
	s.Equal(1, summary.Products.TotalPages)

	// bands count the status-filtered set before the price restriction
	s.Equal(4, summary.PriceRanges[0].Count)
	s.Equal(5, summary.PriceRanges[1].Count)
	s.Equal(10, summary.PriceRanges[3].Count)

	// no store allows purchase, so no cart buttons
	s.False(summary.CanBuyFromList)
	s.True(summary.Products.Items[0].HideAddToCart)
	s.Nil(summary.Details.Store)
}

func (s *ServiceSuite) TestSummaryOwnerView() {
	ctx := requestcontext.WithViewer(s.ctx, requestcontext.ViewerInfo{ID: "7", ListCode: listID})
	s.blacklist.EXPECT().IsBlacklisted(listID).Return(false)
	s.lists.EXPECT().Query(gomock.Any(), gomock.Any()).
		Return(&models.ListResponse{Success: true, Lists: []models.RawRegistry{rawList()}}, nil)
	s.vip.EXPECT().IsVip(gomock.Any(), "CARD-1").Return(false, nil)
	s.vip.EXPECT().IsVipViewer(gomock.Any(), "7").Return(false, nil)
	s.coupons.EXPECT().HasOverridingCoupon(gomock.Any(), "7").Return(false, nil)
	s.reservations.EXPECT().ReservedLines(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	s.stores.EXPECT().FindByLocateID(gomock.Any(), gomock.Any()).Return(&models.Store{AllowPurchase: true}, nil)
	s.events.EXPECT().PublishViewed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.ViewedEvent) error {
			s.Equal(models.ViewAccount, event.View)
			s.Equal("7", event.ViewerID)
			s.Equal("req-1", event.RequestID)
			return errors.New("broker down")
		})

	summary, err := s.service.Summary(ctx, listID, SummaryRequest{View: models.ViewAccount, Page: 1})
	s.Require().NoError(err)
	s.True(summary.Details.IsListUser)
	s.Equal("CARD-1", summary.Details.CardNumber)
	s.True(summary.Details.IsEmpty)
	s.False(summary.CanBuyFromList)
}

func (s *ServiceSuite) TestSummaryCardNumberShowsAdminInfo() {
	s.expectList(rawList())
	s.reservations.EXPECT().ReservedLines(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	s.stores.EXPECT().FindByLocateID(gomock.Any(), gomock.Any()).Return(&models.Store{AllowPurchase: true}, nil)
	s.events.EXPECT().PublishViewed(gomock.Any(), gomock.Any()).Return(nil)

	summary, err := s.service.Summary(s.ctx, listID, SummaryRequest{View: models.ViewGuest, CardNumber: "CARD-1"})
	s.Require().NoError(err)
	s.Equal("CARD-1", summary.Details.CardNumber)
	s.False(summary.Details.IsListUser)
	s.False(summary.CanBuyFromList)
}

func (s *ServiceSuite) TestSummaryCouponUsesRegularPrice() {
	ctx := requestcontext.WithViewer(s.ctx, requestcontext.ViewerInfo{ID: "42"})
	s.blacklist.EXPECT().IsBlacklisted(listID).Return(false)
	s.lists.EXPECT().Query(gomock.Any(), gomock.Any()).Return(&models.ListResponse{
		Success: true,
		Lists: []models.RawRegistry{rawList(
			models.RawLine{SKU: "A", LineID: 1, Quantity: 2, AvailableQty: 2, UnitPrice: dec("20")},
		)},
	}, nil)
	s.vip.EXPECT().IsVip(gomock.Any(), "CARD-1").Return(true, nil)
	s.coupons.EXPECT().HasOverridingCoupon(gomock.Any(), "42").Return(true, nil)
	s.catalog.EXPECT().BulkFetch(gomock.Any(), gomock.Any()).Return(map[string]models.CatalogEntry{
		"A": {SKU: "A", Price: dec("25"), RegularPrice: dec("27"), VipPrice: decimal.NewNullDecimal(dec("21"))},
	}, nil)
	s.reservations.EXPECT().ReservedLines(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	s.stores.EXPECT().FindByLocateID(gomock.Any(), gomock.Any()).Return(nil, nil)
	s.events.EXPECT().PublishViewed(gomock.Any(), gomock.Any()).Return(nil)

	summary, err := s.service.Summary(ctx, listID, SummaryRequest{View: models.ViewGuest})
	s.Require().NoError(err)
	s.Require().Len(summary.Products.Items, 1)
	s.True(dec("54").Equal(summary.Products.Items[0].UnitPrice))
}

func (s *ServiceSuite) TestSummaryLookupFailureReturnsNothing() {
	s.expectList(rawList(models.RawLine{SKU: "A", LineID: 1, Quantity: 1, AvailableQty: 1}))
	s.catalog.EXPECT().BulkFetch(gomock.Any(), gomock.Any()).Return(nil, errors.New("catalog timeout"))
	s.reservations.EXPECT().ReservedLines(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	summary, err := s.service.Summary(s.ctx, listID, SummaryRequest{View: models.ViewGuest})
	s.Nil(summary)
	s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
	s.Equal("service unavailable", dErrors.MessageOf(err))
}

func (s *ServiceSuite) TestSummaryStoreFailureReturnsNothing() {
	s.expectList(rawList())
	s.reservations.EXPECT().ReservedLines(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	s.stores.EXPECT().FindByLocateID(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	summary, err := s.service.Summary(s.ctx, listID, SummaryRequest{View: models.ViewGuest})
	s.Nil(summary)
	s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
}

func (s *ServiceSuite) TestSummaryNotFound() {
	s.blacklist.EXPECT().IsBlacklisted(listID).Return(true)

	summary, err := s.service.Summary(s.ctx, listID, SummaryRequest{View: models.ViewGuest})
	s.NoError(err)
	s.Nil(summary)
}

// =============================================================================
// Availability and options
// =============================================================================

func (s *ServiceSuite) TestAvailability() {
	s.Run("rejects non positive quantity", func() {
		_, err := s.service.Availability(s.ctx, listID, 1, 0)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("reports availability and minimum amount", func() {
		s.expectList(rawList(models.RawLine{SKU: "A", LineID: 9, Quantity: 3, AvailableQty: 2}))

		got, err := s.service.Availability(s.ctx, listID, 9, 2)
		s.Require().NoError(err)
		s.True(got.Available)
		s.Equal(models.MinimumAmountMet, got.MinimumAmount)
	})

	s.Run("unknown line is unknown", func() {
		s.expectList(rawList())

		got, err := s.service.Availability(s.ctx, listID, 9, 1)
		s.Require().NoError(err)
		s.False(got.Available)
		s.Equal(models.MinimumAmountUnknown, got.MinimumAmount)
	})
}

func (s *ServiceSuite) TestOptions() {
	opts := s.service.Options()
	s.Len(opts.OrderOptions, 3)
	s.Len(opts.PriceRanges, 4)
	s.Equal([]string{"must_have", "disponibili", "regalati", "categoria", "price", "order_by"}, opts.Filters)
}

func (s *ServiceSuite) TestNewRequiresCollaborators() {
	enricher, err := enrich.New(s.catalog, s.reservations)
	s.Require().NoError(err)

	_, err = New(nil, enricher, s.vip, s.stores)
	s.Error(err)
	_, err = New(s.lists, nil, s.vip, s.stores)
	s.Error(err)
	_, err = New(s.lists, enricher, nil, s.stores)
	s.Error(err)
	_, err = New(s.lists, enricher, s.vip, nil)
	s.Error(err)
}
