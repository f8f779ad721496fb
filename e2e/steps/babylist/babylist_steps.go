package babylist

import (
	"context"
	"fmt"
	"net/url"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	GET(path string, headers map[string]string) error
	GetLastStatusCode() int
	GetResponseField(field string) (any, error)
}

// RegisterSteps registers babylist view step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &babylistSteps{tc: tc}

	ctx.Step(`^I view babylist "([^"]*)" as a guest$`, steps.viewAsGuest)
	ctx.Step(`^I view babylist "([^"]*)" as a guest with query "([^"]*)"$`, steps.viewAsGuestWithQuery)
	ctx.Step(`^I check availability of line (\d+) on babylist "([^"]*)" for quantity (\d+)$`, steps.checkAvailability)
	ctx.Step(`^I request the babylist options$`, steps.requestOptions)
	ctx.Step(`^I view babylist "([^"]*)" as a guest (\d+) times$`, steps.viewRepeatedly)

	ctx.Step(`^the options should offer (\d+) sort orders$`, steps.optionsShouldOfferSortOrders)
	ctx.Step(`^the summary should be sorted by "([^"]*)"$`, steps.summaryShouldBeSortedBy)
	ctx.Step(`^the summary should contain a products page$`, steps.summaryShouldContainPage)
}

type babylistSteps struct {
	tc TestContext
}

func (s *babylistSteps) viewAsGuest(ctx context.Context, listID string) error {
	return s.tc.GET("/babylists/"+url.PathEscape(listID), nil)
}

func (s *babylistSteps) viewAsGuestWithQuery(ctx context.Context, listID, query string) error {
	return s.tc.GET("/babylists/"+url.PathEscape(listID)+"?"+query, nil)
}

func (s *babylistSteps) checkAvailability(ctx context.Context, lineID int, listID string, quantity int) error {
	return s.tc.GET(fmt.Sprintf("/babylists/%s/lines/%d/availability?quantity=%d", url.PathEscape(listID), lineID, quantity), nil)
}

func (s *babylistSteps) requestOptions(ctx context.Context) error {
	return s.tc.GET("/babylists/options", nil)
}

func (s *babylistSteps) viewRepeatedly(ctx context.Context, listID string, times int) error {
	for i := 0; i < times; i++ {
		if err := s.viewAsGuest(ctx, listID); err != nil {
			return err
		}
	}
	return nil
}

func (s *babylistSteps) optionsShouldOfferSortOrders(ctx context.Context, expected int) error {
	value, err := s.tc.GetResponseField("order_options")
	if err != nil {
		return err
	}
	options, ok := value.([]any)
	if !ok {
		return fmt.Errorf("order_options is not a list")
	}
	if len(options) != expected {
		return fmt.Errorf("expected %d sort orders, got %d", expected, len(options))
	}
	return nil
}

func (s *babylistSteps) summaryShouldBeSortedBy(ctx context.Context, order string) error {
	value, err := s.tc.GetResponseField("order_by")
	if err != nil {
		return err
	}
	if value != order {
		return fmt.Errorf("expected order_by %q, got %v", order, value)
	}
	return nil
}

func (s *babylistSteps) summaryShouldContainPage(ctx context.Context) error {
	if _, err := s.tc.GetResponseField("products.currentPage"); err != nil {
		return err
	}
	_, err := s.tc.GetResponseField("product_count")
	return err
}
