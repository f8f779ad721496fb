// Package listclient talks to the list-management service that owns babylists.
package listclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"babylist/internal/babylist/models"
	"babylist/pkg/platform/circuit"
	"babylist/pkg/platform/httputil"
	"babylist/pkg/platform/sentinel"
)

// Config holds the list service connection settings.
type Config struct {
	BaseURL  string
	Token    string
	RetryMax int
	Timeout  time.Duration
}

// Client queries lists over HTTP. Transient failures are retried; repeated
// failures open a circuit so callers fail fast while the service is down.
type Client struct {
	endpoint string
	token    string
	http     *retryablehttp.Client
	breaker  *circuit.Breaker
	logger   *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithBreaker(b *circuit.Breaker) Option {
	return func(c *Client) {
		c.breaker = b
	}
}

// New builds a client for the list service.
func New(cfg Config, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("list service url is required")
	}

	retryClient := httputil.NewRetryClient(cfg.RetryMax, cfg.Timeout)

	c := &Client{
		endpoint: strings.TrimRight(cfg.BaseURL, "/") + "/lists/query",
		token:    cfg.Token,
		http:     retryClient,
		breaker:  circuit.New("list-service"),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Query fetches the lists matching query. An error means no usable reply
// was received; an unsuccessful reply is returned as is.
func (c *Client) Query(ctx context.Context, query models.ListQuery) (*models.ListResponse, error) {
	if !c.breaker.Allow() {
		return nil, fmt.Errorf("list service circuit open: %w", sentinel.ErrUnavailable)
	}

	body, err := c.post(ctx, query)
	if err != nil {
		if _, change := c.breaker.RecordFailure(); change.Opened {
			c.logger.WarnContext(ctx, "list service circuit opened", "endpoint", c.endpoint)
		}
		return nil, err
	}
	if _, change := c.breaker.RecordSuccess(); change.Closed {
		c.logger.InfoContext(ctx, "list service circuit closed", "endpoint", c.endpoint)
	}

	return decodeResponse(body)
}

func (c *Client) post(ctx context.Context, query models.ListQuery) (string, error) {
	payload, err := json.Marshal(query)
	if err != nil {
		return "", fmt.Errorf("encode list query: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build list request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("list service request: %w: %w", sentinel.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read list response: %w", err)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return "", fmt.Errorf("list service status %d: %w", resp.StatusCode, sentinel.ErrUnavailable)
	}

	body := string(raw)
	if !gjson.Valid(body) {
		return "", fmt.Errorf("list service returned malformed body (status %d): %w", resp.StatusCode, sentinel.ErrUnavailable)
	}
	return body, nil
}

// decodeResponse maps the list service envelope:
//
//	{"isSuccessful": bool, "errorCode": int, "message": string, "data": {"lists": [...]}}
func decodeResponse(body string) (*models.ListResponse, error) {
	envelope := gjson.Parse(body)
	if !envelope.IsObject() {
		return nil, fmt.Errorf("list service reply is not an object: %w", sentinel.ErrUnavailable)
	}

	resp := &models.ListResponse{
		Success:   envelope.Get("isSuccessful").Bool(),
		ErrorCode: int(envelope.Get("errorCode").Int()),
		Message:   envelope.Get("message").String(),
	}
	for _, list := range envelope.Get("data.lists").Array() {
		raw, err := decodeList(list)
		if err != nil {
			return nil, err
		}
		resp.Lists = append(resp.Lists, raw)
	}
	return resp, nil
}

func decodeList(list gjson.Result) (models.RawRegistry, error) {
	donations, err := decimalOf(list, "donation_total_amount")
	if err != nil {
		return models.RawRegistry{}, err
	}
	raw := models.RawRegistry{
		ListCode:       list.Get("list_code").String(),
		MotherName:     list.Get("mother.name").String(),
		MotherSurname:  list.Get("mother.surname").String(),
		FatherName:     list.Get("father.name").String(),
		FatherSurname:  list.Get("father.surname").String(),
		Email:          list.Get("email").String(),
		OpenDate:       list.Get("open_date").String(),
		CloseDate:      list.Get("close_date").String(),
		ExpirationDate: list.Get("expiration_date").String(),
		IsClosed:       list.Get("is_closed").Bool(),
		DonationTotal:  donations,
		FidelityCode:   list.Get("fidelity_code").String(),
		StoreLocateID:  list.Get("sbs").String(),
	}
	for _, item := range list.Get("items").Array() {
		line, err := decodeLine(item)
		if err != nil {
			return models.RawRegistry{}, fmt.Errorf("list %s: %w", raw.ListCode, err)
		}
		raw.Lines = append(raw.Lines, line)
	}
	return raw, nil
}

func decodeLine(item gjson.Result) (models.RawLine, error) {
	price, err := decimalOf(item, "unit_price")
	if err != nil {
		return models.RawLine{}, err
	}
	return models.RawLine{
		SKU:          item.Get("alpha_code").String(),
		LineID:       item.Get("detail_id").Int(),
		Quantity:     int(item.Get("qty").Int()),
		UnitPrice:    price,
		AvailableQty: int(item.Get("available_qty").Int()),
		Mandatory:    item.Get("mandatory").Bool(),
		Participates: item.Get("participate").Bool(),
		Importance:   int(item.Get("importance").Int()),
		Name:         item.Get("name").String(),
		Description:  item.Get("descr").String(),
	}, nil
}

// decimalOf reads a money field that may arrive as a JSON number or string.
// A missing, null or blank field is zero; anything unparseable makes the
// reply malformed.
func decimalOf(obj gjson.Result, field string) (decimal.Decimal, error) {
	value := obj.Get(field)
	text := strings.TrimSpace(value.String())
	if !value.Exists() || value.Type == gjson.Null || text == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("list service sent malformed %s %q: %w", field, value.Raw, sentinel.ErrUnavailable)
	}
	return d, nil
}
