package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"babylist/internal/babylist/models"
	"babylist/internal/babylist/paginate"
	"babylist/internal/babylist/service"
	dErrors "babylist/pkg/domain-errors"
	"babylist/pkg/platform/httputil"
	"babylist/pkg/requestcontext"
)

// Service defines the interface for babylist read operations.
type Service interface {
	Summary(ctx context.Context, listID string, req service.SummaryRequest) (*models.Summary, error)
	Availability(ctx context.Context, listID string, lineID int64, quantity int) (*models.Availability, error)
	Options() models.Options
}

// Handler wires babylist endpoints to the babylist service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a babylist handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts babylist endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/babylists/options", h.HandleOptions)
	r.Get("/babylists/{listID}", h.HandleGuestView)
	r.Get("/babylists/{listID}/lines/{lineID}/availability", h.HandleAvailability)
	r.Get("/account/babylists/{listID}", h.HandleAccountView)
	r.Get("/account/babylists/{listID}/*", h.HandleAccountView)
}

// HandleGuestView handles GET /babylists/{listID}.
func (h *Handler) HandleGuestView(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, "listID")
	query := r.URL.Query()
	h.serveSummary(w, r, listID, service.SummaryRequest{
		View:       models.ViewGuest,
		Filters:    models.ParseFilterSelection(query),
		Page:       paginate.ResolvePage(query.Get("paged"), ""),
		CardNumber: query.Get("card_number"),
	})
}

// HandleAccountView handles GET /account/babylists/{listID}/*. A "page/{n}"
// pair in the trailing path selects the page.
func (h *Handler) HandleAccountView(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, "listID")
	query := r.URL.Query()
	accountPath := strings.Trim(listID+"/"+chi.URLParam(r, "*"), "/")
	h.serveSummary(w, r, listID, service.SummaryRequest{
		View:       models.ViewAccount,
		Filters:    models.ParseFilterSelection(query),
		Page:       paginate.ResolvePage(query.Get("paged"), accountPath),
		CardNumber: query.Get("card_number"),
	})
}

func (h *Handler) serveSummary(w http.ResponseWriter, r *http.Request, listID string, req service.SummaryRequest) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	summary, err := h.service.Summary(ctx, listID, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "babylist summary failed",
			"request_id", requestID,
			"list_id", listID,
			"view", req.View,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	if summary == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "babylist not found"))
		return
	}

	h.logger.InfoContext(ctx, "babylist summary served",
		"request_id", requestID,
		"list_id", listID,
		"view", req.View,
		"page", summary.Products.CurrentPage,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, summary)
}

// HandleAvailability handles GET /babylists/{listID}/lines/{lineID}/availability.
func (h *Handler) HandleAvailability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	listID := chi.URLParam(r, "listID")

	lineID, err := strconv.ParseInt(chi.URLParam(r, "lineID"), 10, 64)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "line id must be a number"))
		return
	}
	quantity := 1
	if raw := r.URL.Query().Get("quantity"); raw != "" {
		quantity, err = strconv.Atoi(raw)
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "quantity must be a number"))
			return
		}
	}

	result, err := h.service.Availability(ctx, listID, lineID, quantity)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeValidation) {
			h.logger.ErrorContext(ctx, "babylist availability failed",
				"request_id", requestcontext.RequestID(ctx),
				"list_id", listID,
				"line_id", lineID,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}
	if result == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "babylist not found"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

// HandleOptions handles GET /babylists/options.
func (h *Handler) HandleOptions(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.Options())
}
