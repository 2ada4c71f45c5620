package get_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bookline/shopify-booking-service/internal/api/handlers"
	"github.com/bookline/shopify-booking-service/internal/service/bookings"
	"github.com/bookline/shopify-booking-service/internal/service/bookings/models"
)

const (
	msgInvalidProductID = "invalid shopify_product_id"
	msgInvalidFilter    = "invalid filter parameters"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /booking
// Query-параметры: start_datetime (фильтр по дате), check_time (только будущие),
// shopify_product_id (фильтр по товару). Условия комбинируются через AND.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListBookingsRequest{
		CheckTime: query.Get("check_time") == "true",
	}

	if v := query.Get("start_datetime"); v != "" {
		req.StartDatetime = &v
	}

	if v := query.Get("shopify_product_id"); v != "" {
		productID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.logger.Warn("GET /booking - Invalid shopify_product_id: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProductID)
			return
		}
		req.ShopifyProductID = &productID
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /booking - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /booking - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /booking - Returned %d booking(s)", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
