package get_product

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bookline/shopify-booking-service/internal/api/handlers"
	"github.com/bookline/shopify-booking-service/internal/integrations/shopify"
)

const (
	msgInvalidProductID = "invalid product id"
	msgInvalidBookingID = "invalid bookingId parameter"
	msgProductNotFound  = "product not found"
)

type Handler struct {
	client ShopifyClient
	logger Logger
}

func NewHandler(client ShopifyClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle GET /product/{productId}?bookingId=N
// Возвращает товар и заказы, привязанные к бронированию через тег booking_<id>
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	productID, err := strconv.ParseInt(vars["productId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /product/{id} - Invalid product ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	var bookingID int64
	if v := r.URL.Query().Get("bookingId"); v != "" {
		bookingID, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.logger.Warn("GET /product/{id} - Invalid bookingId: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)
			return
		}
	}

	result, err := h.client.GetProductWithOrders(r.Context(), productID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, shopify.ErrProductNotFound):
			h.logger.Warn("GET /product/{id} - Product not found: product_id=%d", productID)
			handlers.RespondNotFound(w, msgProductNotFound)

		default:
			h.logger.Error("GET /product/{id} - Failed to fetch product: product_id=%d, error=%v",
				productID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /product/{id} - Returned product %s with %d order(s)",
		result.Product.ID, len(result.Orders))
	handlers.RespondJSON(w, http.StatusOK, result)
}
