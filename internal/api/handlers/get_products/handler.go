package get_products

import (
	"net/http"

	"github.com/bookline/shopify-booking-service/internal/api/handlers"
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

// Handle GET /product
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	products, err := h.client.GetProducts(r.Context())
	if err != nil {
		h.logger.Error("GET /product - Failed to fetch products: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /product - Returned %d product(s)", len(products))
	handlers.RespondJSON(w, http.StatusOK, products)
}
