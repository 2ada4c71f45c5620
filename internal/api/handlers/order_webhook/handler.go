package order_webhook

import (
	"net/http"

	"github.com/bookline/shopify-booking-service/internal/api/handlers"
	processOrderWebhook "github.com/bookline/shopify-booking-service/internal/usecase/process_order_webhook"
)

const (
	msgInvalidPayload = "invalid webhook payload"
	msgNoBookingIDs   = "No booking IDs found"
)

// WebhookResponse ответ на доставку вебхука
type WebhookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type Handler struct {
	useCase ProcessOrderWebhookUseCase
	logger  Logger
}

func NewHandler(useCase ProcessOrderWebhookUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /webhook/order-created
// Подпись запроса уже проверена middleware по сырым байтам тела.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var event processOrderWebhook.OrderEvent
	if err := handlers.DecodeJSON(r, &event); err != nil {
		h.logger.Warn("POST /webhook/order-created - Invalid payload: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPayload)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &event)
	if err != nil {
		// Сбой обращения к Shopify — непрозрачная серверная ошибка,
		// Shopify повторит доставку сам
		h.logger.Error("POST /webhook/order-created - Processing failed: order_id=%d, error=%v",
			event.Order.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	if !result.Updated {
		handlers.RespondJSON(w, http.StatusOK, WebhookResponse{Success: true, Message: msgNoBookingIDs})
		return
	}

	h.logger.Info("POST /webhook/order-created - Order %d linked to %d booking(s)",
		event.Order.ID, len(result.BookingIDs))
	handlers.RespondJSON(w, http.StatusOK, WebhookResponse{Success: true})
}
