package create_booking

import (
	"errors"
	"net/http"

	"github.com/bookline/shopify-booking-service/internal/api/handlers"
	bookingModels "github.com/bookline/shopify-booking-service/internal/service/bookings/models"
	createBooking "github.com/bookline/shopify-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSlotTaken          = "booking already exists for this timeslot"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var vErr *createBooking.ValidationError

		switch {
		case errors.As(err, &vErr):
			h.logger.Warn("POST /booking - Validation failed: %s", vErr.Message)
			handlers.RespondBadRequest(w, vErr.Message)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /booking - Slot taken: product_id=%d, start=%s",
				req.ShopifyProductID, req.StartDatetime)
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("POST /booking - Failed to create booking: product_id=%d, error=%v",
				req.ShopifyProductID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Серия отвечает списком (возможно пустым), одиночное бронирование — объектом
	if result.IsSeries {
		response := SeriesBookingResponse{
			Bookings: make([]*bookingModels.BookingResponse, 0, len(result.Bookings)),
		}
		for _, b := range result.Bookings {
			response.Bookings = append(response.Bookings, bookingModels.FromDomainBooking(b))
		}

		h.logger.Info("POST /booking - Series created: %d booking(s), product_id=%d",
			len(result.Bookings), req.ShopifyProductID)
		handlers.RespondJSON(w, http.StatusCreated, response)
		return
	}

	h.logger.Info("POST /booking - Booking created: booking_id=%d, product_id=%d",
		result.Bookings[0].ID, req.ShopifyProductID)
	handlers.RespondJSON(w, http.StatusCreated, SingleBookingResponse{
		Booking: bookingModels.FromDomainBooking(result.Bookings[0]),
	})
}
