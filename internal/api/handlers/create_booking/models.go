package create_booking

import (
	bookingModels "github.com/bookline/shopify-booking-service/internal/service/bookings/models"
	createBooking "github.com/bookline/shopify-booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ShopifyProductTitle string  `json:"shopify_product_title"`
	Duration            string  `json:"duration"`
	StartDatetime       string  `json:"start_datetime"` // RFC3339, например "2025-06-01T10:00:00Z"
	ShopifyProductID    int64   `json:"shopify_product_id"`
	IsActivated         bool    `json:"is_activated"`
	FixedDate           *string `json:"fixed_date,omitempty"` // конец серии, RFC3339
}

// SingleBookingResponse ответ при одиночном бронировании
type SingleBookingResponse struct {
	Booking *bookingModels.BookingResponse `json:"booking"`
}

// SeriesBookingResponse ответ при создании серии
type SeriesBookingResponse struct {
	Bookings []*bookingModels.BookingResponse `json:"bookings"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		ProductTitle:     r.ShopifyProductTitle,
		Duration:         r.Duration,
		StartDatetime:    r.StartDatetime,
		ShopifyProductID: r.ShopifyProductID,
		IsActivated:      r.IsActivated,
		FixedDate:        r.FixedDate,
	}
}
