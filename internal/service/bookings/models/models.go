package models

import (
	"fmt"
	"time"

	"github.com/bookline/shopify-booking-service/internal/domain"
)

// ListBookingsRequest запрос на получение бронирований.
// Все фильтры опциональны и комбинируются через AND.
type ListBookingsRequest struct {
	StartDatetime    *string // календарная дата или момент, фильтр по дате start_datetime
	CheckTime        bool    // только слоты строго в будущем
	ShopifyProductID *int64  // фильтр по товару
}

// ToDomainFilter конвертирует запрос в domain-фильтр.
// start_datetime принимается как дата (YYYY-MM-DD) или полный момент RFC3339 —
// в обоих случаях сравнивается только календарная дата.
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		FutureOnly:       r.CheckTime,
		ShopifyProductID: r.ShopifyProductID,
	}

	if r.StartDatetime != nil {
		date, err := time.Parse(domain.DateFormat, *r.StartDatetime)
		if err != nil {
			date, err = time.Parse(time.RFC3339, *r.StartDatetime)
		}
		if err != nil {
			return domain.BookingsFilter{}, fmt.Errorf("invalid start_datetime filter: %v", err)
		}
		filter.Date = &date
	}

	return filter, nil
}

// BookingResponse бронирование в формате внешнего API (snake_case, как у витрины)
type BookingResponse struct {
	ID                  int64  `json:"id"`
	ShopifyProductTitle string `json:"shopify_product_title"`
	Duration            string `json:"duration"`
	StartDatetime       string `json:"start_datetime"`
	ShopifyProductID    int64  `json:"shopify_product_id"`
	IsActivated         bool   `json:"is_activated"`
	CreatedAt           string `json:"created_at"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain-модель в ответ API
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                  b.ID,
		ShopifyProductTitle: b.ProductTitle,
		Duration:            b.Duration,
		StartDatetime:       b.StartDatetime.Format(time.RFC3339),
		ShopifyProductID:    b.ShopifyProductID,
		IsActivated:         b.IsActivated,
		CreatedAt:           b.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список domain-моделей в ответ API
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := &BookingListResponse{
		Bookings: make([]*BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		result.Bookings = append(result.Bookings, FromDomainBooking(b))
	}
	return result
}
