package domain

import "time"

// Booking represents a time slot reserved against a Shopify product.
// A recurring request materializes into N independent rows, one per day;
// there is no series entity.
type Booking struct {
	ID               int64
	ProductTitle     string
	Duration         string
	StartDatetime    time.Time
	ShopifyProductID int64
	IsActivated      bool
	CreatedAt        time.Time
}

// IsInFuture returns true if the booking slot is strictly after now.
func (b *Booking) IsInFuture(now time.Time) bool {
	return b.StartDatetime.After(now)
}

// BookingsFilter фильтр для выборки бронирований.
// Все условия комбинируются через AND.
type BookingsFilter struct {
	Date             *time.Time // точное совпадение календарной даты start_datetime
	FutureOnly       bool       // только слоты строго в будущем
	ShopifyProductID *int64     // фильтр по товару
}
