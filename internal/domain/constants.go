package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Recurrence limits
const (
	// MaxSeriesMonths максимальная длина серии бронирований в календарных месяцах
	MaxSeriesMonths = 6
)

// BookingIDProperty имя свойства позиции заказа Shopify,
// в котором витрина передает идентификатор бронирования
const BookingIDProperty = "booking_id"
