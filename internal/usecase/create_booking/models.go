package create_booking

import (
	"time"

	"github.com/bookline/shopify-booking-service/internal/domain"
)

// Request модель запроса на создание бронирования.
// Временные поля приходят строками и валидируются/парсятся внутри usecase.
type Request struct {
	ProductTitle     string  // название товара Shopify
	Duration         string  // свободное описание длительности ("2 hours", "full day")
	StartDatetime    string  // момент начала, RFC3339 с явной зоной
	ShopifyProductID int64   // ID товара в Shopify
	IsActivated      bool    // флаг активации (влияет только на запись в БД)
	FixedDate        *string // конец серии; nil — одиночное бронирование
}

// Response модель ответа с созданными бронированиями.
// Для одиночного запроса Bookings содержит ровно один элемент.
// Для серии — по одному на каждый свободный день (может быть пустым,
// если все дни оказались заняты).
type Response struct {
	Bookings []*domain.Booking
	IsSeries bool
}

// validated нормализованный запрос после прохождения всех проверок
type validated struct {
	start     time.Time
	seriesEnd *time.Time
}
