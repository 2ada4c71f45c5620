package create_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/bookline/shopify-booking-service/internal/domain"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Одиночный запрос: занятый слот — ошибка ErrSlotTaken, запись не создается.
// Серия (fixed_date): занятые дни молча пропускаются, создаются только
// свободные; результат может быть пустым, и это не ошибка — так
// повторяющийся запрос заполняет свободные дни.
//
// Проверка конфликта и вставка не атомарны: два одновременных запроса на
// один слот могут оба пройти проверку. Гарантию дает только уникальный
// индекс на (shopify_product_id, start_datetime) в хранилище.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: product=%d, start=%s, series=%v",
		req.ShopifyProductID, req.StartDatetime, req.FixedDate != nil)

	// 1. Валидация и нормализация входных данных
	now := uc.timeProvider.Now()

	v, err := validateRequest(req, now)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Одиночное бронирование
	if v.seriesEnd == nil {
		taken, err := uc.bookingRepo.ExistsAtInstant(ctx, req.ShopifyProductID, v.start)
		if err != nil {
			uc.logger.Error("CreateBooking: conflict check failed: %v", err)
			return nil, fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}
		if taken {
			uc.logger.Warn("CreateBooking: slot taken, product=%d, start=%s",
				req.ShopifyProductID, v.start.Format(time.RFC3339))
			return nil, ErrSlotTaken
		}

		created, err := uc.createOne(ctx, req, v.start)
		if err != nil {
			return nil, err
		}

		uc.logger.Info("CreateBooking: successfully created booking id=%d", created.ID)
		return &Response{Bookings: []*domain.Booking{created}}, nil
	}

	// 3. Серия: разворачиваем по дням и создаем только свободные слоты
	instants := expandSeries(v.start, v.seriesEnd)
	createdBookings := make([]*domain.Booking, 0, len(instants))

	for _, instant := range instants {
		taken, err := uc.bookingRepo.ExistsAtInstant(ctx, req.ShopifyProductID, instant)
		if err != nil {
			uc.logger.Error("CreateBooking: conflict check failed for %s: %v",
				instant.Format(time.RFC3339), err)
			return nil, fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}
		if taken {
			uc.logger.Info("CreateBooking: skipping taken slot %s for product=%d",
				instant.Format(time.RFC3339), req.ShopifyProductID)
			continue
		}

		created, err := uc.createOne(ctx, req, instant)
		if err != nil {
			return nil, err
		}

		createdBookings = append(createdBookings, created)
	}

	uc.logger.Info("CreateBooking: series created %d of %d day(s) for product=%d",
		len(createdBookings), len(instants), req.ShopifyProductID)

	return &Response{Bookings: createdBookings, IsSeries: true}, nil
}

// createOne сохраняет одно бронирование на указанный момент
func (uc *UseCase) createOne(ctx context.Context, req *Request, instant time.Time) (*domain.Booking, error) {
	booking := &domain.Booking{
		ProductTitle:     req.ProductTitle,
		Duration:         req.Duration,
		StartDatetime:    instant,
		ShopifyProductID: req.ShopifyProductID,
		IsActivated:      req.IsActivated,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	return created, nil
}
