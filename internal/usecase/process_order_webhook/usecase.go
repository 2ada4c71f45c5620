package process_order_webhook

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bookline/shopify-booking-service/internal/domain"
)

// UseCase use case обработки вебхука orders/create:
// собирает ID бронирований из свойств позиций заказа и привязывает их
// к заказу через метаполе в Shopify
type UseCase struct {
	shopifyClient ShopifyClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(shopifyClient ShopifyClient, logger Logger) *UseCase {
	return &UseCase{
		shopifyClient: shopifyClient,
		logger:        logger,
	}
}

// Execute обрабатывает событие создания заказа.
// Отсутствие ID бронирований в заказе — не ошибка, а no-op:
// заказ мог не содержать бронируемых товаров.
func (uc *UseCase) Execute(ctx context.Context, event *OrderEvent) (*Response, error) {
	bookingIDs := collectBookingIDs(&event.Order)

	if len(bookingIDs) == 0 {
		uc.logger.Info("ProcessOrderWebhook: no booking ids in order %d", event.Order.ID)
		return &Response{BookingIDs: bookingIDs}, nil
	}

	if err := uc.shopifyClient.UpsertOrderBookingMetafield(ctx, event.Order.ID, bookingIDs); err != nil {
		uc.logger.Error("ProcessOrderWebhook: metafield update failed for order %d: %v", event.Order.ID, err)
		return nil, fmt.Errorf("%w: order %d: %v", ErrUpstream, event.Order.ID, err)
	}

	uc.logger.Info("ProcessOrderWebhook: order %d linked to booking ids %v", event.Order.ID, bookingIDs)

	return &Response{BookingIDs: bookingIDs, Updated: true}, nil
}

// collectBookingIDs извлекает ID бронирований из свойств позиций заказа.
// Нечисловые значения игнорируются, дубли отбрасываются с сохранением
// порядка первого появления.
func collectBookingIDs(order *Order) []int64 {
	ids := make([]int64, 0)
	seen := make(map[int64]struct{})

	for _, item := range order.LineItems {
		for _, prop := range item.Properties {
			if prop.Name != domain.BookingIDProperty {
				continue
			}

			id, err := strconv.ParseInt(prop.Value, 10, 64)
			if err != nil {
				continue
			}

			if _, ok := seen[id]; ok {
				continue
			}

			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	return ids
}
