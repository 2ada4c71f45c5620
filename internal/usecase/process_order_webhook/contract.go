package process_order_webhook

import "context"

// ShopifyClient интерфейс клиента Shopify Admin API
type ShopifyClient interface {
	UpsertOrderBookingMetafield(ctx context.Context, orderID int64, bookingIDs []int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
