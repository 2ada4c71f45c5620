package get_product

import (
	"context"

	"github.com/bookline/shopify-booking-service/internal/integrations/shopify"
)

type ShopifyClient interface {
	GetProductWithOrders(ctx context.Context, productID, bookingID int64) (*shopify.ProductWithOrders, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
