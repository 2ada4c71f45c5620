package get_products

import (
	"context"

	"github.com/bookline/shopify-booking-service/internal/integrations/shopify"
)

type ShopifyClient interface {
	GetProducts(ctx context.Context) ([]shopify.Product, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
