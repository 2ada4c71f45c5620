package order_webhook

import (
	"context"

	processOrderWebhook "github.com/bookline/shopify-booking-service/internal/usecase/process_order_webhook"
)

type ProcessOrderWebhookUseCase interface {
	Execute(ctx context.Context, event *processOrderWebhook.OrderEvent) (*processOrderWebhook.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
