package process_order_webhook

import "errors"

var (
	// ErrUpstream возвращается, когда не удалось обновить метаполе заказа в Shopify
	ErrUpstream = errors.New("process_order_webhook: failed to update order metafield")
)
