package process_order_webhook

// OrderEvent полезная нагрузка вебхука orders/create.
// Разбираются только нужные поля, остальное игнорируется.
type OrderEvent struct {
	Order Order `json:"order"`
}

// Order заказ Shopify из вебхука
type Order struct {
	ID        int64      `json:"id"`
	LineItems []LineItem `json:"line_items"`
}

// LineItem позиция заказа
type LineItem struct {
	Properties []Property `json:"properties"`
}

// Property свойство позиции заказа, пара имя/значение
type Property struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Response результат обработки вебхука
type Response struct {
	BookingIDs []int64 // найденные ID бронирований (без дублей, в порядке появления)
	Updated    bool    // true, если метаполе заказа было обновлено
}
