package shopify

// Product товар из каталога Shopify
type Product struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Money денежная сумма с валютой
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

// Customer покупатель из заказа Shopify
type Customer struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone"`
}

// Order заказ, связанный с бронированием через тег booking_<id>
type Order struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CreatedAt  string    `json:"createdAt"`
	TotalPrice *Money    `json:"totalPrice,omitempty"`
	Quantity   int       `json:"quantity"`
	Customer   *Customer `json:"customer,omitempty"`
}

// ProductWithOrders товар вместе с заказами, привязанными к бронированию
type ProductWithOrders struct {
	Product Product `json:"product"`
	Orders  []Order `json:"orders"`
}

// graphQLRequest тело GraphQL-запроса к Shopify API
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// graphQLError ошибка GraphQL в ответе Shopify
type graphQLError struct {
	Message string `json:"message"`
}

// storefrontProductsResponse ответ Storefront API со списком товаров
type storefrontProductsResponse struct {
	Data struct {
		Products struct {
			Edges []struct {
				Node Product `json:"node"`
			} `json:"edges"`
		} `json:"products"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// adminProductOrdersResponse ответ Admin API с товаром и заказами
type adminProductOrdersResponse struct {
	Data struct {
		Product *Product `json:"product"`
		Orders  struct {
			Edges []struct {
				Node struct {
					ID            string `json:"id"`
					Name          string `json:"name"`
					CreatedAt     string `json:"createdAt"`
					TotalPriceSet *struct {
						ShopMoney Money `json:"shopMoney"`
					} `json:"totalPriceSet"`
					LineItems struct {
						Edges []struct {
							Node struct {
								Quantity int    `json:"quantity"`
								Title    string `json:"title"`
							} `json:"node"`
						} `json:"edges"`
					} `json:"lineItems"`
					Customer *struct {
						DisplayName string  `json:"displayName"`
						Email       string  `json:"email"`
						Phone       *string `json:"phone"`
					} `json:"customer"`
					ShippingAddress *struct {
						Phone *string `json:"phone"`
					} `json:"shippingAddress"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"orders"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// metafieldRequest тело запроса на создание метаполя заказа
type metafieldRequest struct {
	Metafield metafield `json:"metafield"`
}

type metafield struct {
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
	Type      string `json:"type"`
	Value     string `json:"value"`
}
