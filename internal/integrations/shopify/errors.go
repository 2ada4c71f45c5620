package shopify

import "errors"

var (
	// ErrProductNotFound возвращается, когда товар не найден в магазине
	ErrProductNotFound = errors.New("shopify client: product not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("shopify client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе Shopify API
	ErrInvalidResponse = errors.New("shopify client: invalid response")

	// ErrGraphQL возвращается, когда GraphQL-запрос вернул ошибки
	ErrGraphQL = errors.New("shopify client: graphql query error")
)
