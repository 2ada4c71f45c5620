package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	storefrontAPIVersion = "2023-07"
	adminAPIVersion      = "2023-10"

	metafieldNamespace = "custom"
	metafieldKey       = "booking_id"
	metafieldType      = "json"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с Shopify API (Storefront и Admin)
type Client struct {
	storeURL        string // хост магазина без схемы, например mystore.myshopify.com
	storefrontToken string
	adminToken      string
	httpClient      *http.Client
	log             Logger
}

// NewClient создает новый экземпляр клиента Shopify
func NewClient(storeURL, storefrontToken, adminToken string, timeout time.Duration, log Logger) *Client {
	return &Client{
		storeURL:        strings.TrimPrefix(strings.TrimPrefix(storeURL, "https://"), "http://"),
		storefrontToken: storefrontToken,
		adminToken:      adminToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

const productsQuery = `
{
  products(first: 100) {
    edges {
      node {
        id
        title
      }
    }
  }
}`

// GetProducts получает список товаров магазина через Storefront API
func (c *Client) GetProducts(ctx context.Context) ([]Product, error) {
	url := fmt.Sprintf("https://%s/api/%s/graphql.json", c.storeURL, storefrontAPIVersion)

	var parsed storefrontProductsResponse
	headers := map[string]string{"X-Shopify-Storefront-Access-Token": c.storefrontToken}
	if err := c.postGraphQL(ctx, url, headers, graphQLRequest{Query: productsQuery}, &parsed); err != nil {
		return nil, err
	}

	if len(parsed.Errors) > 0 {
		return nil, fmt.Errorf("%w: GetProducts - %s", ErrGraphQL, parsed.Errors[0].Message)
	}

	products := make([]Product, 0, len(parsed.Data.Products.Edges))
	for _, edge := range parsed.Data.Products.Edges {
		products = append(products, edge.Node)
	}

	return products, nil
}

const productOrdersQuery = `
query GetProductAndOrders($productId: ID!, $ordersQuery: String!) {
  product: node(id: $productId) {
    ... on Product {
      id
      title
    }
  }
  orders(first: 10, query: $ordersQuery) {
    edges {
      node {
        id
        name
        createdAt
        totalPriceSet {
          shopMoney {
            amount
            currencyCode
          }
        }
        lineItems(first: 10) {
          edges {
            node {
              quantity
              title
            }
          }
        }
        customer {
          displayName
          email
          phone
        }
        shippingAddress {
          phone
        }
      }
    }
  }
}`

// GetProductWithOrders получает товар и заказы, помеченные тегом booking_<id>, через Admin API
func (c *Client) GetProductWithOrders(ctx context.Context, productID, bookingID int64) (*ProductWithOrders, error) {
	url := fmt.Sprintf("https://%s/admin/api/%s/graphql.json", c.storeURL, adminAPIVersion)

	req := graphQLRequest{
		Query: productOrdersQuery,
		Variables: map[string]any{
			"productId":   fmt.Sprintf("gid://shopify/Product/%d", productID),
			"ordersQuery": fmt.Sprintf("tag:booking_%d", bookingID),
		},
	}

	var parsed adminProductOrdersResponse
	headers := map[string]string{"X-Shopify-Access-Token": c.adminToken}
	if err := c.postGraphQL(ctx, url, headers, req, &parsed); err != nil {
		return nil, err
	}

	if len(parsed.Errors) > 0 {
		return nil, fmt.Errorf("%w: GetProductWithOrders - %s", ErrGraphQL, parsed.Errors[0].Message)
	}

	if parsed.Data.Product == nil {
		return nil, ErrProductNotFound
	}

	result := &ProductWithOrders{
		Product: *parsed.Data.Product,
		Orders:  make([]Order, 0, len(parsed.Data.Orders.Edges)),
	}

	for _, edge := range parsed.Data.Orders.Edges {
		node := edge.Node

		// Суммарное количество позиций заказа
		quantity := 0
		for _, item := range node.LineItems.Edges {
			quantity += item.Node.Quantity
		}

		order := Order{
			ID:        node.ID,
			Name:      node.Name,
			CreatedAt: node.CreatedAt,
			Quantity:  quantity,
		}

		if node.TotalPriceSet != nil {
			order.TotalPrice = &node.TotalPriceSet.ShopMoney
		}

		if node.Customer != nil {
			// Приоритет у телефона из адреса доставки
			phone := node.Customer.Phone
			if node.ShippingAddress != nil && node.ShippingAddress.Phone != nil {
				phone = node.ShippingAddress.Phone
			}
			order.Customer = &Customer{
				Name:  node.Customer.DisplayName,
				Email: node.Customer.Email,
				Phone: phone,
			}
		}

		result.Orders = append(result.Orders, order)
	}

	return result, nil
}

// UpsertOrderBookingMetafield записывает список ID бронирований
// в метаполе заказа (custom.booking_id, тип json) через Admin REST API
func (c *Client) UpsertOrderBookingMetafield(ctx context.Context, orderID int64, bookingIDs []int64) error {
	url := fmt.Sprintf("https://%s/admin/api/%s/orders/%d/metafields.json", c.storeURL, adminAPIVersion, orderID)

	value, err := json.Marshal(bookingIDs)
	if err != nil {
		return fmt.Errorf("%w: UpsertOrderBookingMetafield - marshal booking ids: %v", ErrInternal, err)
	}

	body, err := json.Marshal(metafieldRequest{
		Metafield: metafield{
			Namespace: metafieldNamespace,
			Key:       metafieldKey,
			Type:      metafieldType,
			Value:     string(value),
		},
	})
	if err != nil {
		return fmt.Errorf("%w: UpsertOrderBookingMetafield - marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: UpsertOrderBookingMetafield - create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.adminToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: UpsertOrderBookingMetafield - execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: UpsertOrderBookingMetafield - unexpected status code %d: %s",
			ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	c.log.Info("UpsertOrderBookingMetafield: attached %d booking id(s) to order %d", len(bookingIDs), orderID)

	return nil
}

// postGraphQL выполняет GraphQL-запрос и декодирует ответ в out
func (c *Client) postGraphQL(ctx context.Context, url string, headers map[string]string, reqBody graphQLRequest, out any) error {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("%w: postGraphQL - marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: postGraphQL - create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: postGraphQL - execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: postGraphQL - unexpected status code %d: %s",
			ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: postGraphQL - decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
