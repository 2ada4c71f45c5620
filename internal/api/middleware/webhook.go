package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"io"
	"net/http"

	"github.com/bookline/shopify-booking-service/internal/api/handlers"
)

// HmacHeader заголовок Shopify с base64-подписью тела запроса
const HmacHeader = "X-Shopify-Hmac-Sha256"

const msgWebhookUnauthorized = "unauthorized"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ShopifyWebhook middleware проверяет подпись вебхука Shopify.
//
// Подпись считается HMAC-SHA256 по точным байтам тела запроса — до любой
// десериализации: повторная сериализация JSON меняет байты и ломает подпись.
// Сравнение через hmac.Equal, за константное время. Клиенту при любом
// провале возвращается одинаковый 401, без указания, какая именно проверка
// не прошла.
func ShopifyWebhook(secret string, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Секрет обязан быть задан конфигурацией; его отсутствие —
			// ошибка сервера, а не клиента
			if secret == "" {
				log.Error("ShopifyWebhook: webhook secret is not configured")
				handlers.RespondInternalError(w)
				return
			}

			rawBody, err := io.ReadAll(r.Body)
			if err != nil {
				log.Warn("ShopifyWebhook: failed to read request body: %v", err)
				handlers.RespondUnauthorized(w, msgWebhookUnauthorized)
				return
			}
			r.Body.Close()

			header := r.Header.Get(HmacHeader)
			if header == "" {
				log.Warn("ShopifyWebhook: missing %s header", HmacHeader)
				handlers.RespondUnauthorized(w, msgWebhookUnauthorized)
				return
			}

			expected, err := base64.StdEncoding.DecodeString(header)
			if err != nil {
				log.Warn("ShopifyWebhook: malformed signature header")
				handlers.RespondUnauthorized(w, msgWebhookUnauthorized)
				return
			}

			mac := hmac.New(sha256.New, []byte(secret))
			mac.Write(rawBody)

			if !hmac.Equal(mac.Sum(nil), expected) {
				log.Warn("ShopifyWebhook: signature mismatch")
				handlers.RespondUnauthorized(w, msgWebhookUnauthorized)
				return
			}

			// Тело уже прочитано, восстанавливаем его для обработчика
			r.Body = io.NopCloser(bytes.NewReader(rawBody))

			next.ServeHTTP(w, r)
		})
	}
}
