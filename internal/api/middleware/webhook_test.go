package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func webhookRequest(body, signature string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/webhook/order-created", strings.NewReader(body))
	if signature != "" {
		req.Header.Set(HmacHeader, signature)
	}
	return req
}

func TestShopifyWebhook_ValidSignaturePasses(t *testing.T) {
	const secret = "test-secret"
	body := `{"order":{"id":1}}`

	var handlerCalled bool
	var seenBody []byte

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		seenBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	ShopifyWebhook(secret, noopLogger{})(next).ServeHTTP(rec, webhookRequest(body, signBody(secret, []byte(body))))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, handlerCalled)

	// Обработчику достаются те же байты, по которым считалась подпись
	assert.Equal(t, body, string(seenBody))
}

func TestShopifyWebhook_Rejections(t *testing.T) {
	const secret = "test-secret"
	body := `{"order":{"id":1}}`

	tests := []struct {
		name      string
		signature string
	}{
		{
			name:      "missing signature header",
			signature: "",
		},
		{
			name:      "header is not base64",
			signature: "not-base64!!!",
		},
		{
			name:      "signature for a different body",
			signature: signBody(secret, []byte(`{"order":{"id":2}}`)),
		},
		{
			name:      "signature with a different secret",
			signature: signBody("other-secret", []byte(body)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("handler must not be called")
			})

			rec := httptest.NewRecorder()
			ShopifyWebhook(secret, noopLogger{})(next).ServeHTTP(rec, webhookRequest(body, tt.signature))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())
		})
	}
}

func TestShopifyWebhook_TamperedBodyRejected(t *testing.T) {
	const secret = "test-secret"
	body := []byte(`{"order":{"id":1}}`)
	signature := signBody(secret, body)

	// Меняем один байт тела после подписания
	tampered := make([]byte, len(body))
	copy(tampered, body)
	tampered[len(tampered)-2] = '9'

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	})

	rec := httptest.NewRecorder()
	ShopifyWebhook(secret, noopLogger{})(next).ServeHTTP(rec, webhookRequest(string(tampered), signature))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestShopifyWebhook_MissingSecretIsServerError(t *testing.T) {
	body := `{"order":{"id":1}}`

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	})

	rec := httptest.NewRecorder()
	ShopifyWebhook("", noopLogger{})(next).ServeHTTP(rec, webhookRequest(body, signBody("whatever", []byte(body))))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
