package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookline/shopify-booking-service/pkg/token"
)

func TestAuth_ValidTokenPutsUserInContext(t *testing.T) {
	manager := token.NewManager("test-secret", time.Hour)

	issued, err := manager.Issue(15, "user@example.com")
	require.NoError(t, err)

	var handlerCalled bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true

		userID, ok := GetUserID(r.Context())
		require.True(t, ok)
		assert.Equal(t, int64(15), userID)

		email, ok := GetUserEmail(r.Context())
		require.True(t, ok)
		assert.Equal(t, "user@example.com", email)
	})

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Authorization", "Bearer "+issued)

	rec := httptest.NewRecorder()
	Auth(manager)(next).ServeHTTP(rec, req)

	assert.True(t, handlerCalled)
}

func TestAuth_Rejections(t *testing.T) {
	manager := token.NewManager("test-secret", time.Hour)

	foreign, err := token.NewManager("other-secret", time.Hour).Issue(15, "user@example.com")
	require.NoError(t, err)

	expired, err := token.NewManager("test-secret", -time.Hour).Issue(15, "user@example.com")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "bearer without token", header: "Bearer "},
		{name: "garbage token", header: "Bearer not.a.token"},
		{name: "token signed with another secret", header: "Bearer " + foreign},
		{name: "expired token", header: "Bearer " + expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("handler must not be called")
			})

			req := httptest.NewRequest(http.MethodGet, "/user", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			Auth(manager)(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestGetUserID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/user", nil)

	_, ok := GetUserID(req.Context())
	assert.False(t, ok)
}
