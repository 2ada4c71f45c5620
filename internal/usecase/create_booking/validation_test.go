package create_booking

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookline/shopify-booking-service/pkg/ptr"
)

func validRequest() *Request {
	return &Request{
		ProductTitle:     "Kayak rental",
		Duration:         "2 hours",
		StartDatetime:    "2025-06-10T10:00:00Z",
		ShopifyProductID: 42,
	}
}

func TestValidateRequest_Valid(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	v, err := validateRequest(validRequest(), now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC), v.start)
	assert.Nil(t, v.seriesEnd)
}

func TestValidateRequest_ValidSeries(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	req := validRequest()
	req.FixedDate = ptr.Ptr("2025-06-12T10:00:00Z")

	v, err := validateRequest(req, now)
	require.NoError(t, err)

	require.NotNil(t, v.seriesEnd)
	assert.Equal(t, time.Date(2025, 6, 12, 10, 0, 0, 0, time.UTC), *v.seriesEnd)
}

func TestValidateRequest_SeriesEndAtExactCap(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	// Ровно шесть календарных месяцев от начала — допустимо
	req := validRequest()
	req.FixedDate = ptr.Ptr("2025-12-10T10:00:00Z")

	v, err := validateRequest(req, now)
	require.NoError(t, err)
	require.NotNil(t, v.seriesEnd)
}

func TestValidateRequest_Errors(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		mutate   func(req *Request)
		wantKind ValidationKind
		wantMsg  string
	}{
		{
			name:     "missing product title",
			mutate:   func(req *Request) { req.ProductTitle = "" },
			wantKind: KindMissingField,
			wantMsg:  "missing fields in request body",
		},
		{
			name:     "missing duration",
			mutate:   func(req *Request) { req.Duration = "" },
			wantKind: KindMissingField,
			wantMsg:  "missing fields in request body",
		},
		{
			name:     "missing start datetime",
			mutate:   func(req *Request) { req.StartDatetime = "" },
			wantKind: KindMissingField,
			wantMsg:  "missing fields in request body",
		},
		{
			name:     "zero product id",
			mutate:   func(req *Request) { req.ShopifyProductID = 0 },
			wantKind: KindMissingField,
			wantMsg:  "missing fields in request body",
		},
		{
			name:     "duration with special characters",
			mutate:   func(req *Request) { req.Duration = "2 hours!" },
			wantKind: KindInvalidFormat,
			wantMsg:  "invalid duration format",
		},
		{
			name:     "start datetime without timezone",
			mutate:   func(req *Request) { req.StartDatetime = "2025-06-10T10:00:00" },
			wantKind: KindInvalidFormat,
			wantMsg:  "invalid start_datetime format",
		},
		{
			name:     "start datetime with space separator",
			mutate:   func(req *Request) { req.StartDatetime = "2025-06-10 10:00:00Z" },
			wantKind: KindInvalidFormat,
			wantMsg:  "invalid start_datetime format",
		},
		{
			name:     "start datetime well-formed but not a real date",
			mutate:   func(req *Request) { req.StartDatetime = "2025-13-40T10:00:00Z" },
			wantKind: KindInvalidValue,
			wantMsg:  "invalid start_datetime",
		},
		{
			name:     "start datetime in the past",
			mutate:   func(req *Request) { req.StartDatetime = "2025-05-01T10:00:00Z" },
			wantKind: KindInvalidValue,
			wantMsg:  "start_datetime must be in the future",
		},
		{
			name:     "start datetime equal to now",
			mutate:   func(req *Request) { req.StartDatetime = "2025-06-01T00:00:00Z" },
			wantKind: KindInvalidValue,
			wantMsg:  "start_datetime must be in the future",
		},
		{
			name:     "negative product id",
			mutate:   func(req *Request) { req.ShopifyProductID = -5 },
			wantKind: KindInvalidValue,
			wantMsg:  "shopify_product_id must be a positive integer",
		},
		{
			name:     "fixed date without timezone",
			mutate:   func(req *Request) { req.FixedDate = ptr.Ptr("2025-06-12T10:00:00") },
			wantKind: KindInvalidValue,
			wantMsg:  "invalid fixed_date format",
		},
		{
			name:     "fixed date well-formed but not a real date",
			mutate:   func(req *Request) { req.FixedDate = ptr.Ptr("2025-02-31T10:00:00Z") },
			wantKind: KindInvalidValue,
			wantMsg:  "invalid fixed_date",
		},
		{
			name:     "fixed date beyond six months",
			mutate:   func(req *Request) { req.FixedDate = ptr.Ptr("2025-12-10T10:00:01Z") },
			wantKind: KindInvalidValue,
			wantMsg:  "fixed_date cannot exceed 6 months",
		},
		{
			name:     "fixed date before start",
			mutate:   func(req *Request) { req.FixedDate = ptr.Ptr("2025-06-09T10:00:00Z") },
			wantKind: KindInvalidValue,
			wantMsg:  "fixed_date must be after start_datetime",
		},
		{
			name:     "fixed date equal to start",
			mutate:   func(req *Request) { req.FixedDate = ptr.Ptr("2025-06-10T10:00:00Z") },
			wantKind: KindInvalidValue,
			wantMsg:  "fixed_date must be after start_datetime",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := validateRequest(req, now)
			require.Error(t, err)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantKind, vErr.Kind)
			assert.Equal(t, tt.wantMsg, vErr.Message)
		})
	}
}

func TestValidateRequest_ChecksOrder(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	// Запрос ломает сразу несколько правил, но первой
	// должна сработать проверка обязательных полей
	req := validRequest()
	req.ProductTitle = ""
	req.Duration = "???"
	req.StartDatetime = "not a timestamp"

	_, err := validateRequest(req, now)
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, KindMissingField, vErr.Kind)
}
