package create_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bookline/shopify-booking-service/internal/domain"
	createBooking "github.com/bookline/shopify-booking-service/internal/usecase/create_booking"
)

// fakeUseCase возвращает заранее заданный результат
type fakeUseCase struct {
	resp *createBooking.Response
	err  error
}

func (uc *fakeUseCase) Execute(context.Context, *createBooking.Request) (*createBooking.Response, error) {
	return uc.resp, uc.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(body))
	rec := httptest.NewRecorder()

	NewHandler(uc, noopLogger{}).Handle(rec, req)
	return rec
}

const validBody = `{
	"shopify_product_title": "Kayak rental",
	"duration": "2 hours",
	"start_datetime": "2025-06-10T10:00:00Z",
	"shopify_product_id": 42
}`

func TestHandle_SingleBookingCreated(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		Bookings: []*domain.Booking{{
			ID:               7,
			ProductTitle:     "Kayak rental",
			Duration:         "2 hours",
			StartDatetime:    time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC),
			ShopifyProductID: 42,
			CreatedAt:        time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		}},
	}}

	rec := doRequest(t, uc, validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{
		"booking": {
			"id": 7,
			"shopify_product_title": "Kayak rental",
			"duration": "2 hours",
			"start_datetime": "2025-06-10T10:00:00Z",
			"shopify_product_id": 42,
			"is_activated": false,
			"created_at": "2025-06-01T12:00:00Z"
		}
	}`, rec.Body.String())
}

func TestHandle_SeriesRespondsWithList(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{IsSeries: true}}

	rec := doRequest(t, uc, validBody)

	// Пустая серия — валидный ответ со списком без элементов
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"bookings": []}`, rec.Body.String())
}

func TestHandle_MalformedJSON(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid request body"}`, rec.Body.String())
}

func TestHandle_ValidationErrorMessageGoesToClient(t *testing.T) {
	uc := &fakeUseCase{err: &createBooking.ValidationError{
		Kind:    createBooking.KindInvalidValue,
		Message: "start_datetime must be in the future",
	}}

	rec := doRequest(t, uc, validBody)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"start_datetime must be in the future"}`, rec.Body.String())
}

func TestHandle_SlotTakenIsConflict(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrSlotTaken}

	rec := doRequest(t, uc, validBody)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"booking already exists for this timeslot"}`, rec.Body.String())
}

func TestHandle_InternalErrorIsOpaque(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("connection refused")}

	rec := doRequest(t, uc, validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
