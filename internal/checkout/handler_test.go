package checkout

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postCheckout(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/create_checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.CreateCheckout(rec, req)
	return rec
}

func TestCreateCheckoutHandler_Success(t *testing.T) {
	mock := &MockProvider{URL: "https://checkout.example/sess_123"}
	h := NewHandler(newTestService(mock, 99))

	rec := postCheckout(t, h, `{
		"items": [{"name": "Mug", "unit_amount": 1500, "quantity": 2}],
		"success_url": "https://a",
		"cancel_url": "https://b"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "https://checkout.example/sess_123", body["checkout_url"])
	assert.Equal(t, float64(3099), body["amount_total_cents"])
}

func TestCreateCheckoutHandler_InvalidJSON(t *testing.T) {
	mock := &MockProvider{}
	h := NewHandler(newTestService(mock, 99))

	rec := postCheckout(t, h, `{"items": [`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, mock.Calls)
}

func TestCreateCheckoutHandler_MissingURLs(t *testing.T) {
	mock := &MockProvider{}
	h := NewHandler(newTestService(mock, 99))

	rec := postCheckout(t, h, `{"items": []}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, mock.Calls)
}

func TestCreateCheckoutHandler_InvalidItem(t *testing.T) {
	mock := &MockProvider{}
	h := NewHandler(newTestService(mock, 99))

	rec := postCheckout(t, h, `{
		"items": [{"name": "Mug", "unit_amount": 0, "quantity": 1}],
		"success_url": "https://a",
		"cancel_url": "https://b"
	}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "item 0")
	assert.NotContains(t, body, "checkout_url")
	assert.Equal(t, 0, mock.Calls)
}

func TestCreateCheckoutHandler_UpstreamFailure(t *testing.T) {
	mock := &MockProvider{Err: errors.New("stripe: No such currency: xxx")}
	h := NewHandler(newTestService(mock, 99))

	rec := postCheckout(t, h, `{
		"items": [{"name": "Mug", "unit_amount": 1500, "quantity": 1}],
		"success_url": "https://a",
		"cancel_url": "https://b"
	}`)

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "No such currency")
	assert.NotContains(t, body, "checkout_url")
}
