package receipt

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ssaiyajin/Bottle-Crate-Store/notify"
)

func postOrder(t *testing.T, h *Handler, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRejectsNonPost(t *testing.T) {
	h := &Handler{Dir: t.TempDir()}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRejectsMalformedJSON(t *testing.T) {
	h := &Handler{Dir: t.TempDir()}
	rec := postOrder(t, h, []byte("{not json"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRejectsMissingOrderID(t *testing.T) {
	h := &Handler{Dir: t.TempDir()}
	body, _ := json.Marshal(notify.Payload{UserEmail: "a@b.c"})
	rec := postOrder(t, h, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGeneratesReceiptAndUsageRecord(t *testing.T) {
	dir := t.TempDir()
	h := &Handler{Dir: dir}

	payload := notify.Payload{
		ID:         42,
		TotalPrice: decimal.RequireFromString("239.39"),
		ListOfItems: []notify.LineEntry{
			{Price: decimal.RequireFromString("129.05"), Quantity: 145, Name: "Pils", ProductID: 1},
			{Price: decimal.RequireFromString("110.34"), Quantity: 6, Name: "Crate", ProductID: 2},
		},
		UserEmail:  "alice@example.com",
		PostalCode: "80333",
		Timestamp:  "2025-06-01T12:00:00Z",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	rec := postOrder(t, h, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	pdf, err := os.ReadFile(filepath.Join(dir, "pdfs", "Order_Number_42_Receipt.pdf"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"), "output is a PDF document")

	usage, err := os.ReadFile(filepath.Join(dir, "orders", "order_42.json"))
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(usage, &doc))
	assert.Equal(t, "80333", doc["Delivery_PLZ"])
	assert.Equal(t, "2025-06-01T12:00:00Z", doc["TimeStamp_Of_Order"])
	assert.Len(t, doc["items"], 2)
}
