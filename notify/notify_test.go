package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayload() Payload {
	return Payload{
		ID:         7,
		TotalPrice: decimal.RequireFromString("239.39"),
		ListOfItems: []LineEntry{
			{Price: decimal.RequireFromString("129.05"), Quantity: 145, Name: "Pils", ProductID: 1},
			{Price: decimal.RequireFromString("110.34"), Quantity: 6, Name: "Crate", ProductID: 2},
		},
		UserEmail:  "alice@example.com",
		PostalCode: "80333",
		Timestamp:  "2025-06-01T12:00:00Z",
	}
}

func TestHTTPNotifierSendsPayload(t *testing.T) {
	var received Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := NewHTTPNotifier(srv.URL).Send(samplePayload())

	require.NoError(t, err)
	assert.Equal(t, uint(7), received.ID)
	assert.Len(t, received.ListOfItems, 2)
	assert.True(t, decimal.RequireFromString("239.39").Equal(received.TotalPrice))
	assert.Equal(t, "80333", received.PostalCode)
}

func TestHTTPNotifierNonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewHTTPNotifier(srv.URL).Send(samplePayload())

	assert.Error(t, err)
}

func TestHTTPNotifierUnreachableEndpointIsError(t *testing.T) {
	err := NewHTTPNotifier("http://127.0.0.1:1/").Send(samplePayload())
	assert.Error(t, err)
}

func TestFileSpoolWritesPayload(t *testing.T) {
	dir := t.TempDir()
	spool := &FileSpool{Dir: dir}

	require.NoError(t, spool.Send(samplePayload()))

	entries, err := os.ReadDir(filepath.Join(dir, "orders"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	body, err := os.ReadFile(filepath.Join(dir, "orders", entries[0].Name()))
	require.NoError(t, err)

	var p Payload
	require.NoError(t, json.Unmarshal(body, &p))
	assert.Equal(t, uint(7), p.ID)
	assert.Equal(t, "alice@example.com", p.UserEmail)
}
