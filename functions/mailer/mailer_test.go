package mailer

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	to, subject, attachment string
	calls                   int
	err                     error
}

func (f *fakeSender) Send(to, subject, body, attachmentPath string) error {
	f.calls++
	f.to = to
	f.subject = subject
	f.attachment = attachmentPath
	return f.err
}

func postEvent(t *testing.T, h *Handler, event Event) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(event)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func writeReceipt(t *testing.T, root, name string) {
	t.Helper()
	dir := filepath.Join(root, "pdfs")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.4"), 0644))
}

func TestRejectsEventWithoutObject(t *testing.T) {
	h := &Handler{Root: t.TempDir(), Sender: &fakeSender{}}
	rec := postEvent(t, h, Event{Bucket: "receipts"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSkipsEventWithoutEmail(t *testing.T) {
	sender := &fakeSender{}
	h := &Handler{Root: t.TempDir(), Sender: sender}

	rec := postEvent(t, h, Event{Bucket: "receipts", Name: "Order_Number_1_Receipt.pdf"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, sender.calls)
}

func TestMailsReceipt(t *testing.T) {
	root := t.TempDir()
	writeReceipt(t, root, "Order_Number_7_Receipt.pdf")
	sender := &fakeSender{}
	h := &Handler{Root: root, Sender: sender}

	rec := postEvent(t, h, Event{
		Bucket:   "receipts",
		Name:     "Order_Number_7_Receipt.pdf",
		Metadata: map[string]string{"email": "alice@example.com"},
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 1, sender.calls)
	assert.Equal(t, "alice@example.com", sender.to)
	assert.Equal(t, filepath.Join(root, "pdfs", "Order_Number_7_Receipt.pdf"), sender.attachment)
}

func TestFallsBackToCapitalizedEmailKey(t *testing.T) {
	root := t.TempDir()
	writeReceipt(t, root, "r.pdf")
	sender := &fakeSender{}
	h := &Handler{Root: root, Sender: sender}

	rec := postEvent(t, h, Event{
		Bucket:   "receipts",
		Name:     "r.pdf",
		Metadata: map[string]string{"Email": "bob@example.com"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bob@example.com", sender.to)
}

func TestMissingReceiptIsNotFound(t *testing.T) {
	sender := &fakeSender{}
	h := &Handler{Root: t.TempDir(), Sender: sender}

	rec := postEvent(t, h, Event{
		Bucket:   "receipts",
		Name:     "nope.pdf",
		Metadata: map[string]string{"email": "alice@example.com"},
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, sender.calls)
}

func TestSendFailureIsServerError(t *testing.T) {
	root := t.TempDir()
	writeReceipt(t, root, "r.pdf")
	sender := &fakeSender{err: errors.New("smtp down")}
	h := &Handler{Root: root, Sender: sender}

	rec := postEvent(t, h, Event{
		Bucket:   "receipts",
		Name:     "r.pdf",
		Metadata: map[string]string{"email": "alice@example.com"},
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
