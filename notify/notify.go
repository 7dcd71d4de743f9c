// Package notify carries the order summary to the receipt function after
// checkout. The payload is the JSON contract shared with functions/receipt.
package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
)

// Payload is the order summary handed to the receipt/notification
// collaborator once an order is persisted.
type Payload struct {
	ID          uint            `json:"id"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
	ListOfItems []LineEntry     `json:"listOfItems"`
	UserEmail   string          `json:"userEmail"`
	PostalCode  string          `json:"postalCode,omitempty"`
	Timestamp   string          `json:"timestamp"`
}

type LineEntry struct {
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Name      string          `json:"name"`
	Picture   string          `json:"picture"`
	ProductID uint            `json:"productId"`
}

// HTTPNotifier POSTs the payload to the receipt function endpoint.
type HTTPNotifier struct {
	Endpoint string
	Client   *http.Client
}

func NewHTTPNotifier(endpoint string) *HTTPNotifier {
	return &HTTPNotifier{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *HTTPNotifier) Send(p Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return err
	}
	resp, err := n.Client.Post(n.Endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("receipt function returned status %d", resp.StatusCode)
	}
	return nil
}

// FileSpool writes payloads as JSON files under a local directory. Used when
// no receipt endpoint is configured, so order summaries are still recorded.
type FileSpool struct {
	Dir string
}

func (s *FileSpool) Send(p Payload) error {
	dir := filepath.Join(s.Dir, "orders")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	body, err := json.Marshal(p)
	if err != nil {
		return err
	}
	name := fmt.Sprintf("order_%d.json", time.Now().UnixMilli())
	return os.WriteFile(filepath.Join(dir, name), body, 0644)
}
