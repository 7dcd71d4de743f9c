// Package receipt is the PDF receipt function: it accepts the order summary
// the store posts after checkout, renders a receipt PDF and records a usage
// document per order.
package receipt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/Ssaiyajin/Bottle-Crate-Store/notify"
)

// Handler serves POST / with the notify.Payload contract. Dir is where the
// generated PDFs and usage records land.
type Handler struct {
	Dir string
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var order notify.Payload
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		log.Printf("❌ Failed to parse order JSON: %v", err)
		http.Error(w, "Invalid order payload", http.StatusBadRequest)
		return
	}
	if order.ID == 0 {
		http.Error(w, "Invalid order payload: missing id", http.StatusBadRequest)
		return
	}

	pdf, err := renderPDF(order)
	if err != nil {
		log.Printf("❌ PDF creation failed for order %d: %v", order.ID, err)
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	name := fmt.Sprintf("Order_Number_%d_Receipt.pdf", order.ID)
	if err := h.store(name, pdf); err != nil {
		log.Printf("❌ Failed to store PDF %s: %v", name, err)
		http.Error(w, "Failed to store PDF", http.StatusInternalServerError)
		return
	}
	if err := h.recordUsage(order); err != nil {
		// The receipt made it to disk; a lost usage record is not worth a 500.
		log.Printf("⚠️ Failed to write usage record for order %d: %v", order.ID, err)
	}

	log.Printf("✅ Order %d processed: PDF stored as %s", order.ID, name)
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "Order processed: PDF stored and usage saved")
}

func renderPDF(order notify.Payload) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Receipt for Order #%d", order.ID))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, "Customer: "+order.UserEmail)
	pdf.Ln(7)
	if order.PostalCode != "" {
		pdf.Cell(0, 7, "Delivery postal code: "+order.PostalCode)
		pdf.Ln(7)
	}
	pdf.Cell(0, 7, "Date: "+order.Timestamp)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(90, 8, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Quantity", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Price", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, item := range order.ListOfItems {
		pdf.CellFormat(90, 8, item.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, item.Price.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(120, 8, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, order.TotalPrice.StringFixed(2), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (h *Handler) store(name string, pdf []byte) error {
	dir := filepath.Join(h.Dir, "pdfs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, name), pdf, 0644)
}

// recordUsage keeps a per-order document with delivery postal code, order
// time and the ordered items, for later consumption analysis.
func (h *Handler) recordUsage(order notify.Payload) error {
	type usageItem struct {
		Name     string `json:"beverageName"`
		ID       uint   `json:"beverageId"`
		Quantity int    `json:"beverageQuantity"`
	}
	doc := struct {
		DeliveryPLZ string      `json:"Delivery_PLZ"`
		Timestamp   string      `json:"TimeStamp_Of_Order"`
		Items       []usageItem `json:"items"`
	}{
		DeliveryPLZ: order.PostalCode,
		Timestamp:   order.Timestamp,
	}
	for _, item := range order.ListOfItems {
		doc.Items = append(doc.Items, usageItem{
			Name:     item.Name,
			ID:       item.ProductID,
			Quantity: item.Quantity,
		})
	}

	dir := filepath.Join(h.Dir, "orders")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	name := fmt.Sprintf("order_%d.json", order.ID)
	return os.WriteFile(filepath.Join(dir, name), body, 0644)
}
