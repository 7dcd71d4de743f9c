// Package mailer is the email delivery function: given a storage event for a
// freshly written receipt PDF, it mails the receipt to the customer.
package mailer

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	gomail "gopkg.in/gomail.v2"
)

// Event mirrors the storage notification the receipt store emits when a new
// object lands: the bucket, the object name and the customer email in the
// object metadata.
type Event struct {
	Bucket   string            `json:"bucket"`
	Name     string            `json:"name"`
	Metadata map[string]string `json:"metadata"`
}

// Sender delivers a message with one attachment.
type Sender interface {
	Send(to, subject, body, attachmentPath string) error
}

// SMTPSender sends via plain SMTP using gomail.
type SMTPSender struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (s *SMTPSender) Send(to, subject, body, attachmentPath string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	m.Attach(attachmentPath)

	d := gomail.NewDialer(s.Host, s.Port, s.Username, s.Password)
	return d.DialAndSend(m)
}

// Handler serves POST / with a storage Event. Root is the directory the
// receipt function writes into; object names are resolved relative to it.
type Handler struct {
	Root   string
	Sender Sender
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var event Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "Invalid event payload", http.StatusBadRequest)
		return
	}
	if event.Bucket == "" || event.Name == "" {
		http.Error(w, "Invalid event: missing bucket or object name", http.StatusBadRequest)
		return
	}

	email := event.Metadata["email"]
	if email == "" {
		email = event.Metadata["Email"]
	}
	if email == "" {
		// Nothing to do without a recipient; the event itself is fine.
		log.Printf("⚠️ Event for %s/%s carries no email metadata, skipping", event.Bucket, event.Name)
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "No recipient, skipped")
		return
	}

	attachment := filepath.Join(h.Root, "pdfs", filepath.Base(event.Name))
	if _, err := os.Stat(attachment); err != nil {
		log.Printf("❌ Receipt %s not found: %v", attachment, err)
		http.Error(w, "Receipt not found", http.StatusNotFound)
		return
	}

	subject := "Your beverage store receipt"
	body := "Thank you for your order! Your receipt is attached."
	if err := h.Sender.Send(email, subject, body, attachment); err != nil {
		log.Printf("❌ Failed to send receipt mail to %s: %v", email, err)
		http.Error(w, "Failed to send mail", http.StatusInternalServerError)
		return
	}

	log.Printf("✅ Receipt %s mailed to %s", event.Name, email)
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "Receipt mailed")
}
