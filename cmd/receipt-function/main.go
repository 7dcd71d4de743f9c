package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/Ssaiyajin/Bottle-Crate-Store/functions/receipt"
)

func main() {
	_ = godotenv.Load()

	dir := os.Getenv("RECEIPT_DIR")
	if dir == "" {
		dir = "receipts"
	}

	// Prune receipts older than the retention window once a day.
	go pruneOldReceipts(filepath.Join(dir, "pdfs"), 30*24*time.Hour)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	log.Printf("🚀 Receipt function listening on port %s, writing to %s", port, dir)
	if err := http.ListenAndServe(":"+port, &receipt.Handler{Dir: dir}); err != nil {
		log.Fatalf("❌ Receipt function failed: %v", err)
	}
}

// pruneOldReceipts removes receipt PDFs older than the retention duration.
func pruneOldReceipts(dir string, retention time.Duration) {
	for {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if !os.IsNotExist(err) {
				log.Printf("❌ Failed to read receipt directory: %v", err)
			}
			time.Sleep(24 * time.Hour)
			continue
		}

		cutoff := time.Now().Add(-retention)
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if info.ModTime().Before(cutoff) {
				if err := os.Remove(path); err != nil {
					log.Printf("❌ Failed to remove old receipt %s: %v", path, err)
				} else {
					log.Printf("🗑️ Removed old receipt: %s", path)
				}
			}
		}

		time.Sleep(24 * time.Hour)
	}
}
