// Command genfixtures writes the sample price and scheme datasets as JSON
// fixtures. It uses the actual fallback package so the files match what the
// service serves when the live upstream is down.
//
// Usage:
//
//	go run ./cmd/genfixtures -out data/fixtures
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/krishikendra/agri-data-service/internal/fallback"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "data/fixtures", "output directory for JSON fixtures")
	flag.Parse()

	if err := os.MkdirAll(*out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	prices := fallback.Prices()
	if err := writeJSON(filepath.Join(*out, "sample_prices.json"), prices); err != nil {
		return err
	}
	log.Printf("prices: %d records", len(prices))

	schemes := fallback.Schemes()
	if err := writeJSON(filepath.Join(*out, "schemes.json"), schemes); err != nil {
		return err
	}
	log.Printf("schemes: %d records", len(schemes))

	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
