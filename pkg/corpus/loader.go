/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: loader.go
Description: Transaction corpus loaders for the Akaylee Miner. Reads string-labeled
transactions from txt, csv, and json files so the CLI can feed file-based corpora
into the mining pipeline. Format is selected explicitly or inferred from the
file extension.
*/

package corpus

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Supported corpus file formats.
const (
	FormatTxt  = "txt"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// LoadFile reads a transaction corpus from path. An empty format infers the
// format from the file extension. Transactions keep their file order and
// item order; empty lines and empty records are skipped.
func LoadFile(path string, format string) ([][]string, error) {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer f.Close()

	return Load(f, format)
}

// Load reads a transaction corpus from r in the given format.
func Load(r io.Reader, format string) ([][]string, error) {
	switch format {
	case FormatTxt:
		return loadTxt(r)
	case FormatCSV:
		return loadCSV(r)
	case FormatJSON:
		return loadJSON(r)
	default:
		return nil, fmt.Errorf("unsupported corpus format: %s", format)
	}
}

// loadTxt parses one transaction per line, items whitespace-separated.
func loadTxt(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read txt corpus: %w", err)
	}

	var transactions [][]string
	for _, line := range strings.Split(string(data), "\n") {
		items := strings.Fields(line)
		if len(items) == 0 {
			continue
		}
		transactions = append(transactions, items)
	}
	return transactions, nil
}

// loadCSV parses one transaction per record. Trailing empty fields are
// dropped so ragged rows from spreadsheet exports load cleanly.
func loadCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv corpus: %w", err)
	}

	var transactions [][]string
	for _, rec := range records {
		var items []string
		for _, field := range rec {
			if field = strings.TrimSpace(field); field != "" {
				items = append(items, field)
			}
		}
		if len(items) == 0 {
			continue
		}
		transactions = append(transactions, items)
	}
	return transactions, nil
}

// loadJSON parses an array of string arrays.
func loadJSON(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read json corpus: %w", err)
	}

	var transactions [][]string
	if err := json.Unmarshal(data, &transactions); err != nil {
		return nil, fmt.Errorf("json corpus must be an array of string arrays: %w", err)
	}
	return transactions, nil
}
