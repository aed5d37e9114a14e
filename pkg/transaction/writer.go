/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: writer.go
Description: Transaction file writer for the Akaylee Miner. Serializes encoded
transactions to the line-oriented text format the mining engine consumes, one
transaction per line as space-separated decimal codes. The file is fully
rewritten on every call; there are no append semantics.
*/

package transaction

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
)

// Write writes every encoded transaction to path, truncating prior content.
// Returns the number of transactions written.
func Write(path string, encoded [][]int) (int, error) {
	return write(path, encoded, nil)
}

// WriteFiltered writes only the transactions whose code sequence contains
// targetCode, preserving original order. The written count will differ from
// the input count, so engine support statistics are relative to the
// filtered corpus.
func WriteFiltered(path string, encoded [][]int, targetCode int) (int, error) {
	return write(path, encoded, &targetCode)
}

func write(path string, encoded [][]int, targetCode *int) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create transaction file %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	written := 0
	for _, codes := range encoded {
		if targetCode != nil && !contains(codes, *targetCode) {
			continue
		}
		for i, code := range codes {
			if i > 0 {
				if err := w.WriteByte(' '); err != nil {
					return written, fmt.Errorf("failed to write transaction file %s: %w", path, err)
				}
			}
			if _, err := w.WriteString(strconv.Itoa(code)); err != nil {
				return written, fmt.Errorf("failed to write transaction file %s: %w", path, err)
			}
		}
		if err := w.WriteByte('\n'); err != nil {
			return written, fmt.Errorf("failed to write transaction file %s: %w", path, err)
		}
		written++
	}
	if err := w.Flush(); err != nil {
		return written, fmt.Errorf("failed to flush transaction file %s: %w", path, err)
	}
	return written, nil
}

// contains reports membership of code in the full sequence; order is
// irrelevant for filtering.
func contains(codes []int, code int) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
