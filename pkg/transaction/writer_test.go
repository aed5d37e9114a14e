/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: writer_test.go
Description: Tests for the transaction file writer. Covers the line format,
truncation on rewrite, and target-code filtering.
*/

package transaction_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kleascm/akaylee-miner/pkg/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWrite tests the space-separated line format
func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.dat")

	encoded := [][]int{{1, 2, 3}, {2}, {4, 1}}
	n, err := transaction.Write(path, encoded)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1 2 3\n2\n4 1\n", string(data))
}

// TestWriteTruncates tests that every call fully rewrites the file
func TestWriteTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.dat")

	_, err := transaction.Write(path, [][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	n, err := transaction.Write(path, [][]int{{9}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "9\n", string(data))
}

// TestWriteFiltered tests that only transactions containing the target survive
func TestWriteFiltered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.dat")

	encoded := [][]int{{1, 2}, {3}, {2, 3}, {4}}
	n, err := transaction.WriteFiltered(path, encoded, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "3\n2 3\n", string(data))
}

// TestWriteFilteredNoMatch tests filtering that eliminates everything
func TestWriteFilteredNoMatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.dat")

	n, err := transaction.WriteFiltered(path, [][]int{{1}, {2}}, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

// TestWriteBadPath tests that I/O errors propagate
func TestWriteBadPath(t *testing.T) {
	_, err := transaction.Write(filepath.Join(t.TempDir(), "missing", "mine.dat"), [][]int{{1}})
	assert.Error(t, err)
}
