/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: loader_test.go
Description: Tests for the corpus loaders. Covers the txt, csv, and json file
formats, extension inference, and the sqlite source.
*/

package corpus_test

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/kleascm/akaylee-miner/pkg/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// TestLoadTxt tests whitespace-separated transactions with blank lines
func TestLoadTxt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte("apple banana\n\ncherry\n"), 0644))

	transactions, err := corpus.LoadFile(path, "")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"apple", "banana"}, {"cherry"}}, transactions)
}

// TestLoadCSV tests one transaction per record with ragged rows
func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.csv")
	require.NoError(t, os.WriteFile(path, []byte("apple,banana,cherry\napple,\ncherry,grape\n"), 0644))

	transactions, err := corpus.LoadFile(path, "")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"apple", "banana", "cherry"},
		{"apple"},
		{"cherry", "grape"},
	}, transactions)
}

// TestLoadJSON tests the array-of-arrays format
func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, os.WriteFile(path, []byte(`[["apple","banana"],["cherry"]]`), 0644))

	transactions, err := corpus.LoadFile(path, "")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"apple", "banana"}, {"cherry"}}, transactions)
}

// TestLoadUnsupportedFormat tests format validation
func TestLoadUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.xml")
	require.NoError(t, os.WriteFile(path, []byte("<x/>"), 0644))

	_, err := corpus.LoadFile(path, "")
	assert.Error(t, err)
}

// TestLoadJSONMalformed tests that non-array json is rejected
func TestLoadJSONMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not":"a corpus"}`), 0644))

	_, err := corpus.LoadFile(path, "")
	assert.Error(t, err)
}

// TestLoadSQLite tests grouping (tid, item) rows into transactions
func TestLoadSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE transactions (tid INTEGER, item TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO transactions (tid, item) VALUES
		(1, 'apple'), (1, 'banana'), (2, 'cherry'), (3, 'apple'), (3, 'grape')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	transactions, err := corpus.LoadSQLite(corpus.SQLiteSource{Path: path, Table: "transactions"})
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"apple", "banana"},
		{"cherry"},
		{"apple", "grape"},
	}, transactions)
}

// TestLoadSQLiteBadIdentifier tests identifier validation
func TestLoadSQLiteBadIdentifier(t *testing.T) {
	_, err := corpus.LoadSQLite(corpus.SQLiteSource{Path: "x.db", Table: "t; DROP TABLE t"})
	assert.Error(t, err)
}
