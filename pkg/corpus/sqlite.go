/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: sqlite.go
Description: SQLite transaction source for the Akaylee Miner. Loads a corpus from
a two-column table of (transaction id, item label) rows, grouping consecutive
rows by transaction id. Uses the pure-Go sqlite driver so no cgo is required.
*/

package corpus

import (
	"database/sql"
	"fmt"
	"regexp"

	_ "modernc.org/sqlite"
)

// identPattern restricts table and column names to plain identifiers, since
// they are interpolated into the query text.
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLiteSource describes where transactions live inside a SQLite database.
type SQLiteSource struct {
	Path      string // database file path
	Table     string // table holding (tid, item) rows
	TIDColumn string // transaction id column, default "tid"
	ItemColum string // item label column, default "item"
}

// LoadSQLite reads a corpus from the configured table, ordered by
// transaction id so grouping is stable. Rows sharing a transaction id form
// one transaction, in row order.
func LoadSQLite(src SQLiteSource) ([][]string, error) {
	if src.TIDColumn == "" {
		src.TIDColumn = "tid"
	}
	if src.ItemColum == "" {
		src.ItemColum = "item"
	}
	for _, ident := range []string{src.Table, src.TIDColumn, src.ItemColum} {
		if !identPattern.MatchString(ident) {
			return nil, fmt.Errorf("invalid sqlite identifier: %q", ident)
		}
	}

	db, err := sql.Open("sqlite", src.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite corpus: %w", err)
	}
	defer db.Close()

	query := fmt.Sprintf("SELECT %s, %s FROM %s ORDER BY %s, rowid",
		src.TIDColumn, src.ItemColum, src.Table, src.TIDColumn)
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sqlite corpus: %w", err)
	}
	defer rows.Close()

	var transactions [][]string
	var current []string
	var currentTID int64
	first := true

	for rows.Next() {
		var tid int64
		var item string
		if err := rows.Scan(&tid, &item); err != nil {
			return nil, fmt.Errorf("failed to scan sqlite corpus row: %w", err)
		}
		if first || tid != currentTID {
			if !first {
				transactions = append(transactions, current)
			}
			current = nil
			currentTID = tid
			first = false
		}
		current = append(current, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sqlite corpus: %w", err)
	}
	if !first {
		transactions = append(transactions, current)
	}
	return transactions, nil
}
