package sqlite

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE books (
		title TEXT,
		price REAL,
		copies INTEGER,
		notes TEXT
	)`)
	assert.NoError(t, err)

	_, err = db.Exec(`INSERT INTO books (title, price, copies, notes) VALUES
		('Dune', 9.99, 3, NULL),
		('Hobbit, The', 12.5, 0, 'reorder')`)
	assert.NoError(t, err)
	return db
}

func TestRowsReturnsColumnKeyedRows(t *testing.T) {
	src := NewRowSource(openTestDB(t), nil)

	rows, err := src.Rows(context.Background(), "SELECT * FROM books ORDER BY title")
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	assert.Equal(t, "Dune", rows[0]["title"])
	assert.Equal(t, 9.99, rows[0]["price"])
	assert.Equal(t, int64(3), rows[0]["copies"])
	assert.Nil(t, rows[0]["notes"])

	assert.Equal(t, "Hobbit, The", rows[1]["title"])
	assert.Equal(t, "reorder", rows[1]["notes"])
}

func TestRowsWithQueryArguments(t *testing.T) {
	src := NewRowSource(openTestDB(t), nil)

	rows, err := src.Rows(context.Background(),
		"SELECT title FROM books WHERE copies > ?", 1)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Dune", rows[0]["title"])
}

func TestRowsQueryError(t *testing.T) {
	src := NewRowSource(openTestDB(t), nil)

	_, err := src.Rows(context.Background(), "SELECT * FROM missing_table")
	assert.Error(t, err)
}

func TestRowsEmptyResult(t *testing.T) {
	src := NewRowSource(openTestDB(t), nil)

	rows, err := src.Rows(context.Background(),
		"SELECT * FROM books WHERE title = ?", "nope")
	assert.NoError(t, err)
	assert.Empty(t, rows)
}
