package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/asaidimu/go-weft/core"
	"github.com/asaidimu/go-weft/core/directive"
	"github.com/asaidimu/go-weft/report"
	"github.com/asaidimu/go-weft/sqlite"
)

const (
	dbFileName = "catalog.db"

	// One card per book. Every {...} span is a directive: variable references
	// with filter chains, a conditional with an else branch, and a nested
	// reference inside the chosen branch.
	cardTemplate = `Title:  {$title:title}
Author: {$author:comma_front}
Price:  ${$price:dollars}  (sold {$sold_ratio:percent} of print run)
Status: {?in_print in print, [$copies] copies left!!out of print}
Contact: {$contact:hmail}`
)

func main() {
	// Start fresh so the demo is repeatable.
	if err := os.Remove(dbFileName); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing database file %s: %v", dbFileName, err)
	}

	db, err := sql.Open("sqlite3", dbFileName)
	if err != nil {
		log.Fatalf("Failed to open database connection: %v", err)
	}
	defer func() {
		if cErr := db.Close(); cErr != nil {
			log.Printf("Error closing database connection: %v", cErr)
		}
	}()

	// --- Seed the catalog ---
	_, err = db.Exec(`CREATE TABLE books (
		title      TEXT,
		author     TEXT,
		price      REAL,
		sold_ratio REAL,
		in_print   INTEGER,
		copies     INTEGER,
		contact    TEXT
	)`)
	if err != nil {
		log.Fatalf("Failed to create books table: %v", err)
	}

	_, err = db.Exec(`INSERT INTO books VALUES
		('Left Hand of Darkness, The', 'Le Guin, Ursula', 8.99, 0.83, 1, 412, 'orders@example.com'),
		('Dispossessed, The', 'Le Guin, Ursula', 10.50, 0.19, 0, 0, 'orders@example.com')`)
	if err != nil {
		log.Fatalf("Failed to seed books table: %v", err)
	}
	fmt.Println("Seeded catalog database.")

	// --- Wire the templating core ---
	registry := directive.NewRegistry(nil)
	if err := directive.RegisterBuiltins(registry, nil); err != nil {
		log.Fatalf("Failed to register built-in functions: %v", err)
	}
	evaluator := directive.NewEvaluator(registry, nil)

	// Suppress the contact column for this run; the span still renders, as
	// empty text.
	visibility := core.Visibility{"contact": false}

	rpt, err := report.NewReport(cardTemplate, evaluator, visibility, nil)
	if err != nil {
		log.Fatalf("Failed to create report: %v", err)
	}

	rpt.Subscribe(report.RowSuccess, func(_ context.Context, ev report.ReportEvent) error {
		fmt.Printf("filled row %d of report %s\n", *ev.RowIndex, ev.ReportID)
		return nil
	})

	// --- Fetch rows and fill ---
	source := sqlite.NewRowSource(db, nil)
	rows, err := source.Rows(context.Background(), "SELECT * FROM books ORDER BY title")
	if err != nil {
		log.Fatalf("Failed to fetch rows: %v", err)
	}

	docs, err := rpt.Fill(rows)
	if err != nil {
		log.Fatalf("Failed to fill report: %v", err)
	}

	fmt.Println(strings.Repeat("-", 40))
	for _, doc := range docs {
		fmt.Println(doc)
		fmt.Println(strings.Repeat("-", 40))
	}
}
