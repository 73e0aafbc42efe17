// Package utils holds conversion helpers for callers whose report data lives
// in Go structs rather than maps.
package utils

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/asaidimu/go-weft/core"
)

// RowFromStruct converts a struct (or pointer to struct) into a core.Row,
// honoring `json` tags for field names. The conversion goes through a JSON
// round trip, so nested structs and slices arrive as their unmarshaled
// map/slice forms; the templating core renders such values with their
// default formatting.
//
// Example:
//
//	type Book struct {
//		Title string  `json:"title"`
//		Price float64 `json:"price"`
//	}
//	row, err := utils.RowFromStruct(Book{Title: "Dune", Price: 9.99})
//	// row == core.Row{"title": "Dune", "price": 9.99}
func RowFromStruct[T any](record T) (core.Row, error) {
	val := reflect.ValueOf(record)
	if !val.IsValid() {
		return nil, fmt.Errorf("input record cannot be nil")
	}
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil, fmt.Errorf("input record cannot be a nil pointer to a struct")
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("input record must be a struct or a pointer to a struct, got %s", val.Kind())
	}

	jsonBytes, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("RowFromStruct: failed to marshal input record to JSON: %w", err)
	}

	var row core.Row
	if err := json.Unmarshal(jsonBytes, &row); err != nil {
		return nil, fmt.Errorf("RowFromStruct: failed to unmarshal JSON to row: %w", err)
	}
	return row, nil
}
