package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/YeshwantRaoB/organizon-web/models"
)

var requiredCSVColumns = []string{"sku", "name", "category", "price"}

// ParseProductsCSV reads a header row followed by one product per row.
// Column order is free; list cells (images, tags) are "|"-separated.
// Empty optional cells fall back to the create defaults.
func ParseProductsCSV(r io.Reader) ([]models.ProductInput, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("CSV must include a header row")
	}
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredCSVColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("CSV is missing required column %q", col)
		}
	}

	var products []models.ProductInput
	for rowNum := 2; ; rowNum++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		cell := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		in := models.ProductInput{
			SKU:         cell("sku"),
			Name:        cell("name"),
			Category:    cell("category"),
			Subcategory: cell("subcategory"),
			Description: cell("description"),
			Unit:        cell("unit"),
			Images:      splitList(cell("images")),
			Tags:        splitList(cell("tags")),
		}

		if v := cell("price"); v != "" {
			price, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid price %q", rowNum, v)
			}
			in.Price = &price
		}
		if v := cell("mrp"); v != "" {
			mrp, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid mrp %q", rowNum, v)
			}
			in.MRP = &mrp
		}
		if v := cell("stock"); v != "" {
			stock, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid stock %q", rowNum, v)
			}
			in.Stock = &stock
		}

		products = append(products, in)
	}
	if products == nil {
		products = []models.ProductInput{}
	}
	return products, nil
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, "|") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
