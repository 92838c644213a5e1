package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"pos-catalog/internal/domain"
	"pos-catalog/internal/store"
)

// CSVImporter reads a catalog CSV and turns every row into a validated product.
type CSVImporter struct {
	reader *csv.Reader
	opts   store.Options
}

func NewCSVImporter(r io.Reader, opts store.Options) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	csvr.TrimLeadingSpace = true
	return &CSVImporter{
		reader: csvr,
		opts:   opts.WithDefaults(),
	}
}

// Run parses all rows. Row numbers in errors count the header as row 1.
func (i *CSVImporter) Run() ([]domain.Product, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["name"]; !ok {
		return nil, errors.New("read headers: name column required")
	}

	var (
		products []domain.Product
		seen     = map[string]int{}
		rowNum   = 1
	)
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++
		if err != nil {
			return products, fmt.Errorf("read row %d: %w", rowNum, err)
		}
		if blank(record) {
			continue
		}

		product, err := i.parseRow(record, index)
		if err != nil {
			return products, fmt.Errorf("row %d: %w", rowNum, err)
		}
		if prev, dup := seen[product.ID]; dup {
			return products, fmt.Errorf("row %d: duplicate id %q (first seen on row %d)", rowNum, product.ID, prev)
		}
		seen[product.ID] = rowNum
		products = append(products, product)
	}
	return products, nil
}

func (i *CSVImporter) parseRow(record []string, index map[string]int) (domain.Product, error) {
	fields := store.ProductFields{
		Name:        pick(record, index, "name"),
		Price:       pick(record, index, "price"),
		Stock:       pick(record, index, "stock"),
		Description: pick(record, index, "description"),
		Image:       pick(record, index, "image"),
		UnitType:    pick(record, index, "unittype"),
		Category:    pick(record, index, "category"),
	}
	product, err := fields.Validate(i.opts)
	if err != nil {
		return domain.Product{}, err
	}
	product.ID = pick(record, index, "id")
	if product.ID == "" {
		product.ID = i.opts.NewID()
	}
	return product, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
