// Package importer loads product catalogs from CSV exports.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"jewelstore/internal/domain"
)

type ProductWriter interface {
	Insert(ctx context.Context, product domain.Product) error
}

// CSVImporter reads one product per row. List-valued columns (images,
// gemstones, sizes, tags) are pipe-separated.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
	}
}

// Run parses CSV rows and inserts products. It stops at the first invalid
// row or store error, returning the count inserted so far.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	var imported int
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		p, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if p == nil {
			continue
		}
		if err := i.productRepo.Insert(ctx, *p); err != nil {
			return imported, fmt.Errorf("insert product %q: %w", p.Slug, err)
		}
		imported++
	}

	return imported, nil
}

func parseRow(record []string, index map[string]int) (*domain.Product, error) {
	slug := pick(record, index, "slug")
	if slug == "" {
		return nil, nil
	}

	name := pick(record, index, "name")
	category := strings.ToLower(pick(record, index, "category"))
	material := pick(record, index, "material")
	description := pick(record, index, "description")
	if name == "" || description == "" || material == "" {
		return nil, fmt.Errorf("invalid product row (missing required fields) for slug %q", slug)
	}
	if !domain.ValidCategory(category) {
		return nil, fmt.Errorf("invalid category %q for slug %q", category, slug)
	}

	price, err := strconv.ParseFloat(pick(record, index, "price"), 64)
	if err != nil || price < 0 {
		return nil, fmt.Errorf("invalid price for slug %q", slug)
	}

	currency := pick(record, index, "currency")
	if currency == "" {
		currency = "USD"
	}

	p := &domain.Product{
		Slug:             strings.ToLower(slug),
		Name:             name,
		Category:         category,
		Price:            price,
		OriginalPrice:    pickFloat(record, index, "original_price"),
		Currency:         currency,
		Images:           pickList(record, index, "images"),
		Description:      description,
		ShortDescription: pick(record, index, "short_description"),
		Material:         material,
		Weight:           pick(record, index, "weight"),
		Purity:           pick(record, index, "purity"),
		Gemstones:        pickList(record, index, "gemstones"),
		Sizes:            pickList(record, index, "sizes"),
		Rating:           pickFloat(record, index, "rating"),
		ReviewCount:      int(pickFloat(record, index, "review_count")),
		IsNew:            pickBool(record, index, "is_new"),
		IsBestseller:     pickBool(record, index, "is_bestseller"),
		IsFeatured:       pickBool(record, index, "is_featured"),
		InStock:          pickBool(record, index, "in_stock"),
		Tags:             pickList(record, index, "tags"),
		CreatedAt:        time.Now().UTC(),
	}
	return p, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
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

func pickFloat(record []string, index map[string]int, key string) float64 {
	v, _ := strconv.ParseFloat(pick(record, index, key), 64)
	return v
}

func pickBool(record []string, index map[string]int, key string) bool {
	v, _ := strconv.ParseBool(pick(record, index, key))
	return v
}

func pickList(record []string, index map[string]int, key string) []string {
	raw := pick(record, index, key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, "|")
	out := parts[:0]
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
