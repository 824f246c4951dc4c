// Package store reads and writes basket data: two-column transaction CSV
// files, product catalogs, rule exports, and a bbolt-backed transaction
// store.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/lvbasket/itemset"
	"github.com/katalvlaran/lvbasket/preprocess"
)

// Column names of the transaction and product files.
const (
	ColTransactionID = "transaction_id"
	ColItems         = "items"
	ColProductName   = "product_name"
	ColCategory      = "category"
)

// ErrMissingColumn is returned when a required header column is absent.
var ErrMissingColumn = errors.New("store: missing column")

// header maps column names to their index in the header row.
type header map[string]int

func readHeader(r *csv.Reader, required ...string) (header, error) {
	row, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
		}
		return nil, fmt.Errorf("store: read header: %w", err)
	}
	h := make(header, len(row))
	for i, name := range row {
		h[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	for _, col := range required {
		if _, ok := h[col]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}

	return h, nil
}

func (h header) get(row []string, col string) string {
	i, ok := h[col]
	if !ok || i >= len(row) {
		return ""
	}

	return row[i]
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	return cr
}

// ReadRecords parses a transaction file with transaction_id and items
// columns. Items are comma-joined inside one cell; an empty cell yields an
// empty record. Labels are returned raw for preprocess.Clean.
func ReadRecords(r io.Reader) ([]preprocess.Record, error) {
	cr := newReader(r)
	h, err := readHeader(cr, ColTransactionID, ColItems)
	if err != nil {
		return nil, err
	}

	var out []preprocess.Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("store: line %d: %w", line, err)
		}
		out = append(out, preprocess.Record{
			ID:    h.get(row, ColTransactionID),
			Items: preprocess.SplitItems(h.get(row, ColItems)),
		})
	}

	return out, nil
}

// ReadTransactions parses an already cleaned transaction file. Labels are
// normalized and deduplicated, but no catalog check is made and empty
// baskets are kept.
func ReadTransactions(r io.Reader) ([]itemset.Transaction, error) {
	recs, err := ReadRecords(r)
	if err != nil {
		return nil, err
	}
	out := make([]itemset.Transaction, len(recs))
	for i, rec := range recs {
		out[i] = itemset.Transaction{ID: strings.TrimSpace(rec.ID), Items: itemset.FromStrings(rec.Items...)}
	}

	return out, nil
}

// WriteTransactions writes txs as transaction_id,items with the items
// comma-joined in ascending order.
func WriteTransactions(w io.Writer, txs []itemset.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{ColTransactionID, ColItems}); err != nil {
		return fmt.Errorf("store: write header: %w", err)
	}
	for _, tx := range txs {
		if err := cw.Write([]string{tx.ID, strings.Join(tx.Items.Items(), ",")}); err != nil {
			return fmt.Errorf("store: write %s: %w", tx.ID, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteRecords writes raw records as transaction_id,items. Labels are
// written as given.
func WriteRecords(w io.Writer, recs []preprocess.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{ColTransactionID, ColItems}); err != nil {
		return fmt.Errorf("store: write header: %w", err)
	}
	for _, rec := range recs {
		if err := cw.Write([]string{rec.ID, strings.Join(rec.Items, ",")}); err != nil {
			return fmt.Errorf("store: write %s: %w", rec.ID, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadCatalog parses a products file. Only product_name is required; a
// category column is used when present.
func ReadCatalog(r io.Reader) (*preprocess.Catalog, error) {
	cr := newReader(r)
	h, err := readHeader(cr, ColProductName)
	if err != nil {
		return nil, err
	}

	var products []preprocess.Product
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("store: line %d: %w", line, err)
		}
		name := h.get(row, ColProductName)
		if itemset.Normalize(name) == "" {
			continue
		}
		products = append(products, preprocess.Product{
			ID:       len(products) + 1,
			Name:     name,
			Category: h.get(row, ColCategory),
		})
	}

	return preprocess.NewCatalog(products...)
}

// LoadRecords opens path and reads raw records from it.
func LoadRecords(path string) ([]preprocess.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	defer f.Close()

	return ReadRecords(f)
}

// LoadTransactions opens path and reads cleaned transactions from it.
func LoadTransactions(path string) ([]itemset.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	defer f.Close()

	return ReadTransactions(f)
}

// LoadCatalog opens path and reads a product catalog from it.
func LoadCatalog(path string) (*preprocess.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	defer f.Close()

	return ReadCatalog(f)
}

// SaveRecords writes raw records to path, replacing any existing file.
func SaveRecords(path string, recs []preprocess.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if err := WriteRecords(f, recs); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// SaveTransactions writes txs to path, replacing any existing file.
func SaveTransactions(path string, txs []itemset.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if err := WriteTransactions(f, txs); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
