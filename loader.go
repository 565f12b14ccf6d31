package shelfstat

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// ErrNoTransactions is returned when a file opens fine but yields no usable rows.
var ErrNoTransactions = errors.New("no parseable transaction rows")

// OpeningStockReason marks rows injected from an opening-stock file.
const OpeningStockReason = "Opening Stock"

// timeFormats are tried in order. The first is the export format of the
// source system ("19 Jun 2024, 02:30 PM"); the rest are ISO fallbacks.
var timeFormats = []string{
	"02 Jan 2006, 03:04 PM",
	"2 Jan 2006, 03:04 PM",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime parses a transaction timestamp in any supported format.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date %q", s)
}

// Skip reasons counted by the loader.
const (
	SkipBadDate         = "bad date"
	SkipMissingSKU      = "missing sku"
	SkipMissingLocation = "missing location"
	SkipBadQuantity     = "bad quantity"
	SkipZeroQuantity    = "zero quantity"
	SkipShortRow        = "short row"
)

// LoadReport counts what the loader kept and what it dropped. Malformed
// rows are skipped, never fatal; only an empty result is.
type LoadReport struct {
	Loaded  int
	Skipped map[string]int
}

// SkippedTotal returns the number of rows dropped across all reasons.
func (r *LoadReport) SkippedTotal() int {
	total := 0
	for _, n := range r.Skipped {
		total += n
	}
	return total
}

func (r *LoadReport) skip(reason string) {
	if r.Skipped == nil {
		r.Skipped = make(map[string]int)
	}
	r.Skipped[reason]++
}

// column indexes resolved from the header row.
type columns struct {
	date, sku, location, qty, cost, reason int
}

// resolveColumns maps the expected column names to their positions.
// Matching ignores case and surrounding whitespace; "Qty" and "Qty." are
// both accepted, as are "Adj. reason" and "Adjustment reason".
func resolveColumns(header []string) (columns, error) {
	c := columns{date: -1, sku: -1, location: -1, qty: -1, cost: -1, reason: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date":
			c.date = i
		case "primary sku", "sku":
			c.sku = i
		case "location":
			c.location = i
		case "qty.", "qty", "quantity":
			c.qty = i
		case "cost":
			c.cost = i
		case "adj. reason", "adj reason", "adjustment reason", "reason":
			c.reason = i
		}
	}
	var missing []string
	if c.date < 0 {
		missing = append(missing, "Date")
	}
	if c.sku < 0 {
		missing = append(missing, "Primary SKU")
	}
	if c.location < 0 {
		missing = append(missing, "Location")
	}
	if c.qty < 0 {
		missing = append(missing, "Qty.")
	}
	if len(missing) > 0 {
		return c, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return c, nil
}

// LoadTransactions reads transaction rows from a CSV stream and returns a
// chronologically sorted ledger.
//
// The per-unit cost is resolved here, once: the Cost column is a
// transaction total, so an inbound layer's unit cost is |Cost| / Qty. A
// missing or unparseable cost resolves to zero. Outbound rows carry no
// meaningful cost; their value comes from the layers they consume.
func LoadTransactions(r io.Reader) (*Ledger, *LoadReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read header row: %w", err)
	}
	cols, err := resolveColumns(header)
	if err != nil {
		return nil, nil, err
	}

	report := &LoadReport{}
	ledger := &Ledger{}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// a row the csv reader itself rejects is a malformed row, not a fatal one
			report.skip(SkipShortRow)
			continue
		}
		tx, reason := parseRow(row, cols)
		if reason != "" {
			report.skip(reason)
			continue
		}
		ledger.Append(tx)
		report.Loaded++
	}

	if report.Loaded == 0 {
		return nil, report, ErrNoTransactions
	}
	ledger.stableSort()
	return ledger, report, nil
}

// parseRow turns one CSV record into a transaction, or names the skip reason.
func parseRow(row []string, cols columns) (Transaction, string) {
	field := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	if cols.qty >= len(row) || cols.date >= len(row) {
		return Transaction{}, SkipShortRow
	}

	when, err := ParseTime(field(cols.date))
	if err != nil {
		return Transaction{}, SkipBadDate
	}

	sku := field(cols.sku)
	if sku == "" {
		return Transaction{}, SkipMissingSKU
	}
	location := field(cols.location)
	if location == "" {
		return Transaction{}, SkipMissingLocation
	}

	qty, err := ParseQuantity(strings.ReplaceAll(field(cols.qty), ",", ""))
	if err != nil {
		return Transaction{}, SkipBadQuantity
	}
	if qty.IsZero() {
		return Transaction{}, SkipZeroQuantity
	}

	tx := Transaction{
		Time:     when,
		SKU:      sku,
		Location: location,
		Quantity: qty,
		Reason:   field(cols.reason),
	}

	if qty.IsPositive() {
		if cost, err := ParseMoney(strings.ReplaceAll(field(cols.cost), ",", "")); err == nil {
			tx.UnitCost = cost.Abs().Div(qty)
		}
	}
	return tx, ""
}

// LoadTransactionsFile opens and loads a transaction CSV from disk.
func LoadTransactionsFile(path string) (*Ledger, *LoadReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open transactions file %q: %w", path, err)
	}
	defer f.Close()

	ledger, report, err := LoadTransactions(f)
	if err != nil {
		return nil, report, fmt.Errorf("cannot load transactions from %q: %w", path, err)
	}
	return ledger, report, nil
}

// LoadOpeningStock reads an opening-stock CSV (same column layout, inbound
// rows only) and returns transactions tagged with the opening-stock reason.
// Outbound rows in an opening file are counted as bad quantity.
func LoadOpeningStock(r io.Reader) ([]Transaction, *LoadReport, error) {
	ledger, report, err := LoadTransactions(r)
	if err != nil {
		return nil, report, err
	}
	opening := make([]Transaction, 0, ledger.Len())
	for _, tx := range ledger.Transactions() {
		if tx.Outbound() {
			report.Loaded--
			report.skip(SkipBadQuantity)
			continue
		}
		if tx.Reason == "" {
			tx.Reason = OpeningStockReason
		}
		opening = append(opening, tx)
	}
	if len(opening) == 0 {
		return nil, report, ErrNoTransactions
	}
	return opening, report, nil
}

// LoadOpeningStockFile opens and loads an opening-stock CSV from disk.
func LoadOpeningStockFile(path string) ([]Transaction, *LoadReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open opening stock file %q: %w", path, err)
	}
	defer f.Close()

	opening, report, err := LoadOpeningStock(f)
	if err != nil {
		return nil, report, fmt.Errorf("cannot load opening stock from %q: %w", path, err)
	}
	return opening, report, nil
}
