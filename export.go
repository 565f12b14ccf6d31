package shelfstat

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Report file names, written to the output directory.
const (
	AgingDetailFile    = "detailed_shelf_aging.csv"
	ShelfTimeFile      = "shelf_time_analysis.csv"
	StockSummaryFile   = "current_stock_summary.csv"
	AgingBucketsFile   = "aging_categories_summary.csv"
	TransactionLogFile = "transaction_summary.csv"
)

// Status values of the shelf-time report rows.
const (
	statusOK        = "ok"
	statusShortfall = "shortfall"
)

const csvTimeFormat = "2006-01-02 15:04"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(csvTimeFormat)
}

// WriteReports writes all report files into dir. Files are written
// independently: one failing does not stop the others. It returns the
// paths successfully written and the joined errors, if any.
func WriteReports(dir string, ledger *Ledger, a *Analysis, buckets []BucketSpec) (written []string, err error) {
	bucketRows, _ := a.AgingBuckets(buckets)

	writers := []struct {
		name  string
		write func(*csv.Writer) error
	}{
		{AgingDetailFile, func(w *csv.Writer) error { return writeAgingDetail(w, a) }},
		{ShelfTimeFile, func(w *csv.Writer) error { return writeShelfTime(w, a) }},
		{StockSummaryFile, func(w *csv.Writer) error { return writeStockSummary(w, a) }},
		{AgingBucketsFile, func(w *csv.Writer) error { return writeBucketRows(w, bucketRows) }},
		{TransactionLogFile, func(w *csv.Writer) error { return writeTransactionLog(w, ledger) }},
	}

	var errs []error
	for _, file := range writers {
		path := filepath.Join(dir, file.name)
		if werr := writeCSVFile(path, file.write); werr != nil {
			errs = append(errs, werr)
			continue
		}
		written = append(written, path)
	}
	return written, errors.Join(errs...)
}

func writeCSVFile(path string, write func(*csv.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create report %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := write(w); err != nil {
		return fmt.Errorf("cannot write report %q: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("cannot write report %q: %w", path, err)
	}
	return f.Close()
}

func writeAgingDetail(w *csv.Writer, a *Analysis) error {
	if err := w.Write([]string{"sku", "location", "arrival", "days_on_shelf", "quantity", "unit_cost", "value", "reason"}); err != nil {
		return err
	}
	for _, row := range a.AgingDetail() {
		record := []string{
			row.SKU,
			row.Location,
			formatTime(row.Arrival),
			strconv.Itoa(row.DaysOnShelf),
			row.Quantity.String(),
			row.UnitCost.String(),
			row.Value.String(),
			row.Reason,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// writeShelfTime writes the historical shelf-time detail. The status
// column makes the two exceptional states explicit: shortfall rows mark
// consumption of unknown origin, and groups without any consumption
// history get a single no-data row instead of being omitted.
func writeShelfTime(w *csv.Writer, a *Analysis) error {
	if err := w.Write([]string{"sku", "location", "arrival", "departure", "quantity", "unit_cost", "shelf_days", "status"}); err != nil {
		return err
	}
	for _, r := range a.Records {
		status := statusOK
		arrival, days := formatTime(r.Arrival), strconv.Itoa(r.ShelfDays())
		if !r.OriginKnown {
			status = statusShortfall
			arrival, days = "", ""
		}
		record := []string{
			r.SKU,
			r.Location,
			arrival,
			formatTime(r.Departure),
			r.Quantity.String(),
			r.UnitCost.String(),
			days,
			status,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	for _, s := range a.StatsByGroup() {
		if s.HasData {
			continue
		}
		if err := w.Write([]string{s.Group.SKU, s.Group.Location, "", "", "", "", "", NoData}); err != nil {
			return err
		}
	}
	return nil
}

func writeStockSummary(w *csv.Writer, a *Analysis) error {
	if err := w.Write([]string{"sku", "location", "quantity", "oldest_arrival", "newest_arrival", "days_on_shelf_oldest", "total_value", "avg_unit_cost"}); err != nil {
		return err
	}
	for _, row := range a.StockSummary() {
		record := []string{
			row.SKU,
			row.Location,
			row.Quantity.String(),
			formatTime(row.Oldest),
			formatTime(row.Newest),
			strconv.Itoa(row.DaysOnShelfOldest),
			row.TotalValue.String(),
			row.AvgUnitCost.String(),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func writeBucketRows(w *csv.Writer, rows []BucketRow) error {
	if err := w.Write([]string{"category", "sku", "location", "arrival", "days_on_shelf", "quantity", "unit_cost", "value"}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Category,
			row.SKU,
			row.Location,
			formatTime(row.Arrival),
			strconv.Itoa(row.DaysOnShelf),
			row.Quantity.String(),
			row.UnitCost.String(),
			row.Value.String(),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func writeTransactionLog(w *csv.Writer, ledger *Ledger) error {
	if err := w.Write([]string{"date", "sku", "location", "quantity", "unit_cost", "reason", "type"}); err != nil {
		return err
	}
	for _, tx := range ledger.Transactions() {
		kind := "Inbound"
		if tx.Outbound() {
			kind = "Outbound"
		}
		record := []string{
			formatTime(tx.Time),
			tx.SKU,
			tx.Location,
			tx.Quantity.String(),
			tx.UnitCost.String(),
			tx.Reason,
			kind,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}
