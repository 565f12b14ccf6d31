package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"
	"github.com/vsrin/shelfstat"
)

// AgingMarkdown renders current stock: per-group summary, age categories,
// and the per-layer detail behind them.
func AgingMarkdown(a *shelfstat.Analysis, buckets []shelfstat.BucketSpec, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Current Stock Aging")
	doc.PlainText(fmt.Sprintf("Analysis as of %s.", a.Reference.Format("2006-01-02 15:04")))

	summary := a.StockSummary()
	doc.H2("Stock Summary")
	if len(summary) == 0 {
		doc.PlainText("No stock on hand.")
		return doc.String()
	}
	rows := make([][]string, 0, len(summary))
	for _, s := range summary {
		rows = append(rows, []string{
			s.SKU,
			s.Location,
			s.Quantity.String(),
			s.Oldest.Format("2006-01-02"),
			strconv.Itoa(s.DaysOnShelfOldest),
			Amount(s.TotalValue, currency),
			Amount(s.AvgUnitCost, currency),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"SKU", "Location", "Qty", "Oldest", "Oldest Days", "Value", "Avg Unit Cost"},
		Rows:   rows,
	})

	doc.H2("Age Categories")
	_, sums := a.AgingBuckets(buckets)
	rows = rows[:0]
	for _, s := range sums {
		rows = append(rows, []string{s.Category, s.Units.String(), Amount(s.Value, currency), days(s.AvgDays)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Category", "Units", "Value", "Avg Days"},
		Rows:   rows,
	})

	doc.H2("Open Layers")
	detail := a.AgingDetail()
	rows = rows[:0]
	for _, d := range detail {
		rows = append(rows, []string{
			d.SKU,
			d.Location,
			d.Arrival.Format("2006-01-02 15:04"),
			strconv.Itoa(d.DaysOnShelf),
			d.Quantity.String(),
			Amount(d.UnitCost, currency),
			Amount(d.Value, currency),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"SKU", "Location", "Arrival", "Days", "Qty", "Unit Cost", "Value"},
		Rows:   rows,
	})

	return doc.String()
}
