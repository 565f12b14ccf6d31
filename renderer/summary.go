package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"
	"github.com/vsrin/shelfstat"
)

// SummaryMarkdown renders the run-level analytics report: transaction
// overview, aging categories, overall shelf-time statistics, fast and
// slow movers, and any shortfalls met during matching.
func SummaryMarkdown(a *shelfstat.Analysis, buckets []shelfstat.BucketSpec, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Inventory Shelf-Time Analysis")
	doc.PlainText(fmt.Sprintf("Analysis as of %s.", a.Reference.Format("2006-01-02 15:04")))

	doc.H2("Transactions")
	o := a.Overview
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total transactions", strconv.Itoa(o.Transactions)},
			{"Inbound", fmt.Sprintf("%d (qty %s)", o.Inbound, o.InboundQty)},
			{"Outbound", fmt.Sprintf("%d (qty %s)", o.Outbound, o.OutboundQty)},
			{"Date range", fmt.Sprintf("%s to %s", o.First.Format("2006-01-02"), o.Last.Format("2006-01-02"))},
		},
	})

	doc.H2("Stock Aging Categories")
	_, sums := a.AgingBuckets(buckets)
	rows := make([][]string, 0, len(sums))
	for _, s := range sums {
		rows = append(rows, []string{s.Category, s.Units.String(), Amount(s.Value, currency), days(s.AvgDays)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Category", "Units", "Value", "Avg Days"},
		Rows:   rows,
	})

	overall := a.OverallStats()
	doc.H2("Shelf-Time Statistics")
	if !overall.HasData {
		doc.PlainText("No shelf-time history: no outbound movement could be matched against inbound stock.")
	} else {
		doc.Table(md.TableSet{
			Header: []string{"Metric", "Value"},
			Rows: [][]string{
				{"Units sold", overall.Units.String()},
				{"Average shelf time", days(overall.MeanDays)},
				{"Median shelf time", days(overall.MedianDays)},
				{"Min shelf time", fmt.Sprintf("%d d", overall.MinDays)},
				{"Max shelf time", fmt.Sprintf("%d d", overall.MaxDays)},
				{"Standard deviation", days(overall.StdDays)},
			},
		})

		fast, slow := a.Movers(5)
		doc.H3("Fast movers")
		doc.Table(moversTable(fast))
		doc.H3("Slow movers")
		doc.Table(moversTable(slow))
	}

	if len(a.Shortfalls) > 0 {
		doc.H2("Shortfalls")
		doc.PlainText("Outbound quantity exceeded known stock; unmatched units are flagged, not dropped.")
		rows := make([][]string, 0, len(a.Shortfalls))
		for _, s := range a.Shortfalls {
			rows = append(rows, []string{s.SKU, s.Location, s.Time.Format("2006-01-02 15:04"), s.Quantity.String()})
		}
		doc.Table(md.TableSet{
			Header: []string{"SKU", "Location", "Time", "Unmatched Qty"},
			Rows:   rows,
		})
	}

	return doc.String()
}

func moversTable(stats []shelfstat.ShelfTimeStats) md.TableSet {
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{s.Key, days(s.MeanDays), s.Units.String()})
	}
	return md.TableSet{
		Header: []string{"SKU", "Avg Shelf Time", "Units Sold"},
		Rows:   rows,
	}
}
