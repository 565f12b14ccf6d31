package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"
	"github.com/vsrin/shelfstat"
)

// ShelfTimeMarkdown renders historical shelf-time statistics by group,
// product and location, plus monthly consumption trends. Groups without
// history show an explicit no-data status instead of zeros.
func ShelfTimeMarkdown(a *shelfstat.Analysis, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Shelf-Time History")
	doc.PlainText(fmt.Sprintf("Analysis as of %s.", a.Reference.Format("2006-01-02 15:04")))

	doc.H2("By Product and Location")
	doc.Table(statsTable(a.StatsByGroup(), "Group", currency))

	doc.H2("By Product")
	doc.Table(statsTable(a.StatsByProduct(), "SKU", currency))

	doc.H2("By Location")
	doc.Table(statsTable(a.StatsByLocation(), "Location", currency))

	trends := a.MonthlyTrends()
	if len(trends) > 0 {
		doc.H2("Monthly Trends")
		rows := make([][]string, 0, len(trends))
		for _, t := range trends {
			rows = append(rows, []string{
				t.Month,
				strconv.Itoa(t.Events),
				t.Units.String(),
				days(t.MeanDays),
				Amount(t.TotalCost, currency),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Month", "Events", "Units", "Avg Shelf Time", "Consumed Value"},
			Rows:   rows,
		})
	}

	return doc.String()
}

func statsTable(stats []shelfstat.ShelfTimeStats, keyHeader, currency string) md.TableSet {
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		if !s.HasData {
			rows = append(rows, []string{s.Key, shelfstat.NoData, "", "", "", "", ""})
			continue
		}
		rows = append(rows, []string{
			s.Key,
			s.Units.String(),
			days(s.MeanDays),
			days(s.MedianDays),
			fmt.Sprintf("%d-%d d", s.MinDays, s.MaxDays),
			days(s.StdDays),
			Amount(s.AvgUnitCost, currency),
		})
	}
	return md.TableSet{
		Header: []string{keyHeader, "Units", "Mean", "Median", "Range", "Stddev", "Avg Unit Cost"},
		Rows:   rows,
	}
}
