package shelfstat

import (
	"math"
	"sort"
)

// ShelfTimeStats describes the shelf-time distribution of one slice of
// history (a group, a product, a location, or everything). Statistics are
// weighted by consumed quantity, so a record for 10 units counts ten times
// more than a record for one.
//
// HasData distinguishes "never sold anything" from "sold instantly": a
// slice with no consumption history reports no data, never zeros.
type ShelfTimeStats struct {
	Key         string
	Group       GroupKey // the (SKU, location) pair, set by StatsByGroup
	HasData     bool
	Events      int      // consumption events (records)
	Units       Quantity // units consumed
	MeanDays    float64
	MedianDays  float64
	StdDays     float64
	MinDays     int
	MaxDays     int
	AvgUnitCost Money // weighted by consumed quantity
}

// NoData is the explicit status used wherever a slice has no history.
const NoData = "no data"

func statsFor(key string, records []ShelfTimeRecord) ShelfTimeStats {
	s := ShelfTimeStats{Key: key}
	if len(records) == 0 {
		return s
	}
	s.HasData = true
	s.Events = len(records)
	s.MinDays = records[0].ShelfDays()
	s.MaxDays = records[0].ShelfDays()

	var totalCost Money
	var sum, sumSq, totalWeight float64
	type weightedDay struct {
		days   int
		weight float64
	}
	days := make([]weightedDay, 0, len(records))

	for _, r := range records {
		d := r.ShelfDays()
		w := r.Quantity.InexactFloat64()
		s.Units = s.Units.Add(r.Quantity)
		totalCost = totalCost.Add(r.Cost())
		sum += float64(d) * w
		totalWeight += w
		days = append(days, weightedDay{days: d, weight: w})
		if d < s.MinDays {
			s.MinDays = d
		}
		if d > s.MaxDays {
			s.MaxDays = d
		}
	}

	if totalWeight > 0 {
		s.MeanDays = sum / totalWeight
		for _, wd := range days {
			diff := float64(wd.days) - s.MeanDays
			sumSq += diff * diff * wd.weight
		}
		s.StdDays = math.Sqrt(sumSq / totalWeight)

		// weighted median: the day at which half the consumed units had left
		sort.Slice(days, func(i, j int) bool { return days[i].days < days[j].days })
		half := totalWeight / 2
		cumulative := 0.0
		for _, wd := range days {
			cumulative += wd.weight
			if cumulative >= half {
				s.MedianDays = float64(wd.days)
				break
			}
		}
	}
	if !s.Units.IsZero() {
		s.AvgUnitCost = totalCost.Div(s.Units)
	}
	return s
}

// statsBy slices the matched records by an arbitrary key and returns
// sorted stats, one entry per key seen.
func (a *Analysis) statsBy(keyOf func(ShelfTimeRecord) string) []ShelfTimeStats {
	byKey := make(map[string][]ShelfTimeRecord)
	for _, r := range a.matchedRecords() {
		k := keyOf(r)
		byKey[k] = append(byKey[k], r)
	}
	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	stats := make([]ShelfTimeStats, 0, len(keys))
	for _, k := range keys {
		stats = append(stats, statsFor(k, byKey[k]))
	}
	return stats
}

// StatsByGroup returns shelf-time stats per (SKU, location) group. Every
// group of the run appears: groups without consumption history come back
// with HasData=false so reports can print an explicit no-data status.
// Statistics cover matched records only, but a group whose outbound could
// not be matched still has history: no-data is reserved for groups that
// never consumed anything at all.
func (a *Analysis) StatsByGroup() []ShelfTimeStats {
	matched := make(map[GroupKey][]ShelfTimeRecord)
	for _, r := range a.matchedRecords() {
		k := GroupKey{SKU: r.SKU, Location: r.Location}
		matched[k] = append(matched[k], r)
	}
	consumed := make(map[GroupKey]bool, len(a.Records))
	for _, r := range a.Records {
		consumed[GroupKey{SKU: r.SKU, Location: r.Location}] = true
	}

	stats := make([]ShelfTimeStats, 0, len(a.Groups))
	for _, g := range a.Groups {
		s := statsFor(g.String(), matched[g])
		s.Group = g
		s.HasData = s.HasData || consumed[g]
		stats = append(stats, s)
	}
	return stats
}

// StatsByProduct returns shelf-time stats per SKU across locations.
func (a *Analysis) StatsByProduct() []ShelfTimeStats {
	return a.statsBy(func(r ShelfTimeRecord) string { return r.SKU })
}

// StatsByLocation returns shelf-time stats per location across SKUs.
func (a *Analysis) StatsByLocation() []ShelfTimeStats {
	return a.statsBy(func(r ShelfTimeRecord) string { return r.Location })
}

// OverallStats returns shelf-time stats across the whole run.
func (a *Analysis) OverallStats() ShelfTimeStats {
	return statsFor("overall", a.matchedRecords())
}

// Movers returns the n fastest and n slowest products by mean shelf time.
// Products without history do not move at all and are excluded.
func (a *Analysis) Movers(n int) (fast, slow []ShelfTimeStats) {
	stats := a.StatsByProduct()
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].MeanDays < stats[j].MeanDays })
	if n > len(stats) {
		n = len(stats)
	}
	fast = stats[:n]
	slow = stats[len(stats)-n:]
	return fast, slow
}

// MonthlyTrend aggregates consumption by departure month.
type MonthlyTrend struct {
	Month     string // "2006-01"
	Events    int
	Units     Quantity
	MeanDays  float64
	TotalCost Money
}

// MonthlyTrends returns consumption trends by departure month, ascending.
func (a *Analysis) MonthlyTrends() []MonthlyTrend {
	byMonth := make(map[string][]ShelfTimeRecord)
	for _, r := range a.matchedRecords() {
		m := r.Departure.Format("2006-01")
		byMonth[m] = append(byMonth[m], r)
	}
	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	trends := make([]MonthlyTrend, 0, len(months))
	for _, m := range months {
		s := statsFor(m, byMonth[m])
		trends = append(trends, MonthlyTrend{
			Month:     m,
			Events:    s.Events,
			Units:     s.Units,
			MeanDays:  s.MeanDays,
			TotalCost: s.AvgUnitCost.Mul(s.Units),
		})
	}
	return trends
}
