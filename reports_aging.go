package shelfstat

import "time"

// BucketSpec is one age range. MaxDays is the inclusive upper bound in
// days on shelf; a negative MaxDays means open-ended. Boundaries are a
// configuration concern, not core logic.
type BucketSpec struct {
	Name    string
	MaxDays int
}

// DefaultBuckets returns the default age categories.
func DefaultBuckets() []BucketSpec {
	return []BucketSpec{
		{Name: "Fresh (0-7 days)", MaxDays: 7},
		{Name: "Medium (8-30 days)", MaxDays: 30},
		{Name: "Aged (31-90 days)", MaxDays: 90},
		{Name: "Very Aged (90+ days)", MaxDays: -1},
	}
}

// bucketFor picks the first bucket whose bound covers the age. The last
// bucket catches everything when it is open-ended.
func bucketFor(spec []BucketSpec, days int) string {
	for _, b := range spec {
		if b.MaxDays < 0 || days <= b.MaxDays {
			return b.Name
		}
	}
	if len(spec) > 0 {
		return spec[len(spec)-1].Name
	}
	return ""
}

// BucketRow is one open layer assigned to its age category.
type BucketRow struct {
	Category    string
	SKU         string
	Location    string
	Arrival     time.Time
	DaysOnShelf int
	Quantity    Quantity
	UnitCost    Money
	Value       Money
}

// BucketSummary aggregates one age category across all groups.
type BucketSummary struct {
	Category string
	Units    Quantity
	Value    Money
	AvgDays  float64 // quantity-weighted average days on shelf
}

// AgingBuckets assigns every open layer to an age category and sums each
// category. Summaries come back in spec order, including empty categories.
// An empty spec falls back to the defaults.
func (a *Analysis) AgingBuckets(spec []BucketSpec) ([]BucketRow, []BucketSummary) {
	if len(spec) == 0 {
		spec = DefaultBuckets()
	}
	detail := a.AgingDetail()

	rows := make([]BucketRow, 0, len(detail))
	sums := make(map[string]*BucketSummary, len(spec))
	weighted := make(map[string]float64, len(spec))
	summaries := make([]BucketSummary, 0, len(spec))
	for _, b := range spec {
		sums[b.Name] = &BucketSummary{Category: b.Name}
	}

	for _, d := range detail {
		category := bucketFor(spec, d.DaysOnShelf)
		rows = append(rows, BucketRow{
			Category:    category,
			SKU:         d.SKU,
			Location:    d.Location,
			Arrival:     d.Arrival,
			DaysOnShelf: d.DaysOnShelf,
			Quantity:    d.Quantity,
			UnitCost:    d.UnitCost,
			Value:       d.Value,
		})
		sum := sums[category]
		sum.Units = sum.Units.Add(d.Quantity)
		sum.Value = sum.Value.Add(d.Value)
		weighted[category] += float64(d.DaysOnShelf) * d.Quantity.InexactFloat64()
	}

	for _, b := range spec {
		sum := sums[b.Name]
		if units := sum.Units.InexactFloat64(); units > 0 {
			sum.AvgDays = weighted[b.Name] / units
		}
		summaries = append(summaries, *sum)
	}
	return rows, summaries
}
