package shelfstat

import (
	"sort"
	"time"
)

// StockSummaryRow aggregates one group's open layers: what is on hand,
// how old it is, and what it is worth.
type StockSummaryRow struct {
	SKU               string
	Location          string
	Quantity          Quantity
	Oldest            time.Time
	Newest            time.Time
	DaysOnShelfOldest int
	TotalValue        Money
	AvgUnitCost       Money // weighted by remaining quantity
}

// StockSummary summarizes current stock per group. Groups with nothing
// left on the shelf are omitted, as an empty shelf has no age.
func (a *Analysis) StockSummary() []StockSummaryRow {
	byKey := make(map[GroupKey]*StockSummaryRow)
	var keys []GroupKey

	for _, layer := range a.Open {
		k := GroupKey{SKU: layer.SKU, Location: layer.Location}
		row, ok := byKey[k]
		if !ok {
			row = &StockSummaryRow{SKU: k.SKU, Location: k.Location, Oldest: layer.Arrival, Newest: layer.Arrival}
			byKey[k] = row
			keys = append(keys, k)
		}
		row.Quantity = row.Quantity.Add(layer.Remaining)
		row.TotalValue = row.TotalValue.Add(layer.Value())
		if layer.Arrival.Before(row.Oldest) {
			row.Oldest = layer.Arrival
		}
		if layer.Arrival.After(row.Newest) {
			row.Newest = layer.Arrival
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].SKU != keys[j].SKU {
			return keys[i].SKU < keys[j].SKU
		}
		return keys[i].Location < keys[j].Location
	})

	rows := make([]StockSummaryRow, 0, len(keys))
	for _, k := range keys {
		row := byKey[k]
		row.DaysOnShelfOldest = a.daysOnShelf(row.Oldest)
		if !row.Quantity.IsZero() {
			row.AvgUnitCost = row.TotalValue.Div(row.Quantity)
		}
		rows = append(rows, *row)
	}
	return rows
}

// AgingDetailRow is one open cost layer with its age against the
// reference time.
type AgingDetailRow struct {
	SKU         string
	Location    string
	Arrival     time.Time
	DaysOnShelf int
	Quantity    Quantity
	UnitCost    Money
	Value       Money
	Reason      string
}

// AgingDetail lists every open layer, in group order then oldest first,
// with its days on shelf.
func (a *Analysis) AgingDetail() []AgingDetailRow {
	rows := make([]AgingDetailRow, 0, len(a.Open))
	for _, layer := range a.Open {
		rows = append(rows, AgingDetailRow{
			SKU:         layer.SKU,
			Location:    layer.Location,
			Arrival:     layer.Arrival,
			DaysOnShelf: a.daysOnShelf(layer.Arrival),
			Quantity:    layer.Remaining,
			UnitCost:    layer.UnitCost,
			Value:       layer.Value(),
			Reason:      layer.Reason,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].SKU != rows[j].SKU {
			return rows[i].SKU < rows[j].SKU
		}
		if rows[i].Location != rows[j].Location {
			return rows[i].Location < rows[j].Location
		}
		return rows[i].Arrival.Before(rows[j].Arrival)
	})
	return rows
}
