package shelfstat

import "time"

// clock is the fixed base time of the test fixtures; day(n) is n days later.
var clock = time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)

func day(n int) time.Time { return clock.AddDate(0, 0, n) }

func inbound(at time.Time, sku, location string, qty int, unitCost float64) Transaction {
	return Transaction{Time: at, SKU: sku, Location: location, Quantity: Q(qty), UnitCost: M(unitCost)}
}

func outbound(at time.Time, sku, location string, qty int) Transaction {
	return Transaction{Time: at, SKU: sku, Location: location, Quantity: Q(-qty)}
}

// sameRecord compares records field by field. Quantity and Money wrap
// decimal.Decimal, which is not comparable with ==.
func sameRecord(a, b ShelfTimeRecord) bool {
	return a.SKU == b.SKU &&
		a.Location == b.Location &&
		a.Arrival.Equal(b.Arrival) &&
		a.Departure.Equal(b.Departure) &&
		a.Quantity.Equal(b.Quantity) &&
		a.UnitCost.Equal(b.UnitCost) &&
		a.ShelfTime == b.ShelfTime &&
		a.OriginKnown == b.OriginKnown &&
		a.InboundReason == b.InboundReason &&
		a.OutboundReason == b.OutboundReason
}

// totalQuantity sums the consumed quantity across records.
func totalQuantity(records []ShelfTimeRecord) Quantity {
	var total Quantity
	for _, r := range records {
		total = total.Add(r.Quantity)
	}
	return total
}

// openQuantity sums the remaining quantity across open layers.
func openQuantity(layers []CostLayer) Quantity {
	var total Quantity
	for _, l := range layers {
		total = total.Add(l.Remaining)
	}
	return total
}
