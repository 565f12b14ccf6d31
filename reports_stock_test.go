package shelfstat

import "testing"

func TestAnalysis_StockSummary(t *testing.T) {
	ledger := NewLedger(
		inbound(day(0), "A", "Main", 10, 10),
		outbound(day(10), "A", "Main", 4),
		inbound(day(20), "A", "Main", 4, 15),
		inbound(day(5), "B", "Annex", 3, 7),
		outbound(day(6), "B", "Annex", 3), // B@Annex fully consumed
	)
	a := Analyze(ledger, day(40))

	rows := a.StockSummary()

	// B@Annex has nothing on the shelf and must not appear.
	if len(rows) != 1 {
		t.Fatalf("StockSummary() = %d rows, want 1", len(rows))
	}

	row := rows[0]
	if row.SKU != "A" || row.Location != "Main" {
		t.Fatalf("StockSummary() group = %s@%s, want A@Main", row.SKU, row.Location)
	}
	if !row.Quantity.Equal(Q(10)) {
		t.Errorf("quantity = %s, want 10", row.Quantity)
	}
	// 6 units left at 10 plus 4 units at 15.
	if !row.TotalValue.Equal(M(120)) {
		t.Errorf("total value = %s, want 120", row.TotalValue)
	}
	if !row.AvgUnitCost.Equal(M(12)) {
		t.Errorf("avg unit cost = %s, want 12", row.AvgUnitCost)
	}
	if !row.Oldest.Equal(day(0)) || !row.Newest.Equal(day(20)) {
		t.Errorf("arrivals = %v .. %v, want %v .. %v", row.Oldest, row.Newest, day(0), day(20))
	}
	if row.DaysOnShelfOldest != 40 {
		t.Errorf("days on shelf of oldest = %d, want 40", row.DaysOnShelfOldest)
	}
}

func TestAnalysis_AgingDetail(t *testing.T) {
	ledger := NewLedger(
		inbound(day(20), "A", "Main", 4, 15),
		inbound(day(0), "A", "Main", 10, 10),
		outbound(day(10), "A", "Main", 4),
		inbound(day(5), "B", "Annex", 3, 7),
	)
	a := Analyze(ledger, day(40))

	rows := a.AgingDetail()

	if len(rows) != 3 {
		t.Fatalf("AgingDetail() = %d rows, want 3", len(rows))
	}

	// Group order, oldest first within a group.
	if rows[0].SKU != "A" || !rows[0].Arrival.Equal(day(0)) {
		t.Errorf("row 0 = %s arrived %v, want A arrived %v", rows[0].SKU, rows[0].Arrival, day(0))
	}
	if rows[1].SKU != "A" || !rows[1].Arrival.Equal(day(20)) {
		t.Errorf("row 1 = %s arrived %v, want A arrived %v", rows[1].SKU, rows[1].Arrival, day(20))
	}
	if rows[2].SKU != "B" {
		t.Errorf("row 2 sku = %s, want B", rows[2].SKU)
	}

	first := rows[0]
	if !first.Quantity.Equal(Q(6)) {
		t.Errorf("partially consumed layer remaining = %s, want 6", first.Quantity)
	}
	if first.DaysOnShelf != 40 {
		t.Errorf("days on shelf = %d, want 40", first.DaysOnShelf)
	}
	if !first.Value.Equal(M(60)) {
		t.Errorf("value = %s, want 60", first.Value)
	}
}
