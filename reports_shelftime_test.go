package shelfstat

import (
	"math"
	"testing"
)

func TestStatsFor_QuantityWeighted(t *testing.T) {
	ledger := NewLedger(
		inbound(day(0), "A", "Main", 10, 10),
		outbound(day(10), "A", "Main", 4),
		outbound(day(20), "A", "Main", 6),
	)
	a := Analyze(ledger, day(40))

	s := a.OverallStats()

	if !s.HasData {
		t.Fatal("OverallStats() has no data")
	}
	if s.Events != 2 || !s.Units.Equal(Q(10)) {
		t.Errorf("events/units = %d/%s, want 2/10", s.Events, s.Units)
	}
	// 4 units at 10 days and 6 units at 20 days: the units carry the weight.
	if s.MeanDays != 16 {
		t.Errorf("mean days = %v, want 16", s.MeanDays)
	}
	if s.MedianDays != 20 {
		t.Errorf("median days = %v, want 20", s.MedianDays)
	}
	if want := math.Sqrt(24); math.Abs(s.StdDays-want) > 1e-9 {
		t.Errorf("std days = %v, want %v", s.StdDays, want)
	}
	if s.MinDays != 10 || s.MaxDays != 20 {
		t.Errorf("min/max days = %d/%d, want 10/20", s.MinDays, s.MaxDays)
	}
	if !s.AvgUnitCost.Equal(M(10)) {
		t.Errorf("avg unit cost = %s, want 10", s.AvgUnitCost)
	}
}

func TestAnalysis_StatsByGroup_NoData(t *testing.T) {
	ledger := NewLedger(
		inbound(day(0), "SKU-1", "Main", 10, 10),
		outbound(day(10), "SKU-1", "Main", 4),
		inbound(day(0), "SKU-2", "Main", 5, 20), // never consumed
	)
	a := Analyze(ledger, day(40))

	stats := a.StatsByGroup()

	if len(stats) != 2 {
		t.Fatalf("StatsByGroup() = %d entries, want 2", len(stats))
	}
	if !stats[0].HasData {
		t.Errorf("%s should have history", stats[0].Key)
	}
	idle := stats[1]
	if idle.Key != "SKU-2 @ Main" {
		t.Fatalf("second entry key = %q, want %q", idle.Key, "SKU-2 @ Main")
	}
	if idle.Group != (GroupKey{SKU: "SKU-2", Location: "Main"}) {
		t.Errorf("second entry group = %v, want SKU-2/Main", idle.Group)
	}
	// Never sold is not the same as sold instantly.
	if idle.HasData {
		t.Error("a group without consumption history must report no data, not zeros")
	}
	if idle.Events != 0 || !idle.Units.IsZero() {
		t.Errorf("idle group events/units = %d/%s, want 0/0", idle.Events, idle.Units)
	}
}

func TestAnalysis_StatsByGroup_ShortfallOnly(t *testing.T) {
	ledger := NewLedger(
		outbound(day(5), "SKU-3", "Main", 2), // nothing to consume from
	)
	a := Analyze(ledger, day(40))

	stats := a.StatsByGroup()
	if len(stats) != 1 {
		t.Fatalf("StatsByGroup() = %d entries, want 1", len(stats))
	}

	s := stats[0]
	// Unmatched consumption is still consumption history: the group must
	// not report no data on top of its shortfall.
	if !s.HasData {
		t.Error("a group with only unmatched outbound must count as having data")
	}
	if s.Events != 0 || !s.Units.IsZero() {
		t.Errorf("statistics cover matched records only, got %d events / %s units", s.Events, s.Units)
	}
}

func TestAnalysis_StatsByProductAndLocation(t *testing.T) {
	ledger := NewLedger(
		inbound(day(0), "A", "Main", 4, 10),
		outbound(day(2), "A", "Main", 4),
		inbound(day(0), "A", "Annex", 2, 10),
		outbound(day(6), "A", "Annex", 2),
		inbound(day(0), "B", "Main", 1, 5),
		outbound(day(10), "B", "Main", 1),
	)
	a := Analyze(ledger, day(40))

	byProduct := a.StatsByProduct()
	if len(byProduct) != 2 {
		t.Fatalf("StatsByProduct() = %d entries, want 2", len(byProduct))
	}
	// A: 4 units at 2 days, 2 units at 6 days.
	if got := byProduct[0]; got.Key != "A" || got.MeanDays != 10.0/3 {
		t.Errorf("product A mean = %v, want %v", got.MeanDays, 10.0/3)
	}

	byLocation := a.StatsByLocation()
	if len(byLocation) != 2 {
		t.Fatalf("StatsByLocation() = %d entries, want 2", len(byLocation))
	}
	if byLocation[0].Key != "Annex" || byLocation[1].Key != "Main" {
		t.Errorf("location keys = %q, %q; want Annex, Main", byLocation[0].Key, byLocation[1].Key)
	}
}

func TestAnalysis_Movers(t *testing.T) {
	ledger := NewLedger(
		inbound(day(0), "slowpoke", "Main", 2, 1),
		outbound(day(30), "slowpoke", "Main", 2),
		inbound(day(0), "hotcake", "Main", 2, 1),
		outbound(day(1), "hotcake", "Main", 2),
		inbound(day(0), "idle", "Main", 2, 1), // no history, must not move
	)
	a := Analyze(ledger, day(40))

	fast, slow := a.Movers(1)

	if len(fast) != 1 || fast[0].Key != "hotcake" {
		t.Errorf("fast movers = %v, want [hotcake]", fast)
	}
	if len(slow) != 1 || slow[0].Key != "slowpoke" {
		t.Errorf("slow movers = %v, want [slowpoke]", slow)
	}

	// n larger than the product count is clamped.
	fast, slow = a.Movers(10)
	if len(fast) != 2 || len(slow) != 2 {
		t.Errorf("Movers(10) = %d/%d entries, want 2/2", len(fast), len(slow))
	}
}

func TestAnalysis_MonthlyTrends(t *testing.T) {
	ledger := NewLedger(
		inbound(day(0), "A", "Main", 10, 10),
		outbound(day(10), "A", "Main", 4), // June 2024
		outbound(day(40), "A", "Main", 6), // July 2024
	)
	a := Analyze(ledger, day(60))

	trends := a.MonthlyTrends()

	if len(trends) != 2 {
		t.Fatalf("MonthlyTrends() = %d months, want 2", len(trends))
	}
	june, july := trends[0], trends[1]
	if june.Month != "2024-06" || july.Month != "2024-07" {
		t.Fatalf("months = %q, %q; want 2024-06, 2024-07", june.Month, july.Month)
	}
	if !june.Units.Equal(Q(4)) || june.MeanDays != 10 {
		t.Errorf("june = %s units, mean %v days; want 4 units, mean 10", june.Units, june.MeanDays)
	}
	if !july.Units.Equal(Q(6)) || july.MeanDays != 40 {
		t.Errorf("july = %s units, mean %v days; want 6 units, mean 40", july.Units, july.MeanDays)
	}
	if !july.TotalCost.Equal(M(60)) {
		t.Errorf("july total cost = %s, want 60", july.TotalCost)
	}
}
