package shelfstat

import (
	"testing"
)

func TestLedger_Groups(t *testing.T) {
	ledger := NewLedger(
		inbound(day(2), "B", "Main", 1, 1),
		inbound(day(0), "A", "Main", 2, 1),
		inbound(day(1), "A", "Annex", 3, 1),
		outbound(day(3), "A", "Main", 1),
	)

	groups := ledger.Groups()

	want := []GroupKey{
		{SKU: "A", Location: "Annex"},
		{SKU: "A", Location: "Main"},
		{SKU: "B", Location: "Main"},
	}
	if len(groups) != len(want) {
		t.Fatalf("Groups() = %d groups, want %d", len(groups), len(want))
	}
	for i, g := range groups {
		if g.Key != want[i] {
			t.Errorf("group %d key = %v, want %v", i, g.Key, want[i])
		}
	}

	aMain := groups[1]
	if len(aMain.Transactions) != 2 {
		t.Fatalf("A@Main has %d transactions, want 2", len(aMain.Transactions))
	}
	if !aMain.Transactions[0].Time.Before(aMain.Transactions[1].Time) {
		t.Error("group transactions are not in chronological order")
	}
}

func TestLedger_StableSortKeepsFileOrder(t *testing.T) {
	// Two rows share a timestamp; the one read first must stay first.
	first := Transaction{Time: day(1), SKU: "A", Location: "L", Quantity: Q(1), Reason: "first"}
	second := Transaction{Time: day(1), SKU: "A", Location: "L", Quantity: Q(1), Reason: "second"}

	ledger := NewLedger(inbound(day(5), "A", "L", 1, 1), first, second)

	txs := ledger.Transactions()
	if txs[0].Reason != "first" || txs[1].Reason != "second" {
		t.Errorf("same-timestamp rows reordered: got %q then %q", txs[0].Reason, txs[1].Reason)
	}
	if !txs[2].Time.Equal(day(5)) {
		t.Errorf("latest transaction sorted to position 2, got time %v", txs[2].Time)
	}
}

func TestLedger_Overview(t *testing.T) {
	ledger := NewLedger(
		inbound(day(0), "A", "L", 10, 1),
		inbound(day(2), "B", "L", 5, 1),
		outbound(day(4), "A", "L", 3),
	)

	o := ledger.Overview()

	if o.Transactions != 3 || o.Inbound != 2 || o.Outbound != 1 {
		t.Errorf("Overview() counts = %d/%d/%d, want 3/2/1", o.Transactions, o.Inbound, o.Outbound)
	}
	if !o.InboundQty.Equal(Q(15)) {
		t.Errorf("Overview() inbound qty = %s, want 15", o.InboundQty)
	}
	if !o.OutboundQty.Equal(Q(3)) {
		t.Errorf("Overview() outbound qty = %s, want 3", o.OutboundQty)
	}
	if !o.First.Equal(day(0)) || !o.Last.Equal(day(4)) {
		t.Errorf("Overview() span = %v .. %v, want %v .. %v", o.First, o.Last, day(0), day(4))
	}
}

func TestGroupKey_String(t *testing.T) {
	k := GroupKey{SKU: "SKU-42", Location: "Cold Storage"}
	if got := k.String(); got != "SKU-42 @ Cold Storage" {
		t.Errorf("String() = %q, want %q", got, "SKU-42 @ Cold Storage")
	}
}
