package shelfstat

import "time"

// GroupKey identifies an independent FIFO stream: one product at one location.
type GroupKey struct {
	SKU      string
	Location string
}

func (k GroupKey) String() string { return k.SKU + " @ " + k.Location }

// Transaction is a single inventory movement, immutable once loaded.
// A positive quantity is stock arriving, a negative quantity is stock
// leaving. UnitCost is resolved once by the loader (the file's Cost column
// is a transaction total); the matcher never re-derives it.
type Transaction struct {
	Time     time.Time
	SKU      string
	Location string
	Quantity Quantity
	UnitCost Money
	Reason   string
}

func (t Transaction) Key() GroupKey { return GroupKey{SKU: t.SKU, Location: t.Location} }

// Inbound reports whether the transaction adds stock.
func (t Transaction) Inbound() bool { return t.Quantity.IsPositive() }

// Outbound reports whether the transaction removes stock.
func (t Transaction) Outbound() bool { return t.Quantity.IsNegative() }
