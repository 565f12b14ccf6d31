package shelfstat

import (
	"sort"
	"time"
)

// Ledger holds the full, chronologically ordered stream of transactions
// for one analysis run.
type Ledger struct {
	transactions []Transaction
}

func NewLedger(transactions ...Transaction) *Ledger {
	l := &Ledger{transactions: transactions}
	l.stableSort()
	return l
}

// Append adds transactions to the ledger. Callers must re-sort (stableSort
// is called by NewLedger and Groups) before replaying.
func (l *Ledger) Append(transactions ...Transaction) {
	l.transactions = append(l.transactions, transactions...)
}

// stableSort orders transactions by time. The sort is stable so that rows
// sharing a timestamp keep their file order, which makes replays
// deterministic.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Time.Before(l.transactions[j].Time)
	})
}

// Transactions returns the ordered transactions.
func (l *Ledger) Transactions() []Transaction { return l.transactions }

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Group is the ordered transaction sequence of a single (SKU, location) pair.
type Group struct {
	Key          GroupKey
	Transactions []Transaction
}

// Groups partitions the ledger by (SKU, location), preserving chronological
// order within each group. Groups are returned in sorted key order so a
// re-run yields identical output.
func (l *Ledger) Groups() []Group {
	l.stableSort()

	byKey := make(map[GroupKey][]Transaction)
	var keys []GroupKey
	for _, tx := range l.transactions {
		k := tx.Key()
		if _, seen := byKey[k]; !seen {
			keys = append(keys, k)
		}
		byKey[k] = append(byKey[k], tx)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].SKU != keys[j].SKU {
			return keys[i].SKU < keys[j].SKU
		}
		return keys[i].Location < keys[j].Location
	})

	groups := make([]Group, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, Group{Key: k, Transactions: byKey[k]})
	}
	return groups
}

// Overview summarizes the raw transaction stream, before any FIFO matching.
type Overview struct {
	Transactions int
	Inbound      int
	Outbound     int
	InboundQty   Quantity
	OutboundQty  Quantity // magnitude of all outbound movements
	First        time.Time
	Last         time.Time
}

// Overview computes transaction counts and totals across the whole ledger.
func (l *Ledger) Overview() Overview {
	var o Overview
	o.Transactions = len(l.transactions)
	for i, tx := range l.transactions {
		if i == 0 || tx.Time.Before(o.First) {
			o.First = tx.Time
		}
		if tx.Time.After(o.Last) {
			o.Last = tx.Time
		}
		if tx.Inbound() {
			o.Inbound++
			o.InboundQty = o.InboundQty.Add(tx.Quantity)
		} else if tx.Outbound() {
			o.Outbound++
			o.OutboundQty = o.OutboundQty.Add(tx.Quantity.Neg())
		}
	}
	return o
}
