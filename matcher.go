package shelfstat

import "time"

// ShelfTimeRecord is one consumption event: some units that arrived
// together left together. An outbound transaction spanning several layers
// produces several records. Immutable after creation.
//
// When an outbound exceeds all known inbound stock, the unmatched
// remainder is recorded with OriginKnown=false, a zero Arrival and a zero
// UnitCost, so the shortfall is visible in the output instead of silently
// dropped.
type ShelfTimeRecord struct {
	SKU            string
	Location       string
	Arrival        time.Time
	Departure      time.Time
	Quantity       Quantity
	UnitCost       Money
	ShelfTime      time.Duration
	OriginKnown    bool
	InboundReason  string
	OutboundReason string
}

// ShelfDays returns the shelf time in whole days.
func (r ShelfTimeRecord) ShelfDays() int { return int(r.ShelfTime.Hours() / 24) }

// Cost returns the consumed units valued at the layer's unit cost.
func (r ShelfTimeRecord) Cost() Money { return r.UnitCost.Mul(r.Quantity) }

// Shortfall is one outbound event that could not be fully matched against
// known inbound layers.
type Shortfall struct {
	SKU      string
	Location string
	Time     time.Time
	Quantity Quantity
	Reason   string
}

// MatchResult is the outcome of replaying one group.
type MatchResult struct {
	Key        GroupKey
	Records    []ShelfTimeRecord
	Open       []CostLayer
	Shortfalls []Shortfall
}

// MatchFIFO replays one group's transactions, already sorted ascending by
// time, against a FIFO queue of cost layers. Inbound transactions append a
// layer; outbound transactions consume the oldest layers first, emitting
// one shelf-time record per layer crossed. The layers left open at the end
// are the group's current stock.
//
// Zero-quantity transactions never reach here (the loader skips them);
// adjustment rows with a signed quantity are matched like any other
// movement.
func MatchFIFO(group Group) MatchResult {
	result := MatchResult{Key: group.Key}
	var queue layerQueue

	for _, tx := range group.Transactions {
		if tx.Inbound() {
			queue.push(CostLayer{
				SKU:       tx.SKU,
				Location:  tx.Location,
				Arrival:   tx.Time,
				Original:  tx.Quantity,
				Remaining: tx.Quantity,
				UnitCost:  tx.UnitCost,
				Reason:    tx.Reason,
			})
			continue
		}

		need := tx.Quantity.Neg()
		records, short := queue.consume(need, tx.Time, tx.Reason)
		result.Records = append(result.Records, records...)

		if short.IsPositive() {
			// Flag and continue: sentinel record for the unknown origin,
			// plus a shortfall entry for the run log.
			result.Records = append(result.Records, ShelfTimeRecord{
				SKU:            tx.SKU,
				Location:       tx.Location,
				Departure:      tx.Time,
				Quantity:       short,
				OriginKnown:    false,
				OutboundReason: tx.Reason,
			})
			result.Shortfalls = append(result.Shortfalls, Shortfall{
				SKU:      tx.SKU,
				Location: tx.Location,
				Time:     tx.Time,
				Quantity: short,
				Reason:   tx.Reason,
			})
		}
	}

	result.Open = queue.open()
	return result
}
