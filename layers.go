package shelfstat

import "time"

// CostLayer is a batch of units received at one time and consumed
// oldest-first. Remaining stays within [0, Original]; a layer leaves the
// queue the moment it is exhausted.
type CostLayer struct {
	SKU       string
	Location  string
	Arrival   time.Time
	Original  Quantity
	Remaining Quantity
	UnitCost  Money
	Reason    string
}

// Value returns the remaining units valued at the layer's unit cost.
func (c CostLayer) Value() Money { return c.UnitCost.Mul(c.Remaining) }

// layerQueue is the FIFO queue of open cost layers for one group,
// oldest arrival at the front.
type layerQueue struct {
	layers []CostLayer
}

func (q *layerQueue) push(layer CostLayer) {
	q.layers = append(q.layers, layer)
}

// consume takes `need` units off the front of the queue, emitting one
// shelf-time record per layer touched. If the queue runs dry the unmatched
// remainder is returned; the queue itself never goes negative.
func (q *layerQueue) consume(need Quantity, departure time.Time, reason string) (records []ShelfTimeRecord, short Quantity) {
	for need.IsPositive() && len(q.layers) > 0 {
		front := &q.layers[0]
		taken := minQuantity(need, front.Remaining)

		records = append(records, ShelfTimeRecord{
			SKU:            front.SKU,
			Location:       front.Location,
			Arrival:        front.Arrival,
			Departure:      departure,
			Quantity:       taken,
			UnitCost:       front.UnitCost,
			ShelfTime:      departure.Sub(front.Arrival),
			OriginKnown:    true,
			InboundReason:  front.Reason,
			OutboundReason: reason,
		})

		front.Remaining = front.Remaining.Sub(taken)
		need = need.Sub(taken)
		if front.Remaining.IsZero() {
			q.layers = q.layers[1:]
		}
	}
	return records, need
}

// open returns the layers still holding stock, oldest first.
func (q *layerQueue) open() []CostLayer {
	open := make([]CostLayer, len(q.layers))
	copy(open, q.layers)
	return open
}
