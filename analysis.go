package shelfstat

import "time"

// Analysis is the outcome of one full run: every group's shelf-time
// records, the open layers that make up current stock, and the shortfalls
// met along the way. All reports derive from it.
type Analysis struct {
	Reference  time.Time // "now" for aging; injectable for reproducible runs
	Overview   Overview
	Groups     []GroupKey
	Records    []ShelfTimeRecord
	Open       []CostLayer
	Shortfalls []Shortfall
}

// Analyze replays every (SKU, location) group of the ledger through the
// FIFO matcher. Groups are independent; they are processed in sorted key
// order so two runs over the same input produce identical output.
func Analyze(ledger *Ledger, reference time.Time) *Analysis {
	a := &Analysis{
		Reference: reference,
		Overview:  ledger.Overview(),
	}
	for _, group := range ledger.Groups() {
		result := MatchFIFO(group)
		a.Groups = append(a.Groups, group.Key)
		a.Records = append(a.Records, result.Records...)
		a.Open = append(a.Open, result.Open...)
		a.Shortfalls = append(a.Shortfalls, result.Shortfalls...)
	}
	return a
}

// daysOnShelf counts whole days between an arrival and the reference time.
func (a *Analysis) daysOnShelf(arrival time.Time) int {
	return int(a.Reference.Sub(arrival).Hours() / 24)
}

// matchedRecords returns the records whose origin layer is known, i.e.
// excluding shortfall sentinels.
func (a *Analysis) matchedRecords() []ShelfTimeRecord {
	matched := make([]ShelfTimeRecord, 0, len(a.Records))
	for _, r := range a.Records {
		if r.OriginKnown {
			matched = append(matched, r)
		}
	}
	return matched
}
