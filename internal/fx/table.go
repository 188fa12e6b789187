package fx

import (
	"sync/atomic"

	"github.com/shopspring/decimal"
)

// Table holds the live rate table. Reads return an immutable snapshot and a
// successful fetch replaces the whole table at once; there is no merging,
// the last writer wins.
type Table struct {
	current atomic.Value // RateTable
}

// NewTable returns a Table seeded with the static default rates.
func NewTable() *Table {
	t := &Table{}
	t.current.Store(DefaultRates())
	return t
}

// Snapshot returns the current rate table. Callers must not mutate it.
func (t *Table) Snapshot() RateTable {
	return t.current.Load().(RateTable)
}

// Replace swaps in a freshly fetched table wholesale, pinning USD to 1.
func (t *Table) Replace(rates RateTable) {
	next := make(RateTable, len(rates)+1)
	for code, rate := range rates {
		next[code] = rate
	}
	next["USD"] = decimal.NewFromInt(1)
	t.current.Store(next)
}
