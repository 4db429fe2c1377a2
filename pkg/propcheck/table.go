package propcheck

import (
	"sort"
	"sync"
)

// Failure records one falsified invariant, the propcheck analogue of
// result.Rule — a discovered fact worth keeping instead of a found
// optimization.
type Failure struct {
	Invariant string
	Vector    Vector
	Detail    string
}

// Table collects falsified invariants from concurrent workers, grounded
// on result.Table's mutex-guarded append-only slice.
type Table struct {
	mu       sync.Mutex
	failures []Failure
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{}
}

// Add inserts a failure into the table.
func (t *Table) Add(f Failure) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failures = append(t.failures, f)
}

// Failures returns a copy of all recorded failures, sorted by invariant
// name so repeated offenders group together.
func (t *Table) Failures() []Failure {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Failure, len(t.failures))
	copy(out, t.failures)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Invariant < out[j].Invariant
	})
	return out
}

// Len returns the number of recorded failures.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.failures)
}
