package diag

import (
	"sort"
)

// Bag accumulates diagnostics up to a fixed cap.
type Bag struct {
	items []Diagnostic
	max   int
}

func NewBag(max int) *Bag {
	if max <= 0 {
		max = 1
	}
	return &Bag{
		items: make([]Diagnostic, 0, max),
		max:   max,
	}
}

// Add appends a diagnostic, honoring the cap.
// Returns false if the diagnostic was not added.
func (b *Bag) Add(d Diagnostic) bool {
	if b == nil || len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Merge appends all diagnostics from other, honoring the cap.
func (b *Bag) Merge(other *Bag) {
	if b == nil || other == nil {
		return
	}
	for _, d := range other.items {
		if !b.Add(d) {
			return
		}
	}
}

func (b *Bag) Len() int {
	if b == nil {
		return 0
	}
	return len(b.items)
}

// HasErrors reports whether at least one diagnostic is an error.
func (b *Bag) HasErrors() bool {
	if b == nil {
		return false
	}
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// Items returns a read-only view of the diagnostics. Do not modify the
// returned slice.
func (b *Bag) Items() []Diagnostic {
	if b == nil {
		return nil
	}
	return b.items
}

// Sort orders diagnostics by locus for deterministic output.
func (b *Bag) Sort() {
	if b == nil {
		return
	}
	sort.SliceStable(b.items, func(i, j int) bool {
		a, z := b.items[i].Primary, b.items[j].Primary
		if a.Func != z.Func {
			return a.Func < z.Func
		}
		if a.Block != z.Block {
			return a.Block < z.Block
		}
		if a.Instr != z.Instr {
			return a.Instr < z.Instr
		}
		return a.Operand < z.Operand
	})
}
