package ownership

import (
	"strings"

	"keel/internal/kir"
)

// Constraint states what a use does to its value's lifetime.
type Constraint uint8

const (
	// NonLifetimeEnding uses observe the value; it stays live afterwards.
	NonLifetimeEnding Constraint = iota
	// LifetimeEnding uses consume the value; it must not be used again.
	LifetimeEnding
)

func (c Constraint) String() string {
	if c == LifetimeEnding {
		return "lifetime-ending"
	}
	return "non-lifetime-ending"
}

// Map is the oracle's answer for one operand: which ownership kinds the
// referenced value may legally hold at this use, and for each accepted
// kind whether the use ends the value's lifetime.
//
// A Map is one of three shapes: empty (no kind is acceptable, a hard
// verification error), all-live (every kind acceptable, nothing ends),
// or an explicit set of kind-to-constraint entries. Kind sets are
// bitmasks, so all-live is O(1) and a kind can never map to two
// constraints.
//
// OwnershipNone is the bottom of the lattice: any non-empty map accepts
// it, with NonLifetimeEnding unless an entry says otherwise.
type Map struct {
	anyKind bool
	kinds   uint8
	ending  uint8
}

func kindBit(k kir.Ownership) uint8 { return 1 << k }

// Incompatible returns the empty map: no ownership kind is acceptable.
func Incompatible() Map { return Map{} }

// AllLive returns the map accepting every kind without ending any
// lifetime, used for uses that only require liveness.
func AllLive() Map { return Map{anyKind: true} }

// CompatibleWith returns a map with the single entry kind:constraint.
func CompatibleWith(kind kir.Ownership, constraint Constraint) Map {
	var m Map
	return m.With(kind, constraint)
}

// With returns a copy of m extended with kind:constraint. Adding a kind
// that is already mapped to the other constraint is a table-construction
// bug and panics.
func (m Map) With(kind kir.Ownership, constraint Constraint) Map {
	bit := kindBit(kind)
	if m.kinds&bit != 0 {
		prev := m.ending&bit != 0
		if prev != (constraint == LifetimeEnding) {
			panic("ownership: conflicting constraints for " + kind.String())
		}
		return m
	}
	m.kinds |= bit
	if constraint == LifetimeEnding {
		m.ending |= bit
	}
	return m
}

// IsEmpty reports whether no kind is acceptable.
func (m Map) IsEmpty() bool { return !m.anyKind && m.kinds == 0 }

// IsAllLive reports whether the map is the all-live map.
func (m Map) IsAllLive() bool { return m.anyKind }

// Compatible reports whether a value of the given kind may appear at
// this use.
func (m Map) Compatible(kind kir.Ownership) bool {
	switch {
	case m.IsEmpty():
		return false
	case m.anyKind:
		return true
	case kind == kir.OwnershipNone:
		return true
	default:
		return m.kinds&kindBit(kind) != 0
	}
}

// ConstraintFor returns the lifetime constraint required of a value of
// the given kind. The second result is false when the kind is not
// compatible.
func (m Map) ConstraintFor(kind kir.Ownership) (Constraint, bool) {
	if !m.Compatible(kind) {
		return NonLifetimeEnding, false
	}
	bit := kindBit(kind)
	if m.kinds&bit == 0 {
		// All-live, or the implicit bottom entry for None.
		return NonLifetimeEnding, true
	}
	if m.ending&bit != 0 {
		return LifetimeEnding, true
	}
	return NonLifetimeEnding, true
}

func (m Map) String() string {
	if m.IsEmpty() {
		return "incompatible"
	}
	if m.anyKind {
		return "all-live"
	}
	var parts []string
	for k := kir.Ownership(0); k < kir.OwnershipCount; k++ {
		if m.kinds&kindBit(k) == 0 {
			continue
		}
		c, _ := m.ConstraintFor(k)
		parts = append(parts, k.String()+": "+c.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
