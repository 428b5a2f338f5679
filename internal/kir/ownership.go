package kir

// Ownership classifies the discipline governing how a value may be used.
// It is an intrinsic property of each value, fixed at construction; the
// classifier in internal/ownership only checks use-site compatibility.
type Ownership uint8

const (
	// OwnershipNone marks trivial values. No ownership is tracked and any
	// use is legal; None is the bottom of the ownership lattice.
	OwnershipNone Ownership = iota
	// OwnershipOwned marks uniquely owned values. An owned value must be
	// consumed exactly once along every path.
	OwnershipOwned
	// OwnershipGuaranteed marks values borrowed for a bounded scope. A
	// guaranteed value may be observed but never consumed.
	OwnershipGuaranteed

	// OwnershipCount sizes tables indexed by Ownership.
	OwnershipCount
)

func (o Ownership) String() string {
	switch o {
	case OwnershipNone:
		return "none"
	case OwnershipOwned:
		return "owned"
	case OwnershipGuaranteed:
		return "guaranteed"
	}
	return "invalid"
}
