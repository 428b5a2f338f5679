package ownership

import "keel/internal/kir"

// mergedKind is a point in the ownership join lattice. None is the
// bottom and joins with anything; Owned and Guaranteed are incomparable,
// so joining them fails.
type mergedKind struct {
	kind kir.Ownership
	ok   bool
}

func mergeKinds(a, b mergedKind) mergedKind {
	switch {
	case !a.ok || !b.ok:
		return mergedKind{}
	case a.kind == kir.OwnershipNone:
		return b
	case b.kind == kir.OwnershipNone || a.kind == b.kind:
		return a
	default:
		return mergedKind{}
	}
}

// ForwardingConstraint returns the lifetime constraint a forwarding use
// places on an incoming value of the given kind: owned values are
// consumed and re-produced, guaranteed and trivial values are only
// observed.
func ForwardingConstraint(kind kir.Ownership) Constraint {
	if kind == kir.OwnershipOwned {
		return LifetimeEnding
	}
	return NonLifetimeEnding
}

// classifyForwarded computes the map shared by every operand of a
// forwarding instruction: the operand value kinds are folded through
// the join lattice, and the result kind dictates one constraint for all
// of them. A failed join yields the empty map for all operands.
func classifyForwarded(inst *kir.Instruction, ops []*kir.Operand) Map {
	merged := mergedKind{kind: kir.OwnershipNone, ok: true}
	for _, op := range ops {
		if inst.IsTypeDependent(op) {
			continue
		}
		merged = mergeKinds(merged, mergedKind{kind: op.Value.Ownership, ok: true})
	}
	if !merged.ok {
		return Incompatible()
	}
	if merged.kind == kir.OwnershipNone {
		return AllLive()
	}
	return CompatibleWith(merged.kind, ForwardingConstraint(merged.kind))
}
