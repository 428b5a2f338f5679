package ownership

import "keel/internal/kir"

// classifyBranch handles br operands, which feed the destination block's
// parameters positionally. The parameter's declared kind decides: owned
// parameters take the value with them, and a guaranteed parameter opens
// a new borrow scope, so the jump ends the one in this block.
func classifyBranch(op *kir.Operand, inst *kir.Instruction) Map {
	if inst.Dest == nil {
		fatalInst(inst, "br without a destination")
	}
	if op.Index >= len(inst.Dest.Params) {
		fatalInst(inst, "br operand %d has no destination parameter", op.Index)
	}
	k := inst.Dest.Params[op.Index].Ownership
	if k == kir.OwnershipGuaranteed {
		return CompatibleWith(k, LifetimeEnding)
	}
	return CompatibleWith(k, ForwardingConstraint(k))
}
