package ownership

import "keel/internal/kir"

// applyParameter maps a passing convention's nominal kind and constraint
// to the operand map. Guaranteed parameters accept owned arguments too:
// the caller may lend an owned value for the duration of the call and
// keep responsibility for destroying it afterwards.
func applyParameter(kind kir.Ownership, constraint Constraint) Map {
	if kind != kir.OwnershipOwned {
		return CompatibleWith(kind, constraint).
			With(kir.OwnershipOwned, NonLifetimeEnding)
	}
	return CompatibleWith(kind, constraint)
}

// classifyCallee maps the callee-position convention of sig. A callee
// cannot be passed inout; such signatures are producer bugs.
func classifyCallee(inst *kir.Instruction, sig *kir.FnType) Map {
	switch sig.Callee {
	case kir.ConvIndirectIn, kir.ConvIndirectInConstant:
		return applyParameter(kir.OwnershipOwned, LifetimeEnding)
	case kir.ConvIndirectInGuaranteed:
		return applyParameter(kir.OwnershipGuaranteed, NonLifetimeEnding)
	case kir.ConvIndirectInout, kir.ConvIndirectInoutAliasable:
		fatalInst(inst, "callee passed %s", sig.Callee)
	case kir.ConvDirectUnowned:
		return AllLive()
	case kir.ConvDirectOwned:
		return applyParameter(kir.OwnershipOwned, LifetimeEnding)
	case kir.ConvDirectGuaranteed:
		// A non-escaping function value cannot outlive this call anyway,
		// so the call places no constraint of its own.
		if sig.NoEscape {
			return AllLive()
		}
		return applyParameter(kir.OwnershipGuaranteed, NonLifetimeEnding)
	}
	fatalInst(inst, "callee passed invalid convention %d", uint8(sig.Callee))
	panic("unreachable")
}

// argumentConvention maps an apply operand index to the formal parameter
// convention, accounting for the callee slot and, with lowered
// addresses, the indirect result slots.
func argumentConvention(inst *kir.Instruction, sig *kir.FnType, index int, mod *kir.Module) (kir.Convention, bool) {
	arg := index - 1
	if mod != nil && mod.LoweredAddresses {
		arg -= sig.IndirectResults()
		if arg < 0 {
			// Indirect result slot.
			return 0, false
		}
	}
	if arg < 0 || arg >= len(sig.Params) {
		fatalInst(inst, "operand %d has no parameter", index)
	}
	return sig.Params[arg], true
}

func classifyConvention(inst *kir.Instruction, conv kir.Convention, mod *kir.Module) Map {
	switch conv {
	case kir.ConvIndirectIn:
		// With lowered addresses the argument is an address and carries
		// no ownership of its own.
		if mod != nil && mod.LoweredAddresses {
			return AllLive()
		}
		return applyParameter(kir.OwnershipOwned, LifetimeEnding)
	case kir.ConvIndirectInConstant:
		return AllLive()
	case kir.ConvIndirectInGuaranteed:
		if mod != nil && mod.LoweredAddresses {
			return AllLive()
		}
		return applyParameter(kir.OwnershipGuaranteed, NonLifetimeEnding)
	case kir.ConvIndirectInout, kir.ConvIndirectInoutAliasable:
		return AllLive()
	case kir.ConvDirectUnowned:
		return AllLive()
	case kir.ConvDirectOwned:
		return applyParameter(kir.OwnershipOwned, LifetimeEnding)
	case kir.ConvDirectGuaranteed:
		return applyParameter(kir.OwnershipGuaranteed, NonLifetimeEnding)
	}
	fatalInst(inst, "invalid parameter convention %d", uint8(conv))
	panic("unreachable")
}

// classifyFullApply handles apply, begin_apply and try_apply operands.
func classifyFullApply(op *kir.Operand, inst *kir.Instruction, mod *kir.Module) Map {
	sig := inst.CalleeSig()
	if sig == nil {
		fatalInst(inst, "callee is not function-typed")
	}
	if op.Index == 0 {
		return classifyCallee(inst, sig)
	}
	// Phantom uses pinning opened archetypes accept nothing; the checker
	// skips them entirely.
	if inst.IsTypeDependent(op) {
		return Incompatible()
	}
	// Address and trivial arguments never carry ownership, whatever their
	// formal convention says.
	if op.Value.Trivial() {
		return AllLive()
	}
	conv, isArg := argumentConvention(inst, sig, op.Index, mod)
	if !isArg {
		return AllLive()
	}
	return classifyConvention(inst, conv, mod)
}

// classifyYield handles the operands of a coroutine's yield point, which
// follow the yield conventions of the enclosing function's signature.
// Inout yields take addresses; seeing one on a non-trivial operand is a
// producer bug.
func classifyYield(op *kir.Operand, inst *kir.Instruction) Map {
	f := inst.Func()
	if f == nil || f.Sig == nil {
		fatalInst(inst, "yield outside a function with a signature")
	}
	if op.Index >= len(f.Sig.Yields) {
		fatalInst(inst, "yield operand %d has no yield convention", op.Index)
	}
	if op.Value.Trivial() {
		return AllLive()
	}
	switch conv := f.Sig.Yields[op.Index]; conv {
	case kir.ConvIndirectIn, kir.ConvDirectOwned:
		return applyParameter(kir.OwnershipOwned, LifetimeEnding)
	case kir.ConvIndirectInConstant, kir.ConvDirectUnowned:
		return AllLive()
	case kir.ConvIndirectInGuaranteed, kir.ConvDirectGuaranteed:
		return applyParameter(kir.OwnershipGuaranteed, NonLifetimeEnding)
	default:
		fatalInst(inst, "non-trivial yield operand passed %s", conv)
		panic("unreachable")
	}
}

// classifyReturn handles the single operand of return. The returned
// value's kind must join across the direct result conventions; a mix of
// owned and unowned results rejects everything.
func classifyReturn(op *kir.Operand, inst *kir.Instruction) Map {
	if op.Value.Trivial() {
		return AllLive()
	}
	f := inst.Func()
	if f == nil || f.Sig == nil {
		fatalInst(inst, "return outside a function with a signature")
	}
	merged := mergedKind{kind: kir.OwnershipNone, ok: true}
	direct := 0
	for _, r := range f.Sig.Results {
		if r == kir.ResultIndirect {
			continue
		}
		direct++
		merged = mergeKinds(merged, mergedKind{kind: r.Ownership(), ok: true})
	}
	if direct == 0 || !merged.ok {
		return Incompatible()
	}
	return CompatibleWith(merged.kind, ForwardingConstraint(merged.kind))
}
