package ownership

import "keel/internal/kir"

// policy selects how an instruction kind classifies its operands.
type policy uint8

const (
	// policyUnset marks a missing table entry; hitting one is a bug.
	policyUnset policy = iota
	// policyNever marks kinds that take no tracked value operands and
	// must not reach the oracle at all.
	policyNever
	// policyInterior projects into a borrowed aggregate; the operand
	// must be guaranteed and stays live.
	policyInterior
	// policyFixed accepts exactly one kind with a fixed constraint.
	policyFixed
	// policyAny accepts every kind and ends no lifetime.
	policyAny
	// policyForward merges the operand kinds through the join lattice
	// and applies the forwarding constraint of the result.
	policyForward
	// policyForwardFixed forwards but pins the accepted kind.
	policyForwardFixed
	// policyValueKind accepts exactly the operand value's own kind with
	// its forwarding constraint.
	policyValueKind
	// policyBespoke defers to per-kind logic keyed on operand position,
	// callee signature, or module flags.
	policyBespoke
)

type opRule struct {
	policy     policy
	kind       kir.Ownership
	constraint Constraint
}

func never() opRule     { return opRule{policy: policyNever} }
func interior() opRule  { return opRule{policy: policyInterior} }
func acceptAny() opRule { return opRule{policy: policyAny} }
func forward() opRule   { return opRule{policy: policyForward} }
func bespoke() opRule   { return opRule{policy: policyBespoke} }
func byValueKind() opRule {
	return opRule{policy: policyValueKind}
}
func fixed(k kir.Ownership, c Constraint) opRule {
	return opRule{policy: policyFixed, kind: k, constraint: c}
}
func forwardFixed(k kir.Ownership, c Constraint) opRule {
	return opRule{policy: policyForwardFixed, kind: k, constraint: c}
}

// opRules assigns every instruction kind its classification policy.
// Indexing by kind keeps the table total: the unset zero value is a
// loud failure, and TestOpRulesTotal pins exhaustiveness.
var opRules = [kir.OpKindCount]opRule{
	// Allocation and deallocation.
	kir.OpAllocStack:            never(),
	kir.OpAllocBox:              never(),
	kir.OpAllocRef:              acceptAny(),
	kir.OpAllocRefDynamic:       acceptAny(),
	kir.OpAllocGlobal:           never(),
	kir.OpAllocExistentialBox:   never(),
	kir.OpAllocValueBuffer:      fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpDeallocStack:          fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpDeallocBox:            fixed(kir.OwnershipOwned, LifetimeEnding),
	kir.OpDeallocExistentialBox: fixed(kir.OwnershipOwned, LifetimeEnding),
	kir.OpDeallocRef:            fixed(kir.OwnershipOwned, LifetimeEnding),
	kir.OpDeallocPartialRef:     bespoke(),
	kir.OpDeallocValueBuffer:    fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpProjectValueBuffer:    fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpProjectBox:            acceptAny(),
	kir.OpProjectExistentialBox: acceptAny(),

	// Literals and references to global entities.
	kir.OpIntegerLiteral:                   never(),
	kir.OpFloatLiteral:                     never(),
	kir.OpStringLiteral:                    never(),
	kir.OpFunctionRef:                      never(),
	kir.OpDynamicFunctionRef:               never(),
	kir.OpPreviousDynamicFunctionRef:       never(),
	kir.OpGlobalAddr:                       never(),
	kir.OpGlobalValue:                      never(),
	kir.OpBaseAddrForOffset:                never(),
	kir.OpMetatype:                         never(),
	kir.OpForeignProtocol:                  never(),
	kir.OpDifferentiabilityWitnessFunction: never(),
	kir.OpKeyPath:                          fixed(kir.OwnershipOwned, LifetimeEnding),

	// Calls.
	kir.OpApply:        bespoke(),
	kir.OpBeginApply:   bespoke(),
	kir.OpTryApply:     bespoke(),
	kir.OpPartialApply: bespoke(),
	kir.OpBuiltin:      bespoke(),
	kir.OpAbortApply:   fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpEndApply:     fixed(kir.OwnershipNone, NonLifetimeEnding),

	// Memory.
	kir.OpLoad:                   fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpLoadBorrow:             fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpStore:                  bespoke(),
	kir.OpStoreBorrow:            bespoke(),
	kir.OpAssign:                 bespoke(),
	kir.OpAssignByWrapper:        bespoke(),
	kir.OpMarkUninitialized:      forwardFixed(kir.OwnershipOwned, LifetimeEnding),
	kir.OpMarkFunctionEscape:     fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpDebugValue:             acceptAny(),
	kir.OpDebugValueAddr:         fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpCopyAddr:               fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpDestroyAddr:            fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpIndexAddr:              fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpTailAddr:               fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpIndexRawPointer:        fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpBindMemory:             fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpBeginAccess:            fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpEndAccess:              fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpBeginUnpairedAccess:    fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpEndUnpairedAccess:      fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpInitBlockStorageHeader: fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpProjectBlockStorage:    fixed(kir.OwnershipNone, NonLifetimeEnding),

	// Reference counting. The explicit retain/release family only
	// exists after ownership is lowered away.
	kir.OpStrongRetain:              never(),
	kir.OpStrongRelease:             never(),
	kir.OpRetainValue:               never(),
	kir.OpRetainValueAddr:           never(),
	kir.OpReleaseValue:              never(),
	kir.OpReleaseValueAddr:          never(),
	kir.OpAutoreleaseValue:          fixed(kir.OwnershipOwned, LifetimeEnding),
	kir.OpSetDeallocating:           acceptAny(),
	kir.OpStrongRetainUnowned:       never(),
	kir.OpUnownedRetain:             never(),
	kir.OpUnownedRelease:            fixed(kir.OwnershipOwned, LifetimeEnding),
	kir.OpUnmanagedRetainValue:      acceptAny(),
	kir.OpUnmanagedReleaseValue:     acceptAny(),
	kir.OpUnmanagedAutoreleaseValue: acceptAny(),
	kir.OpIsUnique:                  fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpBeginCOWMutation:          fixed(kir.OwnershipOwned, LifetimeEnding),
	kir.OpEndCOWMutation:            fixed(kir.OwnershipOwned, LifetimeEnding),
	kir.OpIsEscapingClosure:         acceptAny(),
	kir.OpCopyBlock:                 acceptAny(),
	kir.OpCopyBlockWithoutEscaping:  bespoke(),
	kir.OpFixLifetime:               acceptAny(),
	kir.OpEndLifetime:               fixed(kir.OwnershipOwned, LifetimeEnding),
	kir.OpMarkDependence:            bespoke(),

	// Ownership.
	kir.OpCopyValue:                    acceptAny(),
	kir.OpDestroyValue:                 fixed(kir.OwnershipOwned, LifetimeEnding),
	kir.OpBeginBorrow:                  acceptAny(),
	kir.OpEndBorrow:                    fixed(kir.OwnershipGuaranteed, LifetimeEnding),
	kir.OpStrongCopyUnownedValue:       acceptAny(),
	kir.OpStrongCopyUnmanagedValue:     acceptAny(),
	kir.OpUncheckedOwnershipConversion: acceptAny(),

	// Reference storage.
	kir.OpLoadWeak:       fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpStoreWeak:      acceptAny(),
	kir.OpLoadUnowned:    fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpStoreUnowned:   acceptAny(),
	kir.OpRefToUnowned:   acceptAny(),
	kir.OpUnownedToRef:   acceptAny(),
	kir.OpRefToUnmanaged: acceptAny(),
	kir.OpUnmanagedToRef: fixed(kir.OwnershipNone, NonLifetimeEnding),

	// Aggregates.
	kir.OpStruct:                    forward(),
	kir.OpStructExtract:             forwardFixed(kir.OwnershipGuaranteed, NonLifetimeEnding),
	kir.OpStructElementAddr:         fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpTuple:                     forward(),
	kir.OpTupleExtract:              forwardFixed(kir.OwnershipGuaranteed, NonLifetimeEnding),
	kir.OpTupleElementAddr:          fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpDestructureStruct:         byValueKind(),
	kir.OpDestructureTuple:          byValueKind(),
	kir.OpObject:                    forward(),
	kir.OpRefElementAddr:            interior(),
	kir.OpRefTailAddr:               interior(),
	kir.OpEnum:                      forward(),
	kir.OpUncheckedEnumData:         forward(),
	kir.OpInitEnumDataAddr:          fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpInjectEnumAddr:            fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpUncheckedTakeEnumDataAddr: fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpSelectEnum:                bespoke(),
	kir.OpSelectEnumAddr:            fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpSelectValue:               fixed(kir.OwnershipNone, NonLifetimeEnding),

	// Existentials.
	kir.OpInitExistentialAddr:     fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpInitExistentialValue:    fixed(kir.OwnershipOwned, LifetimeEnding),
	kir.OpInitExistentialMetatype: fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpInitExistentialRef:      forward(),
	kir.OpDeinitExistentialAddr:   fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpDeinitExistentialValue:  fixed(kir.OwnershipOwned, LifetimeEnding),
	kir.OpOpenExistentialAddr:     fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpOpenExistentialValue:    fixed(kir.OwnershipGuaranteed, NonLifetimeEnding),
	kir.OpOpenExistentialBox:      fixed(kir.OwnershipGuaranteed, NonLifetimeEnding),
	kir.OpOpenExistentialBoxValue: fixed(kir.OwnershipGuaranteed, NonLifetimeEnding),
	kir.OpOpenExistentialMetatype: fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpOpenExistentialRef:      forward(),
	kir.OpExistentialMetatype:     acceptAny(),
	kir.OpValueMetatype:           acceptAny(),

	// Method lookup.
	kir.OpClassMethod:         acceptAny(),
	kir.OpSuperMethod:         acceptAny(),
	kir.OpForeignMethod:       acceptAny(),
	kir.OpForeignSuperMethod:  acceptAny(),
	kir.OpWitnessMethod:       acceptAny(),
	kir.OpDynamicMethodBranch: acceptAny(),

	// Casts and conversions.
	kir.OpUpcast:                             forward(),
	kir.OpAddressToPointer:                   fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpPointerToAddress:                   fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpUncheckedRefCast:                   forward(),
	kir.OpUncheckedRefCastAddr:               fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpUncheckedAddrCast:                  fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpUncheckedTrivialBitCast:            acceptAny(),
	kir.OpUncheckedBitwiseCast:               acceptAny(),
	kir.OpUncheckedValueCast:                 forward(),
	kir.OpRefToRawPointer:                    acceptAny(),
	kir.OpRawPointerToRef:                    fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpRefToBridgeObject:                  forward(),
	kir.OpBridgeObjectToRef:                  forward(),
	kir.OpBridgeObjectToWord:                 acceptAny(),
	kir.OpClassifyBridgeObject:               acceptAny(),
	kir.OpValueToBridgeObject:                acceptAny(),
	kir.OpThinToThickFunction:                fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpThickToForeignMetatype:             fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpForeignToThickMetatype:             fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpThinFunctionToPointer:              fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpPointerToThinFunction:              fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpConvertFunction:                    forward(),
	kir.OpConvertEscapeToNoEscape:            acceptAny(),
	kir.OpForeignMetatypeToObject:            fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpForeignExistentialMetatypeToObject: fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpUnconditionalCheckedCast:           forward(),
	kir.OpUnconditionalCheckedCastValue:      fixed(kir.OwnershipOwned, LifetimeEnding),
	kir.OpUnconditionalCheckedCastAddr:       fixed(kir.OwnershipNone, NonLifetimeEnding),

	// Runtime checks.
	kir.OpCondFail: fixed(kir.OwnershipNone, NonLifetimeEnding),

	// Differentiable programming.
	kir.OpDifferentiableFunction:        forward(),
	kir.OpLinearFunction:                forward(),
	kir.OpDifferentiableFunctionExtract: forwardFixed(kir.OwnershipGuaranteed, NonLifetimeEnding),
	kir.OpLinearFunctionExtract:         forwardFixed(kir.OwnershipGuaranteed, NonLifetimeEnding),

	// Concurrency.
	kir.OpHopToExecutor:            fixed(kir.OwnershipGuaranteed, NonLifetimeEnding),
	kir.OpGetAsyncContinuation:     never(),
	kir.OpGetAsyncContinuationAddr: fixed(kir.OwnershipNone, NonLifetimeEnding),

	// Terminators.
	kir.OpUnreachable:            never(),
	kir.OpReturn:                 bespoke(),
	kir.OpThrow:                  fixed(kir.OwnershipOwned, LifetimeEnding),
	kir.OpUnwind:                 never(),
	kir.OpYield:                  bespoke(),
	kir.OpBranch:                 bespoke(),
	kir.OpCondBranch:             acceptAny(),
	kir.OpSwitchValue:            fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpSwitchEnum:             byValueKind(),
	kir.OpSwitchEnumAddr:         fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpCheckedCastBranch:      byValueKind(),
	kir.OpCheckedCastValueBranch: fixed(kir.OwnershipOwned, LifetimeEnding),
	kir.OpCheckedCastAddrBranch:  fixed(kir.OwnershipNone, NonLifetimeEnding),
	kir.OpAwaitAsyncContinuation: fixed(kir.OwnershipNone, NonLifetimeEnding),
}

// Classify answers which ownership kinds the operand's value may hold
// at this use and what each accepted kind requires of the lifetime.
// Operands of type-dependent positions and address or trivial values
// still get an answer; structurally invalid graphs panic.
func Classify(op *kir.Operand, mod *kir.Module) Map {
	if op == nil || op.Owner == nil || op.Value == nil {
		panic("ownership: classify of a detached operand")
	}
	inst := op.Owner
	if inst.Kind >= kir.OpKindCount {
		fatalInst(inst, "instruction kind %d out of range", uint16(inst.Kind))
	}
	rule := opRules[inst.Kind]
	switch rule.policy {
	case policyNever:
		fatalInst(inst, "%s takes no tracked value operands", inst.Kind)
	case policyInterior:
		if len(inst.Operands) == 0 {
			fatalInst(inst, "%s requires an operand", inst.Kind)
		}
		return CompatibleWith(kir.OwnershipGuaranteed, NonLifetimeEnding)
	case policyFixed:
		if len(inst.Operands) == 0 {
			fatalInst(inst, "%s requires an operand", inst.Kind)
		}
		return CompatibleWith(rule.kind, rule.constraint)
	case policyAny:
		return AllLive()
	case policyForward:
		if len(inst.Operands) == 0 {
			fatalInst(inst, "%s requires an operand", inst.Kind)
		}
		return classifyForwarded(inst, inst.Operands)
	case policyForwardFixed:
		if len(inst.Operands) == 0 {
			fatalInst(inst, "%s requires an operand", inst.Kind)
		}
		return CompatibleWith(rule.kind, rule.constraint)
	case policyValueKind:
		k := op.Value.Ownership
		return CompatibleWith(k, ForwardingConstraint(k))
	case policyBespoke:
		return classifyBespoke(op, inst, mod)
	}
	fatalInst(inst, "no ownership policy for %s", inst.Kind)
	panic("unreachable")
}

func classifyBespoke(op *kir.Operand, inst *kir.Instruction, mod *kir.Module) Map {
	switch inst.Kind {
	case kir.OpApply, kir.OpBeginApply, kir.OpTryApply:
		return classifyFullApply(op, inst, mod)

	case kir.OpPartialApply:
		// Stack closures borrow their captures instead of owning them.
		if inst.OnStack {
			return AllLive()
		}
		return CompatibleWith(kir.OwnershipOwned, LifetimeEnding)

	case kir.OpBuiltin:
		return classifyBuiltinOperand(inst)

	case kir.OpYield:
		return classifyYield(op, inst)

	case kir.OpReturn:
		return classifyReturn(op, inst)

	case kir.OpBranch:
		return classifyBranch(op, inst)

	case kir.OpStore, kir.OpAssign, kir.OpAssignByWrapper:
		if op.Index == 0 {
			return CompatibleWith(kir.OwnershipOwned, LifetimeEnding)
		}
		return AllLive()

	case kir.OpStoreBorrow:
		if op.Index == 0 {
			return CompatibleWith(kir.OwnershipGuaranteed, NonLifetimeEnding)
		}
		return AllLive()

	case kir.OpMarkDependence:
		// The base operand only needs liveness. Enforcing that consuming
		// uses of the value stay ordered after uses of the base is the
		// dataflow verifier's job, not this table's.
		if op.Index != 0 {
			return AllLive()
		}
		k := op.Value.Ownership
		if k == kir.OwnershipNone {
			return AllLive()
		}
		return CompatibleWith(k, ForwardingConstraint(k))

	case kir.OpSelectEnum:
		// The discriminated enum only needs liveness; the case values
		// forward into the result.
		if op.Index == 0 {
			return AllLive()
		}
		return classifyForwarded(inst, inst.Operands[1:])

	case kir.OpDeallocPartialRef:
		if op.Index == 0 {
			return CompatibleWith(kir.OwnershipOwned, LifetimeEnding)
		}
		return AllLive()

	case kir.OpCopyBlockWithoutEscaping:
		// The escape-sentinel closure is consumed; the block is copied.
		if op.Index == 1 {
			return CompatibleWith(kir.OwnershipOwned, LifetimeEnding)
		}
		return AllLive()
	}
	fatalInst(inst, "no bespoke ownership rule for %s", inst.Kind)
	panic("unreachable")
}
