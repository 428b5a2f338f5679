package ownership

import "keel/internal/kir"

type builtinRule struct {
	policy     policy
	kind       kir.Ownership
	constraint Constraint
}

func bNever() builtinRule { return builtinRule{policy: policyNever} }
func bAny() builtinRule   { return builtinRule{policy: policyAny} }
func bFixed(k kir.Ownership, c Constraint) builtinRule {
	return builtinRule{policy: policyFixed, kind: k, constraint: c}
}

// builtinRules assigns every builtin identifier a rule, mostly all-live:
// builtins operate on trivial machine values or only require liveness.
// The table is listed in full so that TestBuiltinRulesTotal catches a
// newly added builtin that nobody classified.
var builtinRules = [kir.BuiltinCount]builtinRule{
	kir.BuiltinErrorInMain:           bAny(),
	kir.BuiltinUnexpectedError:       bAny(),
	kir.BuiltinWillThrow:             bAny(),
	kir.BuiltinAssertConf:            bAny(),
	kir.BuiltinAssumeNonNegative:     bAny(),
	kir.BuiltinAssumeTrue:            bAny(),
	kir.BuiltinExpect:                bAny(),
	kir.BuiltinStaticReport:          bAny(),
	kir.BuiltinStaticAssert:          bAny(),
	kir.BuiltinCondFailMessage:       bAny(),
	kir.BuiltinCondUnreachable:       bAny(),
	kir.BuiltinUnreachable:           bAny(),
	kir.BuiltinOnFastPath:            bAny(),
	kir.BuiltinTSanInoutAccess:       bAny(),
	kir.BuiltinIntInstrprofIncrement: bAny(),

	kir.BuiltinAdd:              bAny(),
	kir.BuiltinGenericAdd:       bAny(),
	kir.BuiltinSub:              bAny(),
	kir.BuiltinGenericSub:       bAny(),
	kir.BuiltinMul:              bAny(),
	kir.BuiltinGenericMul:       bAny(),
	kir.BuiltinSDiv:             bAny(),
	kir.BuiltinGenericSDiv:      bAny(),
	kir.BuiltinUDiv:             bAny(),
	kir.BuiltinGenericUDiv:      bAny(),
	kir.BuiltinExactSDiv:        bAny(),
	kir.BuiltinGenericExactSDiv: bAny(),
	kir.BuiltinExactUDiv:        bAny(),
	kir.BuiltinGenericExactUDiv: bAny(),
	kir.BuiltinSRem:             bAny(),
	kir.BuiltinGenericSRem:      bAny(),
	kir.BuiltinURem:             bAny(),
	kir.BuiltinGenericURem:      bAny(),
	kir.BuiltinAnd:              bAny(),
	kir.BuiltinGenericAnd:       bAny(),
	kir.BuiltinOr:               bAny(),
	kir.BuiltinGenericOr:        bAny(),
	kir.BuiltinXor:              bAny(),
	kir.BuiltinGenericXor:       bAny(),
	kir.BuiltinShl:              bAny(),
	kir.BuiltinGenericShl:       bAny(),
	kir.BuiltinLShr:             bAny(),
	kir.BuiltinGenericLShr:      bAny(),
	kir.BuiltinAShr:             bAny(),
	kir.BuiltinGenericAShr:      bAny(),

	kir.BuiltinSAddOver: bAny(),
	kir.BuiltinUAddOver: bAny(),
	kir.BuiltinSSubOver: bAny(),
	kir.BuiltinUSubOver: bAny(),
	kir.BuiltinSMulOver: bAny(),
	kir.BuiltinUMulOver: bAny(),

	kir.BuiltinFAdd:        bAny(),
	kir.BuiltinGenericFAdd: bAny(),
	kir.BuiltinFSub:        bAny(),
	kir.BuiltinGenericFSub: bAny(),
	kir.BuiltinFMul:        bAny(),
	kir.BuiltinGenericFMul: bAny(),
	kir.BuiltinFDiv:        bAny(),
	kir.BuiltinGenericFDiv: bAny(),
	kir.BuiltinFRem:        bAny(),
	kir.BuiltinGenericFRem: bAny(),
	kir.BuiltinFNeg:        bAny(),

	kir.BuiltinICmpEQ:  bAny(),
	kir.BuiltinICmpNE:  bAny(),
	kir.BuiltinICmpSGE: bAny(),
	kir.BuiltinICmpSGT: bAny(),
	kir.BuiltinICmpSLE: bAny(),
	kir.BuiltinICmpSLT: bAny(),
	kir.BuiltinICmpUGE: bAny(),
	kir.BuiltinICmpUGT: bAny(),
	kir.BuiltinICmpULE: bAny(),
	kir.BuiltinICmpULT: bAny(),

	kir.BuiltinFCmpOEQ: bAny(),
	kir.BuiltinFCmpOGE: bAny(),
	kir.BuiltinFCmpOGT: bAny(),
	kir.BuiltinFCmpOLE: bAny(),
	kir.BuiltinFCmpOLT: bAny(),
	kir.BuiltinFCmpONE: bAny(),
	kir.BuiltinFCmpORD: bAny(),
	kir.BuiltinFCmpUEQ: bAny(),
	kir.BuiltinFCmpUGE: bAny(),
	kir.BuiltinFCmpUGT: bAny(),
	kir.BuiltinFCmpULE: bAny(),
	kir.BuiltinFCmpULT: bAny(),
	kir.BuiltinFCmpUNE: bAny(),
	kir.BuiltinFCmpUNO: bAny(),

	kir.BuiltinBitCast:             bAny(),
	kir.BuiltinTrunc:               bAny(),
	kir.BuiltinTruncOrBitCast:      bAny(),
	kir.BuiltinSExt:                bAny(),
	kir.BuiltinSExtOrBitCast:       bAny(),
	kir.BuiltinZExt:                bAny(),
	kir.BuiltinZExtOrBitCast:       bAny(),
	kir.BuiltinSToSCheckedTrunc:    bAny(),
	kir.BuiltinSToUCheckedTrunc:    bAny(),
	kir.BuiltinUToSCheckedTrunc:    bAny(),
	kir.BuiltinUToUCheckedTrunc:    bAny(),
	kir.BuiltinSIToFP:              bAny(),
	kir.BuiltinUIToFP:              bAny(),
	kir.BuiltinFPToSI:              bAny(),
	kir.BuiltinFPToUI:              bAny(),
	kir.BuiltinFPExt:               bAny(),
	kir.BuiltinFPTrunc:             bAny(),
	kir.BuiltinIntToFPWithOverflow: bAny(),
	kir.BuiltinIntToPtr:            bAny(),
	kir.BuiltinPtrToInt:            bAny(),

	kir.BuiltinExtractElement: bAny(),
	kir.BuiltinInsertElement:  bAny(),

	kir.BuiltinAtomicLoad:      bAny(),
	kir.BuiltinAtomicStore:     bAny(),
	kir.BuiltinAtomicRMW:       bAny(),
	kir.BuiltinCmpXChg:         bAny(),
	kir.BuiltinFence:           bAny(),
	kir.BuiltinOnce:            bAny(),
	kir.BuiltinOnceWithContext: bAny(),

	kir.BuiltinAllocRaw:                   bAny(),
	kir.BuiltinDeallocRaw:                 bAny(),
	kir.BuiltinCopyArray:                  bAny(),
	kir.BuiltinDestroyArray:               bAny(),
	kir.BuiltinTakeArrayNoAlias:           bAny(),
	kir.BuiltinTakeArrayFrontToBack:       bAny(),
	kir.BuiltinTakeArrayBackToFront:       bAny(),
	kir.BuiltinAssignCopyArrayNoAlias:     bAny(),
	kir.BuiltinAssignCopyArrayFrontToBack: bAny(),
	kir.BuiltinAssignCopyArrayBackToFront: bAny(),
	kir.BuiltinAssignTakeArray:            bAny(),
	kir.BuiltinZeroInitializer:            bAny(),

	kir.BuiltinAlignof:                  bAny(),
	kir.BuiltinSizeof:                   bAny(),
	kir.BuiltinStrideof:                 bAny(),
	kir.BuiltinIsPOD:                    bAny(),
	kir.BuiltinIsConcrete:               bAny(),
	kir.BuiltinIsBitwiseTakable:         bAny(),
	kir.BuiltinIsOptionalType:           bAny(),
	kir.BuiltinIsSameMetatype:           bAny(),
	kir.BuiltinCanBeForeignClass:        bAny(),
	kir.BuiltinGetForeignTypeEncoding:   bAny(),
	kir.BuiltinTypePtrAuthDiscriminator: bAny(),

	kir.BuiltinStringObjectOr:           bAny(),
	kir.BuiltinGlobalStringTablePointer: bAny(),
	kir.BuiltinForeignEntrypoint:        bAny(),

	// The pinned-buffer pair consumes its operand and returns it; the
	// matching end call only observes.
	kir.BuiltinCOWBufferForReading: bFixed(kir.OwnershipOwned, LifetimeEnding),
	kir.BuiltinUnsafeGuaranteed:    bFixed(kir.OwnershipOwned, LifetimeEnding),
	kir.BuiltinUnsafeGuaranteedEnd: bAny(),

	kir.BuiltinCancelAsyncTask:     bFixed(kir.OwnershipGuaranteed, NonLifetimeEnding),
	kir.BuiltinGetCurrentAsyncTask: bNever(),

	kir.BuiltinRetain:               bNever(),
	kir.BuiltinRelease:              bNever(),
	kir.BuiltinAutorelease:          bNever(),
	kir.BuiltinLoadRaw:              bNever(),
	kir.BuiltinLoadInvariant:        bNever(),
	kir.BuiltinTake:                 bNever(),
	kir.BuiltinDestroy:              bNever(),
	kir.BuiltinAssign:               bNever(),
	kir.BuiltinInit:                 bNever(),
	kir.BuiltinCastToNativeObject:   bNever(),
	kir.BuiltinCastFromNativeObject: bNever(),
}

// classifyBuiltinOperand dispatches on the builtin identifier. A builtin
// that is always rewritten away earlier, or an identifier outside the
// known set, is an internal error.
func classifyBuiltinOperand(inst *kir.Instruction) Map {
	b := inst.Builtin
	if b >= kir.BuiltinCount {
		fatalInst(inst, "builtin identifier %d out of range", uint16(b))
	}
	rule := builtinRules[b]
	switch rule.policy {
	case policyNever:
		fatalInst(inst, "builtin %s is rewritten away before ownership tracking", b)
	case policyAny:
		return AllLive()
	case policyFixed:
		return CompatibleWith(rule.kind, rule.constraint)
	}
	fatalInst(inst, "no ownership rule for builtin %s", b)
	panic("unreachable")
}
