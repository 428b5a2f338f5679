package kir

// Builtin identifies a primitive operation invoked through a builtin
// instruction. The set is closed; the ownership classifier must stay in
// sync with it and treats an unrecognized identifier as an internal
// error.
type Builtin uint16

const (
	// Diagnostics and assumptions.
	BuiltinErrorInMain Builtin = iota
	BuiltinUnexpectedError
	BuiltinWillThrow
	BuiltinAssertConf
	BuiltinAssumeNonNegative
	BuiltinAssumeTrue
	BuiltinExpect
	BuiltinStaticReport
	BuiltinStaticAssert
	BuiltinCondFailMessage
	BuiltinCondUnreachable
	BuiltinUnreachable
	BuiltinOnFastPath
	BuiltinTSanInoutAccess
	BuiltinIntInstrprofIncrement

	// Integer arithmetic.
	BuiltinAdd
	BuiltinGenericAdd
	BuiltinSub
	BuiltinGenericSub
	BuiltinMul
	BuiltinGenericMul
	BuiltinSDiv
	BuiltinGenericSDiv
	BuiltinUDiv
	BuiltinGenericUDiv
	BuiltinExactSDiv
	BuiltinGenericExactSDiv
	BuiltinExactUDiv
	BuiltinGenericExactUDiv
	BuiltinSRem
	BuiltinGenericSRem
	BuiltinURem
	BuiltinGenericURem
	BuiltinAnd
	BuiltinGenericAnd
	BuiltinOr
	BuiltinGenericOr
	BuiltinXor
	BuiltinGenericXor
	BuiltinShl
	BuiltinGenericShl
	BuiltinLShr
	BuiltinGenericLShr
	BuiltinAShr
	BuiltinGenericAShr

	// Overflow-reporting arithmetic.
	BuiltinSAddOver
	BuiltinUAddOver
	BuiltinSSubOver
	BuiltinUSubOver
	BuiltinSMulOver
	BuiltinUMulOver

	// Floating-point arithmetic.
	BuiltinFAdd
	BuiltinGenericFAdd
	BuiltinFSub
	BuiltinGenericFSub
	BuiltinFMul
	BuiltinGenericFMul
	BuiltinFDiv
	BuiltinGenericFDiv
	BuiltinFRem
	BuiltinGenericFRem
	BuiltinFNeg

	// Integer comparisons.
	BuiltinICmpEQ
	BuiltinICmpNE
	BuiltinICmpSGE
	BuiltinICmpSGT
	BuiltinICmpSLE
	BuiltinICmpSLT
	BuiltinICmpUGE
	BuiltinICmpUGT
	BuiltinICmpULE
	BuiltinICmpULT

	// Floating-point comparisons.
	BuiltinFCmpOEQ
	BuiltinFCmpOGE
	BuiltinFCmpOGT
	BuiltinFCmpOLE
	BuiltinFCmpOLT
	BuiltinFCmpONE
	BuiltinFCmpORD
	BuiltinFCmpUEQ
	BuiltinFCmpUGE
	BuiltinFCmpUGT
	BuiltinFCmpULE
	BuiltinFCmpULT
	BuiltinFCmpUNE
	BuiltinFCmpUNO

	// Conversions and bit casts.
	BuiltinBitCast
	BuiltinTrunc
	BuiltinTruncOrBitCast
	BuiltinSExt
	BuiltinSExtOrBitCast
	BuiltinZExt
	BuiltinZExtOrBitCast
	BuiltinSToSCheckedTrunc
	BuiltinSToUCheckedTrunc
	BuiltinUToSCheckedTrunc
	BuiltinUToUCheckedTrunc
	BuiltinSIToFP
	BuiltinUIToFP
	BuiltinFPToSI
	BuiltinFPToUI
	BuiltinFPExt
	BuiltinFPTrunc
	BuiltinIntToFPWithOverflow
	BuiltinIntToPtr
	BuiltinPtrToInt

	// Vectors.
	BuiltinExtractElement
	BuiltinInsertElement

	// Atomics and fences.
	BuiltinAtomicLoad
	BuiltinAtomicStore
	BuiltinAtomicRMW
	BuiltinCmpXChg
	BuiltinFence
	BuiltinOnce
	BuiltinOnceWithContext

	// Raw memory and array intrinsics.
	BuiltinAllocRaw
	BuiltinDeallocRaw
	BuiltinCopyArray
	BuiltinDestroyArray
	BuiltinTakeArrayNoAlias
	BuiltinTakeArrayFrontToBack
	BuiltinTakeArrayBackToFront
	BuiltinAssignCopyArrayNoAlias
	BuiltinAssignCopyArrayFrontToBack
	BuiltinAssignCopyArrayBackToFront
	BuiltinAssignTakeArray
	BuiltinZeroInitializer

	// Type queries.
	BuiltinAlignof
	BuiltinSizeof
	BuiltinStrideof
	BuiltinIsPOD
	BuiltinIsConcrete
	BuiltinIsBitwiseTakable
	BuiltinIsOptionalType
	BuiltinIsSameMetatype
	BuiltinCanBeForeignClass
	BuiltinGetForeignTypeEncoding
	BuiltinTypePtrAuthDiscriminator

	// Strings and bridging.
	BuiltinStringObjectOr
	BuiltinGlobalStringTablePointer
	BuiltinForeignEntrypoint

	// Copy-on-write and pinned-buffer primitives. These are the only
	// builtins with fixed ownership requirements.
	BuiltinCOWBufferForReading
	BuiltinUnsafeGuaranteed
	BuiltinUnsafeGuaranteedEnd

	// Structured concurrency.
	BuiltinCancelAsyncTask
	BuiltinGetCurrentAsyncTask

	// Primitives that are rewritten into real instructions before the
	// ownership-tracked representation; visiting one is an internal error.
	BuiltinRetain
	BuiltinRelease
	BuiltinAutorelease
	BuiltinLoadRaw
	BuiltinLoadInvariant
	BuiltinTake
	BuiltinDestroy
	BuiltinAssign
	BuiltinInit
	BuiltinCastToNativeObject
	BuiltinCastFromNativeObject

	// BuiltinCount is the number of builtin identifiers; classifier
	// tables are sized by it.
	BuiltinCount
)

var builtinNames = [BuiltinCount]string{
	BuiltinErrorInMain:                "error_in_main",
	BuiltinUnexpectedError:            "unexpected_error",
	BuiltinWillThrow:                  "will_throw",
	BuiltinAssertConf:                 "assert_configuration",
	BuiltinAssumeNonNegative:          "assume_non_negative",
	BuiltinAssumeTrue:                 "assume_true",
	BuiltinExpect:                     "expect",
	BuiltinStaticReport:               "static_report",
	BuiltinStaticAssert:               "static_assert",
	BuiltinCondFailMessage:            "cond_fail_message",
	BuiltinCondUnreachable:            "cond_unreachable",
	BuiltinUnreachable:                "unreachable",
	BuiltinOnFastPath:                 "on_fast_path",
	BuiltinTSanInoutAccess:            "tsan_inout_access",
	BuiltinIntInstrprofIncrement:      "int_instrprof_increment",
	BuiltinAdd:                        "add",
	BuiltinGenericAdd:                 "generic_add",
	BuiltinSub:                        "sub",
	BuiltinGenericSub:                 "generic_sub",
	BuiltinMul:                        "mul",
	BuiltinGenericMul:                 "generic_mul",
	BuiltinSDiv:                       "sdiv",
	BuiltinGenericSDiv:                "generic_sdiv",
	BuiltinUDiv:                       "udiv",
	BuiltinGenericUDiv:                "generic_udiv",
	BuiltinExactSDiv:                  "sdiv_exact",
	BuiltinGenericExactSDiv:           "generic_sdiv_exact",
	BuiltinExactUDiv:                  "udiv_exact",
	BuiltinGenericExactUDiv:           "generic_udiv_exact",
	BuiltinSRem:                       "srem",
	BuiltinGenericSRem:                "generic_srem",
	BuiltinURem:                       "urem",
	BuiltinGenericURem:                "generic_urem",
	BuiltinAnd:                        "and",
	BuiltinGenericAnd:                 "generic_and",
	BuiltinOr:                         "or",
	BuiltinGenericOr:                  "generic_or",
	BuiltinXor:                        "xor",
	BuiltinGenericXor:                 "generic_xor",
	BuiltinShl:                        "shl",
	BuiltinGenericShl:                 "generic_shl",
	BuiltinLShr:                       "lshr",
	BuiltinGenericLShr:                "generic_lshr",
	BuiltinAShr:                       "ashr",
	BuiltinGenericAShr:                "generic_ashr",
	BuiltinSAddOver:                   "sadd_with_overflow",
	BuiltinUAddOver:                   "uadd_with_overflow",
	BuiltinSSubOver:                   "ssub_with_overflow",
	BuiltinUSubOver:                   "usub_with_overflow",
	BuiltinSMulOver:                   "smul_with_overflow",
	BuiltinUMulOver:                   "umul_with_overflow",
	BuiltinFAdd:                       "fadd",
	BuiltinGenericFAdd:                "generic_fadd",
	BuiltinFSub:                       "fsub",
	BuiltinGenericFSub:                "generic_fsub",
	BuiltinFMul:                       "fmul",
	BuiltinGenericFMul:                "generic_fmul",
	BuiltinFDiv:                       "fdiv",
	BuiltinGenericFDiv:                "generic_fdiv",
	BuiltinFRem:                       "frem",
	BuiltinGenericFRem:                "generic_frem",
	BuiltinFNeg:                       "fneg",
	BuiltinICmpEQ:                     "cmp_eq",
	BuiltinICmpNE:                     "cmp_ne",
	BuiltinICmpSGE:                    "cmp_sge",
	BuiltinICmpSGT:                    "cmp_sgt",
	BuiltinICmpSLE:                    "cmp_sle",
	BuiltinICmpSLT:                    "cmp_slt",
	BuiltinICmpUGE:                    "cmp_uge",
	BuiltinICmpUGT:                    "cmp_ugt",
	BuiltinICmpULE:                    "cmp_ule",
	BuiltinICmpULT:                    "cmp_ult",
	BuiltinFCmpOEQ:                    "fcmp_oeq",
	BuiltinFCmpOGE:                    "fcmp_oge",
	BuiltinFCmpOGT:                    "fcmp_ogt",
	BuiltinFCmpOLE:                    "fcmp_ole",
	BuiltinFCmpOLT:                    "fcmp_olt",
	BuiltinFCmpONE:                    "fcmp_one",
	BuiltinFCmpORD:                    "fcmp_ord",
	BuiltinFCmpUEQ:                    "fcmp_ueq",
	BuiltinFCmpUGE:                    "fcmp_uge",
	BuiltinFCmpUGT:                    "fcmp_ugt",
	BuiltinFCmpULE:                    "fcmp_ule",
	BuiltinFCmpULT:                    "fcmp_ult",
	BuiltinFCmpUNE:                    "fcmp_une",
	BuiltinFCmpUNO:                    "fcmp_uno",
	BuiltinBitCast:                    "bitcast",
	BuiltinTrunc:                      "trunc",
	BuiltinTruncOrBitCast:             "trunc_or_bitcast",
	BuiltinSExt:                       "sext",
	BuiltinSExtOrBitCast:              "sext_or_bitcast",
	BuiltinZExt:                       "zext",
	BuiltinZExtOrBitCast:              "zext_or_bitcast",
	BuiltinSToSCheckedTrunc:           "s_to_s_checked_trunc",
	BuiltinSToUCheckedTrunc:           "s_to_u_checked_trunc",
	BuiltinUToSCheckedTrunc:           "u_to_s_checked_trunc",
	BuiltinUToUCheckedTrunc:           "u_to_u_checked_trunc",
	BuiltinSIToFP:                     "sitofp",
	BuiltinUIToFP:                     "uitofp",
	BuiltinFPToSI:                     "fptosi",
	BuiltinFPToUI:                     "fptoui",
	BuiltinFPExt:                      "fpext",
	BuiltinFPTrunc:                    "fptrunc",
	BuiltinIntToFPWithOverflow:        "itofp_with_overflow",
	BuiltinIntToPtr:                   "inttoptr",
	BuiltinPtrToInt:                   "ptrtoint",
	BuiltinExtractElement:             "extractelement",
	BuiltinInsertElement:              "insertelement",
	BuiltinAtomicLoad:                 "atomicload",
	BuiltinAtomicStore:                "atomicstore",
	BuiltinAtomicRMW:                  "atomicrmw",
	BuiltinCmpXChg:                    "cmpxchg",
	BuiltinFence:                      "fence",
	BuiltinOnce:                       "once",
	BuiltinOnceWithContext:            "once_with_context",
	BuiltinAllocRaw:                   "alloc_raw",
	BuiltinDeallocRaw:                 "dealloc_raw",
	BuiltinCopyArray:                  "copy_array",
	BuiltinDestroyArray:               "destroy_array",
	BuiltinTakeArrayNoAlias:           "take_array_no_alias",
	BuiltinTakeArrayFrontToBack:       "take_array_front_to_back",
	BuiltinTakeArrayBackToFront:       "take_array_back_to_front",
	BuiltinAssignCopyArrayNoAlias:     "assign_copy_array_no_alias",
	BuiltinAssignCopyArrayFrontToBack: "assign_copy_array_front_to_back",
	BuiltinAssignCopyArrayBackToFront: "assign_copy_array_back_to_front",
	BuiltinAssignTakeArray:            "assign_take_array",
	BuiltinZeroInitializer:            "zero_initializer",
	BuiltinAlignof:                    "alignof",
	BuiltinSizeof:                     "sizeof",
	BuiltinStrideof:                   "strideof",
	BuiltinIsPOD:                      "ispod",
	BuiltinIsConcrete:                 "is_concrete",
	BuiltinIsBitwiseTakable:           "is_bitwise_takable",
	BuiltinIsOptionalType:             "is_optional_type",
	BuiltinIsSameMetatype:             "is_same_metatype",
	BuiltinCanBeForeignClass:          "can_be_foreign_class",
	BuiltinGetForeignTypeEncoding:     "get_foreign_type_encoding",
	BuiltinTypePtrAuthDiscriminator:   "type_ptr_auth_discriminator",
	BuiltinStringObjectOr:             "string_object_or",
	BuiltinGlobalStringTablePointer:   "global_string_table_pointer",
	BuiltinForeignEntrypoint:          "foreign_entrypoint",
	BuiltinCOWBufferForReading:        "cow_buffer_for_reading",
	BuiltinUnsafeGuaranteed:           "unsafe_guaranteed",
	BuiltinUnsafeGuaranteedEnd:        "unsafe_guaranteed_end",
	BuiltinCancelAsyncTask:            "cancel_async_task",
	BuiltinGetCurrentAsyncTask:        "get_current_async_task",
	BuiltinRetain:                     "retain",
	BuiltinRelease:                    "release",
	BuiltinAutorelease:                "autorelease",
	BuiltinLoadRaw:                    "load_raw",
	BuiltinLoadInvariant:              "load_invariant",
	BuiltinTake:                       "take",
	BuiltinDestroy:                    "destroy",
	BuiltinAssign:                     "assign",
	BuiltinInit:                       "init",
	BuiltinCastToNativeObject:         "cast_to_native_object",
	BuiltinCastFromNativeObject:       "cast_from_native_object",
}

func (b Builtin) String() string {
	if b < BuiltinCount && builtinNames[b] != "" {
		return builtinNames[b]
	}
	return "unknown_builtin"
}
