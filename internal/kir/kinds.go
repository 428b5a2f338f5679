package kir

// OpKind enumerates every instruction form that can appear in a KIR
// function body. The set is closed: ownership classification is defined
// for exactly these kinds, and adding a kind without extending the
// classifier tables is caught by the totality checks.
type OpKind uint16

const (
	// Allocation and deallocation.
	OpAllocStack OpKind = iota
	OpAllocBox
	OpAllocRef
	OpAllocRefDynamic
	OpAllocGlobal
	OpAllocExistentialBox
	OpAllocValueBuffer
	OpDeallocStack
	OpDeallocBox
	OpDeallocExistentialBox
	OpDeallocRef
	OpDeallocPartialRef
	OpDeallocValueBuffer
	OpProjectValueBuffer
	OpProjectBox
	OpProjectExistentialBox

	// Literals and references to globals.
	OpIntegerLiteral
	OpFloatLiteral
	OpStringLiteral
	OpFunctionRef
	OpDynamicFunctionRef
	OpPreviousDynamicFunctionRef
	OpGlobalAddr
	OpGlobalValue
	OpBaseAddrForOffset
	OpMetatype
	OpForeignProtocol
	OpDifferentiabilityWitnessFunction
	OpKeyPath

	// Calls.
	OpApply
	OpBeginApply
	OpTryApply
	OpPartialApply
	OpBuiltin
	OpAbortApply
	OpEndApply

	// Memory access.
	OpLoad
	OpLoadBorrow
	OpStore
	OpStoreBorrow
	OpAssign
	OpAssignByWrapper
	OpMarkUninitialized
	OpMarkFunctionEscape
	OpDebugValue
	OpDebugValueAddr
	OpCopyAddr
	OpDestroyAddr
	OpIndexAddr
	OpTailAddr
	OpIndexRawPointer
	OpBindMemory
	OpBeginAccess
	OpEndAccess
	OpBeginUnpairedAccess
	OpEndUnpairedAccess
	OpInitBlockStorageHeader
	OpProjectBlockStorage

	// Reference counting. These operate on the retain counts directly and
	// are rewritten away before the ownership-tracked representation.
	OpStrongRetain
	OpStrongRelease
	OpRetainValue
	OpRetainValueAddr
	OpReleaseValue
	OpReleaseValueAddr
	OpAutoreleaseValue
	OpSetDeallocating
	OpStrongRetainUnowned
	OpUnownedRetain
	OpUnownedRelease
	OpUnmanagedRetainValue
	OpUnmanagedReleaseValue
	OpUnmanagedAutoreleaseValue
	OpIsUnique
	OpBeginCOWMutation
	OpEndCOWMutation
	OpIsEscapingClosure
	OpCopyBlock
	OpCopyBlockWithoutEscaping
	OpFixLifetime
	OpEndLifetime
	OpMarkDependence

	// Ownership manipulation.
	OpCopyValue
	OpDestroyValue
	OpBeginBorrow
	OpEndBorrow
	OpStrongCopyUnownedValue
	OpStrongCopyUnmanagedValue
	OpUncheckedOwnershipConversion

	// Weak, unowned and unmanaged reference storage.
	OpLoadWeak
	OpStoreWeak
	OpLoadUnowned
	OpStoreUnowned
	OpRefToUnowned
	OpUnownedToRef
	OpRefToUnmanaged
	OpUnmanagedToRef

	// Aggregates and enums.
	OpStruct
	OpStructExtract
	OpStructElementAddr
	OpTuple
	OpTupleExtract
	OpTupleElementAddr
	OpDestructureStruct
	OpDestructureTuple
	OpObject
	OpRefElementAddr
	OpRefTailAddr
	OpEnum
	OpUncheckedEnumData
	OpInitEnumDataAddr
	OpInjectEnumAddr
	OpUncheckedTakeEnumDataAddr
	OpSelectEnum
	OpSelectEnumAddr
	OpSelectValue

	// Existential containers.
	OpInitExistentialAddr
	OpInitExistentialValue
	OpInitExistentialMetatype
	OpInitExistentialRef
	OpDeinitExistentialAddr
	OpDeinitExistentialValue
	OpOpenExistentialAddr
	OpOpenExistentialValue
	OpOpenExistentialBox
	OpOpenExistentialBoxValue
	OpOpenExistentialMetatype
	OpOpenExistentialRef
	OpExistentialMetatype
	OpValueMetatype

	// Method lookup.
	OpClassMethod
	OpSuperMethod
	OpForeignMethod
	OpForeignSuperMethod
	OpWitnessMethod
	OpDynamicMethodBranch

	// Casts and conversions.
	OpUpcast
	OpAddressToPointer
	OpPointerToAddress
	OpUncheckedRefCast
	OpUncheckedRefCastAddr
	OpUncheckedAddrCast
	OpUncheckedTrivialBitCast
	OpUncheckedBitwiseCast
	OpUncheckedValueCast
	OpRefToRawPointer
	OpRawPointerToRef
	OpRefToBridgeObject
	OpBridgeObjectToRef
	OpBridgeObjectToWord
	OpClassifyBridgeObject
	OpValueToBridgeObject
	OpThinToThickFunction
	OpThickToForeignMetatype
	OpForeignToThickMetatype
	OpThinFunctionToPointer
	OpPointerToThinFunction
	OpConvertFunction
	OpConvertEscapeToNoEscape
	OpForeignMetatypeToObject
	OpForeignExistentialMetatypeToObject
	OpUnconditionalCheckedCast
	OpUnconditionalCheckedCastValue
	OpUnconditionalCheckedCastAddr

	// Runtime failure.
	OpCondFail

	// Differentiable programming.
	OpDifferentiableFunction
	OpLinearFunction
	OpDifferentiableFunctionExtract
	OpLinearFunctionExtract

	// Structured concurrency.
	OpHopToExecutor
	OpGetAsyncContinuation
	OpGetAsyncContinuationAddr

	// Terminators.
	OpUnreachable
	OpReturn
	OpThrow
	OpUnwind
	OpYield
	OpBranch
	OpCondBranch
	OpSwitchValue
	OpSwitchEnum
	OpSwitchEnumAddr
	OpCheckedCastBranch
	OpCheckedCastValueBranch
	OpCheckedCastAddrBranch
	OpAwaitAsyncContinuation

	// OpKindCount is the number of instruction kinds. Classifier tables are
	// sized by it so that a kind without an entry cannot compile away
	// silently.
	OpKindCount
)

var opNames = [OpKindCount]string{
	OpAllocStack:                         "alloc_stack",
	OpAllocBox:                           "alloc_box",
	OpAllocRef:                           "alloc_ref",
	OpAllocRefDynamic:                    "alloc_ref_dynamic",
	OpAllocGlobal:                        "alloc_global",
	OpAllocExistentialBox:                "alloc_existential_box",
	OpAllocValueBuffer:                   "alloc_value_buffer",
	OpDeallocStack:                       "dealloc_stack",
	OpDeallocBox:                         "dealloc_box",
	OpDeallocExistentialBox:              "dealloc_existential_box",
	OpDeallocRef:                         "dealloc_ref",
	OpDeallocPartialRef:                  "dealloc_partial_ref",
	OpDeallocValueBuffer:                 "dealloc_value_buffer",
	OpProjectValueBuffer:                 "project_value_buffer",
	OpProjectBox:                         "project_box",
	OpProjectExistentialBox:              "project_existential_box",
	OpIntegerLiteral:                     "integer_literal",
	OpFloatLiteral:                       "float_literal",
	OpStringLiteral:                      "string_literal",
	OpFunctionRef:                        "function_ref",
	OpDynamicFunctionRef:                 "dynamic_function_ref",
	OpPreviousDynamicFunctionRef:         "prev_dynamic_function_ref",
	OpGlobalAddr:                         "global_addr",
	OpGlobalValue:                        "global_value",
	OpBaseAddrForOffset:                  "base_addr_for_offset",
	OpMetatype:                           "metatype",
	OpForeignProtocol:                    "foreign_protocol",
	OpDifferentiabilityWitnessFunction:   "differentiability_witness_function",
	OpKeyPath:                            "keypath",
	OpApply:                              "apply",
	OpBeginApply:                         "begin_apply",
	OpTryApply:                           "try_apply",
	OpPartialApply:                       "partial_apply",
	OpBuiltin:                            "builtin",
	OpAbortApply:                         "abort_apply",
	OpEndApply:                           "end_apply",
	OpLoad:                               "load",
	OpLoadBorrow:                         "load_borrow",
	OpStore:                              "store",
	OpStoreBorrow:                        "store_borrow",
	OpAssign:                             "assign",
	OpAssignByWrapper:                    "assign_by_wrapper",
	OpMarkUninitialized:                  "mark_uninitialized",
	OpMarkFunctionEscape:                 "mark_function_escape",
	OpDebugValue:                         "debug_value",
	OpDebugValueAddr:                     "debug_value_addr",
	OpCopyAddr:                           "copy_addr",
	OpDestroyAddr:                        "destroy_addr",
	OpIndexAddr:                          "index_addr",
	OpTailAddr:                           "tail_addr",
	OpIndexRawPointer:                    "index_raw_pointer",
	OpBindMemory:                         "bind_memory",
	OpBeginAccess:                        "begin_access",
	OpEndAccess:                          "end_access",
	OpBeginUnpairedAccess:                "begin_unpaired_access",
	OpEndUnpairedAccess:                  "end_unpaired_access",
	OpInitBlockStorageHeader:             "init_block_storage_header",
	OpProjectBlockStorage:                "project_block_storage",
	OpStrongRetain:                       "strong_retain",
	OpStrongRelease:                      "strong_release",
	OpRetainValue:                        "retain_value",
	OpRetainValueAddr:                    "retain_value_addr",
	OpReleaseValue:                       "release_value",
	OpReleaseValueAddr:                   "release_value_addr",
	OpAutoreleaseValue:                   "autorelease_value",
	OpSetDeallocating:                    "set_deallocating",
	OpStrongRetainUnowned:                "strong_retain_unowned",
	OpUnownedRetain:                      "unowned_retain",
	OpUnownedRelease:                     "unowned_release",
	OpUnmanagedRetainValue:               "unmanaged_retain_value",
	OpUnmanagedReleaseValue:              "unmanaged_release_value",
	OpUnmanagedAutoreleaseValue:          "unmanaged_autorelease_value",
	OpIsUnique:                           "is_unique",
	OpBeginCOWMutation:                   "begin_cow_mutation",
	OpEndCOWMutation:                     "end_cow_mutation",
	OpIsEscapingClosure:                  "is_escaping_closure",
	OpCopyBlock:                          "copy_block",
	OpCopyBlockWithoutEscaping:           "copy_block_without_escaping",
	OpFixLifetime:                        "fix_lifetime",
	OpEndLifetime:                        "end_lifetime",
	OpMarkDependence:                     "mark_dependence",
	OpCopyValue:                          "copy_value",
	OpDestroyValue:                       "destroy_value",
	OpBeginBorrow:                        "begin_borrow",
	OpEndBorrow:                          "end_borrow",
	OpStrongCopyUnownedValue:             "strong_copy_unowned_value",
	OpStrongCopyUnmanagedValue:           "strong_copy_unmanaged_value",
	OpUncheckedOwnershipConversion:       "unchecked_ownership_conversion",
	OpLoadWeak:                           "load_weak",
	OpStoreWeak:                          "store_weak",
	OpLoadUnowned:                        "load_unowned",
	OpStoreUnowned:                       "store_unowned",
	OpRefToUnowned:                       "ref_to_unowned",
	OpUnownedToRef:                       "unowned_to_ref",
	OpRefToUnmanaged:                     "ref_to_unmanaged",
	OpUnmanagedToRef:                     "unmanaged_to_ref",
	OpStruct:                             "struct",
	OpStructExtract:                      "struct_extract",
	OpStructElementAddr:                  "struct_element_addr",
	OpTuple:                              "tuple",
	OpTupleExtract:                       "tuple_extract",
	OpTupleElementAddr:                   "tuple_element_addr",
	OpDestructureStruct:                  "destructure_struct",
	OpDestructureTuple:                   "destructure_tuple",
	OpObject:                             "object",
	OpRefElementAddr:                     "ref_element_addr",
	OpRefTailAddr:                        "ref_tail_addr",
	OpEnum:                               "enum",
	OpUncheckedEnumData:                  "unchecked_enum_data",
	OpInitEnumDataAddr:                   "init_enum_data_addr",
	OpInjectEnumAddr:                     "inject_enum_addr",
	OpUncheckedTakeEnumDataAddr:          "unchecked_take_enum_data_addr",
	OpSelectEnum:                         "select_enum",
	OpSelectEnumAddr:                     "select_enum_addr",
	OpSelectValue:                        "select_value",
	OpInitExistentialAddr:                "init_existential_addr",
	OpInitExistentialValue:               "init_existential_value",
	OpInitExistentialMetatype:            "init_existential_metatype",
	OpInitExistentialRef:                 "init_existential_ref",
	OpDeinitExistentialAddr:              "deinit_existential_addr",
	OpDeinitExistentialValue:             "deinit_existential_value",
	OpOpenExistentialAddr:                "open_existential_addr",
	OpOpenExistentialValue:               "open_existential_value",
	OpOpenExistentialBox:                 "open_existential_box",
	OpOpenExistentialBoxValue:            "open_existential_box_value",
	OpOpenExistentialMetatype:            "open_existential_metatype",
	OpOpenExistentialRef:                 "open_existential_ref",
	OpExistentialMetatype:                "existential_metatype",
	OpValueMetatype:                      "value_metatype",
	OpClassMethod:                        "class_method",
	OpSuperMethod:                        "super_method",
	OpForeignMethod:                      "foreign_method",
	OpForeignSuperMethod:                 "foreign_super_method",
	OpWitnessMethod:                      "witness_method",
	OpDynamicMethodBranch:                "dynamic_method_br",
	OpUpcast:                             "upcast",
	OpAddressToPointer:                   "address_to_pointer",
	OpPointerToAddress:                   "pointer_to_address",
	OpUncheckedRefCast:                   "unchecked_ref_cast",
	OpUncheckedRefCastAddr:               "unchecked_ref_cast_addr",
	OpUncheckedAddrCast:                  "unchecked_addr_cast",
	OpUncheckedTrivialBitCast:            "unchecked_trivial_bit_cast",
	OpUncheckedBitwiseCast:               "unchecked_bitwise_cast",
	OpUncheckedValueCast:                 "unchecked_value_cast",
	OpRefToRawPointer:                    "ref_to_raw_pointer",
	OpRawPointerToRef:                    "raw_pointer_to_ref",
	OpRefToBridgeObject:                  "ref_to_bridge_object",
	OpBridgeObjectToRef:                  "bridge_object_to_ref",
	OpBridgeObjectToWord:                 "bridge_object_to_word",
	OpClassifyBridgeObject:               "classify_bridge_object",
	OpValueToBridgeObject:                "value_to_bridge_object",
	OpThinToThickFunction:                "thin_to_thick_function",
	OpThickToForeignMetatype:             "thick_to_foreign_metatype",
	OpForeignToThickMetatype:             "foreign_to_thick_metatype",
	OpThinFunctionToPointer:              "thin_function_to_pointer",
	OpPointerToThinFunction:              "pointer_to_thin_function",
	OpConvertFunction:                    "convert_function",
	OpConvertEscapeToNoEscape:            "convert_escape_to_noescape",
	OpForeignMetatypeToObject:            "foreign_metatype_to_object",
	OpForeignExistentialMetatypeToObject: "foreign_existential_metatype_to_object",
	OpUnconditionalCheckedCast:           "unconditional_checked_cast",
	OpUnconditionalCheckedCastValue:      "unconditional_checked_cast_value",
	OpUnconditionalCheckedCastAddr:       "unconditional_checked_cast_addr",
	OpCondFail:                           "cond_fail",
	OpDifferentiableFunction:             "differentiable_function",
	OpLinearFunction:                     "linear_function",
	OpDifferentiableFunctionExtract:      "differentiable_function_extract",
	OpLinearFunctionExtract:              "linear_function_extract",
	OpHopToExecutor:                      "hop_to_executor",
	OpGetAsyncContinuation:               "get_async_continuation",
	OpGetAsyncContinuationAddr:           "get_async_continuation_addr",
	OpUnreachable:                        "unreachable",
	OpReturn:                             "return",
	OpThrow:                              "throw",
	OpUnwind:                             "unwind",
	OpYield:                              "yield",
	OpBranch:                             "br",
	OpCondBranch:                         "cond_br",
	OpSwitchValue:                        "switch_value",
	OpSwitchEnum:                         "switch_enum",
	OpSwitchEnumAddr:                     "switch_enum_addr",
	OpCheckedCastBranch:                  "checked_cast_br",
	OpCheckedCastValueBranch:             "checked_cast_value_br",
	OpCheckedCastAddrBranch:              "checked_cast_addr_br",
	OpAwaitAsyncContinuation:             "await_async_continuation",
}

func (k OpKind) String() string {
	if k < OpKindCount && opNames[k] != "" {
		return opNames[k]
	}
	return "unknown_op"
}
