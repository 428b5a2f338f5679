package kir

// Convention describes how a value crosses a call boundary: by value with
// a transfer or borrow of ownership, without ownership tracking, or
// indirectly through an address.
type Convention uint8

const (
	// ConvDirectOwned passes the value itself; the callee consumes it.
	ConvDirectOwned Convention = iota
	// ConvDirectGuaranteed passes the value itself; the callee borrows it
	// for the duration of the call.
	ConvDirectGuaranteed
	// ConvDirectUnowned passes the value without tracking ownership.
	ConvDirectUnowned
	// ConvIndirectIn passes an initialized address; the callee takes
	// ownership of the pointed-to value.
	ConvIndirectIn
	// ConvIndirectInConstant is ConvIndirectIn for immutable storage.
	ConvIndirectInConstant
	// ConvIndirectInGuaranteed passes an initialized address the callee
	// may read but not consume.
	ConvIndirectInGuaranteed
	// ConvIndirectInout passes an address the callee may mutate.
	ConvIndirectInout
	// ConvIndirectInoutAliasable is ConvIndirectInout without exclusivity.
	ConvIndirectInoutAliasable

	// ConventionCount sizes tables indexed by Convention.
	ConventionCount
)

func (c Convention) String() string {
	switch c {
	case ConvDirectOwned:
		return "owned"
	case ConvDirectGuaranteed:
		return "guaranteed"
	case ConvDirectUnowned:
		return "unowned"
	case ConvIndirectIn:
		return "in"
	case ConvIndirectInConstant:
		return "in_constant"
	case ConvIndirectInGuaranteed:
		return "in_guaranteed"
	case ConvIndirectInout:
		return "inout"
	case ConvIndirectInoutAliasable:
		return "inout_aliasable"
	}
	return "invalid"
}

// Indirect reports whether the convention passes through an address once
// addresses are lowered.
func (c Convention) Indirect() bool {
	switch c {
	case ConvIndirectIn, ConvIndirectInConstant, ConvIndirectInGuaranteed,
		ConvIndirectInout, ConvIndirectInoutAliasable:
		return true
	}
	return false
}

// ResultConvention describes how a callee returns a value.
type ResultConvention uint8

const (
	// ResultOwned transfers ownership of the result to the caller.
	ResultOwned ResultConvention = iota
	// ResultUnowned returns the result without tracking ownership.
	ResultUnowned
	// ResultUnownedInnerPointer returns an interior pointer dependent on
	// some callee argument staying alive.
	ResultUnownedInnerPointer
	// ResultAutoreleased returns the result at +1 through the foreign
	// autorelease convention.
	ResultAutoreleased
	// ResultIndirect returns through a caller-provided address.
	ResultIndirect

	// ResultConventionCount sizes tables indexed by ResultConvention.
	ResultConventionCount
)

func (c ResultConvention) String() string {
	switch c {
	case ResultOwned:
		return "owned"
	case ResultUnowned:
		return "unowned"
	case ResultUnownedInnerPointer:
		return "unowned_inner_pointer"
	case ResultAutoreleased:
		return "autoreleased"
	case ResultIndirect:
		return "indirect"
	}
	return "invalid"
}

// Ownership maps a direct result convention to the ownership kind the
// produced value carries. Indirect results produce no tracked value.
func (c ResultConvention) Ownership() Ownership {
	switch c {
	case ResultOwned, ResultAutoreleased:
		return OwnershipOwned
	default:
		return OwnershipNone
	}
}
