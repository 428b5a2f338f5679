package kir

// Type is the minimal static type information the ownership oracle needs
// about a value: whether it is an address, whether it is trivial, and for
// function-typed values the full signature carrying conventions.
type Type struct {
	// Address marks address-kind types. Address values never carry
	// ownership.
	Address bool
	// Trivial marks types with no ownership semantics (integers, raw
	// pointers, metatypes). Trivial values are always OwnershipNone.
	Trivial bool
	// Fn is non-nil for function-typed values.
	Fn *FnType
}

// FnType describes a function signature as seen by call sites: the
// convention applied to the callee value itself, per-parameter and
// per-yield conventions, and result conventions.
type FnType struct {
	// Callee is the convention for the function value in the callee
	// position of a call.
	Callee Convention
	// Params holds the formal parameter conventions in argument order.
	Params []Convention
	// Yields holds conventions for values yielded by a coroutine.
	Yields []Convention
	// Results holds the result conventions in declaration order.
	Results []ResultConvention
	// NoEscape marks function types whose values cannot outlive the call
	// they are passed to.
	NoEscape bool
	// Coroutine marks signatures started with begin_apply.
	Coroutine bool
}

// IndirectResults returns the number of results returned through
// caller-provided addresses. With lowered addresses these occupy operand
// slots of a call between the callee and the arguments.
func (f *FnType) IndirectResults() int {
	n := 0
	for _, r := range f.Results {
		if r == ResultIndirect {
			n++
		}
	}
	return n
}

// ObjectType returns a non-trivial object type.
func ObjectType() *Type { return &Type{} }

// TrivialType returns a trivial object type.
func TrivialType() *Type { return &Type{Trivial: true} }

// AddressType returns an address type.
func AddressType() *Type { return &Type{Address: true, Trivial: true} }

// FnValueType returns the type of a function value with signature sig.
// Thick function values are non-trivial (they may capture state).
func FnValueType(sig *FnType) *Type { return &Type{Fn: sig} }

// ThinFnValueType returns the type of a context-free function value.
func ThinFnValueType(sig *FnType) *Type { return &Type{Trivial: true, Fn: sig} }
