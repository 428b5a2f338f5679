package kir

// Instruction is one node of the instruction graph. All kinds share the
// same representation: the kind tag, the ordered operand list, the
// produced results, and a small set of kind-specific fields.
//
// Operand layout conventions for kinds with positional roles:
//
//	store, store_borrow, assign, assign_by_wrapper:
//	    operand 0 is the source, operand 1 the destination address;
//	    any further operands (wrapper initializer/setter) follow.
//	mark_dependence:       operand 0 is the value, operand 1 the base.
//	dealloc_partial_ref:   operand 0 is the instance, operand 1 the metatype.
//	select_enum:           operand 0 is the dispatched enum, the case
//	                       results follow.
//	copy_block_without_escaping:
//	    operand 0 is the block, operand 1 the sentinel closure.
//	apply, begin_apply, try_apply:
//	    operand 0 is the callee, then indirect results (with lowered
//	    addresses), then arguments, then type-dependent operands.
//	partial_apply:         operand 0 is the callee, captures follow.
//	br:                    operands are the destination block arguments,
//	                       in parameter order.
type Instruction struct {
	Kind   OpKind
	Parent *Block

	Operands []*Operand
	Results  []*Value

	// Dest is the destination block of br.
	Dest *Block
	// Dests holds the successor blocks of multi-way terminators.
	Dests []*Block
	// Builtin identifies the primitive operation of a builtin instruction.
	Builtin Builtin
	// OnStack marks a stack-allocated partial_apply, which does not take
	// ownership of its captures.
	OnStack bool
	// NumTypeDependent is the number of trailing operands that exist only
	// to pin opened archetypes; they are phantom uses excluded from
	// ownership forwarding.
	NumTypeDependent int
}

// Func returns the enclosing function, nil if detached.
func (i *Instruction) Func() *Func {
	if i == nil || i.Parent == nil {
		return nil
	}
	return i.Parent.Parent
}

// IsTypeDependent reports whether op is one of the trailing
// type-dependent operands of i.
func (i *Instruction) IsTypeDependent(op *Operand) bool {
	if i == nil || op == nil || i.NumTypeDependent == 0 {
		return false
	}
	return op.Index >= len(i.Operands)-i.NumTypeDependent
}

// Callee returns the callee operand of a call-like instruction.
func (i *Instruction) Callee() *Operand {
	if i == nil || len(i.Operands) == 0 {
		return nil
	}
	return i.Operands[0]
}

// CalleeSig returns the signature of a call-like instruction's callee
// value, nil if the callee is not function-typed.
func (i *Instruction) CalleeSig() *FnType {
	c := i.Callee()
	if c == nil || c.Value == nil || c.Value.Type == nil {
		return nil
	}
	return c.Value.Type.Fn
}

// IsTerminator reports whether the kind ends a block.
func (k OpKind) IsTerminator() bool {
	switch k {
	case OpUnreachable, OpReturn, OpThrow, OpUnwind, OpYield, OpBranch,
		OpCondBranch, OpSwitchValue, OpSwitchEnum, OpSwitchEnumAddr,
		OpCheckedCastBranch, OpCheckedCastValueBranch,
		OpCheckedCastAddrBranch, OpDynamicMethodBranch, OpTryApply,
		OpAwaitAsyncContinuation:
		return true
	}
	return false
}
