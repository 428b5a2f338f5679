package kir

// Value is produced by exactly one defining instruction or by exactly one
// block parameter. Its ownership kind is fixed at construction.
type Value struct {
	Type      *Type
	Ownership Ownership

	// Def is the defining instruction, nil for block parameters.
	Def *Instruction
	// Block is the owning block for parameters, nil otherwise.
	Block *Block
	// Index is the result position within Def, or the parameter position
	// within Block.
	Index int
}

// IsParam reports whether the value is a block parameter.
func (v *Value) IsParam() bool { return v != nil && v.Block != nil }

// Trivial reports whether the value's type carries no ownership.
func (v *Value) Trivial() bool {
	return v != nil && v.Type != nil && (v.Type.Trivial || v.Type.Address)
}

// Operand is one use-site: a typed use of a value by a consuming
// instruction. An operand's observed ownership kind is always its
// referenced value's kind; Operand stores no kind of its own.
type Operand struct {
	// Owner is the instruction consuming the value.
	Owner *Instruction
	// Index is the stable position within Owner's operand list.
	Index int
	// Value is the referenced value.
	Value *Value
}
