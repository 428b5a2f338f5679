package kir

// Construction helpers. They wire the back-references (operand owner,
// defining instruction, owning block) that the classifier and validator
// rely on; tests and front-ends should build graphs through them.

// NewModule returns an empty module.
func NewModule() *Module {
	return &Module{}
}

// NewFunc appends an empty function with the given signature.
func (m *Module) NewFunc(name string, sig *FnType) *Func {
	f := &Func{Name: name, Sig: sig}
	m.Funcs = append(m.Funcs, f)
	return f
}

// NewBlock appends an empty basic block.
func (f *Func) NewBlock() *Block {
	b := &Block{Parent: f}
	f.Blocks = append(f.Blocks, b)
	return b
}

// NewParam appends a block parameter.
func (b *Block) NewParam(t *Type, own Ownership) *Value {
	v := &Value{Type: t, Ownership: own, Block: b, Index: len(b.Params)}
	b.Params = append(b.Params, v)
	return v
}

// Append builds an instruction of the given kind using vals as operands,
// in order, and appends it to the block.
func (b *Block) Append(kind OpKind, vals ...*Value) *Instruction {
	inst := &Instruction{Kind: kind, Parent: b}
	for idx, v := range vals {
		inst.Operands = append(inst.Operands, &Operand{
			Owner: inst,
			Index: idx,
			Value: v,
		})
	}
	b.Instrs = append(b.Instrs, inst)
	return inst
}

// NewResult appends a result value to the instruction.
func (i *Instruction) NewResult(t *Type, own Ownership) *Value {
	v := &Value{Type: t, Ownership: own, Def: i, Index: len(i.Results)}
	i.Results = append(i.Results, v)
	return v
}
