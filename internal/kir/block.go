package kir

// Block is a basic block: zero or more parameters, then instructions.
type Block struct {
	Parent *Func
	Params []*Value
	Instrs []*Instruction
}

// Index returns the block's position within its function, -1 if detached.
func (b *Block) Index() int {
	if b == nil || b.Parent == nil {
		return -1
	}
	for i, bb := range b.Parent.Blocks {
		if bb == b {
			return i
		}
	}
	return -1
}

// Terminated reports whether the block ends with a terminator.
func (b *Block) Terminated() bool {
	if b == nil || len(b.Instrs) == 0 {
		return false
	}
	return b.Instrs[len(b.Instrs)-1].Kind.IsTerminator()
}
