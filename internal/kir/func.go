package kir

// Func is one function body: a signature and its basic blocks. The entry
// block is Blocks[0].
type Func struct {
	Name   string
	Sig    *FnType
	Blocks []*Block
}

// Entry returns the entry block, nil for a bodyless function.
func (f *Func) Entry() *Block {
	if f == nil || len(f.Blocks) == 0 {
		return nil
	}
	return f.Blocks[0]
}

// Module is the unit the oracle operates within. It carries no mutable
// classification state; it only provides convention-lookup context.
type Module struct {
	Funcs []*Func

	// LoweredAddresses reports whether indirect conventions have been
	// lowered to explicit address operands. It changes how call-site
	// argument conventions classify.
	LoweredAddresses bool
}

// Func returns the named function, nil if absent.
func (m *Module) Func(name string) *Func {
	if m == nil {
		return nil
	}
	for _, f := range m.Funcs {
		if f != nil && f.Name == name {
			return f
		}
	}
	return nil
}
