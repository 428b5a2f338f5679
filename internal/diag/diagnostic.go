package diag

import (
	"fmt"
)

// Locus identifies the instruction-graph position a diagnostic refers
// to: function name, block index, instruction index within the block and
// operand index within the instruction. Negative indexes mean "not
// applicable".
type Locus struct {
	Func    string
	Block   int
	Instr   int
	Operand int
}

func (l Locus) String() string {
	s := l.Func
	if l.Block >= 0 {
		s += fmt.Sprintf(":bb%d", l.Block)
	}
	if l.Instr >= 0 {
		s += fmt.Sprintf(":i%d", l.Instr)
	}
	if l.Operand >= 0 {
		s += fmt.Sprintf(":op%d", l.Operand)
	}
	return s
}

// Note carries secondary context for a diagnostic.
type Note struct {
	Locus Locus
	Msg   string
}

// Diagnostic is one finding. It is plain data; rendering lives in the
// CLI layer.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  Locus
	Notes    []Note
}
