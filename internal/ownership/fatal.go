package ownership

import (
	"fmt"

	"keel/internal/kir"
)

// fatalInst aborts classification for a graph that violates structural
// invariants. Such graphs are producer bugs, not user errors, so the
// offending instruction is dumped and the process panics instead of
// reporting a diagnostic.
func fatalInst(inst *kir.Instruction, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	panic(fmt.Sprintf("ownership: %s\n\t%s", msg, kir.SprintInst(inst)))
}
