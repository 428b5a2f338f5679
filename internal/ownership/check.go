package ownership

import (
	"fmt"

	"keel/internal/diag"
	"keel/internal/kir"
)

// CheckOperand classifies op and tests the referenced value's actual
// kind against the result. It returns the constraint the use places on
// the value when compatible.
func CheckOperand(op *kir.Operand, mod *kir.Module) (Constraint, bool) {
	m := Classify(op, mod)
	return m.ConstraintFor(op.Value.Ownership)
}

// CheckFunc classifies every operand of every instruction in f and
// reports incompatibilities into bag. Structurally invalid graphs panic;
// callers gate CheckFunc behind kir.Validate.
func CheckFunc(f *kir.Func, mod *kir.Module, bag *diag.Bag) {
	for bi, b := range f.Blocks {
		for ii, inst := range b.Instrs {
			for oi, op := range inst.Operands {
				if inst.IsTypeDependent(op) {
					continue
				}
				m := Classify(op, mod)
				locus := diag.Locus{Func: f.Name, Block: bi, Instr: ii, Operand: oi}
				switch {
				case m.IsEmpty():
					bag.Add(diag.Diagnostic{
						Severity: diag.SevError,
						Code:     diag.OwnNoAcceptedKind,
						Message: fmt.Sprintf(
							"%s accepts no ownership kind for this operand", inst.Kind),
						Primary: locus,
					})
				case !m.Compatible(op.Value.Ownership):
					bag.Add(diag.Diagnostic{
						Severity: diag.SevError,
						Code:     diag.OwnKindMismatch,
						Message: fmt.Sprintf(
							"%s operand carries %s ownership, use requires %s",
							inst.Kind, op.Value.Ownership, m),
						Primary: locus,
					})
				}
			}
		}
	}
}
