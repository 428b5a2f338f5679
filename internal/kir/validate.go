package kir

import (
	"errors"
	"fmt"
)

// Validate checks structural invariants of a module's instruction graph.
// The ownership classifier assumes these hold; run Validate before
// classification on graphs from untrusted producers.
func Validate(m *Module) error {
	if m == nil {
		return nil
	}
	var errs []error
	for _, f := range m.Funcs {
		if f == nil {
			continue
		}
		if err := validateFunc(f, m); err != nil {
			errs = append(errs, fmt.Errorf("function %s: %w", f.Name, err))
		}
	}
	return errors.Join(errs...)
}

func validateFunc(f *Func, m *Module) error {
	var errs []error

	if err := validateBlocksTerminated(f); err != nil {
		errs = append(errs, err)
	}
	if err := validateWiring(f); err != nil {
		errs = append(errs, err)
	}
	if err := validateOwnershipKinds(f); err != nil {
		errs = append(errs, err)
	}
	if err := validateTerminators(f); err != nil {
		errs = append(errs, err)
	}
	if err := validateCalls(f, m); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// validateBlocksTerminated checks that every block ends with a terminator
// and that no terminator appears mid-block.
func validateBlocksTerminated(f *Func) error {
	var errs []error
	for i, b := range f.Blocks {
		if !b.Terminated() {
			errs = append(errs, fmt.Errorf("bb%d: unterminated block", i))
		}
		for j, inst := range b.Instrs {
			if j < len(b.Instrs)-1 && inst.Kind.IsTerminator() {
				errs = append(errs, fmt.Errorf("bb%d instr %d: terminator %s before end of block", i, j, inst.Kind))
			}
		}
	}
	return errors.Join(errs...)
}

// validateWiring checks operand and value back-references.
func validateWiring(f *Func) error {
	var errs []error
	for i, b := range f.Blocks {
		if b.Parent != f {
			errs = append(errs, fmt.Errorf("bb%d: wrong parent function", i))
		}
		for pi, param := range b.Params {
			if param == nil || param.Block != b || param.Index != pi {
				errs = append(errs, fmt.Errorf("bb%d: parameter %d miswired", i, pi))
				continue
			}
			if param.Type == nil {
				errs = append(errs, fmt.Errorf("bb%d: parameter %d has no type", i, pi))
			}
		}
		for j, inst := range b.Instrs {
			if inst.Parent != b {
				errs = append(errs, fmt.Errorf("bb%d instr %d: wrong parent block", i, j))
			}
			if inst.NumTypeDependent < 0 || inst.NumTypeDependent > len(inst.Operands) {
				errs = append(errs, fmt.Errorf("bb%d instr %d: type-dependent operand count out of range", i, j))
			}
			for oi, op := range inst.Operands {
				switch {
				case op == nil:
					errs = append(errs, fmt.Errorf("bb%d instr %d: nil operand %d", i, j, oi))
				case op.Owner != inst || op.Index != oi:
					errs = append(errs, fmt.Errorf("bb%d instr %d: operand %d miswired", i, j, oi))
				case op.Value == nil:
					errs = append(errs, fmt.Errorf("bb%d instr %d: operand %d references no value", i, j, oi))
				case op.Value.Type == nil:
					errs = append(errs, fmt.Errorf("bb%d instr %d: operand %d value has no type", i, j, oi))
				}
			}
			for ri, r := range inst.Results {
				if r == nil || r.Def != inst || r.Index != ri {
					errs = append(errs, fmt.Errorf("bb%d instr %d: result %d miswired", i, j, ri))
				}
			}
		}
	}
	return errors.Join(errs...)
}

// validateOwnershipKinds checks the type/ownership agreement invariants:
// address and trivial values carry no ownership.
func validateOwnershipKinds(f *Func) error {
	var errs []error
	check := func(v *Value, where string) {
		if v == nil || v.Type == nil {
			return
		}
		if v.Ownership >= OwnershipCount {
			errs = append(errs, fmt.Errorf("%s: invalid ownership kind %d", where, v.Ownership))
			return
		}
		if (v.Type.Trivial || v.Type.Address) && v.Ownership != OwnershipNone {
			errs = append(errs, fmt.Errorf("%s: trivial value carries %s ownership", where, v.Ownership))
		}
	}
	for i, b := range f.Blocks {
		for pi, param := range b.Params {
			check(param, fmt.Sprintf("bb%d param %d", i, pi))
		}
		for j, inst := range b.Instrs {
			for ri, r := range inst.Results {
				check(r, fmt.Sprintf("bb%d instr %d result %d", i, j, ri))
			}
		}
	}
	return errors.Join(errs...)
}

// validateTerminators checks branch targets and branch/parameter arity.
func validateTerminators(f *Func) error {
	var errs []error
	owns := func(target *Block) bool {
		for _, b := range f.Blocks {
			if b == target {
				return true
			}
		}
		return false
	}
	for i, b := range f.Blocks {
		for j, inst := range b.Instrs {
			if inst.Dest != nil && !owns(inst.Dest) {
				errs = append(errs, fmt.Errorf("bb%d instr %d: destination block outside function", i, j))
			}
			for _, d := range inst.Dests {
				if d != nil && !owns(d) {
					errs = append(errs, fmt.Errorf("bb%d instr %d: successor block outside function", i, j))
				}
			}
			switch inst.Kind {
			case OpBranch:
				if inst.Dest == nil {
					errs = append(errs, fmt.Errorf("bb%d instr %d: br without destination", i, j))
					continue
				}
				if len(inst.Operands) != len(inst.Dest.Params) {
					errs = append(errs, fmt.Errorf("bb%d instr %d: br passes %d values to block with %d parameters",
						i, j, len(inst.Operands), len(inst.Dest.Params)))
				}
			case OpCondBranch:
				for oi, op := range inst.Operands {
					if op != nil && op.Value != nil && op.Value.Ownership != OwnershipNone {
						errs = append(errs, fmt.Errorf("bb%d instr %d: cond_br operand %d is not trivial", i, j, oi))
					}
				}
			case OpYield:
				if f.Sig == nil || !f.Sig.Coroutine {
					errs = append(errs, fmt.Errorf("bb%d instr %d: yield outside coroutine", i, j))
					continue
				}
				if len(inst.Operands) != len(f.Sig.Yields) {
					errs = append(errs, fmt.Errorf("bb%d instr %d: yield passes %d values for %d declared yields",
						i, j, len(inst.Operands), len(f.Sig.Yields)))
				}
			case OpReturn:
				if f.Sig == nil {
					errs = append(errs, fmt.Errorf("bb%d instr %d: return in function without signature", i, j))
				}
			}
		}
	}
	return errors.Join(errs...)
}

// validateCalls checks that call-like instructions have function-typed
// callees with enough operands for the declared parameters.
func validateCalls(f *Func, m *Module) error {
	var errs []error
	for i, b := range f.Blocks {
		for j, inst := range b.Instrs {
			switch inst.Kind {
			case OpApply, OpTryApply, OpBeginApply, OpPartialApply:
			default:
				continue
			}
			sig := inst.CalleeSig()
			if sig == nil {
				errs = append(errs, fmt.Errorf("bb%d instr %d: %s callee is not function-typed", i, j, inst.Kind))
				continue
			}
			if inst.Kind == OpBeginApply && !sig.Coroutine {
				errs = append(errs, fmt.Errorf("bb%d instr %d: begin_apply of non-coroutine", i, j))
			}
			if inst.Kind == OpPartialApply {
				// Captures are a suffix of the parameters; arity is
				// checked against the prefix bound only.
				if len(inst.Operands)-1 > len(sig.Params) {
					errs = append(errs, fmt.Errorf("bb%d instr %d: partial_apply captures %d values for %d parameters",
						i, j, len(inst.Operands)-1, len(sig.Params)))
				}
				continue
			}
			indirect := 0
			if m != nil && m.LoweredAddresses {
				indirect = sig.IndirectResults()
			}
			want := 1 + indirect + len(sig.Params) + inst.NumTypeDependent
			if len(inst.Operands) != want {
				errs = append(errs, fmt.Errorf("bb%d instr %d: %s has %d operands, want %d",
					i, j, inst.Kind, len(inst.Operands), want))
			}
		}
	}
	return errors.Join(errs...)
}
