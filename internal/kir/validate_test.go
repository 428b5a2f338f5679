package kir

import (
	"strings"
	"testing"
)

func validModule() *Module {
	m := NewModule()
	f := m.NewFunc("ok", &FnType{Results: []ResultConvention{ResultOwned}})
	b := f.NewBlock()
	v := b.NewParam(ObjectType(), OwnershipOwned)
	b.Append(OpReturn, v)
	return m
}

func TestValidateAcceptsWellFormedModule(t *testing.T) {
	if err := Validate(validModule()); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateNilModule(t *testing.T) {
	if err := Validate(nil); err != nil {
		t.Fatalf("Validate(nil): %v", err)
	}
}

func wantError(t *testing.T, m *Module, fragment string) {
	t.Helper()
	err := Validate(m)
	if err == nil {
		t.Fatalf("Validate accepted a module, want error containing %q", fragment)
	}
	if !strings.Contains(err.Error(), fragment) {
		t.Fatalf("Validate error %q does not mention %q", err, fragment)
	}
}

func TestValidateUnterminatedBlock(t *testing.T) {
	m := NewModule()
	f := m.NewFunc("f", nil)
	b := f.NewBlock()
	b.Append(OpCondFail, b.NewParam(TrivialType(), OwnershipNone))
	wantError(t, m, "unterminated")
}

func TestValidateTerminatorMidBlock(t *testing.T) {
	m := NewModule()
	f := m.NewFunc("f", nil)
	b := f.NewBlock()
	b.Append(OpUnreachable)
	b.Append(OpUnreachable)
	wantError(t, m, "before end of block")
}

func TestValidateBranchArity(t *testing.T) {
	m := NewModule()
	f := m.NewFunc("f", nil)
	entry := f.NewBlock()
	dest := f.NewBlock()
	dest.NewParam(ObjectType(), OwnershipOwned)
	dest.Append(OpUnreachable)

	br := entry.Append(OpBranch)
	br.Dest = dest
	wantError(t, m, "parameters")
}

func TestValidateTrivialValueWithOwnership(t *testing.T) {
	m := NewModule()
	f := m.NewFunc("f", nil)
	b := f.NewBlock()
	b.NewParam(TrivialType(), OwnershipOwned)
	b.Append(OpUnreachable)
	wantError(t, m, "trivial value carries")
}

func TestValidateCondBranchOperands(t *testing.T) {
	m := NewModule()
	f := m.NewFunc("f", nil)
	b := f.NewBlock()
	v := b.NewParam(ObjectType(), OwnershipOwned)
	b.Append(OpCondBranch, v)
	wantError(t, m, "cond_br")
}

func TestValidateYieldOutsideCoroutine(t *testing.T) {
	m := NewModule()
	f := m.NewFunc("f", &FnType{})
	b := f.NewBlock()
	b.Append(OpYield)
	wantError(t, m, "coroutine")
}

func TestValidateBeginApplyNeedsCoroutine(t *testing.T) {
	m := NewModule()
	f := m.NewFunc("f", nil)
	b := f.NewBlock()
	callee := b.NewParam(FnValueType(&FnType{}), OwnershipGuaranteed)
	b.Append(OpBeginApply, callee)
	b.Append(OpUnreachable)
	wantError(t, m, "begin_apply")
}

func TestValidateApplyArity(t *testing.T) {
	m := NewModule()
	f := m.NewFunc("f", nil)
	b := f.NewBlock()
	sig := &FnType{Params: []Convention{ConvDirectOwned}}
	callee := b.NewParam(FnValueType(sig), OwnershipGuaranteed)
	b.Append(OpApply, callee)
	b.Append(OpUnreachable)
	wantError(t, m, "operands")
}

func TestValidateApplyArityWithLoweredAddresses(t *testing.T) {
	m := NewModule()
	m.LoweredAddresses = true
	f := m.NewFunc("f", nil)
	b := f.NewBlock()
	sig := &FnType{
		Params:  []Convention{ConvDirectOwned},
		Results: []ResultConvention{ResultIndirect},
	}
	callee := b.NewParam(FnValueType(sig), OwnershipGuaranteed)
	// Missing the indirect result slot.
	b.Append(OpApply, callee, b.NewParam(ObjectType(), OwnershipOwned))
	b.Append(OpUnreachable)
	wantError(t, m, "operands")
}
