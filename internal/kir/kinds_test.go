package kir

import "testing"

func TestOpNamesTotal(t *testing.T) {
	seen := make(map[string]OpKind, OpKindCount)
	for k := OpKind(0); k < OpKindCount; k++ {
		name := opNames[k]
		if name == "" {
			t.Errorf("kind %d has no mnemonic", k)
			continue
		}
		if prev, dup := seen[name]; dup {
			t.Errorf("kinds %d and %d share mnemonic %q", prev, k, name)
		}
		seen[name] = k
	}
}

func TestOpKindStringOutOfRange(t *testing.T) {
	if got := OpKindCount.String(); got != "unknown_op" {
		t.Errorf("out-of-range String() = %q", got)
	}
}

func TestBuiltinNamesTotal(t *testing.T) {
	seen := make(map[string]Builtin, BuiltinCount)
	for b := Builtin(0); b < BuiltinCount; b++ {
		name := builtinNames[b]
		if name == "" {
			t.Errorf("builtin %d has no name", b)
			continue
		}
		if prev, dup := seen[name]; dup {
			t.Errorf("builtins %d and %d share name %q", prev, b, name)
		}
		seen[name] = b
	}
}

func TestIsTerminator(t *testing.T) {
	terminators := []OpKind{
		OpUnreachable, OpReturn, OpThrow, OpUnwind, OpYield, OpBranch,
		OpCondBranch, OpSwitchValue, OpSwitchEnum, OpSwitchEnumAddr,
		OpCheckedCastBranch, OpCheckedCastValueBranch, OpCheckedCastAddrBranch,
		OpDynamicMethodBranch, OpTryApply, OpAwaitAsyncContinuation,
	}
	isTerm := make(map[OpKind]bool, len(terminators))
	for _, k := range terminators {
		isTerm[k] = true
	}
	for k := OpKind(0); k < OpKindCount; k++ {
		if got := k.IsTerminator(); got != isTerm[k] {
			t.Errorf("%s.IsTerminator() = %v, want %v", k, got, isTerm[k])
		}
	}
}
