package ownership

import (
	"testing"

	"keel/internal/kir"
)

func testFunc(sig *kir.FnType) (*kir.Module, *kir.Block) {
	m := kir.NewModule()
	f := m.NewFunc("test", sig)
	return m, f.NewBlock()
}

func ownedIn(b *kir.Block) *kir.Value {
	return b.NewParam(kir.ObjectType(), kir.OwnershipOwned)
}

func guaranteedIn(b *kir.Block) *kir.Value {
	return b.NewParam(kir.ObjectType(), kir.OwnershipGuaranteed)
}

func trivialIn(b *kir.Block) *kir.Value {
	return b.NewParam(kir.TrivialType(), kir.OwnershipNone)
}

func addrIn(b *kir.Block) *kir.Value {
	return b.NewParam(kir.AddressType(), kir.OwnershipNone)
}

func expectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic")
		}
	}()
	fn()
}

func TestOpRulesTotal(t *testing.T) {
	for k := kir.OpKind(0); k < kir.OpKindCount; k++ {
		if opRules[k].policy == policyUnset {
			t.Errorf("no ownership policy for %s", k)
		}
	}
}

func TestBuiltinRulesTotal(t *testing.T) {
	for b := kir.Builtin(0); b < kir.BuiltinCount; b++ {
		if builtinRules[b].policy == policyUnset {
			t.Errorf("no ownership rule for builtin %s", b)
		}
	}
}

func TestFixedPolicies(t *testing.T) {
	mod, b := testFunc(nil)

	destroy := b.Append(kir.OpDestroyValue, ownedIn(b))
	m := Classify(destroy.Operands[0], mod)
	if c, ok := m.ConstraintFor(kir.OwnershipOwned); !ok || c != LifetimeEnding {
		t.Errorf("destroy_value: %s", m)
	}
	if m.Compatible(kir.OwnershipGuaranteed) {
		t.Errorf("destroy_value accepts guaranteed: %s", m)
	}

	endBorrow := b.Append(kir.OpEndBorrow, guaranteedIn(b))
	m = Classify(endBorrow.Operands[0], mod)
	if c, ok := m.ConstraintFor(kir.OwnershipGuaranteed); !ok || c != LifetimeEnding {
		t.Errorf("end_borrow: %s", m)
	}

	elem := b.Append(kir.OpRefElementAddr, guaranteedIn(b))
	m = Classify(elem.Operands[0], mod)
	if c, ok := m.ConstraintFor(kir.OwnershipGuaranteed); !ok || c != NonLifetimeEnding {
		t.Errorf("ref_element_addr: %s", m)
	}
	if m.Compatible(kir.OwnershipOwned) {
		t.Errorf("ref_element_addr accepts owned: %s", m)
	}

	copyVal := b.Append(kir.OpCopyValue, ownedIn(b))
	if m = Classify(copyVal.Operands[0], mod); !m.IsAllLive() {
		t.Errorf("copy_value: %s, want all-live", m)
	}
}

func TestForwardingMergesOperandKinds(t *testing.T) {
	mod, b := testFunc(nil)

	// An owned element joined with a trivial one forwards as owned, and
	// the constraint applies to both operands.
	pair := b.Append(kir.OpTuple, ownedIn(b), trivialIn(b))
	for _, op := range pair.Operands {
		m := Classify(op, mod)
		if c, ok := m.ConstraintFor(kir.OwnershipOwned); !ok || c != LifetimeEnding {
			t.Errorf("operand %d: %s", op.Index, m)
		}
	}

	// All-trivial aggregates place no constraint at all.
	flat := b.Append(kir.OpStruct, trivialIn(b), trivialIn(b))
	if m := Classify(flat.Operands[0], mod); !m.IsAllLive() {
		t.Errorf("trivial struct: %s, want all-live", m)
	}

	// Owned and guaranteed cannot join; every operand becomes incompatible.
	mixed := b.Append(kir.OpEnum, ownedIn(b), guaranteedIn(b))
	for _, op := range mixed.Operands {
		if m := Classify(op, mod); !m.IsEmpty() {
			t.Errorf("operand %d of a failed join: %s, want incompatible", op.Index, m)
		}
	}
}

func TestForwardingConsistentWithResultKind(t *testing.T) {
	mod, b := testFunc(nil)
	inst := b.Append(kir.OpTuple, ownedIn(b), trivialIn(b))
	res := inst.NewResult(kir.ObjectType(), kir.OwnershipOwned)

	m := Classify(inst.Operands[0], mod)
	c, ok := m.ConstraintFor(res.Ownership)
	if !ok || c != ForwardingConstraint(res.Ownership) {
		t.Fatalf("forwarded map %s disagrees with result kind %s", m, res.Ownership)
	}
}

func TestForwardFixedExtraction(t *testing.T) {
	mod, b := testFunc(nil)
	extract := b.Append(kir.OpStructExtract, guaranteedIn(b))
	m := Classify(extract.Operands[0], mod)
	if c, ok := m.ConstraintFor(kir.OwnershipGuaranteed); !ok || c != NonLifetimeEnding {
		t.Errorf("struct_extract: %s", m)
	}
	if m.Compatible(kir.OwnershipOwned) {
		t.Errorf("struct_extract accepts owned: %s", m)
	}

	markUninit := b.Append(kir.OpMarkUninitialized, ownedIn(b))
	m = Classify(markUninit.Operands[0], mod)
	if c, ok := m.ConstraintFor(kir.OwnershipOwned); !ok || c != LifetimeEnding {
		t.Errorf("mark_uninitialized: %s", m)
	}
}

func TestValueKindPolicies(t *testing.T) {
	mod, b := testFunc(nil)

	sw := b.Append(kir.OpSwitchEnum, ownedIn(b))
	m := Classify(sw.Operands[0], mod)
	if c, ok := m.ConstraintFor(kir.OwnershipOwned); !ok || c != LifetimeEnding {
		t.Errorf("switch_enum on owned: %s", m)
	}

	sw = b.Append(kir.OpSwitchEnum, guaranteedIn(b))
	m = Classify(sw.Operands[0], mod)
	if c, ok := m.ConstraintFor(kir.OwnershipGuaranteed); !ok || c != NonLifetimeEnding {
		t.Errorf("switch_enum on guaranteed: %s", m)
	}

	destructure := b.Append(kir.OpDestructureTuple, ownedIn(b))
	m = Classify(destructure.Operands[0], mod)
	if c, ok := m.ConstraintFor(kir.OwnershipOwned); !ok || c != LifetimeEnding {
		t.Errorf("destructure_tuple on owned: %s", m)
	}
}

func TestStoreLikeOperandRoles(t *testing.T) {
	mod, b := testFunc(nil)
	for _, kind := range []kir.OpKind{kir.OpStore, kir.OpAssign, kir.OpAssignByWrapper} {
		inst := b.Append(kind, ownedIn(b), addrIn(b))
		src := Classify(inst.Operands[0], mod)
		if c, ok := src.ConstraintFor(kir.OwnershipOwned); !ok || c != LifetimeEnding {
			t.Errorf("%s source: %s", kind, src)
		}
		if dst := Classify(inst.Operands[1], mod); !dst.IsAllLive() {
			t.Errorf("%s destination: %s, want all-live", kind, dst)
		}
	}

	borrow := b.Append(kir.OpStoreBorrow, guaranteedIn(b), addrIn(b))
	src := Classify(borrow.Operands[0], mod)
	if c, ok := src.ConstraintFor(kir.OwnershipGuaranteed); !ok || c != NonLifetimeEnding {
		t.Errorf("store_borrow source: %s", src)
	}
	if src.Compatible(kir.OwnershipOwned) {
		t.Errorf("store_borrow source accepts owned: %s", src)
	}
}

func TestBranchDestinationParams(t *testing.T) {
	mod := kir.NewModule()
	f := mod.NewFunc("test", nil)
	entry := f.NewBlock()
	dest := f.NewBlock()
	dest.NewParam(kir.ObjectType(), kir.OwnershipGuaranteed)
	dest.NewParam(kir.ObjectType(), kir.OwnershipOwned)
	dest.NewParam(kir.TrivialType(), kir.OwnershipNone)

	br := entry.Append(kir.OpBranch,
		guaranteedIn(entry), ownedIn(entry), trivialIn(entry))
	br.Dest = dest

	// The borrow ends at the jump; the destination opens its own scope.
	m := Classify(br.Operands[0], mod)
	if c, ok := m.ConstraintFor(kir.OwnershipGuaranteed); !ok || c != LifetimeEnding {
		t.Errorf("guaranteed dest param: %s", m)
	}
	m = Classify(br.Operands[1], mod)
	if c, ok := m.ConstraintFor(kir.OwnershipOwned); !ok || c != LifetimeEnding {
		t.Errorf("owned dest param: %s", m)
	}
	m = Classify(br.Operands[2], mod)
	if c, ok := m.ConstraintFor(kir.OwnershipNone); !ok || c != NonLifetimeEnding {
		t.Errorf("trivial dest param: %s", m)
	}
}

func TestMarkDependenceRoles(t *testing.T) {
	mod, b := testFunc(nil)
	inst := b.Append(kir.OpMarkDependence, ownedIn(b), guaranteedIn(b))

	value := Classify(inst.Operands[0], mod)
	if c, ok := value.ConstraintFor(kir.OwnershipOwned); !ok || c != LifetimeEnding {
		t.Errorf("value operand: %s", value)
	}
	// The base operand only needs to stay alive.
	if base := Classify(inst.Operands[1], mod); !base.IsAllLive() {
		t.Errorf("base operand: %s, want all-live", base)
	}

	trivial := b.Append(kir.OpMarkDependence, trivialIn(b), guaranteedIn(b))
	if m := Classify(trivial.Operands[0], mod); !m.IsAllLive() {
		t.Errorf("trivial value operand: %s, want all-live", m)
	}
}

func TestSelectEnumRoles(t *testing.T) {
	mod, b := testFunc(nil)
	inst := b.Append(kir.OpSelectEnum, ownedIn(b), ownedIn(b), trivialIn(b))

	if m := Classify(inst.Operands[0], mod); !m.IsAllLive() {
		t.Errorf("enum operand: %s, want all-live", m)
	}
	for _, op := range inst.Operands[1:] {
		m := Classify(op, mod)
		if c, ok := m.ConstraintFor(kir.OwnershipOwned); !ok || c != LifetimeEnding {
			t.Errorf("case operand %d: %s", op.Index, m)
		}
	}
}

func TestDeallocPartialRefRoles(t *testing.T) {
	mod, b := testFunc(nil)
	inst := b.Append(kir.OpDeallocPartialRef, ownedIn(b), trivialIn(b))
	instance := Classify(inst.Operands[0], mod)
	if c, ok := instance.ConstraintFor(kir.OwnershipOwned); !ok || c != LifetimeEnding {
		t.Errorf("instance operand: %s", instance)
	}
	if meta := Classify(inst.Operands[1], mod); !meta.IsAllLive() {
		t.Errorf("metatype operand: %s, want all-live", meta)
	}
}

func TestCopyBlockWithoutEscapingRoles(t *testing.T) {
	mod, b := testFunc(nil)
	inst := b.Append(kir.OpCopyBlockWithoutEscaping, ownedIn(b), ownedIn(b))
	if block := Classify(inst.Operands[0], mod); !block.IsAllLive() {
		t.Errorf("block operand: %s, want all-live", block)
	}
	closure := Classify(inst.Operands[1], mod)
	if c, ok := closure.ConstraintFor(kir.OwnershipOwned); !ok || c != LifetimeEnding {
		t.Errorf("closure operand: %s", closure)
	}
}

func TestPartialApplyCaptures(t *testing.T) {
	mod, b := testFunc(nil)
	callee := b.NewParam(kir.ThinFnValueType(&kir.FnType{}), kir.OwnershipNone)

	heap := b.Append(kir.OpPartialApply, callee, ownedIn(b))
	m := Classify(heap.Operands[1], mod)
	if c, ok := m.ConstraintFor(kir.OwnershipOwned); !ok || c != LifetimeEnding {
		t.Errorf("captured operand: %s", m)
	}

	stack := b.Append(kir.OpPartialApply, callee, ownedIn(b))
	stack.OnStack = true
	if m := Classify(stack.Operands[1], mod); !m.IsAllLive() {
		t.Errorf("stack capture: %s, want all-live", m)
	}
}

func TestBuiltinDispatch(t *testing.T) {
	mod, b := testFunc(nil)

	add := b.Append(kir.OpBuiltin, trivialIn(b), trivialIn(b))
	add.Builtin = kir.BuiltinAdd
	if m := Classify(add.Operands[0], mod); !m.IsAllLive() {
		t.Errorf("builtin add: %s, want all-live", m)
	}

	cow := b.Append(kir.OpBuiltin, ownedIn(b))
	cow.Builtin = kir.BuiltinCOWBufferForReading
	m := Classify(cow.Operands[0], mod)
	if c, ok := m.ConstraintFor(kir.OwnershipOwned); !ok || c != LifetimeEnding {
		t.Errorf("cow_buffer_for_reading: %s", m)
	}

	cancel := b.Append(kir.OpBuiltin, guaranteedIn(b))
	cancel.Builtin = kir.BuiltinCancelAsyncTask
	m = Classify(cancel.Operands[0], mod)
	if c, ok := m.ConstraintFor(kir.OwnershipGuaranteed); !ok || c != NonLifetimeEnding {
		t.Errorf("cancel_async_task: %s", m)
	}
}

func TestStructurallyImpossibleKindsPanic(t *testing.T) {
	mod, b := testFunc(nil)

	retain := b.Append(kir.OpStrongRetain, ownedIn(b))
	expectPanic(t, func() { Classify(retain.Operands[0], mod) })

	lowered := b.Append(kir.OpBuiltin, ownedIn(b))
	lowered.Builtin = kir.BuiltinRetain
	expectPanic(t, func() { Classify(lowered.Operands[0], mod) })

	task := b.Append(kir.OpBuiltin, trivialIn(b))
	task.Builtin = kir.BuiltinGetCurrentAsyncTask
	expectPanic(t, func() { Classify(task.Operands[0], mod) })

	expectPanic(t, func() { Classify(nil, mod) })
}
