package kir

import (
	"bytes"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func buildWireModule() *Module {
	m := NewModule()
	m.LoweredAddresses = true

	calleeSig := &FnType{
		Callee:  ConvDirectGuaranteed,
		Params:  []Convention{ConvDirectOwned, ConvDirectGuaranteed},
		Results: []ResultConvention{ResultOwned},
	}
	f := m.NewFunc("main", &FnType{Results: []ResultConvention{ResultOwned}})

	entry := f.NewBlock()
	callee := entry.NewParam(FnValueType(calleeSig), OwnershipGuaranteed)
	arg := entry.NewParam(ObjectType(), OwnershipOwned)
	borrowed := entry.NewParam(ObjectType(), OwnershipGuaranteed)
	word := entry.NewParam(TrivialType(), OwnershipNone)

	call := entry.Append(OpApply, callee, arg, borrowed)
	res := call.NewResult(ObjectType(), OwnershipOwned)

	add := entry.Append(OpBuiltin, word)
	add.Builtin = BuiltinAdd

	dest := f.NewBlock()
	destParam := dest.NewParam(ObjectType(), OwnershipOwned)
	dest.Append(OpReturn, destParam)

	br := entry.Append(OpBranch, res)
	br.Dest = dest

	return m
}

func TestModuleRoundTrip(t *testing.T) {
	src := buildWireModule()
	if err := Validate(src); err != nil {
		t.Fatalf("source module invalid: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeModule(&buf, src); err != nil {
		t.Fatalf("EncodeModule: %v", err)
	}
	got, err := DecodeModule(&buf)
	if err != nil {
		t.Fatalf("DecodeModule: %v", err)
	}
	if err := Validate(got); err != nil {
		t.Fatalf("decoded module invalid: %v", err)
	}

	if got.LoweredAddresses != src.LoweredAddresses {
		t.Errorf("LoweredAddresses = %v", got.LoweredAddresses)
	}
	if len(got.Funcs) != 1 {
		t.Fatalf("decoded %d functions", len(got.Funcs))
	}
	f := got.Funcs[0]
	if f.Name != "main" || f.Sig == nil || len(f.Sig.Results) != 1 {
		t.Fatalf("function header lost: %+v", f)
	}
	if len(f.Blocks) != 2 {
		t.Fatalf("decoded %d blocks", len(f.Blocks))
	}

	entry := f.Blocks[0]
	if len(entry.Params) != 4 || len(entry.Instrs) != 3 {
		t.Fatalf("entry shape: %d params, %d instrs", len(entry.Params), len(entry.Instrs))
	}
	call := entry.Instrs[0]
	if call.Kind != OpApply {
		t.Fatalf("first instruction is %s", call.Kind)
	}
	sig := call.CalleeSig()
	if sig == nil || len(sig.Params) != 2 || sig.Params[0] != ConvDirectOwned {
		t.Errorf("callee signature lost: %+v", sig)
	}
	if call.Operands[1].Value != entry.Params[1] {
		t.Errorf("operand does not reference the decoded parameter")
	}
	if len(call.Results) != 1 || call.Results[0].Ownership != OwnershipOwned {
		t.Errorf("call results lost")
	}

	builtin := entry.Instrs[1]
	if builtin.Kind != OpBuiltin || builtin.Builtin != BuiltinAdd {
		t.Errorf("builtin lost: %s %s", builtin.Kind, builtin.Builtin)
	}

	br := entry.Instrs[2]
	if br.Kind != OpBranch || br.Dest != f.Blocks[1] {
		t.Errorf("branch destination lost")
	}
	if br.Operands[0].Value != call.Results[0] {
		t.Errorf("branch operand does not reference the call result")
	}
}

func TestDecodeRejectsWrongSchema(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeModule(&buf, NewModule()); err != nil {
		t.Fatalf("EncodeModule: %v", err)
	}
	var wm wireModule
	if err := msgpack.Unmarshal(buf.Bytes(), &wm); err != nil {
		t.Fatalf("unmarshal wire form: %v", err)
	}
	wm.Schema = wireSchemaVersion + 1
	raw, err := msgpack.Marshal(&wm)
	if err != nil {
		t.Fatalf("marshal wire form: %v", err)
	}
	if _, err := DecodeModule(bytes.NewReader(raw)); err == nil {
		t.Fatalf("wrong schema accepted")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := DecodeModule(bytes.NewReader([]byte("not msgpack"))); err == nil {
		t.Fatalf("garbage accepted")
	}
}

func TestDecodeRejectsUnknownKind(t *testing.T) {
	wm := wireModule{
		Schema: wireSchemaVersion,
		Funcs: []wireFunc{{
			Name: "f",
			Sig:  -1,
			Blocks: []wireBlock{{
				Instrs: []wireInstr{{Kind: uint16(OpKindCount), Dest: -1}},
			}},
		}},
	}
	raw, err := msgpack.Marshal(&wm)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, err := DecodeModule(bytes.NewReader(raw)); err == nil {
		t.Fatalf("unknown instruction kind accepted")
	}
}

func TestDecodeRejectsDanglingOperand(t *testing.T) {
	wm := wireModule{
		Schema: wireSchemaVersion,
		Funcs: []wireFunc{{
			Name: "f",
			Sig:  -1,
			Blocks: []wireBlock{{
				Instrs: []wireInstr{{
					Kind:     uint16(OpUnreachable),
					Operands: []int32{7},
					Dest:     -1,
				}},
			}},
		}},
	}
	raw, err := msgpack.Marshal(&wm)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, err := DecodeModule(bytes.NewReader(raw)); err == nil {
		t.Fatalf("dangling operand accepted")
	}
}
