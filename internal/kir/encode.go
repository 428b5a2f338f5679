package kir

import (
	"fmt"
	"io"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"
)

// Wire schema version - increment when the wire layout changes.
const wireSchemaVersion uint16 = 1

// The wire form flattens the pointer graph: types and signatures are
// interned into tables, values are numbered per function in block order
// (parameters first, then instruction results), and operands reference
// those numbers.

type wireModule struct {
	Schema           uint16
	LoweredAddresses bool
	Types            []wireType
	Sigs             []wireSig
	Funcs            []wireFunc
}

type wireType struct {
	Address bool
	Trivial bool
	Sig     int32 // index into Sigs, -1 when not function-typed
}

type wireSig struct {
	Callee    uint8
	Params    []uint8
	Yields    []uint8
	Results   []uint8
	NoEscape  bool
	Coroutine bool
}

type wireValue struct {
	Type      int32
	Ownership uint8
}

type wireInstr struct {
	Kind             uint16
	Operands         []int32
	Results          []wireValue
	Dest             int32
	Dests            []int32
	Builtin          uint16
	OnStack          bool
	NumTypeDependent int32
}

type wireBlock struct {
	Params []wireValue
	Instrs []wireInstr
}

type wireFunc struct {
	Name   string
	Sig    int32
	Blocks []wireBlock
}

type encoder struct {
	out     wireModule
	typeIDs map[*Type]int32
	sigIDs  map[*FnType]int32
}

// EncodeModule serializes the module to its wire form.
func EncodeModule(w io.Writer, m *Module) error {
	if m == nil {
		return fmt.Errorf("encode: nil module")
	}
	e := &encoder{
		typeIDs: make(map[*Type]int32),
		sigIDs:  make(map[*FnType]int32),
	}
	e.out.Schema = wireSchemaVersion
	e.out.LoweredAddresses = m.LoweredAddresses
	for _, f := range m.Funcs {
		wf, err := e.encodeFunc(f)
		if err != nil {
			return fmt.Errorf("encode function %s: %w", f.Name, err)
		}
		e.out.Funcs = append(e.out.Funcs, wf)
	}
	return msgpack.NewEncoder(w).Encode(&e.out)
}

func (e *encoder) sigID(sig *FnType) (int32, error) {
	if sig == nil {
		return -1, nil
	}
	if id, ok := e.sigIDs[sig]; ok {
		return id, nil
	}
	ws := wireSig{
		Callee:    uint8(sig.Callee),
		NoEscape:  sig.NoEscape,
		Coroutine: sig.Coroutine,
	}
	for _, c := range sig.Params {
		ws.Params = append(ws.Params, uint8(c))
	}
	for _, c := range sig.Yields {
		ws.Yields = append(ws.Yields, uint8(c))
	}
	for _, r := range sig.Results {
		ws.Results = append(ws.Results, uint8(r))
	}
	id, err := safecast.Conv[int32](len(e.out.Sigs))
	if err != nil {
		return -1, fmt.Errorf("signature table overflow: %w", err)
	}
	e.out.Sigs = append(e.out.Sigs, ws)
	e.sigIDs[sig] = id
	return id, nil
}

func (e *encoder) typeID(t *Type) (int32, error) {
	if t == nil {
		return -1, fmt.Errorf("value without type")
	}
	if id, ok := e.typeIDs[t]; ok {
		return id, nil
	}
	sid, err := e.sigID(t.Fn)
	if err != nil {
		return -1, err
	}
	id, err := safecast.Conv[int32](len(e.out.Types))
	if err != nil {
		return -1, fmt.Errorf("type table overflow: %w", err)
	}
	e.out.Types = append(e.out.Types, wireType{Address: t.Address, Trivial: t.Trivial, Sig: sid})
	e.typeIDs[t] = id
	return id, nil
}

func (e *encoder) encodeValue(v *Value) (wireValue, error) {
	tid, err := e.typeID(v.Type)
	if err != nil {
		return wireValue{}, err
	}
	return wireValue{Type: tid, Ownership: uint8(v.Ownership)}, nil
}

func (e *encoder) encodeFunc(f *Func) (wireFunc, error) {
	if f == nil {
		return wireFunc{}, fmt.Errorf("nil function")
	}
	sid, err := e.sigID(f.Sig)
	if err != nil {
		return wireFunc{}, err
	}
	wf := wireFunc{Name: f.Name, Sig: sid}

	valueIDs := make(map[*Value]int32)
	nextValue := int32(0)
	number := func(v *Value) {
		valueIDs[v] = nextValue
		nextValue++
	}
	blockIdx := make(map[*Block]int32, len(f.Blocks))
	for i, b := range f.Blocks {
		bi, err := safecast.Conv[int32](i)
		if err != nil {
			return wireFunc{}, fmt.Errorf("block table overflow: %w", err)
		}
		blockIdx[b] = bi
		for _, param := range b.Params {
			number(param)
		}
		for _, inst := range b.Instrs {
			for _, r := range inst.Results {
				number(r)
			}
		}
	}

	for _, b := range f.Blocks {
		var wb wireBlock
		for _, param := range b.Params {
			wv, err := e.encodeValue(param)
			if err != nil {
				return wireFunc{}, err
			}
			wb.Params = append(wb.Params, wv)
		}
		for _, inst := range b.Instrs {
			wi := wireInstr{
				Kind:    uint16(inst.Kind),
				Dest:    -1,
				Builtin: uint16(inst.Builtin),
				OnStack: inst.OnStack,
			}
			ntd, err := safecast.Conv[int32](inst.NumTypeDependent)
			if err != nil {
				return wireFunc{}, fmt.Errorf("type-dependent count overflow: %w", err)
			}
			wi.NumTypeDependent = ntd
			for _, op := range inst.Operands {
				id, ok := valueIDs[op.Value]
				if !ok {
					return wireFunc{}, fmt.Errorf("%s references a value outside the function", inst.Kind)
				}
				wi.Operands = append(wi.Operands, id)
			}
			for _, r := range inst.Results {
				wv, err := e.encodeValue(r)
				if err != nil {
					return wireFunc{}, err
				}
				wi.Results = append(wi.Results, wv)
			}
			if inst.Dest != nil {
				bi, ok := blockIdx[inst.Dest]
				if !ok {
					return wireFunc{}, fmt.Errorf("%s destination outside the function", inst.Kind)
				}
				wi.Dest = bi
			}
			for _, d := range inst.Dests {
				bi, ok := blockIdx[d]
				if !ok {
					return wireFunc{}, fmt.Errorf("%s successor outside the function", inst.Kind)
				}
				wi.Dests = append(wi.Dests, bi)
			}
			wb.Instrs = append(wb.Instrs, wi)
		}
		wf.Blocks = append(wf.Blocks, wb)
	}
	return wf, nil
}

// DecodeModule reads a module from its wire form.
func DecodeModule(r io.Reader) (*Module, error) {
	var wm wireModule
	if err := msgpack.NewDecoder(r).Decode(&wm); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if wm.Schema != wireSchemaVersion {
		return nil, fmt.Errorf("decode: wire schema %d, want %d", wm.Schema, wireSchemaVersion)
	}

	sigs := make([]*FnType, len(wm.Sigs))
	for i, ws := range wm.Sigs {
		sig := &FnType{
			Callee:    Convention(ws.Callee),
			NoEscape:  ws.NoEscape,
			Coroutine: ws.Coroutine,
		}
		for _, c := range ws.Params {
			sig.Params = append(sig.Params, Convention(c))
		}
		for _, c := range ws.Yields {
			sig.Yields = append(sig.Yields, Convention(c))
		}
		for _, rc := range ws.Results {
			sig.Results = append(sig.Results, ResultConvention(rc))
		}
		sigs[i] = sig
	}
	sigAt := func(id int32) (*FnType, error) {
		if id == -1 {
			return nil, nil
		}
		if id < 0 || int(id) >= len(sigs) {
			return nil, fmt.Errorf("decode: signature index %d out of range", id)
		}
		return sigs[id], nil
	}

	types := make([]*Type, len(wm.Types))
	for i, wt := range wm.Types {
		sig, err := sigAt(wt.Sig)
		if err != nil {
			return nil, err
		}
		types[i] = &Type{Address: wt.Address, Trivial: wt.Trivial, Fn: sig}
	}
	typeAt := func(id int32) (*Type, error) {
		if id < 0 || int(id) >= len(types) {
			return nil, fmt.Errorf("decode: type index %d out of range", id)
		}
		return types[id], nil
	}

	m := &Module{LoweredAddresses: wm.LoweredAddresses}
	for _, wf := range wm.Funcs {
		sig, err := sigAt(wf.Sig)
		if err != nil {
			return nil, fmt.Errorf("decode function %s: %w", wf.Name, err)
		}
		f := m.NewFunc(wf.Name, sig)

		// First pass: materialize blocks, parameters, instructions and
		// results so operand and successor references can resolve.
		var values []*Value
		for _, wb := range wf.Blocks {
			b := f.NewBlock()
			for _, wv := range wb.Params {
				t, err := typeAt(wv.Type)
				if err != nil {
					return nil, fmt.Errorf("decode function %s: %w", wf.Name, err)
				}
				values = append(values, b.NewParam(t, Ownership(wv.Ownership)))
			}
			for _, wi := range wb.Instrs {
				if OpKind(wi.Kind) >= OpKindCount {
					return nil, fmt.Errorf("decode function %s: unknown instruction kind %d", wf.Name, wi.Kind)
				}
				inst := b.Append(OpKind(wi.Kind))
				inst.Builtin = Builtin(wi.Builtin)
				inst.OnStack = wi.OnStack
				inst.NumTypeDependent = int(wi.NumTypeDependent)
				for _, wv := range wi.Results {
					t, err := typeAt(wv.Type)
					if err != nil {
						return nil, fmt.Errorf("decode function %s: %w", wf.Name, err)
					}
					values = append(values, inst.NewResult(t, Ownership(wv.Ownership)))
				}
			}
		}

		// Second pass: wire operands and successors.
		blockAt := func(id int32) (*Block, error) {
			if id < 0 || int(id) >= len(f.Blocks) {
				return nil, fmt.Errorf("block index %d out of range", id)
			}
			return f.Blocks[id], nil
		}
		for bi, wb := range wf.Blocks {
			b := f.Blocks[bi]
			for ii, wi := range wb.Instrs {
				inst := b.Instrs[ii]
				for oi, vid := range wi.Operands {
					if vid < 0 || int(vid) >= len(values) {
						return nil, fmt.Errorf("decode function %s: operand value %d out of range", wf.Name, vid)
					}
					inst.Operands = append(inst.Operands, &Operand{
						Owner: inst,
						Index: oi,
						Value: values[vid],
					})
				}
				if wi.Dest != -1 {
					dest, err := blockAt(wi.Dest)
					if err != nil {
						return nil, fmt.Errorf("decode function %s: %w", wf.Name, err)
					}
					inst.Dest = dest
				}
				for _, did := range wi.Dests {
					d, err := blockAt(did)
					if err != nil {
						return nil, fmt.Errorf("decode function %s: %w", wf.Name, err)
					}
					inst.Dests = append(inst.Dests, d)
				}
			}
		}
	}
	return m, nil
}
