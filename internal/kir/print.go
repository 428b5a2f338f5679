package kir

import (
	"fmt"
	"io"
	"strings"
)

// printer assigns stable %N names to values as they appear.
type printer struct {
	names map[*Value]string
	next  int
}

func newPrinter() *printer {
	return &printer{names: make(map[*Value]string)}
}

func (p *printer) name(v *Value) string {
	if v == nil {
		return "%<nil>"
	}
	if n, ok := p.names[v]; ok {
		return n
	}
	n := fmt.Sprintf("%%%d", p.next)
	p.next++
	p.names[v] = n
	return n
}

func (p *printer) instLine(inst *Instruction) string {
	if inst == nil {
		return "<nil instruction>"
	}
	var sb strings.Builder
	if len(inst.Results) > 0 {
		for i, r := range inst.Results {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.name(r))
		}
		sb.WriteString(" = ")
	}
	sb.WriteString(inst.Kind.String())
	if inst.Kind == OpBuiltin {
		sb.WriteString(" \"")
		sb.WriteString(inst.Builtin.String())
		sb.WriteString("\"")
	}
	if inst.OnStack {
		sb.WriteString(" [stack]")
	}
	for i, op := range inst.Operands {
		if i == 0 {
			sb.WriteString(" ")
		} else {
			sb.WriteString(", ")
		}
		if op == nil || op.Value == nil {
			sb.WriteString("<nil>")
			continue
		}
		sb.WriteString(p.name(op.Value))
		sb.WriteString(" : ")
		sb.WriteString(op.Value.Ownership.String())
	}
	if inst.Dest != nil {
		fmt.Fprintf(&sb, ", bb%d", inst.Dest.Index())
	}
	for _, d := range inst.Dests {
		if d != nil {
			fmt.Fprintf(&sb, ", bb%d", d.Index())
		}
	}
	return sb.String()
}

// SprintInst renders a single instruction, used for fatal diagnostics
// context. Value names are local to the call.
func SprintInst(inst *Instruction) string {
	return newPrinter().instLine(inst)
}

// DumpFunc writes a human-readable listing of one function.
func DumpFunc(w io.Writer, f *Func) error {
	if w == nil || f == nil {
		return nil
	}
	p := newPrinter()
	fmt.Fprintf(w, "fn %s:\n", f.Name)
	for bi, b := range f.Blocks {
		fmt.Fprintf(w, "bb%d", bi)
		if len(b.Params) > 0 {
			fmt.Fprint(w, "(")
			for i, param := range b.Params {
				if i > 0 {
					fmt.Fprint(w, ", ")
				}
				fmt.Fprintf(w, "%s : %s", p.name(param), param.Ownership)
			}
			fmt.Fprint(w, ")")
		}
		fmt.Fprintln(w, ":")
		for _, inst := range b.Instrs {
			fmt.Fprintf(w, "  %s\n", p.instLine(inst))
		}
	}
	return nil
}

// DumpModule writes a human-readable listing of every function.
func DumpModule(w io.Writer, m *Module) error {
	if w == nil || m == nil {
		return nil
	}
	for i, f := range m.Funcs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := DumpFunc(w, f); err != nil {
			return err
		}
	}
	return nil
}
