package ast

import (
	"strconv"
	"strings"

	"vesuvius/internal/token"
)

var binaryOps = map[NodeKind]string{
	Addition:       "+",
	Subtraction:    "-",
	Multiplication: "*",
	Division:       "/",
	Power:          "**",
}

// Format renders node id in a source-like form: binary operations fully
// parenthesized, member, slice and call chains left to right.
func (n *Nodes) Format(id NodeID) string {
	var b strings.Builder
	n.format(&b, id)
	return b.String()
}

// FormatAll renders each node on its own line.
func (n *Nodes) FormatAll(ids []NodeID) string {
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte('\n')
		}
		n.format(&b, id)
	}
	return b.String()
}

func (n *Nodes) format(b *strings.Builder, id NodeID) {
	node := n.Get(id)
	if node == nil {
		b.WriteString("<nil>")
		return
	}

	switch node.Kind {
	case ExternalImport, LocalImport:
		data, _ := n.Import(id)
		if node.Kind == ExternalImport {
			b.WriteString("extern ")
		} else {
			b.WriteString("use ")
		}
		b.WriteString(data.Name)

	case DefineFunction:
		fn, _ := n.Function(id)
		b.WriteString("func ")
		b.WriteString(fn.Name)
		b.WriteByte('(')
		for i, p := range fn.Params {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.Name)
			b.WriteString(": ")
			n.format(b, p.Type)
		}
		b.WriteString("): ")
		n.format(b, fn.Return)
		b.WriteString(" {")
		for i, stmt := range fn.Body {
			if i > 0 {
				b.WriteByte(' ')
			}
			n.format(b, stmt)
			b.WriteByte(';')
		}
		b.WriteByte('}')

	case InitializeVariable:
		v, _ := n.Variable(id)
		b.WriteString("let ")
		if v.Mutable {
			b.WriteString("mut ")
		}
		b.WriteString(v.Name)
		b.WriteString(": ")
		n.format(b, v.Type)
		if v.Value.IsValid() {
			b.WriteString(" = ")
			n.format(b, v.Value)
		}

	case AssignVariable:
		a, _ := n.Assign(id)
		n.format(b, a.Target)
		b.WriteString(" = ")
		n.format(b, a.Value)

	case Addition, Subtraction, Multiplication, Division, Power:
		bin, _ := n.Binary(id)
		b.WriteByte('(')
		n.format(b, bin.Left)
		b.WriteByte(' ')
		b.WriteString(binaryOps[node.Kind])
		b.WriteByte(' ')
		n.format(b, bin.Right)
		b.WriteByte(')')

	case Invert, Opposite:
		u, _ := n.Unary(id)
		if node.Kind == Invert {
			b.WriteString("(! ")
		} else {
			b.WriteString("(- ")
		}
		n.format(b, u.Value)
		b.WriteByte(')')

	case ModuleMember, ClassMember:
		m, _ := n.Member(id)
		n.format(b, m.Parent)
		if node.Kind == ModuleMember {
			b.WriteString("::")
		} else {
			b.WriteByte('.')
		}
		b.WriteString(m.Name)

	case Slice:
		s, _ := n.SliceOf(id)
		n.format(b, s.Parent)
		b.WriteByte('[')
		n.format(b, s.Index)
		b.WriteByte(']')

	case Call:
		c, _ := n.CallOf(id)
		n.format(b, c.Parent)
		b.WriteByte('(')
		n.formatList(b, c.Args)
		b.WriteByte(')')

	case Type:
		t, _ := n.TypeOf(id)
		if t.Inferred {
			b.WriteByte('?')
			return
		}
		b.WriteString(strings.Join(t.Parts, "::"))
		if len(t.Args) > 0 {
			b.WriteByte('<')
			n.formatList(b, t.Args)
			b.WriteByte('>')
		}

	case Literal:
		lit, _ := n.LiteralOf(id)
		b.WriteString(lit.String())

	default:
		b.WriteString("<" + node.Kind.String() + ">")
	}
}

func (n *Nodes) formatList(b *strings.Builder, ids []NodeID) {
	for i, id := range ids {
		if i > 0 {
			b.WriteString(", ")
		}
		n.format(b, id)
	}
}

// String renders the literal value in source form.
func (l LiteralData) String() string {
	switch l.Kind {
	case LitName:
		return l.Text
	case LitCharacter:
		return token.Quote(string(l.Char), '\'')
	case LitString:
		return token.Quote(l.Text, '"')
	case LitInteger:
		return strconv.FormatInt(l.Int, 10)
	case LitFloat:
		return token.FormatFloat(l.Float)
	}
	return "<literal>"
}
