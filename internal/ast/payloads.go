package ast

import "vesuvius/internal/source"

// ImportData backs ExternalImport and LocalImport.
type ImportData struct {
	Name string
}

// Param is one function argument.
type Param struct {
	Name string
	Type NodeID
	Span source.Span
}

// FunctionData backs DefineFunction.
type FunctionData struct {
	Name   string
	Params []Param
	Return NodeID
	Body   []NodeID
}

// VariableData backs InitializeVariable. Value is NoNodeID when the binding
// has no initializer.
type VariableData struct {
	Mutable bool
	Name    string
	Type    NodeID
	Value   NodeID
}

// AssignData backs AssignVariable.
type AssignData struct {
	Target NodeID
	Value  NodeID
}

// BinaryData backs Addition, Subtraction, Multiplication, Division and Power.
type BinaryData struct {
	Left  NodeID
	Right NodeID
}

// UnaryData backs Invert and Opposite.
type UnaryData struct {
	Value NodeID
}

// MemberData backs ModuleMember and ClassMember.
type MemberData struct {
	Parent NodeID
	Name   string
}

// SliceData backs Slice.
type SliceData struct {
	Parent NodeID
	Index  NodeID
}

// CallData backs Call.
type CallData struct {
	Parent NodeID
	Args   []NodeID
}

// TypeData backs Type. An inferred type has no parts.
type TypeData struct {
	Parts    []string
	Args     []NodeID
	Inferred bool
}

// LiteralKind selects the meaningful field of LiteralData.
type LiteralKind uint8

const (
	LitName LiteralKind = iota
	LitCharacter
	LitString
	LitInteger
	LitFloat
)

func (k LiteralKind) String() string {
	switch k {
	case LitName:
		return "Name"
	case LitCharacter:
		return "Character"
	case LitString:
		return "String"
	case LitInteger:
		return "Integer"
	case LitFloat:
		return "Float"
	}
	return "Unknown"
}

// LiteralData backs Literal. Text holds the name or string value.
type LiteralData struct {
	Kind  LiteralKind
	Text  string
	Char  rune
	Int   int64
	Float float64
}
