package ast

import (
	"vesuvius/internal/source"
)

// Nodes manages allocation of nodes and their per-kind payloads.
type Nodes struct {
	Arena     *Arena[Node]
	Imports   *Arena[ImportData]
	Functions *Arena[FunctionData]
	Variables *Arena[VariableData]
	Assigns   *Arena[AssignData]
	Binaries  *Arena[BinaryData]
	Unaries   *Arena[UnaryData]
	Members   *Arena[MemberData]
	Slices    *Arena[SliceData]
	Calls     *Arena[CallData]
	Types     *Arena[TypeData]
	Literals  *Arena[LiteralData]
}

// NewNodes creates a new Nodes with per-kind arenas preallocated using capHint as the initial capacity.
// If capHint is 0, a default capacity of 1<<8 is used.
func NewNodes(capHint uint) *Nodes {
	if capHint == 0 {
		capHint = 1 << 8
	}
	small := capHint/8 + 1
	return &Nodes{
		Arena:     NewArena[Node](capHint),
		Imports:   NewArena[ImportData](small),
		Functions: NewArena[FunctionData](small),
		Variables: NewArena[VariableData](small),
		Assigns:   NewArena[AssignData](small),
		Binaries:  NewArena[BinaryData](capHint),
		Unaries:   NewArena[UnaryData](small),
		Members:   NewArena[MemberData](small),
		Slices:    NewArena[SliceData](small),
		Calls:     NewArena[CallData](small),
		Types:     NewArena[TypeData](capHint),
		Literals:  NewArena[LiteralData](capHint),
	}
}

func (n *Nodes) new(kind NodeKind, span source.Span, payload uint32) NodeID {
	return NodeID(n.Arena.Allocate(Node{
		Kind:    kind,
		Span:    span,
		Payload: PayloadID(payload),
	}))
}

// Get returns the node with the given ID.
func (n *Nodes) Get(id NodeID) *Node {
	return n.Arena.Get(uint32(id))
}

// Len returns the number of allocated nodes.
func (n *Nodes) Len() int {
	return int(n.Arena.Len())
}

func (n *Nodes) payload(id NodeID, kinds ...NodeKind) (PayloadID, bool) {
	node := n.Get(id)
	if node == nil {
		return NoPayloadID, false
	}
	for _, k := range kinds {
		if node.Kind == k {
			return node.Payload, true
		}
	}
	return NoPayloadID, false
}

// NewImport creates an ExternalImport or LocalImport node.
func (n *Nodes) NewImport(kind NodeKind, span source.Span, name string) NodeID {
	return n.new(kind, span, n.Imports.Allocate(ImportData{Name: name}))
}

// Import returns the import data for the given node ID.
func (n *Nodes) Import(id NodeID) (*ImportData, bool) {
	p, ok := n.payload(id, ExternalImport, LocalImport)
	if !ok {
		return nil, false
	}
	return n.Imports.Get(uint32(p)), true
}

// NewFunction creates a DefineFunction node.
func (n *Nodes) NewFunction(span source.Span, data FunctionData) NodeID {
	return n.new(DefineFunction, span, n.Functions.Allocate(data))
}

// Function returns the function data for the given node ID.
func (n *Nodes) Function(id NodeID) (*FunctionData, bool) {
	p, ok := n.payload(id, DefineFunction)
	if !ok {
		return nil, false
	}
	return n.Functions.Get(uint32(p)), true
}

// NewVariable creates an InitializeVariable node.
func (n *Nodes) NewVariable(span source.Span, data VariableData) NodeID {
	return n.new(InitializeVariable, span, n.Variables.Allocate(data))
}

// Variable returns the variable data for the given node ID.
func (n *Nodes) Variable(id NodeID) (*VariableData, bool) {
	p, ok := n.payload(id, InitializeVariable)
	if !ok {
		return nil, false
	}
	return n.Variables.Get(uint32(p)), true
}

// NewAssign creates an AssignVariable node.
func (n *Nodes) NewAssign(span source.Span, target, value NodeID) NodeID {
	return n.new(AssignVariable, span, n.Assigns.Allocate(AssignData{Target: target, Value: value}))
}

// Assign returns the assignment data for the given node ID.
func (n *Nodes) Assign(id NodeID) (*AssignData, bool) {
	p, ok := n.payload(id, AssignVariable)
	if !ok {
		return nil, false
	}
	return n.Assigns.Get(uint32(p)), true
}

// NewBinary creates a binary operation node. The span covers both operands.
func (n *Nodes) NewBinary(kind NodeKind, left, right NodeID) NodeID {
	span := n.spanOf(left).Cover(n.spanOf(right))
	return n.new(kind, span, n.Binaries.Allocate(BinaryData{Left: left, Right: right}))
}

// Binary returns the binary operation data for the given node ID.
func (n *Nodes) Binary(id NodeID) (*BinaryData, bool) {
	p, ok := n.payload(id, Addition, Subtraction, Multiplication, Division, Power)
	if !ok {
		return nil, false
	}
	return n.Binaries.Get(uint32(p)), true
}

// NewUnary creates an Invert or Opposite node.
func (n *Nodes) NewUnary(kind NodeKind, span source.Span, value NodeID) NodeID {
	return n.new(kind, span, n.Unaries.Allocate(UnaryData{Value: value}))
}

// Unary returns the unary operation data for the given node ID.
func (n *Nodes) Unary(id NodeID) (*UnaryData, bool) {
	p, ok := n.payload(id, Invert, Opposite)
	if !ok {
		return nil, false
	}
	return n.Unaries.Get(uint32(p)), true
}

// NewMember creates a ModuleMember or ClassMember node.
func (n *Nodes) NewMember(kind NodeKind, span source.Span, parent NodeID, name string) NodeID {
	return n.new(kind, span, n.Members.Allocate(MemberData{Parent: parent, Name: name}))
}

// Member returns the member access data for the given node ID.
func (n *Nodes) Member(id NodeID) (*MemberData, bool) {
	p, ok := n.payload(id, ModuleMember, ClassMember)
	if !ok {
		return nil, false
	}
	return n.Members.Get(uint32(p)), true
}

// NewSlice creates a Slice node.
func (n *Nodes) NewSlice(span source.Span, parent, index NodeID) NodeID {
	return n.new(Slice, span, n.Slices.Allocate(SliceData{Parent: parent, Index: index}))
}

// SliceOf returns the slice data for the given node ID.
func (n *Nodes) SliceOf(id NodeID) (*SliceData, bool) {
	p, ok := n.payload(id, Slice)
	if !ok {
		return nil, false
	}
	return n.Slices.Get(uint32(p)), true
}

// NewCall creates a Call node.
func (n *Nodes) NewCall(span source.Span, parent NodeID, args []NodeID) NodeID {
	return n.new(Call, span, n.Calls.Allocate(CallData{Parent: parent, Args: args}))
}

// CallOf returns the call data for the given node ID.
func (n *Nodes) CallOf(id NodeID) (*CallData, bool) {
	p, ok := n.payload(id, Call)
	if !ok {
		return nil, false
	}
	return n.Calls.Get(uint32(p)), true
}

// NewType creates a Type node naming parts joined by "::" with optional arguments.
func (n *Nodes) NewType(span source.Span, parts []string, args []NodeID) NodeID {
	return n.new(Type, span, n.Types.Allocate(TypeData{Parts: parts, Args: args}))
}

// NewInferredType creates a Type node standing for an omitted annotation.
func (n *Nodes) NewInferredType(span source.Span) NodeID {
	return n.new(Type, span, n.Types.Allocate(TypeData{Inferred: true}))
}

// TypeOf returns the type data for the given node ID.
func (n *Nodes) TypeOf(id NodeID) (*TypeData, bool) {
	p, ok := n.payload(id, Type)
	if !ok {
		return nil, false
	}
	return n.Types.Get(uint32(p)), true
}

// NewLiteral creates a Literal node.
func (n *Nodes) NewLiteral(span source.Span, data LiteralData) NodeID {
	return n.new(Literal, span, n.Literals.Allocate(data))
}

// LiteralOf returns the literal data for the given node ID.
func (n *Nodes) LiteralOf(id NodeID) (*LiteralData, bool) {
	p, ok := n.payload(id, Literal)
	if !ok {
		return nil, false
	}
	return n.Literals.Get(uint32(p)), true
}

func (n *Nodes) spanOf(id NodeID) source.Span {
	if node := n.Get(id); node != nil {
		return node.Span
	}
	return source.Void()
}
