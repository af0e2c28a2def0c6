package sema

import (
	"vesuvius/internal/ast"
	"vesuvius/internal/source"
)

// ObjectKind — вид объекта, зарегистрированного валидатором.
type ObjectKind uint8

const (
	ObjectModule ObjectKind = iota
	ObjectFunction
	ObjectVariable
)

func (k ObjectKind) String() string {
	switch k {
	case ObjectModule:
		return "Module"
	case ObjectFunction:
		return "Function"
	case ObjectVariable:
		return "Variable"
	}
	return "Object"
}

// Param is one function parameter as seen by the validator.
type Param struct {
	Name string
	Type ast.NodeID
}

// Object is a named entity: a module (imports and the global scope), a
// function or a variable. Only the fields of its Kind are meaningful.
type Object struct {
	Kind ObjectKind
	Name string
	Span source.Span
	Node ast.NodeID // NoNodeID для Global

	// Module
	members map[string]*Object
	order   []string

	// Function
	Params []Param
	Return ast.NodeID
	Body   []ast.NodeID

	// Variable
	Mutable bool
	Type    ast.NodeID
	Value   ast.NodeID
}

// NewModule creates an empty module object.
func NewModule(name string, span source.Span, node ast.NodeID) *Object {
	return &Object{
		Kind:    ObjectModule,
		Name:    name,
		Span:    span,
		Node:    node,
		members: make(map[string]*Object),
	}
}

// Lookup finds a direct member of a module.
func (o *Object) Lookup(name string) (*Object, bool) {
	if o == nil || o.members == nil {
		return nil, false
	}
	member, ok := o.members[name]
	return member, ok
}

// Names returns member names in definition order.
func (o *Object) Names() []string {
	if o == nil {
		return nil
	}
	return append([]string(nil), o.order...)
}

// Len — число членов модуля.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.order)
}

// define adds member unless the name is taken; returns the previous owner.
func (o *Object) define(member *Object) (*Object, bool) {
	if prev, ok := o.members[member.Name]; ok {
		return prev, false
	}
	o.members[member.Name] = member
	o.order = append(o.order, member.Name)
	return member, true
}
