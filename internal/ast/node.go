package ast

import (
	"strings"

	"vesuvius/internal/source"
)

// NodeKind is the closed set of syntax constructs.
type NodeKind uint8

const (
	NodeInvalid NodeKind = iota

	ExternalImport // extern name
	LocalImport    // use name

	DefineFunction     // func name(args): ret {body}
	InitializeVariable // let [mut] name[: T] [= value]
	AssignVariable     // target = value

	Addition       // l + r
	Subtraction    // l - r
	Multiplication // l * r
	Division       // l / r
	Power          // l ** r
	Invert         // !v
	Opposite       // -v

	ModuleMember // p::n
	ClassMember  // p.n
	Slice        // p[i]
	Call         // p(args)

	Type    // a::b<T>, or inferred
	Literal // name or literal value
)

var nodeKindNames = [...]string{
	NodeInvalid:        "Invalid",
	ExternalImport:     "ExternalImport",
	LocalImport:        "LocalImport",
	DefineFunction:     "DefineFunction",
	InitializeVariable: "InitializeVariable",
	AssignVariable:     "AssignVariable",
	Addition:           "Addition",
	Subtraction:        "Subtraction",
	Multiplication:     "Multiplication",
	Division:           "Division",
	Power:              "Power",
	Invert:             "Invert",
	Opposite:           "Opposite",
	ModuleMember:       "ModuleMember",
	ClassMember:        "ClassMember",
	Slice:              "Slice",
	Call:               "Call",
	Type:               "Type",
	Literal:            "Literal",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "Unknown"
}

// IsBinary reports whether k is one of the arithmetic binary operations.
func (k NodeKind) IsBinary() bool {
	return k >= Addition && k <= Power
}

// IsUnary reports whether k is a prefix operation.
func (k NodeKind) IsUnary() bool {
	return k == Invert || k == Opposite
}

// IsGlobal reports whether a node of kind k may appear at the top level.
func (k NodeKind) IsGlobal() bool {
	switch k {
	case ExternalImport, LocalImport, DefineFunction, InitializeVariable:
		return true
	default:
		return false
	}
}

// Headers are the flags set by #[name] annotations.
type Headers struct {
	IsEntry  bool
	IsStatic bool
	IsPublic bool
}

// Set turns on the flag called name. It reports false for unknown names.
func (h *Headers) Set(name string) bool {
	switch name {
	case "entry":
		h.IsEntry = true
	case "static":
		h.IsStatic = true
	case "public":
		h.IsPublic = true
	default:
		return false
	}
	return true
}

// Any reports whether at least one flag is set.
func (h Headers) Any() bool {
	return h.IsEntry || h.IsStatic || h.IsPublic
}

func (h Headers) String() string {
	var names []string
	if h.IsEntry {
		names = append(names, "entry")
	}
	if h.IsStatic {
		names = append(names, "static")
	}
	if h.IsPublic {
		names = append(names, "public")
	}
	return strings.Join(names, ",")
}

// Node is one AST construct. Kind-specific data lives in the payload arena
// selected by Kind.
type Node struct {
	Kind    NodeKind
	Span    source.Span
	Headers Headers
	Payload PayloadID
}
