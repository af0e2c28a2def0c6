// Package ast holds the syntax tree produced by the parser.
//
// Nodes live in arenas owned by a Builder and are addressed by 1-based
// NodeID; NoNodeID (0) marks an absent child such as a missing initializer.
// Each Node stores its Kind, Span and Headers; kind-specific fields sit in a
// payload arena selected by the kind (Functions, Variables, Binaries, ...).
// After parsing the tree is read-only.
package ast
