// Package sema registers top-level declarations into the Global module and
// reports name clashes. Type checking is out of scope; function bodies are
// carried through unchanged for later passes.
package sema
