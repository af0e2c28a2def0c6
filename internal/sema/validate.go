package sema

import (
	"fmt"

	"vesuvius/internal/ast"
	"vesuvius/internal/diag"
	"vesuvius/internal/source"
)

// Validate walks the top-level nodes of one parse and registers them in the
// Global module. The first fatal diagnostic is returned as error and
// validation stops: a duplicate name is a Validator error, a node kind that
// can not appear at top level is an Internal invariant violation.
func Validate(nodes *ast.Nodes, ids []ast.NodeID) (*Object, error) {
	v := validator{
		nodes:  nodes,
		global: NewModule(diag.Global().Name, source.Void(), ast.NoNodeID),
	}
	for _, id := range ids {
		if err := v.validateGlobal(diag.Global(), id); err != nil {
			return nil, err
		}
	}
	return v.global, nil
}

type validator struct {
	nodes  *ast.Nodes
	global *Object
}

func (v *validator) validateGlobal(ctx *diag.Context, id ast.NodeID) error {
	node := v.nodes.Get(id)
	if node == nil || !node.Kind.IsGlobal() {
		return diag.Internal("Invalid global node.")
	}

	var obj *Object
	switch node.Kind {
	case ast.ExternalImport, ast.LocalImport:
		imp, _ := v.nodes.Import(id)
		obj = NewModule(imp.Name, node.Span, id)

	case ast.DefineFunction:
		fn, _ := v.nodes.Function(id)
		var err error
		if obj, err = v.validateFunction(ctx, id, node.Span, *fn); err != nil {
			return err
		}

	case ast.InitializeVariable:
		data, _ := v.nodes.Variable(id)
		obj = &Object{
			Kind:    ObjectVariable,
			Name:    data.Name,
			Span:    node.Span,
			Node:    id,
			Mutable: data.Mutable,
			Type:    data.Type,
			Value:   data.Value,
		}
	}

	if prev, ok := v.global.define(obj); !ok {
		return alreadyDefined(ctx, obj.Name, obj.Span, prev.Span)
	}
	return nil
}

// validateFunction проверяет уникальность имён параметров в контексте функции.
func (v *validator) validateFunction(ctx *diag.Context, id ast.NodeID, span source.Span, fn ast.FunctionData) (*Object, error) {
	fnCtx := ctx.Child(fn.Name, span)
	seen := make(map[string]ast.Param, len(fn.Params))
	params := make([]Param, 0, len(fn.Params))
	for _, p := range fn.Params {
		if prev, ok := seen[p.Name]; ok {
			return nil, alreadyDefined(fnCtx, p.Name, p.Span, prev.Span)
		}
		seen[p.Name] = p
		params = append(params, Param{Name: p.Name, Type: p.Type})
	}
	return &Object{
		Kind:   ObjectFunction,
		Name:   fn.Name,
		Span:   span,
		Node:   id,
		Params: params,
		Return: fn.Return,
		Body:   fn.Body,
	}, nil
}

func alreadyDefined(ctx *diag.Context, name string, span, prev source.Span) error {
	return diag.Validator(diag.SemaName, ctx, span, fmt.Sprintf("Name `%s` is already defined.", name)).
		WithNote(prev, "Previously defined here.")
}
