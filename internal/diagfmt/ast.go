package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"vesuvius/internal/ast"
)

// FormatASTPretty печатает каждый верхнеуровневый узел в исходном виде,
// по одному на строку.
func FormatASTPretty(w io.Writer, nodes *ast.Nodes, ids []ast.NodeID) error {
	for _, id := range ids {
		if _, err := fmt.Fprintln(w, nodes.Format(id)); err != nil {
			return err
		}
	}
	return nil
}

type treeNode struct {
	label    string
	children []*treeNode
}

// FormatASTTree печатает дерево узлов с псевдографикой.
func FormatASTTree(w io.Writer, nodes *ast.Nodes, ids []ast.NodeID) error {
	var b strings.Builder
	for i, id := range ids {
		root := buildTreeNode(nodes, id)
		fmt.Fprintf(&b, "Node[%d]: %s\n", i, root.label)
		writeTreeChildren(&b, root.children, "")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeTreeChildren(b *strings.Builder, children []*treeNode, prefix string) {
	for i, child := range children {
		last := i == len(children)-1
		branch, next := "├─ ", "│  "
		if last {
			branch, next = "└─ ", "   "
		}
		b.WriteString(prefix + branch + child.label + "\n")
		writeTreeChildren(b, child.children, prefix+next)
	}
}

func nodeLabel(nodes *ast.Nodes, id ast.NodeID) string {
	node := nodes.Get(id)
	if node == nil {
		return "<nil>"
	}
	label := node.Kind.String()
	switch node.Kind {
	case ast.ExternalImport, ast.LocalImport:
		imp, _ := nodes.Import(id)
		label += " " + imp.Name
	case ast.DefineFunction:
		fn, _ := nodes.Function(id)
		label += " " + fn.Name
	case ast.InitializeVariable:
		v, _ := nodes.Variable(id)
		if v.Mutable {
			label += " mut"
		}
		label += " " + v.Name
	case ast.ModuleMember, ast.ClassMember:
		m, _ := nodes.Member(id)
		label += " " + m.Name
	case ast.Type, ast.Literal:
		label += " " + nodes.Format(id)
	}
	if node.Headers.Any() {
		label += " #[" + node.Headers.String() + "]"
	}
	return fmt.Sprintf("%s (span: %s)", label, formatSpan(node.Span))
}

func buildTreeNode(nodes *ast.Nodes, id ast.NodeID) *treeNode {
	tn := &treeNode{label: nodeLabel(nodes, id)}
	node := nodes.Get(id)
	if node == nil {
		return tn
	}

	switch node.Kind {
	case ast.DefineFunction:
		fn, _ := nodes.Function(id)
		params := &treeNode{label: "Params"}
		for _, p := range fn.Params {
			params.children = append(params.children, &treeNode{
				label:    "Param " + p.Name,
				children: []*treeNode{buildTreeNode(nodes, p.Type)},
			})
		}
		if len(params.children) == 0 {
			params.label = "Params: <none>"
		}
		body := &treeNode{label: "Body"}
		for _, stmt := range fn.Body {
			body.children = append(body.children, buildTreeNode(nodes, stmt))
		}
		if len(body.children) == 0 {
			body.label = "Body: <empty>"
		}
		tn.children = append(tn.children,
			params,
			&treeNode{label: "Return", children: []*treeNode{buildTreeNode(nodes, fn.Return)}},
			body,
		)
	case ast.Type:
		// аргументы типа уже в метке
	default:
		for _, child := range nodes.Children(id) {
			tn.children = append(tn.children, buildTreeNode(nodes, child))
		}
	}
	return tn
}

// ASTNodeOutput — узел в JSON выводе.
type ASTNodeOutput struct {
	Kind     string          `json:"kind"`
	Span     SpanOutput      `json:"span"`
	Headers  []string        `json:"headers,omitempty"`
	Fields   map[string]any  `json:"fields,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// FormatASTJSON выводит узлы в JSON формате.
func FormatASTJSON(w io.Writer, nodes *ast.Nodes, ids []ast.NodeID) error {
	output := make([]ASTNodeOutput, 0, len(ids))
	for _, id := range ids {
		node, err := buildNodeJSON(nodes, id)
		if err != nil {
			return err
		}
		output = append(output, node)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func buildNodeJSON(nodes *ast.Nodes, id ast.NodeID) (ASTNodeOutput, error) {
	node := nodes.Get(id)
	if node == nil {
		return ASTNodeOutput{}, fmt.Errorf("node %d not found", id)
	}
	out := ASTNodeOutput{
		Kind: node.Kind.String(),
		Span: makeSpanOutput(node.Span),
	}
	if node.Headers.Any() {
		out.Headers = strings.Split(node.Headers.String(), ",")
	}

	fields := map[string]any{}
	switch node.Kind {
	case ast.ExternalImport, ast.LocalImport:
		imp, _ := nodes.Import(id)
		fields["name"] = imp.Name
	case ast.DefineFunction:
		fn, _ := nodes.Function(id)
		fields["name"] = fn.Name
		params := make([]map[string]string, 0, len(fn.Params))
		for _, p := range fn.Params {
			params = append(params, map[string]string{"name": p.Name, "type": nodes.Format(p.Type)})
		}
		fields["params"] = params
		fields["return"] = nodes.Format(fn.Return)
	case ast.InitializeVariable:
		v, _ := nodes.Variable(id)
		fields["name"] = v.Name
		fields["mutable"] = v.Mutable
	case ast.ModuleMember, ast.ClassMember:
		m, _ := nodes.Member(id)
		fields["name"] = m.Name
	case ast.Type:
		t, _ := nodes.TypeOf(id)
		fields["type"] = nodes.Format(id)
		fields["inferred"] = t.Inferred
	case ast.Literal:
		lit, _ := nodes.LiteralOf(id)
		fields["literal"] = lit.Kind.String()
		fields["value"] = lit.String()
	}
	if len(fields) > 0 {
		out.Fields = fields
	}

	var children []ast.NodeID
	switch node.Kind {
	case ast.DefineFunction:
		fn, _ := nodes.Function(id)
		children = fn.Body
	case ast.Type:
	default:
		children = nodes.Children(id)
	}
	for _, child := range children {
		c, err := buildNodeJSON(nodes, child)
		if err != nil {
			return ASTNodeOutput{}, err
		}
		out.Children = append(out.Children, c)
	}
	return out, nil
}
