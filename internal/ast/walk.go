package ast

// Children returns the direct sub-nodes of id in source order.
func (n *Nodes) Children(id NodeID) []NodeID {
	node := n.Get(id)
	if node == nil {
		return nil
	}
	var out []NodeID
	switch node.Kind {
	case DefineFunction:
		fn, _ := n.Function(id)
		for _, p := range fn.Params {
			out = append(out, p.Type)
		}
		out = append(out, fn.Return)
		out = append(out, fn.Body...)
	case InitializeVariable:
		v, _ := n.Variable(id)
		out = append(out, v.Type)
		if v.Value.IsValid() {
			out = append(out, v.Value)
		}
	case AssignVariable:
		a, _ := n.Assign(id)
		out = append(out, a.Target, a.Value)
	case Addition, Subtraction, Multiplication, Division, Power:
		bin, _ := n.Binary(id)
		out = append(out, bin.Left, bin.Right)
	case Invert, Opposite:
		u, _ := n.Unary(id)
		out = append(out, u.Value)
	case ModuleMember, ClassMember:
		m, _ := n.Member(id)
		out = append(out, m.Parent)
	case Slice:
		s, _ := n.SliceOf(id)
		out = append(out, s.Parent, s.Index)
	case Call:
		c, _ := n.CallOf(id)
		out = append(out, c.Parent)
		out = append(out, c.Args...)
	case Type:
		t, _ := n.TypeOf(id)
		out = append(out, t.Args...)
	}
	return out
}

// Walk visits id and its descendants depth-first. Returning false from visit
// skips the children of that node.
func (n *Nodes) Walk(id NodeID, visit func(id NodeID, depth int) bool) {
	n.walk(id, 0, visit)
}

func (n *Nodes) walk(id NodeID, depth int, visit func(NodeID, int) bool) {
	if !id.IsValid() || !visit(id, depth) {
		return
	}
	for _, child := range n.Children(id) {
		n.walk(child, depth+1, visit)
	}
}
