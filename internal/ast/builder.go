package ast

type Hints struct{ Nodes uint }

// Builder owns the node store for one parse.
type Builder struct {
	Nodes *Nodes
}

func NewBuilder(hints Hints) *Builder {
	if hints.Nodes == 0 {
		hints.Nodes = 1 << 8
	}
	return &Builder{
		Nodes: NewNodes(hints.Nodes),
	}
}

// SetHeaders replaces the headers of node id.
func (b *Builder) SetHeaders(id NodeID, h Headers) {
	if node := b.Nodes.Get(id); node != nil {
		node.Headers = h
	}
}
