package ast

type (
	// NodeID addresses a node in Nodes; zero means "absent".
	NodeID uint32
	// PayloadID addresses kind-specific data in the matching payload arena.
	PayloadID uint32
)

const (
	NoNodeID    NodeID    = 0
	NoPayloadID PayloadID = 0
)

func (id NodeID) IsValid() bool    { return id != NoNodeID }
func (id PayloadID) IsValid() bool { return id != NoPayloadID }
