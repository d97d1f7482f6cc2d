package ast

// NodeID identifies one node inside the builder's arena. IDs are assigned
// monotonically at construction and are used for diagnostics and graph
// dumps.
type NodeID uint32

// NoNodeID marks the absence of a node.
const NoNodeID NodeID = 0

func (id NodeID) IsValid() bool { return id != NoNodeID }
