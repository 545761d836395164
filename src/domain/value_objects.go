package domain

import (
	"errors"
)

var (
	ErrEntityNotFound = errors.New("entity not found")

	ErrValidation = errors.New("validation failed")

	// ErrUnknownGraphIdentifier is returned when a label or relationship type
	// outside the compiled-in set would be interpolated into a query.
	ErrUnknownGraphIdentifier = errors.New("unknown graph label or relationship type")

	ErrUnavailableServer = errors.New("Oops, something unexpected happened. Please try again later.")
)

// ############################################################
// ################ PATIENT NETWORK (SUBGRAPH) ################
// ############################################################

// NetworkNode is one node reached by the network traversal, kept untyped
// because the reachable kinds are heterogeneous.
type NetworkNode struct {
	ElementID  string
	Labels     []string
	Properties map[string]any
}

// NetworkEdge is one relationship reached by the network traversal.
type NetworkEdge struct {
	ElementID      string
	Type           string
	StartElementID string
	EndElementID   string
}

// Network is the connected neighborhood of a starting node. Nodes and edges
// are deduplicated by element id and kept in discovery order.
type Network struct {
	Nodes []NetworkNode
	Edges []NetworkEdge
}

// IsEmpty reports whether the traversal found nothing, the starting node included.
func (n Network) IsEmpty() bool {
	return len(n.Nodes) == 0
}
