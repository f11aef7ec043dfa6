package bfs

import (
	"github.com/katalvlaran/aomkin/network"
)

// StronglyConnected reports whether every state of n can reach every other
// state using only arcs accepted by admit (nil admits all). When it cannot,
// the returned slice lists, in state order, the states that are either not
// reachable from the first state or cannot reach it back.
//
// Complexity: two traversals, O(S + A).
func StronglyConnected(n *network.Network, admit func(network.Arc) bool) (bool, []string, error) {
	if n == nil {
		return false, nil, ErrNetworkNil
	}
	ids := n.StateIDs()
	if len(ids) == 0 {
		return true, nil, nil
	}

	fwd, err := BFS(n, ids[0], WithFilterArc(admit))
	if err != nil {
		return false, nil, err
	}
	rev, err := BFS(n, ids[0], WithFilterArc(admit), WithReverse())
	if err != nil {
		return false, nil, err
	}

	var stranded []string
	for _, id := range ids {
		if !fwd.Reached(id) || !rev.Reached(id) {
			stranded = append(stranded, id)
		}
	}

	return len(stranded) == 0, stranded, nil
}
