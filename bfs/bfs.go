// Package bfs provides breadth-first search over a network.Network.
package bfs

import (
	"github.com/katalvlaran/aomkin/network"
)

// queueItem pairs a state ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// BFS runs breadth-first search on n starting from startID.
// Arcs are visited in the network's deterministic adjacency order.
//
// Returns ErrNetworkNil, ErrStartStateNotFound, ErrOptionViolation, or any
// error returned by the OnVisit hook.
// Complexity: O(S + A) for S states and A arcs.
func BFS(n *network.Network, startID string, opts ...Option) (*BFSResult, error) {
	if n == nil {
		return nil, ErrNetworkNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if _, ok := n.StateIndex(startID); !ok {
		return nil, ErrStartStateNotFound
	}

	next := forwardNeighbors(n, o.FilterArc)
	if o.Reverse {
		next = reverseNeighbors(n, o.FilterArc)
	}

	size := n.NumStates()
	res := &BFSResult{
		Order:  make([]string, 0, size),
		Depth:  make(map[string]int, size),
		Parent: make(map[string]string, size),
	}
	queue := make([]queueItem, 0, size)
	queue = append(queue, queueItem{id: startID})
	res.Depth[startID] = 0

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		res.Order = append(res.Order, item.id)
		if err := o.OnVisit(item.id, item.depth); err != nil {
			return nil, err
		}
		if o.MaxDepth > 0 && item.depth >= o.MaxDepth {
			continue
		}
		for _, nb := range next[item.id] {
			if _, seen := res.Depth[nb]; seen {
				continue
			}
			res.Depth[nb] = item.depth + 1
			res.Parent[nb] = item.id
			queue = append(queue, queueItem{id: nb, depth: item.depth + 1})
		}
	}

	return res, nil
}

// forwardNeighbors maps each state to the targets of its admitted arcs.
func forwardNeighbors(n *network.Network, admit func(network.Arc) bool) map[string][]string {
	out := make(map[string][]string, n.NumStates())
	for _, a := range n.AllArcs() {
		if admit(a) {
			out[a.From] = append(out[a.From], a.To)
		}
	}

	return out
}

// reverseNeighbors maps each state to the sources of admitted arcs entering it.
func reverseNeighbors(n *network.Network, admit func(network.Arc) bool) map[string][]string {
	out := make(map[string][]string, n.NumStates())
	for _, a := range n.AllArcs() {
		if admit(a) {
			out[a.To] = append(out[a.To], a.From)
		}
	}

	return out
}
