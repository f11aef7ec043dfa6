// Package bfs provides breadth-first search over the arcs of a
// network.Network, returning visit order, depths and parent links.
//
// The kinetics engine uses it to decide irreducibility before a steady-state
// solve: restricted to arcs whose rate constant is strictly positive, the
// state graph must let every state reach every other one, or the stationary
// distribution is not unique. StronglyConnected performs that check with one
// forward and one reverse search from the first state.
//
// Hooks (OnVisit), depth limits and an arc filter are configured through
// functional options, as in the rest of the module.
package bfs
