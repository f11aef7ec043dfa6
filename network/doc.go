// Package network defines the reaction-network graph the kinetics engine
// evaluates: catalytic site States (vertices) joined by reversible elementary
// Steps (edges).
//
// Every Step has a direction of reference (From → To, the "forward" sense),
// a Kind (electrochemical steps take rates from a kinetics law and depend on
// η and pH; chemical steps use a barrier law only) and an optional branch
// Group. Steps that share a Group are parallel channels whose fluxes are
// reported as one aggregate (LH: r2 = r21 + r22).
//
// A Network is mutable while it is assembled and immutable once Seal
// succeeds. All methods are safe for concurrent use: a sealed network is
// read by every sweep worker without copying.
//
// Each reversible Step contributes two Arcs to the state graph: the forward
// arc From→To and the backward arc To→From. Arcs are what reachability
// (package bfs) and the generator assembly (package coverage) walk.
package network
