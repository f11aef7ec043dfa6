// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"sync"
)

// Sentinel errors for network operations.
var (
	// ErrEmptyID indicates that a state or step was given an empty ID.
	ErrEmptyID = errors.New("network: empty ID")

	// ErrDuplicateState indicates that a state ID is already present.
	ErrDuplicateState = errors.New("network: duplicate state")

	// ErrDuplicateStep indicates that a step ID is already present.
	ErrDuplicateStep = errors.New("network: duplicate step")

	// ErrUnknownState indicates an operation referenced a non-existent state.
	ErrUnknownState = errors.New("network: unknown state")

	// ErrUnknownStep indicates an operation referenced a non-existent step.
	ErrUnknownStep = errors.New("network: unknown step")

	// ErrSelfLoop indicates a step whose endpoints coincide.
	ErrSelfLoop = errors.New("network: step endpoints must differ")

	// ErrNoReference indicates that no reference step was designated.
	ErrNoReference = errors.New("network: reference step not set")

	// ErrTooSmall indicates fewer than two states or no steps at Seal time.
	ErrTooSmall = errors.New("network: need at least two states and one step")

	// ErrSealed indicates a mutation attempted after Seal.
	ErrSealed = errors.New("network: network is sealed")

	// ErrIsolatedState indicates a state not touched by any step.
	ErrIsolatedState = errors.New("network: state has no steps")
)

// Kind classifies how a step's rate constants are produced.
type Kind int

const (
	// Electrochemical steps use the configured kinetics law and depend on η and pH.
	Electrochemical Kind = iota
	// Chemical steps use a BEP/Softplus barrier law with no η or pH dependence.
	Chemical
)

// String returns "electrochemical" or "chemical".
func (k Kind) String() string {
	if k == Chemical {
		return "chemical"
	}

	return "electrochemical"
}

// State is one catalytic site configuration, e.g. "*" (free site) or "*OH".
type State struct {
	// ID is the unique identifier, also used as the θ column suffix.
	ID string
}

// Step is one reversible elementary reaction between two states.
type Step struct {
	// ID is the unique identifier, e.g. "1", "21", "5".
	ID string

	// From is the state consumed by the forward direction.
	From string

	// To is the state produced by the forward direction.
	To string

	// Kind selects the rate law family.
	Kind Kind

	// Group names the branch aggregate this step belongs to ("" for none).
	Group string
}

// Arc is one direction of a Step in the state graph.
type Arc struct {
	Step      string // step ID
	From, To  string // endpoint state IDs in arc direction
	StepIndex int    // position of the step in Steps()
	FromIndex int    // position of From in States()
	ToIndex   int    // position of To in States()
	Forward   bool   // true for the step's From→To sense
}

// Option configures a Network at creation.
type Option func(n *Network)

// WithReference designates the step whose net flux is the network's
// reference flux. The step must exist by Seal time.
func WithReference(stepID string) Option {
	return func(n *Network) { n.reference = stepID }
}

// StepOption configures an individual step when added.
type StepOption func(*Step)

// WithKind sets the step kind (default Electrochemical).
func WithKind(k Kind) StepOption {
	return func(s *Step) { s.Kind = k }
}

// WithGroup puts the step into a branch aggregate.
func WithGroup(group string) StepOption {
	return func(s *Step) { s.Group = group }
}

// Network is the in-memory reaction graph.
//
// mu guards every field. States and steps keep insertion order, which fixes
// the row/column order of the generator matrix and of result tables.
type Network struct {
	mu sync.RWMutex

	name      string
	reference string
	sealed    bool

	states     []State
	stateIndex map[string]int
	steps      []Step
	stepIndex  map[string]int
	groups     []string

	// adjacency[i] lists the arcs leaving state i, in step order.
	adjacency [][]Arc
}

// NewNetwork creates an empty, unsealed network.
// Complexity: O(1)
func NewNetwork(name string, opts ...Option) *Network {
	n := &Network{
		name:       name,
		stateIndex: make(map[string]int),
		stepIndex:  make(map[string]int),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}
