// SPDX-License-Identifier: MIT
// File: methods.go
// Role: state/step mutation (AddState, AddStep, SetReference, Seal) and
//       read-only queries.
// Determinism:
//   - States(), Steps(), Groups() and Arcs() follow insertion order.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package network

import "fmt"

// AddState appends a state. Adding an existing ID returns ErrDuplicateState.
func (n *Network) AddState(id string) error {
	if id == "" {
		return ErrEmptyID
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.sealed {
		return ErrSealed
	}
	if _, ok := n.stateIndex[id]; ok {
		return fmt.Errorf("AddState(%q): %w", id, ErrDuplicateState)
	}
	n.addStateLocked(id)

	return nil
}

func (n *Network) addStateLocked(id string) {
	n.stateIndex[id] = len(n.states)
	n.states = append(n.states, State{ID: id})
	n.adjacency = append(n.adjacency, nil)
}

// AddStep appends a reversible step From→To. Missing endpoint states are
// created in From, To order.
//
// Errors: ErrEmptyID, ErrSelfLoop, ErrDuplicateStep, ErrSealed.
// Complexity: O(1) amortized.
func (n *Network) AddStep(id, from, to string, opts ...StepOption) error {
	if id == "" || from == "" || to == "" {
		return ErrEmptyID
	}
	if from == to {
		return fmt.Errorf("AddStep(%q): %w", id, ErrSelfLoop)
	}
	st := Step{ID: id, From: from, To: to, Kind: Electrochemical}
	for _, opt := range opts {
		opt(&st)
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.sealed {
		return ErrSealed
	}
	if _, ok := n.stepIndex[id]; ok {
		return fmt.Errorf("AddStep(%q): %w", id, ErrDuplicateStep)
	}
	for _, sid := range [...]string{from, to} {
		if _, ok := n.stateIndex[sid]; !ok {
			n.addStateLocked(sid)
		}
	}

	k := len(n.steps)
	n.stepIndex[id] = k
	n.steps = append(n.steps, st)
	if st.Group != "" && !contains(n.groups, st.Group) {
		n.groups = append(n.groups, st.Group)
	}

	fi, ti := n.stateIndex[from], n.stateIndex[to]
	n.adjacency[fi] = append(n.adjacency[fi], Arc{
		Step: id, From: from, To: to, StepIndex: k, FromIndex: fi, ToIndex: ti, Forward: true,
	})
	n.adjacency[ti] = append(n.adjacency[ti], Arc{
		Step: id, From: to, To: from, StepIndex: k, FromIndex: ti, ToIndex: fi, Forward: false,
	})

	return nil
}

// SetReference designates the reference step (see WithReference).
func (n *Network) SetReference(stepID string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.sealed {
		return ErrSealed
	}
	if _, ok := n.stepIndex[stepID]; !ok {
		return fmt.Errorf("SetReference(%q): %w", stepID, ErrUnknownStep)
	}
	n.reference = stepID

	return nil
}

// Seal validates the network and freezes it. Sealing twice is a no-op.
//
// Errors: ErrTooSmall, ErrNoReference, ErrUnknownStep (reference missing),
// ErrIsolatedState.
func (n *Network) Seal() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.sealed {
		return nil
	}
	if len(n.states) < 2 || len(n.steps) == 0 {
		return ErrTooSmall
	}
	if n.reference == "" {
		return ErrNoReference
	}
	if _, ok := n.stepIndex[n.reference]; !ok {
		return fmt.Errorf("reference %q: %w", n.reference, ErrUnknownStep)
	}
	for i, arcs := range n.adjacency {
		if len(arcs) == 0 {
			return fmt.Errorf("state %q: %w", n.states[i].ID, ErrIsolatedState)
		}
	}
	n.sealed = true

	return nil
}

// Sealed reports whether Seal has succeeded.
func (n *Network) Sealed() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.sealed
}

// Name returns the network name ("ER", "LH", ...).
func (n *Network) Name() string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.name
}

// NumStates returns the number of states.
func (n *Network) NumStates() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.states)
}

// NumSteps returns the number of steps.
func (n *Network) NumSteps() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.steps)
}

// States returns a copy of the states in insertion order.
func (n *Network) States() []State {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]State, len(n.states))
	copy(out, n.states)

	return out
}

// StateIDs returns the state IDs in insertion order.
func (n *Network) StateIDs() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]string, len(n.states))
	for i, s := range n.states {
		out[i] = s.ID
	}

	return out
}

// StateIndex returns the position of state id.
func (n *Network) StateIndex(id string) (int, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	i, ok := n.stateIndex[id]

	return i, ok
}

// Free returns the first state, by convention the unoccupied site "*".
func (n *Network) Free() State {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if len(n.states) == 0 {
		return State{}
	}

	return n.states[0]
}

// Steps returns a copy of the steps in insertion order.
func (n *Network) Steps() []Step {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]Step, len(n.steps))
	copy(out, n.steps)

	return out
}

// StepIDs returns the step IDs in insertion order.
func (n *Network) StepIDs() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]string, len(n.steps))
	for i, s := range n.steps {
		out[i] = s.ID
	}

	return out
}

// Step returns the step with the given ID.
func (n *Network) Step(id string) (Step, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	i, ok := n.stepIndex[id]
	if !ok {
		return Step{}, false
	}

	return n.steps[i], true
}

// StepsOfKind returns the steps of kind k in insertion order.
func (n *Network) StepsOfKind(k Kind) []Step {
	n.mu.RLock()
	defer n.mu.RUnlock()

	var out []Step
	for _, s := range n.steps {
		if s.Kind == k {
			out = append(out, s)
		}
	}

	return out
}

// Groups returns the branch group IDs in first-appearance order.
func (n *Network) Groups() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]string, len(n.groups))
	copy(out, n.groups)

	return out
}

// GroupSteps returns the IDs of the steps in group g, in step order.
func (n *Network) GroupSteps(g string) []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	var out []string
	for _, s := range n.steps {
		if s.Group == g {
			out = append(out, s.ID)
		}
	}

	return out
}

// Reference returns the reference step ID ("" when unset).
func (n *Network) Reference() string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.reference
}

// Arcs returns a copy of the arcs leaving state id.
func (n *Network) Arcs(id string) ([]Arc, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	i, ok := n.stateIndex[id]
	if !ok {
		return nil, fmt.Errorf("Arcs(%q): %w", id, ErrUnknownState)
	}
	out := make([]Arc, len(n.adjacency[i]))
	copy(out, n.adjacency[i])

	return out, nil
}

// AllArcs returns every arc, grouped by source state in state order.
func (n *Network) AllArcs() []Arc {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]Arc, 0, 2*len(n.steps))
	for _, arcs := range n.adjacency {
		out = append(out, arcs...)
	}

	return out
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}

	return false
}
