// SPDX-License-Identifier: MIT
// Package: aomkin/builder
//
// impl_generic.go — topology-neutral constructors.
//
// Contract:
//   • States adds states in argument order (skipping existing ones).
//   • Cycle(s0..sk) emits steps s0→s1, ..., sk→s0 with IDs cfg.idFn(0..k).
//   • Step adds one step with explicit ID and options.
//   • Reference designates the reference step.

package builder

import (
	"fmt"

	"github.com/katalvlaran/aomkin/network"
)

const (
	methodStates    = "States"
	methodCycle     = "Cycle"
	methodStep      = "Step"
	methodReference = "Reference"
	minCycleStates  = 2
)

// States returns a Constructor adding the given states in order. States
// already present are kept where they are.
func States(ids ...string) Constructor {
	return func(n *network.Network, _ builderConfig) error {
		for _, id := range ids {
			if _, ok := n.StateIndex(id); ok {
				continue
			}
			if err := n.AddState(id); err != nil {
				return fmt.Errorf("%s: AddState(%s): %w", methodStates, id, err)
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that closes the given states into a ring of
// electrochemical steps. The last step of the ring becomes the reference
// step unless one is set later.
func Cycle(states ...string) Constructor {
	return func(n *network.Network, cfg builderConfig) error {
		k := len(states)
		if k < minCycleStates {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, k, minCycleStates, ErrTooFewStates)
		}
		if err := States(states...)(n, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}

		var last string
		for i := 0; i < k; i++ {
			id := cfg.idFn(i)
			from, to := states[i], states[(i+1)%k]
			if err := n.AddStep(id, from, to); err != nil {
				return fmt.Errorf("%s: AddStep(%s: %s→%s): %w", methodCycle, id, from, to, err)
			}
			last = id
		}
		if err := n.SetReference(last); err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}

		return nil
	}
}

// Step returns a Constructor adding one step id: from→to.
func Step(id, from, to string, opts ...network.StepOption) Constructor {
	return func(n *network.Network, _ builderConfig) error {
		if err := n.AddStep(id, from, to, opts...); err != nil {
			return fmt.Errorf("%s: AddStep(%s: %s→%s): %w", methodStep, id, from, to, err)
		}

		return nil
	}
}

// Reference returns a Constructor designating the reference step.
func Reference(id string) Constructor {
	return func(n *network.Network, _ builderConfig) error {
		if err := n.SetReference(id); err != nil {
			return fmt.Errorf("%s: %w", methodReference, err)
		}

		return nil
	}
}
