// SPDX-License-Identifier: MIT
// Package: aomkin/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildNetwork(name, bopts, cons...). Creates the
//     network, resolves cfg, runs cons in order, applies the reference
//     override and seals.
//   - Determinism: same inputs/options and constructor order ⇒ identical
//     state/step order, hence identical generator matrices and tables.
//   - Safety: never panic at runtime; return sentinel errors.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aomkin/network"
)

// Constructor applies a deterministic mutation to an unsealed network using
// the resolved builderConfig. Constructors validate parameters early and
// return sentinel errors (no panics).
type Constructor func(n *network.Network, cfg builderConfig) error

// BuildNetwork creates a network named name, applies all constructors in
// order and seals it. Errors are wrapped with "BuildNetwork: %w".
//
// Complexity: Σ cost of each constructor plus O(states) for Seal.
func BuildNetwork(name string, bopts []BuilderOption, cons ...Constructor) (*network.Network, error) {
	n := network.NewNetwork(name)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(n, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}
	if cfg.reference != "" {
		if err := n.SetReference(cfg.reference); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}
	if err := n.Seal(); err != nil {
		return nil, fmt.Errorf("BuildNetwork: %w: %w", ErrConstructFailed, err)
	}

	return n, nil
}

// ByName builds one of the named mechanisms ("ER" or "LH", case-insensitive).
func ByName(name string, bopts ...BuilderOption) (*network.Network, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case NameER:
		return BuildNetwork(NameER, bopts, ER())
	case NameLH:
		return BuildNetwork(NameLH, bopts, LH())
	default:
		return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownNetwork)
	}
}

// Names lists the mechanisms ByName understands.
func Names() []string {
	return []string{NameER, NameLH}
}
