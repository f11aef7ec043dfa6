// SPDX-License-Identifier: MIT
// Package: aomkin/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn      = OneBasedIDFn ("1","2",...)
//   • reference = ""  (constructors or Reference(...) decide)

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	idFn      IDFn
	reference string
}

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the step ID generator used by Cycle.
// Panics on nil to surface programmer error early.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithReferenceStep overrides the reference step chosen by the constructors.
// Panics on an empty ID.
func WithReferenceStep(id string) BuilderOption {
	if id == "" {
		panic("builder: WithReferenceStep(\"\")")
	}

	return func(c *builderConfig) { c.reference = id }
}

// newBuilderConfig applies options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: OneBasedIDFn}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
