// SPDX-License-Identifier: MIT
// Package: aomkin/builder
//
// impl_mechanisms.go — the ER and LH adsorbate-oxidation mechanisms.
//
// State order is fixed (the free site first) because it decides the θ
// column order of every result table.

package builder

import (
	"github.com/katalvlaran/aomkin/network"
)

// ER returns a Constructor for the Eley–Rideal mechanism:
// * → *OH → *O → *OOH → *, steps 1..4, reference step 4.
func ER() Constructor {
	return func(n *network.Network, cfg builderConfig) error {
		cfg.idFn = OneBasedIDFn

		return Cycle(StateFree, StateOH, StateO, StateOOH)(n, cfg)
	}
}

// LH returns a Constructor for the Langmuir–Hinshelwood mechanism with its
// two parallel branch pairs and the closing chemical step 5 (reference).
func LH() Constructor {
	return func(n *network.Network, cfg builderConfig) error {
		cons := []Constructor{
			States(StateFree, StateOH, StateOH2, StateO, StateOOHads, StateOO),
			Step(Step1, StateFree, StateOH),
			Step(Step21, StateOH, StateOH2, network.WithGroup(Group2)),
			Step(Step22, StateOH, StateO, network.WithGroup(Group2)),
			Step(Step31, StateOH2, StateOOHads, network.WithGroup(Group3)),
			Step(Step32, StateO, StateOOHads, network.WithGroup(Group3)),
			Step(Step4, StateOOHads, StateOO),
			Step(Step5, StateOO, StateFree, network.WithKind(network.Chemical)),
			Reference(Step5),
		}
		for _, c := range cons {
			if err := c(n, cfg); err != nil {
				return err
			}
		}

		return nil
	}
}
