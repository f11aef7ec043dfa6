// Package builder assembles reaction networks from composable constructors.
//
// One orchestrator, BuildNetwork(name, bopts, cons...), creates an empty
// network.Network, resolves the builder configuration from functional
// options, runs every Constructor in order and seals the result. The two
// adsorbate-oxidation mechanisms are ready-made:
//
//	ER (Eley–Rideal), 4 states, 4 electrochemical steps, reference step 4:
//
//	  * ─1─► *OH ─2─► *O ─3─► *OOH ─4─► *
//
//	LH (Langmuir–Hinshelwood), 6 states, 6 electrochemical steps plus the
//	chemical step 5, reference step 5, branch groups "2" and "3":
//
//	  * ─1─► *OH ─21─► *(OH)2 ─31─► *O(OH) ─4─► *O(O) ─5─► *
//	          └──22─► *O ─────32──────┘
//
// Generic constructors (States, Cycle, Step, Reference) let callers describe
// further topologies without touching the solver: the steady-state solve is
// topology-agnostic.
package builder
