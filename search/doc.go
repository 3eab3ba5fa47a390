// Package search implements the backtracking tree traversal of spec.md §4.4:
// it walks equitable-partition refinements to discrete leaves, maintaining
// the first-leaf / canonical-leaf state machine, discovering automorphisms,
// and accumulating the group order via the orbit x stabilizer decomposition.
//
// Driver is generic over any graph store satisfying GraphLike — densegraph
// and sparsegraph both qualify — so the traversal logic is written once and
// monomorphized per store at compile time (spec.md §9 "Dynamic dispatch on
// graph kind": no virtual dispatch on the hot path).
//
// The driver recurses rather than using an explicit per-level stack; each Go
// stack frame plays the role spec.md §9 assigns to an explicit snapshot
// frame (it owns its own partition/active-set clone, taken before
// individualizing any child and restored before trying the next one). A
// genuinely explicit array-based stack would shave the recursion overhead
// spec.md's design notes flag, at the cost of a larger, harder-to-audit
// driver; DESIGN.md records this as a deliberate simplification.
package search
