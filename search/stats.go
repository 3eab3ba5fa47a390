package search

// Stats accumulates the counters of spec.md §4.7: how much of the search
// tree was visited and how it was spent.
type Stats struct {
	Nodes             int
	BadLeaves         int
	MaxLevel          int
	CanonicalUpdates  int
	TargetCellSizeSum int
	// EqlevFirst is the deepest level at which a sibling path's code was
	// last seen matching the first path's code before it diverged (or the
	// leaf level, if it never diverged). 0 for the first path itself.
	EqlevFirst int
	// EqlevCanon is the same tracking against the current canonical path.
	EqlevCanon int
}
