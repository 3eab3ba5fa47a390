package nauty

import (
	"math/big"

	"github.com/google/uuid"

	"github.com/katalvlaran/nauty/permutation"
	"github.com/katalvlaran/nauty/search"
)

// Status classifies how a call finished (spec.md §7).
type Status int

const (
	// StatusOK means the search ran to completion.
	StatusOK Status = iota
	// StatusAborted means the context passed to Dense or Sparse was
	// cancelled before the search concluded; hooks have no way to request
	// an abort. Generators found so far are valid automorphisms, but orbits
	// and group order are best-effort (spec.md §7.3).
	StatusAborted
)

// String renders the status for logging.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Result is the immutable output of a single Dense or Sparse call
// (spec.md §4.7), generic over the graph store it was run against.
type Result[G search.GraphLike[G]] struct {
	RunID  uuid.UUID
	Status Status

	Generators []permutation.Permutation
	Orbits     *permutation.Orbits
	NumOrbits  int

	// GroupOrderMantissa/Exponent is the running-product form that never
	// overflows (spec.md §4.7's rescale rule); the exact value is
	// Mantissa * 10^Exponent.
	GroupOrderMantissa float64
	GroupOrderExponent int
	// GroupOrderExact is non-nil only when Options.WithSchreierSims was set.
	GroupOrderExact *big.Int

	HasCanonical  bool
	CanonicalLab  []int
	CanonicalForm G

	Stats search.Stats
}

func newResult[G search.GraphLike[G]](runID uuid.UUID, sr *search.Result[G]) *Result[G] {
	status := StatusOK
	if sr.Aborted {
		status = StatusAborted
	}
	return &Result[G]{
		RunID:              runID,
		Status:             status,
		Generators:         sr.Generators,
		Orbits:             sr.Orbits,
		NumOrbits:          sr.Orbits.Count(),
		GroupOrderMantissa: sr.GroupSize.Mantissa,
		GroupOrderExponent: sr.GroupSize.Exponent,
		HasCanonical:       sr.HasCanon,
		CanonicalLab:       sr.CanonLab,
		CanonicalForm:      sr.CanonGraph,
		Stats:              sr.Stats,
	}
}
