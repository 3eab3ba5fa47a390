// Package schreier implements a Schreier–Sims base-and-strong-generating-set
// construction (spec.md §4.6): given a list of generators, it builds a
// stabilizer chain G = G_0 >= G_1 >= ... >= G_d = {1}, each level storing a
// transversal (coset representatives for the level's base-point orbit) and
// a level-local generating set, from which the exact group order and
// membership tests follow.
//
// The only randomized step in the whole engine lives here (spec.md §5):
// Expand alternates short random products of strong generators with
// Schreier-generator enumeration, stopping after FailureBound consecutive
// sifts that add nothing new. FailureBound is fixed at 10 and the default
// seed is fixed, per spec.md §4.6/§9's resolution of the source's observed
// non-determinism at lower bounds.
package schreier
