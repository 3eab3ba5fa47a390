package refine

// mash is the running-hash mixing constant fixed by spec.md §9 to match the
// classical nauty macro.
const mash = 0x6B1D

// Code is the 15-bit label-independent refinement signature compared across
// sibling search-tree paths (spec.md §4.3 step 4).
type Code uint16

const codeMask = 0x7FFF

// update folds contribution into code using the fixed mash constant. It must
// never depend on vertex identity — only on the structural quantities passed
// in by the caller (splitter position, observed counts, fragment starts,
// cell counts).
func update(code Code, contribution int) Code {
	return Code((uint32(code)^mash)+uint32(contribution)) & codeMask
}
