package colorreduce

import "github.com/katalvlaran/nauty/permutation"

// OriginalCanonicalOrder restricts a canonical labeling computed on the
// reduced graph (nauty.Result.CanonicalLab) to the positions naming an
// original vertex, preserving their relative order. The result is the
// canonical renaming of the caller's original variables (spec.md §6's
// "reverse mapping ... used by any surface layer").
func (r *Reduced) OriginalCanonicalOrder(canonLab []int) []int {
	out := make([]int, 0, r.OriginalN)
	for _, v := range canonLab {
		if v < r.OriginalN {
			out = append(out, v)
		}
	}
	return out
}

// RestrictGenerator restricts an automorphism of the reduced graph to the
// original vertex range. Because every label-vertex carries a color distinct
// from every original vertex's color, and automorphisms preserve color
// classes (spec.md §8 P6), a well-formed generator never maps an original
// vertex to a label-vertex or back; RestrictGenerator returns
// ErrLabelVertexEscaped if one somehow does.
func (r *Reduced) RestrictGenerator(gen permutation.Permutation) (permutation.Permutation, error) {
	images := make([]int, r.OriginalN)
	for i := 0; i < r.OriginalN; i++ {
		img := gen.Image(i)
		if img >= r.OriginalN {
			return permutation.Permutation{}, colorreduceErrorf("RestrictGenerator", "%w: %d -> %d", ErrLabelVertexEscaped, i, img)
		}
		images[i] = img
	}
	return permutation.FromArray(images)
}
