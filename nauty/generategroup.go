package nauty

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/nauty/permutation"
)

// GenerateGroup returns every element of the group generated by gens, via
// BFS closure under composition (spec.md §6 "third generates the full group
// from a list of generators up to a caller-supplied size bound"). It
// returns ErrGenerationBoundExceeded if the group's true size exceeds bound
// before the closure completes.
func GenerateGroup(gens []permutation.Permutation, bound uint64) ([]permutation.Permutation, error) {
	if len(gens) == 0 {
		return nil, nil
	}
	n := gens[0].Len()
	seen := make(map[string]bool)
	identity := permutation.Identity(n)
	queue := []permutation.Permutation{identity}
	seen[permKey(identity)] = true

	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		for _, g := range gens {
			next := cur.Compose(g)
			key := permKey(next)
			if seen[key] {
				continue
			}
			if uint64(len(queue)+1) > bound {
				return nil, nautyErrorf("GenerateGroup", "%w: exceeded %d elements", ErrGenerationBoundExceeded, bound)
			}
			seen[key] = true
			queue = append(queue, next)
		}
	}
	return queue, nil
}

func permKey(p permutation.Permutation) string {
	var b strings.Builder
	for _, v := range p.Images() {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(',')
	}
	return b.String()
}
