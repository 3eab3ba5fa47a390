package permutation

// Permutation is an immutable length-n array of images: P.Images[i] is the
// image of i. Construct with FromArray or Identity; every method returns a
// new value rather than mutating the receiver.
type Permutation struct {
	images []int
}

// Identity returns the length-n identity permutation.
func Identity(n int) Permutation {
	images := make([]int, n)
	for i := range images {
		images[i] = i
	}
	return Permutation{images: images}
}

// FromArray validates images as a permutation of 0..len(images)-1 and
// returns it. The input is copied; mutating it afterwards has no effect on
// the returned value.
func FromArray(images []int) (Permutation, error) {
	n := len(images)
	seen := make([]bool, n)
	for _, v := range images {
		if v < 0 || v >= n || seen[v] {
			return Permutation{}, permutationErrorf("FromArray", "%w", ErrNotAPermutation)
		}
		seen[v] = true
	}
	cp := make([]int, n)
	copy(cp, images)
	return Permutation{images: cp}, nil
}

// Len returns the permutation's domain size.
func (p Permutation) Len() int { return len(p.images) }

// Image returns p(i).
func (p Permutation) Image(i int) int { return p.images[i] }

// Images returns a read-only-by-convention view of the image array; callers
// must not mutate it.
func (p Permutation) Images() []int { return p.images }

// IsIdentity reports whether every point is fixed.
func (p Permutation) IsIdentity() bool {
	for i, v := range p.images {
		if i != v {
			return false
		}
	}
	return true
}

// Equal reports whether p and q have identical images.
func (p Permutation) Equal(q Permutation) bool {
	if len(p.images) != len(q.images) {
		return false
	}
	for i := range p.images {
		if p.images[i] != q.images[i] {
			return false
		}
	}
	return true
}

// Compose returns p∘q, i.e. (p∘q)[i] = p[q[i]].
func (p Permutation) Compose(q Permutation) Permutation {
	n := len(p.images)
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = p.images[q.images[i]]
	}
	return Permutation{images: out}
}

// Inverse returns p^-1.
func (p Permutation) Inverse() Permutation {
	n := len(p.images)
	out := make([]int, n)
	for i, v := range p.images {
		out[v] = i
	}
	return Permutation{images: out}
}

// Cycles returns the cycle decomposition of p, each cycle listed starting
// from its smallest element, cycles ordered by that smallest element.
// Fixed points are included as length-1 cycles.
//
// Complexity: O(n).
func (p Permutation) Cycles() [][]int {
	n := len(p.images)
	seen := make([]bool, n)
	var cycles [][]int
	for start := 0; start < n; start++ {
		if seen[start] {
			continue
		}
		var cycle []int
		for v := start; !seen[v]; v = p.images[v] {
			seen[v] = true
			cycle = append(cycle, v)
		}
		cycles = append(cycles, cycle)
	}
	return cycles
}

// Order returns the multiplicative order of p: the LCM of its cycle
// lengths.
func (p Permutation) Order() uint64 {
	order := uint64(1)
	for _, c := range p.Cycles() {
		order = lcm(order, uint64(len(c)))
	}
	return order
}

// Pow returns p composed with itself k times (k>=0), via repeated squaring.
func (p Permutation) Pow(k uint64) Permutation {
	result := Identity(len(p.images))
	base := p
	for k > 0 {
		if k&1 == 1 {
			result = result.Compose(base)
		}
		base = base.Compose(base)
		k >>= 1
	}
	return result
}

// FixedPointCount returns the number of points i with p(i)==i.
func (p Permutation) FixedPointCount() int {
	n := 0
	for i, v := range p.images {
		if i == v {
			n++
		}
	}
	return n
}

// MovedPoints returns every point i with p(i)!=i, in ascending order.
func (p Permutation) MovedPoints() []int {
	var out []int
	for i, v := range p.images {
		if i != v {
			out = append(out, i)
		}
	}
	return out
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	return a / gcd(a, b) * b
}
