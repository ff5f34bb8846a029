package interpolate

// searcher finds the knot interval containing a coordinate. Axes given as
// explicit knot tables guess under the assumption of uniform spacing and
// fall back to a binary search; axes declared uniform skip the search
// entirely.
type searcher struct {
	xs          []float64
	x0, dx, lim float64
	n           int
	unif        bool
}

func (s *searcher) init(xs []float64) {
	s.xs = xs
	s.x0 = xs[0]
	s.lim = xs[len(xs)-1]
	if len(xs) > 1 {
		s.dx = (s.lim - s.x0) / float64(len(xs)-1)
	}
	s.n = len(xs)
	s.unif = false
}

func (s *searcher) unifInit(x0, dx float64, n int) {
	s.xs = nil
	s.x0 = x0
	s.lim = float64(n-1)*dx + x0
	s.dx = dx
	s.n = n
	s.unif = true
}

// search returns the index i of the interval [val(i), val(i+1)] which
// contains x. Out-of-range coordinates return the first or last interval.
// A coordinate equal to a knot resolves to the interval with that knot as
// its lower bound, except at the topmost knot.
func (s *searcher) search(x float64) int {
	if x <= s.x0 {
		return 0
	}
	if x >= s.lim {
		return s.n - 2
	}

	if s.unif {
		idx := int((x - s.x0) / s.dx)
		if idx > s.n-2 {
			idx = s.n - 2
		}
		return idx
	}

	// Guess under the assumption of uniform spacing. The upper comparison
	// is strict so a coordinate equal to a knot lands in the interval
	// with that knot as its lower bound.
	guess := int((x - s.x0) / s.dx)
	if guess >= 0 && guess < s.n-1 &&
		s.xs[guess] <= x && s.xs[guess+1] > x {

		return guess
	}

	// Binary search.
	lo, hi := 0, s.n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= s.xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo
}

func (s *searcher) val(i int) float64 {
	if s.unif {
		return float64(i)*s.dx + s.x0
	}
	return s.xs[i]
}
