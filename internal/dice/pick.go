package dice

// Pick returns a uniformly chosen element of items. items must not be empty.
func Pick[T any](r Roller, items []T) T {
	return items[r.Intn(len(items))]
}

// Coin flips a fair coin
func Coin(r Roller) bool {
	return r.Intn(2) == 0
}

// Chance succeeds with probability p
func Chance(r Roller, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Float64() < p
}

// WeightedIndex draws in [0, total) and walks the weights, subtracting each
// from the draw until it is no longer positive. Entries with non-positive
// weight are never chosen. Returns -1 when no entry has positive weight.
func WeightedIndex(r Roller, weights []float64) int {
	total := 0.0
	last := -1
	for i, w := range weights {
		if w > 0 {
			total += w
			last = i
		}
	}
	if last < 0 {
		return -1
	}

	draw := r.Float64() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		draw -= w
		if draw <= 0 {
			return i
		}
	}

	// float rounding can leave a sliver past the final entry
	return last
}
