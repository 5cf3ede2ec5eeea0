package fuzzy

import "math"

// Infinite is returned by Distance when the strings cannot be within budget.
const Infinite = math.MaxInt

// Distance returns the Levenshtein distance between a and b, or Infinite when
// their lengths differ by more than maxDistance. A negative maxDistance
// disables the bound. Strings are compared rune by rune.
//
// The result is exact whenever it is not Infinite; it may exceed
// maxDistance when the length check alone cannot rule the pair out.
func Distance(a, b string, maxDistance int) int {
	ra, rb := []rune(a), []rune(b)
	if maxDistance >= 0 && abs(len(ra)-len(rb)) > maxDistance {
		return Infinite
	}
	// keep the shorter string in the row
	if len(rb) > len(ra) {
		ra, rb = rb, ra
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,
				curr[j-1]+1,
				prev[j-1]+cost,
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// Within reports whether a and b are at most maxDistance edits apart.
func Within(a, b string, maxDistance int) bool {
	return Distance(a, b, maxDistance) <= maxDistance
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
