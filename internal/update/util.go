package update

// clampIndex keeps i inside [0, n-1], or returns 0 for an empty collection.
func clampIndex(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
