package puzzles

// LongestEvenSum returns the length of the longest contiguous subarray of a
// whose elements add up to an even number. O(n) time, O(1) memory.
func LongestEvenSum(a []int) int {
	sum := 0
	firstOdd, lastOdd := -1, -1
	for i, v := range a {
		if v%2 != 0 {
			if firstOdd == -1 {
				firstOdd = i
			}
			lastOdd = i
		}
		sum += v
	}
	if sum%2 == 0 {
		return len(a)
	}

	// Dropping one odd element makes the sum even: either everything up to
	// and including the first odd, or everything from the last odd onwards.
	withoutPrefix := len(a) - (firstOdd + 1)
	withoutSuffix := lastOdd
	return max(withoutPrefix, withoutSuffix)
}
