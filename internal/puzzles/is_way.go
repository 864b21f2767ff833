package puzzles

// IsWay reports whether the last index of a can be reached from index 0,
// where from index i one may jump to i+a[i] or i-a[i]. Cells holding 0 can
// never be entered, not even the last one. A single-element array is
// trivially solved.
func IsWay(a []int) bool {
	if len(a) == 1 {
		return true
	}
	if len(a) == 0 {
		return false
	}

	last := len(a) - 1
	visited := make([]bool, len(a))
	stack := []int{0}
	visited[0] = true

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if i == last {
			return true
		}
		if a[i] == 0 {
			continue
		}
		for _, next := range [2]int{i + a[i], i - a[i]} {
			if next < 0 || next > last || visited[next] || a[next] == 0 {
				continue
			}
			visited[next] = true
			stack = append(stack, next)
		}
	}
	return false
}
