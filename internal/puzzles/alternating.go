package puzzles

// Alternating returns the minimum number of swaps that turn s into an
// alternating sequence. s must hold as many '0' as '1' characters.
//
// Every even position holding a '0' is out of place for 1010…, every even
// position holding a '1' is out of place for 0101…, and each swap fixes one
// even position together with one odd position.
func Alternating(s string) int {
	zeros, ones := 0, 0
	for i := 0; i < len(s); i += 2 {
		if s[i] == '0' {
			zeros++
		} else {
			ones++
		}
	}
	return min(zeros, ones)
}
