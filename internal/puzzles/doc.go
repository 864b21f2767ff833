// Package puzzles holds four small array and grid exercises.
//
//   - Alternating: fewest swaps that turn a balanced binary string into 0101… or 1010….
//   - LongestEvenSum: length of the longest contiguous run with an even sum.
//   - IsWay: whether index 0 can reach the last index by jumping ±a[i].
//   - Prince: shortest walk through a terrain grid to the cell holding -1, around cells holding -2.
//
// None of the functions modify their input.
package puzzles
