package puzzles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlternating(t *testing.T) {
	tests := []struct {
		in       string
		expected int
	}{
		{"", 0},
		{"01", 0},
		{"10", 0},
		{"1100", 1},
		{"00001111", 2},
		{"01010101", 0},
		{"10101010", 0},
		{"00110011", 2},
		{"0011", 1},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, Alternating(tt.in))
		})
	}
}

func TestLongestEvenSum(t *testing.T) {
	tests := []struct {
		name     string
		in       []int
		expected int
	}{
		{"Empty", nil, 0},
		{"Even total", []int{2, 4, 6}, 3},
		{"Even total with odds", []int{1, 2, 3}, 3},
		{"Drop first odd", []int{1, 2, 3, 4, 5}, 4},
		{"Drop around the only odd", []int{2, 2, 1, 2}, 2},
		{"Single odd", []int{3}, 0},
		{"Negative odd", []int{4, -3, 2, 2, 2}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LongestEvenSum(tt.in))
		})
	}
}

func TestIsWay(t *testing.T) {
	tests := []struct {
		name     string
		in       []int
		expected bool
	}{
		{"Single element", []int{5}, true},
		{"Empty", nil, false},
		{"Forward and back", []int{2, 4, 1, 6, 4, 2, 4, 3, 5}, true},
		{"No route", []int{1, 4, 3, 1, 2, 4, 3}, false},
		{"Zero at last index", []int{1, 1, 1, 0}, false},
		{"Zero at start", []int{0, 3}, false},
		{"Direct jump", []int{3, 1, 2, 1, 5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsWay(tt.in))
		})
	}

	t.Run("Input is untouched", func(t *testing.T) {
		in := []int{2, 4, 1, 6, 4, 2, 4, 3, 5}
		IsWay(in)
		assert.Equal(t, []int{2, 4, 1, 6, 4, 2, 4, 3, 5}, in)
	})
}

func TestPrince(t *testing.T) {
	dungeon := [][]int{
		{2, 0, 1, 2, 3},
		{2, 3, 5, 5, 4},
		{8, -1, 6, 8, 7},
		{3, 4, 7, 2, 4},
		{2, 4, 3, 1, 2},
	}

	tests := []struct {
		name     string
		grid     [][]int
		row, col int
		expected int
	}{
		{"Dungeon from corner", dungeon, 0, 0, 4},
		{"Dungeon unreachable", dungeon, 4, 4, -1},
		{"Start on target", dungeon, 2, 1, 1},
		{"Climb around", [][]int{{4, 5, 6}, {3, 0, 7}, {2, -1, 9}}, 0, 0, 4},
		{"Long descent", [][]int{{4, 5, 6}, {3, 0, 7}, {2, -1, 9}}, 0, 2, 6},
		{"Too steep", [][]int{{1, 9}, {9, -1}}, 0, 0, -1},
		{"Single row", [][]int{{3, 2, 1, -1}}, 0, 0, 4},
		{"Wall blocks a legal descent", [][]int{{0, -2, -1}}, 0, 0, -1},
		{"Detour around wall", [][]int{{0, -2, -1}, {0, 0, 0}}, 0, 0, 5},
		{"Start on wall", [][]int{{-2, -1}}, 0, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Prince(tt.grid, tt.row, tt.col)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("Grid is untouched", func(t *testing.T) {
		grid := [][]int{{1, 2}, {3, -1}}
		_, err := Prince(grid, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{1, 2}, {3, -1}}, grid)
	})
}

func TestPrince_Errors(t *testing.T) {
	cases := []struct {
		name     string
		grid     [][]int
		row, col int
		err      error
	}{
		{"EmptyRows", [][]int{}, 0, 0, ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, 0, 0, ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, 0, 0, ErrNonRectangular},
		{"RowOutOfRange", [][]int{{1, -1}}, 1, 0, ErrStartOutOfRange},
		{"NegativeCol", [][]int{{1, -1}}, 0, -1, ErrStartOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Prince(tc.grid, tc.row, tc.col)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}
