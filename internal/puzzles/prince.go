package puzzles

const (
	// Target is the grid value of the cell Prince is looking for.
	Target = -1
	// Wall marks a cell that can never be entered or left.
	Wall = -2
)

// neighborOffsets are the four orthogonal moves as (row, col) deltas.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// cell pairs a grid position with the number of cells on the path to it
type cell struct {
	row, col int
	length   int
}

// canStep reports whether a walker standing on a cell of height from may
// enter a cell of height to. The target can always be entered and a wall
// never can.
func canStep(from, to int) bool {
	switch to {
	case Target:
		return true
	case Wall:
		return false
	}
	return to <= from+1 && to >= from-2
}

// Prince returns the number of cells on the shortest route from (row, col)
// to the cell holding Target, counting both ends. A move goes to an
// orthogonal neighbour whose height is at most one above and at most two
// below the current cell. Cells holding Wall are impassable, a start on a
// wall included. It returns -1 when the target cannot be reached.
//
// Breadth-first search over the grid: O(rows×cols) time and memory.
func Prince(grid [][]int, row, col int) (int, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return 0, ErrEmptyGrid
	}
	rows, cols := len(grid), len(grid[0])
	for _, r := range grid {
		if len(r) != cols {
			return 0, ErrNonRectangular
		}
	}
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return 0, ErrStartOutOfRange
	}
	if grid[row][col] == Wall {
		return -1, nil
	}

	visited := make([][]bool, rows)
	for i := range visited {
		visited[i] = make([]bool, cols)
	}
	visited[row][col] = true
	queue := []cell{{row: row, col: col, length: 1}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		height := grid[cur.row][cur.col]
		if height == Target {
			return cur.length, nil
		}

		for _, off := range neighborOffsets {
			r, c := cur.row+off[0], cur.col+off[1]
			if r < 0 || r >= rows || c < 0 || c >= cols || visited[r][c] {
				continue
			}
			if !canStep(height, grid[r][c]) {
				continue
			}
			visited[r][c] = true
			queue = append(queue, cell{row: r, col: c, length: cur.length + 1})
		}
	}
	return -1, nil
}
