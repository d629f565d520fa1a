package life

// neighborOffsets lists the Moore neighborhood row by row, top-left first.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// CountAliveNeighbors counts the live neighbors of (x, y) in read under the
// given border policy. The result is in [0, 8].
//
// Under Wrap on a grid smaller than 3x3 several offsets can land on the same
// cell, including (x, y) itself; each landing is counted.
func CountAliveNeighbors(read *Grid, x, y int, policy BorderPolicy) int {
	n := 0
	for _, off := range neighborOffsets {
		nx, ny, ok := policy.Resolve(x, y, off[0], off[1], read.w, read.h)
		if !ok {
			continue
		}
		if read.cells[ny*read.w+nx].alive {
			n++
		}
	}
	return n
}
