package life

import "golang.org/x/sync/errgroup"

// Step advances b by one generation under policy. Every cell of the read
// buffer is visited once; its next state goes to the same index of the write
// buffer, then the cycle advances. A grid with a zero dimension is left alone.
func Step(b *DoubleBuffer, policy BorderPolicy) {
	if b.w == 0 || b.h == 0 {
		return
	}
	stepRows(b.ReadBuffer(), b.WriteBuffer(), b.w, 0, b.h, policy)
	b.AdvanceCycle()
}

// StepParallel is Step with the rows split into contiguous bands, one
// goroutine per band. Bands only read the read buffer and only write their
// own rows of the write buffer, so the result matches Step exactly.
func StepParallel(b *DoubleBuffer, policy BorderPolicy, workers int) {
	if workers > b.h {
		workers = b.h
	}
	if workers <= 1 {
		Step(b, policy)
		return
	}
	if b.w == 0 {
		return
	}

	read, write := b.ReadBuffer(), b.WriteBuffer()
	var g errgroup.Group
	for _, band := range rowBands(b.h, workers) {
		g.Go(func() error {
			stepRows(read, write, b.w, band[0], band[1], policy)
			return nil
		})
	}
	_ = g.Wait()
	b.AdvanceCycle()
}

func stepRows(read, write *Grid, w, y0, y1 int, policy BorderPolicy) {
	for y := y0; y < y1; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			n := CountAliveNeighbors(read, x, y, policy)
			write.cells[idx] = Next(read.cells[idx], n)
		}
	}
}

// rowBands splits h rows into n contiguous [start, end) ranges whose sizes
// differ by at most one.
func rowBands(h, n int) [][2]int {
	bands := make([][2]int, 0, n)
	start := 0
	for i := 0; i < n; i++ {
		size := h / n
		if i < h%n {
			size++
		}
		bands = append(bands, [2]int{start, start + size})
		start += size
	}
	return bands
}
