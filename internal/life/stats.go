package life

// Stats summarizes one generation of a grid.
type Stats struct {
	Generation uint64
	Population int
	OldestAge  uint32
	MeanAge    float64
}

// Measure computes population and age figures for g.
func Measure(g *Grid, generation uint64) Stats {
	s := Stats{Generation: generation}
	var total uint64
	for _, c := range g.cells {
		if !c.alive {
			continue
		}
		s.Population++
		total += uint64(c.age)
		if c.age > s.OldestAge {
			s.OldestAge = c.age
		}
	}
	if s.Population > 0 {
		s.MeanAge = float64(total) / float64(s.Population)
	}
	return s
}
