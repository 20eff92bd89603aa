package pathfind

import "github.com/milk9111/isometric/grid"

// Path is an ordered list of waypoints. Index 0 is the next cell to move to.
type Path []grid.Cell

// Next returns the first waypoint without consuming it.
func (p Path) Next() (grid.Cell, bool) {
	if len(p) == 0 {
		return grid.Cell{}, false
	}
	return p[0], true
}

// Pop removes and returns the first waypoint.
func (p *Path) Pop() (grid.Cell, bool) {
	if p == nil || len(*p) == 0 {
		return grid.Cell{}, false
	}
	c := (*p)[0]
	*p = (*p)[1:]
	return c, true
}

// Cost sums step costs walking the path from start.
func (p Path) Cost(start grid.Cell) int {
	total := 0
	prev := start
	for _, c := range p {
		total += StepCost(prev, c)
		prev = c
	}
	return total
}
