package pathfind

import (
	"container/heap"
	"errors"

	"github.com/milk9111/isometric/common"
	"github.com/milk9111/isometric/grid"
)

const (
	// StraightCost and DiagonalCost are 1.0 and ~sqrt(2) scaled by ten so
	// scores stay integral.
	StraightCost = 10
	DiagonalCost = 14

	DefaultMaxNodes = 4096
)

var (
	ErrTargetBlocked = errors.New("pathfind: target cell is solid")
	ErrUnreachable   = errors.New("pathfind: target unreachable")
	ErrSearchLimit   = errors.New("pathfind: expansion limit reached")
)

// neighborOffsets lists the 8 directions in expansion order. The order is
// part of the deterministic tie-break.
var neighborOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, -1}, {-1, 1}, {1, -1},
}

// Finder runs A* over the solid cells of a map. It holds no per-search
// state and may be shared by every entity of a world.
type Finder struct {
	Solid grid.Querier

	// MaxNodes caps how many nodes a single search may expand. Zero or
	// less means unbounded.
	MaxNodes int

	// Margin restricts the search to the bounding box of start and goal
	// grown by Margin cells. Zero disables the box.
	Margin int

	// OnExpand, when set, is called with every cell taken off the open set.
	OnExpand func(grid.Cell)
}

// NewFinder returns a Finder over solid with the default expansion cap.
func NewFinder(solid grid.Querier) *Finder {
	return &Finder{Solid: solid, MaxNodes: DefaultMaxNodes}
}

// FindPath rounds start and target to cells and searches between them.
// See FindPathCells for the result contract.
func (f *Finder) FindPath(start, target common.Vec3) (Path, error) {
	return f.FindPathCells(grid.CellOf(start), grid.CellOf(target))
}

// FindPathCells returns the cheapest 8-connected path from start to goal on
// start's Z level. The path excludes start and ends at goal; start == goal
// yields an empty, non-nil path.
//
// A solid goal is rejected with ErrTargetBlocked before any search runs.
// ErrUnreachable means the open set ran dry, ErrSearchLimit that MaxNodes
// expansions happened first.
func (f *Finder) FindPathCells(start, goal grid.Cell) (Path, error) {
	if f.isSolid(goal) {
		return nil, ErrTargetBlocked
	}
	if start == goal {
		return Path{}, nil
	}
	// neighbors never leave start's layer
	if start.Z != goal.Z {
		return nil, ErrUnreachable
	}

	bounds := f.bounds(start, goal)

	open := &openSet{}
	openByCell := make(map[grid.Cell]*node, 64)
	closed := make(map[grid.Cell]struct{}, 128)

	seq := 0
	root := &node{cell: start, h: Heuristic(start, goal), seq: seq}
	heap.Push(open, root)
	openByCell[start] = root

	expanded := 0
	for open.Len() > 0 {
		current := heap.Pop(open).(*node)
		delete(openByCell, current.cell)
		closed[current.cell] = struct{}{}

		if f.OnExpand != nil {
			f.OnExpand(current.cell)
		}

		if current.cell == goal {
			return reconstructPath(current), nil
		}

		expanded++
		if f.MaxNodes > 0 && expanded >= f.MaxNodes {
			return nil, ErrSearchLimit
		}

		for _, d := range neighborOffsets {
			next := current.cell.Add(d[0], d[1])
			if _, done := closed[next]; done {
				continue
			}
			if !bounds.contains(next) {
				continue
			}
			if f.isSolid(next) {
				closed[next] = struct{}{}
				continue
			}

			g := current.g + StepCost(current.cell, next)
			if n, ok := openByCell[next]; ok {
				if g < n.g {
					n.g = g
					n.parent = current
					heap.Fix(open, n.index)
				}
				continue
			}

			seq++
			n := &node{
				cell:   next,
				parent: current,
				g:      g,
				h:      Heuristic(next, goal),
				seq:    seq,
			}
			heap.Push(open, n)
			openByCell[next] = n
		}
	}

	return nil, ErrUnreachable
}

func (f *Finder) isSolid(c grid.Cell) bool {
	return f != nil && f.Solid != nil && f.Solid.IsSolid(c)
}

// Heuristic is the octile distance between a and b, ignoring Z.
func Heuristic(a, b grid.Cell) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	lo, hi := min(dx, dy), max(dx, dy)
	return DiagonalCost*lo + StraightCost*(hi-lo)
}

// StepCost is the price of moving between two adjacent cells.
func StepCost(from, to grid.Cell) int {
	if from.X != to.X && from.Y != to.Y {
		return DiagonalCost
	}
	return StraightCost
}

func reconstructPath(end *node) Path {
	path := make(Path, 0, 32)
	for n := end; n.parent != nil; n = n.parent {
		path = append(path, n.cell)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type box struct {
	enabled                bool
	minX, minY, maxX, maxY int
}

func (f *Finder) bounds(start, goal grid.Cell) box {
	if f == nil || f.Margin <= 0 {
		return box{}
	}
	return box{
		enabled: true,
		minX:    min(start.X, goal.X) - f.Margin,
		minY:    min(start.Y, goal.Y) - f.Margin,
		maxX:    max(start.X, goal.X) + f.Margin,
		maxY:    max(start.Y, goal.Y) + f.Margin,
	}
}

func (b box) contains(c grid.Cell) bool {
	if !b.enabled {
		return true
	}
	return c.X >= b.minX && c.X <= b.maxX && c.Y >= b.minY && c.Y <= b.maxY
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
