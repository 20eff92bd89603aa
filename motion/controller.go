package motion

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/isometric/common"
	"github.com/milk9111/isometric/pathfind"
)

const (
	DefaultRepathInterval = 1.0
	DefaultNodeReached    = 0.5
)

type State int

const (
	NoPath State = iota
	Following
)

func (s State) String() string {
	switch s {
	case Following:
		return "following"
	default:
		return "no_path"
	}
}

// Target is anything an entity can chase.
type Target interface {
	Position() common.Vec3
	Alive() bool
}

// Planner produces paths between two world positions.
type Planner interface {
	FindPath(start, target common.Vec3) (pathfind.Path, error)
}

// Controller turns a chased target into a desired velocity by following a
// periodically re-planned path. It never moves the entity itself.
type Controller struct {
	Speed     float64
	Interval  float64
	Threshold float64

	path    pathfind.Path
	timer   float64
	lastErr error
}

func NewController(speed float64) *Controller {
	return &Controller{
		Speed:     speed,
		Interval:  DefaultRepathInterval,
		Threshold: DefaultNodeReached,
	}
}

// Update advances the controller by dt seconds and returns the velocity the
// entity at self should move with this tick.
func (c *Controller) Update(dt float64, self common.Vec3, target Target, planner Planner) cp.Vector {
	if c == nil {
		return cp.Vector{}
	}
	if target == nil || !target.Alive() {
		c.path = nil
		return cp.Vector{}
	}

	c.timer -= dt
	if c.timer <= 0 || len(c.path) == 0 {
		c.timer = c.interval()
		c.replan(self, target.Position(), planner)
	}

	next, ok := c.path.Next()
	if !ok {
		return cp.Vector{}
	}
	if common.PlanarDistance(self, next.Center()) < c.threshold() {
		c.path.Pop()
		if next, ok = c.path.Next(); !ok {
			return cp.Vector{}
		}
	}
	return common.Direction(self, next.Center()).Mult(c.Speed)
}

func (c *Controller) replan(self, goal common.Vec3, planner Planner) {
	if planner == nil {
		c.path, c.lastErr = nil, nil
		return
	}
	path, err := planner.FindPath(self, goal)
	if err != nil {
		c.path, c.lastErr = nil, err
		return
	}
	c.path, c.lastErr = path, nil
}

// State reports whether the controller currently has waypoints to follow.
func (c *Controller) State() State {
	if c == nil || len(c.path) == 0 {
		return NoPath
	}
	return Following
}

// Path returns the remaining waypoints.
func (c *Controller) Path() pathfind.Path {
	if c == nil {
		return nil
	}
	return c.path
}

// Err returns why the last plan produced no path, if it failed.
func (c *Controller) Err() error {
	if c == nil {
		return nil
	}
	return c.lastErr
}

// Reset drops the path and forces a plan on the next update.
func (c *Controller) Reset() {
	if c == nil {
		return
	}
	c.path = nil
	c.timer = 0
	c.lastErr = nil
}

func (c *Controller) interval() float64 {
	if c.Interval > 0 {
		return c.Interval
	}
	return DefaultRepathInterval
}

func (c *Controller) threshold() float64 {
	if c.Threshold > 0 {
		return c.Threshold
	}
	return DefaultNodeReached
}
