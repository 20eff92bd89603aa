package motion

import (
	"errors"
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/isometric/common"
	"github.com/milk9111/isometric/grid"
	"github.com/milk9111/isometric/pathfind"
)

type stubTarget struct {
	pos   common.Vec3
	alive bool
}

func (s *stubTarget) Position() common.Vec3 { return s.pos }
func (s *stubTarget) Alive() bool           { return s.alive }

type countingPlanner struct {
	calls int
	path  pathfind.Path
	err   error
}

func (p *countingPlanner) FindPath(_, _ common.Vec3) (pathfind.Path, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return append(pathfind.Path{}, p.path...), nil
}

func nearly(a, b cp.Vector) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestControllerReplanTiming(t *testing.T) {
	planner := &countingPlanner{path: pathfind.Path{{X: 10}, {X: 11}, {X: 12}}}
	target := &stubTarget{pos: common.V3(12, 0, 0), alive: true}
	c := NewController(3)
	c.Interval = 1.0

	wantCalls := []int{1, 1, 1, 1, 2, 2, 2, 2, 3}
	for tick, want := range wantCalls {
		c.Update(0.25, common.V3(0, 0, 0), target, planner)
		if planner.calls != want {
			t.Fatalf("tick %d: expected %d plans, got %d", tick, want, planner.calls)
		}
	}
}

func TestControllerReplansWhenPathEmpty(t *testing.T) {
	planner := &countingPlanner{path: pathfind.Path{}}
	target := &stubTarget{pos: common.V3(0, 0, 0), alive: true}
	c := NewController(3)

	for tick := 1; tick <= 3; tick++ {
		v := c.Update(0.1, common.V3(0, 0, 0), target, planner)
		if v != (cp.Vector{}) {
			t.Fatalf("tick %d: expected zero velocity, got %v", tick, v)
		}
		if planner.calls != tick {
			t.Fatalf("tick %d: expected a plan every tick, got %d", tick, planner.calls)
		}
	}
}

func TestControllerTargetGone(t *testing.T) {
	planner := &countingPlanner{path: pathfind.Path{{X: 1}, {X: 2}}}
	target := &stubTarget{pos: common.V3(2, 0, 0), alive: true}
	c := NewController(3)

	if v := c.Update(0.1, common.V3(0, 0, 0), target, planner); v == (cp.Vector{}) {
		t.Fatalf("expected movement toward live target")
	}
	if c.State() != Following {
		t.Fatalf("expected following state, got %v", c.State())
	}

	target.alive = false
	if v := c.Update(0.1, common.V3(0, 0, 0), target, planner); v != (cp.Vector{}) {
		t.Fatalf("expected zero velocity for dead target, got %v", v)
	}
	if c.State() != NoPath || c.Path() != nil {
		t.Fatalf("expected path discarded, got %v", c.Path())
	}
	if planner.calls != 1 {
		t.Fatalf("dead target must not trigger planning, calls=%d", planner.calls)
	}

	if v := c.Update(0.1, common.V3(0, 0, 0), nil, planner); v != (cp.Vector{}) {
		t.Fatalf("expected zero velocity for nil target, got %v", v)
	}
}

func TestControllerFollowsWaypoints(t *testing.T) {
	tests := []struct {
		name      string
		path      pathfind.Path
		self      common.Vec3
		want      cp.Vector
		wantState State
	}{
		{
			name:      "toward_first",
			path:      pathfind.Path{{X: 1, Y: 1}, {X: 2, Y: 2}},
			self:      common.V3(0, 0, 0),
			want:      cp.Vector{X: 2 / math.Sqrt2, Y: 2 / math.Sqrt2},
			wantState: Following,
		},
		{
			name:      "pops_reached_node",
			path:      pathfind.Path{{X: 1, Y: 1}, {X: 2, Y: 1}},
			self:      common.V3(0.9, 1, 0),
			want:      cp.Vector{X: 2, Y: 0},
			wantState: Following,
		},
		{
			name:      "arrived",
			path:      pathfind.Path{{X: 1, Y: 1}},
			self:      common.V3(1, 1.2, 0),
			want:      cp.Vector{},
			wantState: NoPath,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewController(2)
			planner := &countingPlanner{path: tc.path}
			target := &stubTarget{alive: true}
			got := c.Update(0.016, tc.self, target, planner)
			if !nearly(got, tc.want) {
				t.Fatalf("velocity %v, want %v", got, tc.want)
			}
			if c.State() != tc.wantState {
				t.Fatalf("state %v, want %v", c.State(), tc.wantState)
			}
		})
	}
}

func TestControllerWithFinder(t *testing.T) {
	solid := grid.NewSolidSet()
	for x := -1; x <= 5; x++ {
		solid.Add(grid.Cell{X: x, Y: -1})
		solid.Add(grid.Cell{X: x, Y: 5})
		solid.Add(grid.Cell{X: -1, Y: x})
		solid.Add(grid.Cell{X: 5, Y: x})
	}
	finder := pathfind.NewFinder(solid)

	t.Run("chases_over_open_ground", func(t *testing.T) {
		c := NewController(3)
		target := &stubTarget{pos: common.V3(4.2, 3.9, 0), alive: true}
		v := c.Update(0.016, common.V3(0, 0, 0), target, finder)
		if !nearly(v, cp.Vector{X: 3 / math.Sqrt2, Y: 3 / math.Sqrt2}) {
			t.Fatalf("unexpected velocity %v", v)
		}
		if got := len(c.Path()); got != 4 {
			t.Fatalf("expected 4 waypoints, got %d", got)
		}
	})

	t.Run("blocked_target_stands_still", func(t *testing.T) {
		solid.Add(grid.Cell{X: 3, Y: 3})
		defer solid.Remove(grid.Cell{X: 3, Y: 3})

		c := NewController(3)
		target := &stubTarget{pos: common.V3(3, 3, 0), alive: true}
		v := c.Update(0.016, common.V3(0, 0, 0), target, finder)
		if v != (cp.Vector{}) {
			t.Fatalf("expected zero velocity, got %v", v)
		}
		if !errors.Is(c.Err(), pathfind.ErrTargetBlocked) {
			t.Fatalf("expected ErrTargetBlocked, got %v", c.Err())
		}
		if c.State() != NoPath {
			t.Fatalf("expected NoPath, got %v", c.State())
		}
	})
}

func TestFacingOf(t *testing.T) {
	cases := []struct {
		v      cp.Vector
		want   Facing
		wantOK bool
	}{
		{cp.Vector{}, FacingSouth, false},
		{cp.Vector{X: 2, Y: 1}, FacingEast, true},
		{cp.Vector{X: -2, Y: 1}, FacingWest, true},
		{cp.Vector{X: 1, Y: 2}, FacingSouth, true},
		{cp.Vector{X: 1, Y: -2}, FacingNorth, true},
		{cp.Vector{X: 1, Y: 1}, FacingSouth, true},
	}
	for _, c := range cases {
		got, ok := FacingOf(c.v)
		if got != c.want || ok != c.wantOK {
			t.Fatalf("FacingOf(%v) = %v,%v want %v,%v", c.v, got, ok, c.want, c.wantOK)
		}
	}
}
