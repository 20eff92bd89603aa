// Package waves decides the size of each enemy wave. The rules live in a
// tengo script so they can be tuned and hot reloaded without a rebuild.
package waves

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/isometric/prefabs"
)

// DefaultScript is the script file under prefabs/scripts.
const DefaultScript = "waves.tengo"

// DefaultBaseCount is how many enemies each wave level adds.
const DefaultBaseCount = 3

type Plan struct {
	Wave       int
	Count      int
	SpeedScale float64
}

// Fixed is the plan used when no script is available: wave*base enemies at
// normal speed.
func Fixed(wave, base int) Plan {
	if wave < 1 {
		wave = 1
	}
	return Plan{Wave: wave, Count: wave * base, SpeedScale: 1}
}

// Script evaluates a compiled wave script. It reads the globals wave,
// base_count and base_speed and must define count; speed_scale is optional.
type Script struct {
	name      string
	compiled  *tengo.Compiled
	BaseCount int
}

// Load compiles a script from prefabs/scripts.
func Load(name string) (*Script, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("waves: load %s: %w", name, err)
	}
	s, err := Compile(name, src)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// globals are the inputs every wave script can read.
var globals = []struct {
	name  string
	value any
}{
	{"wave", 1},
	{"base_count", DefaultBaseCount},
	{"base_speed", 1.0},
}

func Compile(name string, src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	for _, g := range globals {
		if err := script.Add(g.name, g.value); err != nil {
			return nil, fmt.Errorf("waves: %s: add %s: %w", name, g.name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("waves: compile %s: %w", name, err)
	}
	return &Script{name: name, compiled: compiled, BaseCount: DefaultBaseCount}, nil
}

func (s *Script) Name() string {
	return s.name
}

// Plan runs the script for a 1-based wave number.
func (s *Script) Plan(wave int) (Plan, error) {
	if wave < 1 {
		wave = 1
	}
	if err := s.compiled.Set("wave", wave); err != nil {
		return Plan{}, err
	}
	if err := s.compiled.Set("base_count", s.BaseCount); err != nil {
		return Plan{}, err
	}
	if err := s.compiled.Run(); err != nil {
		return Plan{}, fmt.Errorf("waves: run %s: %w", s.name, err)
	}
	if !s.compiled.IsDefined("count") {
		return Plan{}, fmt.Errorf("waves: %s does not define count", s.name)
	}

	plan := Plan{Wave: wave, Count: s.compiled.Get("count").Int(), SpeedScale: 1}
	if s.compiled.IsDefined("speed_scale") {
		plan.SpeedScale = s.compiled.Get("speed_scale").Float()
	}
	if plan.Count < 0 {
		plan.Count = 0
	}
	if plan.SpeedScale <= 0 {
		plan.SpeedScale = 1
	}
	return plan, nil
}
