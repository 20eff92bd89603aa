package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name        string       `yaml:"name"`
	MoveSpeed   float64      `yaml:"move_speed"`
	ShotDelay   float64      `yaml:"shot_delay"`
	BulletSpeed float64      `yaml:"bullet_speed"`
	Collider    ColliderSpec `yaml:"collider"`
	Health      HealthSpec   `yaml:"health"`
	Debug       DebugSpec    `yaml:"debug"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type EnemySpec struct {
	Name          string          `yaml:"name"`
	MoveSpeed     float64         `yaml:"move_speed"`
	Weight        int             `yaml:"weight"`
	BulletSpeed   float64         `yaml:"bullet_speed"`
	ContactRadius float64         `yaml:"contact_radius"`
	GemValue      int             `yaml:"gem_value"`
	Pathfinding   PathfindingSpec `yaml:"pathfinding"`
	Collider      ColliderSpec    `yaml:"collider"`
	Health        HealthSpec      `yaml:"health"`
	Debug         DebugSpec       `yaml:"debug"`
}

func LoadEnemySpec() (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type BulletSpec struct {
	Name     string       `yaml:"name"`
	Damage   int          `yaml:"damage"`
	Radius   float64      `yaml:"radius"`
	Lifetime float64      `yaml:"lifetime"`
	Collider ColliderSpec `yaml:"collider"`
	Debug    DebugSpec    `yaml:"debug"`
}

func LoadBulletSpec() (*BulletSpec, error) {
	spec, err := LoadSpec[BulletSpec]("bullet.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type GemSpec struct {
	Name          string    `yaml:"name"`
	MagnetRadius  float64   `yaml:"magnet_radius"`
	CollectRadius float64   `yaml:"collect_radius"`
	Acceleration  float64   `yaml:"acceleration"`
	MaxSpeed      float64   `yaml:"max_speed"`
	Debug         DebugSpec `yaml:"debug"`
}

func LoadGemSpec() (*GemSpec, error) {
	spec, err := LoadSpec[GemSpec]("gem.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ColliderSpec struct {
	HalfExtent float64 `yaml:"half_extent"`
}

type HealthSpec struct {
	Max          int     `yaml:"max"`
	Invulnerable float64 `yaml:"invulnerable"`
}

// PathfindingSpec overrides the engine-wide chase settings for one prefab.
// Zero fields fall back to the config values.
type PathfindingSpec struct {
	RepathInterval float64 `yaml:"repath_interval"`
	NodeReached    float64 `yaml:"node_reached"`
}

type DebugSpec struct {
	Color *YAMLColor `yaml:"color"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
