package entity

import (
	"fmt"

	"github.com/milk9111/isometric/prefabs"
)

// Catalog holds the prefab specs entities are built from. The host reloads
// it when a prefab file changes on disk.
type Catalog struct {
	Player prefabs.PlayerSpec
	Enemy  prefabs.EnemySpec
	Bullet prefabs.BulletSpec
	Gem    prefabs.GemSpec

	// Nav applies to enemies whose prefab leaves pathfinding unset.
	Nav NavDefaults
}

type NavDefaults struct {
	RepathInterval float64
	NodeReached    float64
}

func LoadCatalog() (*Catalog, error) {
	cat := &Catalog{}
	if err := cat.Reload(); err != nil {
		return nil, err
	}
	return cat, nil
}

// Reload re-reads every prefab. On error the catalog is left unchanged.
func (c *Catalog) Reload() error {
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	enemy, err := prefabs.LoadEnemySpec()
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	bullet, err := prefabs.LoadBulletSpec()
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	gem, err := prefabs.LoadGemSpec()
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	c.Player, c.Enemy, c.Bullet, c.Gem = *player, *enemy, *bullet, *gem
	return nil
}
