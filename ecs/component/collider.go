package component

// Collider is the axis-aligned square footprint used against solid tiles.
type Collider struct {
	HalfExtent float64
}

var ColliderComponent = NewComponent[Collider]()
