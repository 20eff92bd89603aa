package component

// Invulnerable marks an entity as temporarily immune to damage.
// Seconds counts down each tick and the component is removed at zero.
type Invulnerable struct {
	Seconds float64
}

var InvulnerableComponent = NewComponent[Invulnerable]()
