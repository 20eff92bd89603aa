package component

type AI struct {
	MoveSpeed   float64
	Weight      int
	BulletSpeed float64
	// ContactRadius is the body radius used for contact hits on the player.
	ContactRadius float64
	GemValue      int
}

var AIComponent = NewComponent[AI]()
