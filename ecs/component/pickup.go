package component

// Pickup is an experience gem. Once the player comes within MagnetRadius it
// stays magnetized and accelerates toward the player until collected.
type Pickup struct {
	Value         int
	MagnetRadius  float64
	CollectRadius float64
	Acceleration  float64
	MaxSpeed      float64
	Speed         float64
	Magnetized    bool
}

var PickupComponent = NewComponent[Pickup]()
