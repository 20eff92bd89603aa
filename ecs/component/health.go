package component

type Health struct {
	Current int
	Max     int
	// InvulnerableFor is granted after each hit. Zero means none.
	InvulnerableFor float64
}

var HealthComponent = NewComponent[Health]()
