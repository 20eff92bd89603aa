package component

// TTL destroys an entity once Seconds reaches zero.
type TTL struct {
	Seconds float64
}

var TTLComponent = NewComponent[TTL]()
