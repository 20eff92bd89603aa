package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type EnemyTag struct{}

var EnemyTagComponent = NewComponent[EnemyTag]()

// DeadTag marks an entity for removal at the end of the tick.
type DeadTag struct{}

var DeadTagComponent = NewComponent[DeadTag]()

// LevelTag marks entities owned by the loaded map. They are destroyed when
// the map is unloaded.
type LevelTag struct{}

var LevelTagComponent = NewComponent[LevelTag]()
