package ecs

import "github.com/milk9111/isometric/common"

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

type EventType string

const (
	EventEnemyKilled  EventType = "enemy_killed"
	EventPlayerHit    EventType = "player_hit"
	EventGemCollected EventType = "gem_collected"
	EventWaveSpawned  EventType = "wave_spawned"
)

// EnemyKilled is the payload of EventEnemyKilled.
type EnemyKilled struct {
	Entity   Entity
	Position common.Vec3
	Value    int
}

// WaveSpawned is the payload of EventWaveSpawned.
type WaveSpawned struct {
	Wave    int
	Spawned int
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Peek returns pending events without clearing them.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
