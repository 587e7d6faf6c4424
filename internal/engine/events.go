package engine

import "github.com/vovakirdan/tui-invaders/internal/core"

// EventType identifies something notable that happened during one Update.
type EventType int

const (
	EventEnemyHit EventType = iota
	EventEnemyKilled
	EventShieldHit
	EventShieldDestroyed
	EventPlayerHit
	EventFormationBounce
	EventWaveCleared
	EventGameOver
)

// String returns the name of the event type.
func (t EventType) String() string {
	switch t {
	case EventEnemyHit:
		return "enemy_hit"
	case EventEnemyKilled:
		return "enemy_killed"
	case EventShieldHit:
		return "shield_hit"
	case EventShieldDestroyed:
		return "shield_destroyed"
	case EventPlayerHit:
		return "player_hit"
	case EventFormationBounce:
		return "formation_bounce"
	case EventWaveCleared:
		return "wave_cleared"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a record of one state transition. Value carries the event-specific
// number: points awarded, remaining health or lives, or the new level.
type Event struct {
	Type  EventType
	Pos   core.Point
	Value int
}

func (e *Engine) emit(t EventType, pos core.Point, value int) {
	e.events = append(e.events, Event{Type: t, Pos: pos, Value: value})
}
