package game

import "github.com/google/uuid"

type EventKind string

const (
	EventMatchStarted  EventKind = "match_started"
	EventScoreUpdated  EventKind = "score_updated"
	EventMatchFinished EventKind = "match_finished"
	EventBoardFlushed  EventKind = "board_flushed"
)

// Event describes one applied mutation. Seq increases by one per event emitted
// by the same registry.
type Event struct {
	ID    uuid.UUID `json:"id"`
	Kind  EventKind `json:"kind"`
	Seq   uint64    `json:"seq"`
	Match *Match    `json:"match,omitempty"` // nil for board_flushed
}
