package entity

import (
	"time"
)

// RawMessage is a single notification as read from the message inbox.
// Messages are immutable; the pipeline never writes back to the source.
type RawMessage struct {
	ID        int64     `json:"id"`
	Sender    string    `json:"sender"`
	Body      string    `json:"body"`
	ArrivedAt time.Time `json:"arrived_at"`
	Read      bool      `json:"read"`
}
