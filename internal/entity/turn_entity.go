package entity

import (
	"time"
)

// Role values a Turn may carry. The "system" role exists only while a
// completion request is assembled and is never persisted.
const (
	TurnRoleUser      = "user"
	TurnRoleAssistant = "assistant"
)

// Turn is one stored chat message. Turns are append-only: no update or
// delete path exists, and ordering is defined by Id.
type Turn struct {
	Id        int64
	UserId    string
	Role      string
	Content   string
	CreatedAt time.Time
}
