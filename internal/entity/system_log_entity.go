package entity

import (
	"time"

	"github.com/google/uuid"
)

// SystemLog is a persisted audit record, fed by the in-process event bus.
type SystemLog struct {
	Id        uuid.UUID
	Level     string
	Module    *string
	Message   string
	Details   *string
	CreatedAt time.Time
}
