package entity

import (
	"time"

	"github.com/google/uuid"

	"studiq-be/pkg/tutor/style"
)

// LearningProfile is the persisted outcome of the onboarding quiz: the
// mapped style plus the raw answers it was derived from.
type LearningProfile struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Style     style.Style
	Answers   map[string]string
	CreatedAt time.Time
	UpdatedAt time.Time
}
