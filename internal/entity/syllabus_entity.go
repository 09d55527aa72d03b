package entity

import (
	"time"

	"github.com/google/uuid"
)

type Syllabus struct {
	Id        uuid.UUID
	TeacherId uuid.UUID
	Title     string
	Subject   string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
