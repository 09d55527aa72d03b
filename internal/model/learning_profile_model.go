package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type LearningProfile struct {
	Id        uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID         `gorm:"type:uuid;uniqueIndex;not null"`
	Style     string            `gorm:"type:varchar(50);not null;default:'blended'"`
	Answers   datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt time.Time         `gorm:"autoCreateTime"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime"`
}

func (LearningProfile) TableName() string {
	return "learning_profiles"
}
