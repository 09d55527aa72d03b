package dto

import (
	"time"

	"github.com/google/uuid"
)

type AdminUserResponse struct {
	Id        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type AdminCreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=3"`
	Role     string `json:"role" validate:"required,oneof=student teacher admin"`
}

type AdminUpdateUserRequest struct {
	FullName string `json:"full_name" validate:"omitempty,min=3"`
	Role     string `json:"role" validate:"omitempty,oneof=student teacher admin"`
	Status   string `json:"status" validate:"omitempty,oneof=active blocked"`
}

type SystemLogDTO struct {
	Id        uuid.UUID `json:"id"`
	Level     string    `json:"level"`
	Module    string    `json:"module,omitempty"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type SystemLogsResponse struct {
	Logs  []SystemLogDTO `json:"logs"`
	Total int64          `json:"total"`
}

type AdminStatsResponse struct {
	TotalUsers     int64 `json:"total_users"`
	TotalStudents  int64 `json:"total_students"`
	TotalTeachers  int64 `json:"total_teachers"`
	ActiveSessions int   `json:"active_sessions"`
}
