package service

import (
	"context"
	"errors"
	"time"

	"studiq-be/internal/dto"
	"studiq-be/internal/entity"
	"studiq-be/internal/pkg/logger"
	"studiq-be/internal/repository/specification"
	"studiq-be/internal/repository/unitofwork"
	"studiq-be/pkg/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAdminService interface {
	ListUsers(ctx context.Context) ([]dto.AdminUserResponse, error)
	CreateUser(ctx context.Context, req *dto.AdminCreateUserRequest) (*dto.AdminUserResponse, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *dto.AdminUpdateUserRequest) (*dto.AdminUserResponse, error)
	DeleteUser(ctx context.Context, actorId, id uuid.UUID) error
	GetStats(ctx context.Context) (*dto.AdminStatsResponse, error)
	GetSystemLogs(ctx context.Context, level string, limit, offset int) (*dto.SystemLogsResponse, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	sessions   *store.SessionStore
	logger     logger.ILogger
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, sessions *store.SessionStore, sysLogger logger.ILogger) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		sessions:   sessions,
		logger:     sysLogger,
	}
}

func (s *adminService) ListUsers(ctx context.Context) ([]dto.AdminUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	users, err := uow.UserRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	out := make([]dto.AdminUserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toAdminUserResponse(u))
	}
	return out, nil
}

func (s *adminService) CreateUser(ctx context.Context, req *dto.AdminCreateUserRequest) (*dto.AdminUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: &hashStr,
		Role:         entity.UserRole(req.Role),
		Status:       entity.UserStatusActive,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("admin", "user created", map[string]interface{}{
		"user_id": user.Id,
		"role":    string(user.Role),
	})

	resp := toAdminUserResponse(user)
	return &resp, nil
}

func (s *adminService) UpdateUser(ctx context.Context, id uuid.UUID, req *dto.AdminUpdateUserRequest) (*dto.AdminUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Role != "" {
		user.Role = entity.UserRole(req.Role)
	}
	if req.Status != "" {
		user.Status = entity.UserStatus(req.Status)
	}
	user.UpdatedAt = time.Now()

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	resp := toAdminUserResponse(user)
	return &resp, nil
}

func (s *adminService) DeleteUser(ctx context.Context, actorId, id uuid.UUID) error {
	if actorId == id {
		return errors.New("admins cannot delete their own account")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Delete(ctx, id); err != nil {
		return err
	}
	if err := uow.LearningProfileRepository().DeleteByUser(ctx, id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	// Drop any live tutoring session for the removed account.
	s.sessions.Delete(id.String())

	s.logger.Info("admin", "user deleted", map[string]interface{}{
		"user_id":  id,
		"actor_id": actorId,
	})
	return nil
}

func (s *adminService) GetStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()

	total, err := repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	students, err := repo.Count(ctx, specification.ByRole{Role: string(entity.UserRoleStudent)})
	if err != nil {
		return nil, err
	}
	teachers, err := repo.Count(ctx, specification.ByRole{Role: string(entity.UserRoleTeacher)})
	if err != nil {
		return nil, err
	}

	return &dto.AdminStatsResponse{
		TotalUsers:     total,
		TotalStudents:  students,
		TotalTeachers:  teachers,
		ActiveSessions: s.sessions.Len(),
	}, nil
}

func (s *adminService) GetSystemLogs(ctx context.Context, level string, limit, offset int) (*dto.SystemLogsResponse, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.SystemLogRepository()

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	}
	countSpecs := []specification.Specification{}
	if level != "" {
		specs = append(specs, specification.ByLevel{Level: level})
		countSpecs = append(countSpecs, specification.ByLevel{Level: level})
	}

	logs, err := repo.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	total, err := repo.Count(ctx, countSpecs...)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SystemLogDTO, 0, len(logs))
	for _, l := range logs {
		entry := dto.SystemLogDTO{
			Id:        l.Id,
			Level:     l.Level,
			Message:   l.Message,
			CreatedAt: l.CreatedAt,
		}
		if l.Module != nil {
			entry.Module = *l.Module
		}
		if l.Details != nil {
			entry.Details = *l.Details
		}
		out = append(out, entry)
	}

	return &dto.SystemLogsResponse{Logs: out, Total: total}, nil
}

func toAdminUserResponse(u *entity.User) dto.AdminUserResponse {
	return dto.AdminUserResponse{
		Id:        u.Id,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      string(u.Role),
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
	}
}
