package service

import (
	"context"
	"errors"
	"time"

	"studiq-be/internal/dto"
	"studiq-be/internal/entity"
	"studiq-be/internal/repository/specification"
	"studiq-be/internal/repository/unitofwork"
	"studiq-be/pkg/store"
	"studiq-be/pkg/tutor/style"

	"github.com/google/uuid"
)

type IProfileService interface {
	SaveQuiz(ctx context.Context, userId uuid.UUID, req *dto.SaveQuizRequest) (*dto.ProfileResponse, error)
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
}

type profileService struct {
	uowFactory unitofwork.RepositoryFactory
	sessions   *store.SessionStore
}

func NewProfileService(uowFactory unitofwork.RepositoryFactory, sessions *store.SessionStore) IProfileService {
	return &profileService{
		uowFactory: uowFactory,
		sessions:   sessions,
	}
}

func (s *profileService) SaveQuiz(ctx context.Context, userId uuid.UUID, req *dto.SaveQuizRequest) (*dto.ProfileResponse, error) {
	if len(req.Answers) == 0 {
		return nil, errors.New("quiz answers are required")
	}

	mapped := style.FromQuizAnswer(req.Answers["learningStyle"])

	profile := &entity.LearningProfile{
		Id:        uuid.New(),
		UserId:    userId,
		Style:     mapped,
		Answers:   req.Answers,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.LearningProfileRepository().Upsert(ctx, profile); err != nil {
		return nil, err
	}

	// Keep any live tutoring session in step with the new style.
	if session, ok := s.sessions.Get(userId.String()); ok {
		session.SetStyle(mapped)
	}

	return s.toResponse(profile), nil
}

func (s *profileService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.LearningProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		// No quiz taken yet; report the adaptive default.
		return &dto.ProfileResponse{
			Style:       string(style.Blended),
			Description: style.ProfileFor(style.Blended).Description,
		}, nil
	}

	return s.toResponse(profile), nil
}

func (s *profileService) toResponse(profile *entity.LearningProfile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		Style:       string(profile.Style),
		Description: style.ProfileFor(profile.Style).Description,
		Answers:     profile.Answers,
	}
}
