package service

import (
	"context"
	"errors"
	"time"

	"studiq-be/internal/dto"
	"studiq-be/internal/entity"
	"studiq-be/internal/repository/specification"
	"studiq-be/internal/repository/unitofwork"
	"studiq-be/pkg/tutor/assessment"

	"github.com/google/uuid"
)

type ITeacherService interface {
	CreateAssessment(ctx context.Context, teacherId uuid.UUID, req *dto.CreateAssessmentRequest) (*dto.AssessmentResponse, error)
	ListAssessments(ctx context.Context, teacherId uuid.UUID) ([]dto.AssessmentResponse, error)
	GetAssessment(ctx context.Context, id uuid.UUID) (*dto.AssessmentResponse, error)
	DeleteAssessment(ctx context.Context, teacherId, id uuid.UUID) error
	SubmitAssessment(ctx context.Context, studentId, assessmentId uuid.UUID, req *dto.SubmitAssessmentRequest) (*dto.SubmissionResponse, error)
	ListSubmissions(ctx context.Context, teacherId, assessmentId uuid.UUID) ([]dto.SubmissionResponse, error)

	CreateSyllabus(ctx context.Context, teacherId uuid.UUID, req *dto.CreateSyllabusRequest) (*dto.SyllabusResponse, error)
	ListSyllabi(ctx context.Context, teacherId uuid.UUID) ([]dto.SyllabusResponse, error)
	UpdateSyllabus(ctx context.Context, teacherId, id uuid.UUID, req *dto.CreateSyllabusRequest) (*dto.SyllabusResponse, error)
	DeleteSyllabus(ctx context.Context, teacherId, id uuid.UUID) error
}

type teacherService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTeacherService(uowFactory unitofwork.RepositoryFactory) ITeacherService {
	return &teacherService{uowFactory: uowFactory}
}

func (s *teacherService) CreateAssessment(ctx context.Context, teacherId uuid.UUID, req *dto.CreateAssessmentRequest) (*dto.AssessmentResponse, error) {
	questions := make([]assessment.Question, 0, len(req.Questions))
	for _, q := range req.Questions {
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return nil, errors.New("question has an out-of-range answer index")
		}
		questions = append(questions, assessment.Question{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}

	a := &entity.Assessment{
		Id:        uuid.New(),
		TeacherId: teacherId,
		Title:     req.Title,
		Subject:   req.Subject,
		Questions: questions,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.AssessmentRepository().Create(ctx, a); err != nil {
		return nil, err
	}

	return toAssessmentResponse(a), nil
}

func (s *teacherService) ListAssessments(ctx context.Context, teacherId uuid.UUID) ([]dto.AssessmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	assessments, err := uow.AssessmentRepository().FindAll(ctx,
		specification.OwnedByTeacher{TeacherID: teacherId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AssessmentResponse, 0, len(assessments))
	for _, a := range assessments {
		out = append(out, *toAssessmentResponse(a))
	}
	return out, nil
}

func (s *teacherService) GetAssessment(ctx context.Context, id uuid.UUID) (*dto.AssessmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	a, err := uow.AssessmentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, errors.New("assessment not found")
	}
	return toAssessmentResponse(a), nil
}

func (s *teacherService) DeleteAssessment(ctx context.Context, teacherId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	a, err := uow.AssessmentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if a == nil {
		return errors.New("assessment not found")
	}
	if a.TeacherId != teacherId {
		return errors.New("assessment belongs to another teacher")
	}
	return uow.AssessmentRepository().Delete(ctx, id)
}

func (s *teacherService) SubmitAssessment(ctx context.Context, studentId, assessmentId uuid.UUID, req *dto.SubmitAssessmentRequest) (*dto.SubmissionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	a, err := uow.AssessmentRepository().FindOne(ctx, specification.ByID{ID: assessmentId})
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, errors.New("assessment not found")
	}
	if len(req.Answers) != len(a.Questions) {
		return nil, errors.New("answer count does not match question count")
	}

	score := 0
	for i, answer := range req.Answers {
		if answer == a.Questions[i].CorrectAnswer {
			score++
		}
	}

	submission := &entity.AssessmentSubmission{
		Id:           uuid.New(),
		AssessmentId: assessmentId,
		StudentId:    studentId,
		Answers:      req.Answers,
		Score:        score,
		Total:        len(a.Questions),
		SubmittedAt:  time.Now(),
	}

	if err := uow.AssessmentRepository().CreateSubmission(ctx, submission); err != nil {
		return nil, err
	}

	return toSubmissionResponse(submission), nil
}

func (s *teacherService) ListSubmissions(ctx context.Context, teacherId, assessmentId uuid.UUID) ([]dto.SubmissionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	a, err := uow.AssessmentRepository().FindOne(ctx, specification.ByID{ID: assessmentId})
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, errors.New("assessment not found")
	}
	if a.TeacherId != teacherId {
		return nil, errors.New("assessment belongs to another teacher")
	}

	submissions, err := uow.AssessmentRepository().FindSubmissions(ctx,
		specification.ForAssessment{AssessmentID: assessmentId},
		specification.OrderBy{Field: "submitted_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SubmissionResponse, 0, len(submissions))
	for _, sub := range submissions {
		out = append(out, *toSubmissionResponse(sub))
	}
	return out, nil
}

func (s *teacherService) CreateSyllabus(ctx context.Context, teacherId uuid.UUID, req *dto.CreateSyllabusRequest) (*dto.SyllabusResponse, error) {
	syllabus := &entity.Syllabus{
		Id:        uuid.New(),
		TeacherId: teacherId,
		Title:     req.Title,
		Subject:   req.Subject,
		Content:   req.Content,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SyllabusRepository().Create(ctx, syllabus); err != nil {
		return nil, err
	}

	return toSyllabusResponse(syllabus), nil
}

func (s *teacherService) ListSyllabi(ctx context.Context, teacherId uuid.UUID) ([]dto.SyllabusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	syllabi, err := uow.SyllabusRepository().FindAll(ctx,
		specification.OwnedByTeacher{TeacherID: teacherId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SyllabusResponse, 0, len(syllabi))
	for _, syl := range syllabi {
		out = append(out, *toSyllabusResponse(syl))
	}
	return out, nil
}

func (s *teacherService) UpdateSyllabus(ctx context.Context, teacherId, id uuid.UUID, req *dto.CreateSyllabusRequest) (*dto.SyllabusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	syllabus, err := uow.SyllabusRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if syllabus == nil {
		return nil, errors.New("syllabus not found")
	}
	if syllabus.TeacherId != teacherId {
		return nil, errors.New("syllabus belongs to another teacher")
	}

	syllabus.Title = req.Title
	syllabus.Subject = req.Subject
	syllabus.Content = req.Content
	syllabus.UpdatedAt = time.Now()

	if err := uow.SyllabusRepository().Update(ctx, syllabus); err != nil {
		return nil, err
	}

	return toSyllabusResponse(syllabus), nil
}

func (s *teacherService) DeleteSyllabus(ctx context.Context, teacherId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	syllabus, err := uow.SyllabusRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if syllabus == nil {
		return errors.New("syllabus not found")
	}
	if syllabus.TeacherId != teacherId {
		return errors.New("syllabus belongs to another teacher")
	}
	return uow.SyllabusRepository().Delete(ctx, id)
}

func toAssessmentResponse(a *entity.Assessment) *dto.AssessmentResponse {
	questions := make([]dto.QuizQuestionDTO, 0, len(a.Questions))
	for _, q := range a.Questions {
		questions = append(questions, dto.QuizQuestionDTO{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return &dto.AssessmentResponse{
		Id:        a.Id,
		TeacherId: a.TeacherId,
		Title:     a.Title,
		Subject:   a.Subject,
		Questions: questions,
		CreatedAt: a.CreatedAt,
	}
}

func toSubmissionResponse(s *entity.AssessmentSubmission) *dto.SubmissionResponse {
	return &dto.SubmissionResponse{
		Id:           s.Id,
		AssessmentId: s.AssessmentId,
		StudentId:    s.StudentId,
		Score:        s.Score,
		Total:        s.Total,
		SubmittedAt:  s.SubmittedAt,
	}
}

func toSyllabusResponse(s *entity.Syllabus) *dto.SyllabusResponse {
	return &dto.SyllabusResponse{
		Id:        s.Id,
		TeacherId: s.TeacherId,
		Title:     s.Title,
		Subject:   s.Subject,
		Content:   s.Content,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
