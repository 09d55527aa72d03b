package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studiq-be/internal/constant"
	"studiq-be/internal/dto"
	"studiq-be/internal/entity"
	"studiq-be/internal/pkg/logger"
	"studiq-be/internal/repository/specification"
	"studiq-be/internal/repository/unitofwork"
	"studiq-be/pkg/events"
	"studiq-be/pkg/extract"
	"studiq-be/pkg/genai"
	"studiq-be/pkg/speech"
	"studiq-be/pkg/store"
	"studiq-be/pkg/tutor/assessment"
	"studiq-be/pkg/tutor/preference"
	"studiq-be/pkg/tutor/prompt"
	"studiq-be/pkg/tutor/style"
	"studiq-be/pkg/tutor/visual"

	"github.com/google/uuid"
)

type ITutorService interface {
	SendChat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error)
	SetStyle(ctx context.Context, userId uuid.UUID, req *dto.SetStyleRequest) (*dto.ProfileResponse, error)
	UploadDocument(ctx context.Context, userId uuid.UUID, filename, path string) (*dto.UploadResponse, error)
	GetDocuments(ctx context.Context, userId uuid.UUID) ([]dto.DocumentDTO, error)
	GetHistory(ctx context.Context, userId uuid.UUID) (*dto.HistoryResponse, error)
	GenerateQuiz(ctx context.Context, userId uuid.UUID, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error)
}

type tutorService struct {
	uowFactory  unitofwork.RepositoryFactory
	sessions    *store.SessionStore
	documents   *store.DocumentStore
	generator   genai.Generator
	synthesizer speech.Synthesizer
	publisher   *events.Publisher
	logger      logger.ILogger
}

func NewTutorService(
	uowFactory unitofwork.RepositoryFactory,
	sessions *store.SessionStore,
	documents *store.DocumentStore,
	generator genai.Generator,
	synthesizer speech.Synthesizer,
	publisher *events.Publisher,
	sysLogger logger.ILogger,
) ITutorService {
	return &tutorService{
		uowFactory:  uowFactory,
		sessions:    sessions,
		documents:   documents,
		generator:   generator,
		synthesizer: synthesizer,
		publisher:   publisher,
		logger:      sysLogger,
	}
}

// ensureSession returns the live session for the user, creating it from the
// persisted learning profile on first contact.
func (s *tutorService) ensureSession(ctx context.Context, userId uuid.UUID) (*store.Session, *entity.LearningProfile, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.LearningProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, nil, err
	}

	initial := style.Blended
	if profile != nil {
		initial = profile.Style
	}

	session := s.sessions.GetOrCreate(userId.String(), initial, constant.WelcomeMessage)
	return session, profile, nil
}

func (s *tutorService) SendChat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	session, profile, err := s.ensureSession(ctx, userId)
	if err != nil {
		return nil, err
	}

	var answers map[string]string
	if profile != nil {
		answers = profile.Answers
	}
	personalization := preference.Summary(answers)

	excerpt := ""
	if doc, ok := session.LatestDocument(); ok {
		if text, found := s.documents.Get(doc.Id); found {
			excerpt = text
		}
	}

	st := session.Style()
	history := session.Recent(prompt.HistoryWindow)

	session.AppendTurn(store.ChatTurn{
		Role:      store.ChatRoleUser,
		Content:   req.Message,
		Timestamp: time.Now(),
	})

	composed := prompt.NewBuilder(st, personalization, history, excerpt, req.Message).Build()

	response := constant.GeneratorFallbackResponse
	if s.generator.Available() {
		generated, genErr := s.generator.Generate(ctx, composed)
		if genErr != nil {
			s.logger.Warn("tutor", "generation failed, serving fallback", map[string]interface{}{
				"user_id": userId,
				"error":   genErr.Error(),
			})
		} else {
			response = generated
		}
	}

	if st == style.Visual {
		response = visual.Enhance(response)
	}

	turn := store.ChatTurn{
		Role:      store.ChatRoleAssistant,
		Content:   response,
		Timestamp: time.Now(),
	}

	if st == style.Auditory && s.synthesizer.Available() {
		audio, ttsErr := s.synthesizer.Synthesize(ctx, response, session.Id())
		if ttsErr != nil {
			s.logger.Warn("tutor", "speech synthesis failed", map[string]interface{}{
				"user_id": userId,
				"error":   ttsErr.Error(),
			})
		} else {
			turn.AudioURL = audio.URL
			turn.AudioPath = audio.Path
		}
	}

	session.AppendTurn(turn)

	return &dto.ChatResponse{
		Response:  turn.Content,
		Timestamp: turn.Timestamp.Unix(),
		AudioURL:  turn.AudioURL,
	}, nil
}

func (s *tutorService) SetStyle(ctx context.Context, userId uuid.UUID, req *dto.SetStyleRequest) (*dto.ProfileResponse, error) {
	parsed, err := style.Parse(req.Style)
	if err != nil {
		return nil, err
	}

	session, profile, err := s.ensureSession(ctx, userId)
	if err != nil {
		return nil, err
	}

	session.SetStyle(parsed)

	// Write the change back so the next session starts with the same style.
	answers := map[string]string{}
	if profile != nil && profile.Answers != nil {
		answers = profile.Answers
	}
	answers["learningStyle"] = style.ToQuizAnswer(parsed)

	updated := &entity.LearningProfile{
		Id:        uuid.New(),
		UserId:    userId,
		Style:     parsed,
		Answers:   answers,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.LearningProfileRepository().Upsert(ctx, updated); err != nil {
		return nil, err
	}

	desc := style.ProfileFor(parsed)
	session.AppendTurn(store.ChatTurn{
		Role:      store.ChatRoleAssistant,
		Content:   "I've updated my teaching approach for a " + desc.Description + ". " + desc.Example,
		Timestamp: time.Now(),
	})

	if err := s.publisher.Publish(ctx, events.New(events.TypeStyleChanged, map[string]interface{}{
		"user_id": userId,
		"style":   string(parsed),
	})); err != nil {
		s.logger.Warn("tutor", "failed to publish style change", map[string]interface{}{"error": err.Error()})
	}

	return &dto.ProfileResponse{
		Style:       string(parsed),
		Description: desc.Description,
		Answers:     answers,
	}, nil
}

func (s *tutorService) UploadDocument(ctx context.Context, userId uuid.UUID, filename, path string) (*dto.UploadResponse, error) {
	session, _, err := s.ensureSession(ctx, userId)
	if err != nil {
		return nil, err
	}

	text, err := extract.Extract(path)
	if err != nil {
		return nil, err
	}

	ref := store.DocumentRef{
		Id:         uuid.New().String(),
		Filename:   filename,
		Path:       path,
		UploadedAt: time.Now(),
	}

	s.documents.Put(ref.Id, text)
	session.AddDocument(ref)

	session.AppendTurn(store.ChatTurn{
		Role:      store.ChatRoleAssistant,
		Content:   fmt.Sprintf("I've processed your document %q. You can now ask me questions about it!", filename),
		Timestamp: time.Now(),
	})

	if err := s.publisher.Publish(ctx, events.New(events.TypeDocumentUploaded, map[string]interface{}{
		"user_id":  userId,
		"filename": filename,
	})); err != nil {
		s.logger.Warn("tutor", "failed to publish document upload", map[string]interface{}{"error": err.Error()})
	}

	return &dto.UploadResponse{
		Document: dto.DocumentDTO{
			Id:         ref.Id,
			Filename:   ref.Filename,
			UploadedAt: ref.UploadedAt,
		},
		TextLength: len(text),
		Message:    "Document uploaded and processed successfully",
	}, nil
}

func (s *tutorService) GetDocuments(ctx context.Context, userId uuid.UUID) ([]dto.DocumentDTO, error) {
	session, _, err := s.ensureSession(ctx, userId)
	if err != nil {
		return nil, err
	}

	refs := session.Documents()
	docs := make([]dto.DocumentDTO, 0, len(refs))
	for _, ref := range refs {
		docs = append(docs, dto.DocumentDTO{
			Id:         ref.Id,
			Filename:   ref.Filename,
			UploadedAt: ref.UploadedAt,
		})
	}
	return docs, nil
}

func (s *tutorService) GetHistory(ctx context.Context, userId uuid.UUID) (*dto.HistoryResponse, error) {
	session, _, err := s.ensureSession(ctx, userId)
	if err != nil {
		return nil, err
	}

	history := session.History()
	turns := make([]dto.ChatTurnDTO, 0, len(history))
	for _, turn := range history {
		turns = append(turns, dto.ChatTurnDTO{
			Role:      turn.Role,
			Content:   turn.Content,
			Timestamp: turn.Timestamp.Unix(),
			AudioURL:  turn.AudioURL,
		})
	}
	return &dto.HistoryResponse{Turns: turns}, nil
}

func (s *tutorService) GenerateQuiz(ctx context.Context, userId uuid.UUID, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
	session, profile, err := s.ensureSession(ctx, userId)
	if err != nil {
		return nil, err
	}

	doc, ok := session.LatestDocument()
	if !ok {
		return nil, errors.New("no document uploaded yet")
	}
	content, found := s.documents.Get(doc.Id)
	if !found {
		return nil, errors.New("document content is no longer available")
	}

	if !s.generator.Available() {
		return nil, genai.ErrUnavailable
	}

	var answers map[string]string
	if profile != nil {
		answers = profile.Answers
	}

	quizPrompt := assessment.BuildPrompt(content, session.Style(), answers, req.QuestionCount)
	raw, err := s.generator.Generate(ctx, quizPrompt)
	if err != nil {
		return nil, err
	}

	questions, err := assessment.ParseQuestions(raw)
	if err != nil {
		return nil, err
	}

	out := make([]dto.QuizQuestionDTO, 0, len(questions))
	for _, q := range questions {
		out = append(out, dto.QuizQuestionDTO{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return &dto.GenerateQuizResponse{Questions: out}, nil
}
