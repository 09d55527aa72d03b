package service

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"studiq-be/internal/constant"
	"studiq-be/internal/dto"
	"studiq-be/internal/entity"
	"studiq-be/internal/repository/contract"
	"studiq-be/internal/repository/specification"
	"studiq-be/internal/repository/unitofwork"
	"studiq-be/pkg/events"
	"studiq-be/pkg/speech"
	"studiq-be/pkg/store"
	"studiq-be/pkg/tutor/style"
)

// fakeProfileRepo keeps one profile in memory.
type fakeProfileRepo struct {
	profile *entity.LearningProfile
}

func (r *fakeProfileRepo) Upsert(ctx context.Context, profile *entity.LearningProfile) error {
	r.profile = profile
	return nil
}

func (r *fakeProfileRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LearningProfile, error) {
	return r.profile, nil
}

func (r *fakeProfileRepo) DeleteByUser(ctx context.Context, userId uuid.UUID) error {
	r.profile = nil
	return nil
}

type fakeUow struct {
	profiles *fakeProfileRepo
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository                       { return nil }
func (u *fakeUow) LearningProfileRepository() contract.LearningProfileRepository { return u.profiles }
func (u *fakeUow) AssessmentRepository() contract.AssessmentRepository           { return nil }
func (u *fakeUow) SyllabusRepository() contract.SyllabusRepository               { return nil }
func (u *fakeUow) SystemLogRepository() contract.SystemLogRepository             { return nil }

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

type fakeGenerator struct {
	available bool
	response  string
	err       error
	prompts   []string
}

func (g *fakeGenerator) Available() bool { return g.available }

func (g *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

type fakeSynth struct {
	available bool
	calls     int
}

func (s *fakeSynth) Available() bool { return s.available }

func (s *fakeSynth) Synthesize(ctx context.Context, text, sessionId string) (*speech.Result, error) {
	s.calls++
	return &speech.Result{URL: "/audio/" + sessionId + ".mp3", Path: "/tmp/" + sessionId + ".mp3"}, nil
}

type tutorFixture struct {
	svc       ITutorService
	sessions  *store.SessionStore
	documents *store.DocumentStore
	profiles  *fakeProfileRepo
	generator *fakeGenerator
	synth     *fakeSynth
}

func newTutorFixture(profile *entity.LearningProfile, generator *fakeGenerator, synth *fakeSynth) *tutorFixture {
	profiles := &fakeProfileRepo{profile: profile}
	sessions := store.NewSessionStore()
	documents := store.NewDocumentStore()

	svc := NewTutorService(
		&fakeFactory{uow: &fakeUow{profiles: profiles}},
		sessions,
		documents,
		generator,
		synth,
		events.NewPublisher(nil, ""),
		nopLogger{},
	)
	return &tutorFixture{
		svc:       svc,
		sessions:  sessions,
		documents: documents,
		profiles:  profiles,
		generator: generator,
		synth:     synth,
	}
}

func TestSendChatFallbackWhenGeneratorUnavailable(t *testing.T) {
	fx := newTutorFixture(nil, &fakeGenerator{available: false}, &fakeSynth{})
	userId := uuid.New()

	res, err := fx.svc.SendChat(context.Background(), userId, &dto.ChatRequest{Message: "explain recursion"})
	require.NoError(t, err)
	require.Equal(t, constant.GeneratorFallbackResponse, res.Response)

	session, ok := fx.sessions.Get(userId.String())
	require.True(t, ok)
	// welcome + user + assistant
	require.Len(t, session.History(), 3)
}

func TestSendChatTimestampIsEpochSeconds(t *testing.T) {
	fx := newTutorFixture(nil, &fakeGenerator{available: true, response: "hi"}, &fakeSynth{})

	res, err := fx.svc.SendChat(context.Background(), uuid.New(), &dto.ChatRequest{Message: "hello"})
	require.NoError(t, err)
	require.InDelta(t, time.Now().Unix(), res.Timestamp, 5)

	// Clients parse the timestamp as a JSON number, never a string.
	payload, err := json.Marshal(res)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &decoded))
	require.IsType(t, float64(0), decoded["timestamp"])
}

func TestSendChatFallbackOnGeneratorError(t *testing.T) {
	fx := newTutorFixture(nil, &fakeGenerator{available: true, err: errors.New("boom")}, &fakeSynth{})

	res, err := fx.svc.SendChat(context.Background(), uuid.New(), &dto.ChatRequest{Message: "hi"})
	require.NoError(t, err)
	require.Equal(t, constant.GeneratorFallbackResponse, res.Response)
}

func TestSendChatEnhancesVisualResponses(t *testing.T) {
	profile := &entity.LearningProfile{
		UserId:  uuid.New(),
		Style:   style.Visual,
		Answers: map[string]string{"learningStyle": "Watching videos"},
	}
	generator := &fakeGenerator{available: true, response: "- first point\n- second point"}
	fx := newTutorFixture(profile, generator, &fakeSynth{})

	res, err := fx.svc.SendChat(context.Background(), profile.UserId, &dto.ChatRequest{Message: "summarize"})
	require.NoError(t, err)
	require.Contains(t, res.Response, "📌")
	require.Empty(t, res.AudioURL)
}

func TestSendChatSynthesizesForAuditoryLearners(t *testing.T) {
	profile := &entity.LearningProfile{
		UserId: uuid.New(),
		Style:  style.Auditory,
	}
	synth := &fakeSynth{available: true}
	fx := newTutorFixture(profile, &fakeGenerator{available: true, response: "spoken answer"}, synth)

	res, err := fx.svc.SendChat(context.Background(), profile.UserId, &dto.ChatRequest{Message: "tell me"})
	require.NoError(t, err)
	require.Equal(t, 1, synth.calls)
	require.NotEmpty(t, res.AudioURL)
}

func TestSendChatIncludesDocumentExcerpt(t *testing.T) {
	generator := &fakeGenerator{available: true, response: "about your doc"}
	fx := newTutorFixture(nil, generator, &fakeSynth{})
	userId := uuid.New()

	dir := t.TempDir()
	path := filepath.Join(dir, "lecture.txt")
	require.NoError(t, os.WriteFile(path, []byte("photosynthesis converts light"), 0o644))

	_, err := fx.svc.UploadDocument(context.Background(), userId, "lecture.txt", path)
	require.NoError(t, err)

	_, err = fx.svc.SendChat(context.Background(), userId, &dto.ChatRequest{Message: "what is this about"})
	require.NoError(t, err)

	require.Len(t, generator.prompts, 1)
	require.Contains(t, generator.prompts[0], "photosynthesis converts light")
	require.False(t, strings.Contains(generator.prompts[0], "has not uploaded any documents"))
}

func TestSetStyleWritesBackAndNotifies(t *testing.T) {
	fx := newTutorFixture(nil, &fakeGenerator{}, &fakeSynth{})
	userId := uuid.New()

	res, err := fx.svc.SetStyle(context.Background(), userId, &dto.SetStyleRequest{Style: "hands-on"})
	require.NoError(t, err)
	require.Equal(t, "hands-on", res.Style)

	require.NotNil(t, fx.profiles.profile)
	require.Equal(t, style.HandsOn, fx.profiles.profile.Style)
	require.Equal(t, "Doing it myself", fx.profiles.profile.Answers["learningStyle"])

	session, ok := fx.sessions.Get(userId.String())
	require.True(t, ok)
	require.Equal(t, style.HandsOn, session.Style())

	history := session.History()
	last := history[len(history)-1]
	require.Equal(t, store.ChatRoleAssistant, last.Role)
	require.Contains(t, last.Content, "updated my teaching approach")
}

func TestSetStyleRejectsUnknownStyle(t *testing.T) {
	fx := newTutorFixture(nil, &fakeGenerator{}, &fakeSynth{})

	_, err := fx.svc.SetStyle(context.Background(), uuid.New(), &dto.SetStyleRequest{Style: "osmosis"})
	require.Error(t, err)
}

func TestGenerateQuizRequiresDocument(t *testing.T) {
	fx := newTutorFixture(nil, &fakeGenerator{available: true}, &fakeSynth{})

	_, err := fx.svc.GenerateQuiz(context.Background(), uuid.New(), &dto.GenerateQuizRequest{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no document")
}

func TestGenerateQuizParsesQuestions(t *testing.T) {
	raw := `[{"question": "What is 2+2?", "options": ["3", "4", "5", "6"], "correct_answer": 1}]`
	generator := &fakeGenerator{available: true, response: raw}
	fx := newTutorFixture(nil, generator, &fakeSynth{})
	userId := uuid.New()

	dir := t.TempDir()
	path := filepath.Join(dir, "math.txt")
	require.NoError(t, os.WriteFile(path, []byte("basic arithmetic"), 0o644))
	_, err := fx.svc.UploadDocument(context.Background(), userId, "math.txt", path)
	require.NoError(t, err)

	res, err := fx.svc.GenerateQuiz(context.Background(), userId, &dto.GenerateQuizRequest{QuestionCount: 1})
	require.NoError(t, err)
	require.Len(t, res.Questions, 1)
	require.Equal(t, 1, res.Questions[0].CorrectAnswer)
}

func TestUploadDocumentAcknowledgesInChat(t *testing.T) {
	fx := newTutorFixture(nil, &fakeGenerator{}, &fakeSynth{})
	userId := uuid.New()

	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("cell biology"), 0o644))

	res, err := fx.svc.UploadDocument(context.Background(), userId, "notes.txt", path)
	require.NoError(t, err)
	require.Equal(t, len("cell biology"), res.TextLength)

	session, ok := fx.sessions.Get(userId.String())
	require.True(t, ok)
	history := session.History()
	last := history[len(history)-1]
	require.Equal(t, store.ChatRoleAssistant, last.Role)
	require.Contains(t, last.Content, `"notes.txt"`)
}

func TestUploadDocumentRejectsUnsupportedType(t *testing.T) {
	fx := newTutorFixture(nil, &fakeGenerator{}, &fakeSynth{})

	dir := t.TempDir()
	path := filepath.Join(dir, "slides.pptx")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := fx.svc.UploadDocument(context.Background(), uuid.New(), "slides.pptx", path)
	require.Error(t, err)
}

func TestGetHistoryStartsWithWelcome(t *testing.T) {
	fx := newTutorFixture(nil, &fakeGenerator{}, &fakeSynth{})

	res, err := fx.svc.GetHistory(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, res.Turns, 1)
	require.Equal(t, constant.WelcomeMessage, res.Turns[0].Content)
}
