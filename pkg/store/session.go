package store

import (
	"sync"
	"time"

	"studiq-be/pkg/tutor/style"
)

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"

	// historyCap bounds per-session history growth. Prompt context only ever
	// uses the most recent turns, so dropping the oldest is safe.
	historyCap = 200
)

// ChatTurn is a single message in a tutoring conversation. Turns are
// immutable once appended.
type ChatTurn struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	AudioURL  string    `json:"audio_url,omitempty"`
	AudioPath string    `json:"-"`
}

// DocumentRef points at an uploaded file whose extracted text lives in the
// DocumentStore under the same id.
type DocumentRef struct {
	Id         string    `json:"id"`
	Filename   string    `json:"filename"`
	Path       string    `json:"-"`
	UploadedAt time.Time `json:"upload_time"`
}

// Session is the in-memory tutoring state for one user. All access goes
// through its methods; the embedded mutex serializes concurrent requests
// touching the same session.
type Session struct {
	mu sync.Mutex

	id         string
	style      style.Style
	documents  []DocumentRef
	history    []ChatTurn
	lastActive time.Time
}

func newSession(id string, s style.Style, welcome string) *Session {
	now := time.Now()
	return &Session{
		id:    id,
		style: s,
		history: []ChatTurn{{
			Role:      ChatRoleAssistant,
			Content:   welcome,
			Timestamp: now,
		}},
		lastActive: now,
	}
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) Style() style.Style {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.style
}

func (s *Session) SetStyle(st style.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.style = st
	s.lastActive = time.Now()
}

// AppendTurn adds a turn to the history, dropping the oldest entries once
// the cap is reached.
func (s *Session) AppendTurn(turn ChatTurn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, turn)
	if len(s.history) > historyCap {
		s.history = s.history[len(s.history)-historyCap:]
	}
	s.lastActive = time.Now()
}

// History returns a copy of the full chat history.
func (s *Session) History() []ChatTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ChatTurn, len(s.history))
	copy(out, s.history)
	return out
}

// Recent returns a copy of the last n turns.
func (s *Session) Recent(n int) []ChatTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n > len(s.history) {
		n = len(s.history)
	}
	out := make([]ChatTurn, n)
	copy(out, s.history[len(s.history)-n:])
	return out
}

func (s *Session) AddDocument(ref DocumentRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = append(s.documents, ref)
	s.lastActive = time.Now()
}

// Documents returns a copy of the uploaded-document list, oldest first.
func (s *Session) Documents() []DocumentRef {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]DocumentRef, len(s.documents))
	copy(out, s.documents)
	return out
}

// LatestDocument returns the most recently uploaded document, if any.
func (s *Session) LatestDocument() (DocumentRef, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.documents) == 0 {
		return DocumentRef{}, false
	}
	return s.documents[len(s.documents)-1], true
}

func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Touch refreshes the activity timestamp.
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
}

// MarkActive overrides the activity timestamp. Only cleanup tests need it;
// normal mutation paths refresh the timestamp themselves.
func (s *Session) MarkActive(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = t
}

// SessionStore owns every live tutoring session. It is created once at
// bootstrap and injected into the handlers and the reaper; there is no
// ambient global state.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// GetOrCreate returns the session for id, creating it lazily with the given
// initial style and a welcome turn.
func (st *SessionStore) GetOrCreate(id string, initial style.Style, welcome string) *Session {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if ok {
		return s
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[id]; ok {
		return s
	}
	s = newSession(id, initial, welcome)
	st.sessions[id] = s
	return s
}

// Get returns the session for id without creating it.
func (st *SessionStore) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// All returns the live sessions; the reaper iterates this snapshot.
func (st *SessionStore) All() []*Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := make([]*Session, 0, len(st.sessions))
	for _, s := range st.sessions {
		out = append(out, s)
	}
	return out
}

func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
