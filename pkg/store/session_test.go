package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"studiq-be/pkg/tutor/style"
)

func TestGetOrCreateLazyInit(t *testing.T) {
	st := NewSessionStore()

	s := st.GetOrCreate("u1", style.Reading, "welcome!")
	if s.Style() != style.Reading {
		t.Errorf("initial style = %s", s.Style())
	}

	history := s.History()
	if len(history) != 1 {
		t.Fatalf("expected welcome turn, got %d turns", len(history))
	}
	if history[0].Role != ChatRoleAssistant || history[0].Content != "welcome!" {
		t.Errorf("unexpected welcome turn: %+v", history[0])
	}

	// second call must return the same session, untouched
	again := st.GetOrCreate("u1", style.Visual, "other")
	if again != s {
		t.Error("GetOrCreate created a second session for the same id")
	}
	if again.Style() != style.Reading {
		t.Error("GetOrCreate reinitialized an existing session")
	}
}

func TestStyleRoundTrip(t *testing.T) {
	st := NewSessionStore()
	s := st.GetOrCreate("u1", style.Blended, "hi")

	s.SetStyle(style.Visual)
	if got := s.Style(); got != style.Visual {
		t.Errorf("style round trip = %s, want visual", got)
	}
}

func TestHistoryCap(t *testing.T) {
	st := NewSessionStore()
	s := st.GetOrCreate("u1", style.Blended, "hi")

	for i := 0; i < historyCap+50; i++ {
		s.AppendTurn(ChatTurn{Role: ChatRoleUser, Content: fmt.Sprintf("msg %d", i), Timestamp: time.Now()})
	}

	history := s.History()
	if len(history) != historyCap {
		t.Fatalf("history length = %d, want %d", len(history), historyCap)
	}
	if history[len(history)-1].Content != fmt.Sprintf("msg %d", historyCap+49) {
		t.Error("newest turn missing after cap trim")
	}
}

func TestRecent(t *testing.T) {
	st := NewSessionStore()
	s := st.GetOrCreate("u1", style.Blended, "hi")
	s.AppendTurn(ChatTurn{Role: ChatRoleUser, Content: "one"})
	s.AppendTurn(ChatTurn{Role: ChatRoleAssistant, Content: "two"})

	recent := s.Recent(5)
	if len(recent) != 3 { // welcome + two
		t.Fatalf("Recent(5) = %d turns", len(recent))
	}
	if recent[len(recent)-1].Content != "two" {
		t.Error("Recent did not return the newest turn last")
	}

	if got := len(s.Recent(1)); got != 1 {
		t.Errorf("Recent(1) = %d turns", got)
	}
}

func TestDocuments(t *testing.T) {
	st := NewSessionStore()
	s := st.GetOrCreate("u1", style.Blended, "hi")

	if _, ok := s.LatestDocument(); ok {
		t.Error("fresh session should have no documents")
	}

	s.AddDocument(DocumentRef{Id: "d1", Filename: "a.pdf"})
	s.AddDocument(DocumentRef{Id: "d2", Filename: "b.pdf"})

	latest, ok := s.LatestDocument()
	if !ok || latest.Id != "d2" {
		t.Errorf("LatestDocument = %+v, ok=%v", latest, ok)
	}
	if docs := s.Documents(); len(docs) != 2 || docs[0].Id != "d1" {
		t.Errorf("Documents = %+v", docs)
	}
}

func TestConcurrentAppend(t *testing.T) {
	st := NewSessionStore()
	s := st.GetOrCreate("u1", style.Blended, "hi")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.AppendTurn(ChatTurn{Role: ChatRoleUser, Content: fmt.Sprintf("m%d", i)})
		}(i)
	}
	wg.Wait()

	if got := len(s.History()); got != 51 {
		t.Errorf("history length after concurrent appends = %d, want 51", got)
	}
}

func TestDeleteAndAll(t *testing.T) {
	st := NewSessionStore()
	st.GetOrCreate("a", style.Blended, "hi")
	st.GetOrCreate("b", style.Blended, "hi")

	if st.Len() != 2 || len(st.All()) != 2 {
		t.Fatalf("expected two sessions")
	}

	st.Delete("a")
	if _, ok := st.Get("a"); ok {
		t.Error("deleted session still present")
	}
	if st.Len() != 1 {
		t.Errorf("Len after delete = %d", st.Len())
	}
}

func TestDocumentStore(t *testing.T) {
	ds := NewDocumentStore()
	ds.Put("d1", "extracted text")

	if text, ok := ds.Get("d1"); !ok || text != "extracted text" {
		t.Errorf("Get = %q, %v", text, ok)
	}

	ds.Delete("d1")
	if _, ok := ds.Get("d1"); ok {
		t.Error("deleted document still retrievable")
	}
	if ds.Len() != 0 {
		t.Errorf("Len = %d after delete", ds.Len())
	}
}
