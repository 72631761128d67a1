package interview

import (
	"sync"
	"testing"
)

func TestStore_CreateAndGet(t *testing.T) {
	store := NewStore()
	sess := store.Create("c1", "v1")
	if sess.ID == "" {
		t.Fatal("expected non-empty session id")
	}
	if sess.CandidateID != "c1" || sess.VacancyID != "v1" {
		t.Fatalf("unexpected candidate/vacancy: %s/%s", sess.CandidateID, sess.VacancyID)
	}
	got, err := store.Get(sess.ID)
	if err != nil {
		t.Fatalf("expected session, got error %v", err)
	}
	if got != sess {
		t.Fatal("expected the same session instance")
	}
}

func TestStore_GetUnknown(t *testing.T) {
	store := NewStore()
	if _, err := store.Get("nope"); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestStore_ConcurrentCreatesProduceDistinctIDs(t *testing.T) {
	store := NewStore()
	const n = 100
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- store.Create("c", "v").ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{}, n)
	for id := range ids {
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate session id %s", id)
		}
		seen[id] = struct{}{}
	}
	if store.Count() != n {
		t.Fatalf("expected %d sessions, got %d", n, store.Count())
	}
}
