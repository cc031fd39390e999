package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestInboxStartsEmptyWithoutFile(t *testing.T) {
	in, err := NewInbox(filepath.Join(t.TempDir(), "inbox.json"))
	if err != nil {
		t.Fatalf("NewInbox() error = %v", err)
	}
	if in.Count() != 0 {
		t.Fatalf("Count() = %d, want 0", in.Count())
	}
}

func TestInboxPersistsMessages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "inbox.json")
	in, err := NewInbox(path)
	if err != nil {
		t.Fatalf("NewInbox() error = %v", err)
	}

	clock := time.Date(2026, time.October, 14, 10, 0, 0, 0, time.UTC)
	in.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	first, err := in.Add(Message{Locale: "fr", Name: "Salma", Email: "salma@example.com", Body: "Bonjour"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if first.ID == "" || first.ReceivedAt.IsZero() {
		t.Fatalf("Add() did not stamp the message: %+v", first)
	}
	if _, err := in.Add(Message{Locale: "en", Name: "Mehdi", Email: "mehdi@example.com", Body: "Hello"}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	reopened, err := NewInbox(path)
	if err != nil {
		t.Fatalf("NewInbox(reopen) error = %v", err)
	}
	list := reopened.List()
	if len(list) != 2 {
		t.Fatalf("len(List()) = %d, want 2", len(list))
	}
	if list[0].Name != "Mehdi" || list[1].Name != "Salma" {
		t.Fatalf("List() not newest first: %s, %s", list[0].Name, list[1].Name)
	}
}

func TestInboxRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inbox.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewInbox(path); err == nil {
		t.Fatalf("NewInbox() should fail on a corrupt file")
	}
}

func TestInboxConcurrentAdds(t *testing.T) {
	in, err := NewInbox(filepath.Join(t.TempDir(), "inbox.json"))
	if err != nil {
		t.Fatalf("NewInbox() error = %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := in.Add(Message{Name: "n", Email: "e@example.com", Body: "b"}); err != nil {
				t.Errorf("Add() error = %v", err)
			}
		}()
	}
	wg.Wait()

	if in.Count() != 20 {
		t.Fatalf("Count() = %d, want 20", in.Count())
	}
}
