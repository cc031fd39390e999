package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Message is one contact form submission.
type Message struct {
	ID         string    `json:"id"`
	Locale     string    `json:"locale"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject,omitempty"`
	Body       string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

// Inbox is a thread-safe store of contact messages persisted to a JSON file.
type Inbox struct {
	mu       sync.RWMutex
	messages []Message
	filePath string
	now      func() time.Time
}

// NewInbox creates an inbox, loading existing messages from file if present.
func NewInbox(filePath string) (*Inbox, error) {
	in := &Inbox{
		filePath: filePath,
		now:      time.Now,
	}

	if err := in.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load inbox: %w", err)
	}

	return in, nil
}

// load reads the messages from the JSON file.
func (in *Inbox) load() error {
	data, err := os.ReadFile(in.filePath)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	var messages []Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return err
	}

	in.messages = messages
	return nil
}

// save writes all messages to a temp file and renames it over the inbox.
func (in *Inbox) save(messages []Message) error {
	data, err := json.MarshalIndent(messages, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(in.filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".inbox-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), in.filePath)
}

// Add stores a message, assigning its ID and reception time, and persists
// the inbox. The message is not kept when persisting fails.
func (in *Inbox) Add(m Message) (Message, error) {
	in.mu.Lock()
	defer in.mu.Unlock()

	id, err := newID()
	if err != nil {
		return Message{}, err
	}
	m.ID = id
	m.ReceivedAt = in.now().UTC()

	next := append(in.messages[:len(in.messages):len(in.messages)], m)
	if err := in.save(next); err != nil {
		return Message{}, fmt.Errorf("save inbox: %w", err)
	}
	in.messages = next
	return m, nil
}

// List returns the messages, newest first.
func (in *Inbox) List() []Message {
	in.mu.RLock()
	defer in.mu.RUnlock()

	out := make([]Message, len(in.messages))
	copy(out, in.messages)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ReceivedAt.After(out[j].ReceivedAt)
	})
	return out
}

// Count returns the number of stored messages.
func (in *Inbox) Count() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.messages)
}

func newID() (string, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}
