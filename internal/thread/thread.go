// Package thread holds the in-memory conversation thread: an ordered log of
// user and assistant messages backing both the transcript view and the
// context slice sent to the backend.
package thread

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// MaxContextEntries is the number of recent entries (both roles combined)
// retained for backend context. Older entries stay visible in the transcript
// but are no longer sent with outbound requests.
const MaxContextEntries = 10

// ContextWindowSize is the number of recent entries included in the history
// field of an outbound chat request.
const ContextWindowSize = 6

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Feedback is the rating state of an assistant message.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackLiked
	FeedbackDisliked
)

// String returns the wire value used by the feedback endpoint.
func (f Feedback) String() string {
	switch f {
	case FeedbackLiked:
		return "like"
	case FeedbackDisliked:
		return "dislike"
	default:
		return "none"
	}
}

// Message is one entry in the conversation thread.
type Message struct {
	ID        string
	Role      Role
	Content   string
	RowNumber int // backend sheet row, 0 until the first successful round trip
	Feedback  Feedback
	SentAt    time.Time
}

// Lines splits the content into display paragraphs: one per newline-separated
// line, blank lines dropped.
func (m Message) Lines() []string {
	var lines []string
	for _, line := range strings.Split(m.Content, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// Store is the ordered conversation thread. The transcript grows without
// bound; a separate retention boundary limits how much of it is replayed to
// the backend as context.
type Store struct {
	mu           sync.RWMutex
	messages     []Message
	contextStart int   // index of the oldest entry still retained as context
	lastID       int64 // millisecond stamp of the last minted ID
}

// NewStore returns an empty thread store.
func NewStore() *Store {
	return &Store{}
}

// NewID mints a time-based message ID. IDs are unique within the store even
// when minted inside the same millisecond.
func (s *Store) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UnixMilli()
	if now <= s.lastID {
		now = s.lastID + 1
	}
	s.lastID = now
	return fmt.Sprintf("msg-%d", now)
}

// Append adds a message to the end of the thread. If a message with the same
// ID already exists, this degrades to an in-place update of content and row
// number; the existing role is kept so an ID never switches author.
func (s *Store) Append(msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == msg.ID {
			if msg.Content != "" {
				s.messages[i].Content = msg.Content
			}
			if msg.RowNumber > 0 {
				s.messages[i].RowNumber = msg.RowNumber
			}
			return
		}
	}

	if msg.SentAt.IsZero() {
		msg.SentAt = time.Now()
	}
	s.messages = append(s.messages, msg)
}

// Update merges new content and/or row number into an existing message.
// Empty content and non-positive row numbers leave the stored values alone.
// Unknown IDs are a no-op.
func (s *Store) Update(id string, content string, rowNumber int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			if content != "" {
				s.messages[i].Content = content
			}
			if rowNumber > 0 {
				s.messages[i].RowNumber = rowNumber
			}
			return true
		}
	}
	return false
}

// SetFeedback sets the rating state of a message.
func (s *Store) SetFeedback(id string, fb Feedback) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages[i].Feedback = fb
			return true
		}
	}
	return false
}

// Find returns a copy of the message with the given ID.
func (s *Store) Find(id string) (Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			return s.messages[i], true
		}
	}
	return Message{}, false
}

// Remove deletes a message from the thread entirely. Used to roll back a
// pending user entry when its send is cancelled.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			s.removeAt(i)
			return true
		}
	}
	return false
}

// RemoveForEdit deletes a user message and, when it is immediately followed
// by an assistant reply, that reply as well. This keeps the replayed context
// free of the superseded exchange when the edited message is resent.
func (s *Store) RemoveForEdit(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID != id {
			continue
		}
		if s.messages[i].Role != RoleUser {
			return false
		}
		if i+1 < len(s.messages) && s.messages[i+1].Role == RoleAssistant {
			s.removeAt(i + 1)
		}
		s.removeAt(i)
		return true
	}
	return false
}

// removeAt drops the entry at index i and keeps the context boundary pointing
// at the same logical entry. Caller must hold the lock.
func (s *Store) removeAt(i int) {
	s.messages = append(s.messages[:i], s.messages[i+1:]...)
	if i < s.contextStart {
		s.contextStart--
	}
	if s.contextStart > len(s.messages) {
		s.contextStart = len(s.messages)
	}
}

// TrimContext advances the retention boundary so at most MaxContextEntries
// recent entries remain in backend context. Called after assistant appends.
// The transcript itself is untouched.
func (s *Store) TrimContext() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if retained := len(s.messages) - s.contextStart; retained > MaxContextEntries {
		s.contextStart = len(s.messages) - MaxContextEntries
	}
}

// Context returns a copy of the entries currently retained for backend
// context.
func (s *Store) Context() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	retained := make([]Message, len(s.messages)-s.contextStart)
	copy(retained, s.messages[s.contextStart:])
	return retained
}

// ContextWindow returns the most recent entries (at most ContextWindowSize)
// for inclusion in an outbound chat request.
func (s *Store) ContextWindow() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := s.contextStart
	if excess := len(s.messages) - start - ContextWindowSize; excess > 0 {
		start += excess
	}
	window := make([]Message, len(s.messages)-start)
	copy(window, s.messages[start:])
	return window
}

// Messages returns a copy of the full transcript.
func (s *Store) Messages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs := make([]Message, len(s.messages))
	copy(msgs, s.messages)
	return msgs
}

// Len returns the number of entries in the transcript.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// Last returns a copy of the newest entry.
func (s *Store) Last() (Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.messages) == 0 {
		return Message{}, false
	}
	return s.messages[len(s.messages)-1], true
}

// LastUserMessage returns the content of the newest user entry, or "" when
// none exists. Regenerate replays this text.
func (s *Store) LastUserMessage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].Role == RoleUser {
			return s.messages[i].Content
		}
	}
	return ""
}
