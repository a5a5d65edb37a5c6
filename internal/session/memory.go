// Package session keeps bounded, per-session conversation history in
// memory. Whole sessions live in an expirable LRU so long-running
// processes do not accumulate dead sessions; messages inside a session are
// evicted FIFO once the per-session cap is reached.
package session

import (
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const (
	// DefaultMaxHistory caps messages kept per session.
	DefaultMaxHistory = 10

	// DefaultContextLimit is how many recent messages ContextString renders.
	DefaultContextLimit = 5

	// maxContextChars truncates a single message inside the context window.
	maxContextChars = 200
)

// Message is one stored conversation turn.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	AgentName string    `json:"agent_name,omitempty"`
}

// Memory is the process-wide session store. Safe for concurrent use;
// appends to the same session are serialized so history ordering and the
// per-session cap hold under concurrency.
type Memory struct {
	mu         sync.Mutex
	sessions   *expirable.LRU[string, []Message]
	maxHistory int
	now        func() time.Time
}

// Config bounds the store. Zero values pick defaults.
type Config struct {
	MaxHistory  int
	MaxSessions int
	TTL         time.Duration
}

// New creates a Memory with the given bounds.
func New(cfg Config) *Memory {
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = DefaultMaxHistory
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = 10000
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}

	return &Memory{
		sessions:   expirable.NewLRU[string, []Message](cfg.MaxSessions, nil, cfg.TTL),
		maxHistory: cfg.MaxHistory,
		now:        time.Now,
	}
}

// AddMessage appends a timestamped message to the session, creating the
// session on first use. The agent name is attached to assistant messages
// only. Oldest messages are dropped once the session exceeds maxHistory.
func (m *Memory) AddMessage(sessionID, role, content, agentName string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	msg := Message{
		Role:      role,
		Content:   content,
		Timestamp: m.now(),
	}
	if agentName != "" && role == RoleAssistant {
		msg.AgentName = agentName
	}

	history, _ := m.sessions.Get(sessionID)
	history = append(history, msg)
	if len(history) > m.maxHistory {
		history = history[len(history)-m.maxHistory:]
	}
	m.sessions.Add(sessionID, history)
}

// History returns the session's messages oldest-first. A positive limit
// returns only the last limit entries.
func (m *Memory) History(sessionID string, limit int) []Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	history, _ := m.sessions.Get(sessionID)
	if limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}

	out := make([]Message, len(history))
	copy(out, history)
	return out
}

// ContextString renders the recent conversation as prompt context. Each
// message is truncated to 200 characters with an ellipsis. Returns "" for
// unknown or empty sessions.
func (m *Memory) ContextString(sessionID string, limit int) string {
	if limit <= 0 {
		limit = DefaultContextLimit
	}

	history := m.History(sessionID, limit)
	if len(history) == 0 {
		return ""
	}

	parts := []string{"Previous conversation:"}
	for _, msg := range history {
		role := "Assistant"
		if msg.Role == RoleUser {
			role = "User"
		}
		content := msg.Content
		if len(content) > maxContextChars {
			content = content[:maxContextChars] + "..."
		}
		parts = append(parts, role+": "+content)
	}

	return strings.Join(parts, "\n")
}

// ClearSession removes all history for the session. Clearing an unknown
// session is a no-op.
func (m *Memory) ClearSession(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions.Remove(sessionID)
}

// Sessions returns all live session ids.
func (m *Memory) Sessions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions.Keys()
}

// Exists reports whether the session holds any messages. Uses Get so
// TTL-expired sessions read as absent immediately.
func (m *Memory) Exists(sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	history, ok := m.sessions.Get(sessionID)
	return ok && len(history) > 0
}
