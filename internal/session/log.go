package session

import "time"

// Roles recorded in the log.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 20

// Message is one entry of the recent-message log.
type Message struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// Log is a fixed-capacity FIFO of recent messages. Once full, each Add evicts
// the oldest entry. It is not safe for concurrent use.
type Log struct {
	buf   []Message
	start int
	size  int
	now   func() time.Time
}

// New creates a log holding at most capacity messages.
func New(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{
		buf: make([]Message, capacity),
		now: time.Now,
	}
}

// Add appends a message, evicting the oldest when full.
func (l *Log) Add(role, content string) {
	msg := Message{Role: role, Content: content, At: l.now()}
	if l.size < len(l.buf) {
		l.buf[(l.start+l.size)%len(l.buf)] = msg
		l.size++
		return
	}
	l.buf[l.start] = msg
	l.start = (l.start + 1) % len(l.buf)
}

// Recent returns the last n messages, oldest first. n <= 0 returns all.
func (l *Log) Recent(n int) []Message {
	if n <= 0 || n > l.size {
		n = l.size
	}
	out := make([]Message, 0, n)
	for i := l.size - n; i < l.size; i++ {
		out = append(out, l.buf[(l.start+i)%len(l.buf)])
	}
	return out
}

// Len returns the number of stored messages.
func (l *Log) Len() int { return l.size }

// Cap returns the capacity.
func (l *Log) Cap() int { return len(l.buf) }
