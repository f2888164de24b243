package audit

import "sync"

// Notifier receives the user-facing notices emitted by audit operations.
// Notices are a side channel: operations never fail because of them.
type Notifier interface {
	Info(msg string)
	Success(msg string)
	Warn(msg string)
	Error(msg string)
}

// Notice is one message delivered to a Notifier
type Notice struct {
	Level   string
	Message string
}

// Notice levels recorded by RecordingNotifier
const (
	LevelInfo    = "info"
	LevelSuccess = "success"
	LevelWarn    = "warn"
	LevelError   = "error"
)

// RecordingNotifier keeps every notice in memory. The interactive form uses
// it to collect the output of an operation before rendering, and tests use it
// for assertions.
type RecordingNotifier struct {
	mu      sync.Mutex
	notices []Notice
}

// NewRecordingNotifier creates an empty RecordingNotifier
func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{}
}

func (r *RecordingNotifier) Info(msg string)    { r.add(LevelInfo, msg) }
func (r *RecordingNotifier) Success(msg string) { r.add(LevelSuccess, msg) }
func (r *RecordingNotifier) Warn(msg string)    { r.add(LevelWarn, msg) }
func (r *RecordingNotifier) Error(msg string)   { r.add(LevelError, msg) }

func (r *RecordingNotifier) add(level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, Notice{Level: level, Message: msg})
}

// Notices returns a copy of the recorded notices in emission order
func (r *RecordingNotifier) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notice, len(r.notices))
	copy(out, r.notices)
	return out
}

// ByLevel returns the messages recorded at level
func (r *RecordingNotifier) ByLevel(level string) []string {
	var out []string
	for _, n := range r.Notices() {
		if n.Level == level {
			out = append(out, n.Message)
		}
	}
	return out
}

// Reset drops all recorded notices
func (r *RecordingNotifier) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = nil
}

type nopNotifier struct{}

func (nopNotifier) Info(string)    {}
func (nopNotifier) Success(string) {}
func (nopNotifier) Warn(string)    {}
func (nopNotifier) Error(string)   {}
