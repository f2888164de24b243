package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"followaudit/pkg/config"
)

func newBufferLogger(buf *bytes.Buffer) *zerologLogger {
	zlog := zerolog.New(buf).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	return &zerologLogger{
		logger: &zlog,
		fields: make(map[string]interface{}),
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.LoggingConfig
		wantErr bool
	}{
		{name: "info level", cfg: &config.LoggingConfig{Level: "info"}},
		{name: "debug level", cfg: &config.LoggingConfig{Level: "debug"}},
		{name: "disabled", cfg: &config.LoggingConfig{Level: "disabled"}},
		{name: "invalid log level", cfg: &config.LoggingConfig{Level: "invalid"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && logger == nil {
				t.Error("New() returned nil logger")
			}
		})
	}
}

func TestNewWithFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "followaudit.log")

	logger, err := New(&config.LoggingConfig{Level: "info", File: logFile})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	logger.WithField("account_id", "42").Info("file message")

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "file message") {
		t.Error("Message not found in log file")
	}
	if !strings.Contains(string(data), `"app":"followaudit"`) {
		t.Error("App field not found in log file")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
		wantErr  bool
	}{
		{"debug", zerolog.DebugLevel, false},
		{"DEBUG", zerolog.DebugLevel, false},
		{"info", zerolog.InfoLevel, false},
		{"warn", zerolog.WarnLevel, false},
		{"warning", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"disabled", zerolog.Disabled, false},
		{"invalid", zerolog.InfoLevel, true},
		{"", zerolog.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			level, err := parseLogLevel(tt.level)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseLogLevel() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if level != tt.expected {
				t.Errorf("parseLogLevel() = %v, want %v", level, tt.expected)
			}
		})
	}
}

func TestLoggerMethods(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	cases := map[string]func(string){
		"debug message": logger.Debug,
		"info message":  logger.Info,
		"warn message":  logger.Warn,
		"error message": logger.Error,
	}

	for msg, logFn := range cases {
		buf.Reset()
		logFn(msg)
		if !strings.Contains(buf.String(), msg) {
			t.Errorf("%q not found in output", msg)
		}
	}
}

func TestWithFieldsDoesNotLeakIntoParent(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	child := logger.WithField("account_id", "123")
	child.Info("child message")
	if !strings.Contains(buf.String(), `"account_id":"123"`) {
		t.Error("Field not found in child output")
	}

	buf.Reset()
	logger.Info("parent message")
	if strings.Contains(buf.String(), "account_id") {
		t.Error("Child field leaked into parent logger")
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	if logger.WithError(nil) != logger {
		t.Error("WithError(nil) should return the same logger")
	}

	logger.WithError(errors.New("status 500")).Error("fetch failed")

	output := buf.String()
	if !strings.Contains(output, "fetch failed") {
		t.Error("Message not found in output")
	}
	if !strings.Contains(output, "status 500") {
		t.Error("Error message not found in output")
	}
}

func TestFieldTypes(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	logger.InfoWithFields("typed fields", map[string]interface{}{
		"string":   "test",
		"int":      123,
		"bool":     true,
		"duration": 5 * time.Second,
		"strings":  []string{"a", "b"},
		"cause":    errors.New("boom"),
	})

	output := buf.String()
	for _, want := range []string{`"string":"test"`, `"int":123`, `"bool":true`, `"strings":["a","b"]`, `"cause":"boom"`} {
		if !strings.Contains(output, want) {
			t.Errorf("%s not found in output: %s", want, output)
		}
	}
}

func TestLogRequestLevels(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{200, "DEBUG"},
		{401, "WARN"},
		{404, "WARN"},
		{503, "ERROR"},
	}

	for _, tt := range tests {
		logger := NewTestLogger()
		LogRequest(logger, "GET", "https://example.test/users/following", tt.status, time.Millisecond)

		msgs := logger.GetMessagesByLevel(tt.level)
		if len(msgs) != 1 {
			t.Errorf("status %d: expected one %s message, got %d", tt.status, tt.level, len(msgs))
			continue
		}
		if msgs[0].Fields["status_code"] != tt.status {
			t.Errorf("status %d: status_code field = %v", tt.status, msgs[0].Fields["status_code"])
		}
	}
}

func TestLogUnfollow(t *testing.T) {
	logger := NewTestLogger()

	LogUnfollow(logger, "a", nil)
	LogUnfollow(logger, "b", errors.New("status 400"))

	infos := logger.GetMessagesByLevel("INFO")
	warns := logger.GetMessagesByLevel("WARN")
	if len(infos) != 1 || infos[0].Fields["account_id"] != "a" {
		t.Errorf("unexpected info messages: %+v", infos)
	}
	if len(warns) != 1 || warns[0].Error == nil || warns[0].Fields["account_id"] != "b" {
		t.Errorf("unexpected warn messages: %+v", warns)
	}
}

func TestTestLoggerSharesCapture(t *testing.T) {
	logger := NewTestLogger()
	logger.WithField("k", "v").WithError(errors.New("e")).Warn("child")
	logger.Info("parent")

	if !logger.HasMessage("child") || !logger.HasMessage("parent") {
		t.Error("expected both messages in the shared capture")
	}
	if logger.HasError() {
		t.Error("no ERROR level message was logged")
	}

	logger.Clear()
	if len(logger.GetMessages()) != 0 {
		t.Error("Clear() should drop all messages")
	}
}

func TestGlobalLogger(t *testing.T) {
	if err := Initialize(&config.LoggingConfig{Level: "disabled"}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	if GetLogger() == nil {
		t.Fatal("GetLogger() returned nil")
	}

	Debug("debug message")
	Info("info message")
	Warn("warn message")
	Error("error message")
	WithField("key", "value").Info("with field")
	WithFields(map[string]interface{}{"k1": "v1"}).Info("with fields")
	WithError(errors.New("test")).Error("with error")
}
