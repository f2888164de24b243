package ui

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"sync"
)

// ConsoleNotifier prints audit notices to a writer, one colored line each
type ConsoleNotifier struct {
	out io.Writer
	mu  sync.Mutex
}

// NewConsoleNotifier creates a notifier writing to out
func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

func (c *ConsoleNotifier) Info(msg string)    { c.print("ℹ", msg, Cyan) }
func (c *ConsoleNotifier) Success(msg string) { c.print("✓", msg, Green) }
func (c *ConsoleNotifier) Warn(msg string)    { c.print("!", msg, Yellow) }
func (c *ConsoleNotifier) Error(msg string)   { c.print("✗", msg, Red) }

func (c *ConsoleNotifier) print(icon, msg string, color func(string) string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, "%s %s\n", color(icon), msg)
}

// NotificationSender interface for platform-specific notification implementations
type NotificationSender interface {
	Send(title, message string) error
}

// LinuxNotificationSender sends notifications on Linux using notify-send
type LinuxNotificationSender struct{}

func (l *LinuxNotificationSender) Send(title, message string) error {
	return exec.Command("notify-send", title, message).Run()
}

// MacOSNotificationSender sends notifications on macOS using osascript
type MacOSNotificationSender struct{}

func (m *MacOSNotificationSender) Send(title, message string) error {
	script := fmt.Sprintf(`display notification %q with title %q`, message, title)
	return exec.Command("osascript", "-e", script).Run()
}

// DesktopNotifier sends a desktop notification summarizing a finished run
type DesktopNotifier struct {
	sender NotificationSender
}

// NewDesktopNotifier picks the sender for the current platform. Platforms
// without one get a notifier that does nothing.
func NewDesktopNotifier() *DesktopNotifier {
	var sender NotificationSender

	switch runtime.GOOS {
	case "linux":
		sender = &LinuxNotificationSender{}
	case "darwin":
		sender = &MacOSNotificationSender{}
	}

	return &DesktopNotifier{sender: sender}
}

// NewDesktopNotifierWithSender creates a notifier using sender
func NewDesktopNotifierWithSender(sender NotificationSender) *DesktopNotifier {
	return &DesktopNotifier{sender: sender}
}

// Send delivers the notification. Errors are ignored since the console has
// already shown the same information.
func (d *DesktopNotifier) Send(title, message string) {
	if d.sender == nil {
		return
	}
	_ = d.sender.Send(title, message)
}
