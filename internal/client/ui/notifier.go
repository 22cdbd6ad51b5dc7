package ui

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Severity classifies a notification.
type Severity string

const (
	Info    Severity = "info"
	Success Severity = "success"
	Error   Severity = "error"
)

const defaultDismissAfter = 3 * time.Second

// Notifier is the single-slot transient message surface: each Show replaces
// whatever was displayed before, and the slot empties itself after the
// dismiss delay. It is a status line, not a log.
type Notifier struct {
	mu      sync.Mutex
	out     io.Writer
	message string
	sev     Severity
	timer   *time.Timer
	delay   time.Duration
}

func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out, delay: defaultDismissAfter}
}

// Show replaces the current notification and restarts the dismiss timer.
func (n *Notifier) Show(message string, sev Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.message = message
	n.sev = sev
	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.delay, n.dismiss)

	if n.out != nil {
		fmt.Fprintf(n.out, "[%s] %s\n", sev, message)
	}
}

// Current returns the displayed notification, or ok=false when the slot has
// been dismissed.
func (n *Notifier) Current() (message string, sev Severity, ok bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.message, n.sev, n.message != ""
}

func (n *Notifier) dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.message = ""
	n.sev = ""
}
