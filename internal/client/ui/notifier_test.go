package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestNotifierShowsCurrent(t *testing.T) {
	var out bytes.Buffer
	n := NewNotifier(&out)

	n.Show("Added to cart", Success)

	msg, sev, ok := n.Current()
	if !ok || msg != "Added to cart" || sev != Success {
		t.Errorf("unexpected notification: %q %q ok=%v", msg, sev, ok)
	}
	if !strings.Contains(out.String(), "Added to cart") {
		t.Errorf("expected message written to output, got %q", out.String())
	}
}

func TestNotifierSingleSlot(t *testing.T) {
	n := NewNotifier(nil)

	n.Show("first", Info)
	n.Show("second", Error)

	msg, sev, ok := n.Current()
	if !ok || msg != "second" || sev != Error {
		t.Errorf("Show must replace the slot, got %q %q ok=%v", msg, sev, ok)
	}
}

func TestNotifierAutoDismiss(t *testing.T) {
	n := NewNotifier(nil)
	n.delay = 10 * time.Millisecond

	n.Show("transient", Info)
	time.Sleep(50 * time.Millisecond)

	if _, _, ok := n.Current(); ok {
		t.Error("expected slot emptied after the dismiss delay")
	}
}

func TestNotifierShowRestartsTimer(t *testing.T) {
	n := NewNotifier(nil)
	n.delay = 60 * time.Millisecond

	n.Show("first", Info)
	time.Sleep(40 * time.Millisecond)
	n.Show("second", Info)
	time.Sleep(40 * time.Millisecond)

	// 80ms after the first Show, but only 40ms after the second: the
	// replacement must still be visible.
	if msg, _, ok := n.Current(); !ok || msg != "second" {
		t.Errorf("replacement must restart the dismiss timer, got %q ok=%v", msg, ok)
	}
}
