package core

import "testing"

func TestLoopScheduleInvalidatesPreviousChain(t *testing.T) {
	var l Loop

	first, ok := l.Schedule()
	if !ok {
		t.Fatal("Schedule() with no gate should succeed")
	}
	if !l.Accept(first) {
		t.Error("live token should be accepted")
	}

	second, _ := l.Schedule()
	if second == first {
		t.Fatal("Schedule() must issue a fresh token")
	}
	if l.Accept(first) {
		t.Error("token from the replaced chain must be rejected")
	}
	if !l.Accept(second) {
		t.Error("new token should be accepted")
	}
}

func TestLoopCancel(t *testing.T) {
	var l Loop
	tok, _ := l.Schedule()

	l.Cancel()
	if l.Scheduled() {
		t.Error("Cancel() should clear the scheduled flag")
	}
	if l.Accept(tok) {
		t.Error("cancelled token must be rejected")
	}

	// Cancelling twice is harmless
	l.Cancel()

	next, _ := l.Schedule()
	if next == tok {
		t.Error("token after cancel must differ from the cancelled one")
	}
}

func TestLoopReadyGate(t *testing.T) {
	var l Loop
	ready := false
	l.SetReadyGate(func() bool { return ready })

	if _, ok := l.Schedule(); ok {
		t.Error("Schedule() should refuse while gate is closed")
	}
	if l.Scheduled() {
		t.Error("refused Schedule() must not mark the loop scheduled")
	}

	ready = true
	tok, ok := l.Schedule()
	if !ok || !l.Accept(tok) {
		t.Error("Schedule() should succeed once gate opens")
	}
}
