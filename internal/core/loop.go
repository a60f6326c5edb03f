package core

// Token identifies one scheduled tick chain. A host that schedules frames
// passes the token back with every tick; ticks carrying an older token
// belong to a cancelled chain and must be dropped.
type Token uint64

// Loop is the bookkeeping half of a frame-driven loop driver. It never
// sleeps or spawns goroutines: the host (Bubble Tea, a test, a headless
// runner) owns the actual "call me next frame" primitive.
//
// Schedule always invalidates the previous chain before issuing a new token,
// so two chains can never advance the same state.
type Loop struct {
	gen       uint64
	scheduled bool
	ready     func() bool
}

// SetReadyGate installs a predicate that must hold before the first tick
// can be scheduled. A nil gate is always open.
func (l *Loop) SetReadyGate(fn func() bool) {
	l.ready = fn
}

// Ready reports whether the ready gate is open.
func (l *Loop) Ready() bool {
	return l.ready == nil || l.ready()
}

// Schedule cancels any outstanding chain and starts a new one.
// Returns false without touching the current chain if the gate is closed.
func (l *Loop) Schedule() (Token, bool) {
	if !l.Ready() {
		return Token(l.gen), false
	}
	l.gen++
	l.scheduled = true
	return Token(l.gen), true
}

// Cancel drops the outstanding chain, if any.
func (l *Loop) Cancel() {
	if l.scheduled {
		l.gen++
	}
	l.scheduled = false
}

// Accept reports whether a tick carrying t belongs to the live chain.
func (l *Loop) Accept(t Token) bool {
	return l.scheduled && uint64(t) == l.gen
}

// Scheduled reports whether a chain is live.
func (l *Loop) Scheduled() bool {
	return l.scheduled
}

// Current returns the live token. Only meaningful while Scheduled.
func (l *Loop) Current() Token {
	return Token(l.gen)
}
