package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Driver connects an Engine to a host frame scheduler. The host asks the
// driver for a token, delivers one tick per frame carrying that token and
// keeps scheduling while Tick returns true. Restarting or stopping
// invalidates the outstanding token, so a late tick from an old chain never
// advances the engine.
type Driver struct {
	engine *Engine
	loop   core.Loop
}

// NewDriver wraps an engine.
func NewDriver(e *Engine) *Driver {
	return &Driver{engine: e}
}

// Engine returns the driven engine.
func (d *Driver) Engine() *Engine {
	return d.engine
}

// SetReadyGate installs the predicate Start waits for (e.g. "the terminal
// has a drawable size").
func (d *Driver) SetReadyGate(fn func() bool) {
	d.loop.SetReadyGate(fn)
}

// Start moves an Idle engine to Running and (re)schedules the tick chain.
// Returns false while the ready gate is closed.
func (d *Driver) Start() (core.Token, bool) {
	if !d.loop.Ready() {
		return 0, false
	}
	d.engine.Start()
	return d.loop.Schedule()
}

// Tick runs one engine step if tok belongs to the live chain and reports
// whether the host should schedule another tick with the same token.
func (d *Driver) Tick(tok core.Token) bool {
	if !d.loop.Accept(tok) {
		return false
	}
	d.engine.Tick()
	if d.engine.Phase() != core.PhaseRunning || d.engine.Paused() {
		d.loop.Cancel()
		return false
	}
	return true
}

// Stop cancels the pending tick. The engine keeps its last state.
func (d *Driver) Stop() {
	d.loop.Cancel()
}

// Restart stops the loop, resets the engine and starts it again when
// autoStart is set.
func (d *Driver) Restart(autoStart bool) (core.Token, bool) {
	d.Stop()
	d.engine.Reset(false)
	if !autoStart {
		return 0, false
	}
	return d.Start()
}

// Scheduled reports whether a tick chain is live.
func (d *Driver) Scheduled() bool {
	return d.loop.Scheduled()
}

// Input applies a player action. When the action needs ticks to flow
// (a queued jump on a stopped loop, resuming from pause, an auto-started
// restart) it returns a fresh token for the host to schedule.
func (d *Driver) Input(a core.Action) (core.Token, bool) {
	switch a {
	case core.ActionJump:
		d.engine.Jump()
		if d.loop.Scheduled() || d.engine.Paused() {
			return 0, false
		}
		return d.loop.Schedule()

	case core.ActionPause:
		if d.engine.TogglePause() {
			d.Stop()
			return 0, false
		}
		if d.engine.Phase() == core.PhaseRunning && !d.loop.Scheduled() {
			return d.loop.Schedule()
		}

	case core.ActionRestart:
		return d.Restart(d.engine.Config().Loop.AutoStartOnReset)
	}
	return 0, false
}
