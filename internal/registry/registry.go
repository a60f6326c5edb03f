// Package registry maps course IDs to game factories. Courses register
// themselves from init, so hosts only need a blank import.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Game is what a host drives. Implementations hold no terminal code; the
// host owns tick scheduling, key mapping and output.
type Game interface {
	// ID is the course key used by the CLI and score storage.
	ID() string
	Title() string

	// Reset starts a new session with the given runtime settings.
	Reset(cfg core.RuntimeConfig)

	// SetReadyGate installs the predicate Start waits for.
	SetReadyGate(fn func() bool)

	// Start begins ticking. The host schedules a tick carrying the
	// returned token, then keeps doing so while Tick reports Continue.
	Start() (core.Token, bool)

	// Tick advances one frame of the chain identified by tok.
	// Ticks from a stopped or restarted chain are ignored.
	Tick(tok core.Token) core.StepResult

	// Input applies a player action. A returned token means the host must
	// (re)start scheduling ticks with it.
	Input(a core.Action) (core.Token, bool)

	// Stop cancels the outstanding tick chain.
	Stop()

	// Step applies the frame's actions and advances exactly one tick,
	// bypassing the tick chain. Used by headless hosts.
	Step(in core.InputFrame) core.StepResult

	Render(dst *core.Screen)
	State() core.GameState
}

// Store is the key/value persistence a game may use for high scores.
// SetIfHigher must compare and write atomically.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	SetIfHigher(key string, value int) (bool, error)
}

// Options are passed to a factory when a game is created.
type Options struct {
	ConfigPath string      // Custom YAML config, empty for the search path
	Difficulty string      // Difficulty preset name, empty for none
	Store      Store       // nil keeps high scores for the session only
	Logger     *log.Logger // nil discards game logs
}

// GameInfo describes a registered course.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game.
type Factory func(opts Options) Game

type entry struct {
	info GameInfo
	new  Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register makes a game available under id. The title is read from a
// throwaway instance. Registering an id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{info: GameInfo{ID: id, Title: f(Options{}).Title()}, new: f}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Create builds the game registered under id.
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.new(opts), nil
}

// Lookup returns the metadata of id.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := entries[id]
	return e.info, ok
}
