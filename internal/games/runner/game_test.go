package runner

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

func TestVariantsRegistered(t *testing.T) {
	expected := map[string]string{
		IDClassic: "Classic Runner",
		IDDouble:  "Double Jump",
		IDCity:    "City Run",
	}
	for id, title := range expected {
		g, err := registry.Create(id, registry.Options{})
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id || g.Title() != title {
			t.Errorf("Create(%q) = %q/%q, expected title %q", id, g.ID(), g.Title(), title)
		}
	}
}

func TestLoadConfigUnknownID(t *testing.T) {
	if _, err := LoadConfig("pong", "", ""); err == nil {
		t.Error("LoadConfig() accepted an unknown game ID")
	}
	if _, err := LoadConfig(IDClassic, "", "brutal"); err == nil {
		t.Error("LoadConfig() accepted an unknown difficulty")
	}
}

func TestLoadConfigAppliesDifficulty(t *testing.T) {
	cfg, err := LoadConfig(IDClassic, "", "fixed")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Speed.Increment != 0 {
		t.Errorf("fixed difficulty increment = %v, expected 0", cfg.Speed.Increment)
	}
}

func TestGameStepHeadless(t *testing.T) {
	g := NewGame(IDDouble, registry.Options{})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 5})

	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	res := g.Step(in)
	if res.State.Phase != core.PhaseRunning || !res.Continue {
		t.Fatalf("Step(jump) = %+v, expected a running game", res)
	}

	in.Clear()
	in.Set(core.ActionJump)
	g.Step(in)
	if s := g.Snapshot(); s.JumpCount != 2 || s.Pose != PoseDoubleJump {
		t.Errorf("second jump: JumpCount=%d Pose=%v, expected 2, double jump", s.JumpCount, s.Pose)
	}

	in.Clear()
	in.Set(core.ActionPause)
	if res := g.Step(in); res.Continue || !res.State.Paused {
		t.Errorf("Step(pause) = %+v, expected a paused game", res)
	}
}

func TestGameReadsHighScoreOnce(t *testing.T) {
	store := newMemStore()
	store.data[HighScoreKey(IDClassic)] = "7"

	g := NewGame(IDClassic, registry.Options{Store: store})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 5})
	g.Reset(core.DefaultConfig())

	if store.gets != 1 {
		t.Errorf("store read %d times, expected once per game", store.gets)
	}
	if hs := g.State().HighScore; hs != 7 {
		t.Errorf("HighScore = %d, expected 7", hs)
	}
}

func TestGameRender(t *testing.T) {
	g := NewGame(IDClassic, registry.Options{})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 5})
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Press Space to start") {
		t.Error("idle overlay missing")
	}
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected the score", screen.Row(0))
	}
	// Ground line at 350/400 of the 23 playfield rows below the HUD.
	if !strings.ContainsRune(screen.Row(21), GroundChar) {
		t.Errorf("ground row = %q, expected ground glyphs", screen.Row(21))
	}
}

func TestGameTickChain(t *testing.T) {
	g := NewGame(IDClassic, registry.Options{})
	open := false
	g.SetReadyGate(func() bool { return open })

	if _, ok := g.Start(); ok {
		t.Fatal("Start() ignored the ready gate")
	}
	open = true
	tok, ok := g.Start()
	if !ok {
		t.Fatal("Start() refused with the gate open")
	}
	if res := g.Tick(tok); !res.Continue || res.State.Phase != core.PhaseRunning {
		t.Errorf("Tick() = %+v, expected a running game", res)
	}

	// Reset builds a new engine; the ready gate carries over.
	g.Reset(core.DefaultConfig())
	if res := g.Tick(tok); res.Continue {
		t.Error("token from the previous session advanced the new one")
	}
}
