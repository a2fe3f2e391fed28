package tui

import (
	"io"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// fakeGame records what the model feeds it.
type fakeGame struct {
	resets  int
	frames  []core.InputFrame
	next    core.StepResult
	renders int
}

func (f *fakeGame) Reset(core.RuntimeConfig) { f.resets++ }

func (f *fakeGame) Step(in core.InputFrame) core.StepResult {
	events := make([]core.Event, len(in.Events))
	copy(events, in.Events)
	f.frames = append(f.frames, core.InputFrame{Events: events, Elapsed: in.Elapsed})
	return f.next
}

func (f *fakeGame) Render(dst *core.Screen) {
	f.renders++
	dst.Clear()
	dst.DrawText(0, 0, "PLAYFIELD", core.ColorGreen)
}

type recordingSink struct {
	cues []core.Cue
}

func (r *recordingSink) Play(c core.Cue) { r.cues = append(r.cues, c) }

func newTestModel(g *fakeGame, sink *recordingSink) Model {
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}
	return NewModel(g, sink, cfg, log.New(io.Discard))
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelForwardsInputAndElapsed(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, &recordingSink{})
	m.Init()
	if g.resets != 1 {
		t.Fatalf("resets = %d, want 1", g.resets)
	}

	start := time.Unix(1000, 0)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	m, _ = update(t, m, TickMsg(start))
	m, _ = update(t, m, TickMsg(start.Add(20*time.Millisecond)))

	if len(g.frames) != 2 {
		t.Fatalf("steps = %d, want 2", len(g.frames))
	}
	want := []core.Event{
		{Action: core.ActionFlapKey},
		{Action: core.ActionFlapPointer, Button: core.ButtonRight},
	}
	if !reflect.DeepEqual(g.frames[0].Events, want) {
		t.Errorf("first frame events = %v, want %v", g.frames[0].Events, want)
	}
	if g.frames[0].Elapsed != 0 {
		t.Errorf("first frame elapsed = %v, want 0", g.frames[0].Elapsed)
	}
	if len(g.frames[1].Events) != 0 {
		t.Errorf("second frame events = %v, want none", g.frames[1].Events)
	}
	if g.frames[1].Elapsed != 20*time.Millisecond {
		t.Errorf("second frame elapsed = %v, want 20ms", g.frames[1].Elapsed)
	}
}

func TestModelPlaysCues(t *testing.T) {
	g := &fakeGame{next: core.StepResult{
		State: core.GameState{GameOver: true, Score: 3},
		Cues:  []core.Cue{{Kind: core.CueHit}, {Kind: core.CueGameOver}},
	}}
	sink := &recordingSink{}
	m := newTestModel(g, sink)

	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
	if !reflect.DeepEqual(sink.cues, g.next.Cues) {
		t.Errorf("played %v, want %v", sink.cues, g.next.Cues)
	}
	if !m.State().GameOver {
		t.Error("state not recorded")
	}
}

func TestModelQuit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
	}{
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(&fakeGame{}, &recordingSink{})
			m, cmd := update(t, m, tt.msg)
			if cmd == nil {
				t.Fatal("quit key returned no command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("quit key did not quit")
			}
			if m.View() != "" {
				t.Error("view not empty after quit")
			}
		})
	}
}

func TestModelQuitFromGame(t *testing.T) {
	g := &fakeGame{next: core.StepResult{Quit: true}}
	m := newTestModel(g, &recordingSink{})
	_, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("no command after quit tick")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("game quit did not end the program")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, &recordingSink{})
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resets != 1 {
		t.Errorf("resize reset the game: resets = %d", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30-footerRows {
		t.Errorf("screen = %dx%d, want 100x%d", m.screen.Width(), m.screen.Height(), 30-footerRows)
	}
}

func TestModelView(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, &recordingSink{})

	out := m.View()
	if !strings.Contains(out, "PLAYFIELD") {
		t.Error("view missing game output")
	}
	if !strings.Contains(out, "flap") || !strings.Contains(out, "quit") {
		t.Errorf("view missing help footer:\n%s", out)
	}
	if g.renders != 1 {
		t.Errorf("renders = %d, want 1", g.renders)
	}
}

func TestNilSinkIsSafe(t *testing.T) {
	g := &fakeGame{next: core.StepResult{Cues: []core.Cue{{Kind: core.CuePoint}}}}
	m := NewModel(g, nil, core.DefaultConfig(), log.New(io.Discard))
	update(t, m, TickMsg(time.Now()))
}
