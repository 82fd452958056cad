package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"amphibians/internal/nav"
	"amphibians/internal/state"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("SPC q") == nil {
		t.Error("expected SPC q to be bound")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	// Press space -> leader waiting (Bubble Tea reports space as " ")
	consumed, cmd := h.Handle(keyMsg(" "))
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}

	// Press x -> execute SPC x
	consumed, cmd = h.Handle(keyMsg("x"))
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd != nil {
		cmd()
		if !executed {
			t.Error("expected command to execute")
		}
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"))
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"))
	if !consumed || cmd == nil {
		t.Errorf("q: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"))
	if consumed {
		t.Error("unbound j should not be consumed")
	}
}

func TestKeybindRegistry_LeaderHintsByKind(t *testing.T) {
	reg := defaultKeybinds()

	onError := reg.LeaderHints("", nav.KindError)
	if onError["r"] != "Retry" {
		t.Errorf("error screen hints = %v, want r=Retry", onError)
	}
	if onError["t"] != "Tab" {
		t.Errorf("t should open the Tab submenu, got %q", onError["t"])
	}
	if _, ok := onError["b"]; ok {
		t.Error("back hint should not show on the error screen")
	}

	onDetail := reg.LeaderHints("", nav.KindDetail)
	if _, ok := onDetail["r"]; ok {
		t.Error("retry hint should only show on the error screen")
	}
	if onDetail["b"] != "Back" {
		t.Errorf("detail hints = %v, want b=Back", onDetail)
	}

	tabs := reg.LeaderHints("SPC t", nav.KindList)
	if tabs["h"] != "Home" || tabs["c"] != "Category" {
		t.Errorf("SPC t hints = %v", tabs)
	}
}

func TestKeyHandler_NestedSequence(t *testing.T) {
	h := NewKeyHandler(defaultKeybinds())

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("t"))
	if !consumed || cmd != nil {
		t.Fatalf("SPC t: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.CurrentSeq() != "SPC t" {
		t.Errorf("CurrentSeq = %q", h.CurrentSeq())
	}
	_, cmd = h.Handle(keyMsg("c"))
	if cmd == nil {
		t.Fatal("SPC t c: expected command")
	}
	if msg, ok := cmd().(SelectTabMsg); !ok || msg.Tab != state.TabCategory {
		t.Errorf("SPC t c produced %#v", msg)
	}
	if h.LeaderWaiting {
		t.Error("leader should reset after a complete sequence")
	}
}

func TestKeyHandler_UnknownLeaderSequenceResets(t *testing.T) {
	h := NewKeyHandler(defaultKeybinds())
	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("z"))
	if !consumed || cmd != nil {
		t.Errorf("SPC z: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("unknown sequence should leave leader mode")
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	h := NewKeyHandler(defaultKeybinds())
	h.Handle(keyMsg(" "))
	out := RenderKeybindHelp(h, nav.KindError)
	for _, want := range []string{"SPC", "Retry", "Quit", "cancel"} {
		if !strings.Contains(out, want) {
			t.Errorf("help missing %q:\n%s", want, out)
		}
	}
	if RenderKeybindHelp(nil, nav.KindError) != "" {
		t.Error("nil handler should render nothing")
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
