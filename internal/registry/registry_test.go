package registry

import (
	"testing"

	"github.com/vovakirdan/brick-arcade/internal/core"
)

type stubGame struct {
	id     string
	resets int
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             { g.resets++ }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func stubEntry(id string, fronts ...Frontend) Entry {
	return Entry{
		ID:        id,
		Frontends: fronts,
		New:       func() Game { return &stubGame{id: id} },
	}
}

func TestRegisterCreateList(t *testing.T) {
	Register(stubEntry("zz-stub"))
	Register(stubEntry("aa-stub", FrontendTerminal, FrontendWindow))

	if !Exists("zz-stub") || Exists("missing") {
		t.Fatal("Exists() mismatch")
	}

	g, err := Create("aa-stub")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "aa-stub" {
		t.Errorf("ID() = %q", g.ID())
	}
	if other, _ := Create("aa-stub"); other == g {
		t.Error("Create() should return a fresh instance")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted: %v", list)
		}
	}

	e, ok := Lookup("zz-stub")
	if !ok || e.Title != "Stub zz-stub" {
		t.Errorf("Lookup() title = %q, expected the title taken from the game", e.Title)
	}
}

func TestEntryFrontends(t *testing.T) {
	tests := []struct {
		name     string
		entry    Entry
		frontend Frontend
		want     bool
		list     string
	}{
		{"default terminal", stubEntry("a"), FrontendTerminal, true, "terminal"},
		{"default no window", stubEntry("a"), FrontendWindow, false, "terminal"},
		{"explicit window", stubEntry("a", FrontendTerminal, FrontendWindow), FrontendWindow, true, "terminal, window"},
		{"explicit no ssh", stubEntry("a", FrontendWindow), FrontendSSH, false, "window"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Supports(tt.frontend); got != tt.want {
				t.Errorf("Supports(%s) = %v, expected %v", tt.frontend, got, tt.want)
			}
			if got := tt.entry.FrontendList(); got != tt.list {
				t.Errorf("FrontendList() = %q, expected %q", got, tt.list)
			}
		})
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create() expected error for unknown id")
	}
}

func TestRegisterPanics(t *testing.T) {
	Register(stubEntry("dup-stub"))

	tests := []struct {
		name  string
		entry Entry
	}{
		{"duplicate", stubEntry("dup-stub")},
		{"no id", Entry{New: func() Game { return &stubGame{} }}},
		{"no factory", Entry{ID: "nofactory"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register() should panic")
				}
			}()
			Register(tt.entry)
		})
	}
}
