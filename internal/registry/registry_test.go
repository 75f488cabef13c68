package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub"} })
	Register("aa_stub", func() Game { return &stubGame{id: "aa_stub"} })

	assert.True(t, Exists("zz_stub"))
	assert.False(t, Exists("missing"))

	g, err := Create("aa_stub")
	require.NoError(t, err)
	assert.Equal(t, "aa_stub", g.ID())

	_, err = Create("missing")
	assert.Error(t, err)

	list := List()
	require.GreaterOrEqual(t, len(list), 2)
	assert.Equal(t, GameInfo{ID: "aa_stub", Title: "Stub aa_stub"}, list[0])
	assert.Equal(t, "zz_stub", list[len(list)-1].ID)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup_stub", func() Game { return &stubGame{id: "dup_stub"} })
	assert.Panics(t, func() {
		Register("dup_stub", func() Game { return &stubGame{id: "dup_stub"} })
	})
}
