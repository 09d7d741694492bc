package scripts

import (
	"testing"

	"exogame/internal/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDeltaAddsAndKillsAtZero(t *testing.T) {
	tests := []struct {
		name  string
		start float32
		delta float32
		want  float32
		dies  bool
	}{
		{"damage", 100, -30, 70, false},
		{"heal", 50, 25, 75, false},
		{"exactly zero", 40, -40, 0, true},
		{"overkill", 10, -50, -40, true},
		{"no change", 100, 0, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealth(tt.start)
			deaths := 0
			h.OnDeath.AddListener(func() { deaths++ })

			h.ApplyDelta(tt.delta)

			assert.Equal(t, tt.want, h.CurrentHealth())
			assert.Equal(t, tt.dies, h.IsDead())
			if tt.dies {
				assert.Equal(t, 1, deaths)
			} else {
				assert.Zero(t, deaths)
			}
		})
	}
}

func TestDeathFiresOnce(t *testing.T) {
	h := NewHealth(100)
	deaths := 0
	h.OnDeath.AddListener(func() { deaths++ })

	h.ApplyDelta(-150)
	h.ApplyDelta(-10)
	h.Death()

	assert.Equal(t, 1, deaths)
	assert.Equal(t, float32(-60), h.CurrentHealth(), "health keeps tracking deltas after death")
}

func TestHealthStartResetsToInitial(t *testing.T) {
	g := engine.NewGameObject("Dummy")
	h := NewHealth(100)
	h.HP = 3
	g.AddComponent(h)

	g.Start()

	assert.Equal(t, float32(100), h.CurrentHealth())
}

func TestOnChangedReportsNewValue(t *testing.T) {
	h := NewHealth(100)
	var got []float32
	h.OnChanged.AddListener(func(v float32) { got = append(got, v) })

	h.ApplyDelta(-10)
	h.ApplyDelta(5)

	assert.Equal(t, []float32{90, 95}, got)
}

func TestFindDamageable(t *testing.T) {
	assert.Nil(t, FindDamageable(nil))

	crate := engine.NewGameObject("Crate")
	assert.Nil(t, FindDamageable(crate))

	dummy := engine.NewGameObject("Dummy")
	h := NewHealth(100)
	dummy.AddComponent(h)
	d := FindDamageable(dummy)
	require.NotNil(t, d)
	assert.Same(t, h, d.(*Health))
}

func TestHealthScriptRegistered(t *testing.T) {
	c := engine.CreateScript("Health", map[string]any{"initial": 250.0})
	require.NotNil(t, c)
	assert.Equal(t, float32(250), c.(*Health).Initial)

	name, props, ok := engine.SerializeScript(c)
	require.True(t, ok)
	assert.Equal(t, "Health", name)
	assert.Equal(t, float32(250), props["initial"])
}
