package hud

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowMessageNewestFirst(t *testing.T) {
	h := New()
	h.ShowMessage("first", rl.Green, 1)
	h.ShowMessage("second", rl.Green, 1)

	msgs := h.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "second", msgs[0].Text)
	assert.Equal(t, "first", msgs[1].Text)
}

func TestMessagesExpire(t *testing.T) {
	h := New()
	h.ShowMessage("short", rl.Green, 0.5)
	h.ShowMessage("long", rl.Green, 2)

	h.Update(0.6)
	require.Len(t, h.Messages(), 1)
	assert.Equal(t, "long", h.Messages()[0].Text)

	h.Update(1.5)
	assert.Empty(t, h.Messages())
}

func TestShowMessageIgnoresNonPositiveDuration(t *testing.T) {
	h := New()
	h.ShowMessage("never", rl.Green, 0)
	assert.Empty(t, h.Messages())
}

func TestMessageCap(t *testing.T) {
	h := New()
	h.MaxMessages = 2
	for _, text := range []string{"a", "b", "c"} {
		h.ShowMessage(text, rl.Green, 1)
	}

	msgs := h.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "c", msgs[0].Text)
	assert.Equal(t, "b", msgs[1].Text)
}
