package httpapi_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/arbor/pkg/adapters/httpapi"
	"github.com/aretw0/arbor/pkg/domain"
)

func TestReplyBuffer_TextReply(t *testing.T) {
	b := httpapi.NewReplyBuffer()
	ev := domain.Message{User: "u1"}

	kb := domain.ReplyKeyboard([]string{"a", "b"})
	require.NoError(t, b.Reply(context.Background(), ev, domain.NewText("hi"), kb, false))

	msgs := b.Drain("u1")
	require.Len(t, msgs, 1)
	assert.Equal(t, "hi", msgs[0].Text)
	assert.Equal(t, string(domain.ParseModeMarkdown), msgs[0].ParseMode)
	assert.Equal(t, [][]string{{"a", "b"}}, msgs[0].Keyboard)
	assert.False(t, msgs[0].Silent)
}

func TestReplyBuffer_MediaReply(t *testing.T) {
	b := httpapi.NewReplyBuffer()
	ev := domain.Message{User: "u1"}

	media, err := domain.NewCaptionedMedia(domain.MediaPhoto, "file-id", "a photo")
	require.NoError(t, err)
	require.NoError(t, b.Reply(context.Background(), ev, media, domain.Keyboard{}, true))

	msgs := b.Drain("u1")
	require.Len(t, msgs, 1)
	require.NotNil(t, msgs[0].Media)
	assert.Equal(t, domain.MediaPhoto, msgs[0].Media.Kind)
	assert.Equal(t, "file-id", msgs[0].Media.Ref)
	assert.Equal(t, "a photo", msgs[0].Caption)
	assert.True(t, msgs[0].Silent)
}

func TestReplyBuffer_RemoveKeyboard(t *testing.T) {
	b := httpapi.NewReplyBuffer()
	ev := domain.Message{User: "u1"}

	require.NoError(t, b.Reply(context.Background(), ev, domain.PlainText("bye"), domain.RemoveKeyboard(), false))

	msgs := b.Drain("u1")
	require.Len(t, msgs, 1)
	assert.True(t, msgs[0].RemoveKeyboard)
}

func TestReplyBuffer_DrainEmpties(t *testing.T) {
	b := httpapi.NewReplyBuffer()
	ev := domain.Message{User: "u1"}

	require.NoError(t, b.Reply(context.Background(), ev, domain.PlainText("one"), domain.Keyboard{}, false))
	require.NoError(t, b.Reply(context.Background(), ev, domain.PlainText("two"), domain.Keyboard{}, false))

	assert.Len(t, b.Drain("u1"), 2)
	assert.Empty(t, b.Drain("u1"))
	assert.Empty(t, b.Drain("never-seen"))
}
