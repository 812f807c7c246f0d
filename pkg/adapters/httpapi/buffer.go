package httpapi

import (
	"context"
	"sync"

	"github.com/aretw0/arbor/pkg/domain"
)

// OutboundMessage is the JSON shape of one buffered reply.
type OutboundMessage struct {
	UserID         string             `json:"user_id"`
	Text           string             `json:"text,omitempty"`
	ParseMode      string             `json:"parse_mode,omitempty"`
	Media          *domain.Attachment `json:"media,omitempty"`
	Caption        string             `json:"caption,omitempty"`
	Keyboard       [][]string         `json:"keyboard,omitempty"`
	Inline         [][]domain.Button  `json:"inline_keyboard,omitempty"`
	RemoveKeyboard bool               `json:"remove_keyboard,omitempty"`
	Silent         bool               `json:"silent,omitempty"`
}

// ReplyBuffer implements ports.Channel by buffering replies per user, so a
// request/response transport can drain everything the router produced for
// one inbound event and ship it back in the HTTP response.
type ReplyBuffer struct {
	mu    sync.Mutex
	queue map[string][]OutboundMessage
}

// NewReplyBuffer creates an empty buffer.
func NewReplyBuffer() *ReplyBuffer {
	return &ReplyBuffer{
		queue: make(map[string][]OutboundMessage),
	}
}

// SendTyping is a no-op for buffered transports.
func (b *ReplyBuffer) SendTyping(ctx context.Context, userID string) error {
	return nil
}

// Reply appends the payload to the user's queue.
func (b *ReplyBuffer) Reply(ctx context.Context, ev domain.Event, payload domain.Payload, kb domain.Keyboard, silent bool) error {
	msg := OutboundMessage{
		UserID:         ev.UserID(),
		Keyboard:       kb.Rows(),
		Inline:         kb.Inline(),
		RemoveKeyboard: kb.Removes(),
		Silent:         silent,
	}
	switch p := payload.(type) {
	case domain.Text:
		msg.Text = p.Body
		msg.ParseMode = string(p.Mode)
	case domain.Media:
		msg.Media = &domain.Attachment{Kind: p.Kind, Ref: p.Ref}
		msg.Caption = p.Caption
	case domain.Sequence:
		// The router unrolls sequences before reaching the channel; a nested
		// sequence here is a programming error upstream.
		for _, item := range p {
			if err := b.Reply(ctx, ev, item, kb, silent); err != nil {
				return err
			}
		}
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.queue[ev.UserID()] = append(b.queue[ev.UserID()], msg)
	return nil
}

// Drain removes and returns everything buffered for the user.
func (b *ReplyBuffer) Drain(userID string) []OutboundMessage {
	b.mu.Lock()
	defer b.mu.Unlock()
	msgs := b.queue[userID]
	delete(b.queue, userID)
	return msgs
}
