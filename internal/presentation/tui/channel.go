// Package tui implements a terminal channel for the interactive demo:
// markdown greetings are rendered with glamour, keyboards are printed as
// bracketed button rows.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/aretw0/arbor/pkg/domain"
)

// Channel implements ports.Channel on a terminal writer.
type Channel struct {
	out     io.Writer
	render  func(string) (string, error)
	profile termenv.Profile
}

// NewChannel creates a terminal channel writing to out.
func NewChannel(out io.Writer) *Channel {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // detect light/dark background
	)
	render := func(md string) (string, error) {
		if r == nil {
			return md, nil
		}
		return r.Render(md)
	}
	return &Channel{
		out:     out,
		render:  render,
		profile: termenv.ColorProfile(),
	}
}

// SendTyping prints a dim ellipsis, the terminal stand-in for a typing
// indicator.
func (c *Channel) SendTyping(ctx context.Context, userID string) error {
	hint := termenv.String("...").Foreground(c.profile.Color("8")).String()
	_, err := fmt.Fprintln(c.out, hint)
	return err
}

// Reply prints the payload and, when present, the keyboard rows.
func (c *Channel) Reply(ctx context.Context, ev domain.Event, payload domain.Payload, kb domain.Keyboard, silent bool) error {
	if err := c.printPayload(payload); err != nil {
		return err
	}
	return c.printKeyboard(kb)
}

func (c *Channel) printPayload(payload domain.Payload) error {
	switch p := payload.(type) {
	case domain.Text:
		body := p.Body
		if p.Mode == domain.ParseModeMarkdown {
			if rendered, err := c.render(body); err == nil {
				body = rendered
			}
		}
		_, err := fmt.Fprint(c.out, strings.TrimRight(body, "\n")+"\n")
		return err
	case domain.Media:
		line := fmt.Sprintf("<%s: %s>", p.Kind, p.Ref)
		if p.Caption != "" {
			line += " " + p.Caption
		}
		_, err := fmt.Fprintln(c.out, line)
		return err
	case domain.Sequence:
		for _, item := range p {
			if err := c.printPayload(item); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}

func (c *Channel) printKeyboard(kb domain.Keyboard) error {
	if kb.Removes() || kb.IsZero() {
		return nil
	}
	for _, row := range kb.Rows() {
		var buttons []string
		for _, label := range row {
			btn := termenv.String("[" + label + "]").Bold().String()
			buttons = append(buttons, btn)
		}
		if _, err := fmt.Fprintln(c.out, strings.Join(buttons, " ")); err != nil {
			return err
		}
	}
	for _, row := range kb.Inline() {
		var buttons []string
		for _, b := range row {
			buttons = append(buttons, termenv.String("("+b.Label+")").Underline().String())
		}
		if _, err := fmt.Fprintln(c.out, strings.Join(buttons, " ")); err != nil {
			return err
		}
	}
	return nil
}
