package main

import (
	"context"
	"fmt"

	"github.com/aretw0/arbor/pkg/dialog"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
)

// buildTree wires the demo support-bot tree:
//
//	menu ──┬── faq      (answers, then returns to the menu)
//	       ├── survey   (name → color chain, then back to the menu)
//	       └── about    (announcement; leave with the back button)
func buildTree() *dialog.Node {
	faq := dialog.Named("faq", nil,
		dialog.WithGreeting(domain.NewText("Ask your question, or go back.")),
		dialog.WithInside(dialog.OnAny(answerFAQ)),
		dialog.WithClosing(domain.NewText("Anything else?")),
	)

	askColor := dialog.New(
		dialog.WithGreeting(domain.NewText("Favorite color? (red, green or blue)")),
		dialog.WithInside(dialog.OnRegex("^(red|green|blue)$", nil)),
		dialog.WithFallbacks(dialog.OnAny(nil)),
		dialog.WithHistory(false),
	)

	survey := dialog.Named("survey", nil,
		dialog.WithGreeting(domain.NewText("What's your name?")),
		dialog.WithInside(dialog.OnAny(recordName)),
		dialog.WithSuccessor(askColor),
	)

	done := dialog.New(
		dialog.WithGreeting(domain.NewText("All recorded, thanks!")),
		dialog.WithHistory(false),
	)
	askColor.Then(done)

	about := dialog.Named("about", nil,
		dialog.WithGreeting(domain.Sequence{
			domain.NewText("**Arbor demo bot**"),
			domain.NewText("A dialog-tree router. Use the back button to return."),
		}),
	)

	menu := dialog.NamedMenu("menu", nil,
		[][]*dialog.Node{
			{faq, survey},
			{about},
		},
		dialog.WithGreeting(domain.NewText("What can I do for you?")),
	)

	// Flows return to the menu when they conclude.
	faq.Then(menu)
	done.Then(menu)

	return menu
}

func answerFAQ(ctx context.Context, ev domain.Event, ch ports.Channel) (dialog.Outcome, error) {
	if ev.Text() == "" {
		return dialog.StayAndReprompt(), nil
	}
	reply := domain.NewText(fmt.Sprintf("Good question about %q, our docs cover that.", ev.Text()))
	if err := ch.Reply(ctx, ev, reply, domain.Keyboard{}, false); err != nil {
		return dialog.None(), err
	}
	return dialog.None(), nil
}

func recordName(ctx context.Context, ev domain.Event, ch ports.Channel) (dialog.Outcome, error) {
	if ev.Text() == "" {
		return dialog.StayAndReprompt(), nil
	}
	reply := domain.NewText(fmt.Sprintf("Nice to meet you, %s.", ev.Text()))
	if err := ch.Reply(ctx, ev, reply, domain.Keyboard{}, false); err != nil {
		return dialog.None(), err
	}
	return dialog.None(), nil
}
