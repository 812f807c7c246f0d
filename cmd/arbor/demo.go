package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/config"
	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/internal/presentation/tui"
	"github.com/aretw0/arbor/pkg/dialog"
	"github.com/aretw0/arbor/pkg/domain"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Chat with the demo dialog tree in the terminal",
	Long:  `Runs the demo support-bot tree against a terminal channel. Type /start to enter, quit to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		channel := tui.NewChannel(os.Stdout)
		r := arbor.New(buildTree(), channel,
			arbor.WithEntry(dialog.OnText("/start", nil)),
			arbor.WithExit(dialog.OnText("/stop", nil)),
			arbor.WithBackTrigger(cfg.BackTrigger),
			arbor.WithFallbacks(dialog.OnAny(nil)),
			arbor.WithLogger(logging.New(logging.ParseLevel(cfg.LogLevel))),
		)

		fmt.Println("--- Arbor demo (type /start to begin, quit to exit) ---")
		scanner := bufio.NewScanner(os.Stdin)
		ctx := cmd.Context()
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "quit" || line == "exit" {
				fmt.Println("Bye!")
				return nil
			}

			ev := domain.Message{User: "local", Body: line}
			if !r.Matches(ev) {
				fmt.Println("(not understood, try /start)")
				continue
			}
			if _, err := r.Handle(ctx, ev); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
