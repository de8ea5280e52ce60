package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dshills/keyscope/internal/keycode"
	"github.com/dshills/keyscope/internal/term"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Interactive probe: press keys and see how they dispatch",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Logs would corrupt the raw-mode screen.
		a, err := newApp(io.Discard)
		if err != nil {
			return err
		}

		if a.cfg.Watch {
			w, err := a.watchKeymaps()
			if err != nil {
				return err
			}
			defer w.Close()
		}

		t, err := term.New()
		if err != nil {
			return err
		}
		if err := t.Init(); err != nil {
			return err
		}
		defer t.Fini()

		var executed string
		a.onExecute = func(id string) { executed = id }

		status := "press keys; ctrl+q quits"
		for {
			t.Clear()
			t.Print(0, 0, "keyscope watch")
			t.Print(0, 2, status)
			t.Show()

			ev, ok := t.NextKey()
			if !ok {
				return nil
			}

			code := keycode.FromEvent(ev)
			if code.String() == "ctrl+q" {
				return nil
			}

			executed = ""
			a.registry.Run(ev)

			switch {
			case executed != "":
				status = fmt.Sprintf("%-16s -> executed %s", code, executed)
			case ev.PropagationStopped():
				status = fmt.Sprintf("%-16s -> consumed, no active handler", code)
			default:
				status = fmt.Sprintf("%-16s -> passed through", code)
			}
		}
	},
}
