package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/keyscope/internal/keycode"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <keystroke>",
	Short: "Show which bindings a keystroke resolves to, in dispatch order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Platform overrides apply during wiring, so parse afterwards.
		a, err := newApp(os.Stderr)
		if err != nil {
			return err
		}

		code, err := keycode.Parse(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("keystroke: %s\n", code)

		candidates := a.registry.KeybindingsForKeyCode(code)
		if len(candidates) == 0 {
			fmt.Println("no bindings; the keystroke passes through")
			return nil
		}

		for i, b := range candidates {
			ctx := "(global)"
			if b.HasContext() {
				ctx = b.Context
			}
			fmt.Printf("%2d. %-24s %s\n", i+1, b.Command, ctx)
		}
		return nil
	},
}
