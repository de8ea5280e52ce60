package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/keyscope/internal/keybinding"
)

var bindingsCommand string

func init() {
	bindingsCmd.Flags().StringVar(&bindingsCommand, "command", "", "Show effective bindings for one command")
	rootCmd.AddCommand(bindingsCmd)
}

var bindingsCmd = &cobra.Command{
	Use:   "bindings",
	Short: "List registered bindings per scope, marking shadowed entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(os.Stderr)
		if err != nil {
			return err
		}

		if bindingsCommand != "" {
			effective := a.registry.KeybindingsForCommand(bindingsCommand)
			if len(effective) == 0 {
				fmt.Printf("no effective bindings for %s\n", bindingsCommand)
				return nil
			}
			for _, b := range effective {
				fmt.Printf("%-16s %s\n", b.Keybinding, contextLabel(b))
			}
			return nil
		}

		for scope := keybinding.ScopeDefault; scope <= keybinding.ScopeWorkspace; scope++ {
			bindings := a.registry.BindingsForScope(scope)
			fmt.Printf("[%s] %d bindings\n", scope, len(bindings))
			for _, b := range bindings {
				marker := " "
				if a.registry.IsKeybindingShadowed(scope, b) {
					marker = "s"
				}
				fmt.Printf(" %s %-16s %-24s %s\n", marker, b.Keybinding, b.Command, contextLabel(b))
			}
		}
		return nil
	},
}

func contextLabel(b keybinding.Binding) string {
	if b.HasContext() {
		return b.Context
	}
	return "(global)"
}
