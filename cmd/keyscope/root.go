package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dshills/keyscope/internal/command"
	"github.com/dshills/keyscope/internal/contrib"
	"github.com/dshills/keyscope/internal/keybinding"
	"github.com/dshills/keyscope/internal/keycode"
	"github.com/dshills/keyscope/internal/keymap"
	"github.com/dshills/keyscope/internal/log"
	"github.com/dshills/keyscope/internal/platform"
)

var (
	configPath string
	logLevel   string
	forceOS    string
	hostProbe  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "keyscope.toml", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level")
	rootCmd.PersistentFlags().StringVar(&forceOS, "os", "", "Override OS detection for keystroke parsing (darwin, linux, windows)")
	rootCmd.PersistentFlags().BoolVar(&hostProbe, "host-probe", false, "Detect the OS from live host information instead of the build target")
}

var rootCmd = &cobra.Command{
	Use:     "keyscope",
	Short:   "Inspect and exercise scoped keybinding resolution",
	Version: fmt.Sprintf("%s (%s)", version, commit),
	Long: `keyscope loads default, user, and workspace keymaps and shows how
keystrokes resolve through scope layering, shadowing, and contexts.

  keyscope resolve ctrl+s          # which bindings a keystroke matches
  keyscope bindings                # every binding, per scope
  keyscope bindings --command a.b  # effective bindings for one command
  keyscope watch                   # interactive keystroke probe`,
	SilenceUsage: true,
}

// app holds the wired registries behind every subcommand.
type app struct {
	cfg      keymap.Config
	logger   *log.Logger
	commands *command.Registry
	registry *keybinding.Registry
	loader   *keymap.Loader

	// onExecute, when set, observes command handler invocations.
	onExecute func(id string)
}

// newApp loads configuration and builds the registry stack: built-in
// contributions first, then the user and workspace keymap files from
// the configuration.
func newApp(errOut io.Writer) (*app, error) {
	cfg, err := keymap.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(errOut, "Warning: %v (using defaults)\n", err)
	}

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	logger := log.New(log.Config{
		Level:  log.ParseLevel(level),
		Output: errOut,
		Prefix: "keyscope",
	})

	switch {
	case forceOS != "":
		goos := forceOS
		platform.SetProbe(platform.ProbeFunc(func() (string, error) { return goos, nil }))
	case hostProbe:
		platform.SetProbe(platform.HostProbe{})
	}
	keycode.ResetPlatformTables()

	a := &app{
		cfg:      cfg,
		logger:   logger,
		commands: command.NewRegistry(),
	}
	a.registry = keybinding.NewRegistry(a.commands, keybinding.NewContextRegistry(), logger)

	runner := contrib.NewRunner(contrib.Defaults{})
	if err := runner.Initialize(a.registry); err != nil {
		return nil, err
	}

	a.loader = keymap.NewLoader(a.registry, logger)
	if cfg.UserKeymap != "" {
		if err := a.loader.LoadFile(keybinding.ScopeUser, cfg.UserKeymap); err != nil {
			logger.Warn("user keymap: %v", err)
		}
	}
	if cfg.WorkspaceKeymap != "" {
		if err := a.loader.LoadFile(keybinding.ScopeWorkspace, cfg.WorkspaceKeymap); err != nil {
			logger.Warn("workspace keymap: %v", err)
		}
	}

	a.registerBoundCommands()
	return a, nil
}

// registerBoundCommands gives every command referenced by a binding a
// handler, so each one resolves and is executable from the probe.
func (a *app) registerBoundCommands() {
	for scope := keybinding.ScopeDefault; scope <= keybinding.ScopeWorkspace; scope++ {
		for _, b := range a.registry.BindingsForScope(scope) {
			id := b.Command
			if id == keybinding.Passthrough || a.commands.HasCommand(id) {
				continue
			}
			handler := command.HandlerFunc(func() error {
				if a.onExecute != nil {
					a.onExecute(id)
				}
				return nil
			})
			if err := a.commands.Register(command.Command{ID: id, Label: id}, handler); err != nil {
				a.logger.Warn("registering command %s: %v", id, err)
			}
		}
	}
}

// watchKeymaps starts file watching for the configured keymap files.
// The caller owns the returned watcher.
func (a *app) watchKeymaps() (*keymap.Watcher, error) {
	w, err := keymap.NewWatcher(a.loader, a.logger)
	if err != nil {
		return nil, err
	}
	if a.cfg.UserKeymap != "" {
		if err := w.Watch(keybinding.ScopeUser, a.cfg.UserKeymap); err != nil {
			w.Close()
			return nil, err
		}
	}
	if a.cfg.WorkspaceKeymap != "" {
		if err := w.Watch(keybinding.ScopeWorkspace, a.cfg.WorkspaceKeymap); err != nil {
			w.Close()
			return nil, err
		}
	}
	return w, nil
}
