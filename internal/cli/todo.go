// Package cli wires the todo and guess command trees.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/logger"
	"github.com/Makepad-fr/tada/internal/store/jsonstore"
	"github.com/Makepad-fr/tada/internal/todo"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

// rootFlags tune every todo subcommand.
type rootFlags struct {
	file       string
	configPath string
	theme      string
	strict     bool
	verbose    bool
}

type todoApp struct {
	flags rootFlags
	list  *todo.List
	store *jsonstore.Store
}

// NewTodoCommand builds a fresh todo command tree.
func NewTodoCommand() *cobra.Command {
	app := &todoApp{}

	root := &cobra.Command{
		Use:   "todo",
		Short: "A tiny todo list kept in a JSON file",
		Long: `todo keeps a list of items in todos.json (in the current directory by default).

Items are addressed by their position in "todo list" or by the start of their id
("todo list --ids"). Positions shift when an item is removed; ids never change.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&app.flags.file, "file", "f", "", "todo file (default ./todos.json)")
	pf.StringVar(&app.flags.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/tada/config.yaml)")
	pf.StringVar(&app.flags.theme, "theme", "", "output theme: classic, neon or mono")
	pf.BoolVar(&app.flags.strict, "strict", false, "fail on an unreadable todo file instead of starting empty")
	pf.BoolVarP(&app.flags.verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(
		app.addCmd(),
		app.listCmd(),
		app.doneCmd(),
		app.removeCmd(),
		app.clearCmd(),
		app.browseCmd(),
	)
	return root
}

// ExecuteTodo runs the todo CLI and returns the process exit code.
func ExecuteTodo(args []string, stdout, stderr io.Writer) int {
	root := NewTodoCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteC()
	code := exitCode(err)
	if err != nil {
		ui.Fail(stderr, err.Error())
		if code == ExitUsage {
			fmt.Fprintln(stderr)
			fmt.Fprint(stderr, cmd.UsageString())
		}
	}
	return code
}

func (a *todoApp) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return failure(err)
	}

	f := cmd.Flags()
	if f.Changed("file") {
		cfg.File = a.flags.file
	}
	if f.Changed("theme") {
		cfg.Theme = a.flags.theme
	}
	if f.Changed("strict") {
		cfg.Strict = a.flags.strict
	}
	if a.flags.verbose {
		cfg.LogLevel = "debug"
	}

	logger.Init(cmd.ErrOrStderr(), cfg.LogLevel)
	ui.SetTheme(cfg.Theme)

	path, err := config.ResolvePath(cfg.File)
	if err != nil {
		return failure(err)
	}
	store, err := jsonstore.New(path)
	if err != nil {
		return failure(err)
	}
	logger.Debug("using todo file", "path", store.Path(), "strict", cfg.Strict)

	a.store = store
	a.list = todo.New(store, todo.WithStrict(cfg.Strict))
	return nil
}

// notFound reports a missing item. It is printed, not signalled through the exit code.
func notFound(cmd *cobra.Command, err error) {
	msg := "Todo not found!"
	if errors.Is(err, todo.ErrAmbiguousRef) {
		msg = "Todo reference matches more than one item!"
	}
	ui.Fail(cmd.OutOrStdout(), msg)
	ui.Hint(cmd.OutOrStdout(), "Hint: run `todo list` to see valid positions")
}

func parseRef(arg string) (todo.Ref, error) {
	ref, err := todo.ParseRef(arg)
	if err != nil {
		return todo.Ref{}, usage("%v", err)
	}
	return ref, nil
}

func (a *todoApp) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add <description...>",
		Short:   "Add a new todo (the description can be several words)",
		Example: `  todo add "Buy milk"` + "\n" + `  todo add call the plumber`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, pos, err := a.list.Add(strings.Join(args, " "))
			if err != nil {
				return failure(fmt.Errorf("%w (nothing was added)", err))
			}
			logger.Debug("added", "position", pos, "id", it.ID)
			ui.OK(cmd.OutOrStdout(), "Todo added!")
			return nil
		},
	}
}

func (a *todoApp) listCmd() *cobra.Command {
	var opt ui.ListOptions
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all todos",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.list.Items()
			if err != nil {
				return failure(err)
			}
			ui.RenderList(cmd.OutOrStdout(), items, opt)
			return nil
		},
	}
	cmd.Flags().BoolVar(&opt.Group, "group", false, "group output by pending/done")
	cmd.Flags().BoolVar(&opt.IDs, "ids", false, "show each item's short id")
	cmd.Flags().BoolVar(&opt.Panel, "panel", false, "frame the list with a progress header")
	return cmd
}

func (a *todoApp) doneCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "done <position|id>",
		Short:   "Mark a todo as done",
		Example: "  todo done 2\n  todo done 3f2a",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseRef(args[0])
			if err != nil {
				return err
			}
			it, err := a.list.Done(ref)
			switch {
			case errors.Is(err, todo.ErrNotFound), errors.Is(err, todo.ErrAmbiguousRef):
				notFound(cmd, err)
				return nil
			case err != nil:
				return failure(fmt.Errorf("%w (the item was not marked done)", err))
			}
			logger.Debug("done", "ref", ref.String(), "id", it.ID)
			ui.OK(cmd.OutOrStdout(), "Todo marked as done!")
			return nil
		},
	}
}

func (a *todoApp) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <position|id>",
		Aliases: []string{"rm"},
		Short:   "Remove a todo",
		Example: "  todo remove 3\n  todo rm 3f2a",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseRef(args[0])
			if err != nil {
				return err
			}
			it, err := a.list.Remove(ref)
			switch {
			case errors.Is(err, todo.ErrNotFound), errors.Is(err, todo.ErrAmbiguousRef):
				notFound(cmd, err)
				return nil
			case err != nil:
				return failure(fmt.Errorf("%w (the item was not removed)", err))
			}
			logger.Debug("removed", "ref", ref.String(), "id", it.ID)
			ui.OK(cmd.OutOrStdout(), "Todo removed!")
			return nil
		},
	}
}

func (a *todoApp) clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every completed todo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.list.ClearCompleted()
			if err != nil {
				return failure(fmt.Errorf("%w (nothing was cleared)", err))
			}
			if n == 0 {
				ui.Hint(cmd.OutOrStdout(), "No completed todos to clear.")
				return nil
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("Cleared %d completed todo(s)!", n))
			return nil
		},
	}
}

func (a *todoApp) browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse and edit todos interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := tui.Run(a.list)
			if err != nil {
				return failure(fmt.Errorf("browse: %w", err))
			}
			if saved {
				ui.OK(cmd.OutOrStdout(), "saved")
			}
			return nil
		},
	}
}
