package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/specialistvlad/wardleygo/internal/app"
	"github.com/specialistvlad/wardleygo/internal/config"
	"github.com/specialistvlad/wardleygo/internal/edit"
	"github.com/spf13/cobra"
)

func parseCmd(appFn func() *app.App) *cobra.Command {
	var format string
	var migrate bool
	cmd := &cobra.Command{
		Use:   "parse <file|dir|glob>...",
		Short: "Parse maps and print the model",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return appFn().Parse(cmd.Context(), args, format, migrate)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json or yaml")
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Rewrite legacy syntax before parsing")
	return cmd
}

func linksCmd(appFn func() *app.App) *cobra.Command {
	var format string
	var showLinkedEvolved bool
	cmd := &cobra.Command{
		Use:   "links <file>",
		Short: "Classify the links of a map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return appFn().Links(cmd.Context(), args[0], format, showLinkedEvolved)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json or yaml")
	cmd.Flags().BoolVar(&showLinkedEvolved, "show-linked-evolved", false, "Resolve plain and anchor links against evolved elements too")
	return cmd
}

func migrateCmd(appFn func() *app.App) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "migrate <file|dir|glob>...",
		Short: "Rewrite legacy map syntax",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return appFn().Migrate(cmd.Context(), args, write)
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the result back to the files")
	return cmd
}

func checkCmd(appFn func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file|dir|glob>...",
		Short: "Report parse errors and unresolved links",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return appFn().Check(cmd.Context(), args)
		},
	}
}

func moveCmd(appFn func() *app.App) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "move <file> <kind> <name> <coords>...",
		Short: "Set the coordinates of an element",
		Long: `Set the coordinates of an element.

component, anchor, market, ecosystem, submap, accelerator and deaccelerator
take [visibility, maturity]. pipeline takes its [maturity1, maturity2]
bounds and pipelinecomponent the single maturity of a block member.
pioneers, settlers and townplanners take four coordinates; their name is
the 1-based occurrence of that attitude in the file.`,
		Example: `  wardleygo move tea.owm component Kettle 0.43 0.35
  wardleygo move tea.owm pioneers 1 0.9 0.1 0.7 0.3`,
		Args: cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := args[1]
			arity, ok := edit.Arity(kind)
			if !ok {
				return usageErrorf("%s has no position to move", kind)
			}
			coords := make([]float64, 0, len(args)-3)
			for _, raw := range args[3:] {
				v, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return usageErrorf("invalid coordinate %q", raw)
				}
				coords = append(coords, v)
			}
			if len(coords) != arity {
				return usageErrorf("move %s expects %d coordinates, got %d", kind, arity, len(coords))
			}
			return appFn().Move(cmd.Context(), args[0], kind, args[2], coords, write)
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the result back to the file")
	return cmd
}

func renameCmd(appFn func() *app.App) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "rename <file> <old> <new>",
		Short: "Rename an element and every reference to it",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return appFn().Rename(cmd.Context(), args[0], args[1], args[2], write)
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the result back to the file")
	return cmd
}

func deleteCmd(appFn func() *app.App) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "delete <file> <name>",
		Short: "Remove an element with its links",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return appFn().Delete(cmd.Context(), args[0], args[1], write)
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the result back to the file")
	return cmd
}

func watchCmd(appFn func() *app.App) *cobra.Command {
	var opts app.WatchOptions
	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Check maps on every change, optionally publishing them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return appFn().Watch(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.PublishURL, "publish", "", "socket.io server URL to publish snapshots to")
	cmd.Flags().StringVar(&opts.Namespace, "namespace", "", "socket.io namespace")
	return cmd
}

func configCmd(outW io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the settings file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write a settings file with the defaults",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.Init(path); err != nil {
				return err
			}
			fmt.Fprintf(outW, "wrote %s\n", path)
			return nil
		},
	})
	return cmd
}
