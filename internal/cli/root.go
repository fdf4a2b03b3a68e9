// Package cli inspects registered commands offline: it lists them, renders
// their usage and registration payloads, and runs the resolver on sample
// input without connecting to Discord.
package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/keshon/slashy/internal/command"
	"github.com/keshon/slashy/internal/discord"
	"github.com/keshon/slashy/internal/middleware"
	"github.com/keshon/slashy/internal/version"
	"github.com/keshon/slashy/pkg/args"
	"github.com/keshon/slashy/pkg/cmd"

	"github.com/spf13/cobra"
)

// NewRootCmd returns the slashy command tree over the commands of r.
func NewRootCmd(r *cmd.Registry) *cobra.Command {
	root := &cobra.Command{
		Use:     version.AppName,
		Short:   "Inspect and try out bot commands without Discord",
		Version: version.Version,
		Long: `slashy works on the commands compiled into the bot.

Try a text invocation exactly as it would follow the prefix:
  slashy resolve stats get points 100

Or a slash invocation as Discord would deliver its options:
  slashy resolve-options stats '[{"name":"self"}]'`,
		SilenceUsage: true,
	}

	root.AddCommand(listCmd(r))
	root.AddCommand(usageCmd(r))
	root.AddCommand(payloadCmd(r))
	root.AddCommand(resolveCmd(r))
	root.AddCommand(resolveOptionsCmd(r))
	return root
}

func lookup(r *cmd.Registry, name string) (cmd.Command, error) {
	c := r.Get(strings.ToLower(name))
	if c == nil {
		return nil, fmt.Errorf("unknown command %q", name)
	}
	return c, nil
}

func listCmd(r *cmd.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered commands",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(c.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, found := range r.GetAll() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", found.Name(), command.CategoryOf(found), found.Description())
			}
			return w.Flush()
		},
	}
}

func usageCmd(r *cmd.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "usage <command>",
		Short: "Print every invocable path of a command",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, a []string) error {
			found, err := lookup(r, a[0])
			if err != nil {
				return err
			}
			for _, line := range args.Usage(found.Name(), found.Arguments()) {
				fmt.Fprintln(c.OutOrStdout(), line)
			}
			return nil
		},
	}
}

func payloadCmd(r *cmd.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "payload <command>",
		Short: "Print the slash command registration payload as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, a []string) error {
			found, err := lookup(r, a[0])
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(discord.CommandDefinition(found), "", "  ")
			if err != nil {
				return fmt.Errorf("marshal payload: %w", err)
			}
			fmt.Fprintln(c.OutOrStdout(), string(data))
			return nil
		},
	}
}

func resolveCmd(r *cmd.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <command> [args...]",
		Short: "Resolve a text invocation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, a []string) error {
			name, rest := args.SplitCommand(strings.Join(a, " "))
			found, err := lookup(r, name)
			if err != nil {
				return err
			}
			return printResolution(c, found, args.TextSource{Text: rest})
		},
	}
}

func resolveOptionsCmd(r *cmd.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve-options <command> <json>",
		Short: "Resolve a slash invocation given as a JSON option array",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, a []string) error {
			found, err := lookup(r, a[0])
			if err != nil {
				return err
			}
			var opts []args.Option
			if err := json.Unmarshal([]byte(a[1]), &opts); err != nil {
				return fmt.Errorf("parse options: %w", err)
			}
			return printResolution(c, found, args.OptionSource{Options: opts})
		},
	}
}

func printResolution(c *cobra.Command, found cmd.Command, src args.Source) error {
	res, ok := args.Resolve(src, found.Arguments())
	if !ok {
		return fmt.Errorf("no match for %s; usage:\n  %s", found.Name(),
			strings.Join(args.Usage(found.Name(), found.Arguments()), "\n  "))
	}
	fmt.Fprintf(c.OutOrStdout(), "handler: %s\n", res.Handler)
	fmt.Fprintf(c.OutOrStdout(), "args: %s\n", middleware.FormatArgs(res.Args))
	return nil
}
