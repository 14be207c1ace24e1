package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/infinite-iroha/pathmaker"
	"github.com/infinite-iroha/pathmaker/sitemap"
)

func newRoutesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "routes [sitemap]",
		Short: "List the routes of a sitemap",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadSite(args)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			err = s.Walk(func(name string, b *pathmaker.Builder) error {
				_, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", name, b.BasePath(), strings.Join(b.Tokens(), ","))
				return err
			})
			if err != nil {
				return err
			}
			return tw.Flush()
		},
	}
}

func newResolveCommand(a *app) *cobra.Command {
	var f callFlags
	cmd := &cobra.Command{
		Use:   "resolve <name> [fragment]",
		Short: "Build a path from a named sitemap route",
		Example: `  pathmaker resolve api.users -p id=10 --sitemap site.yaml
  pathmaker resolve app.login -q redirect=/dashboard`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadSite(nil)
			if err != nil {
				return err
			}
			b, ok := s.Lookup(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", sitemap.ErrUnknownRoute, args[0])
			}
			c, err := f.call(args[1:])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), b.Make(c))
			return err
		},
	}
	f.register(cmd.Flags())
	bindSitemapFlag(a, cmd)
	return cmd
}

func newDumpCommand(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump [sitemap]",
		Short: "Write every route name with its base path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := sitemap.ParseFormat(format)
			if err != nil {
				return err
			}
			s, err := a.loadSite(args)
			if err != nil {
				return err
			}
			return s.Dump(cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(sitemap.FormatYAML), "output format: json or yaml")
	return cmd
}

// bindSitemapFlag adds --sitemap for commands whose positional arguments are taken.
func bindSitemapFlag(a *app, cmd *cobra.Command) {
	cmd.Flags().String("sitemap", "", "sitemap file (json or yaml)")
	_ = a.loader.Viper().BindPFlag("sitemap", cmd.Flags().Lookup("sitemap"))
}
