package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/infinite-iroha/pathmaker"
)

func newBuildCommand(a *app) *cobra.Command {
	var f callFlags
	cmd := &cobra.Command{
		Use:   "build <base> [fragment]",
		Short: "Build a single path from a base path",
		Example: `  pathmaker build http://api.site.test/ users/:id -p id=10 -q tab=posts
  pathmaker build http://api.site.test/ --args '[[10, "organizations/search"], {"query": {"q": "the query"}}]'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := f.call(args[1:])
			if err != nil {
				return err
			}
			b := pathmaker.New(args[0], a.builderOptions()...)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), b.Make(c))
			return err
		},
	}
	f.register(cmd.Flags())
	return cmd
}
