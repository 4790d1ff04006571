package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/toolkit/core/log"
	"github.com/msto63/toolkit/utils/urlx"

	tkerror "github.com/msto63/toolkit/core/error"
	tkerrors "github.com/msto63/toolkit/core/errors"
)

func newQueryCmd(root *rootOptions) *cobra.Command {
	queryCmd := &cobra.Command{
		Use:   "query",
		Short: "URL query helpers",
	}

	var (
		base     string
		defaults string
	)
	buildCmd := &cobra.Command{
		Use:   "build [key=value ...]",
		Short: "Build a query string from key=value pairs",
		Long: `Builds a query string in argument order. Keys may repeat.

Default parameters can be taken from a section of the --config file; they
come before the arguments.

Examples:
  toolkit query build q="go generics" page=2
  toolkit query build --base https://example.org/search q=go
  toolkit query build --config app.toml --defaults search.defaults q=go`,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := urlx.NewQueryBuilder()

			if defaults != "" {
				cfg, err := root.loadConfig()
				if err != nil {
					return err
				}
				if cfg == nil {
					return tkerror.New("--defaults needs --config").
						WithCode(tkerror.CodeMissingConfig).
						WithOperation("query.build")
				}
				if q, err = urlx.FromConfig(cfg, defaults); err != nil {
					return err
				}
				root.logger.Debug("query defaults loaded", log.Field("section", defaults), log.Field("count", q.Len()))
			}

			for _, arg := range args {
				key, value, ok := strings.Cut(arg, "=")
				if !ok {
					return tkerrors.InvalidFormat(tkerrors.ModuleUrlx, "build", arg, "key=value")
				}
				q.Add(key, value)
			}
			if err := q.Err(); err != nil {
				return err
			}

			out := q.String()
			if base != "" {
				var err error
				if out, err = q.AppendTo(base); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	buildCmd.Flags().StringVar(&base, "base", "", "URL to append the query to")
	buildCmd.Flags().StringVar(&defaults, "defaults", "", "config section with default parameters")

	queryCmd.AddCommand(buildCmd)
	return queryCmd
}
