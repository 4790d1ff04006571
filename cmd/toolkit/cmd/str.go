package cmd

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/msto63/toolkit/utils/stringx"

	tkerrors "github.com/msto63/toolkit/core/errors"
)

const moduleCLI = "cli"

func newStrCmd() *cobra.Command {
	strCmd := &cobra.Command{
		Use:   "str",
		Short: "String helpers",
		Long: `Runs the stringx helpers on the given text.

Examples:
  toolkit str truncate --max 10 "a rather long sentence"
  toolkit str truncate --max 10 --ellipsis "..." "a rather long sentence"
  toolkit str case --to snake parseHTTPRequest
  toolkit str pad --width 8 --align right --char 0 42`,
	}

	var (
		maxLen   int
		ellipsis string
	)
	truncateCmd := &cobra.Command{
		Use:   "truncate <text>",
		Short: "Cut text to at most --max characters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if ellipsis != "" {
				if maxLen < 0 {
					return tkerrors.InvalidInput(tkerrors.ModuleStringx, "truncate", maxLen, "non-negative length")
				}
				fmt.Fprintln(cmd.OutOrStdout(), stringx.TruncateWithEllipsis(args[0], maxLen, ellipsis))
				return nil
			}
			out, err := stringx.TruncateE(args[0], maxLen)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	truncateCmd.Flags().IntVarP(&maxLen, "max", "n", 80, "maximum length in characters")
	truncateCmd.Flags().StringVar(&ellipsis, "ellipsis", "", "suffix marking cut text, counted in --max")

	var to string
	caseCmd := &cobra.Command{
		Use:   "case <text>",
		Short: "Convert text to another case style",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			convert, ok := caseConverters[strings.ToLower(to)]
			if !ok {
				return tkerrors.InvalidInput(moduleCLI, "case", to, "snake, kebab, camel, pascal, title, upper or lower")
			}
			fmt.Fprintln(cmd.OutOrStdout(), convert(args[0]))
			return nil
		},
	}
	caseCmd.Flags().StringVarP(&to, "to", "t", "snake", "target style: snake, kebab, camel, pascal, title, upper, lower")

	var (
		width int
		align string
		char  string
	)
	padCmd := &cobra.Command{
		Use:   "pad <text>",
		Short: "Pad text to --width characters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if utf8.RuneCountInString(char) != 1 {
				return tkerrors.InvalidInput(moduleCLI, "pad", char, "single pad character")
			}
			r, _ := utf8.DecodeRuneInString(char)

			var out string
			switch strings.ToLower(align) {
			case "left":
				out = stringx.PadRight(args[0], width, r)
			case "right":
				out = stringx.PadLeft(args[0], width, r)
			case "center":
				out = stringx.Center(args[0], width, r)
			default:
				return tkerrors.InvalidInput(moduleCLI, "pad", align, "left, right or center")
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	padCmd.Flags().IntVarP(&width, "width", "w", 20, "target width in characters")
	padCmd.Flags().StringVar(&align, "align", "left", "text alignment: left, right or center")
	padCmd.Flags().StringVar(&char, "char", " ", "pad character")

	strCmd.AddCommand(truncateCmd, caseCmd, padCmd)
	return strCmd
}

var caseConverters = map[string]func(string) string{
	"snake":  stringx.ToSnakeCase,
	"kebab":  stringx.ToKebabCase,
	"camel":  stringx.ToCamelCase,
	"pascal": stringx.ToPascalCase,
	"title":  stringx.ToTitleCase,
	"upper":  strings.ToUpper,
	"lower":  strings.ToLower,
}
