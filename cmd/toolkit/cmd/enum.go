package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/toolkit/core/config"
	"github.com/msto63/toolkit/core/log"
	"github.com/msto63/toolkit/utils/enumx"

	tkerror "github.com/msto63/toolkit/core/error"
	tkerrors "github.com/msto63/toolkit/core/errors"
)

type enumOptions struct {
	root       *rootOptions
	file       string
	key        string
	enum       string
	ignoreCase bool
}

func newEnumCmd(root *rootOptions) *cobra.Command {
	opts := &enumOptions{root: root}

	enumCmd := &cobra.Command{
		Use:   "enum",
		Short: "Work with enum definitions",
		Long: `Loads enum definitions and describes, decomposes, formats or parses values.

Definitions come from a YAML definition file (--file defs.yaml) or from the
[enums] section of a TOML/YAML config file (--file or --config).

Examples:
  toolkit enum describe --file perms.yaml
  toolkit enum decompose --file app.toml --enum perm 7
  toolkit enum format --file app.toml --enum perm 5
  toolkit enum parse --file app.toml --enum perm "read, write"`,
	}

	enumCmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "definition file (default: --config)")
	enumCmd.PersistentFlags().StringVar(&opts.key, "key", "enums", "config section holding the definitions")
	enumCmd.PersistentFlags().StringVarP(&opts.enum, "enum", "e", "", "enum name (optional with a single definition)")

	describeCmd := &cobra.Command{
		Use:   "describe",
		Short: "List the members of an enum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.table()
			if err != nil {
				return err
			}
			describeTable(cmd.OutOrStdout(), t)
			return nil
		},
	}

	decomposeCmd := &cobra.Command{
		Use:   "decompose <value>",
		Short: "Split a value into its member flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.table()
			if err != nil {
				return err
			}
			v, err := t.Parse(args[0], true)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, part := range t.Decompose(v) {
				name, ok := t.NameOf(part)
				if !ok {
					name = mutedStyle.Render("(undefined)")
				}
				fmt.Fprintf(out, "%s %s\n", column(valueStyle, 12, strconv.FormatUint(part, 10)), name)
			}
			return nil
		},
	}

	formatCmd := &cobra.Command{
		Use:   "format <number>",
		Short: "Format a numeric value by member names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.table()
			if err != nil {
				return err
			}
			v, err := strconv.ParseUint(strings.TrimSpace(args[0]), 0, 64)
			if err != nil {
				return tkerrors.InvalidFormat(tkerrors.ModuleEnumx, "format", args[0], "unsigned number")
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Format(v))
			return nil
		},
	}

	parseCmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse member names or numbers into a value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.table()
			if err != nil {
				return err
			}
			v, err := t.Parse(args[0], opts.ignoreCase)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	parseCmd.Flags().BoolVarP(&opts.ignoreCase, "ignore-case", "i", false, "match names case-insensitively")

	enumCmd.AddCommand(describeCmd, decomposeCmd, formatCmd, parseCmd)
	return enumCmd
}

// table loads the definitions and selects the requested one
func (o *enumOptions) table() (*enumx.Table, error) {
	tables, err := o.load()
	if err != nil {
		return nil, err
	}
	o.root.logger.WithFields(log.Fields{"file": o.source(), "key": o.key}).
		Debug("enum definitions loaded", log.Field("count", len(tables)))

	if o.enum == "" {
		if len(tables) == 1 {
			for _, t := range tables {
				return t, nil
			}
		}
		return nil, tkerrors.InvalidInput(tkerrors.ModuleEnumx, "select", "", "--enum, one of "+strings.Join(tableNames(tables), ", "))
	}

	if t, ok := tables[o.enum]; ok {
		return t, nil
	}
	return nil, tkerrors.NotFound(tkerrors.ModuleEnumx, "select", o.enum).
		WithDetail("available", tableNames(tables))
}

// source returns the definition file, --file taking precedence over --config
func (o *enumOptions) source() string {
	if o.file != "" {
		return o.file
	}
	return o.root.cfgFile
}

func (o *enumOptions) load() (map[string]*enumx.Table, error) {
	path := o.source()
	if path == "" {
		return nil, tkerror.New("no definition file: use --file or --config").
			WithCode(tkerror.CodeMissingConfig).
			WithOperation("enum.load")
	}

	if ext := strings.ToLower(filepath.Ext(path)); ext == ".yaml" || ext == ".yml" {
		if tables, ok, err := loadDefinitionFile(path); ok || err != nil {
			return tables, err
		}
	}

	cfg, err := config.LoadWithOptions(path, config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: envPrefix,
		Logger:    o.root.logger,
	})
	if err != nil {
		return nil, err
	}
	return enumx.TablesFromConfig(cfg, o.key)
}

// loadDefinitionFile reads a YAML definition document. ok is false when the
// file is a config document with an enum section instead.
func loadDefinitionFile(path string) (map[string]*enumx.Table, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, tkerror.Wrap(err, "failed to read definition file").
			WithCode(tkerror.CodeConfigError).
			WithDetail("path", path)
	}
	if !isDefinitionDocument(data) {
		return nil, false, nil
	}

	list, err := enumx.LoadTables(data)
	if err != nil {
		return nil, true, err
	}
	tables := make(map[string]*enumx.Table, len(list))
	for _, t := range list {
		tables[t.Name()] = t
	}
	return tables, true, nil
}

// isDefinitionDocument reports whether data is a definition list or a
// single definition with a top level "members" list
func isDefinitionDocument(data []byte) bool {
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || trimmed == "---" {
			continue
		}
		return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "name:") || strings.HasPrefix(trimmed, "members:") || strings.HasPrefix(trimmed, "flags:")
	}
	return false
}

func tableNames(tables map[string]*enumx.Table) []string {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func describeTable(w io.Writer, t *enumx.Table) {
	kind := "enum"
	if t.IsFlags() {
		kind = "flags"
	}
	fmt.Fprintf(w, "%s %s\n", titleStyle.Render(t.Name()), mutedStyle.Render("("+kind+", "+strconv.Itoa(t.Len())+" members)"))

	fmt.Fprintln(w, column(headerStyle, 20, "NAME")+column(headerStyle, 12, "VALUE")+column(headerStyle, 20, "HEX"))
	fmt.Fprintln(w, ruleStyle.Render(strings.Repeat("─", 52)))
	for _, e := range t.Entries() {
		fmt.Fprintln(w, column(headerStyle.UnsetBold(), 20, e.Name)+
			column(valueStyle, 12, strconv.FormatUint(e.Value, 10))+
			column(mutedStyle, 20, fmt.Sprintf("0x%X", e.Value)))
	}
	if t.IsFlags() {
		fmt.Fprintf(w, "%s %s\n", mutedStyle.Render("all:"), t.Format(t.All()))
	}
}
