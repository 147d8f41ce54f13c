package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rizalta/tabledb/config"
	"github.com/rizalta/tabledb/db"
	"github.com/rizalta/tabledb/logging"
	"github.com/rizalta/tabledb/query"
)

var errQueryFailed = errors.New("one or more queries failed")

type app struct {
	db *db.Database
	// preloaded holds the files loaded from TABLEDB_PRELOAD.
	preloaded map[string]bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "tabledb",
		Short: "Load, inspect and edit key-indexed table files",
		Long: `tabledb keeps named tables of integer rows in memory.

Table files use a line-oriented text format:

  <name> <fieldCount>
  KEY <field1> ... <fieldN>
  <key> <v1> ... <vN>

Settings come from TABLEDB_* environment variables or a .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	root.AddCommand(
		a.loadCmd(),
		a.printCmd(),
		a.insertCmd(),
		a.copyCmd(),
		a.overviewCmd(),
	)

	return root
}

func (a *app) setup(stdout, stderr io.Writer) error {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.Setup(stderr, cfg.Logging.Level, cfg.Logging.Format)
	if envErr == nil {
		logger.Debug("loaded .env file")
	}

	a.db = db.New(
		db.WithConsole(stdout),
		db.WithLogger(logger),
		db.WithDumpWidth(cfg.Table.DumpWidth),
		db.WithMaxLineSize(cfg.Table.MaxLineSize),
	)

	a.preloaded = make(map[string]bool, len(cfg.Table.Preload))
	for _, path := range cfg.Table.Preload {
		if a.preloaded[path] {
			continue
		}
		if r := (query.Load{Path: path}).Execute(a.db); !r.OK() {
			return fmt.Errorf("preload %s: %s", path, r)
		}
		a.preloaded[path] = true
	}

	return nil
}

// run executes queries and writes every non-empty result.
func (a *app) run(out io.Writer, queries ...query.Query) error {
	results, ok := query.Run(a.db, queries...)
	for _, r := range results {
		if s := r.String(); s != "" {
			fmt.Fprintln(out, s)
		}
	}
	if !ok {
		return errQueryFailed
	}
	return nil
}

// loads returns a Load for every path that was not preloaded.
func (a *app) loads(paths ...string) []query.Query {
	queries := make([]query.Query, 0, len(paths))
	for _, path := range paths {
		if a.preloaded[path] {
			continue
		}
		queries = append(queries, query.Load{Path: path})
	}
	return queries
}

func (a *app) loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load FILE...",
		Short: "Load table files and report whether they are valid",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.OutOrStdout(), a.loads(args...)...)
		},
	}
}

func (a *app) printCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print FILE...",
		Short: "Load table files and print each table",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.run(cmd.OutOrStdout(), a.loads(args...)...); err != nil {
				return err
			}

			queries := make([]query.Query, 0, len(args))
			for _, path := range args {
				name, err := a.db.Catalog().FileTableName(path)
				if err != nil {
					return err
				}
				queries = append(queries, query.Print{Table: name})
			}
			return a.run(cmd.OutOrStdout(), queries...)
		},
	}
}

func (a *app) insertCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "insert FILE KEY [VALUE...]",
		Short: "Insert one row into a table file",
		Long:  "Insert loads FILE, inserts the row and dumps the table back to FILE, or to --out when given.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if err := a.run(cmd.OutOrStdout(), a.loads(path)...); err != nil {
				return err
			}

			name, err := a.db.Catalog().FileTableName(path)
			if err != nil {
				return err
			}

			target := path
			if out != "" {
				target = out
			}

			return a.run(cmd.OutOrStdout(),
				query.NewInsert(name, args[1:]...),
				query.Dump{Table: name, Path: target},
			)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write the table here instead of FILE")

	return cmd
}

func (a *app) copyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy SRC DST",
		Short: "Load SRC and dump it to DST",
		Long: `Copy loads SRC and dumps the table to DST. Columns are right-aligned to
TABLEDB_DUMP_WIDTH characters; set it to 0 for single-space separated output.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.run(cmd.OutOrStdout(), a.loads(args[0])...); err != nil {
				return err
			}

			name, err := a.db.Catalog().FileTableName(args[0])
			if err != nil {
				return err
			}

			return a.run(cmd.OutOrStdout(), query.Dump{Table: name, Path: args[1]})
		},
	}
}

func (a *app) overviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview [FILE...]",
		Short: "Load table files and list every table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.OutOrStdout(), append(a.loads(args...), query.List{})...)
		},
	}
}
