package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/quickviz/vegaplot"
	"github.com/quickviz/vegaplot/dataset"
	"github.com/quickviz/vegaplot/decode"
)

type options struct {
	db      string
	query   string
	csv     string
	scripts []string
	output  string
	verbose bool
}

func main() {
	var opt options
	cmd := cobra.Command{
		Use:   "vegaplot [flags] token...",
		Short: "build a vega-lite chart specification from plot commands",
		Long: `vegaplot turns a line of plot commands such as

  MARK BAR COLOR RED X_FIELD sales TYPE QUANTITATIVE BIN TRUE

into a chart specification, optionally seeded with data from a sqlite
query or a csv file, and prints it as JSON.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opt, args)
		},
	}
	cmd.Flags().StringVar(&opt.db, "db", "", "sqlite database file")
	cmd.Flags().StringVar(&opt.query, "query", "", "query to seed the chart data")
	cmd.Flags().StringVar(&opt.csv, "csv", "", "csv file to seed the chart data")
	cmd.Flags().StringArrayVar(&opt.scripts, "script", nil, "read plot commands from file (repeatable)")
	cmd.Flags().StringVarP(&opt.output, "output", "o", "", "write the specification to file")
	cmd.Flags().BoolVarP(&opt.verbose, "verbose", "v", false, "trace every dispatched token")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opt options, args []string) error {
	data, err := loadData(opt)
	if err != nil {
		return err
	}
	if len(opt.scripts) > 0 {
		return runScripts(opt, data)
	}
	if len(args) == 0 {
		return fmt.Errorf("no plot commands given")
	}
	spec, err := decode.Decode(args, data, decodeOptions(opt)...)
	if err != nil {
		return err
	}
	return write(opt.output, spec)
}

// runScripts decodes every script concurrently. Each parse owns its own
// chart; only the data reference is shared, and it is read-only.
func runScripts(opt options, data *vegaplot.Data) error {
	var grp errgroup.Group
	for _, script := range opt.scripts {
		script := script
		grp.Go(func() error {
			buf, err := os.ReadFile(script)
			if err != nil {
				return err
			}
			spec, err := decode.Decode(strings.Fields(string(buf)), data, decodeOptions(opt)...)
			if err != nil {
				return fmt.Errorf("%s: %w", script, err)
			}
			return write(script+".json", spec)
		})
	}
	return grp.Wait()
}

func loadData(opt options) (*vegaplot.Data, error) {
	switch {
	case opt.db != "" && opt.query != "":
		db, err := sql.Open("sqlite3", opt.db)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		rows, err := db.Query(opt.query)
		if err != nil {
			return nil, err
		}
		defer rows.Close()
		return dataset.FromRows(rows)
	case opt.csv != "":
		r, err := os.Open(opt.csv)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return dataset.FromCSV(r)
	default:
		return nil, nil
	}
}

func decodeOptions(opt options) []decode.Option {
	if !opt.verbose {
		return nil
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	fn := func(name, token string) {
		logger.Debug("decode", "step", name, "token", token)
	}
	return []decode.Option{decode.WithTrace(fn)}
}

func write(path string, spec *vegaplot.Chart) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(spec)
}
