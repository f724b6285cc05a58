package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lattice-systems/gridmorph/graph"
	"github.com/lattice-systems/gridmorph/graphexpr"
	"github.com/lattice-systems/gridmorph/mapping"
	"github.com/lattice-systems/gridmorph/pathdecomp"
)

// mapOpts holds the command-line flags for the map command. Flags left
// at their zero value fall back to the config file, then to built-in
// defaults.
type mapOpts struct {
	graph      string // edge-run expression of the input graph
	mode       string // lattice mode: square, weighted, triangular
	order      string // comma-separated vertex order override
	method     string // ordering method: auto, exact, greedy
	restarts   int    // greedy restart count
	seed       uint64 // greedy seed
	output     string // JSON output file path
	cache      bool   // consult and update the catalog
	configFile string // explicit config file path
}

// newMapCmd creates the map command, which runs the full mapping
// pipeline on an edge-run expression and prints the resulting lattice.
func newMapCmd() *cobra.Command {
	var opts mapOpts

	cmd := &cobra.Command{
		Use:   "map [expression]",
		Short: "Map a graph expression onto a unit-disk grid graph",
		Long: `Map a graph onto a unit-disk grid graph whose maximum independent set
matches the input's, up to the reported overhead.

The graph is given as an edge-run expression: runs of vertex indices
joined by "-", separated by "," or ";".

Examples:
  gridmorph map "0-1-2-0"                      # Triangle, square lattice
  gridmorph map --mode weighted "0-1,1-2,2-3"  # Weighted square lattice
  gridmorph map --order 2,0,1 "0-1-2-0"        # Fixed vertex order
  gridmorph map --cache -o result.json "0-1"   # Store and export`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.graph = args[0]
			}
			return runMap(c.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.graph, "graph", "g", "", "edge-run expression (alternative to the positional argument)")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "lattice mode: square, weighted, or triangular (overrides config file)")
	cmd.Flags().StringVar(&opts.order, "order", "", "comma-separated vertex order, e.g. 2,0,1")
	cmd.Flags().StringVar(&opts.method, "method", "", "ordering method: auto, exact, or greedy (overrides config file)")
	cmd.Flags().IntVar(&opts.restarts, "restarts", 0, "greedy restart count (overrides config file)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "greedy ordering seed (overrides config file)")
	cmd.Flags().StringVarP(&opts.output, "json", "o", "", "write the serialized result to this file")
	cmd.Flags().BoolVar(&opts.cache, "cache", false, "consult the catalog before mapping and store the result after")
	cmd.Flags().StringVar(&opts.configFile, "config-file", "", "config file path (default: $XDG_CONFIG_HOME/gridmorph.toml)")

	return cmd
}

// runMap executes the mapping pipeline for the given options.
func runMap(ctx context.Context, opts *mapOpts) error {
	logger := loggerFromContext(ctx)

	if opts.graph == "" {
		return errors.New("no graph given (use a positional expression or --graph)")
	}

	cfg, err := loadConfig(opts.configFile)
	if err != nil {
		return err
	}

	g, err := graphexpr.Parse(opts.graph)
	if err != nil {
		return err
	}
	expr := graphexpr.Format(g)

	mode, method, order, err := resolveMapOptions(opts, cfg)
	if err != nil {
		return err
	}

	// The normalized expression doubles as the catalog key, so
	// syntactic variants of the same graph share one entry.
	key := resultKey(mode, expr)

	var st *store
	if opts.cache {
		dir, err := catalogDir(cfg)
		if err != nil {
			return fmt.Errorf("locate catalog: %w", err)
		}
		if st, err = openStore(dir); err != nil {
			return err
		}
		defer st.Close()
	}

	result, cached := lookupResult(logger, st, key)
	if result == nil {
		if result, err = mapGraph(logger, g, mode, method, order); err != nil {
			return err
		}
		if st != nil {
			if err := storeResult(st, key, result); err != nil {
				return err
			}
			logger.Debugf("Stored catalog entry for %q", key)
		}
	}

	fmt.Println(StyleTitle.Render(appName) + " " + StyleHighlight.Render(expr))
	fmt.Println(renderGrid(result.Grid, nil, false))
	printKeyValue("mode", mode.String())
	printKeyValue("grid", fmt.Sprintf("%d × %d", result.Grid.Rows, result.Grid.Cols))
	printStats(len(result.Grid.Nodes), result.Overhead, cached)

	if opts.output != "" {
		if err := writeResult(result, opts.output); err != nil {
			return err
		}
		logger.Infof("Wrote result to %s", opts.output)
	}
	return nil
}

// resolveMapOptions merges flags with config-file defaults and parses
// them into pipeline options.
func resolveMapOptions(opts *mapOpts, cfg config) (mapping.Mode, pathdecomp.Method, []int, error) {
	modeName := opts.mode
	if modeName == "" {
		modeName = cfg.Mode
	}
	mode, err := parseMode(modeName)
	if err != nil {
		return 0, nil, nil, err
	}

	methodName := opts.method
	if methodName == "" {
		methodName = cfg.Method
	}
	restarts := opts.restarts
	if restarts == 0 {
		restarts = cfg.Restarts
	}
	seed := opts.seed
	if seed == 0 {
		seed = cfg.Seed
	}
	method, err := parseMethod(methodName, restarts, seed)
	if err != nil {
		return 0, nil, nil, err
	}

	order, err := parseIntList(opts.order)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("--order: %w", err)
	}

	return mode, method, order, nil
}

// lookupResult returns the stored result for key when the store is
// open and holds a readable one. A stale or corrupt entry is treated
// as a miss so the caller replaces it with a fresh run.
func lookupResult(logger *log.Logger, st *store, key string) (*mapping.Result, bool) {
	if st == nil {
		return nil, false
	}
	raw, err := st.get(key)
	if err != nil {
		return nil, false
	}
	var r mapping.Result
	if err := json.Unmarshal(raw, &r); err != nil || r.Grid == nil {
		logger.Warnf("Ignoring unreadable catalog entry for %q", key)
		return nil, false
	}
	logger.Debugf("Catalog hit for %q", key)
	return &r, true
}

// mapGraph runs the pipeline with progress logging.
func mapGraph(logger *log.Logger, g *graph.Simple, mode mapping.Mode, method pathdecomp.Method, order []int) (*mapping.Result, error) {
	logger.Infof("Mapping %d vertices, %d edges onto the %s lattice", g.N(), g.M(), mode)

	pipeline := []mapping.Option{mapping.WithMode(mode), mapping.WithMethod(method)}
	if order != nil {
		pipeline = append(pipeline, mapping.WithOrder(order))
	}

	prog := newProgress(logger)
	r, err := mapping.Map(g, pipeline...)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Mapped onto a %d × %d grid with %d nodes", r.Grid.Rows, r.Grid.Cols, len(r.Grid.Nodes)))
	return r, nil
}

// storeResult serializes r into the catalog under key.
func storeResult(st *store, key string, r *mapping.Result) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return st.put(key, raw)
}

// writeResult writes r as indented JSON to path, overwriting any
// existing file.
func writeResult(r *mapping.Result, path string) error {
	raw, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return os.WriteFile(path, append(raw, '\n'), 0o644)
}
