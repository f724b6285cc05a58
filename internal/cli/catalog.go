package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lattice-systems/gridmorph/graphexpr"
	"github.com/lattice-systems/gridmorph/mapping"
)

// newCatalogCmd creates the catalog management command.
func newCatalogCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the on-disk catalog of mapping results",
	}

	cmd.PersistentFlags().StringVar(&configFile, "config-file", "", "config file path (default: $XDG_CONFIG_HOME/gridmorph.toml)")

	cmd.AddCommand(newCatalogListCmd(&configFile))
	cmd.AddCommand(newCatalogShowCmd(&configFile))
	cmd.AddCommand(newCatalogDropCmd(&configFile))
	cmd.AddCommand(newCatalogClearCmd(&configFile))
	cmd.AddCommand(newCatalogPathCmd(&configFile))

	return cmd
}

// openCatalog resolves the catalog directory from config and opens the
// store there.
func openCatalog(configFile string) (*store, error) {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return nil, err
	}
	dir, err := catalogDir(cfg)
	if err != nil {
		return nil, fmt.Errorf("locate catalog: %w", err)
	}
	return openStore(dir)
}

// catalogKey normalizes an expression argument into a store key.
func catalogKey(expr, modeName string) (string, error) {
	mode, err := parseMode(modeName)
	if err != nil {
		return "", err
	}
	g, err := graphexpr.Parse(expr)
	if err != nil {
		return "", err
	}
	return resultKey(mode, graphexpr.Format(g)), nil
}

// newCatalogListCmd creates the "catalog list" subcommand.
func newCatalogListCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all stored mapping results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openCatalog(*configFile)
			if err != nil {
				return err
			}
			defer st.Close()

			keys, err := st.keys()
			if err != nil {
				return err
			}
			if len(keys) == 0 {
				printInfo("Catalog is empty")
				return nil
			}

			for _, key := range keys {
				mode, expr := splitKey(key)
				fmt.Println(StyleDim.Render(fmt.Sprintf("%-11s", mode)) + " " + StyleValue.Render(expr))
			}
			printDetail("%d entries", len(keys))
			return nil
		},
	}
}

// newCatalogShowCmd creates the "catalog show" subcommand.
func newCatalogShowCmd(configFile *string) *cobra.Command {
	var modeName string

	cmd := &cobra.Command{
		Use:   "show <expression>",
		Short: "Render a stored mapping result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := catalogKey(args[0], modeName)
			if err != nil {
				return err
			}

			st, err := openCatalog(*configFile)
			if err != nil {
				return err
			}
			defer st.Close()

			raw, err := st.get(key)
			if errors.Is(err, errNotFound) {
				printInfo("No catalog entry for %q (map it with: gridmorph map --cache %q)", args[0], args[0])
				return nil
			}
			if err != nil {
				return err
			}

			var r mapping.Result
			if err := json.Unmarshal(raw, &r); err != nil {
				return fmt.Errorf("parse catalog entry: %w", err)
			}
			if r.Grid == nil {
				return fmt.Errorf("catalog entry for %q has no grid", args[0])
			}

			fmt.Println(renderGrid(r.Grid, nil, false))
			printKeyValue("mode", r.Mode.String())
			printKeyValue("grid", fmt.Sprintf("%d × %d", r.Grid.Rows, r.Grid.Cols))
			printStats(len(r.Grid.Nodes), r.Overhead, true)
			return nil
		},
	}

	cmd.Flags().StringVarP(&modeName, "mode", "m", "", "lattice mode of the entry (default square)")

	return cmd
}

// newCatalogDropCmd creates the "catalog drop" subcommand.
func newCatalogDropCmd(configFile *string) *cobra.Command {
	var modeName string

	cmd := &cobra.Command{
		Use:   "drop <expression>",
		Short: "Remove a stored mapping result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := catalogKey(args[0], modeName)
			if err != nil {
				return err
			}

			st, err := openCatalog(*configFile)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.delete(key); errors.Is(err, errNotFound) {
				printInfo("No catalog entry for %q", args[0])
				return nil
			} else if err != nil {
				return err
			}

			printSuccess("Dropped %q", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&modeName, "mode", "m", "", "lattice mode of the entry (default square)")

	return cmd
}

// newCatalogClearCmd creates the "catalog clear" subcommand.
func newCatalogClearCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all stored mapping results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openCatalog(*configFile)
			if err != nil {
				return err
			}
			defer st.Close()

			keys, err := st.keys()
			if err != nil {
				return err
			}
			if len(keys) == 0 {
				printInfo("Catalog is empty")
				return nil
			}
			if err := st.clear(); err != nil {
				return err
			}

			printSuccess("Cleared %d catalog entries", len(keys))
			return nil
		},
	}
}

// newCatalogPathCmd creates the "catalog path" subcommand.
func newCatalogPathCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the catalog directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configFile)
			if err != nil {
				return err
			}
			dir, err := catalogDir(cfg)
			if err != nil {
				return fmt.Errorf("locate catalog: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}
}
