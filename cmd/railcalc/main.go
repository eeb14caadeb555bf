package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"Railcalc/internal/calc/guide"
	"Railcalc/internal/catalog"
	"Railcalc/internal/logging"
	"Railcalc/internal/repo"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	catalogPath string
	databaseURL string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "railcalc",
	Short: "Linear guide carriage selection",
	Long: `railcalc - load decomposition and safety ranking for linear guide carriages

Picks the calculation rule that fits a mounting configuration, splits the
carried mass into per-carriage forces and moments, and ranks catalog
carriages by safety factor K = 1 / sum(load/capacity).

The catalog comes from --catalog (.yaml or .xlsx) or from Postgres
(--db or DATABASE_URL).`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		if databaseURL == "" {
			databaseURL = os.Getenv("DATABASE_URL")
		}
		if catalogPath == "" {
			catalogPath = os.Getenv("CATALOG_FILE")
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Catalog file (.yaml or .xlsx)")
	rootCmd.PersistentFlags().StringVar(&databaseURL, "db", "", "Postgres connection string for the catalog")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}

func newLogger(w io.Writer) *slog.Logger {
	return logging.New(w, logLevel, "text")
}

// loadCatalog reads the catalog once for the command.
func loadCatalog(cmd *cobra.Command) ([]catalog.Item, error) {
	ctx := cmd.Context()
	switch {
	case catalogPath != "":
		return (&catalog.File{Path: catalogPath}).Items(ctx)
	case databaseURL != "":
		db, err := repo.Open(ctx, databaseURL)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return repo.NewPostgresCatalogDB(db).Items(ctx)
	default:
		return nil, fmt.Errorf("no catalog: pass --catalog or --db")
	}
}

func newEngine(cmd *cobra.Command) *guide.Engine {
	return guide.NewEngine(newLogger(cmd.ErrOrStderr()))
}
