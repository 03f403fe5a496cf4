package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"catalog-manager/core/config"
	"catalog-manager/core/database"
	"catalog-manager/core/logger"
	"catalog-manager/core/upstream"
	"catalog-manager/feature/catalog"
	"catalog-manager/feature/catalog/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var dryRunFetch bool

// fetchCmd pulls product bundles from the processing API and reconciles them
// into the catalog, without starting the HTTP server. It mirrors what
// GET /api/fetch-and-store does for a running instance.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch product bundles from the processing API and store them",
	Long: `Fetches the current product feed from the processing API and reconciles
each bundle into the catalog.

Each bundle is reconciled independently. Failures are reported per bundle
and do not abort the rest of the batch.

Examples:
  # Fetch and store
  catalog-manager fetch

  # Fetch and report without writing
  catalog-manager fetch --dry-run`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().BoolVar(&dryRunFetch, "dry-run", false, "Fetch and report bundles without writing to the database")
	RootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	l.Info("Fetching product feed", zap.String("processing_url", cfg.Upstream.ProcessingURL))

	processor := upstream.NewProcessingClient(cfg.Upstream)
	resp, err := processor.FetchCatalog(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch catalog feed: %w", err)
	}

	bundles, err := catalog.BundlesFromResponse(resp)
	if err != nil {
		return fmt.Errorf("failed to decode catalog feed: %w", err)
	}
	l.Info("Feed received", zap.Int("bundles", len(bundles)))

	if dryRunFetch {
		for i, b := range bundles {
			raw, _ := json.Marshal(b)
			l.Info("Bundle", zap.Int("index", i), zap.ByteString("payload", raw))
		}
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate catalog schema: %w", err)
	}

	reconciler := catalog.NewReconciler(db, l)

	// Reconcile each bundle independently so one bad record does not
	// discard the rest of the feed.
	stored := 0
	failed := 0
	for i, bundle := range bundles {
		product, err := reconciler.Reconcile(ctx, bundle)
		if err != nil {
			failed++
			l.Error("Bundle reconciliation failed", zap.Int("index", i), zap.Error(err))
			continue
		}
		stored++
		l.Info("Bundle stored", zap.Int("index", i), zap.Uint("product_id", product.ID), zap.String("sku", product.SKU))
	}

	l.Info("Fetch complete", zap.Int("stored", stored), zap.Int("failed", failed))
	return nil
}
