package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomsync/internal/handler/middleware"
	"roomsync/internal/infra/db"
	"roomsync/internal/infra/readstore"
	"roomsync/internal/infra/repository"
	"roomsync/internal/infra/wtt3"
	"roomsync/internal/pkg/config"
	"roomsync/internal/usecase"
)

func main() {
	var (
		dryRun     = flag.Bool("dry-run", false, "fetch a single page to validate connectivity, import nothing")
		apiURL     = flag.String("api-url", "", "WTT3 base URL (defaults to WTT3_API_URL)")
		apiKey     = flag.String("api-key", "", "WTT3 API key (defaults to WTT3_API_KEY)")
		startDate  = flag.String("start-date", "", "only import reservations ending after this date (YYYY-MM-DD or RFC3339)")
		endDate    = flag.String("end-date", "", "only import reservations starting before this date (YYYY-MM-DD or RFC3339)")
		allowOwner = flag.Bool("allow-owner-create", false, "create placeholder users for unknown owner emails")
		timeout    = flag.Duration("timeout", 10*time.Minute, "abort the whole run after this duration")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(2)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	params := usecase.ImportParams{
		APIURL:           *apiURL,
		APIKey:           *apiKey,
		AllowOwnerCreate: *allowOwner,
	}
	if params.StartDate, err = parseDateFlag(*startDate); err != nil {
		logger.Error("invalid --start-date", "value", *startDate, "error", err)
		os.Exit(2)
	}
	if params.EndDate, err = parseDateFlag(*endDate); err != nil {
		logger.Error("invalid --end-date", "value", *endDate, "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	source := wtt3.NewClient(cfg.WTT3, logger)

	if *dryRun {
		os.Exit(runDry(ctx, source, cfg, params, logger))
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(2)
	}
	defer cleanup()

	importer := usecase.NewWTT3ImportUseCase(
		source,
		repository.NewReservationRepository(pool),
		readstore.NewReservationReadStore(pool),
		readstore.NewReservableReadStore(pool),
		readstore.NewUserReadStore(pool),
		repository.NewUserRepository(pool),
		cfg.WTT3,
		logger,
	)

	result, err := importer.Run(ctx, params)
	printSummary(result)
	if err != nil {
		var transportErr *wtt3.TransportError
		if errors.As(err, &transportErr) {
			logger.Error("import aborted on transport failure",
				"pages_fetched", transportErr.PagesFetched, "error", transportErr.Err)
		} else {
			logger.Error("import aborted", "error", err)
		}
		os.Exit(1)
	}
}

func runDry(ctx context.Context, source usecase.ReservationSource, cfg config.Config, params usecase.ImportParams, logger *slog.Logger) int {
	dry, err := usecase.NewWTT3ImportUseCase(source, nil, nil, nil, nil, nil, cfg.WTT3, logger).DryRun(ctx, params)
	if err != nil {
		logger.Error("dry run failed", "error", err)
		return 1
	}
	fmt.Printf("dry run ok: %d record(s) on first page, more pages: %t\n", dry.RecordCount, dry.HasMore)
	return 0
}

func printSummary(result *usecase.ImportResult) {
	if result == nil {
		return
	}
	fmt.Printf("created=%d updated=%d skipped=%d failed=%d pages=%d truncated=%t\n",
		result.Created, result.Updated, result.Skipped, len(result.Failed), result.Pages, result.Truncated)
	for _, f := range result.Failed {
		fmt.Printf("  failed %s (slug=%s): %s: %s\n", f.ExternalID, f.Slug, f.Kind, f.Reason)
	}
}

// parseDateFlag accepts a bare date or a full RFC3339 timestamp. Bare dates
// are interpreted as midnight UTC.
func parseDateFlag(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
