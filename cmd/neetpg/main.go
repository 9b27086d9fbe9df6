package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/avesh-singh/neet-pg-checker/constants"
	"github.com/avesh-singh/neet-pg-checker/internal/common"
	"github.com/avesh-singh/neet-pg-checker/internal/entity"
	"github.com/avesh-singh/neet-pg-checker/internal/export"
	"github.com/avesh-singh/neet-pg-checker/internal/extract"
	"github.com/avesh-singh/neet-pg-checker/internal/ingest"
	"github.com/avesh-singh/neet-pg-checker/internal/reader"
	repo "github.com/avesh-singh/neet-pg-checker/internal/repository"
	"github.com/avesh-singh/neet-pg-checker/internal/verify"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir           = flag.String("dir", "", "directory of counselling PDFs to ingest")
		file          = flag.String("file", "", "single counselling PDF to ingest")
		layoutFlag    = flag.String("layout", "auto", "layout override: auto, STATE, ALL_INDIA_MULTI_ROUND, ALL_INDIA_SINGLE_ROUND")
		sampleRate    = flag.Float64("sample-rate", 0, "verification sample rate in (0, 1]; 0 disables sampling")
		inmem         = flag.Bool("inmem", false, "use in-memory SQLite database")
		watch         = flag.Bool("watch", false, "keep watching -dir for new documents")
		workers       = flag.Int("workers", 2, "ingest workers used in watch mode")
		stats         = flag.Bool("stats", false, "print dataset statistics after ingest")
		exportJSON    = flag.Bool("export-json", false, "export all records as JSON after ingest")
		exportXLSX    = flag.Bool("export-xlsx", false, "export all records as XLSX after ingest")
		exportCutoffs = flag.Bool("export-cutoffs", false, "export grouped cutoffs as JSON after ingest")
		out           = flag.String("out", "", "export output path (default admissions.json / admissions.xlsx)")
	)
	flag.Parse()

	if *dir == "" && *file == "" {
		printError("Error: one of --dir or --file is required\n")
		os.Exit(1)
	}
	if *watch && *dir == "" {
		printError("Error: --watch requires --dir\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := common.LoadConfig()
	if !*inmem {
		if err := cfg.Validate(); err != nil {
			printError("Error: %v\n", err)
			os.Exit(1)
		}
	}

	var layoutOverride constants.Layout
	if err := common.NewValidator().
		Field("layout", *layoutFlag, common.LayoutName).
		Error(); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	if *layoutFlag != "" && *layoutFlag != "auto" {
		layoutOverride, _ = constants.ParseLayout(*layoutFlag)
	}
	if *sampleRate != 0 {
		if err := common.NewValidator().
			Field("sample-rate", *sampleRate, common.SampleRate).
			Error(); err != nil {
			printError("Error: %v\n", err)
			os.Exit(1)
		}
	}
	if *watch {
		if err := common.NewValidator().
			Field("workers", *workers, common.PositiveInt).
			Error(); err != nil {
			printError("Error: %v\n", err)
			os.Exit(1)
		}
	}

	profiles, err := extract.LoadProfiles(cfg.Ingest.LayoutProfilePath)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	dbResult, err := repo.Init(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup(logger)
	entc := dbResult.Client

	// Wire the pipeline
	opener := reader.NewPlumberOpener(cfg.Ingest.PythonBin, cfg.Ingest.DumpScript, cfg.Ingest.PageTimeout, logger)
	extractor := extract.NewExtractor(opener, profiles, cfg.Ingest.DataYear, logger)
	store := repo.NewIngestStore(entc, logger)
	verification := repo.NewVerificationRepository(entc, logger)

	persister := ingest.NewBatchPersister(store, extractor, logger)
	sampler := verify.NewSampler(extractor, &recordLocator{
		records:      store.RecordRepository,
		verification: verification,
		files:        store.FileRepository,
	}, logger)
	service := ingest.NewService(persister, sampler, *sampleRate, logger)

	switch {
	case *watch:
		if err := service.WatchDirectory(ctx, *dir, layoutOverride, *workers); err != nil && ctx.Err() == nil {
			logger.Error("watch failed", "error", err)
			os.Exit(1)
		}
	case *dir != "":
		_, dirStats, err := service.ProcessDirectory(ctx, *dir, layoutOverride)
		if err != nil {
			logger.Error("directory ingest failed", "error", err)
			os.Exit(1)
		}
		fmt.Printf("scanned=%d matched=%d succeeded=%d skipped=%d empty=%d failed=%d\n",
			dirStats.Scanned, dirStats.Matched, dirStats.Succeeded, dirStats.Skipped, dirStats.Empty, dirStats.Failed)
	default:
		result, err := service.ProcessFile(ctx, *file, layoutOverride)
		if err != nil {
			logger.Error("file ingest failed", "error", err)
			os.Exit(1)
		}
		fmt.Printf("file=%s layout=%s round=%d extracted=%d inserted=%d duplicates=%d skipped=%v\n",
			result.Filename, result.Layout, result.Round, result.Extracted, result.Inserted, result.Duplicates, result.Skipped)
	}

	queries := repo.NewQueryRepository(entc, logger)
	if *stats {
		printStats(ctx, queries)
	}

	if *exportJSON || *exportXLSX || *exportCutoffs {
		exporter := export.NewService(store.RecordRepository, queries, logger)
		if *exportJSON {
			writeExport(ctx, exporter.ExportJSON, *out, "admissions.json")
		}
		if *exportXLSX {
			writeExport(ctx, exporter.ExportXLSX, *out, "admissions.xlsx")
		}
		if *exportCutoffs {
			writeExport(ctx, func(ctx context.Context, _ entity.RecordFilter) ([]byte, error) {
				return exporter.ExportCutoffsJSON(ctx)
			}, *out, "counselling_data.json")
		}
	}
}

func printStats(ctx context.Context, queries repo.QueryRepository) {
	stats, err := queries.Statistics(ctx)
	if err != nil {
		printError("Error: statistics: %v\n", err)
		return
	}
	fmt.Printf("records=%d colleges=%d courses=%d years=%v rounds=%v\n",
		stats.TotalRecords, stats.TotalColleges, stats.TotalCourses, stats.Years, stats.Rounds)
	for category, count := range stats.ByCategory {
		fmt.Printf("  %s: %d\n", category, count)
	}
}

func writeExport(ctx context.Context, run func(context.Context, entity.RecordFilter) ([]byte, error), out, fallback string) {
	if out == "" {
		out = fallback
	}
	data, err := run(ctx, entity.RecordFilter{})
	if err != nil {
		printError("Error: export: %v\n", err)
		return
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		printError("Error: write %s: %v\n", out, err)
		return
	}
	fmt.Printf("exported %s (%d bytes)\n", out, len(data))
}

// recordLocator adapts the repositories to the sampler's locator.
type recordLocator struct {
	records      repo.RecordRepository
	verification repo.VerificationRepository
	files        repo.FileRepository
}

var _ verify.RecordLocator = (*recordLocator)(nil)

func (l *recordLocator) FindRecordID(ctx context.Context, rank int, collegeName, course string) (uuid.UUID, bool, error) {
	return l.records.FindRecordID(ctx, rank, collegeName, course)
}

func (l *recordLocator) CreateVerification(ctx context.Context, recordID, fileID uuid.UUID, pageNumber int) error {
	return l.verification.CreateVerification(ctx, recordID, fileID, pageNumber)
}

func (l *recordLocator) SetSampleSize(ctx context.Context, fileID uuid.UUID, size int) error {
	return l.files.SetSampleSize(ctx, fileID, size)
}
