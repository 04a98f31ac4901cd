package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/piresc/locations/internal/pkg/config"
	"github.com/piresc/locations/internal/pkg/database"
	"github.com/piresc/locations/internal/pkg/logger"
	"github.com/piresc/locations/internal/pkg/models"
	nsqpkg "github.com/piresc/locations/internal/pkg/nsq"
	"github.com/piresc/locations/internal/pkg/objectstore"
	"github.com/piresc/locations/services/locations/gateway"
	"github.com/piresc/locations/services/locations/importer"
	"github.com/piresc/locations/services/locations/repository"
	"github.com/piresc/locations/services/locations/usecase"
	"github.com/spf13/pflag"
)

var errUsage = errors.New("usage: import [flags] <file.csv|file.xlsx|s3://bucket/key>")

type options struct {
	configPath string
	source     string
	importOpts models.ImportOptions
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := pflag.NewFlagSet("import", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVar(&opts.configPath, "config", config.GetEnv("CONFIG_PATH", ".env"), "path to the .env file")
	fs.Int64VarP(&opts.importOpts.CategoryID, "category", "c", 0, "id of the category the locations belong to")
	fs.StringVar(&opts.importOpts.DuplicatesField, "duplicates-field", "", "field used to detect duplicates (original_name or name)")
	fs.BoolVar(&opts.importOpts.HasHeader, "header", false, "skip the first row of the file")
	fs.StringVar(&opts.importOpts.Format, "format", "", "csv or xlsx, detected from the file name when empty")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, errUsage
	}

	opts.source = fs.Arg(0)
	if opts.importOpts.Format == "" {
		opts.importOpts.Format = importer.DetectFormat(opts.source)
	}
	return opts, nil
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}

// realMain returns the process exit code so deferred cleanup, including the
// logger flush, runs before the process exits.
func realMain(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	configs := config.InitConfig(opts.configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nil)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create Zap logger: %v\n", err)
		return 1
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := run(ctx, configs, opts)
	if err != nil {
		zapLogger.Error("Import failed", logger.String("source", opts.source), logger.ErrorField(err))
		return 1
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		zapLogger.Error("Failed to write report", logger.ErrorField(err))
		return 1
	}
	if report.Errors {
		return 1
	}
	return 0
}

func run(ctx context.Context, configs *models.Config, opts *options) (*models.ImportReport, error) {
	source, err := openSource(ctx, configs.S3, opts.source)
	if err != nil {
		return nil, err
	}
	defer source.Close()

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer postgresClient.Close()

	var publisher gateway.Publisher
	if configs.NSQ.Address != "" {
		producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to NSQ: %w", err)
		}
		defer producer.Stop()
		publisher = producer
	}

	locationUC, err := usecase.NewLocationUC(
		configs,
		repository.NewLocationRepo(postgresClient),
		repository.NewPostalCodeRepo(postgresClient.GetDB(), nil, 0),
		gateway.NewLocationGW(publisher),
		nil,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return locationUC.ImportLocations(ctx, source, opts.importOpts)
}

// openSource only builds an S3 client when the source needs one
func openSource(ctx context.Context, cfg models.S3Config, source string) (io.ReadCloser, error) {
	if !objectstore.IsS3URI(source) {
		return objectstore.NewStore(nil).Open(ctx, source)
	}

	store, err := objectstore.NewS3Store(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return store.Open(ctx, source)
}
