// main.go
package main

import (
	"YT_watchtime/infrastructure/config"
	"YT_watchtime/infrastructure/history"
	"YT_watchtime/infrastructure/logger"
	"YT_watchtime/infrastructure/provider"
	"YT_watchtime/infrastructure/report"
	"YT_watchtime/internal/core/domain"
	"YT_watchtime/internal/core/ports"
	"YT_watchtime/internal/core/usecases"
	"YT_watchtime/internal/handler/tui"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

const logPrefix = "yt_watchtime"

// newCLI declares the positional arguments. A token starting with "-" is read as a flag, so a
// negative max-duration only reaches validation after "--" (yt_watchtime -- history.json KEY -5).
func newCLI() (*kingpin.Application, *config.CLIArgs) {
	args := &config.CLIArgs{}

	app := kingpin.New("yt_watchtime", "Total watch time of a YouTube Takeout watch history")
	app.Arg("history-file", "Takeout watch-history.json file").Required().StringVar(&args.HistoryFile)
	app.Arg("api-key", "YouTube Data API v3 key").Envar("YOUTUBE_API_KEY").Required().StringVar(&args.APIKey)
	app.Arg("max-duration", "Videos longer than this many seconds are not counted (default 2400)").IntVar(&args.MaxDurationSeconds)

	return app, args
}

func main() {
	// .env é opcional
	_ = godotenv.Load()

	app, args := newCLI()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := config.Load(*args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	interactive := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())

	// com a TUI ativa o console fica com ela; os logs vão só para o arquivo
	var console io.Writer = os.Stderr
	if interactive {
		console = nil
	}

	appLogger, err := logger.NewFileLogger(logger.Config{
		Dir:     cfg.LogDir,
		Prefix:  logPrefix,
		Level:   cfg.LogLevel,
		Console: console,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	appLogger.Info("Application starting...")

	summary, err := run(cfg, appLogger, interactive)
	if err != nil {
		appLogger.Error("Watchtime calculation failed", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", describe(err), err)
		appLogger.Close()
		os.Exit(1)
	}

	fmt.Print(tui.RenderSummary(summary))
	appLogger.Info("Application finished.")
	appLogger.Close()
}

// run wires the pipeline and executes it, with the progress view when attached to a terminal.
func run(cfg *config.Config, appLogger logger.Logger, interactive bool) (domain.Summary, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	videoProvider, err := provider.NewYoutubeProvider(provider.Config{
		APIKey:   cfg.APIKey,
		Timeout:  cfg.RequestTimeout,
		Endpoint: cfg.Endpoint,
	}, appLogger)
	if err != nil {
		return domain.Summary{}, errors.Wrap(err, "failed to initialize youtube provider")
	}

	historyRepo := history.NewFileRepository(cfg.HistoryFile)
	reportRepo := report.NewJSONRepository(cfg.OutputPath)

	pipeline := func(ctx context.Context, progress ports.ProgressPort) (domain.Summary, error) {
		uc := usecases.NewWatchtimeUseCase(historyRepo, videoProvider, reportRepo, progress, appLogger, usecases.Options{
			MaxDurationSeconds: cfg.MaxDurationSeconds,
			BatchSize:          cfg.BatchSize,
		})
		return uc.CalculateWatchtime(ctx)
	}

	if interactive {
		return tui.RunPipeline(ctx, pipeline, appLogger, tea.WithOutput(os.Stderr))
	}
	return pipeline(ctx, tui.NewLogProgress(appLogger))
}

func describe(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidHistory):
		return "Error parsing watch history"
	case errors.Is(err, domain.ErrProvider):
		return "Error querying YouTube"
	case errors.Is(err, domain.ErrReport):
		return "Error saving results"
	case errors.Is(err, context.Canceled):
		return "Cancelled"
	default:
		return "Error"
	}
}
