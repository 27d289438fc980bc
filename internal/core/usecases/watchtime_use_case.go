package usecases

import (
	"YT_watchtime/internal/core/domain"
	"YT_watchtime/internal/core/ports"
	"context"
)

type watchtimeUseCase struct {
	history   ports.HistoryRepository
	videos    ports.VideoPort
	report    ports.ReportRepository
	progress  ports.ProgressPort
	log       ports.LoggerPort
	policy    domain.DurationPolicy
	batchSize int
}

type WatchtimeUseCase interface {
	LoadHistory(ctx context.Context) ([]domain.HistoryEntry, error)
	FetchDurations(ctx context.Context, ids []string) ([]domain.DurationRecord, error)
	MergeHistory(history []domain.HistoryEntry, durations []domain.DurationRecord) []domain.MergedRecord
	CalculateWatchtime(ctx context.Context) (domain.Summary, error)
}

type Options struct {
	MaxDurationSeconds int
	BatchSize          int
}

func NewWatchtimeUseCase(
	history ports.HistoryRepository,
	videos ports.VideoPort,
	report ports.ReportRepository,
	progress ports.ProgressPort,
	logger ports.LoggerPort,
	opts Options,
) WatchtimeUseCase {
	if progress == nil {
		progress = noopProgress{}
	}

	batchSize := opts.BatchSize
	if batchSize <= 0 || batchSize > domain.MaxBatchSize {
		batchSize = domain.MaxBatchSize
	}

	return &watchtimeUseCase{
		history:   history,
		videos:    videos,
		report:    report,
		progress:  progress,
		log:       logger,
		policy:    domain.NewDurationPolicy(opts.MaxDurationSeconds),
		batchSize: batchSize,
	}
}

type noopProgress struct{}

func (noopProgress) Progress(ports.Stage, int, int) {}
