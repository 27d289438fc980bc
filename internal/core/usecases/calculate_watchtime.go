package usecases

import (
	"YT_watchtime/internal/core/domain"
	"YT_watchtime/internal/core/ports"
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
)

// CalculateWatchtime runs the whole pipeline: load, fetch, merge, persist and summarize.
// Nothing is persisted when any earlier step fails.
func (uc *watchtimeUseCase) CalculateWatchtime(ctx context.Context) (domain.Summary, error) {
	uc.log.Info("Init Calculate Watchtime")

	history, err := uc.LoadHistory(ctx)
	if err != nil {
		return domain.Summary{}, err
	}

	ids := make([]string, len(history))
	for i, h := range history {
		ids[i] = h.ID
	}

	durations, err := uc.FetchDurations(ctx, ids)
	if err != nil {
		return domain.Summary{}, err
	}

	merged := uc.MergeHistory(history, durations)

	uc.progress.Progress(ports.StageSaving, 0, 1)
	if err := uc.report.Save(ctx, merged); err != nil {
		uc.log.Error("Failed to save merged records", err)
		return domain.Summary{}, errors.Wrap(err, "error while saving merged records")
	}
	uc.progress.Progress(ports.StageSaving, 1, 1)

	summary := domain.Summarize(merged)

	defer uc.log.Info(fmt.Sprintf("Calculate Watchtime completed: %d videos, %d seconds", summary.Count, summary.TotalSeconds))

	return summary, nil
}
