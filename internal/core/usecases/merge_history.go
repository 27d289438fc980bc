package usecases

import (
	"YT_watchtime/internal/core/domain"
	"YT_watchtime/internal/core/ports"
	"fmt"
)

func (uc *watchtimeUseCase) MergeHistory(history []domain.HistoryEntry, durations []domain.DurationRecord) []domain.MergedRecord {
	uc.progress.Progress(ports.StageMerging, 0, len(durations))

	merged := domain.Merge(history, durations)

	uc.progress.Progress(ports.StageMerging, len(durations), len(durations))
	if skipped := len(durations) - len(merged); skipped > 0 {
		uc.log.Warning(fmt.Sprintf("%d durations had no matching history entry", skipped))
	}
	uc.log.Info(fmt.Sprintf("Merge completed: %d records", len(merged)))

	return merged
}
