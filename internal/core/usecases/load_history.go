package usecases

import (
	"YT_watchtime/internal/core/domain"
	"YT_watchtime/internal/core/ports"
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
)

func (uc *watchtimeUseCase) LoadHistory(ctx context.Context) ([]domain.HistoryEntry, error) {
	uc.log.Info("Init Load History")

	raw, err := uc.history.Load(ctx)
	if err != nil {
		uc.log.Error("Failed to load watch history", err)
		return nil, errors.Wrap(err, "error while loading watch history")
	}

	entries, dropped := domain.ExtractHistory(raw)
	if dropped > 0 {
		uc.log.Warning(fmt.Sprintf("%d of %d history entries dropped (deleted or not a video)", dropped, len(raw)))
	}

	uc.progress.Progress(ports.StageLoading, len(entries), len(entries))
	uc.log.Info(fmt.Sprintf("Load History completed: %d entries", len(entries)))

	return entries, nil
}
