package usecases

import (
	"YT_watchtime/internal/core/domain"
	"YT_watchtime/internal/core/ports"
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
)

// FetchDurations queries the provider one batch at a time, in order, and decodes every returned
// duration with the configured policy. Ids the provider does not return are absent from the result.
func (uc *watchtimeUseCase) FetchDurations(ctx context.Context, ids []string) ([]domain.DurationRecord, error) {
	uc.log.Info(fmt.Sprintf("Init Fetch Durations for %d videos", len(ids)))

	batches := domain.Chunk(ids, uc.batchSize)
	records := make([]domain.DurationRecord, 0, len(ids))
	done := 0

	for i, batch := range batches {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "fetch durations cancelled")
		}

		uc.progress.Progress(ports.StageQuerying, done+len(batch), len(ids))

		partial, err := uc.fetchBatch(ctx, batch)
		if err != nil {
			uc.log.Error(fmt.Sprintf("Failed to fetch batch %d/%d", i+1, len(batches)), err)
			return nil, errors.Wrapf(err, "error while fetching batch %d of %d", i+1, len(batches))
		}

		records = append(records, partial...)
		done += len(batch)
	}

	uc.log.Info(fmt.Sprintf("Fetch Durations completed: %d of %d videos returned by provider", len(records), len(ids)))

	return records, nil
}

func (uc *watchtimeUseCase) fetchBatch(ctx context.Context, batch []string) ([]domain.DurationRecord, error) {
	items, err := uc.videos.ListVideoDurations(ctx, batch)
	if err != nil {
		return nil, err
	}

	partial := make([]domain.DurationRecord, 0, len(items))
	for _, item := range items {
		record := uc.policy.Record(item)
		if record.DurationSeconds == 0 {
			uc.log.Debug(fmt.Sprintf("video %s excluded by duration policy (%s)", item.ID, item.ISODuration))
		}
		partial = append(partial, record)
	}

	return partial, nil
}
