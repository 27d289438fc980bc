package ports

import (
	"YT_watchtime/internal/core/domain"
	"context"
)

// VideoPort fetches raw durations for a single batch of at most domain.MaxBatchSize ids.
// Ids unknown to the provider are absent from the result.
type VideoPort interface {
	ListVideoDurations(ctx context.Context, ids []string) ([]domain.VideoDuration, error)
}
