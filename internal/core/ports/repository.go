package ports

import (
	"YT_watchtime/internal/core/domain"
	"context"
)

type HistoryRepository interface {
	Load(ctx context.Context) ([]domain.RawHistoryEntry, error)
}

type ReportRepository interface {
	Save(ctx context.Context, records []domain.MergedRecord) error
}
