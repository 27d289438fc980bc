package history

import (
	"YT_watchtime/internal/core/domain"
	"YT_watchtime/internal/core/ports"
	"context"
	"encoding/json"
	"os"

	"github.com/cockroachdb/errors"
)

type fileRepository struct {
	path string
}

// NewFileRepository reads a Takeout watch-history.json export.
func NewFileRepository(path string) ports.HistoryRepository {
	return &fileRepository{path: path}
}

func (r *fileRepository) Load(ctx context.Context) ([]domain.RawHistoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "falha ao ler o histórico %s", r.path), domain.ErrInvalidHistory)
	}

	var entries []domain.RawHistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "falha ao decodificar o histórico %s", r.path), domain.ErrInvalidHistory)
	}

	// "null" decodes sem erro, mas não é um histórico
	if entries == nil {
		return nil, errors.Mark(errors.Newf("histórico %s não contém uma lista", r.path), domain.ErrInvalidHistory)
	}

	return entries, nil
}
