package report

import (
	"YT_watchtime/internal/core/domain"
	"YT_watchtime/internal/core/ports"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

const DefaultPath = "./WatchHistoryWithDuration.json"

type jsonRepository struct {
	path string
}

// NewJSONRepository persists merged records as a 4-space indented JSON array.
func NewJSONRepository(path string) ports.ReportRepository {
	if path == "" {
		path = DefaultPath
	}
	return &jsonRepository{path: path}
}

func (r *jsonRepository) Save(ctx context.Context, records []domain.MergedRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if records == nil {
		records = []domain.MergedRecord{}
	}

	data, err := encode(records)
	if err != nil {
		return errors.Mark(errors.Wrap(err, "falha ao serializar registros"), domain.ErrReport)
	}

	if err := writeFileAtomic(r.path, data); err != nil {
		return errors.Mark(err, domain.ErrReport)
	}

	return nil
}

// encode indents with 4 spaces and keeps &, < and > literal.
func encode(records []domain.MergedRecord) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// writeFileAtomic writes data to a temp file next to path and renames it over path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "falha ao criar o diretório %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "falha ao criar arquivo temporário")
	}
	tmpName := tmp.Name()

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return errors.Wrapf(err, "falha ao escrever %s", tmpName)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return errors.Wrapf(err, "falha ao sincronizar %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrapf(err, "falha ao fechar %s", tmpName)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrapf(err, "falha ao renomear %s para %s", tmpName, path)
	}

	return nil
}
