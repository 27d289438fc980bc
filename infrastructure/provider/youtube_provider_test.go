package provider

import (
	"YT_watchtime/infrastructure/logger"
	"YT_watchtime/internal/core/domain"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestedIDs(r *http.Request) []string {
	var ids []string
	for _, v := range r.URL.Query()["id"] {
		ids = append(ids, strings.Split(v, ",")...)
	}
	return ids
}

func newTestServer(t *testing.T, durations map[string]string, calls *atomic.Int32) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/youtube/v3/videos", r.URL.Path)
		assert.Equal(t, "test_key", r.URL.Query().Get("key"))
		assert.Equal(t, "contentDetails", r.URL.Query().Get("part"))

		type item struct {
			ID             string            `json:"id"`
			ContentDetails map[string]string `json:"contentDetails"`
		}
		var items []item
		for _, id := range requestedIDs(r) {
			if d, ok := durations[id]; ok {
				items = append(items, item{ID: id, ContentDetails: map[string]string{"duration": d}})
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"kind": "youtube#videoListResponse", "items": items})
	}))
}

func TestListVideoDurations(t *testing.T) {
	var calls atomic.Int32
	server := newTestServer(t, map[string]string{
		"abc": "PT4M13S",
		"def": "P0D",
	}, &calls)
	defer server.Close()

	p, err := NewYoutubeProvider(Config{APIKey: "test_key", Endpoint: server.URL}, logger.NewNopLogger())
	require.NoError(t, err)

	videos, err := p.ListVideoDurations(context.Background(), []string{"abc", "def", "removed"})
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, []domain.VideoDuration{
		{ID: "abc", ISODuration: "PT4M13S"},
		{ID: "def", ISODuration: "P0D"},
	}, videos)
}

func TestListVideoDurations_EmptyBatchSkipsRequest(t *testing.T) {
	var calls atomic.Int32
	server := newTestServer(t, nil, &calls)
	defer server.Close()

	p, err := NewYoutubeProvider(Config{APIKey: "test_key", Endpoint: server.URL + "/"}, logger.NewNopLogger())
	require.NoError(t, err)

	videos, err := p.ListVideoDurations(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, videos)
	assert.Equal(t, int32(0), calls.Load())
}

func TestListVideoDurations_RejectsOversizedBatch(t *testing.T) {
	p, err := NewYoutubeProvider(Config{APIKey: "test_key"}, logger.NewNopLogger())
	require.NoError(t, err)

	ids := make([]string, domain.MaxBatchSize+1)
	for i := range ids {
		ids[i] = fmt.Sprintf("id%d", i)
	}

	_, err = p.ListVideoDurations(context.Background(), ids)
	assert.Error(t, err)
}

func TestListVideoDurations_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error":{"code":403,"message":"quotaExceeded"}}`)
	}))
	defer server.Close()

	p, err := NewYoutubeProvider(Config{APIKey: "test_key", Endpoint: server.URL}, logger.NewNopLogger())
	require.NoError(t, err)

	_, err = p.ListVideoDurations(context.Background(), []string{"abc"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrProvider))
}

func TestNewYoutubeProvider_RequiresAPIKey(t *testing.T) {
	_, err := NewYoutubeProvider(Config{}, logger.NewNopLogger())
	assert.Error(t, err)
}
