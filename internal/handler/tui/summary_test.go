package tui

import (
	"YT_watchtime/infrastructure/logger"
	"YT_watchtime/internal/core/domain"
	"YT_watchtime/internal/core/ports"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSummary(t *testing.T) {
	out := RenderSummary(domain.Summary{
		From:         "2023-01-01T00:00:00Z",
		Until:        "2024-01-01T00:00:00Z",
		Count:        60,
		TotalSeconds: 3661,
	})

	assert.Contains(t, out, "From:")
	assert.Contains(t, out, "2023-01-01T00:00:00Z")
	assert.Contains(t, out, "until")
	assert.Contains(t, out, "2024-01-01T00:00:00Z")
	assert.Contains(t, out, "Total amount of videos:")
	assert.Contains(t, out, "60")
	assert.Contains(t, out, "1 hour, 1 minute, 1 second")
}

func TestRenderSummary_Empty(t *testing.T) {
	out := RenderSummary(domain.Summary{})

	assert.NotContains(t, out, "From:")
	assert.Contains(t, out, "0 seconds")
}

func TestLogProgress(t *testing.T) {
	p := NewLogProgress(logger.NewNopLogger())
	assert.NotPanics(t, func() {
		p.Progress(ports.StageQuerying, 0, 0)
		p.Progress(ports.StageMerging, 3, 3)
		p.Progress(ports.StageSaving, 1, 1)
	})
	assert.Equal(t, "40.00%", percent(20, 50))
	assert.Equal(t, "100.00%", percent(0, 0))
}
