package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	records := []MergedRecord{
		{ID: "a", DurationSeconds: 100, Published: "2024-03-02T00:00:00Z"},
		{ID: "b", DurationSeconds: 0, Published: "2024-03-01T00:00:00Z"},
		{ID: "c", DurationSeconds: 50, Published: "2024-02-01T00:00:00Z"},
	}

	s := Summarize(records)

	assert.Equal(t, Summary{
		From:         "2024-02-01T00:00:00Z",
		Until:        "2024-03-02T00:00:00Z",
		Count:        3,
		TotalSeconds: 150,
	}, s)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestFormatWatchtime(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0 seconds"},
		{1, "1 second"},
		{59, "59 seconds"},
		{60, "1 minute"},
		{61, "1 minute, 1 second"},
		{3600, "1 hour"},
		{5400, "1 hour, 30 minutes"},
		{86400, "1 day"},
		{90061, "1 day, 1 hour, 1 minute, 1 second"},
		{2*86400 + 3*3600 + 4*60 + 5, "2 days, 3 hours, 4 minutes, 5 seconds"},
		{86400 + 5, "1 day, 5 seconds"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatWatchtime(tt.seconds), "seconds=%d", tt.seconds)
	}
}
