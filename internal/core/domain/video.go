package domain

import (
	"strings"

	"github.com/sosodev/duration"
)

const (
	// MaxBatchSize is the largest number of ids videos.list accepts per request.
	MaxBatchSize = 50
	// DefaultMaxDurationSeconds excludes long-form content (streams, podcasts) from the total.
	DefaultMaxDurationSeconds = 2400
)

// VideoDuration is the raw contentDetails.duration returned by the provider for one video.
type VideoDuration struct {
	ID          string
	ISODuration string
}

// DurationRecord carries the decoded duration of a video; zero means excluded by policy.
type DurationRecord struct {
	ID              string
	DurationSeconds int
}

type DurationPolicy struct {
	MaxSeconds int
}

func NewDurationPolicy(maxSeconds int) DurationPolicy {
	if maxSeconds <= 0 {
		maxSeconds = DefaultMaxDurationSeconds
	}
	return DurationPolicy{MaxSeconds: maxSeconds}
}

// Seconds decodes an ISO-8601 duration into whole seconds.
//
// Zero, multi-day (live streams) and unparseable durations decode to 0, as does any total
// above MaxSeconds.
func (p DurationPolicy) Seconds(iso string) int {
	if iso == "" || iso == "P0D" || strings.Contains(iso, "D") {
		return 0
	}

	d, err := duration.Parse(iso)
	if err != nil || d.Negative {
		return 0
	}

	if d.Years > 0 || d.Months > 0 || d.Weeks > 0 || d.Days > 0 {
		return 0
	}

	total := int(d.Hours)*3600 + int(d.Minutes)*60 + int(d.Seconds)
	if total > p.MaxSeconds {
		return 0
	}

	return total
}

// Record builds the DurationRecord for a raw provider item.
func (p DurationPolicy) Record(v VideoDuration) DurationRecord {
	return DurationRecord{ID: v.ID, DurationSeconds: p.Seconds(v.ISODuration)}
}

// Chunk splits ids into consecutive batches of at most size elements.
func Chunk(ids []string, size int) [][]string {
	if size <= 0 || size > MaxBatchSize {
		size = MaxBatchSize
	}

	chunks := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		chunks = append(chunks, ids[start:end])
	}

	return chunks
}
