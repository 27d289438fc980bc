package domain

// MergedRecord joins a history entry with its decoded duration. Field order defines the
// key order of the JSON artifact.
type MergedRecord struct {
	ID              string `json:"id"`
	DurationSeconds int    `json:"durationSeconds"`
	Published       string `json:"published"`
	Title           string `json:"title"`
	Channel         string `json:"channel"`
}

// Merge joins durations onto history entries by id. Iteration follows the duration slice, so the
// result has one record per matched duration, in duration order; history entries without a
// duration are left out. Repeated ids in history resolve to their first occurrence.
func Merge(history []HistoryEntry, durations []DurationRecord) []MergedRecord {
	byID := make(map[string]HistoryEntry, len(history))
	for _, h := range history {
		if _, seen := byID[h.ID]; !seen {
			byID[h.ID] = h
		}
	}

	merged := make([]MergedRecord, 0, len(durations))
	for _, d := range durations {
		h, ok := byID[d.ID]
		if !ok {
			continue
		}

		merged = append(merged, MergedRecord{
			ID:              d.ID,
			DurationSeconds: d.DurationSeconds,
			Published:       h.Published,
			Title:           h.Title,
			Channel:         h.Channel,
		})
	}

	return merged
}
