package domain

import "strings"

const (
	watchMarker    = "watch?v="
	unknownChannel = "Unknown"
)

// Subtitle is a channel descriptor attached to a Takeout history entry.
type Subtitle struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// RawHistoryEntry mirrors one element of the Takeout watch-history.json array.
type RawHistoryEntry struct {
	Header    string     `json:"header"`
	Title     string     `json:"title"`
	TitleURL  string     `json:"titleUrl"`
	Subtitles []Subtitle `json:"subtitles"`
	Time      string     `json:"time"`
	Products  []string   `json:"products"`
}

type HistoryEntry struct {
	ID        string
	Published string
	Title     string
	Channel   string
}

// ExtractHistory converts raw entries into history entries, preserving input order.
// Entries without a resource URL (deleted videos) or without a watch?v= marker are dropped;
// the number of dropped entries is returned alongside.
func ExtractHistory(raw []RawHistoryEntry) ([]HistoryEntry, int) {
	entries := make([]HistoryEntry, 0, len(raw))
	dropped := 0

	for _, r := range raw {
		id, ok := VideoIDFromURL(r.TitleURL)
		if !ok {
			dropped++
			continue
		}

		channel := unknownChannel
		if len(r.Subtitles) > 0 && r.Subtitles[0].Name != "" {
			channel = r.Subtitles[0].Name
		}

		entries = append(entries, HistoryEntry{
			ID:        id,
			Published: r.Time,
			Title:     r.Title,
			Channel:   channel,
		})
	}

	return entries, dropped
}

// VideoIDFromURL returns the identifier following watch?v= in a YouTube URL.
func VideoIDFromURL(rawURL string) (string, bool) {
	idx := strings.Index(rawURL, watchMarker)
	if idx < 0 {
		return "", false
	}

	id := rawURL[idx+len(watchMarker):]
	// descarta parâmetros extras (&t=..., #...)
	if cut := strings.IndexAny(id, "&#"); cut >= 0 {
		id = id[:cut]
	}

	if id == "" {
		return "", false
	}

	return id, true
}
