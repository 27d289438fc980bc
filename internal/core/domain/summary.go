package domain

import (
	"fmt"
	"strings"
)

type Summary struct {
	From         string
	Until        string
	Count        int
	TotalSeconds int
}

// Summarize computes the report statistics. From and Until are positional: the last and the
// first record respectively, which matches the newest-first order of Takeout exports. Records
// are not sorted.
func Summarize(records []MergedRecord) Summary {
	s := Summary{Count: len(records)}
	if len(records) == 0 {
		return s
	}

	s.From = records[len(records)-1].Published
	s.Until = records[0].Published

	for _, r := range records {
		s.TotalSeconds += r.DurationSeconds
	}

	return s
}

// FormatWatchtime renders seconds as "D days, H hours, M minutes, S seconds", omitting zero parts.
func FormatWatchtime(seconds int) string {
	if seconds <= 0 {
		return "0 seconds"
	}

	units := []struct {
		size     int
		singular string
		plural   string
	}{
		{86400, "day", "days"},
		{3600, "hour", "hours"},
		{60, "minute", "minutes"},
		{1, "second", "seconds"},
	}

	parts := make([]string, 0, len(units))
	for _, u := range units {
		n := seconds / u.size
		seconds %= u.size
		if n == 0 {
			continue
		}

		name := u.plural
		if n == 1 {
			name = u.singular
		}
		parts = append(parts, fmt.Sprintf("%d %s", n, name))
	}

	return strings.Join(parts, ", ")
}
