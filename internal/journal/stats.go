package journal

import "time"

// MoodCount is the number of entries with a mood.
type MoodCount struct {
	Mood  string
	Count int
}

// Stats counts the entries of the last seven days per mood, in Moods order.
// Entries with a mood outside Moods are ignored.
func Stats(entries []Entry, now time.Time) []MoodCount {
	// Today plus the six days before it, at the same time of day.
	cutoff := now.AddDate(0, 0, -6)

	counts := make(map[string]int, len(Moods))
	for _, e := range entries {
		if e.Date.Before(cutoff) {
			continue
		}
		counts[e.Mood]++
	}

	result := make([]MoodCount, len(Moods))
	for i, m := range Moods {
		result[i] = MoodCount{Mood: m, Count: counts[m]}
	}
	return result
}

// TopMood returns the most frequent mood of the counts.
// Ties go to the mood listed first. Returns false if all counts are zero.
func TopMood(counts []MoodCount) (string, bool) {
	best := MoodCount{}
	for _, c := range counts {
		if c.Count > best.Count {
			best = c
		}
	}
	return best.Mood, best.Count > 0
}
