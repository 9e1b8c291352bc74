package journal

import (
	"sort"
	"time"

	"github.com/julianstephens/visionboard/internal/utils"
)

// Streak returns the number of consecutive calendar days, counting backward
// from now's day, with at least one reflection. Multiple reflections on the
// same day count once. A streak requires an entry today to be non-zero: a
// gap of even one day at the front resets it.
//
// now is passed in rather than read from the clock so the computation is a
// pure function of the log and the caller's current date.
func (s *Store) Streak(now time.Time) int {
	if len(s.reflections) == 0 {
		return 0
	}

	days := make([]string, 0, len(s.reflections))
	for _, r := range s.reflections {
		days = append(days, utils.DayKey(r.Date))
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	// Dedupe, preserving descending order. Day keys sort lexicographically
	// in chronological order, so this walks from the newest day backward.
	unique := days[:0]
	for i, day := range days {
		if i == 0 || day != unique[len(unique)-1] {
			unique = append(unique, day)
		}
	}

	streak := 0
	for i, day := range unique {
		if day != utils.DaysAgo(now, i) {
			break
		}
		streak++
	}
	return streak
}
