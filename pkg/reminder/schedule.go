package reminder

import (
	"sort"
	"time"
)

// NextOccurrence computes when the reminder fires next.
//
// One-time reminders return Start unchanged; the caller decides what a past
// anchor means. Recurring reminders return the earliest instant after now
// that lands on a listed weekday at Start's time of day. Today never
// qualifies, even when its slot has not passed yet: the search starts on
// tomorrow's date. The result is never before now.
func NextOccurrence(r *Reminder, now time.Time) time.Time {
	days := NormalizeDays(r.RepeatOnDays)
	if len(days) == 0 {
		return r.Start.Time
	}

	hour, minute := r.Start.Local().Hour(), r.Start.Local().Minute()
	base := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var best time.Time
	for _, wd := range days {
		for add := 1; add <= 7; add++ {
			day := base.AddDate(0, 0, add)
			if int(day.Weekday()) != wd {
				continue
			}
			candidate := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, now.Location())
			if candidate.Before(now) {
				// wrap to the same weekday next week
				candidate = candidate.AddDate(0, 0, 7)
			}
			if best.IsZero() || candidate.Before(best) {
				best = candidate
			}
			break
		}
	}
	return best
}

// Week maps weekday index (0 = Sunday) to the reminders occurring that day,
// ordered by time of day.
type Week [7][]*Reminder

// GroupByWeekday spreads reminders across the week: a recurring reminder
// appears once under each listed weekday, a one-time reminder under its
// anchor's weekday. Out-of-range weekday values are filtered out.
func GroupByWeekday(reminders []*Reminder) Week {
	var week Week
	for _, r := range reminders {
		if r == nil {
			continue
		}
		days := NormalizeDays(r.RepeatOnDays)
		if len(days) == 0 {
			days = []int{int(r.Start.Local().Weekday())}
		}
		for _, d := range days {
			week[d] = append(week[d], r)
		}
	}
	for d := range week {
		day := week[d]
		sort.SliceStable(day, func(i, j int) bool {
			return minuteOfDay(day[i]) < minuteOfDay(day[j])
		})
	}
	return week
}

func minuteOfDay(r *Reminder) int {
	t := r.Start.Local()
	return t.Hour()*60 + t.Minute()
}
