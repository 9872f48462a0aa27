package domain

import "time"

type DayTotal struct {
	Date         string
	TotalMinutes int
}

// AggregateByDay returns one entry per calendar day for the windowDays days
// ending at today (inclusive), oldest first. Days without completions are
// present with zero minutes. A non-positive window yields no entries.
func AggregateByDay(completions []StudyCompletion, windowDays int, today time.Time) []DayTotal {
	if windowDays <= 0 {
		return []DayTotal{}
	}
	totals := make(map[string]int, len(completions))
	for _, c := range completions {
		totals[c.Date] += c.StudyMinutes
	}

	// Noon avoids DST transitions landing on the previous or next day.
	y, m, d := today.Date()
	loc := today.Location()
	out := make([]DayTotal, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		key := DateKey(time.Date(y, m, d-i, 12, 0, 0, 0, loc))
		out = append(out, DayTotal{Date: key, TotalMinutes: totals[key]})
	}
	return out
}

type Summary struct {
	Days         []DayTotal
	TotalMinutes int
	Sessions     int
	ActiveDays   int
	BestDay      DayTotal
	Streak       int
}

// Summarize aggregates the window and derives totals from it. The streak
// counts consecutive studied days ending today, or ending yesterday while
// today is still empty.
func Summarize(completions []StudyCompletion, windowDays int, today time.Time) Summary {
	days := AggregateByDay(completions, windowDays, today)
	summary := Summary{Days: days}
	if len(days) == 0 {
		return summary
	}

	inWindow := make(map[string]struct{}, len(days))
	for _, day := range days {
		inWindow[day.Date] = struct{}{}
		summary.TotalMinutes += day.TotalMinutes
		if day.TotalMinutes > 0 {
			summary.ActiveDays++
		}
		if day.TotalMinutes > summary.BestDay.TotalMinutes {
			summary.BestDay = day
		}
	}
	for _, c := range completions {
		if _, ok := inWindow[c.Date]; ok {
			summary.Sessions++
		}
	}

	i := len(days) - 1
	if days[i].TotalMinutes == 0 {
		i--
	}
	for ; i >= 0 && days[i].TotalMinutes > 0; i-- {
		summary.Streak++
	}
	return summary
}
