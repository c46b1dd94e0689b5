package services

import (
	"sort"
	"time"

	"github.com/interviewtools/tracker/internal/entities"
)

// maxOutcomesPerDay caps how many outcomes a single day's summary
// carries.
const maxOutcomesPerDay = 5

// DaySummary lists the most significant outcomes touching one calendar
// date, highest priority first.
type DaySummary struct {
	Date     time.Time
	Outcomes []entities.Outcome
}

// SummarizeByDay groups interviews by every date they touch: the
// application date, the interview date, and the deadline each count.
// Per date, outcomes are sorted by priority and at most
// maxOutcomesPerDay survive. Summaries come back in date order.
func SummarizeByDay(records []entities.Interview) []DaySummary {

	outcomesByDate := map[time.Time][]entities.Outcome{}

	for _, record := range records {
		for _, date := range relevantDates(record) {
			outcomesByDate[date] = append(outcomesByDate[date], record.Outcome)
		}
	}

	summaries := make([]DaySummary, 0, len(outcomesByDate))
	for date, outcomes := range outcomesByDate {

		sort.SliceStable(outcomes, func(i, j int) bool {
			return outcomes[i].Priority() < outcomes[j].Priority()
		})
		if len(outcomes) > maxOutcomesPerDay {
			outcomes = outcomes[:maxOutcomesPerDay]
		}

		summaries = append(summaries, DaySummary{Date: date, Outcomes: outcomes})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Date.Before(summaries[j].Date)
	})

	return summaries
}

// relevantDates returns the distinct calendar dates a record touches.
func relevantDates(record entities.Interview) []time.Time {

	seen := map[time.Time]struct{}{}
	var dates []time.Time

	add := func(t time.Time) {
		date := t.Truncate(24 * time.Hour)
		if _, ok := seen[date]; ok {
			return
		}
		seen[date] = struct{}{}
		dates = append(dates, date)
	}

	add(record.ApplicationDate)
	if record.InterviewDate != nil {
		add(*record.InterviewDate)
	}
	if record.Deadline != nil {
		add(*record.Deadline)
	}

	return dates
}
