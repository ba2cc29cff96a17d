// Package stats computes derived monthly views over the in-memory entry
// collection. Everything here is pure aggregation, no I/O.
package stats

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/Skyism/gratefulnessjar/internal/journal/datex"
	"github.com/Skyism/gratefulnessjar/internal/journal/models"
)

// MonthStats aggregates one calendar month.
type MonthStats struct {
	// TotalEntries counts entries dated within the month.
	TotalEntries int

	// AverageRating is the arithmetic mean of their ratings, nil when the
	// month has no entries.
	AverageRating *float64

	// BestDay is the entry with the highest rating; ties go to the first
	// occurrence in input order. Nil when the month has no entries.
	BestDay *models.Entry

	// CompletionRate is round(TotalEntries / daysInMonth * 100).
	CompletionRate int
}

// ForMonth computes MonthStats for the given year and month (1–12).
func ForMonth(entries []models.Entry, year, month int) MonthStats {
	prefix := fmt.Sprintf("%04d-%02d-", year, month)
	inMonth := lo.Filter(entries, func(e models.Entry, _ int) bool {
		return len(e.EntryDate) == len(prefix)+2 && e.EntryDate[:len(prefix)] == prefix
	})

	s := MonthStats{TotalEntries: len(inMonth)}
	if len(inMonth) == 0 {
		return s
	}

	sum := lo.SumBy(inMonth, func(e models.Entry) int { return int(e.Rating) })
	avg := float64(sum) / float64(len(inMonth))
	s.AverageRating = &avg

	best := inMonth[0]
	for _, e := range inMonth[1:] {
		if e.Rating > best.Rating {
			best = e
		}
	}
	s.BestDay = &best

	days := datex.DaysInMonth(year, month)
	s.CompletionRate = int(math.Round(float64(s.TotalEntries) / float64(days) * 100))
	return s
}
