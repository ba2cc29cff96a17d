package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Skyism/gratefulnessjar/internal/journal/stats"
)

// Month prints the aggregate statistics for one calendar month.
func (a *App) Month(ctx context.Context) error {
	answer, err := GetSimpleText(a.reader, "Month (YYYY-MM)", os.Stdout)
	if err != nil {
		return err
	}

	year, month, err := parseYearMonth(answer)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	if err := a.store.LoadEntries(ctx); err != nil {
		printlnFn("Error:", err)
		return err
	}

	s := stats.ForMonth(a.store.Snapshot().Entries, year, month)

	printlnFn(fmt.Sprintf("%04d-%02d", year, month))
	printlnFn(fmt.Sprintf("Entries:    %d", s.TotalEntries))
	if s.AverageRating != nil {
		printlnFn(fmt.Sprintf("Average:    %.1f/7", *s.AverageRating))
	} else {
		printlnFn("Average:    —")
	}
	if s.BestDay != nil {
		printlnFn(fmt.Sprintf("Best day:   %s (%s)", s.BestDay.EntryDate, s.BestDay.Rating.Label()))
	} else {
		printlnFn("Best day:   —")
	}
	printlnFn(fmt.Sprintf("Completion: %d%%", s.CompletionRate))
	return nil
}

func parseYearMonth(s string) (int, int, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("month must look like 2024-06")
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("month must look like 2024-06")
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("month must look like 2024-06")
	}
	return year, month, nil
}
