package cli

import (
	"context"
	"os"

	"github.com/Skyism/gratefulnessjar/internal/journal/datex"
)

// Search finds entries whose text contains the query.
func (a *App) Search(ctx context.Context) error {
	query, err := GetSimpleText(a.reader, "Search for", os.Stdout)
	if err != nil {
		return err
	}
	if query == "" {
		return nil
	}

	found, err := a.repo.SearchByText(ctx, query)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	if len(found) == 0 {
		printlnFn("Nothing matched.")
		return nil
	}
	for _, e := range found {
		printlnFn(formatEntryLine(e))
	}
	return nil
}

// Random resurfaces one past entry, never today's, as a small memory jog.
func (a *App) Random(ctx context.Context) error {
	e, err := a.repo.RandomExcludingDate(ctx, datex.Today())
	if err != nil {
		printlnFn("Error:", err)
		return err
	}
	if e == nil {
		printlnFn("No past entries to remember yet.")
		return nil
	}

	printlnFn("Remember this one?")
	printEntry(*e)
	return nil
}
