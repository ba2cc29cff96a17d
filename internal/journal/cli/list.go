package cli

import (
	"context"
	"os"
)

// List reloads and prints every entry, newest first.
func (a *App) List(ctx context.Context) error {
	if err := a.store.LoadEntries(ctx); err != nil {
		printlnFn("Error:", err)
		return err
	}

	snap := a.store.Snapshot()
	if len(snap.Entries) == 0 {
		printlnFn("The jar is empty. Type 'today' to write your first entry.")
		return nil
	}

	for _, e := range snap.Entries {
		printlnFn(formatEntryLine(e))
	}
	return nil
}

// Show prints one entry by date and marks it selected.
func (a *App) Show(ctx context.Context) error {
	date, err := GetSimpleText(a.reader, "Date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}

	e, err := a.repo.GetByDate(ctx, date)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}
	if e == nil {
		printlnFn("No entry for", date)
		return nil
	}

	a.store.SelectEntry(e)
	printEntry(*e)
	return nil
}
