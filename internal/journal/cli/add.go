package cli

import (
	"context"
	"os"

	"github.com/Skyism/gratefulnessjar/internal/journal/models"
)

// Today shows today's entry, or walks the user through writing it.
func (a *App) Today(ctx context.Context) error {
	if err := a.store.LoadTodayEntry(ctx); err != nil {
		printlnFn("Error:", err)
		return err
	}

	if snap := a.store.Snapshot(); snap.TodayEntry != nil {
		printEntry(*snap.TodayEntry)
		return nil
	}

	printlnFn("No entry for today yet.")
	text, err := GetMultiline(a.reader, "What are you grateful for today?", os.Stdout)
	if err != nil {
		return err
	}

	rating, err := GetRating(a.reader, os.Stdout)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	created, err := a.store.CreateTodayEntry(ctx, models.CreateEntryInput{
		GratitudeText: text,
		Rating:        rating,
	})
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	printlnFn("Saved.")
	printEntry(*created)
	return nil
}

// Add backfills an entry for an explicit (past or current) date.
func (a *App) Add(ctx context.Context) error {
	date, err := GetSimpleText(a.reader, "Date (YYYY-MM-DD, empty for today)", os.Stdout)
	if err != nil {
		return err
	}

	text, err := GetMultiline(a.reader, "What were you grateful for?", os.Stdout)
	if err != nil {
		return err
	}

	rating, err := GetRating(a.reader, os.Stdout)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	created, err := a.store.CreateEntry(ctx, models.CreateEntryInput{
		EntryDate:     date,
		GratitudeText: text,
		Rating:        rating,
	})
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	printlnFn("Saved.")
	printEntry(*created)
	return nil
}
