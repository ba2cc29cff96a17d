package cli

import (
	"context"
	"os"

	"github.com/Skyism/gratefulnessjar/internal/journal/models"
)

// Edit updates the text and/or rating of an existing entry. Empty answers
// leave the corresponding field unchanged; the date itself cannot change.
func (a *App) Edit(ctx context.Context) error {
	date, err := GetSimpleText(a.reader, "Date of the entry to edit (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}

	existing, err := a.repo.GetByDate(ctx, date)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}
	if existing == nil {
		printlnFn("No entry for", date)
		return nil
	}
	printEntry(*existing)

	var in models.UpdateEntryInput

	text, err := GetMultiline(a.reader, "New text (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if text != "" {
		in.GratitudeText = &text
	}

	answer, err := GetSimpleText(a.reader, "New rating 1-7 (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "" {
		rating, err := parseRating(answer)
		if err != nil {
			printlnFn("Error:", err)
			return err
		}
		in.Rating = &rating
	}

	if in.GratitudeText == nil && in.Rating == nil {
		printlnFn("Nothing to change.")
		return nil
	}

	updated, err := a.store.UpdateEntry(ctx, existing.ID, in)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	printlnFn("Updated.")
	printEntry(*updated)
	return nil
}

// Delete removes an entry after confirmation.
func (a *App) Delete(ctx context.Context) error {
	date, err := GetSimpleText(a.reader, "Date of the entry to delete (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}

	existing, err := a.repo.GetByDate(ctx, date)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}
	if existing == nil {
		printlnFn("No entry for", date)
		return nil
	}

	confirm, err := GetSimpleText(a.reader, "Delete this entry permanently? (yes/no)", os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "yes" && confirm != "y" {
		printlnFn("Kept.")
		return nil
	}

	if err := a.store.DeleteEntry(ctx, existing.ID); err != nil {
		printlnFn("Error:", err)
		return err
	}

	printlnFn("Deleted.")
	return nil
}
