package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/Skyism/gratefulnessjar/internal/journal/backup"
)

// Export writes the whole journal to a JSON snapshot file.
func (a *App) Export(ctx context.Context) error {
	path, err := GetSimpleText(a.reader, "Export to file", os.Stdout)
	if err != nil {
		return err
	}
	if path == "" {
		printlnFn("No file given.")
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}
	defer f.Close()

	if err := backup.Export(ctx, a.repo, f); err != nil {
		printlnFn("Error:", err)
		return err
	}

	printlnFn("Exported to", path)
	return nil
}

// Import restores entries from a JSON snapshot file, skipping records that
// collide with existing dates, then reloads the views.
func (a *App) Import(ctx context.Context) error {
	path, err := GetSimpleText(a.reader, "Import from file", os.Stdout)
	if err != nil {
		return err
	}
	if path == "" {
		printlnFn("No file given.")
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}
	defer f.Close()

	n, err := backup.Import(ctx, a.repo, f)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	printlnFn(fmt.Sprintf("Imported %d entries.", n))

	if err := a.store.LoadEntries(ctx); err != nil {
		return err
	}
	return a.store.LoadTodayEntry(ctx)
}
