// Package backup serializes the journal to a portable JSON snapshot and
// restores it. Export writes every record; Import inserts records
// independently, skipping collisions and malformed entries, so a partially
// overlapping snapshot restores what it can.
package backup

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Skyism/gratefulnessjar/internal/journal/models"
	"github.com/Skyism/gratefulnessjar/internal/journal/repositories/entries"
)

// SnapshotVersion identifies the export layout for future migrations.
const SnapshotVersion = 1

// nowMillis is a test seam for the export timestamp.
var nowMillis = func() int64 { return time.Now().UnixMilli() }

// Snapshot is the export file layout: a versioned envelope around the full
// entry list (all fields, including the reserved sync ones).
type Snapshot struct {
	Version    int            `json:"version"`
	ExportedAt int64          `json:"exported_at"`
	Entries    []models.Entry `json:"entries"`
}

// Export writes a snapshot of every entry to w.
func Export(ctx context.Context, repo entries.Repository, w io.Writer) error {
	all, err := repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	snap := Snapshot{
		Version:    SnapshotVersion,
		ExportedAt: nowMillis(),
		Entries:    all,
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// Import reads a snapshot (or a bare JSON entry list) from r and inserts
// the records through the gateway. It returns the number of records
// actually inserted; colliding or malformed records are skipped.
func Import(ctx context.Context, repo entries.Repository, r io.Reader) (int, error) {
	br := bufio.NewReader(r)

	first, err := firstNonSpace(br)
	if err != nil {
		return 0, fmt.Errorf("import: %w", err)
	}

	var records []models.Entry
	if first == '[' {
		if err := json.NewDecoder(br).Decode(&records); err != nil {
			return 0, fmt.Errorf("import: %w", err)
		}
	} else {
		var snap Snapshot
		if err := json.NewDecoder(br).Decode(&snap); err != nil {
			return 0, fmt.Errorf("import: %w", err)
		}
		records = snap.Entries
	}

	return repo.Import(ctx, records)
}

func firstNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.Peek(1)
		if err != nil {
			return 0, err
		}
		switch b[0] {
		case ' ', '\t', '\r', '\n':
			if _, err := br.ReadByte(); err != nil {
				return 0, err
			}
		default:
			return b[0], nil
		}
	}
}
