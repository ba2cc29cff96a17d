package entries

import (
	"context"

	"github.com/Skyism/gratefulnessjar/internal/journal/models"
)

// Repository is the persistence gateway for journal entries. It is the sole
// writer of the durable store and enforces the one-entry-per-day rule.
//
// Read operations treat "not found" as a normal nil/empty result, never an
// error. Mutations return common.ErrNotFound, common.ErrDuplicateDate or a
// *common.ValidationError for domain failures; underlying store faults are
// logged and surfaced as common.ErrStorage.
type Repository interface {
	// GetByDate returns the entry for the given YYYY-MM-DD date, or nil.
	GetByDate(ctx context.Context, date string) (*models.Entry, error)

	// GetByID returns the entry with the given id, or nil.
	GetByID(ctx context.Context, id string) (*models.Entry, error)

	// GetAll returns every entry sorted by entry_date descending.
	GetAll(ctx context.Context) ([]models.Entry, error)

	// GetInRange returns entries with start <= entry_date <= end, sorted by
	// entry_date descending.
	GetInRange(ctx context.Context, start, end string) ([]models.Entry, error)

	// Create validates the input and inserts a new entry. An empty date
	// defaults to today. The stored record, with fresh id and timestamps,
	// is returned.
	Create(ctx context.Context, in models.CreateEntryInput) (*models.Entry, error)

	// Update merges the present fields of in onto the stored entry, trims
	// the text, refreshes updated_at and returns the merged record.
	// Id, date and created_at are never altered.
	Update(ctx context.Context, id string, in models.UpdateEntryInput) (*models.Entry, error)

	// Delete removes the entry permanently.
	Delete(ctx context.Context, id string) error

	// Count returns the total number of entries.
	Count(ctx context.Context) (int, error)

	// SearchByText returns entries whose text contains the query,
	// case-insensitively, sorted by entry_date descending.
	SearchByText(ctx context.Context, query string) ([]models.Entry, error)

	// RandomExcludingDate picks one entry uniformly at random among all
	// entries not dated date, or nil if there are none.
	RandomExcludingDate(ctx context.Context, date string) (*models.Entry, error)

	// Import inserts the given records independently, skipping any that are
	// malformed or collide on entry_date, and returns the number inserted.
	Import(ctx context.Context, records []models.Entry) (int, error)
}
