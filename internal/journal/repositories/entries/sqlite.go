package entries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/Skyism/gratefulnessjar/internal/common"
	"github.com/Skyism/gratefulnessjar/internal/dbx"
	"github.com/Skyism/gratefulnessjar/internal/journal/datex"
	"github.com/Skyism/gratefulnessjar/internal/journal/models"
	"github.com/Skyism/gratefulnessjar/internal/journal/validation"
	"github.com/Skyism/gratefulnessjar/internal/logging"
)

// nowMillis is a test seam for timestamp assignment.
var nowMillis = func() int64 { return time.Now().UnixMilli() }

const entryColumns = `id, entry_date, gratitude_text, rating, created_at, updated_at, synced_at, deleted`

// SQLiteRepository implements Repository against a local SQLite database.
// The schema's UNIQUE index on entry_date is the authoritative guard for
// the one-entry-per-day rule; the explicit probe in Create exists so the
// caller gets a typed error without relying on driver error text.
type SQLiteRepository struct {
	db  *sql.DB
	log logging.Logger
}

// NewSQLiteRepository returns a repository bound to the given database.
func NewSQLiteRepository(db *sql.DB, log logging.Logger) *SQLiteRepository {
	return &SQLiteRepository{db: db, log: log.With("component", "entries")}
}

// storageErr logs the underlying fault and returns the generic storage
// error; driver detail never reaches callers.
func (r *SQLiteRepository) storageErr(ctx context.Context, op string, err error) error {
	r.log.Error(ctx, "storage operation failed", "op", op, "err", err)
	return fmt.Errorf("%s: %w", op, common.ErrStorage)
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func scanEntry(row interface{ Scan(dest ...any) error }) (*models.Entry, error) {
	var (
		e        models.Entry
		syncedAt sql.NullInt64
	)
	if err := row.Scan(&e.ID, &e.EntryDate, &e.GratitudeText, &e.Rating,
		&e.CreatedAt, &e.UpdatedAt, &syncedAt, &e.Deleted); err != nil {
		return nil, err
	}
	if syncedAt.Valid {
		e.SyncedAt = &syncedAt.Int64
	}
	return &e, nil
}

func (r *SQLiteRepository) queryOne(ctx context.Context, q dbx.DBTX, query string, args ...any) (*models.Entry, error) {
	e, err := scanEntry(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return e, err
}

func (r *SQLiteRepository) queryMany(ctx context.Context, query string, args ...any) ([]models.Entry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByDate returns the entry for date, or nil when none exists.
func (r *SQLiteRepository) GetByDate(ctx context.Context, date string) (*models.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE entry_date = ?`
	e, err := r.queryOne(ctx, r.db, query, date)
	if err != nil {
		return nil, r.storageErr(ctx, "get entry by date", err)
	}
	return e, nil
}

// GetByID returns the entry with id, or nil when none exists.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE id = ?`
	e, err := r.queryOne(ctx, r.db, query, id)
	if err != nil {
		return nil, r.storageErr(ctx, "get entry by id", err)
	}
	return e, nil
}

// GetAll lists every entry, newest date first.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries ORDER BY entry_date DESC`
	result, err := r.queryMany(ctx, query)
	if err != nil {
		return nil, r.storageErr(ctx, "list entries", err)
	}
	return result, nil
}

// GetInRange lists entries with start <= entry_date <= end, newest first.
func (r *SQLiteRepository) GetInRange(ctx context.Context, start, end string) ([]models.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE entry_date >= ? AND entry_date <= ? ORDER BY entry_date DESC`
	result, err := r.queryMany(ctx, query, start, end)
	if err != nil {
		return nil, r.storageErr(ctx, "list entries in range", err)
	}
	return result, nil
}

// Create validates and inserts a new entry. The duplicate probe and the
// insert run in one transaction; a constraint violation slipping past the
// probe still maps to ErrDuplicateDate.
func (r *SQLiteRepository) Create(ctx context.Context, in models.CreateEntryInput) (*models.Entry, error) {
	if in.EntryDate == "" {
		in.EntryDate = datex.Today()
	}
	if res := validation.Validate(validation.ForCreate(in), false); !res.Valid {
		return nil, res.Err()
	}

	now := nowMillis()
	e := &models.Entry{
		ID:            uuid.NewString(),
		EntryDate:     in.EntryDate,
		GratitudeText: strings.TrimSpace(in.GratitudeText),
		Rating:        in.Rating,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		query := `SELECT ` + entryColumns + ` FROM entries WHERE entry_date = ?`
		existing, err := r.queryOne(ctx, tx, query, e.EntryDate)
		if err != nil {
			return err
		}
		if existing != nil {
			return common.ErrDuplicateDate
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO entries (id, entry_date, gratitude_text, rating, created_at, updated_at, synced_at, deleted)
			 VALUES (?, ?, ?, ?, ?, ?, NULL, 0)`,
			e.ID, e.EntryDate, e.GratitudeText, e.Rating, e.CreatedAt, e.UpdatedAt)
		if isUniqueViolation(err) {
			return common.ErrDuplicateDate
		}
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateDate) {
			return nil, err
		}
		return nil, r.storageErr(ctx, "create entry", err)
	}
	return e, nil
}

// Update merges the present fields onto the stored record and persists it.
func (r *SQLiteRepository) Update(ctx context.Context, id string, in models.UpdateEntryInput) (*models.Entry, error) {
	if res := validation.Validate(validation.ForUpdate(in), true); !res.Valid {
		return nil, res.Err()
	}

	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, common.ErrNotFound
	}

	if in.GratitudeText != nil {
		existing.GratitudeText = strings.TrimSpace(*in.GratitudeText)
	}
	if in.Rating != nil {
		existing.Rating = *in.Rating
	}
	existing.UpdatedAt = nowMillis()

	res, err := r.db.ExecContext(ctx,
		`UPDATE entries SET gratitude_text = ?, rating = ?, updated_at = ? WHERE id = ?`,
		existing.GratitudeText, existing.Rating, existing.UpdatedAt, id)
	if err != nil {
		return nil, r.storageErr(ctx, "update entry", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return nil, r.storageErr(ctx, "update entry", err)
	}
	if ra == 0 {
		return nil, common.ErrNotFound
	}
	return existing, nil
}

// Delete removes the entry permanently.
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return r.storageErr(ctx, "delete entry", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return r.storageErr(ctx, "delete entry", err)
	}
	if ra == 0 {
		return common.ErrNotFound
	}
	return nil
}

// Count returns the total number of entries.
func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, r.storageErr(ctx, "count entries", err)
	}
	return n, nil
}

// SearchByText scans all entries for a case-insensitive substring match.
// A full scan is fine at local-journal scale.
func (r *SQLiteRepository) SearchByText(ctx context.Context, query string) ([]models.Entry, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(query)
	return lo.Filter(all, func(e models.Entry, _ int) bool {
		return strings.Contains(strings.ToLower(e.GratitudeText), needle)
	}), nil
}

// RandomExcludingDate picks one entry uniformly among all entries not dated
// date, or nil if there are none.
func (r *SQLiteRepository) RandomExcludingDate(ctx context.Context, date string) (*models.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE entry_date != ? ORDER BY RANDOM() LIMIT 1`
	e, err := r.queryOne(ctx, r.db, query, date)
	if err != nil {
		return nil, r.storageErr(ctx, "pick random entry", err)
	}
	return e, nil
}

// Import inserts records independently. Records that fail validation or
// collide on entry_date (or id) are skipped; the count of successful
// inserts is returned. Only a genuine store fault aborts the batch.
func (r *SQLiteRepository) Import(ctx context.Context, records []models.Entry) (int, error) {
	imported := 0
	for _, rec := range records {
		text := strings.TrimSpace(rec.GratitudeText)
		p := validation.Payload{
			GratitudeText: &text,
			Rating:        &rec.Rating,
		}
		if res := validation.Validate(p, false); !res.Valid {
			r.log.Warn(ctx, "skipping invalid record on import", "date", rec.EntryDate)
			continue
		}
		if _, err := datex.Parse(rec.EntryDate); err != nil {
			r.log.Warn(ctx, "skipping record with bad date on import", "date", rec.EntryDate)
			continue
		}

		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		now := nowMillis()
		if rec.CreatedAt == 0 {
			rec.CreatedAt = now
		}
		if rec.UpdatedAt < rec.CreatedAt {
			rec.UpdatedAt = rec.CreatedAt
		}

		var syncedAt any
		if rec.SyncedAt != nil {
			syncedAt = *rec.SyncedAt
		}
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO entries (id, entry_date, gratitude_text, rating, created_at, updated_at, synced_at, deleted)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.ID, rec.EntryDate, text, rec.Rating, rec.CreatedAt, rec.UpdatedAt, syncedAt, rec.Deleted)
		if isUniqueViolation(err) {
			r.log.Warn(ctx, "skipping colliding record on import", "date", rec.EntryDate)
			continue
		}
		if err != nil {
			return imported, r.storageErr(ctx, "import entries", err)
		}
		imported++
	}
	return imported, nil
}
