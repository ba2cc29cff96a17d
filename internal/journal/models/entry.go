// Package models defines the journal's data model: the Entry record, the
// Rating vocabulary, and the input payloads accepted by the gateway.
package models

// Entry is one gratitude journal record, scoped to a single calendar day.
// The JSON tags define the export/import snapshot layout.
type Entry struct {
	// ID is a globally unique identifier, assigned at creation and immutable.
	ID string `json:"id"`

	// EntryDate is the local calendar day in YYYY-MM-DD form. At most one
	// entry exists per date; the value is immutable after creation.
	EntryDate string `json:"entry_date"`

	// GratitudeText is the journal text, 1–1000 characters after trimming.
	GratitudeText string `json:"gratitude_text"`

	// Rating is the day-quality level, always within the Rating vocabulary.
	Rating Rating `json:"rating"`

	// CreatedAt and UpdatedAt are Unix millisecond timestamps maintained by
	// the gateway. UpdatedAt >= CreatedAt always.
	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`

	// SyncedAt and Deleted are reserved for a future remote-sync protocol.
	// They are persisted and exported but never consulted by current logic.
	SyncedAt *int64 `json:"synced_at,omitempty"`
	Deleted  bool   `json:"deleted,omitempty"`
}

// CreateEntryInput is the payload for creating an entry. An empty EntryDate
// means "today" in the process's local timezone.
type CreateEntryInput struct {
	EntryDate     string `json:"entry_date"`
	GratitudeText string `json:"gratitude_text"`
	Rating        Rating `json:"rating"`
}

// UpdateEntryInput is a partial payload for updating an entry. Nil fields
// are left untouched. Date and id cannot be changed.
type UpdateEntryInput struct {
	GratitudeText *string `json:"gratitude_text,omitempty"`
	Rating        *Rating `json:"rating,omitempty"`
}
