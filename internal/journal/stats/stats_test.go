package stats

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skyism/gratefulnessjar/internal/journal/models"
)

func entry(date string, rating models.Rating) models.Entry {
	return models.Entry{ID: "id-" + date, EntryDate: date, GratitudeText: "t", Rating: rating}
}

func TestForMonth_Empty(t *testing.T) {
	s := ForMonth(nil, 2024, 6)

	assert.Equal(t, 0, s.TotalEntries)
	assert.Nil(t, s.AverageRating)
	assert.Nil(t, s.BestDay)
	assert.Equal(t, 0, s.CompletionRate)
}

func TestForMonth_JuneScenario(t *testing.T) {
	entries := []models.Entry{
		entry("2024-06-01", 7),
		entry("2024-06-02", 3),
		entry("2024-05-31", 5), // outside the month
		entry("2024-07-01", 6), // outside the month
	}

	s := ForMonth(entries, 2024, 6)

	assert.Equal(t, 2, s.TotalEntries)
	require.NotNil(t, s.AverageRating)
	assert.InDelta(t, 5.0, *s.AverageRating, 1e-9)
	require.NotNil(t, s.BestDay)
	assert.Equal(t, "2024-06-01", s.BestDay.EntryDate)
	assert.Equal(t, models.Rating(7), s.BestDay.Rating)
	assert.Equal(t, 7, s.CompletionRate, "round(2/30*100)")
}

func TestForMonth_BestDayTieGoesToFirst(t *testing.T) {
	entries := []models.Entry{
		entry("2024-06-10", 6),
		entry("2024-06-03", 6),
		entry("2024-06-20", 2),
	}

	s := ForMonth(entries, 2024, 6)
	require.NotNil(t, s.BestDay)
	assert.Equal(t, "2024-06-10", s.BestDay.EntryDate, "first occurrence in input order wins")
}

func TestForMonth_CompletionRateRounds(t *testing.T) {
	// 16 of 31 days is 51.6…%, rounds to 52.
	var entries []models.Entry
	for day := 1; day <= 16; day++ {
		entries = append(entries, entry(fmt.Sprintf("2024-07-%02d", day), 4))
	}

	s := ForMonth(entries, 2024, 7)
	assert.Equal(t, 16, s.TotalEntries)
	assert.Equal(t, 52, s.CompletionRate)
}

func TestForMonth_FullMonth(t *testing.T) {
	var entries []models.Entry
	for day := 1; day <= 29; day++ {
		entries = append(entries, entry(fmt.Sprintf("2024-02-%02d", day), 5))
	}

	s := ForMonth(entries, 2024, 2)
	assert.Equal(t, 29, s.TotalEntries)
	assert.Equal(t, 100, s.CompletionRate)
}
