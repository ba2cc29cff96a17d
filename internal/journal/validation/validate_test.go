package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skyism/gratefulnessjar/internal/journal/models"
)

func strPtr(s string) *string { return &s }

func ratPtr(r models.Rating) *models.Rating { return &r }

func fields(r Result) []string {
	out := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		out = append(out, e.Field)
	}
	return out
}

func TestValidate_CreateValid(t *testing.T) {
	tests := []struct {
		name string
		text string
		r    models.Rating
	}{
		{"minimal text", "a", models.RatingAwful},
		{"normal", "grateful for coffee", models.RatingGood},
		{"max length", strings.Repeat("x", 1000), models.RatingAmazing},
		{"whitespace padded", "  thanks  ", models.RatingOkay},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Validate(Payload{GratitudeText: strPtr(tc.text), Rating: ratPtr(tc.r)}, false)
			assert.True(t, res.Valid)
			assert.Empty(t, res.Errors)
			assert.NoError(t, res.Err())
		})
	}
}

func TestValidate_CreateMissingFields(t *testing.T) {
	res := Validate(Payload{}, false)
	require.False(t, res.Valid)
	assert.ElementsMatch(t, []string{"gratitude_text", "rating"}, fields(res))
}

func TestValidate_TextBounds(t *testing.T) {
	res := Validate(Payload{GratitudeText: strPtr("   "), Rating: ratPtr(models.RatingGood)}, false)
	require.False(t, res.Valid)
	assert.Equal(t, []string{"gratitude_text"}, fields(res))

	res = Validate(Payload{GratitudeText: strPtr(strings.Repeat("x", 1001)), Rating: ratPtr(models.RatingGood)}, false)
	require.False(t, res.Valid)
	assert.Equal(t, []string{"gratitude_text"}, fields(res))
}

func TestValidate_RatingRange(t *testing.T) {
	res := Validate(Payload{GratitudeText: strPtr("ok"), Rating: ratPtr(models.Rating(0))}, false)
	require.False(t, res.Valid)
	assert.Equal(t, []string{"rating"}, fields(res))

	res = Validate(Payload{GratitudeText: strPtr("ok"), Rating: ratPtr(models.Rating(8))}, false)
	require.False(t, res.Valid)
	assert.Equal(t, []string{"rating"}, fields(res))
}

func TestValidate_EntryDate(t *testing.T) {
	res := Validate(Payload{
		GratitudeText: strPtr("ok"),
		Rating:        ratPtr(models.RatingGood),
		EntryDate:     strPtr("2024-02-30"),
	}, false)
	require.False(t, res.Valid)
	assert.Equal(t, []string{"entry_date"}, fields(res))

	res = Validate(Payload{
		GratitudeText: strPtr("ok"),
		Rating:        ratPtr(models.RatingGood),
		EntryDate:     strPtr("2999-01-01"),
	}, false)
	require.False(t, res.Valid)
	assert.Equal(t, []string{"entry_date"}, fields(res))
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	res := Validate(Payload{
		GratitudeText: strPtr(""),
		Rating:        ratPtr(models.Rating(9)),
		EntryDate:     strPtr("garbage"),
	}, false)
	require.False(t, res.Valid)
	assert.Len(t, res.Errors, 3, "all violations collected, not short-circuited")
}

func TestValidate_UpdateChecksOnlyPresentFields(t *testing.T) {
	// Absent fields on update are fine.
	res := Validate(Payload{}, true)
	assert.True(t, res.Valid)

	res = Validate(Payload{Rating: ratPtr(models.RatingAmazing)}, true)
	assert.True(t, res.Valid)

	// Present fields still follow the same rules.
	res = Validate(Payload{GratitudeText: strPtr("  ")}, true)
	require.False(t, res.Valid)
	assert.Equal(t, []string{"gratitude_text"}, fields(res))
}

func TestForCreate_OmitsEmptyDate(t *testing.T) {
	p := ForCreate(models.CreateEntryInput{GratitudeText: "x", Rating: models.RatingGood})
	assert.Nil(t, p.EntryDate)

	p = ForCreate(models.CreateEntryInput{EntryDate: "2024-06-01", GratitudeText: "x", Rating: models.RatingGood})
	require.NotNil(t, p.EntryDate)
	assert.Equal(t, "2024-06-01", *p.EntryDate)
}
