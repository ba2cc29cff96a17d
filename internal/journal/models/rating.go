package models

// Rating is one of seven ordered day-quality levels, from RatingAwful (1)
// to RatingAmazing (7).
type Rating int

const (
	RatingAwful   Rating = 1
	RatingBad     Rating = 2
	RatingRough   Rating = 3
	RatingOkay    Rating = 4
	RatingGood    Rating = 5
	RatingGreat   Rating = 6
	RatingAmazing Rating = 7

	RatingMin = RatingAwful
	RatingMax = RatingAmazing
)

// ratingInfo carries the display metadata for one level.
type ratingInfo struct {
	label string
	color string
}

var ratings = map[Rating]ratingInfo{
	RatingAwful:   {label: "Awful", color: "#ef4444"},
	RatingBad:     {label: "Bad", color: "#f97316"},
	RatingRough:   {label: "Rough", color: "#f59e0b"},
	RatingOkay:    {label: "Okay", color: "#eab308"},
	RatingGood:    {label: "Good", color: "#84cc16"},
	RatingGreat:   {label: "Great", color: "#22c55e"},
	RatingAmazing: {label: "Amazing", color: "#10b981"},
}

// IsValid reports whether r lies within the vocabulary.
func (r Rating) IsValid() bool {
	return r >= RatingMin && r <= RatingMax
}

// Label returns the human-readable name of the level, or "" if invalid.
func (r Rating) Label() string {
	return ratings[r].label
}

// Color returns the display color (hex) of the level, or "" if invalid.
func (r Rating) Color() string {
	return ratings[r].color
}

func (r Rating) String() string {
	if !r.IsValid() {
		return "invalid"
	}
	return r.Label()
}

// AllRatings returns the vocabulary in ascending order.
func AllRatings() []Rating {
	out := make([]Rating, 0, int(RatingMax))
	for r := RatingMin; r <= RatingMax; r++ {
		out = append(out, r)
	}
	return out
}
