package scorer

import (
	"fmt"
	"math"
	"strings"
)

const (
	starFull  = "★"
	starEmpty = "☆"

	ratingMax = 5.0

	// NoRating is the placeholder shown for unrated products.
	NoRating = "—"
)

// Stars renders a 0-5 rating as a fixed five-glyph string like "★★★★☆".
// The rating is clamped to [0, 5] first; the filled count is the clamped
// value rounded half away from zero (so 2.5 renders three filled stars).
// A rating of zero or below always renders all-empty stars.
func Stars(rating float64) string {
	if rating <= 0 {
		return strings.Repeat(starEmpty, int(ratingMax))
	}
	clamped := math.Min(ratingMax, math.Max(0, rating))
	full := int(math.Round(clamped))
	return strings.Repeat(starFull, full) + strings.Repeat(starEmpty, int(ratingMax)-full)
}

// Display formats a rating for the table's rating column: one decimal place
// for positive ratings, an em-dash placeholder otherwise.
func Display(rating float64) string {
	if rating > 0 {
		return fmt.Sprintf("%.1f", rating)
	}
	return NoRating
}

// ClampRating bounds a rating to the [0, 5] display domain.
func ClampRating(rating float64) float64 {
	return math.Min(ratingMax, math.Max(0, rating))
}
