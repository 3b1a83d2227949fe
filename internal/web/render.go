package web

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/trendscout/skimmer/internal/model"
)

var grouped = message.NewPrinter(language.English)

// FormatPrice renders a price cell: grouped dollars with cents, or a dash
// for zero/unknown prices.
func FormatPrice(v float64) string {
	if v == 0 {
		return "-"
	}
	return grouped.Sprintf("$%.2f", v)
}

// FormatViews renders the 7-day view count as a grouped integer.
func FormatViews(v float64) string {
	if v == 0 {
		return "0"
	}
	return grouped.Sprintf("%d", int64(v))
}

// FormatCommission renders the commission percentage without decimals.
func FormatCommission(v float64) string {
	return fmt.Sprintf("%.0f%%", v)
}

// FormatVirality renders the virality score with one decimal.
func FormatVirality(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// FormatScore renders the agent score with two decimals.
func FormatScore(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// row is the template view of one product: display strings plus the raw
// sort keys emitted as data-sort attributes for the client controller.
type row struct {
	Name              string
	Category          string
	PriceDisplay      string
	PriceSort         float64
	CommissionDisplay string
	CommissionSort    float64
	ScoreDisplay      string
	ScoreSort         float64
	ViralityDisplay   string
	ViralitySort      float64
	ViewsDisplay      string
	ViewsSort         float64
	RatingDisplay     string
	RatingStars       string
	RatingSort        float64
	TikTokURL         string
	ShopURL           string
}

func toRow(p model.Product) row {
	return row{
		Name:              p.Name,
		Category:          p.Category,
		PriceDisplay:      FormatPrice(p.Price),
		PriceSort:         p.Price,
		CommissionDisplay: FormatCommission(p.Commission),
		CommissionSort:    p.Commission,
		ScoreDisplay:      FormatScore(p.AgentScore),
		ScoreSort:         p.AgentScore,
		ViralityDisplay:   FormatVirality(p.Virality),
		ViralitySort:      p.Virality,
		ViewsDisplay:      FormatViews(p.Views7d),
		ViewsSort:         p.Views7d,
		RatingDisplay:     p.RatingDisplay,
		RatingStars:       p.RatingStars,
		RatingSort:        p.Rating,
		TikTokURL:         p.TikTokURL,
		ShopURL:           p.ShopURL,
	}
}

func toRows(products []model.Product) []row {
	rows := make([]row, 0, len(products))
	for _, p := range products {
		rows = append(rows, toRow(p))
	}
	return rows
}
