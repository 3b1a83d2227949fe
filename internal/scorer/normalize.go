package scorer

import "github.com/trendscout/skimmer/internal/model"

// Normalize derives a display-ready Product from a raw record. The
// derivation is pure and stateless: string fields are trimmed, numeric
// fields coerced, rating display fields and the agent score computed. No
// field of the result is ever left unset.
func Normalize(rec model.RawRecord) model.Product {
	// The stored rating value is clamped to the 0-5 domain; the display
	// string keys off the pre-clamp value so a junk negative rating still
	// renders as unrated rather than "0.0".
	rating := Coerce(rec.Get("rating"))

	commission := Coerce(rec.Get("commission_pct"))
	virality := Coerce(rec.Get("virality_score"))
	views := Coerce(rec.Get("views_7d"))

	return model.Product{
		Name:          CoerceString(rec.Get("name")),
		Category:      CoerceString(rec.Get("category")),
		Price:         Coerce(rec.Get("price")),
		Commission:    commission,
		Virality:      virality,
		Views7d:       views,
		Rating:        ClampRating(rating),
		RatingDisplay: Display(rating),
		RatingStars:   Stars(rating),
		AgentScore:    AgentScore(commission, virality, views),
		TikTokURL:     CoerceString(rec.Get("tiktok_video_url")),
		ShopURL:       CoerceString(rec.Get("tiktok_shop_url")),
	}
}

// NormalizeAll maps Normalize over a batch, preserving order.
func NormalizeAll(recs []model.RawRecord) []model.Product {
	products := make([]model.Product, 0, len(recs))
	for _, rec := range recs {
		products = append(products, Normalize(rec))
	}
	return products
}
