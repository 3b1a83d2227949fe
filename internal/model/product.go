package model

import "time"

// RawRecord is an untyped row as produced by a data source (sheet CSV,
// database, local file). Any field may be missing, empty, or non-numeric;
// consumers must tolerate all three.
type RawRecord map[string]any

// Field aliases: the sheet export uses snake_case column names while the
// read API and seed catalog use camelCase. Get resolves either spelling.
var fieldAliases = map[string][]string{
	"commission_pct":   {"commission_pct", "commission"},
	"virality_score":   {"virality_score", "virality"},
	"views_7d":         {"views_7d", "views7d"},
	"rating":           {"rating"},
	"price":            {"price"},
	"name":             {"name"},
	"category":         {"category"},
	"tiktok_video_url": {"tiktok_video_url", "tiktokUrl"},
	"tiktok_shop_url":  {"tiktok_shop_url", "shopUrl"},
}

// Get returns the value for a canonical field name, resolving aliases.
// Missing fields return nil.
func (r RawRecord) Get(field string) any {
	aliases, ok := fieldAliases[field]
	if !ok {
		aliases = []string{field}
	}
	for _, key := range aliases {
		if v, ok := r[key]; ok {
			return v
		}
	}
	return nil
}

// Has reports whether the record carries the field under any alias.
func (r RawRecord) Has(field string) bool {
	aliases, ok := fieldAliases[field]
	if !ok {
		aliases = []string{field}
	}
	for _, key := range aliases {
		if _, ok := r[key]; ok {
			return true
		}
	}
	return false
}

// Product is a display-ready product record. Every field is populated by
// the normalizer; numeric fields default to 0 and string fields to "".
// JSON tags match the read API contract.
type Product struct {
	ID            string    `json:"-"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Price         float64   `json:"price"`
	Commission    float64   `json:"commission"`
	AgentScore    float64   `json:"agentScore"`
	Virality      float64   `json:"virality"`
	Views7d       float64   `json:"views7d"`
	Rating        float64   `json:"rating"`
	RatingDisplay string    `json:"ratingDisplay,omitempty"`
	RatingStars   string    `json:"ratingStars,omitempty"`
	TikTokURL     string    `json:"tiktokUrl"`
	ShopURL       string    `json:"shopUrl"`
	UpdatedAt     time.Time `json:"-"`
}

// ToRawRecord converts a stored product back into the loose form the
// normalizer consumes, so both source variants feed the same pipeline.
func (p Product) ToRawRecord() RawRecord {
	return RawRecord{
		"name":             p.Name,
		"category":         p.Category,
		"price":            p.Price,
		"commission_pct":   p.Commission,
		"virality_score":   p.Virality,
		"views_7d":         p.Views7d,
		"rating":           p.Rating,
		"tiktok_video_url": p.TikTokURL,
		"tiktok_shop_url":  p.ShopURL,
	}
}
