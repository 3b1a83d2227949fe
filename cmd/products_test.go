package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trendscout/skimmer/internal/model"
)

func TestFormatProductsList(t *testing.T) {
	products := []model.Product{
		{
			Name:       "LED Galaxy Projector",
			Category:   "Home Decor",
			Price:      29.99,
			Commission: 28,
			AgentScore: 12.57,
			Virality:   86.7,
			Views7d:    1500000,
			Rating:     4.6,
		},
		{
			Name:       "Mini Waffle Maker",
			Category:   "Kitchen",
			Price:      14.50,
			Commission: 22,
			AgentScore: 10.56,
			Virality:   71.2,
			Views7d:    900000,
			Rating:     4.2,
		},
	}

	var buf bytes.Buffer
	formatProductsList(&buf, products)

	output := buf.String()
	assert.Contains(t, output, "NAME")
	assert.Contains(t, output, "SCORE")
	assert.Contains(t, output, "LED Galaxy Projector")
	assert.Contains(t, output, "$29.99")
	assert.Contains(t, output, "12.57")
	assert.Contains(t, output, "1,500,000")
	assert.Contains(t, output, "4.6")
	assert.Contains(t, output, "Mini Waffle Maker")
}

func TestFormatProductsList_TruncatesLongNames(t *testing.T) {
	products := []model.Product{
		{Name: "Ultra Mega Super Deluxe Professional Grade Kitchen Gadget Set", Category: "Kitchen"},
	}

	var buf bytes.Buffer
	formatProductsList(&buf, products)

	assert.Contains(t, buf.String(), "...")
	assert.NotContains(t, buf.String(), "Gadget Set")
}
