// Package seed reconciles the example product catalog into the store so
// the dashboard and read API work end-to-end before a real collection
// agent replaces it.
package seed

import (
	"context"
	_ "embed"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/trendscout/skimmer/internal/model"
	"github.com/trendscout/skimmer/internal/store"
)

//go:embed products.yaml
var catalogYAML []byte

type catalog struct {
	Products []seedProduct `yaml:"products"`
}

type seedProduct struct {
	Name       string  `yaml:"name"`
	Category   string  `yaml:"category"`
	Price      float64 `yaml:"price"`
	Commission float64 `yaml:"commission"`
	AgentScore float64 `yaml:"agentScore"`
	Virality   float64 `yaml:"virality"`
	Views7d    float64 `yaml:"views7d"`
	Rating     float64 `yaml:"rating"`
	TikTokURL  string  `yaml:"tiktokUrl"`
	ShopURL    string  `yaml:"shopUrl"`
}

// Catalog returns the embedded example products. Agent scores come from the
// catalog as-is; they are externally scored and must not be recomputed here.
func Catalog() ([]model.Product, error) {
	var c catalog
	if err := yaml.Unmarshal(catalogYAML, &c); err != nil {
		return nil, eris.Wrap(err, "seed: unmarshal catalog")
	}

	products := make([]model.Product, 0, len(c.Products))
	for _, p := range c.Products {
		products = append(products, model.Product{
			Name:       p.Name,
			Category:   p.Category,
			Price:      p.Price,
			Commission: p.Commission,
			AgentScore: p.AgentScore,
			Virality:   p.Virality,
			Views7d:    p.Views7d,
			Rating:     p.Rating,
			TikTokURL:  p.TikTokURL,
			ShopURL:    p.ShopURL,
		})
	}
	return products, nil
}

// Run upserts the example catalog into the store. A store failure aborts
// the whole batch and propagates; there is no partial-success signaling.
func Run(ctx context.Context, st store.Store) (int, error) {
	products, err := Catalog()
	if err != nil {
		return 0, err
	}

	zap.L().Info("seeding example products", zap.Int("count", len(products)))
	if err := st.UpsertProducts(ctx, products); err != nil {
		return 0, eris.Wrap(err, "seed: upsert catalog")
	}
	return len(products), nil
}
