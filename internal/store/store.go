package store

import (
	"context"

	"github.com/trendscout/skimmer/internal/model"
)

// DefaultListLimit bounds ListProducts when the caller passes no limit.
const DefaultListLimit = 100

// Store defines the persistence interface for the product catalog.
//
// UpsertProducts reconciles a batch keyed by product name: existing rows
// have every mutable field overwritten, new rows are inserted with the
// documented defaults (category "Unknown", numerics 0, URLs ""). The whole
// batch commits in one transaction; a mid-batch failure rolls back and
// propagates to the caller.
type Store interface {
	UpsertProducts(ctx context.Context, products []model.Product) error
	ListProducts(ctx context.Context, limit int) ([]model.Product, error)
	GetProduct(ctx context.Context, name string) (*model.Product, error)
	CountProducts(ctx context.Context) (int, error)

	Migrate(ctx context.Context) error
	Close() error
}

// applyDefaults fills the insert defaults for fields the batch left unset.
// String zero values double as "absent" here: the upsert contract keys on
// name, and an empty category on a fresh row means the source never set it.
func applyDefaults(p model.Product) model.Product {
	if p.Category == "" {
		p.Category = "Unknown"
	}
	return p
}
