package source

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/trendscout/skimmer/internal/model"
	"github.com/trendscout/skimmer/internal/store"
)

// StoreSource loads product records from the relational store, ordered by
// agent score descending. Unlike the sheet variant, store failures
// propagate; the web layer decides how to degrade.
type StoreSource struct {
	store store.Store
	limit int
}

// NewStoreSource wraps a Store as a record source. A non-positive limit
// falls back to the store default.
func NewStoreSource(st store.Store, limit int) *StoreSource {
	return &StoreSource{store: st, limit: limit}
}

func (s *StoreSource) Load(ctx context.Context) ([]model.RawRecord, error) {
	products, err := s.store.ListProducts(ctx, s.limit)
	if err != nil {
		return nil, eris.Wrap(err, "source: list products")
	}

	records := make([]model.RawRecord, 0, len(products))
	for _, p := range products {
		records = append(records, p.ToRawRecord())
	}
	return records, nil
}
