// Package source provides the interchangeable product record providers:
// the published sheet CSV export, the relational store, and local files.
// All variants yield the same loose RawRecord batches, so the normalizer
// never cares where a record came from.
package source

import (
	"context"

	"github.com/trendscout/skimmer/internal/model"
)

// Source yields a batch of raw product records.
type Source interface {
	Load(ctx context.Context) ([]model.RawRecord, error)
}
