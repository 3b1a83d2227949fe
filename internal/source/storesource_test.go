package source

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendscout/skimmer/internal/model"
)

// fakeStore implements the subset of store.Store the source needs.
type fakeStore struct {
	products  []model.Product
	err       error
	lastLimit int
}

func (f *fakeStore) UpsertProducts(context.Context, []model.Product) error { return nil }
func (f *fakeStore) GetProduct(context.Context, string) (*model.Product, error) {
	return nil, nil
}
func (f *fakeStore) CountProducts(context.Context) (int, error) { return len(f.products), nil }
func (f *fakeStore) Migrate(context.Context) error              { return nil }
func (f *fakeStore) Close() error                               { return nil }

func (f *fakeStore) ListProducts(_ context.Context, limit int) ([]model.Product, error) {
	f.lastLimit = limit
	return f.products, f.err
}

func TestStoreSource_Load(t *testing.T) {
	st := &fakeStore{products: []model.Product{
		{Name: "Waterproof Couch Cover", Category: "Home", Commission: 27, Virality: 90.8, Views7d: 2_100_000, Rating: 5},
	}}

	src := NewStoreSource(st, 25)
	records, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 25, st.lastLimit)
	assert.Equal(t, "Waterproof Couch Cover", records[0].Get("name"))
	assert.Equal(t, 27.0, records[0].Get("commission_pct"))
	assert.Equal(t, 2_100_000.0, records[0].Get("views_7d"))
}

func TestStoreSource_Load_Error(t *testing.T) {
	src := NewStoreSource(&fakeStore{err: errors.New("db down")}, 0)
	_, err := src.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list products")
}
