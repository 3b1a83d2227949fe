package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendscout/skimmer/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := NewSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func seedProduct(name string, score float64) model.Product {
	return model.Product{
		Name:       name,
		Category:   "Home",
		Price:      24.99,
		Commission: 22,
		AgentScore: score,
		Virality:   78.9,
		Views7d:    980_000,
		Rating:     4.6,
		TikTokURL:  "https://www.tiktok.com/",
		ShopURL:    "https://www.tiktok.com/",
	}
}

func TestSQLite_UpsertProducts_InsertAndGet(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	err := st.UpsertProducts(ctx, []model.Product{seedProduct("Sunset Lamp", 10.7)})
	require.NoError(t, err)

	got, err := st.GetProduct(ctx, "Sunset Lamp")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Home", got.Category)
	assert.Equal(t, 10.7, got.AgentScore)
	assert.NotEmpty(t, got.ID)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestSQLite_UpsertProducts_UpdateByName(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, st.UpsertProducts(ctx, []model.Product{
		seedProduct("Sunset Lamp", 10.7),
		seedProduct("LED Galaxy Projector", 12.59),
	}))

	// Second upsert of one name updates that row and leaves the other alone.
	updated := seedProduct("Sunset Lamp", 11.2)
	updated.Price = 19.99
	require.NoError(t, st.UpsertProducts(ctx, []model.Product{updated}))

	count, err := st.CountProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	lamp, err := st.GetProduct(ctx, "Sunset Lamp")
	require.NoError(t, err)
	assert.Equal(t, 11.2, lamp.AgentScore)
	assert.Equal(t, 19.99, lamp.Price)

	projector, err := st.GetProduct(ctx, "LED Galaxy Projector")
	require.NoError(t, err)
	assert.Equal(t, 12.59, projector.AgentScore)
}

func TestSQLite_UpsertProducts_DefaultCategory(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	p := model.Product{Name: "Bare Product"}
	require.NoError(t, st.UpsertProducts(ctx, []model.Product{p}))

	got, err := st.GetProduct(ctx, "Bare Product")
	require.NoError(t, err)
	assert.Equal(t, "Unknown", got.Category)
	assert.Equal(t, 0.0, got.Price)
	assert.Equal(t, "", got.TikTokURL)
}

func TestSQLite_UpsertProducts_EmptyBatch(t *testing.T) {
	st := newTestSQLiteStore(t)
	require.NoError(t, st.UpsertProducts(context.Background(), nil))
}

func TestSQLite_ListProducts_OrderedByScore(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, st.UpsertProducts(ctx, []model.Product{
		seedProduct("Low", 9.87),
		seedProduct("High", 13.88),
		seedProduct("Mid", 12.57),
	}))

	products, err := st.ListProducts(ctx, 0)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "High", products[0].Name)
	assert.Equal(t, "Mid", products[1].Name)
	assert.Equal(t, "Low", products[2].Name)
}

func TestSQLite_ListProducts_Limit(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, st.UpsertProducts(ctx, []model.Product{
		seedProduct("A", 1), seedProduct("B", 2), seedProduct("C", 3),
	}))

	products, err := st.ListProducts(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, "C", products[0].Name)
}

func TestSQLite_ListProducts_TiebreakByName(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, st.UpsertProducts(ctx, []model.Product{
		seedProduct("Zeta", 10.0),
		seedProduct("Alpha", 10.0),
	}))

	products, err := st.ListProducts(ctx, 0)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Alpha", products[0].Name)
	assert.Equal(t, "Zeta", products[1].Name)
}

func TestSQLite_GetProduct_Missing(t *testing.T) {
	st := newTestSQLiteStore(t)

	got, err := st.GetProduct(context.Background(), "Nonexistent")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLite_UpsertProducts_DuplicateNamesInBatch(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	first := seedProduct("Dup", 1.0)
	second := seedProduct("Dup", 2.0)
	require.NoError(t, st.UpsertProducts(ctx, []model.Product{first, second}))

	got, err := st.GetProduct(ctx, "Dup")
	require.NoError(t, err)
	assert.Equal(t, 2.0, got.AgentScore) // last write wins
}
