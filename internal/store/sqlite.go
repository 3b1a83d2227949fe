package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/trendscout/skimmer/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS products (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL UNIQUE,
	category    TEXT NOT NULL DEFAULT 'Unknown',
	price       REAL NOT NULL DEFAULT 0,
	commission  REAL NOT NULL DEFAULT 0,
	agent_score REAL NOT NULL DEFAULT 0,
	virality    REAL NOT NULL DEFAULT 0,
	views_7d    REAL NOT NULL DEFAULT 0,
	rating      REAL NOT NULL DEFAULT 0,
	tiktok_url  TEXT NOT NULL DEFAULT '',
	shop_url    TEXT NOT NULL DEFAULT '',
	updated_at  DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_products_agent_score ON products(agent_score DESC);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
`

const sqliteUpsert = `
INSERT INTO products (id, name, category, price, commission, agent_score, virality, views_7d, rating, tiktok_url, shop_url, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (name) DO UPDATE SET
	category = excluded.category,
	price = excluded.price,
	commission = excluded.commission,
	agent_score = excluded.agent_score,
	virality = excluded.virality,
	views_7d = excluded.views_7d,
	rating = excluded.rating,
	tiktok_url = excluded.tiktok_url,
	shop_url = excluded.shop_url,
	updated_at = excluded.updated_at`

const sqliteSelect = `SELECT id, name, category, price, commission, agent_score, virality, views_7d, rating, tiktok_url, shop_url, updated_at FROM products`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// UpsertProducts writes the whole batch in one transaction keyed by name.
func (s *SQLiteStore) UpsertProducts(ctx context.Context, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin upsert tx")
	}
	defer tx.Rollback() //nolint:errcheck

	now := time.Now().UTC()
	for _, p := range products {
		p = applyDefaults(p)
		id := p.ID
		if id == "" {
			id = uuid.New().String()
		}
		if _, err := tx.ExecContext(ctx, sqliteUpsert,
			id, p.Name, p.Category, p.Price, p.Commission,
			p.AgentScore, p.Virality, p.Views7d, p.Rating,
			p.TikTokURL, p.ShopURL, now,
		); err != nil {
			return eris.Wrapf(err, "sqlite: upsert product %q", p.Name)
		}
	}

	return eris.Wrap(tx.Commit(), "sqlite: commit upsert tx")
}

func (s *SQLiteStore) ListProducts(ctx context.Context, limit int) ([]model.Product, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := s.db.QueryContext(ctx,
		sqliteSelect+` ORDER BY agent_score DESC, name ASC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list products")
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, eris.Wrap(err, "sqlite: scan product")
		}
		products = append(products, p)
	}
	return products, eris.Wrap(rows.Err(), "sqlite: list products iterate")
}

func (s *SQLiteStore) GetProduct(ctx context.Context, name string) (*model.Product, error) {
	row := s.db.QueryRowContext(ctx, sqliteSelect+` WHERE name = ?`, name)
	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, eris.Wrapf(err, "sqlite: get product %q", name)
	}
	return &p, nil
}

func (s *SQLiteStore) CountProducts(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	return count, eris.Wrap(err, "sqlite: count products")
}
