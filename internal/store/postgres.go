package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/trendscout/skimmer/internal/model"
)

// Pool is the subset of *pgxpool.Pool the store uses. pgxmock's pool
// interface satisfies it in tests.
type Pool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    Pool
	closeFn func()
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS products (
	id          TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	name        TEXT NOT NULL UNIQUE,
	category    TEXT NOT NULL DEFAULT 'Unknown',
	price       DOUBLE PRECISION NOT NULL DEFAULT 0,
	commission  DOUBLE PRECISION NOT NULL DEFAULT 0,
	agent_score DOUBLE PRECISION NOT NULL DEFAULT 0,
	virality    DOUBLE PRECISION NOT NULL DEFAULT 0,
	views_7d    DOUBLE PRECISION NOT NULL DEFAULT 0,
	rating      DOUBLE PRECISION NOT NULL DEFAULT 0,
	tiktok_url  TEXT NOT NULL DEFAULT '',
	shop_url    TEXT NOT NULL DEFAULT '',
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_products_agent_score ON products(agent_score DESC);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
`

const postgresUpsert = `
INSERT INTO products (id, name, category, price, commission, agent_score, virality, views_7d, rating, tiktok_url, shop_url, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (name) DO UPDATE SET
	category = EXCLUDED.category,
	price = EXCLUDED.price,
	commission = EXCLUDED.commission,
	agent_score = EXCLUDED.agent_score,
	virality = EXCLUDED.virality,
	views_7d = EXCLUDED.views_7d,
	rating = EXCLUDED.rating,
	tiktok_url = EXCLUDED.tiktok_url,
	shop_url = EXCLUDED.shop_url,
	updated_at = EXCLUDED.updated_at`

const postgresSelect = `SELECT id, name, category, price, commission, agent_score, virality, views_7d, rating, tiktok_url, shop_url, updated_at FROM products`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

// UpsertProducts writes the whole batch in one transaction keyed by name.
func (s *PostgresStore) UpsertProducts(ctx context.Context, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return eris.Wrap(err, "postgres: begin upsert tx")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	now := time.Now().UTC()
	for _, p := range products {
		p = applyDefaults(p)
		id := p.ID
		if id == "" {
			id = uuid.New().String()
		}
		if _, err := tx.Exec(ctx, postgresUpsert,
			id, p.Name, p.Category, p.Price, p.Commission,
			p.AgentScore, p.Virality, p.Views7d, p.Rating,
			p.TikTokURL, p.ShopURL, now,
		); err != nil {
			return eris.Wrapf(err, "postgres: upsert product %q", p.Name)
		}
	}

	return eris.Wrap(tx.Commit(ctx), "postgres: commit upsert tx")
}

// ListProducts returns up to limit products ordered by agent score
// descending, name ascending as tiebreak.
func (s *PostgresStore) ListProducts(ctx context.Context, limit int) ([]model.Product, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := s.pool.Query(ctx,
		postgresSelect+` ORDER BY agent_score DESC, name ASC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list products")
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, eris.Wrap(err, "postgres: scan product")
		}
		products = append(products, p)
	}
	return products, eris.Wrap(rows.Err(), "postgres: list products iterate")
}

func (s *PostgresStore) GetProduct(ctx context.Context, name string) (*model.Product, error) {
	row := s.pool.QueryRow(ctx, postgresSelect+` WHERE name = $1`, name)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, eris.Wrapf(err, "postgres: get product %q", name)
	}
	return &p, nil
}

func (s *PostgresStore) CountProducts(ctx context.Context) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	return count, eris.Wrap(err, "postgres: count products")
}

type scannable interface {
	Scan(dest ...any) error
}

func scanProduct(row scannable) (model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Commission,
		&p.AgentScore, &p.Virality, &p.Views7d, &p.Rating,
		&p.TikTokURL, &p.ShopURL, &p.UpdatedAt)
	return p, err
}
