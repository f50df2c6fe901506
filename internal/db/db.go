package db

import (
	"context"
	"fmt"
	"time"

	"uniformnavi/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB owns the Postgres pool used by the submission repositories.
type DB struct {
	Pool *pgxpool.Pool
}

// Open dials Postgres and verifies the connection with a ping.
func Open(ctx context.Context, cfg *config.Config) (*DB, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("parse dsn %s: %w", cfg.GetDSNSafe(), err)
	}
	poolCfg.MaxConns = 10
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.GetDSNSafe(), err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.GetDSNSafe(), err)
	}

	return &DB{Pool: pool}, nil
}

func (d *DB) HealthCheck(ctx context.Context) error {
	return d.Pool.Ping(ctx)
}

func (d *DB) Close() {
	d.Pool.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS contacts (
	id                  UUID PRIMARY KEY,
	company_name        TEXT NOT NULL,
	department          TEXT NOT NULL DEFAULT '',
	name                TEXT NOT NULL,
	email               TEXT NOT NULL,
	phone               TEXT NOT NULL,
	postal_code         TEXT NOT NULL,
	address             TEXT NOT NULL,
	purpose             TEXT NOT NULL,
	quantity            TEXT NOT NULL DEFAULT '',
	preferred_colors    TEXT NOT NULL DEFAULT '',
	preferred_materials TEXT NOT NULL DEFAULT '',
	needs_consultation  BOOLEAN NOT NULL DEFAULT FALSE,
	message             TEXT NOT NULL,
	created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS advisor_inquiries (
	id               UUID PRIMARY KEY,
	company_name     TEXT NOT NULL,
	contact_person   TEXT NOT NULL,
	email            TEXT NOT NULL,
	category         TEXT NOT NULL DEFAULT '',
	selected_feature TEXT NOT NULL DEFAULT '',
	recommendations  JSONB NOT NULL DEFAULT '[]'::jsonb,
	status           TEXT NOT NULL DEFAULT 'new',
	created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS contacts_created_at_idx ON contacts (created_at DESC);
CREATE INDEX IF NOT EXISTS advisor_inquiries_created_at_idx ON advisor_inquiries (created_at DESC);
`

// EnsureSchema creates the submission tables if they do not exist yet.
func (d *DB) EnsureSchema(ctx context.Context) error {
	if _, err := d.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
