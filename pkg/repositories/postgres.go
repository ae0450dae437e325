package repositories

import (
	"context"
	"errors"
	"fmt"

	gametypes "github.com/cbodonnell/reign/pkg/game/types"
	"github.com/cbodonnell/reign/pkg/log"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is safe for concurrent use; queries draw connections from a pool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

var _ Repository = &PostgresRepository{}

// NewPostgresRepository connects to Postgres and applies the migrations.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) (*PostgresRepository, error) {
	pool, err := connectDb(ctx, connStr)
	if err != nil {
		return nil, err
	}

	migrations, err := readMigrations("postgres")
	if err != nil {
		pool.Close()
		return nil, err
	}
	for i, migration := range migrations {
		if _, err := pool.Exec(ctx, migration); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to execute migration %d: %v", i+1, err)
		}
	}

	return &PostgresRepository{
		pool: pool,
	}, nil
}

func connectDb(ctx context.Context, connStr string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	var username string
	var database string
	err = pool.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to query database: %v", err)
	}

	log.Info("Connected to %s as %s", database, username)

	return pool, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	r.pool.Close()
	return nil
}

func (r *PostgresRepository) SaveReign(ctx context.Context, reign *gametypes.Reign) error {
	row, err := toRow(reign)
	if err != nil {
		return err
	}

	q := `
	INSERT INTO reigns (reign_id, started_at, ended_at, cards_resolved, heart, gold, military, faith, endings, decisions)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (reign_id) DO UPDATE SET ended_at = $3, cards_resolved = $4, heart = $5, gold = $6,
		military = $7, faith = $8, endings = $9, decisions = $10;
	`
	_, err = r.pool.Exec(ctx, q, row.ID, row.StartedAt, row.EndedAt, row.CardsResolved,
		row.Heart, row.Gold, row.Military, row.Faith, string(row.Endings), string(row.Decisions))
	if err != nil {
		return fmt.Errorf("failed to insert reign: %v", err)
	}

	return nil
}

func (r *PostgresRepository) GetReign(ctx context.Context, reignID string) (*gametypes.Reign, error) {
	q := `
	SELECT reign_id, started_at, ended_at, cards_resolved, heart, gold, military, faith, endings::text, decisions::text
	FROM reigns WHERE reign_id = $1;
	`
	row, err := scanPostgresRow(r.pool.QueryRow(ctx, q, reignID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan reign: %v", err)
	}

	return row.toReign()
}

func (r *PostgresRepository) ListReigns(ctx context.Context, limit int) ([]*gametypes.Reign, error) {
	q := `
	SELECT reign_id, started_at, ended_at, cards_resolved, heart, gold, military, faith, endings::text, decisions::text
	FROM reigns ORDER BY ended_at DESC LIMIT $1;
	`
	rows, err := r.pool.Query(ctx, q, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query reigns: %v", err)
	}
	defer rows.Close()

	reigns := make([]*gametypes.Reign, 0)
	for rows.Next() {
		row, err := scanPostgresRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reign: %v", err)
		}
		reign, err := row.toReign()
		if err != nil {
			return nil, err
		}
		reigns = append(reigns, reign)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reigns: %v", err)
	}

	return reigns, nil
}

func scanPostgresRow(s pgx.Row) (*reignRow, error) {
	row := &reignRow{}
	var endings, decisions string
	if err := s.Scan(&row.ID, &row.StartedAt, &row.EndedAt, &row.CardsResolved,
		&row.Heart, &row.Gold, &row.Military, &row.Faith, &endings, &decisions); err != nil {
		return nil, err
	}
	row.Endings = []byte(endings)
	row.Decisions = []byte(decisions)
	return row, nil
}
