package repositories

import (
	"context"
	"database/sql"
	"fmt"

	gametypes "github.com/cbodonnell/reign/pkg/game/types"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

var _ Repository = &SQLiteRepository{}

func NewSQLiteRepository(ctx context.Context, path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	migrations, err := readMigrations("sqlite")
	if err != nil {
		db.Close()
		return nil, err
	}
	for i, migration := range migrations {
		if _, err := db.ExecContext(ctx, migration); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration %d: %v", i+1, err)
		}
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SaveReign(ctx context.Context, reign *gametypes.Reign) error {
	row, err := toRow(reign)
	if err != nil {
		return err
	}

	q := `
	INSERT OR REPLACE INTO reigns (reign_id, started_at, ended_at, cards_resolved, heart, gold, military, faith, endings, decisions)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err = r.db.ExecContext(ctx, q, row.ID, row.StartedAt, row.EndedAt, row.CardsResolved,
		row.Heart, row.Gold, row.Military, row.Faith, string(row.Endings), string(row.Decisions))
	if err != nil {
		return fmt.Errorf("failed to insert reign: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) GetReign(ctx context.Context, reignID string) (*gametypes.Reign, error) {
	q := `
	SELECT reign_id, started_at, ended_at, cards_resolved, heart, gold, military, faith, endings, decisions
	FROM reigns WHERE reign_id = ?;
	`
	row, err := scanSQLiteRow(r.db.QueryRowContext(ctx, q, reignID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan reign: %v", err)
	}

	return row.toReign()
}

func (r *SQLiteRepository) ListReigns(ctx context.Context, limit int) ([]*gametypes.Reign, error) {
	q := `
	SELECT reign_id, started_at, ended_at, cards_resolved, heart, gold, military, faith, endings, decisions
	FROM reigns ORDER BY ended_at DESC LIMIT ?;
	`
	rows, err := r.db.QueryContext(ctx, q, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query reigns: %v", err)
	}
	defer rows.Close()

	reigns := make([]*gametypes.Reign, 0)
	for rows.Next() {
		row, err := scanSQLiteRow(rows)
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

type scanner interface {
	Scan(dest ...any) error
}

func scanSQLiteRow(s scanner) (*reignRow, error) {
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
