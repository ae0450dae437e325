package repositories

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"net/url"
	"sort"
	"time"

	gametypes "github.com/cbodonnell/reign/pkg/game/types"
)

//go:embed migrations
var migrationsFS embed.FS

const (
	// DefaultListLimit is the number of reigns returned when no limit is given.
	DefaultListLimit = 20
	// MaxListLimit caps the number of reigns returned by ListReigns.
	MaxListLimit = 100
)

// Repository archives the summaries of finished reigns.
type Repository interface {
	Close(ctx context.Context) error
	SaveReign(ctx context.Context, reign *gametypes.Reign) error
	GetReign(ctx context.Context, reignID string) (*gametypes.Reign, error)
	// ListReigns returns the most recently ended reigns first.
	ListReigns(ctx context.Context, limit int) ([]*gametypes.Reign, error)
}

// NewRepository opens the repository named by a connection string.
// Supported schemes are sqlite://<path> and postgres(ql)://...
func NewRepository(ctx context.Context, connStr string) (Repository, error) {
	u, err := url.Parse(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %v", err)
	}

	switch u.Scheme {
	case "sqlite":
		path := u.Host + u.Path
		if path == "" {
			return nil, fmt.Errorf("sqlite connection string has no path")
		}
		return NewSQLiteRepository(ctx, path)
	case "postgres", "postgresql":
		return NewPostgresRepository(ctx, connStr)
	default:
		return nil, fmt.Errorf("unknown database type %s", u.Scheme)
	}
}

// readMigrations returns the migration scripts for dialect in file name order.
func readMigrations(dialect string) ([]string, error) {
	dir := "migrations/" + dialect
	entries, err := fs.ReadDir(migrationsFS, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %v", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var scripts []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		b, err := fs.ReadFile(migrationsFS, dir+"/"+entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %v", entry.Name(), err)
		}
		scripts = append(scripts, string(b))
	}
	return scripts, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// reignRow is the flattened form of a reign shared by both dialects.
type reignRow struct {
	ID            string
	StartedAt     int64
	EndedAt       int64
	CardsResolved int
	Heart         int
	Gold          int
	Military      int
	Faith         int
	Endings       []byte
	Decisions     []byte
}

func toRow(reign *gametypes.Reign) (*reignRow, error) {
	endings := reign.Endings
	if endings == nil {
		endings = []gametypes.Ending{}
	}
	endingsJSON, err := json.Marshal(endings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal endings: %v", err)
	}
	decisions := reign.Decisions
	if decisions == nil {
		decisions = []gametypes.Decision{}
	}
	decisionsJSON, err := json.Marshal(decisions)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal decisions: %v", err)
	}
	return &reignRow{
		ID:            reign.ID,
		StartedAt:     reign.StartedAt.UnixMilli(),
		EndedAt:       reign.EndedAt.UnixMilli(),
		CardsResolved: reign.CardsResolved,
		Heart:         reign.Meters.Heart,
		Gold:          reign.Meters.Gold,
		Military:      reign.Meters.Military,
		Faith:         reign.Meters.Faith,
		Endings:       endingsJSON,
		Decisions:     decisionsJSON,
	}, nil
}

func (r *reignRow) toReign() (*gametypes.Reign, error) {
	reign := &gametypes.Reign{
		ID:            r.ID,
		StartedAt:     time.UnixMilli(r.StartedAt).UTC(),
		EndedAt:       time.UnixMilli(r.EndedAt).UTC(),
		CardsResolved: r.CardsResolved,
		Meters: gametypes.Meters{
			Heart:    r.Heart,
			Gold:     r.Gold,
			Military: r.Military,
			Faith:    r.Faith,
		},
	}
	if err := json.Unmarshal(r.Endings, &reign.Endings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal endings: %v", err)
	}
	if err := json.Unmarshal(r.Decisions, &reign.Decisions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal decisions: %v", err)
	}
	return reign, nil
}
