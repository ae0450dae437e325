package workers

import (
	"context"
	"time"

	"github.com/cbodonnell/reign/pkg/game/types"
	"github.com/cbodonnell/reign/pkg/log"
	"github.com/cbodonnell/reign/pkg/repositories"
)

// DefaultSaveTimeout bounds a single save when no timeout is configured.
const DefaultSaveTimeout = 5 * time.Second

type ArchiveReignWorker struct {
	repository  repositories.Repository
	reignChan   <-chan types.Reign
	saveTimeout time.Duration
}

type NewArchiveReignWorkerOptions struct {
	Repository repositories.Repository
	ReignChan  <-chan types.Reign
	// SaveTimeout bounds each save. Defaults to DefaultSaveTimeout.
	SaveTimeout time.Duration
}

// NewArchiveReignWorker creates a new ArchiveReignWorker.
// The worker saves finished reigns sent by the game loop so the frame never waits on the database.
func NewArchiveReignWorker(opts NewArchiveReignWorkerOptions) *ArchiveReignWorker {
	saveTimeout := opts.SaveTimeout
	if saveTimeout <= 0 {
		saveTimeout = DefaultSaveTimeout
	}
	return &ArchiveReignWorker{
		repository:  opts.Repository,
		reignChan:   opts.ReignChan,
		saveTimeout: saveTimeout,
	}
}

// Start runs until ctx is done or the reign channel is closed.
// Reigns already queued when the channel closes are still saved.
func (w *ArchiveReignWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case reign, ok := <-w.reignChan:
			if !ok {
				return
			}
			w.saveReign(ctx, reign)
		}
	}
}

func (w *ArchiveReignWorker) saveReign(ctx context.Context, reign types.Reign) {
	ctx, cancel := context.WithTimeout(ctx, w.saveTimeout)
	defer cancel()

	if err := w.repository.SaveReign(ctx, &reign); err != nil {
		log.Error("Failed to archive reign %s: %v", reign.ID, err)
		return
	}
	log.Debug("Archived reign %s", reign.ID)
}
