package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/reign/client/game"
	"github.com/cbodonnell/reign/client/objects"
	"github.com/cbodonnell/reign/pkg/cards"
	"github.com/cbodonnell/reign/pkg/config"
	gametypes "github.com/cbodonnell/reign/pkg/game/types"
	"github.com/cbodonnell/reign/pkg/log"
	"github.com/cbodonnell/reign/pkg/repositories"
	"github.com/cbodonnell/reign/pkg/version"
	"github.com/cbodonnell/reign/pkg/workers"
	"github.com/hajimehoshi/ebiten/v2"
)

// archiveQueueSize is the number of finished reigns buffered for the archive worker.
const archiveQueueSize = 16

func main() {
	envConfig, err := config.ParseEnv()
	if err != nil {
		panic(fmt.Sprintf("Failed to parse environment: %v", err))
	}

	debug := flag.Bool("debug", false, "Enable the debug overlay")
	deckPath := flag.String("deck", envConfig.DeckFile, "Path to a YAML deck file (defaults to the built-in deck)")
	dbURL := flag.String("db", envConfig.DatabaseURL, "Reign archive connection string, e.g. sqlite://reign.db")
	logLevel := flag.String("log-level", envConfig.LogLevel, "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting client version %s", version.Get())
	ctx := context.Background()

	deck, err := cards.Load(*deckPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load deck: %v", err))
	}
	log.Info("Loaded deck %q with %d cards", deck.Name, len(deck.Cards))

	connStr := *dbURL
	var repository repositories.Repository
	var archiveChan chan gametypes.Reign
	archiveDone := make(chan struct{})
	if connStr != "" {
		repository, err = repositories.NewRepository(ctx, connStr)
		if err != nil {
			panic(fmt.Sprintf("Failed to create repository: %v", err))
		}
		defer repository.Close(ctx)

		archiveChan = make(chan gametypes.Reign, archiveQueueSize)
		archiveWorker := workers.NewArchiveReignWorker(workers.NewArchiveReignWorkerOptions{
			Repository: repository,
			ReignChan:  archiveChan,
		})
		go func() {
			archiveWorker.Start(ctx)
			close(archiveDone)
		}()
	} else {
		log.Warn("No reign archive configured, finished reigns will not be saved")
		close(archiveDone)
	}

	g, err := game.NewGame(game.NewGameOptions{
		Debug:       *debug,
		Deck:        deck,
		Repository:  repository,
		ArchiveChan: archiveChan,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(objects.ScreenWidth, objects.ScreenHeight)
	ebiten.SetWindowTitle("Reign")
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}

	// Flush reigns still queued for the archive.
	if archiveChan != nil {
		close(archiveChan)
	}
	<-archiveDone
}
