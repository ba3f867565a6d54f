package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
	"wordmole/internal"
	"wordmole/repositories"

	"github.com/mama165/sdk-go/logs"
)

func main() {
	// 1. Load config
	config, err := internal.LoadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if config.JournalFilepath == "" || config.DebugPort == 0 {
		log.Fatal("JOURNAL_FILEPATH and DEBUG_PORT are required by the viewer")
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Open the journal in Read-Only mode
	// Note: BypassLockGuard allows opening while the server holds the lock
	db, err := repositories.OpenJournalReadOnly(config.JournalFilepath)
	if err != nil {
		log.Fatalf("Failed to open journal: %v", err)
	}
	defer db.Close()
	journal := repositories.NewJournalRepository(db, logger)

	// 3. Start Debug Server Only
	// The coordinator isn't running here, so stats only describe the viewer
	viewerStats := func() map[string]any {
		return map[string]any{
			"Status": "Viewer Mode (Read-Only)",
			"Time":   time.Now().Format(time.RFC822),
		}
	}

	fmt.Printf("Viewer started at http://localhost:%d/inspect\n", config.DebugPort)
	handler := internal.InspectHandler(logger, journal, config.LimitJournalEntries, nil, viewerStats)
	server := internal.StartDebugServer(logger, config.DebugPort, "/inspect", handler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
}
