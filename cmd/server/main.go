package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"
	"wordmole/internal"
	"wordmole/moderation"
	"wordmole/repositories"
	"wordmole/runtime"
	"wordmole/runtime/workers"

	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// serviceName is the name reported by the health service.
const serviceName = "wordmole.Lobby"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component, serves until a signal arrives and releases
// everything in reverse order before returning.
func run() error {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Journal (BadgerDB)
	db, err := repositories.OpenJournal(config.JournalFilepath)
	if err != nil {
		return fmt.Errorf("journal opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing journal...")
		_ = db.Close()
	}()
	journal := repositories.NewJournalRepository(db, log)

	// 3. Moderation
	char, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return err
	}
	censored, err := runtime.DefaultCensoredLoader().LoadAll("censored")
	if err != nil {
		return fmt.Errorf("censored words loading failed: %w", err)
	}
	moderator, err := moderation.NewModerator(censored.Words, char)
	if err != nil {
		return fmt.Errorf("moderator failed: %w", err)
	}
	log.Info("Moderation ready", "words", len(censored.Words), "languages", censored.Languages)

	// 4. Dispatch engine & coordinator
	callbacks, err := workers.NewAsyncCallback(log, workers.PoolConfig{
		Size:            config.NumberOfWorkers,
		Priority:        config.WorkerPriority,
		MaxCallTime:     config.MaxCallTime,
		SweepRate:       config.SweepRate,
		RestartInterval: config.RestartInterval,
	})
	if err != nil {
		return err
	}
	logger, err := runtime.NewLogger(log, journal)
	if err != nil {
		return err
	}
	coordinator := runtime.NewCoordinator(log, runtime.NewRegistry(), callbacks, logger, moderator, config.HeartbeatInterval)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	coordinator.Start(ctx)
	defer coordinator.Stop()

	if config.DebugPort > 0 {
		inspector := internal.InspectHandler(log, journal, config.LimitJournalEntries, nil, func() map[string]any {
			invitations, games := coordinator.Sessions()
			stats := callbacks.Stats()
			return map[string]any{
				"invitations": invitations,
				"games":       games,
				"active":      stats.Active,
				"pending":     stats.Pending,
			}
		})
		debug := internal.StartDebugServer(log, config.DebugPort, "/inspect", inspector)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = debug.Shutdown(shutdownCtx)
		}()
	}

	// 6. gRPC health service
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(s, healthServer)
	healthServer.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 8. Final Cleanup
	healthServer.Shutdown()
	s.GracefulStop()
	log.Info("Program stopped cleanly")
	return nil
}
