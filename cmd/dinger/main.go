package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"dinger/contract"
	"dinger/infrastructure/grpc/client"
	"dinger/infrastructure/grpc/nodev1"
	"dinger/infrastructure/grpc/server"
	"dinger/internal"
	"dinger/moderation"
	"dinger/node"
	"dinger/observability"
	"dinger/repositories"
	"dinger/runtime"
	"dinger/runtime/workers"
	"dinger/services"
	"dinger/sink"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the node, serves it to peers and drives the local client until
// SIGINT or SIGTERM.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Storage
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	writer, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("note index opening failed: %w", err)
	}
	defer func() { _ = writer.Close() }()

	// 3. Node
	peers, err := node.ParsePeers(config.Peers)
	if err != nil {
		return fmt.Errorf("peers: %w", err)
	}
	directory := node.NewDirectory(peers, client.Dial)
	local := node.NewLocalNode(log,
		repositories.NewRecordRepository(db, log, config.LimitRecords),
		repositories.NewProtocolRepository(db, log),
		directory)

	// 4. Application service
	var moderator *moderation.Moderator
	if words := moderation.ParseWords(config.CensoredWords); len(words) > 0 {
		char, err := internal.CharacterRune(config.CharReplacement)
		if err != nil {
			return err
		}
		if moderator, err = moderation.NewModerator(words, char, log); err != nil {
			return fmt.Errorf("moderator: %w", err)
		}
	}
	monitoring := observability.NewMonitoring(log)
	service := services.NewDingerService(log, local,
		repositories.NewIdentityRepository(db, log),
		repositories.NewNoteIndex(writer, log),
		moderator, monitoring)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	did, err := service.Connect(ctx)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	// 6. gRPC server for peers
	listener, err := net.Listen("tcp", config.Address())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", config.Address(), err)
	}
	s := grpc.NewServer()
	nodev1.RegisterNodeServiceServer(s, server.NewNodeServer(log, local))

	errChan := make(chan error, 2)
	go func() {
		log.Info("Starting node", "address", config.Address(), "did", did)
		if err := s.Serve(listener); err != nil && !stderrors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. Workers
	hub := sink.NewHub(log)
	defer hub.Close()
	sinks := []contract.StateSink{hub}
	sup := workers.NewSupervisor(log, config.RestartInterval)
	if config.Console {
		sinks = append(sinks, sink.NewConsoleSink(os.Stdout))
		sup.Add(workers.NewConsoleWorker(log, service, os.Stdin, os.Stdout))
	}
	sup.Add(
		workers.NewPollWorker(log, service, config.PollInterval, sinks...),
		workers.NewHeartbeatWorker(log, monitoring, config.MetricInterval),
	)
	handle := runtime.Start(ctx, sup)

	if config.DebugPort > 0 {
		debug := internal.NewDebugServer(log, db, service.State, monitoring, hub)
		go func() {
			if err := debug.ListenAndServe(ctx, config.DebugPort); err != nil {
				errChan <- fmt.Errorf("debug server error: %w", err)
			}
		}()
	}

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err = <-errChan:
		log.Error("Shutting down on error", "error", err)
	}

	// 9. Final Cleanup
	s.GracefulStop()
	handle.Stop()
	log.Info("Node stopped cleanly")
	return err
}
