package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdemroom/internal/room"
	"github.com/lox/holdemroom/internal/server"
)

// ServeCmd runs the WebSocket room server
type ServeCmd struct {
	Config string `kong:"default='holdemroom.hcl',help='Path to HCL config file'"`
	Addr   string `kong:"help='Listen address, overrides the config file'"`
	Seed   *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
}

func (c *ServeCmd) Run() error {
	logger := setupLogger(c.Debug)

	cfg, err := server.LoadServerConfig(c.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if level, err := log.ParseLevel(cfg.Server.LogLevel); err == nil && !c.Debug {
		logger.SetLevel(level)
	}

	addr := c.Addr
	if addr == "" {
		addr = fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	}

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
		logger.Info("using deterministic seed", "seed", seed)
	}

	registry := room.NewRegistry(room.Config{
		StartingChips: cfg.Table.StartingChips,
		SmallBlind:    cfg.Table.SmallBlind,
		BigBlind:      cfg.Table.BigBlind,
		MaxSeats:      cfg.Table.MaxSeats,
		TurnTimeout:   time.Duration(cfg.Table.TurnTimeoutSecs) * time.Second,
		Seed:          seed,
		Logger:        logger.WithPrefix("room"),
	})
	srv := server.NewServer(addr, registry, logger)

	logger.Info("starting holdemroom server",
		"addr", addr,
		"small_blind", cfg.Table.SmallBlind,
		"big_blind", cfg.Table.BigBlind,
		"starting_chips", cfg.Table.StartingChips,
		"max_seats", cfg.Table.MaxSeats,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Stop(shutdownCtx)
	})

	return g.Wait()
}
