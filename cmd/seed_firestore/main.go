package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hetulpatel/athletemon/internal/config"
	"github.com/hetulpatel/athletemon/internal/fixtures"
	"github.com/hetulpatel/athletemon/internal/kafka"
	"github.com/hetulpatel/athletemon/internal/logging"
	"github.com/hetulpatel/athletemon/internal/queue"
	"github.com/hetulpatel/athletemon/internal/seed"
)

var backendLabels = map[config.Backend]string{
	config.BackendFirestore: "Firestore",
	config.BackendSQLite:    "SQLite document store",
	config.BackendRedis:     "Redis document store",
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("[seed] load config: %v", err)
	}
	logging.SetLevel(logging.ParseLevel(cfg.LogLevel))

	if err := run(ctx, cfg); err != nil {
		logging.Fatalf("[seed] %v", err)
	}
	fmt.Println(confirmation(cfg.Backend))
}

// confirmation is the line printed after a fully successful run.
func confirmation(b config.Backend) string {
	label, ok := backendLabels[b]
	if !ok {
		label = string(b)
	}
	return label + " seeded successfully."
}

func run(ctx context.Context, cfg *config.Config) error {
	store, err := seed.OpenStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	rng, usedSeed := fixtures.NewSeededRNG(cfg.RandomSeed)
	logging.Debugf("[seed] stat random seed %d", usedSeed)

	sum, err := seed.NewRunner(store, rng).Run(ctx)
	if err != nil {
		return err
	}
	logging.Infof("[seed] wrote %d documents: users=%d stats=%d groups=%d tips=%d feedback=%d",
		sum.Total(), sum.Users, sum.Stats, sum.Groups, sum.Tips, sum.Feedback)

	if cfg.EventsEnabled() {
		if err := publish(ctx, cfg, sum); err != nil {
			logging.Errorf("[events] publish to %s failed: %v", cfg.EventsTopic, err)
		}
	}
	return nil
}

func publish(ctx context.Context, cfg *config.Config, sum *seed.Summary) error {
	brokers := cfg.Brokers()

	waitCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := kafka.WaitForBroker(waitCtx, brokers); err != nil {
		return err
	}
	if err := kafka.EnsureTopic(waitCtx, brokers, cfg.EventsTopic); err != nil {
		logging.Warnf("[events] ensure topic warning: %v", err)
	}

	writer := kafka.NewWriter(brokers, cfg.EventsTopic)
	defer writer.Close()

	if err := queue.PublishWrites(ctx, writer, string(cfg.Backend), sum.Writes); err != nil {
		return err
	}
	logging.Infof("[events] published %d writes to %s", len(sum.Writes), cfg.EventsTopic)
	return nil
}
