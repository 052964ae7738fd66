// clickpersisterd replays the durable click log into the Redis cold store,
// keeping it current for the server's next warm start. It runs its own
// durable consumer, so its cursor is independent of the server's.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/proto"

	"go.clickplanet.org/backend/go/clicklog"
	"go.clickplanet.org/backend/go/clicks"
	"go.clickplanet.org/backend/go/clickstore"
	"go.clickplanet.org/backend/go/clickstore/redisclickstore"
)

// consumerName is the persister's durable cursor on the click log.
const consumerName = "tile-state-processor"

const shutdownGrace = 15 * time.Second

func main() {
	app := &cli.App{
		Name:  "clickpersisterd",
		Usage: "Persists clicks from the click log into the cold ownership store.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "nats_url",
				Usage:   "URL of the NATS server backing the click log.",
				Value:   "nats://localhost:4222",
				EnvVars: []string{"NATS_URL"},
			},
			&cli.StringFlag{
				Name:    "redis_url",
				Usage:   "URL of the Redis instance backing the cold ownership store.",
				Value:   "redis://localhost:6379",
				EnvVars: []string{"REDIS_URL"},
			},
			&cli.IntFlag{
				Name:    "prom_port",
				Usage:   "Port the Prometheus metrics server listens on.",
				Value:   20001,
				EnvVars: []string{"PROM_PORT"},
			},
			&cli.IntFlag{
				Name:  "consumer_workers",
				Usage: "Concurrent handler goroutines.",
				Value: 4,
			},
			&cli.BoolFlag{
				Name:  "local",
				Usage: "Running locally; use human-readable logs.",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger, err := newLogger(c.Bool("local"))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cold, err := redisclickstore.New(ctx, c.String("redis_url"), log)
	if err != nil {
		return err
	}
	nc, err := clicklog.Dial(ctx, c.String("nats_url"), log)
	if err != nil {
		return err
	}
	defer nc.Close()
	clickLog, err := clicklog.New(nc, log)
	if err != nil {
		return err
	}

	cfg := clicklog.DefaultConsumerConfig(consumerName)
	cfg.Workers = c.Int("consumer_workers")
	// Unlike the server's consumer, a failed write here means the cold
	// store is missing state, so redeliver instead of acking.
	cfg.AckOnError = false

	adminMux := http.NewServeMux()
	adminMux.Handle("/metrics", promhttp.Handler())
	adminServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", c.Int("prom_port")),
		Handler: adminMux,
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return clickLog.Consume(ctx, cfg, persistHandler(cold, log))
	})
	eg.Go(func() error {
		log.Infof("Serving metrics on %s", adminServer.Addr)
		err := adminServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	eg.Go(func() error {
		<-ctx.Done()
		log.Infof("Shutting down")
		grace, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := adminServer.Shutdown(grace); err != nil {
			log.Warnf("Metrics shutdown: %s", err)
		}
		return nil
	})
	return eg.Wait()
}

// persistHandler applies one logged click to the cold store. Undecodable
// payloads are dropped by returning nil so they cannot wedge the stream;
// store failures propagate and the message redelivers.
func persistHandler(cold clickstore.ClickStore, log *zap.SugaredLogger) clicklog.Handler {
	return func(ctx context.Context, subject string, payload []byte) error {
		click := &clicks.Click{}
		if err := proto.Unmarshal(payload, click); err != nil {
			log.Errorf("Dropping undecodable click on %s: %s", subject, err)
			return nil
		}
		if click.TileId < 1 {
			log.Errorf("Dropping click with tile id %d on %s", click.TileId, subject)
			return nil
		}
		if _, err := cold.SaveClick(ctx, uint32(click.TileId), click); err != nil {
			return errors.Wrapf(err, "persisting click for tile %d", click.TileId)
		}
		return nil
	}
}

func newLogger(local bool) (*zap.Logger, error) {
	if local {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
