// clickplanetd is the click pipeline server: it ingests clicks over HTTP,
// appends them to the durable click log, maintains the in-memory ownership
// index, and streams ownership changes to WebSocket listeners.
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

	"go.clickplanet.org/backend/go/broadcast"
	"go.clickplanet.org/backend/go/clicklog"
	"go.clickplanet.org/backend/go/clicks"
	"go.clickplanet.org/backend/go/clickservice"
	"go.clickplanet.org/backend/go/clickstore/memclickstore"
	"go.clickplanet.org/backend/go/clickstore/redisclickstore"
	"go.clickplanet.org/backend/go/frontend"
	"go.clickplanet.org/backend/go/ownership"
	"go.clickplanet.org/backend/go/tracing"
)

const shutdownGrace = 15 * time.Second

func main() {
	app := &cli.App{
		Name:  "clickplanetd",
		Usage: "Serves the click-the-planet backend.",
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
				Name:    "port",
				Usage:   "Port the public API listens on.",
				Value:   3000,
				EnvVars: []string{"PORT"},
			},
			&cli.IntFlag{
				Name:    "prom_port",
				Usage:   "Port the Prometheus metrics server listens on.",
				Value:   20000,
				EnvVars: []string{"PROM_PORT"},
			},
			&cli.StringFlag{
				Name:    "otlp_endpoint",
				Usage:   "OTLP gRPC endpoint for traces; empty disables tracing.",
				EnvVars: []string{"OTLP_ENDPOINT"},
			},
			&cli.StringFlag{
				Name:    "service_name",
				Usage:   "Service name reported on traces.",
				Value:   "clickplanetd",
				EnvVars: []string{"SERVICE_NAME"},
			},
			&cli.IntFlag{
				Name:  "consumer_workers",
				Usage: "Concurrent handler goroutines per click consumer path.",
				Value: 4,
			},
			&cli.IntFlag{
				Name:  "broadcast_capacity",
				Usage: "Per-subscriber buffer of the in-process broadcasters.",
				Value: broadcast.DefaultCapacity,
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

	shutdownTracing, err := tracing.Init(ctx, c.String("service_name"), c.String("otlp_endpoint"))
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Warnf("Flushing traces: %s", err)
		}
	}()

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

	// The hot index is rebuilt from the cold store on every start; a failed
	// warm load means serving wrong ownership, so it is fatal.
	hot, err := memclickstore.NewPopulated(ctx, cold, log)
	if err != nil {
		return errors.Wrap(err, "warm-loading the hot ownership index")
	}

	capacity := c.Int("broadcast_capacity")
	clickFeed := broadcast.New[*clicks.Click]("clicks", capacity)
	notifications := broadcast.New[*clicks.UpdateNotification]("notifications", capacity)

	service := clickservice.New(clickLog, clickFeed, log)
	consumerCfg := clicklog.DefaultConsumerConfig(ownership.ConsumerName)
	consumerCfg.Workers = c.Int("consumer_workers")
	updater := ownership.New(hot, clickLog, consumerCfg, clickFeed, notifications, consumerCfg.Workers, log)

	apiServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", c.Int("port")),
		Handler: frontend.New(service, hot, notifications, log).Handler(),
	}
	adminMux := http.NewServeMux()
	adminMux.Handle("/metrics", promhttp.Handler())
	adminServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", c.Int("prom_port")),
		Handler: adminMux,
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return updater.Run(ctx)
	})
	eg.Go(func() error {
		log.Infof("Serving API on %s", apiServer.Addr)
		return ignoreServerClosed(apiServer.ListenAndServe())
	})
	eg.Go(func() error {
		log.Infof("Serving metrics on %s", adminServer.Addr)
		return ignoreServerClosed(adminServer.ListenAndServe())
	})
	eg.Go(func() error {
		<-ctx.Done()
		log.Infof("Shutting down")
		// Closing the broadcasters ends every WebSocket feed and the
		// updater's fast path before the listeners are torn down.
		notifications.Close()
		clickFeed.Close()
		grace, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := apiServer.Shutdown(grace); err != nil {
			log.Warnf("API shutdown: %s", err)
		}
		if err := adminServer.Shutdown(grace); err != nil {
			log.Warnf("Metrics shutdown: %s", err)
		}
		return nil
	})
	return eg.Wait()
}

func newLogger(local bool) (*zap.Logger, error) {
	if local {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func ignoreServerClosed(err error) error {
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
