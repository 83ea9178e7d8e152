package main

import (
	"context"
	"database/sql"
	"io"
	"time"

	_ "github.com/go-sql-driver/mysql"
	pkgerr "github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rl1809/cafeteria/internal/adapter/listener"
	"github.com/rl1809/cafeteria/internal/adapter/storage"
	"github.com/rl1809/cafeteria/internal/config"
	"github.com/rl1809/cafeteria/internal/core/service"
	"github.com/rl1809/cafeteria/internal/instrumentation"
	"github.com/rl1809/cafeteria/internal/logging"
)

const (
	storeLabel     = "Almacén Central"
	connectTimeout = 5 * time.Second
)

var initialItems = []string{"Cafe", "Leche", "Galletas"}

type rootOptions struct {
	configPath string
	envFile    string
	logLevel   string
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "cafeteria",
		Short:         "Coffee shop stock demo",
		Long:          `Runs the coffee shop stock script, printing every stock notification and the final stock.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, cmd.Flags().Changed("log-level"), out)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to a yaml configuration file")
	cmd.Flags().StringVar(&opts.envFile, "env-file", "", "Path to a .env file loaded before reading the environment")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")

	cmd.AddCommand(newVersionCmd(out))
	return cmd
}

func run(ctx context.Context, opts *rootOptions, levelFlagSet bool, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := config.LoadEnvFile(opts.envFile); err != nil {
		return err
	}
	cfg, err := config.NewConfig(opts.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return pkgerr.Wrap(err, "invalid configuration")
	}
	if levelFlagSet {
		cfg.Log.Level = opts.logLevel
	}
	if err := logging.Init(cfg.Log.Level, nil); err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	stats := instrumentation.NewCollectors()
	if err := stats.Register(registry); err != nil {
		return pkgerr.Wrap(err, "register metrics")
	}

	notifier := service.NewNotifier(stats)
	notifier.Register(listener.NewConsoleListener(out))
	notifier.Register(listener.NewLogListener(log.Logger, zerolog.DebugLevel))

	closeRedis, err := registerRedis(ctx, cfg.Redis, notifier)
	if err != nil {
		return err
	}
	defer closeRedis()

	closeMySQL, err := registerMySQL(ctx, cfg.MySQL, notifier)
	if err != nil {
		return err
	}
	defer closeMySQL()

	provider := service.NewStockProvider(notifier, stats)
	if err := runScript(ctx, provider, out); err != nil {
		return err
	}

	if cfg.HTTP.Addr == "" {
		return nil
	}
	stock, _ := provider.Current()
	return serve(ctx, cfg.HTTP.Addr, stock, registry)
}

// runScript is the fixed stock scenario.
func runScript(ctx context.Context, provider *service.StockProvider, out io.Writer) error {
	facade := service.NewStockFacade(provider, storeLabel, initialItems, out)

	steps := []struct {
		item string
		op   func(context.Context, string) error
	}{
		{"Crema", facade.Add},
		{"Azucar", facade.Add},
		{"Leche", facade.Remove},
		{"Torta", facade.Remove}, // not in stock
	}
	for _, step := range steps {
		if err := step.op(ctx, step.item); err != nil {
			return pkgerr.Wrapf(err, "stock update %q", step.item)
		}
	}

	return facade.Display()
}

func registerRedis(ctx context.Context, cfg config.Redis, notifier *service.Notifier) (func(), error) {
	if cfg.Addr == "" {
		return func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.Addr})
	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, pkgerr.Wrap(err, "connect redis")
	}
	log.Info().Str("addr", cfg.Addr).Str("channel", cfg.Channel).Msg("connected to redis")

	notifier.Register(storage.NewRedisPublisher(rdb, storage.RedisPublisherConfig{
		Store:       storeLabel,
		Channel:     cfg.Channel,
		HistoryKey:  cfg.HistoryKey,
		HistorySize: cfg.HistorySize,
	}))

	return func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("close redis")
		}
	}, nil
}

func registerMySQL(ctx context.Context, cfg config.MySQL, notifier *service.Notifier) (func(), error) {
	if cfg.DSN == "" {
		return func() {}, nil
	}

	db, err := sql.Open("mysql", cfg.DSN)
	if err != nil {
		return nil, pkgerr.Wrap(err, "open mysql")
	}
	db.SetMaxOpenConns(4)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, pkgerr.Wrap(err, "connect mysql")
	}

	journal := storage.NewMySQLJournal(db, storeLabel)
	if err := journal.EnsureSchema(pingCtx); err != nil {
		db.Close()
		return nil, err
	}
	log.Info().Msg("connected to mysql")

	notifier.Register(journal)

	return func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("close mysql")
		}
	}, nil
}
