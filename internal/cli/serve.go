package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formulate/pkg/binding"
	"github.com/dmitrymomot/formulate/pkg/formhttp"
	"github.com/dmitrymomot/formulate/pkg/httpserver"
	"github.com/dmitrymomot/formulate/pkg/logger"
	"github.com/dmitrymomot/formulate/pkg/redis"
)

const (
	storeMemory = "memory"
	storeRedis  = "redis"
)

func newServeCommand(opts *RootOptions) *cobra.Command {
	var (
		addr      string
		storeKind string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve form validation and bound form state over HTTP",
		Long: `Serve runs the HTTP API until interrupted:

  POST /validate                    validate fields against rule strings
  GET  /forms/{form}                read the bound values of a form
  GET  /forms/{form}/valid          read the recorded validity of a form
  PUT  /forms/{form}/fields/{field} write a bound field value
  GET  /health, /ready              liveness and readiness

Form state lives in memory, or in Redis when --store=redis or REDIS_URL is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, log, f, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			if storeKind == "" {
				storeKind = storeMemory
				if _, ok := os.LookupEnv("REDIS_URL"); ok {
					storeKind = storeRedis
				}
			}
			store, checks, closeStore, err := openStore(ctx, storeKind, cfg.Redis, log)
			if err != nil {
				return err
			}
			defer closeStore()

			api := formhttp.New(f.Engine(), formhttp.WithStore(store, f), formhttp.WithLogger(log))

			r := chi.NewRouter()
			r.Get("/health", httpserver.HealthHandler(log, nil))
			r.Get("/ready", httpserver.HealthHandler(log, checks))
			r.Mount("/", api.Routes())

			srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithAddr(addr), httpserver.WithLogger(log))
			if err := srv.Run(ctx, r); err != nil {
				return commandError("serve", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default HTTP_ADDR or :8080)")
	cmd.Flags().StringVar(&storeKind, "store", "", "form state store (memory|redis)")
	return cmd
}

// openStore returns the store, its readiness checks and a close function.
func openStore(ctx context.Context, kind string, cfg redis.Config, log *slog.Logger) (binding.Store, map[string]httpserver.Check, func(), error) {
	switch kind {
	case storeMemory:
		return binding.NewMemoryStore(), nil, func() {}, nil
	case storeRedis:
		client, err := redis.Connect(ctx, cfg)
		if err != nil {
			return nil, nil, nil, commandError("connect to redis", err)
		}
		log.InfoContext(ctx, "form store connected", logger.Component("redis"), slog.String("prefix", cfg.KeyPrefix))

		store := binding.NewRedisStore(client, cfg.KeyPrefix, cfg.ScanCount)
		checks := map[string]httpserver.Check{"redis": redis.Healthcheck(client)}
		closeFn := func() {
			if err := client.Close(); err != nil {
				log.WarnContext(ctx, "close redis client", logger.Error(err))
			}
		}
		return store, checks, closeFn, nil
	default:
		return nil, nil, nil, commandError(fmt.Sprintf("unknown store %q: must be %s or %s", kind, storeMemory, storeRedis), nil)
	}
}
