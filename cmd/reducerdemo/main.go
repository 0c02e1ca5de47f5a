// Command reducerdemo replays a YAML event script through the users machine
// and logs every dispatch.
package main

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/dmitrymomot/reducerkit/internal/store"
	"github.com/dmitrymomot/reducerkit/internal/users"
	"github.com/dmitrymomot/reducerkit/pkg/config"
	"github.com/dmitrymomot/reducerkit/pkg/logger"
)

//go:embed users.yaml
var defaultScript []byte

type demoConfig struct {
	Env      string `env:"ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`
	Strict   bool   `env:"STRICT" envDefault:"false"`
	Script   string `env:"SCRIPT"`

	// ContinueOnError keeps replaying after a rejected event.
	ContinueOnError bool `env:"CONTINUE_ON_ERROR" envDefault:"true"`
}

const envPrefix = "REDUCER_"

func main() {
	var cfg demoConfig
	config.MustLoad(&cfg, config.WithPrefix(envPrefix))

	log := newLogger(cfg, os.Stdout)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	final, err := run(ctx, cfg, log)
	if err != nil {
		log.Error("replay failed", logger.Error(err))
		stop()
		os.Exit(1)
	}
	if final == nil {
		log.Info("replay finished without state")
		return
	}
	log.Info("replay finished",
		logger.Status(final.Status),
		slog.Any("users", final.Users),
	)
}

func newLogger(cfg demoConfig, w io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithOutput(w),
		logger.WithEnvironment(cfg.Env, "reducerdemo"),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	return logger.New(opts...)
}

// run replays the configured script and returns the final state.
func run(ctx context.Context, cfg demoConfig, log *slog.Logger) (*users.State, error) {
	sc, events, err := loadScript(cfg.Script)
	if err != nil {
		return nil, err
	}

	log = log.With(logger.Component("users"))

	opts := []users.Option{
		users.OnFallback(func(label, initial users.Status) {
			log.Warn("unknown status, falling back",
				logger.Status(label),
				logger.Fallback(initial),
			)
		}),
	}
	if cfg.Strict {
		opts = append(opts, users.Strict())
	}

	m, err := users.NewMachine(opts...)
	if err != nil {
		return nil, fmt.Errorf("build machine: %w", err)
	}

	s := store.New(m.Reducer(), sc.Initial)
	unsubscribe := s.Subscribe(func(state *users.State) {
		log.Debug("state changed",
			logger.NextStatus(state.Status),
			slog.Int("users", len(state.Users)),
		)
	})
	defer unsubscribe()

	for i, ev := range events {
		id := uuid.New()
		current := s.State()
		route, _ := m.Route(current)
		// Absent statuses are logged without a status field.
		status := slog.Attr{}
		if label, ok := users.Label(current); ok {
			status = logger.Status(label)
		}

		next, err := s.Dispatch(ctx, ev)
		if err != nil {
			log.Warn("event rejected",
				logger.Step(i),
				logger.MessageID(id.String()),
				logger.EventType(ev.Type()),
				status,
				logger.Route(route),
				logger.Error(err),
			)
			if ctx.Err() != nil || !cfg.ContinueOnError {
				return s.State(), fmt.Errorf("step %d (%s): %w", i, ev.Type(), err)
			}
			continue
		}

		log.Info("event applied",
			logger.Step(i),
			logger.MessageID(id.String()),
			logger.EventType(ev.Type()),
			status,
			logger.Route(route),
			logger.NextStatus(next.Status),
		)
	}

	return s.State(), nil
}
