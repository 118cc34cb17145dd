package cli

import (
	"context"
	"fmt"
	"time"

	"console-quiz/internal/app"
	"console-quiz/internal/config"
	"console-quiz/internal/infra/file"
	"console-quiz/internal/infra/memory"
	pgloader "console-quiz/internal/infra/postgres"
	rediscache "console-quiz/internal/infra/redis"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultQuizTTL = 10 * time.Minute

// buildQuizRepository picks the quiz source: a bank file, then Postgres, then the built-in
// quiz. Only Postgres gets the shared Redis cache when redis.addr is set; local sources are
// read through an in-process cache so a bank file is never shadowed by another run's entry.
// The returned func releases any connections that were opened.
func buildQuizRepository(ctx context.Context, cfg config.Config, log *zap.Logger) (app.QuizRepository, func(), error) {
	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	quizTTL := config.TTLDuration(cfg.Quiz.TTL, defaultQuizTTL)

	switch {
	case cfg.Quiz.BankPath != "":
		log.Debug("loading quizzes from file", zap.String("path", cfg.Quiz.BankPath))
		return memory.NewQuizRepository(file.NewQuizLoader(cfg.Quiz.BankPath), quizTTL), closeAll, nil
	case cfg.Postgres.URL == "":
		return memory.NewQuizRepository(memory.NewStaticQuizLoader(memory.BuiltinQuizzes()), quizTTL), closeAll, nil
	}

	pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
	if err != nil {
		return nil, closeAll, fmt.Errorf("connect postgres: %w", err)
	}
	closers = append(closers, pool.Close)
	log.Debug("loading quizzes from postgres")
	loader := pgloader.NewQuizLoader(pool)

	if cfg.Redis.Addr == "" {
		return memory.NewQuizRepository(loader, quizTTL), closeAll, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	closers = append(closers, func() { _ = client.Close() })
	log.Debug("caching quizzes in redis", zap.String("addr", cfg.Redis.Addr))
	return rediscache.NewQuizRepository(client, loader, config.TTLDuration(cfg.Redis.TTL, quizTTL)), closeAll, nil
}
