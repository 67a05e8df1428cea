package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"uplinepay/internal/config"
	"uplinepay/internal/events"
	"uplinepay/internal/observability"
	"uplinepay/internal/ranks"
	"uplinepay/internal/ratelimit"
	"uplinepay/internal/store"

	activationHandler "uplinepay/internal/activation/handler"
	activationProcessor "uplinepay/internal/activation/processor"
	adminHandler "uplinepay/internal/admin/handler"
	kafkaClient "uplinepay/internal/clients/kafka"
	redisClient "uplinepay/internal/clients/redis"
	incomeProcessor "uplinepay/internal/income/processor"
	matrixHandler "uplinepay/internal/matrix/handler"
	matrixProcessor "uplinepay/internal/matrix/processor"
	membersHandler "uplinepay/internal/members/handler"
	membersProcessor "uplinepay/internal/members/processor"
	payoutsProcessor "uplinepay/internal/payouts/processor"
	ranksHandler "uplinepay/internal/ranks/handler"
	withdrawalsHandler "uplinepay/internal/withdrawals/handler"
	withdrawalsProcessor "uplinepay/internal/withdrawals/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	MembersHandler     membersHandler.Handler
	ActivationHandler  activationHandler.Handler
	WithdrawalsHandler withdrawalsHandler.Handler
	RanksHandler       ranksHandler.Handler
	MatrixHandler      matrixHandler.Handler
	AdminHandler       adminHandler.Handler

	// Processors shared with the worker entrypoint
	PayoutDrainer *payoutsProcessor.Drainer

	// Infrastructure
	RateLimiter   *ratelimit.Service
	KafkaProducer *kafkaClient.Producer
	RedisClient   *redisClient.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	st := &deps.Store

	// Audit event publisher
	deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
		Brokers: strings.Split(cfg.Kafka.Brokers, ","),
		Topic:   cfg.Kafka.Topic,
	}, logger)
	publisher := events.NewPublisher(deps.KafkaProducer, logger)

	// Rate limiter
	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	deps.RateLimiter = ratelimit.NewService(deps.RedisClient, cfg.RateLimit.RequestsPerMinute, logger)

	// Rank catalog
	rankService := ranks.New(st, logger)

	// Settlement pipeline: matrix manager feeds the payout queue, the
	// income engine fans out completed activations.
	cycleManager := matrixProcessor.New(st, publisher, cfg.Plan.ReenrollOnCycleComplete, logger)
	incomeEngine := incomeProcessor.New(st, cycleManager, publisher, cfg.Plan, logger)
	activation := activationProcessor.New(st, incomeEngine, publisher, logger)
	withdrawals := withdrawalsProcessor.New(st, publisher, cfg.Withdraw, logger)
	members := membersProcessor.New(st, logger)
	deps.PayoutDrainer = payoutsProcessor.New(st, publisher, cfg.Payouts.BatchSize, logger)

	// Handlers
	deps.MembersHandler = membersHandler.New(members, logger)
	deps.ActivationHandler = activationHandler.New(activation, logger)
	deps.WithdrawalsHandler = withdrawalsHandler.New(withdrawals, logger)
	deps.RanksHandler = ranksHandler.New(rankService, logger)
	deps.MatrixHandler = matrixHandler.New(st, logger)
	deps.AdminHandler = adminHandler.New(deps.PayoutDrainer, logger)

	return deps, nil
}

// Cleanup releases held connections.
func (d *Dependencies) Cleanup() {
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(context.Background(), "failed to close kafka producer", err)
		}
	}
	if err := d.RedisClient.Close(); err != nil {
		d.Logger.Error(context.Background(), "failed to close redis client", err)
	}
}
