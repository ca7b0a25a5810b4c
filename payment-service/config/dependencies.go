package config

import (
	"context"
	"fmt"

	"github.com/flowcart/order-system/payment-service/application"
	"github.com/flowcart/order-system/payment-service/domain"
	"github.com/flowcart/order-system/payment-service/handlers"
	"github.com/flowcart/order-system/payment-service/infrastructure"
	"github.com/flowcart/order-system/shared/database"
	"github.com/flowcart/order-system/shared/events"
	"github.com/flowcart/order-system/shared/inbox"
	"github.com/flowcart/order-system/shared/outbox"
	sharedinfra "github.com/flowcart/order-system/shared/infrastructure"
	"github.com/flowcart/order-system/shared/telemetry"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

type Dependencies struct {
	// Database
	DB *sqlx.DB

	// Logging and telemetry
	Logger       *zap.Logger
	Telemetry    *telemetry.Telemetry
	EventMetrics *telemetry.EventMetrics

	// Repositories
	PaymentRepository *infrastructure.PostgresPaymentRepository

	// Use Cases
	AuthorizePayment *application.AuthorizePayment
	GetPayment       *application.GetPayment

	// HTTP Handlers
	PaymentHandlers *handlers.PaymentHandlers

	// Event Handlers
	PaymentEventHandlers *handlers.PaymentEventHandlers

	// Infrastructure
	EventPublisher  *sharedinfra.KafkaEventPublisher
	OutboxPublisher *outbox.Publisher
	OrderSubscriber *sharedinfra.KafkaEventSubscriber

	telemetryShutdown func()
}

func BuildDependencies(ctx context.Context, config *Config) (*Dependencies, error) {
	deps := &Dependencies{}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	deps.Logger = logger.With(zap.String("service", config.ServiceName))

	tel, telShutdown, err := telemetry.InitTelemetry(ctx, telemetry.NewConfigForService(
		config.ServiceName, "1.0.0", config.Telemetry.OTLPEndpoint,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to init telemetry: %w", err)
	}
	deps.Telemetry = tel
	deps.telemetryShutdown = telShutdown

	eventMetrics, err := telemetry.NewEventMetrics(tel.GetMeter())
	if err != nil {
		return nil, fmt.Errorf("failed to create event metrics: %w", err)
	}
	deps.EventMetrics = eventMetrics

	db, err := database.Connect(ctx, config.DatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	deps.DB = db

	txManager := database.NewTxManager(db)
	outboxStore := outbox.NewPostgresStore(db)
	ledger := inbox.NewPostgresLedger(db)

	deps.EventPublisher = sharedinfra.NewKafkaEventPublisher(config.Kafka.Brokers)
	deps.OutboxPublisher = outbox.NewPublisher(
		outboxStore,
		deps.EventPublisher,
		deps.Logger,
		eventMetrics,
		outbox.WithInterval(config.Outbox.PollInterval),
		outbox.WithBatchSize(config.Outbox.BatchSize),
	)

	deps.PaymentRepository = infrastructure.NewPostgresPaymentRepository(db)

	policy := domain.NewAuthorizationPolicy(config.Payment.ThresholdAmount)
	deps.AuthorizePayment = application.NewAuthorizePayment(deps.PaymentRepository, policy, outboxStore, ledger, txManager, deps.Logger)
	deps.GetPayment = application.NewGetPayment(deps.PaymentRepository)

	deps.PaymentHandlers = handlers.NewPaymentHandlers(deps.GetPayment)
	deps.PaymentEventHandlers = handlers.NewPaymentEventHandlers(deps.AuthorizePayment)

	deps.OrderSubscriber = sharedinfra.NewKafkaEventSubscriber(
		config.Kafka.Brokers,
		events.OrderEventsTopic,
		events.PaymentServiceGroup,
		deps.PaymentEventHandlers.OrderEventsHandler(),
		deps.EventPublisher,
		deps.Logger,
		eventMetrics,
		sharedinfra.WithMaxAttempts(config.Consumer.MaxAttempts),
		sharedinfra.WithRetryDelay(config.Consumer.RetryDelay),
	)

	return deps, nil
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	var errs []error

	if d.OrderSubscriber != nil {
		if err := d.OrderSubscriber.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close order subscriber: %w", err))
		}
	}

	if d.EventPublisher != nil {
		if err := d.EventPublisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event publisher: %w", err))
		}
	}

	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if d.telemetryShutdown != nil {
		d.telemetryShutdown()
	}

	if d.Logger != nil {
		d.Logger.Sync()
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing dependencies: %v", errs)
	}

	return nil
}
