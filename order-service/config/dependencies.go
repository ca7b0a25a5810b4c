package config

import (
	"context"
	"fmt"

	"github.com/flowcart/order-system/order-service/application"
	"github.com/flowcart/order-system/order-service/handlers"
	"github.com/flowcart/order-system/order-service/infrastructure"
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
	OrderRepository *infrastructure.PostgresOrderRepository

	// Use Cases
	CreateOrder            *application.CreateOrder
	GetOrder               *application.GetOrder
	ListOrders             *application.ListOrders
	ProcessInventoryStatus *application.ProcessInventoryStatus
	ProcessPaymentStatus   *application.ProcessPaymentStatus

	// HTTP Handlers
	OrderHandlers *handlers.OrderHandlers

	// Event Handlers
	SagaEventHandlers *handlers.SagaEventHandlers

	// Infrastructure
	EventPublisher      *sharedinfra.KafkaEventPublisher
	OutboxPublisher     *outbox.Publisher
	InventorySubscriber *sharedinfra.KafkaEventSubscriber
	PaymentSubscriber   *sharedinfra.KafkaEventSubscriber

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

	deps.OrderRepository = infrastructure.NewPostgresOrderRepository(db)

	deps.CreateOrder = application.NewCreateOrder(deps.OrderRepository, outboxStore, txManager)
	deps.GetOrder = application.NewGetOrder(deps.OrderRepository)
	deps.ListOrders = application.NewListOrders(deps.OrderRepository)
	deps.ProcessInventoryStatus = application.NewProcessInventoryStatus(deps.OrderRepository, ledger, txManager, deps.Logger)
	deps.ProcessPaymentStatus = application.NewProcessPaymentStatus(deps.OrderRepository, ledger, txManager, deps.Logger)

	deps.OrderHandlers = handlers.NewOrderHandlers(deps.CreateOrder, deps.GetOrder, deps.ListOrders)
	deps.SagaEventHandlers = handlers.NewSagaEventHandlers(deps.ProcessInventoryStatus, deps.ProcessPaymentStatus)

	deps.InventorySubscriber = sharedinfra.NewKafkaEventSubscriber(
		config.Kafka.Brokers,
		events.InventoryEventsTopic,
		events.OrderServiceInventoryGroup,
		deps.SagaEventHandlers.InventoryStatusHandler(),
		deps.EventPublisher,
		deps.Logger,
		eventMetrics,
		sharedinfra.WithMaxAttempts(config.Consumer.MaxAttempts),
		sharedinfra.WithRetryDelay(config.Consumer.RetryDelay),
	)
	deps.PaymentSubscriber = sharedinfra.NewKafkaEventSubscriber(
		config.Kafka.Brokers,
		events.PaymentEventsTopic,
		events.OrderServicePaymentGroup,
		deps.SagaEventHandlers.PaymentStatusHandler(),
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

	if d.InventorySubscriber != nil {
		if err := d.InventorySubscriber.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close inventory subscriber: %w", err))
		}
	}

	if d.PaymentSubscriber != nil {
		if err := d.PaymentSubscriber.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close payment subscriber: %w", err))
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
