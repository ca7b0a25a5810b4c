package config

import (
	"context"
	"fmt"

	"github.com/flowcart/order-system/inventory-service/application"
	"github.com/flowcart/order-system/inventory-service/handlers"
	"github.com/flowcart/order-system/inventory-service/infrastructure"
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
	InventoryRepository *infrastructure.PostgresInventoryRepository

	// Use Cases
	ReserveStock *application.ReserveStock
	SetInventory *application.SetInventory
	GetInventory *application.GetInventory

	// HTTP Handlers
	InventoryHandlers *handlers.InventoryHandlers

	// Event Handlers
	InventoryEventHandlers *handlers.InventoryEventHandlers

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

	deps.InventoryRepository = infrastructure.NewPostgresInventoryRepository(db)

	deps.ReserveStock = application.NewReserveStock(deps.InventoryRepository, outboxStore, ledger, txManager, deps.Logger)
	deps.SetInventory = application.NewSetInventory(deps.InventoryRepository, txManager)
	deps.GetInventory = application.NewGetInventory(deps.InventoryRepository)

	deps.InventoryHandlers = handlers.NewInventoryHandlers(deps.SetInventory, deps.GetInventory)
	deps.InventoryEventHandlers = handlers.NewInventoryEventHandlers(deps.ReserveStock)

	deps.OrderSubscriber = sharedinfra.NewKafkaEventSubscriber(
		config.Kafka.Brokers,
		events.OrderEventsTopic,
		events.InventoryOrdersGroup,
		deps.InventoryEventHandlers.OrderEventsHandler(),
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
