package cmd

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"gorm.io/gorm"

	apphttp "github.com/hmucanze19/algafood-api/internal/adapters/in/http"
	"github.com/hmucanze19/algafood-api/internal/adapters/out/filestorage"
	"github.com/hmucanze19/algafood-api/internal/adapters/out/kafka"
	"github.com/hmucanze19/algafood-api/internal/adapters/out/notification"
	"github.com/hmucanze19/algafood-api/internal/adapters/out/postgres"
	"github.com/hmucanze19/algafood-api/internal/adapters/out/postgres/accountrepo"
	"github.com/hmucanze19/algafood-api/internal/adapters/out/postgres/restaurantrepo"
	"github.com/hmucanze19/algafood-api/internal/adapters/out/rediscache"
	"github.com/hmucanze19/algafood-api/internal/core/application/usecases/commands"
	"github.com/hmucanze19/algafood-api/internal/core/application/usecases/queries"
	"github.com/hmucanze19/algafood-api/internal/core/domain/model/order"
	"github.com/hmucanze19/algafood-api/internal/core/domain/model/payment"
	"github.com/hmucanze19/algafood-api/internal/core/ports"
	"github.com/hmucanze19/algafood-api/internal/jobs"
)

// defaultPaymentMethods seeds the reference table on first start.
var defaultPaymentMethods = []string{"Credit card", "Debit card", "Cash"}

// CompositionRoot wires every adapter and use case together. It is built
// once at startup; all dependencies flow from here through constructors.
type CompositionRoot struct {
	config       Config
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	publisher    ports.EventPublisher
	users        *accountrepo.GormUserRepository
	photoStorage ports.PhotoStorage
	logger       *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	users := accountrepo.NewGormUserRepository(gormDB, noopAggregateTracker{})

	kafkaPublisher := kafka.NewPublisher(&kafkago.Writer{
		Addr:     kafkago.TCP(configs.KafkaHost),
		Topic:    configs.KafkaOrderEventsTopic,
		Balancer: &kafkago.LeastBytes{},
	})

	var sender notification.Sender
	if configs.EmailImpl == "SMTP" {
		sender = notification.NewSMTPSender(
			configs.SMTPHost, configs.SMTPPort,
			configs.SMTPUsername, configs.SMTPPassword, configs.EmailFrom,
		)
	} else {
		sender = notification.NewFakeSender(logger)
	}
	notifier := notification.NewOrderNotifier(sender, users)

	return CompositionRoot{
		config:       configs,
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:    FanOutPublisher{kafkaPublisher, notifier},
		users:        users,
		photoStorage: filestorage.NewLocalPhotoStorage(configs.PhotoStorageDir),
		logger:       logger,
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlacementUoWFactory = FuncPlacementUoWFactory(func() commands.PlacementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateExpireStaleOrdersCommandHandler() commands.ExpireStaleOrdersCommandHandler {
	return commands.NewExpireStaleOrdersCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRestaurantCommandHandler(f)
}

func (c *CompositionRoot) CreateSetRestaurantActivationCommandHandler() commands.SetRestaurantActivationCommandHandler {
	return commands.NewSetRestaurantActivationCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateSetRestaurantOpeningCommandHandler() commands.SetRestaurantOpeningCommandHandler {
	return commands.NewSetRestaurantOpeningCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateAddProductCommandHandler() commands.AddProductCommandHandler {
	return commands.NewAddProductCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateSetProductPhotoCommandHandler() commands.SetProductPhotoCommandHandler {
	var f commands.PhotoUoWFactory = FuncPhotoUoWFactory(func() commands.PhotoUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetProductPhotoCommandHandler(f, c.photoStorage)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByCodeQueryHandler() queries.GetOrderByCodeQueryHandler {
	return queries.NewGetOrderByCodeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantsQueryHandler() queries.GetRestaurantsQueryHandler {
	return queries.NewGetRestaurantsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantMenuQueryHandler() queries.GetRestaurantMenuQueryHandler {
	client := redis.NewClient(&redis.Options{Addr: c.config.RedisHost})
	cache := rediscache.NewMenuCache(client, c.config.MenuCacheTTL)
	return queries.NewGetRestaurantMenuQueryHandler(c.gormDB, cache, c.logger)
}

func (c *CompositionRoot) CreateGetPaymentMethodsQueryHandler() queries.GetPaymentMethodsQueryHandler {
	return queries.NewGetPaymentMethodsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductPhotoQueryHandler() queries.GetProductPhotoQueryHandler {
	return queries.NewGetProductPhotoQueryHandler(restaurantrepo.NewGormProductPhotoRepository(c.gormDB))
}

// CreateServer builds the HTTP server with every handler wired in.
func (c *CompositionRoot) CreateServer() *apphttp.Server {
	return apphttp.NewServer(apphttp.ServerDeps{
		PlaceOrder:           c.CreatePlaceOrderCommandHandler(),
		ConfirmOrder:         c.CreateConfirmOrderCommandHandler(),
		CancelOrder:          c.CreateCancelOrderCommandHandler(),
		DeliverOrder:         c.CreateDeliverOrderCommandHandler(),
		CreateRestaurant:     c.CreateCreateRestaurantCommandHandler(),
		SetRestaurantActive:  c.CreateSetRestaurantActivationCommandHandler(),
		SetRestaurantOpening: c.CreateSetRestaurantOpeningCommandHandler(),
		AddProduct:           c.CreateAddProductCommandHandler(),
		SetProductPhoto:      c.CreateSetProductPhotoCommandHandler(),
		RegisterUser:         c.CreateRegisterUserCommandHandler(),

		GetOrders:         c.CreateGetOrdersQueryHandler(),
		GetOrderByCode:    c.CreateGetOrderByCodeQueryHandler(),
		GetRestaurants:    c.CreateGetRestaurantsQueryHandler(),
		GetRestaurantMenu: c.CreateGetRestaurantMenuQueryHandler(),
		GetPaymentMethods: c.CreateGetPaymentMethodsQueryHandler(),
		GetProductPhoto:   c.CreateGetProductPhotoQueryHandler(),

		Users: c.users,

		PhotoStorage: c.photoStorage,

		JWTSecret:       c.config.JWTSecret,
		JWTTTL:          c.config.JWTTTL,
		TrackingBaseURL: c.config.TrackingBaseURL,
	})
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExpireStaleOrdersCommandHandler(),
		c.config.OrderExpirationTTL,
		c.logger,
	)
}

// SeedPaymentMethods inserts the default payment methods when the table is
// empty. Safe to run on every start.
func (c *CompositionRoot) SeedPaymentMethods(ctx context.Context) error {
	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PaymentMethodRepository()
	existing, err := repo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, description := range defaultPaymentMethods {
		method, err := payment.NewMethod(description)
		if err != nil {
			return err
		}
		if err := repo.Add(ctx, method); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) restaurantUoWFactory() commands.RestaurantUoWFactory {
	return FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
}

// FanOutPublisher delivers every event batch to each sink in order. All
// sinks are attempted even when one fails; failures are joined.
type FanOutPublisher []ports.EventPublisher

func (p FanOutPublisher) Publish(ctx context.Context, events []order.Event) error {
	var failures []error
	for _, sink := range p {
		if err := sink.Publish(ctx, events); err != nil {
			failures = append(failures, err)
		}
	}
	return errors.Join(failures...)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPlacementUoWFactory func() commands.PlacementUoW

func (f FuncPlacementUoWFactory) Create() commands.PlacementUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncPhotoUoWFactory func() commands.PhotoUoW

func (f FuncPhotoUoWFactory) Create() commands.PhotoUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

// noopAggregateTracker satisfies the repository tracker dependency for
// repositories used outside a unit of work.
type noopAggregateTracker struct{}

func (noopAggregateTracker) TrackAggregate(int64, any) {}
