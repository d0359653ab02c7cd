//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	mailerGateway "dispatch/internal/gateway/mailer"
	pushGateway "dispatch/internal/gateway/push"
	"dispatch/internal/handlers/rest/dispatch_post"
	"dispatch/internal/handlers/rest/driver_get"
	"dispatch/internal/handlers/rest/driver_post"
	"dispatch/internal/handlers/rest/driver_put"
	"dispatch/internal/handlers/rest/drivers_get"
	"dispatch/internal/handlers/rest/location_put"
	"dispatch/internal/handlers/rest/offer_accept_post"
	"dispatch/internal/handlers/rest/offer_decline_post"
	"dispatch/internal/handlers/rest/order_get"
	"dispatch/internal/handlers/rest/queue_maintenance_post"
	"dispatch/internal/handlers/rest/waitlist_post"
	"dispatch/internal/handlers/tasks/offer_sweep"
	"dispatch/internal/handlers/tasks/queue_maintenance"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/offer_score"
	"dispatch/internal/pkg/factory/order_handle"
	"dispatch/internal/pkg/factory/queue_score"

	driverRepo "dispatch/internal/repository/driver"
	locationRepo "dispatch/internal/repository/location"
	offerRepo "dispatch/internal/repository/offer"
	orderRepo "dispatch/internal/repository/order"
	regionRepo "dispatch/internal/repository/region"
	waitlistRepo "dispatch/internal/repository/waitlist"
	dispatchService "dispatch/internal/service/dispatch"
	driverService "dispatch/internal/service/driver"
	orderService "dispatch/internal/service/order"
	queueService "dispatch/internal/service/queue"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type (
	OfferSweepInterval       time.Duration
	QueueMaintenanceInterval time.Duration
)

type Application struct {
	ServiceDriver     ServiceDriver
	ServiceDispatch   ServiceDispatch
	ServiceOrder      ServiceOrder
	ServiceQueue      ServiceQueue
	BackgroundWorkers *background.Worker
}

type ServiceDriver interface {
	driver_get.Service
	driver_post.Service
	driver_put.Service
	drivers_get.Service
	location_put.Service
}

type ServiceDispatch interface {
	dispatch_post.Service
	offer_accept_post.Service
	offer_decline_post.Service
}

type ServiceOrder interface {
	order_get.Service
}

type ServiceQueue interface {
	waitlist_post.Service
	queue_maintenance_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideOfferSweepInterval,
		provideQueueMaintenanceInterval,

		provideOrderRepository,
		provideOfferRepository,
		provideDriverRepository,
		provideWaitlistRepository,
		provideRegionRepository,
		provideLocationStore,

		providePushGateway,
		provideMailerGateway,

		offer_score.New,
		queue_score.New,
		provideDispatchConfig,
		provideQueueConfig,

		provideServiceDriver,
		provideServiceDispatch,
		provideStatusHandlerFactory,
		provideServiceOrder,
		provideServiceQueue,

		provideOfferSweepTask,
		provideQueueMaintenanceTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDriver), new(*driverService.Driver)),
		wire.Bind(new(ServiceDispatch), new(*dispatchService.Dispatch)),
		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceQueue), new(*queueService.Queue)),

		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),
		wire.Bind(new(driverService.LocationStore), new(*locationRepo.Store)),
		wire.Bind(new(driverService.TxManager), new(*tx.Manager)),

		wire.Bind(new(dispatchService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(dispatchService.OfferRepository), new(*offerRepo.Repository)),
		wire.Bind(new(dispatchService.DriverService), new(*driverService.Driver)),
		wire.Bind(new(dispatchService.LocationStore), new(*locationRepo.Store)),
		wire.Bind(new(dispatchService.ScoreFactory), new(*offer_score.ScoreFactory)),
		wire.Bind(new(dispatchService.OfferPusher), new(*pushGateway.Gateway)),
		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.OfferRepository), new(*offerRepo.Repository)),
		wire.Bind(new(orderService.DispatchService), new(*dispatchService.Dispatch)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.HandlerFactory), new(*order_handle.StatusHandlerFactory)),

		wire.Bind(new(queueService.WaitlistRepository), new(*waitlistRepo.Repository)),
		wire.Bind(new(queueService.BatchLocker), new(*waitlistRepo.Repository)),
		wire.Bind(new(queueService.RegionRepository), new(*regionRepo.Repository)),
		wire.Bind(new(queueService.Mailer), new(*mailerGateway.Gateway)),
		wire.Bind(new(queueService.ScoreFactory), new(*queue_score.ScoreFactory)),
		wire.Bind(new(queueService.TxManager), new(*tx.Manager)),

		wire.Bind(new(offer_sweep.Service), new(*dispatchService.Dispatch)),
		wire.Bind(new(queue_maintenance.Service), new(*queueService.Queue)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideOfferRepository,
		provideDriverRepository,
		provideLocationStore,

		providePushGateway,

		offer_score.New,
		provideDispatchConfig,

		provideServiceDriver,
		provideServiceDispatch,
		provideStatusHandlerFactory,
		provideServiceOrder,

		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),
		wire.Bind(new(driverService.LocationStore), new(*locationRepo.Store)),
		wire.Bind(new(driverService.TxManager), new(*tx.Manager)),

		wire.Bind(new(dispatchService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(dispatchService.OfferRepository), new(*offerRepo.Repository)),
		wire.Bind(new(dispatchService.DriverService), new(*driverService.Driver)),
		wire.Bind(new(dispatchService.LocationStore), new(*locationRepo.Store)),
		wire.Bind(new(dispatchService.ScoreFactory), new(*offer_score.ScoreFactory)),
		wire.Bind(new(dispatchService.OfferPusher), new(*pushGateway.Gateway)),
		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.OfferRepository), new(*offerRepo.Repository)),
		wire.Bind(new(orderService.DispatchService), new(*dispatchService.Dispatch)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.HandlerFactory), new(*order_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideOfferRepository(querier *querier.Querier) *offerRepo.Repository {
	return offerRepo.New(querier)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideWaitlistRepository(querier *querier.Querier) *waitlistRepo.Repository {
	return waitlistRepo.New(querier)
}

func provideRegionRepository(querier *querier.Querier) *regionRepo.Repository {
	return regionRepo.New(querier)
}

func provideLocationStore(redisClient *redis.Client, cfg *config.Config) *locationRepo.Store {
	return locationRepo.New(redisClient, cfg.Dispatch.LocationStaleAfter)
}

func providePushGateway(redisClient *redis.Client, cfg *config.Config) *pushGateway.Gateway {
	return pushGateway.New(redisClient, cfg.Dispatch.AvgSpeedKmh)
}

func provideMailerGateway(
	producer sarama.SyncProducer,
	pusher *pushGateway.Gateway,
	cfg *config.Config,
) *mailerGateway.Gateway {
	return mailerGateway.New(producer, pusher, cfg.Kafka.NotificationsTopic, cfg.Queue.ActivationLink)
}

func provideDispatchConfig(cfg *config.Config) dispatchService.Config {
	return dispatchService.Config{
		RadiusKm:    cfg.Dispatch.RadiusKm,
		OfferTTL:    cfg.Dispatch.OfferTTL,
		MaxAttempts: cfg.Dispatch.MaxAttempts,
	}
}

func provideQueueConfig(cfg *config.Config) queueService.Config {
	return queueService.Config{
		CapacityThreshold: cfg.Queue.UtilizationThreshold,
		InvitationTTL:     cfg.Queue.InvitationTTL,
		PromotionCooldown: cfg.Queue.PromotionCooldown,
	}
}

func provideServiceDriver(
	repository driverService.Repository,
	locations driverService.LocationStore,
	txManager driverService.TxManager,
) *driverService.Driver {
	return driverService.New(repository, locations, txManager)
}

func provideServiceDispatch(
	orders dispatchService.OrderRepository,
	offers dispatchService.OfferRepository,
	drivers dispatchService.DriverService,
	locations dispatchService.LocationStore,
	scoreFactory dispatchService.ScoreFactory,
	pusher dispatchService.OfferPusher,
	txManager dispatchService.TxManager,
	log logger.Logger,
	dispatchConfig dispatchService.Config,
) *dispatchService.Dispatch {
	return dispatchService.New(
		orders,
		offers,
		drivers,
		locations,
		scoreFactory,
		pusher,
		txManager,
		log,
		dispatchConfig,
	)
}

func provideStatusHandlerFactory(
	orders orderService.Repository,
	offers orderService.OfferRepository,
	dispatcher orderService.DispatchService,
	txManager orderService.TxManager,
) *order_handle.StatusHandlerFactory {
	return order_handle.NewStatusHandlerFactory(orders, offers, dispatcher, txManager)
}

func provideServiceOrder(
	repository orderService.Repository,
	handlerFactory orderService.HandlerFactory,
) *orderService.Service {
	return orderService.New(repository, handlerFactory)
}

func provideServiceQueue(
	waitlist queueService.WaitlistRepository,
	regions queueService.RegionRepository,
	locker queueService.BatchLocker,
	mailer queueService.Mailer,
	scoreFactory queueService.ScoreFactory,
	txManager queueService.TxManager,
	log logger.Logger,
	queueConfig queueService.Config,
) *queueService.Queue {
	return queueService.New(
		waitlist,
		regions,
		locker,
		mailer,
		scoreFactory,
		txManager,
		log,
		queueConfig,
	)
}

func provideOfferSweepInterval(cfg *config.Config) OfferSweepInterval {
	return OfferSweepInterval(cfg.Tasks.OfferSweepInterval)
}

func provideQueueMaintenanceInterval(cfg *config.Config) QueueMaintenanceInterval {
	return QueueMaintenanceInterval(cfg.Tasks.QueueMaintenanceInterval)
}

func provideOfferSweepTask(
	log logger.Logger,
	dispatchSvc offer_sweep.Service,
	interval OfferSweepInterval,
) *offer_sweep.OfferSweep {
	return offer_sweep.NewOfferSweep(log, dispatchSvc, time.Duration(interval))
}

func provideQueueMaintenanceTask(
	log logger.Logger,
	queueSvc queue_maintenance.Service,
	interval QueueMaintenanceInterval,
) *queue_maintenance.QueueMaintenance {
	return queue_maintenance.NewQueueMaintenance(log, queueSvc, time.Duration(interval))
}

func provideTaskList(
	offerSweepTask *offer_sweep.OfferSweep,
	queueMaintenanceTask *queue_maintenance.QueueMaintenance,
) []background.Task {
	return []background.Task{
		offerSweepTask,
		queueMaintenanceTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
