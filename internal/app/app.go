package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	config "github.com/stalprokat/catalog-backend/internal/cfg"
	v1Http "github.com/stalprokat/catalog-backend/internal/delivery/v1/http"
	"github.com/stalprokat/catalog-backend/internal/infrastructure/kafka"
	minioInfra "github.com/stalprokat/catalog-backend/internal/infrastructure/minio"
	s3Repo "github.com/stalprokat/catalog-backend/internal/repository/minio"
	"github.com/stalprokat/catalog-backend/internal/repository/pgdb"
	pgdbConv "github.com/stalprokat/catalog-backend/internal/repository/pgdb/converter/generated"
	"github.com/stalprokat/catalog-backend/internal/repository/redis"
	redisConv "github.com/stalprokat/catalog-backend/internal/repository/redis/converter/generated"
	"github.com/stalprokat/catalog-backend/internal/usecase"
	"github.com/stalprokat/catalog-backend/pkg/clients"
	"github.com/stalprokat/catalog-backend/pkg/closer"
	"github.com/stalprokat/catalog-backend/pkg/e"
	"github.com/stalprokat/catalog-backend/pkg/logger"
	"github.com/stalprokat/catalog-backend/pkg/postgres"
)

// App связывает все слои приложения и управляет их жизненным циклом.
type App struct {
	cfg    *config.Config
	logger logger.Logger

	httpSrv      *v1Http.Server
	outboxWorker *kafka.OutboxWorker
	imagesInfra  *minioInfra.MinioInfrastructure
	closer       *closer.Closer

	workerCancel context.CancelFunc
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	appCloser := closer.NewCloser(2 * time.Second)

	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	appCloser.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	catConv := pgdbConv.NewCategoryConverterImpl()
	prConv := pgdbConv.NewProductConverterImpl()
	svcConv := pgdbConv.NewServiceConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	cardConv := redisConv.NewProductCardConverterImpl()

	categoryRepo := pgdb.NewCategoryRepo(db.Pool, catConv)
	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	serviceRepo := pgdb.NewServiceRepo(db.Pool, svcConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	minioCancel()

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	appCloser.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	cacheRepo := redis.NewCacheRepo(redisClient, cardConv, cfg.Redis, log)

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	appCloser.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	// Контекст фоновой зачистки изображений живёт до остановки приложения.
	workerCtx, workerCancel := context.WithCancel(context.Background())
	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, log, workerCtx)

	outboxWorker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)
	outboxWorker.Start(workerCtx)
	appCloser.Add(func(ctx context.Context) error {
		outboxWorker.Stop()
		return nil
	})

	catalogUC := usecase.NewCatalogUC(categoryRepo, productRepo, serviceRepo, cacheRepo, log)
	searchUC := usecase.NewSearchUC(productRepo, categoryRepo, log)
	adminUC := usecase.NewAdminUC(categoryRepo, productRepo, serviceRepo, outboxRepo,
		cacheRepo, imagesInfra, db.Pool, log)

	renderer, err := v1Http.NewRenderer(cfg.Minio.PublicBaseURL, log)
	if err != nil {
		workerCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, renderer, log)
	router.Init(catalogUC, searchUC, adminUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	return &App{
		cfg:          cfg,
		logger:       log,
		httpSrv:      httpSrv,
		outboxWorker: outboxWorker,
		imagesInfra:  imagesInfra,
		closer:       appCloser,
		workerCancel: workerCancel,
	}, nil
}

func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	if err := a.imagesInfra.WaitForCleanup(shutdownCtx); err != nil {
		a.logger.Warnf("MinIO cleanup error: %v", err)
	} else {
		a.logger.Infof("MinIO cleanup completed")
	}

	a.workerCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("%v", err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
