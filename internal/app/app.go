package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rafflemart/internal/catalog"
	"github.com/GlebRadaev/rafflemart/internal/config"
	"github.com/GlebRadaev/rafflemart/internal/drawer"
	"github.com/GlebRadaev/rafflemart/internal/handlers"
	"github.com/GlebRadaev/rafflemart/internal/payment"
	"github.com/GlebRadaev/rafflemart/internal/pg"
	"github.com/GlebRadaev/rafflemart/internal/ratelimit"
	"github.com/GlebRadaev/rafflemart/internal/repo"
	"github.com/GlebRadaev/rafflemart/internal/service"
	"github.com/GlebRadaev/rafflemart/internal/service/checkoutservice"
	"github.com/GlebRadaev/rafflemart/pkg/auth"
	"github.com/GlebRadaev/rafflemart/pkg/clients"
	"github.com/GlebRadaev/rafflemart/pkg/clock"
	"github.com/GlebRadaev/rafflemart/pkg/logger"
)

const (
	drawWorkers        = 4
	rateLimitSweepTick = time.Minute
	paymentTimeout     = 10 * time.Second
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg    *config.Config
	api    *handlers.Handlers
	srv    *service.Services
	repo   *repo.Repositories
	drawer *drawer.Drawer
	clock  clock.Clock

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
		clock: clock.NewRealClock(),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	limiter, err := newRateLimitStore(ctx, cfg, a.clock)
	if err != nil {
		zap.L().Error("rate limiter setup failed: ", zap.Error(err))
		return fmt.Errorf("can't set up rate limiter: %w", err)
	}

	conn := pg.New(pool)
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	a.cfg = cfg
	a.repo = repo.New(conn)
	a.srv = service.New(a.repo, service.Deps{
		TXManager:  txManager,
		Catalog:    newCatalog(cfg, a.repo),
		Payments:   newPaymentClient(cfg, a.clock),
		JWTService: jwtService,
		Hasher:     auth.NewBcryptHasher(cfg.BcryptCost),
		Clock:      a.clock,
	})
	a.api = handlers.New(a.srv, handlers.Options{
		JWTService:    jwtService,
		Limiter:       limiter,
		RateLimit:     cfg.RateLimit,
		RateWindow:    cfg.RateLimitWindow,
		WebhookSecret: cfg.PaymentWebhookSecret,
		Clock:         a.clock,
	})

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startDrawer(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func newCatalog(cfg *config.Config, repos *repo.Repositories) checkoutservice.CatalogSource {
	if cfg.CatalogFile != "" {
		zap.L().Info("using file catalog", zap.String("path", cfg.CatalogFile))
		return catalog.NewFileSource(cfg.CatalogFile)
	}
	return catalog.NewDBSource(repos.ProductRepo)
}

func newPaymentClient(cfg *config.Config, clk clock.Clock) *payment.Client {
	return payment.New(payment.Config{
		URL:        cfg.PaymentAddress,
		APIKey:     cfg.PaymentAPIKey,
		Currency:   cfg.PaymentCurrency,
		SessionTTL: cfg.PaymentSessionTTL,
	}, clients.NewHTTPClient(clients.WithTimeout(paymentTimeout)), clk)
}

// newRateLimitStore returns the configured limiter backend. The in-memory
// store sweeps expired windows until ctx is done.
func newRateLimitStore(ctx context.Context, cfg *config.Config, clk clock.Clock) (ratelimit.Store, error) {
	if cfg.RateLimitBackend != config.RateLimitRedis {
		store := ratelimit.NewMemoryStore(clk)
		store.Start(ctx, rateLimitSweepTick)
		return store, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	go func() {
		<-ctx.Done()
		client.Close()
	}()
	zap.L().Info("using redis rate limiter", zap.String("addr", opts.Addr))
	return ratelimit.NewRedisStore(client, clk), nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startDrawer(ctx context.Context) {
	if a.cfg.DrawInterval <= 0 {
		zap.L().Info("scheduled draws disabled")
		return
	}

	a.drawer = drawer.New(a.srv.Draws, drawer.NewWorkerPool(drawWorkers), a.cfg.DrawInterval)
	a.drawer.Start(ctx)
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
