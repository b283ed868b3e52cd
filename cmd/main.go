package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/supermall/docs"
	"github.com/SergeyBogomolovv/supermall/internal/app"
	"github.com/SergeyBogomolovv/supermall/internal/auth"
	"github.com/SergeyBogomolovv/supermall/internal/broker"
	"github.com/SergeyBogomolovv/supermall/internal/config"
	"github.com/SergeyBogomolovv/supermall/internal/gateway"
	"github.com/SergeyBogomolovv/supermall/internal/handler"
	"github.com/SergeyBogomolovv/supermall/internal/middleware"
	"github.com/SergeyBogomolovv/supermall/internal/postgres"
	"github.com/SergeyBogomolovv/supermall/internal/repo"
	"github.com/SergeyBogomolovv/supermall/internal/service"
	"github.com/SergeyBogomolovv/supermall/pkg/ratelimit"
	"github.com/SergeyBogomolovv/supermall/pkg/trm"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stripe/stripe-go/v76"
)

// @title                       Supermall API
// @version                     1.0
// @description                 Multi-vendor marketplace: carts, orders and Stripe payments
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to migrate db", postgres.Migrate(ctx, db))

	txManager := trm.NewManager(db)
	cartRepo := repo.NewCartRepo(db)
	productRepo := repo.NewProductRepo(db)
	orderRepo := repo.NewOrderRepo(db)
	userRepo := repo.NewUserRepo(db)

	tokens := auth.NewTokens(conf.Auth)
	stripeGateway := gateway.NewStripe(conf.Stripe, newStripeBackends(logger))

	var events interface {
		service.EventPublisher
		handler.EventRequeuer
		Close() error
	} = broker.Noop{}
	if conf.Kafka.Enabled() {
		events = broker.NewPublisher(conf.Kafka)
		logger.Info("kafka publisher enabled", slog.Any("brokers", conf.Kafka.Brokers))
	} else {
		logger.Warn("kafka brokers not configured, order events are not published")
	}

	apiLimiter, authLimiter, limiterClosers := newLimiters(conf)

	cartService := service.NewCartService(logger, cartRepo, productRepo)
	orderService := service.NewOrderService(logger, txManager, orderRepo, stripeGateway, events)
	authService := service.NewAuthService(logger, userRepo, tokens, conf.Auth)

	authenticate := middleware.Authenticate(tokens)
	authLimit := middleware.RateLimit(logger, authLimiter, middleware.RateLimitClassAuth)
	apiLimit := middleware.RateLimit(logger, apiLimiter, middleware.RateLimitClassAPI)

	handler.RegisterMetrics()

	app := app.New(logger, conf, apiLimit)

	app.SetHTTPHandlers(
		handler.NewAuthHandler(logger, authService, authLimit),
		handler.NewCartHandler(logger, cartService, authenticate),
		handler.NewOrderHandler(logger, orderService, authenticate),
		handler.NewPaymentHandler(logger, orderService, stripeGateway, events, authenticate),
	)
	if conf.Kafka.Enabled() {
		app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, orderService))
	}
	app.SetStarters(starters(apiLimiter, authLimiter)...)
	app.SetClosers(append(limiterClosers, events)...)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

func newLimiters(conf config.Config) (api, auth ratelimit.Limiter, closers []app.Closer) {
	rl := conf.RateLimit
	if rl.Store == "redis" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     conf.Redis.Addr,
			Password: conf.Redis.Password,
			DB:       conf.Redis.DB,
		})
		api = ratelimit.NewRedisLimiter(rdb, "ratelimit:api", rl.APIRequests, rl.Window)
		auth = ratelimit.NewRedisLimiter(rdb, "ratelimit:auth", rl.AuthRequests, rl.Window)
		return api, auth, []app.Closer{rdb}
	}
	api = ratelimit.NewMemoryLimiter(rl.APIRequests, rl.Window, rl.Capacity)
	auth = ratelimit.NewMemoryLimiter(rl.AuthRequests, rl.Window, rl.Capacity)
	return api, auth, nil
}

// starters picks the limiters that run a janitor.
func starters(limiters ...ratelimit.Limiter) []app.Starter {
	var out []app.Starter
	for _, l := range limiters {
		if s, ok := l.(app.Starter); ok {
			out = append(out, s)
		}
	}
	return out
}

func newStripeBackends(logger *slog.Logger) *stripe.Backends {
	cfg := &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(2),
		LeveledLogger:     stripeLogger{logger.With(slog.String("component", "stripe"))},
	}
	return &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, cfg),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, cfg),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, cfg),
	}
}

// stripeLogger routes stripe-go logs through slog.
type stripeLogger struct {
	logger *slog.Logger
}

func (l stripeLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}

func (l stripeLogger) Infof(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

func (l stripeLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, v...))
}

func (l stripeLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}
