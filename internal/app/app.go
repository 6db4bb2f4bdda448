// Package app wires the application together: configuration, logging, the
// folder-backed repositories, the session stores and the scheduler.
package app

import (
	"os"

	"github.com/gorilla/sessions"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/gi-os/ShopTemplateSystem/config"
	"github.com/gi-os/ShopTemplateSystem/internal/access"
	"github.com/gi-os/ShopTemplateSystem/internal/cart"
	"github.com/gi-os/ShopTemplateSystem/internal/catalog"
	"github.com/gi-os/ShopTemplateSystem/internal/design"
	"github.com/gi-os/ShopTemplateSystem/internal/orders"
)

type Application struct {
	appConfig *config.AppConfig
	sched     *cron.Cron

	catalogRepo *catalog.Repository
	designRepo  *design.Repository
	orderStore  *orders.Store
	cartStore   cart.Store
	gate        *access.Gate
}

// Ensure Application implements all provider interfaces
var (
	_ ConfigProvider  = (*Application)(nil)
	_ CatalogProvider = (*Application)(nil)
	_ DesignProvider  = (*Application)(nil)
	_ OrdersProvider  = (*Application)(nil)
	_ CartProvider    = (*Application)(nil)
	_ AccessProvider  = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig    { return a.appConfig }
func (a *Application) Catalog() *catalog.Repository { return a.catalogRepo }
func (a *Application) Design() *design.Repository   { return a.designRepo }
func (a *Application) Orders() *orders.Store        { return a.orderStore }
func (a *Application) Cart() cart.Store             { return a.cartStore }
func (a *Application) Gate() *access.Gate           { return a.gate }
func (a *Application) Scheduler() *cron.Cron        { return a.sched }

// Init builds the logger and every store. It returns an error only for
// conditions the process cannot run without; the repositories never fail at
// construction because they are plain directory readers.
func (a *Application) Init() error {
	cfg := a.appConfig
	initLogger(cfg.Logger)

	dataDir := cfg.System.DataDir
	if _, err := os.Stat(dataDir); err != nil {
		// Not fatal: an empty tree serves an empty storefront with design
		// defaults.
		zap.S().Warnf("data directory %s not readable: %v", dataDir, err)
	}

	a.catalogRepo = catalog.NewRepository(dataDir)
	a.designRepo = design.NewRepository(dataDir)

	store, err := orders.NewStore(dataDir, cfg.Shop.FreightCarrier)
	if err != nil {
		return err
	}
	a.orderStore = store

	cookieStore := sessions.NewCookieStore([]byte(cfg.Web.Secret))
	cookieStore.Options.HttpOnly = true
	cookieStore.Options.Path = "/"
	a.cartStore = cart.NewSessionStore(cookieStore)
	a.gate = access.NewGate(a.designRepo, cookieStore)

	a.sched = cron.New()
	a.initJobs()
	a.sched.Start()

	return nil
}

// Shutdown stops background work.
func (a *Application) Shutdown() {
	if a.sched != nil {
		a.sched.Stop()
	}
	_ = zap.L().Sync()
}

func initLogger(cfg config.LoggerConfig) {
	var zapConfig zap.Config
	if cfg.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	var logger *zap.Logger
	if cfg.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}
		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller())
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller())
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}
