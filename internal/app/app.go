package app

import (
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	evbus "github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/gualmart/storefront/config"
	"github.com/gualmart/storefront/internal/storage"
	"github.com/gualmart/storefront/internal/store"
	"github.com/gualmart/storefront/pkg/metrics"
)

// Application wires the storefront together: record store, inventory,
// cart, event bus and housekeeping jobs.
type Application struct {
	appConfig   *config.AppConfig
	recordStore *storage.BoltStore
	bus         evbus.Bus
	inventory   *store.Inventory
	cart        *store.Cart
	sched       *cron.Cron
}

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Inventory() *store.Inventory {
	return a.inventory
}

func (a *Application) Cart() *store.Cart {
	return a.cart
}

func (a *Application) Bus() evbus.Bus {
	return a.bus
}

func (a *Application) Init() error {
	cfg := a.appConfig

	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	a.initLogger()

	if err := os.MkdirAll(cfg.System.Workdir, 0o755); err != nil {
		return err
	}

	if err := metrics.InitMetrics(cfg.System.Workdir); err != nil {
		zap.S().Warnf("failed to initialize metrics: %v", err)
	}

	dbPath := cfg.Storage.Path
	if dbPath == "" {
		dbPath = filepath.Join(cfg.System.Workdir, "storefront.db")
	}
	rs, err := storage.OpenBolt(dbPath)
	if err != nil {
		return err
	}
	a.recordStore = rs
	zap.S().Infof("record store opened at %s", dbPath)

	a.bus = evbus.New()
	a.subscribeStoreEvents()

	a.inventory = store.NewInventory(rs, a.bus)
	a.cart = store.NewCart(a.inventory, rs, a.bus)

	if err := a.inventory.Load(); err != nil {
		return err
	}
	a.inventory.SeedIfEmpty()
	if err := a.cart.Load(); err != nil {
		return err
	}

	a.initJob()
	return nil
}

func (a *Application) initLogger() {
	cfg := a.appConfig

	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
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

// subscribeStoreEvents attaches the metrics and audit listeners to the
// bookkeeping topics.
func (a *Application) subscribeStoreEvents() {
	_ = a.bus.Subscribe(store.TopicInventoryChanged, func(op, productID string) {
		metrics.Incr(metrics.MetricInventoryOps)
		zap.L().Debug("inventory changed", zap.String("op", op), zap.String("product", productID))
	})
	_ = a.bus.Subscribe(store.TopicCartChanged, func(op, productID string) {
		metrics.Incr(metrics.MetricCartOps)
		zap.L().Debug("cart changed", zap.String("op", op), zap.String("product", productID))
	})
	_ = a.bus.Subscribe(store.TopicCheckout, func(number string) {
		metrics.Incr(metrics.MetricCheckouts)
		zap.L().Info("sale committed", zap.String("invoice", number))
	})
}

// Release releases application resources.
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.recordStore != nil {
		_ = a.recordStore.Close()
	}
	_ = metrics.Close()
	_ = zap.L().Sync()
}
