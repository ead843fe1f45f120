package app

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"go.uber.org/zap"

	"github.com/gualmart/storefront/pkg/metrics"
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc))

	var err error
	_, err = a.sched.AddFunc("@every 30s", func() {
		go a.SchedSystemMonitorTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	_, err = a.sched.AddFunc("@every 5m", func() {
		a.SchedStockSummaryTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedSystemMonitorTask samples host CPU and memory usage into metrics.
func (a *Application) SchedSystemMonitorTask() {
	percents, err := cpu.Percent(time.Second, false)
	if err == nil && len(percents) > 0 {
		metrics.Record(metrics.MetricCPUUse, percents[0])
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		metrics.Record(metrics.MetricMemUse, vm.UsedPercent)
	}
}

// SchedStockSummaryTask logs a periodic snapshot of inventory and cart
// activity for operators watching the demo.
func (a *Application) SchedStockSummaryTask() {
	totalStock := 0
	for _, p := range a.inventory.GetAll() {
		totalStock += p.Stock
	}
	since := time.Now().Add(-5 * time.Minute)
	zap.L().Info("stock summary",
		zap.Int("total_stock", totalStock),
		zap.Int("reserved_in_cart", a.cart.Count()),
		zap.Int("cart_ops_5m", metrics.CountSince(metrics.MetricCartOps, since)),
		zap.Int("checkouts_5m", metrics.CountSince(metrics.MetricCheckouts, since)))
}
