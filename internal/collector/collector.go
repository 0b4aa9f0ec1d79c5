// Package collector exports the state of the control loop as Prometheus metrics.
package collector

import (
	"context"
	"log/slog"
	"sync"

	"github.com/acpilot/acpilot/internal/controller"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	roomTemperature = prometheus.NewDesc(
		prometheus.BuildFQName("acpilot", "room", "temperature_celsius"),
		"Last valid room temperature reading",
		nil,
		nil,
	)
	activeRule = prometheus.NewDesc(
		prometheus.BuildFQName("acpilot", "rule", "active"),
		"ID of the active rule. -1 if no rule is active",
		nil,
		nil,
	)
	acPower = prometheus.NewDesc(
		prometheus.BuildFQName("acpilot", "ac", "power"),
		"AC power state. 1 if the AC is on",
		nil,
		nil,
	)
	acTargetTemperature = prometheus.NewDesc(
		prometheus.BuildFQName("acpilot", "ac", "target_temperature_celsius"),
		"Target temperature sent to the AC",
		nil,
		nil,
	)
	acSettings = prometheus.NewDesc(
		prometheus.BuildFQName("acpilot", "ac", "settings"),
		"AC settings. Always 1. Labels specify the settings",
		[]string{"mode", "fan", "vswing", "hswing"},
		nil,
	)
	cycles = prometheus.NewDesc(
		prometheus.BuildFQName("acpilot", "controller", "cycles_total"),
		"Number of control cycles, by outcome",
		[]string{"action"},
		nil,
	)
)

type Publisher interface {
	Subscribe() chan controller.Report
	Unsubscribe(chan controller.Report)
}

var _ prometheus.Collector = &Collector{}

type Collector struct {
	Publisher   Publisher
	Logger      *slog.Logger
	lock        sync.RWMutex
	lastReport  *controller.Report
	temperature *float64
	applied     *controller.Report
	counts      map[controller.Action]int
}

func (c *Collector) Run(ctx context.Context) error {
	c.Logger.Debug("started")
	defer c.Logger.Debug("stopped")

	ch := c.Publisher.Subscribe()
	defer c.Publisher.Unsubscribe(ch)

	for {
		select {
		case <-ctx.Done():
			return nil
		case report := <-ch:
			c.update(report)
		}
	}
}

func (c *Collector) update(report controller.Report) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.lastReport = &report
	if report.Action != controller.ActionSkipped {
		temperature := report.Temperature
		c.temperature = &temperature
	}
	if report.Action == controller.ActionApplied || report.Action == controller.ActionUnchanged {
		c.applied = &report
	}
	if c.counts == nil {
		c.counts = make(map[controller.Action]int)
	}
	c.counts[report.Action]++
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- roomTemperature
	ch <- activeRule
	ch <- acPower
	ch <- acTargetTemperature
	ch <- acSettings
	ch <- cycles
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	if c.lastReport == nil {
		return
	}
	if c.temperature != nil {
		ch <- prometheus.MustNewConstMetric(roomTemperature, prometheus.GaugeValue, *c.temperature)
	}
	ch <- prometheus.MustNewConstMetric(activeRule, prometheus.GaugeValue, float64(c.lastReport.RuleID))
	if c.applied != nil {
		c.collectAC(ch, *c.applied)
	}
	for action, count := range c.counts {
		ch <- prometheus.MustNewConstMetric(cycles, prometheus.CounterValue, float64(count), string(action))
	}
}

func (c *Collector) collectAC(ch chan<- prometheus.Metric, report controller.Report) {
	target := report.Target
	var power float64
	if target.Power {
		power = 1
	}
	ch <- prometheus.MustNewConstMetric(acPower, prometheus.GaugeValue, power)
	if !target.Power {
		return
	}
	ch <- prometheus.MustNewConstMetric(acTargetTemperature, prometheus.GaugeValue, float64(target.Temperature))
	ch <- prometheus.MustNewConstMetric(acSettings, prometheus.GaugeValue, 1,
		target.Mode.String(),
		target.FanSpeed.String(),
		target.VSwing.String(),
		target.HSwing.String(),
	)
}

