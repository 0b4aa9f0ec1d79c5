// Package controller runs the control loop: every interval it reads the temperature, selects the active rule and,
// if the AC needs to change, transmits the rule's target configuration.
package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/acpilot/acpilot/internal/rules"
	"github.com/acpilot/acpilot/internal/sensor"
	"github.com/acpilot/acpilot/internal/tracker"
	"github.com/acpilot/acpilot/internal/transport"
	"github.com/acpilot/acpilot/pkg/pubsub"
)

const (
	DefaultInterval    = 10 * time.Second
	DefaultLockTimeout = time.Second
)

var errInvalidReading = errors.New("invalid temperature reading")

// RuleSource provides a consistent copy of the current rules.
type RuleSource interface {
	Snapshot(ctx context.Context) ([]rules.Rule, error)
}

type Configuration struct {
	Interval time.Duration
	// LockTimeout bounds how long a cycle waits for the rules. If the rules are locked for longer, the cycle is skipped.
	LockTimeout time.Duration
	// Force transmits the target configuration on every cycle, even if the AC already runs it.
	Force    bool
	Location *time.Location
}

// A Controller runs the control loop. It publishes a Report after each cycle.
type Controller struct {
	*pubsub.Publisher[Report]
	rules       RuleSource
	sensor      sensor.Sensor
	transport   transport.Transport
	tracker     *tracker.Tracker
	interval    time.Duration
	lockTimeout time.Duration
	location    *time.Location
	logger      *slog.Logger
	now         func() time.Time
	force       atomic.Bool
	refresh     chan struct{}
	cycleLock   sync.Mutex
	lock        sync.RWMutex
	last        Report
	hasReport   bool
	activeRule  int
	activeName  string
	running     bool
	startedAt   time.Time
}

func New(cfg Configuration, ruleSource RuleSource, s sensor.Sensor, t transport.Transport, logger *slog.Logger) *Controller {
	c := Controller{
		Publisher:   pubsub.New[Report](logger.With(slog.String("component", "publisher"))),
		rules:       ruleSource,
		sensor:      s,
		transport:   t,
		tracker:     tracker.New(),
		interval:    orDefault(cfg.Interval, DefaultInterval),
		lockTimeout: orDefault(cfg.LockTimeout, DefaultLockTimeout),
		location:    cfg.Location,
		logger:      logger,
		now:         time.Now,
		refresh:     make(chan struct{}, 1),
		activeRule:  NoRule,
	}
	if c.location == nil {
		c.location = time.Local
	}
	c.force.Store(cfg.Force)
	return &c
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}

// Run executes a cycle immediately and then every interval, until the context is canceled.
func (c *Controller) Run(ctx context.Context) error {
	c.logger.Debug("controller starting", "interval", c.interval)
	defer c.logger.Debug("controller stopping")

	c.setRunning(true)
	defer c.setRunning(false)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		c.Cycle(ctx)
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		case <-c.refresh:
		}
	}
}

func (c *Controller) setRunning(running bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.running = running
	if running {
		c.startedAt = c.now()
	}
}

// Refresh requests an immediate cycle. It does not wait for the cycle to run.
func (c *Controller) Refresh() {
	select {
	case c.refresh <- struct{}{}:
	default:
	}
}

// Cycle runs one control cycle and publishes its Report. Only one cycle runs at a time.
func (c *Controller) Cycle(ctx context.Context) Report {
	c.cycleLock.Lock()
	defer c.cycleLock.Unlock()

	report := c.cycle(ctx)
	c.logger.Debug("cycle done", "report", report)

	c.lock.Lock()
	c.last = report
	c.hasReport = true
	if report.Action != ActionSkipped {
		c.activeRule, c.activeName = report.RuleID, report.RuleName
	}
	c.lock.Unlock()

	c.Publish(report)
	return report
}

func (c *Controller) cycle(ctx context.Context) Report {
	now := c.now().In(c.location)
	report := Report{Time: now, Hour: now.Hour(), RuleID: NoRule, Forced: c.force.Load()}

	// a skipped cycle leaves the AC as it was, so the previous rule remains active
	c.lock.RLock()
	activeRule, activeName := c.activeRule, c.activeName
	c.lock.RUnlock()

	temperature, err := c.sensor.ReadTemperature(ctx)
	if err == nil && !(rules.EvaluationContext{Temperature: temperature}).IsValid() {
		err = errInvalidReading
	}
	if err != nil {
		c.logger.Warn("failed to read temperature", "err", err)
		report.RuleID, report.RuleName = activeRule, activeName
		report.Action = ActionSkipped
		report.Reason = err.Error()
		return report
	}
	report.Temperature = temperature
	evalCtx := rules.EvaluationContext{Hour: report.Hour, Temperature: temperature}

	snapshotCtx, cancel := context.WithTimeout(ctx, c.lockTimeout)
	ruleSet, err := c.rules.Snapshot(snapshotCtx)
	cancel()
	if err != nil {
		c.logger.Warn("failed to read rules", "err", err)
		report.RuleID, report.RuleName = activeRule, activeName
		report.Action = ActionSkipped
		report.Reason = err.Error()
		return report
	}

	var target rules.ACConfig
	if rule, ok := rules.SelectActiveRule(evalCtx, ruleSet); ok {
		report.RuleID = rule.ID
		report.RuleName = rule.Name
		target = rule.Target()
		if !report.Forced && !c.tracker.HasChanged(target) {
			c.logger.Debug("no change", "rule", rule.ID, "context", evalCtx)
			report.Action = ActionUnchanged
			report.Target = target
			return report
		}
	} else {
		c.logger.Debug("no rule matches", "context", evalCtx)
		current := c.tracker.Current()
		if !report.Forced && !current.Power {
			report.Action = ActionUnchanged
			report.Target = current
			return report
		}
		target = rules.OffConfig
	}

	report.Target = target
	report.Changes = c.tracker.Diff(target).List()
	slices.Sort(report.Changes)

	if err = c.transmit(ctx, target); err != nil {
		c.logger.Error("failed to transmit AC configuration", "config", target, "err", err)
		report.Action = ActionFailed
		report.Reason = err.Error()
		return report
	}
	c.tracker.Commit(target)
	report.Action = ActionApplied
	return report
}

func (c *Controller) transmit(ctx context.Context, target rules.ACConfig) error {
	if err := c.transport.Configure(target); err != nil {
		return fmt.Errorf("configure: %w", err)
	}
	if err := c.transport.Transmit(ctx); err != nil {
		return fmt.Errorf("transmit: %w", err)
	}
	return nil
}

// SetForce sets the force-transmit flag. While set, every cycle transmits its target configuration.
func (c *Controller) SetForce(force bool) {
	c.force.Store(force)
}

func (c *Controller) Force() bool {
	return c.force.Load()
}

// ActiveRuleID returns the ID of the rule that matched during the last cycle that evaluated the rules, or NoRule.
// Skipped cycles don't change the active rule.
func (c *Controller) ActiveRuleID() int {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.activeRule
}

// LastReport returns the Report of the last cycle. It returns false if no cycle has run yet.
func (c *Controller) LastReport() (Report, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.last, c.hasReport
}

// AC returns the configuration last transmitted to the AC.
func (c *Controller) AC() rules.ACConfig {
	return c.tracker.Current()
}

// Status describes the state of the control loop.
type Status struct {
	Running    bool           `json:"running"`
	StartedAt  *time.Time     `json:"startedAt,omitempty"`
	Interval   string         `json:"interval"`
	Force      bool           `json:"force"`
	AC         rules.ACConfig `json:"acState"`
	LastReport *Report        `json:"lastReport,omitempty"`
}

func (c *Controller) Status() Status {
	c.lock.RLock()
	defer c.lock.RUnlock()
	status := Status{
		Running:  c.running,
		Interval: c.interval.String(),
		Force:    c.force.Load(),
		AC:       c.tracker.Current(),
	}
	if c.running {
		startedAt := c.startedAt
		status.StartedAt = &startedAt
	}
	if c.hasReport {
		report := c.last
		status.LastReport = &report
	}
	return status
}
