// Package notifier informs the user about the outcome of control cycles.
package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/acpilot/acpilot/internal/controller"
)

type Notifier interface {
	Notify(controller.Report)
}

type Notifiers []Notifier

func (n Notifiers) Notify(report controller.Report) {
	for _, l := range n {
		l.Notify(report)
	}
}

type Publisher[T any] interface {
	Subscribe() chan T
	Unsubscribe(chan T)
}

// Forwarder receives the Controller's reports and passes them to a Notifier.
type Forwarder struct {
	Publisher[controller.Report]
	Notifier
	Logger *slog.Logger
}

func (f Forwarder) Run(ctx context.Context) error {
	f.Logger.Debug("started")
	defer f.Logger.Debug("stopped")

	ch := f.Publisher.Subscribe()
	defer f.Publisher.Unsubscribe(ch)

	for {
		select {
		case <-ctx.Done():
			return nil
		case report := <-ch:
			f.Notifier.Notify(report)
		}
	}
}

func buildMessage(report controller.Report) string {
	var source string
	if report.Matched() {
		source = report.RuleName
	} else {
		source = "no rule active"
	}
	if report.Action == controller.ActionFailed {
		return fmt.Sprintf("%s: failed to switch AC to %s", source, report.Target)
	}
	return fmt.Sprintf("%s: AC switched to %s", source, report.Target)
}

func buildDetails(report controller.Report) string {
	details := fmt.Sprintf("temperature: %.1fºC", report.Temperature)
	if len(report.Changes) > 0 {
		details += ", changed: " + strings.Join(report.Changes, ", ")
	}
	if report.Reason != "" {
		details += ", error: " + report.Reason
	}
	return details
}
