package notifier

import (
	"log/slog"

	"github.com/acpilot/acpilot/internal/controller"
)

type SLogNotifier struct {
	Logger *slog.Logger
}

var _ Notifier = &SLogNotifier{}

func (s SLogNotifier) Notify(report controller.Report) {
	switch report.Action {
	case controller.ActionApplied:
		s.Logger.Info(buildMessage(report), "report", report)
	case controller.ActionFailed:
		s.Logger.Warn(buildMessage(report), "report", report)
	}
}
