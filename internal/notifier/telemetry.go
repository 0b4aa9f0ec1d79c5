package notifier

import (
	"encoding/json"
	"log/slog"

	"github.com/acpilot/acpilot/internal/controller"
	"github.com/acpilot/acpilot/internal/mqttclient"
)

// TelemetryNotifier publishes every cycle's Report as JSON on an MQTT topic.
type TelemetryNotifier struct {
	Client mqttclient.Publisher
	Topic  string
	Logger *slog.Logger
}

var _ Notifier = TelemetryNotifier{}

func (t TelemetryNotifier) Notify(report controller.Report) {
	payload, err := json.Marshal(report)
	if err != nil {
		t.Logger.Error("failed to encode report", "err", err)
		return
	}
	if err = mqttclient.Wait(t.Client.Publish(t.Topic, 0, false, payload), mqttclient.DefaultTimeout); err != nil {
		t.Logger.Warn("failed to publish telemetry", "topic", t.Topic, "err", err)
	}
}
