package notifier_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/acpilot/acpilot/internal/controller"
	"github.com/acpilot/acpilot/internal/mqttclient/mqtttest"
	"github.com/acpilot/acpilot/internal/notifier"
	"github.com/acpilot/acpilot/internal/notifier/mocks"
	"github.com/acpilot/acpilot/internal/rules"
	"github.com/acpilot/acpilot/pkg/pubsub"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.DiscardHandler)

var appliedReport = controller.Report{
	Hour:        10,
	Temperature: 27,
	RuleID:      1,
	RuleName:    "Cool Day",
	Action:      controller.ActionApplied,
	Target:      rules.DefaultRules()[0].Target(),
	Changes:     []string{"fanSpeed", "power", "temperature"},
}

type message struct {
	Color string `json:"color"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

func attachments(t *testing.T, options ...slack.MsgOption) []message {
	t.Helper()
	_, values, err := slack.UnsafeApplyMsgOptions("token", "channel", "https://slack.com/api/", options...)
	require.NoError(t, err)
	var result []message
	require.NoError(t, json.Unmarshal([]byte(values.Get("attachments")), &result))
	return result
}

func TestSlackNotifier(t *testing.T) {
	failedReport := appliedReport
	failedReport.Action = controller.ActionFailed
	failedReport.Reason = "no ack"

	tests := []struct {
		name    string
		reports []controller.Report
		want    []message
	}{
		{
			name:    "applied",
			reports: []controller.Report{appliedReport},
			want: []message{{
				Color: "good",
				Title: "Cool Day: AC switched to cool to 27º, fan high",
				Text:  "temperature: 27.0ºC, changed: fanSpeed, power, temperature",
			}},
		},
		{
			name:    "repeated failures are posted once",
			reports: []controller.Report{failedReport, failedReport, appliedReport},
			want: []message{
				{
					Color: "danger",
					Title: "Cool Day: failed to switch AC to cool to 27º, fan high",
					Text:  "temperature: 27.0ºC, changed: fanSpeed, power, temperature, error: no ack",
				},
				{
					Color: "good",
					Title: "Cool Day: AC switched to cool to 27º, fan high",
					Text:  "temperature: 27.0ºC, changed: fanSpeed, power, temperature",
				},
			},
		},
		{
			name: "other actions are ignored",
			reports: []controller.Report{
				{Action: controller.ActionUnchanged, RuleID: 1},
				{Action: controller.ActionSkipped, RuleID: controller.NoRule},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := mocks.NewSlackSender(t)
			var got []message
			if len(tt.want) > 0 {
				s.EXPECT().AuthTest().Return(&slack.AuthTestResponse{UserID: "U1"}, nil).Once()
				s.EXPECT().GetConversations(mock.Anything).Return([]slack.Channel{
					{GroupConversation: slack.GroupConversation{Conversation: slack.Conversation{ID: "C1"}, Name: "ac"}, IsMember: true},
					{GroupConversation: slack.GroupConversation{Conversation: slack.Conversation{ID: "C2"}, Name: "general"}, IsMember: false},
				}, "", nil)
				s.EXPECT().PostMessage("C1", mock.Anything).RunAndReturn(func(_ string, options ...slack.MsgOption) (string, string, error) {
					got = append(got, attachments(t, options...)...)
					return "", "", nil
				})
			}

			n := notifier.SlackNotifier{Logger: discardLogger, SlackSender: s}
			for _, report := range tt.reports {
				n.Notify(report)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlackNotifier_ChannelFailure(t *testing.T) {
	s := mocks.NewSlackSender(t)
	s.EXPECT().AuthTest().Return(nil, errors.New("invalid_auth")).Once()

	n := notifier.SlackNotifier{Logger: discardLogger, SlackSender: s}
	n.Notify(appliedReport)
}

func TestTelemetryNotifier(t *testing.T) {
	c := mqtttest.NewClient()
	n := notifier.TelemetryNotifier{Client: c, Topic: "acpilot/cycles", Logger: discardLogger}

	n.Notify(controller.Report{Action: controller.ActionSkipped, RuleID: controller.NoRule, Reason: "sensor offline"})
	n.Notify(appliedReport)

	payloads := c.Payloads("acpilot/cycles")
	require.Len(t, payloads, 2)
	var report controller.Report
	require.NoError(t, json.Unmarshal([]byte(payloads[1]), &report))
	assert.Equal(t, appliedReport.Target, report.Target)
	assert.Equal(t, controller.ActionApplied, report.Action)

	// publish failures are logged, not returned
	c.PublishErr = errors.New("fail")
	n.Notify(appliedReport)
}

type recorder struct {
	reports chan controller.Report
}

func (r recorder) Notify(report controller.Report) {
	r.reports <- report
}

func TestForwarder(t *testing.T) {
	p := pubsub.New[controller.Report](discardLogger)
	r := recorder{reports: make(chan controller.Report, 1)}
	f := notifier.Forwarder{Publisher: p, Notifier: notifier.Notifiers{notifier.SLogNotifier{Logger: discardLogger}, r}, Logger: discardLogger}

	go func() { _ = f.Run(t.Context()) }()
	require.Eventually(t, func() bool { return p.Subscribers() == 1 }, time.Second, 10*time.Millisecond)

	p.Publish(appliedReport)
	assert.Equal(t, appliedReport, <-r.reports)
}
