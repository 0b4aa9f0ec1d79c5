package bot

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/acpilot/acpilot/internal/controller"
	"github.com/acpilot/acpilot/internal/rules"
	"github.com/clambin/go-common/slackbot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSlackBot struct {
	commands slackbot.Commands
}

func (f *fakeSlackBot) Add(commands slackbot.Commands) {
	if f.commands == nil {
		f.commands = make(slackbot.Commands)
	}
	for name, command := range commands {
		f.commands[name] = command
	}
}

type fakeRules struct {
	rules []rules.Rule
	err   error
}

func (f fakeRules) List(_ context.Context) ([]rules.Rule, error) {
	return f.rules, f.err
}

type fakeController struct {
	report    *controller.Report
	force     bool
	refreshed int
}

func (f *fakeController) LastReport() (controller.Report, bool) {
	if f.report == nil {
		return controller.Report{}, false
	}
	return *f.report, true
}
func (f *fakeController) AC() rules.ACConfig { return rules.DefaultRules()[1].Target() }
func (f *fakeController) SetForce(force bool) { f.force = force }
func (f *fakeController) Force() bool         { return f.force }
func (f *fakeController) Refresh()            { f.refreshed++ }

var discardLogger = slog.New(slog.DiscardHandler)

func TestNew(t *testing.T) {
	var s fakeSlackBot
	_ = New(&s, fakeRules{}, &fakeController{}, discardLogger)
	assert.Len(t, s.commands, 4)
	for _, name := range []string{"rules", "status", "force", "refresh"} {
		assert.Contains(t, s.commands, name)
	}
}

func TestBot_ReportRules(t *testing.T) {
	disabled := rules.DefaultTemplate()
	disabled.ID = 4
	disabled.Enabled = false

	tests := []struct {
		name  string
		rules fakeRules
		want  string
	}{
		{
			name:  "defaults",
			rules: fakeRules{rules: append(rules.DefaultRules(), disabled)},
			want: "1. Cool Day: 8:00-19:00, ≥26.0º → cool to 27º, fan high\n" +
				"2. Cool Night: 19:00-8:00, ≥26.0º → cool to 28º, fan low\n" +
				"3. Turn Off When Cool: any time, ≤25.9º → off\n" +
				"4. New Rule: any time → cool to 24º, fan auto (disabled)",
		},
		{
			name: "empty",
			want: "no rules configured",
		},
		{
			name:  "failure",
			rules: fakeRules{err: errors.New("timeout")},
			want:  "failed to read rules: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := New(&fakeSlackBot{}, tt.rules, &fakeController{}, discardLogger)
			attachments := b.ReportRules(t.Context())
			require.Len(t, attachments, 1)
			assert.Equal(t, tt.want, attachments[0].Text)
		})
	}
}

func TestBot_ReportStatus(t *testing.T) {
	c := fakeController{}
	b := New(&fakeSlackBot{}, fakeRules{}, &c, discardLogger)

	attachments := b.ReportStatus(t.Context())
	require.Len(t, attachments, 1)
	assert.Equal(t, "no update yet. try again later", attachments[0].Text)

	c.report = &controller.Report{Temperature: 27, RuleID: 2, RuleName: "Cool Night", Action: controller.ActionUnchanged}
	c.force = true
	attachments = b.ReportStatus(t.Context())
	require.Len(t, attachments, 1)
	assert.Equal(t, "AC: cool to 28º, fan low\ntemperature: 27.0ºC\nactive rule: 2. Cool Night\nforce transmit: on", attachments[0].Text)

	c.report = &controller.Report{RuleID: controller.NoRule, Action: controller.ActionSkipped, Reason: "sensor offline"}
	c.force = false
	attachments = b.ReportStatus(t.Context())
	assert.Equal(t, "AC: cool to 28º, fan low\ntemperature: unknown (sensor offline)\nactive rule: none", attachments[0].Text)
}

func TestBot_SetForce(t *testing.T) {
	c := fakeController{}
	b := New(&fakeSlackBot{}, fakeRules{}, &c, discardLogger)

	assert.Equal(t, "force transmit enabled", b.SetForce(t.Context())[0].Text)
	assert.True(t, c.force)
	assert.Equal(t, 1, c.refreshed)

	assert.Equal(t, "force transmit disabled", b.SetForce(t.Context(), "off")[0].Text)
	assert.False(t, c.force)

	assert.Equal(t, "force transmit enabled", b.SetForce(t.Context(), "on")[0].Text)
	assert.Equal(t, "usage: force [on|off]", b.SetForce(t.Context(), "maybe")[0].Text)
	assert.True(t, c.force)

	assert.Equal(t, "refreshing", b.DoRefresh(t.Context())[0].Text)
	assert.Equal(t, 3, c.refreshed)
}
