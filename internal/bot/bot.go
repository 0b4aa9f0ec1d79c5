// Package bot implements Slack commands to inspect and steer the control loop.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/acpilot/acpilot/internal/controller"
	"github.com/acpilot/acpilot/internal/rules"
	"github.com/clambin/go-common/slackbot"
	"github.com/slack-go/slack"
)

type SlackBot interface {
	Add(commands slackbot.Commands)
}

type RuleLister interface {
	List(ctx context.Context) ([]rules.Rule, error)
}

type Controller interface {
	LastReport() (controller.Report, bool)
	AC() rules.ACConfig
	SetForce(bool)
	Force() bool
	Refresh()
}

type Bot struct {
	rules      RuleLister
	controller Controller
	logger     *slog.Logger
}

func New(b SlackBot, r RuleLister, c Controller, logger *slog.Logger) *Bot {
	bot := Bot{
		rules:      r,
		controller: c,
		logger:     logger,
	}
	b.Add(slackbot.Commands{
		"rules":   slackbot.HandlerFunc(bot.ReportRules),
		"status":  slackbot.HandlerFunc(bot.ReportStatus),
		"force":   slackbot.HandlerFunc(bot.SetForce),
		"refresh": slackbot.HandlerFunc(bot.DoRefresh),
	})
	return &bot
}

func (b *Bot) ReportRules(ctx context.Context, _ ...string) []slack.Attachment {
	list, err := b.rules.List(ctx)
	if err != nil {
		return []slack.Attachment{{Color: "bad", Text: "failed to read rules: " + err.Error()}}
	}
	if len(list) == 0 {
		return []slack.Attachment{{Color: "good", Text: "no rules configured"}}
	}

	lines := make([]string, 0, len(list))
	for _, r := range list {
		line := fmt.Sprintf("%d. %s: %s → %s", r.ID, r.Name, r.Description(), r.Target().String())
		if !r.Enabled {
			line += " (disabled)"
		}
		lines = append(lines, line)
	}
	return []slack.Attachment{{
		Color: "good",
		Title: "rules:",
		Text:  strings.Join(lines, "\n"),
	}}
}

func (b *Bot) ReportStatus(_ context.Context, _ ...string) []slack.Attachment {
	report, ok := b.controller.LastReport()
	if !ok {
		return []slack.Attachment{{Color: "bad", Text: "no update yet. try again later"}}
	}

	lines := []string{"AC: " + b.controller.AC().String()}
	if report.Action == controller.ActionSkipped {
		lines = append(lines, "temperature: unknown ("+report.Reason+")")
	} else {
		lines = append(lines, fmt.Sprintf("temperature: %.1fºC", report.Temperature))
	}
	if report.Matched() {
		lines = append(lines, fmt.Sprintf("active rule: %d. %s", report.RuleID, report.RuleName))
	} else {
		lines = append(lines, "active rule: none")
	}
	if b.controller.Force() {
		lines = append(lines, "force transmit: on")
	}
	return []slack.Attachment{{
		Color: "good",
		Title: "status:",
		Text:  strings.Join(lines, "\n"),
	}}
}

func (b *Bot) SetForce(_ context.Context, args ...string) []slack.Attachment {
	force := !b.controller.Force()
	if len(args) > 0 {
		switch args[0] {
		case "on":
			force = true
		case "off":
			force = false
		default:
			return []slack.Attachment{{Color: "bad", Text: "usage: force [on|off]"}}
		}
	}
	b.controller.SetForce(force)
	b.logger.Info("force transmit updated", "enabled", force)
	if force {
		b.controller.Refresh()
		return []slack.Attachment{{Color: "good", Text: "force transmit enabled"}}
	}
	return []slack.Attachment{{Color: "good", Text: "force transmit disabled"}}
}

func (b *Bot) DoRefresh(_ context.Context, _ ...string) []slack.Attachment {
	b.controller.Refresh()
	return []slack.Attachment{{Color: "good", Text: "refreshing"}}
}
