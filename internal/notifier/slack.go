package notifier

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/acpilot/acpilot/internal/controller"
	"github.com/slack-go/slack"
)

// SlackNotifier posts AC changes to all Slack channels the bot is a member of.
// Failures are only posted once until a transmission succeeds again.
type SlackNotifier struct {
	Logger *slog.Logger
	SlackSender
	lock       sync.Mutex
	userID     string
	lastFailed bool
}

type SlackSender interface {
	PostMessage(string, ...slack.MsgOption) (string, string, error)
	GetConversations(*slack.GetConversationsParameters) ([]slack.Channel, string, error)
	AuthTest() (*slack.AuthTestResponse, error)
}

var _ Notifier = &SlackNotifier{}

func (s *SlackNotifier) Notify(report controller.Report) {
	var color string
	switch report.Action {
	case controller.ActionApplied:
		color = "good"
		s.setFailed(false)
	case controller.ActionFailed:
		if s.setFailed(true) {
			return
		}
		color = "danger"
	default:
		return
	}

	channels, err := s.getChannels()
	if err != nil {
		s.Logger.Error("notifier failed to retrieve channels", "err", err)
		return
	}
	for _, channel := range channels {
		s.Logger.Debug("notifying on slack", "channel", channel.Name)
		_, _, err = s.SlackSender.PostMessage(channel.ID, slack.MsgOptionAttachments(slack.Attachment{
			Color: color,
			Title: buildMessage(report),
			Text:  buildDetails(report),
		}))
		if err != nil {
			s.Logger.Error("notifier failed to post message", "err", err)
		}
	}
}

// setFailed records whether the last transmission failed and returns the previous value.
func (s *SlackNotifier) setFailed(failed bool) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	previous := s.lastFailed
	s.lastFailed = failed
	return previous
}

func (s *SlackNotifier) getChannels() ([]slack.Channel, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.userID == "" {
		authResp, err := s.SlackSender.AuthTest()
		if err != nil {
			return nil, fmt.Errorf("AuthTest: %w", err)
		}
		s.userID = authResp.UserID
	}

	var joinedChannels []slack.Channel
	var cursor string
	for {
		channels, nextCursor, err := s.SlackSender.GetConversations(&slack.GetConversationsParameters{Cursor: cursor, Limit: 100})
		if err != nil {
			return nil, err
		}
		for _, channel := range channels {
			if channel.IsMember && !channel.IsArchived {
				joinedChannels = append(joinedChannels, channel)
			}
		}
		if cursor = nextCursor; cursor == "" {
			break
		}
	}
	return joinedChannels, nil
}
