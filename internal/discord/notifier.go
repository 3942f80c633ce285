// Package discord renders domain events into Discord webhook messages and
// delivers them through the retrying dispatcher.
package discord

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ItsCoreyE/creatorsite/internal/models"
	"github.com/ItsCoreyE/creatorsite/pkg/httpclient"
)

// Dispatcher is the outbound HTTP dependency, satisfied by httpclient.Client.
type Dispatcher interface {
	Do(method, url string, header http.Header, body []byte, opts httpclient.Options) (*httpclient.Response, error)
}

// Config holds webhook targets and presentation settings.
type Config struct {
	MilestoneWebhookURL string
	StatsWebhookURL     string
	MilestoneRoleID     string
	StatsRoleID         string
	EnableMentions      bool
	CreatorUserID       string
	CreatorName         string
}

// Notifier posts milestone and stats announcements to Discord webhooks.
// Delivery is best effort: a failure is reported to the caller but is never
// allowed to abort the admin operation that triggered it.
type Notifier struct {
	dispatcher      Dispatcher
	logger          *slog.Logger
	milestoneURL    string
	statsURL        string
	milestoneRoleID string
	statsRoleID     string
	enableMentions  bool
	creatorUserID   string
	creatorName     string
}

// NewNotifier creates a Notifier.
func NewNotifier(dispatcher Dispatcher, cfg Config, logger *slog.Logger) *Notifier {
	return &Notifier{
		dispatcher:      dispatcher,
		logger:          logger,
		milestoneURL:    cfg.MilestoneWebhookURL,
		statsURL:        cfg.StatsWebhookURL,
		milestoneRoleID: cfg.MilestoneRoleID,
		statsRoleID:     cfg.StatsRoleID,
		enableMentions:  cfg.EnableMentions,
		creatorUserID:   cfg.CreatorUserID,
		creatorName:     cfg.CreatorName,
	}
}

// webhookDispatchOptions are the delivery parameters for webhook posts:
// more patient than the defaults because announcements are not latency
// sensitive but should survive a transient Discord hiccup.
func webhookDispatchOptions() httpclient.Options {
	return httpclient.Options{
		Timeout:    10 * time.Second,
		Retries:    2,
		RetryDelay: 500 * time.Millisecond,
	}
}

// SendMilestone announces a completed milestone.
func (n *Notifier) SendMilestone(milestone models.Milestone, progress models.MilestoneProgress) error {
	if n.milestoneURL == "" {
		return fmt.Errorf("milestone webhook: %w", models.ErrNotConfigured)
	}
	msg := n.BuildMilestoneMessage(milestone, progress)
	if err := n.post(n.milestoneURL, msg); err != nil {
		return err
	}
	n.logger.Info("milestone notification sent",
		slog.String("milestone_id", milestone.ID),
		slog.String("category", milestone.Category))
	return nil
}

// SendStats announces an uploaded stats document.
func (n *Notifier) SendStats(stats models.SalesStats) error {
	if n.statsURL == "" {
		return fmt.Errorf("stats webhook: %w", models.ErrNotConfigured)
	}
	msg := n.BuildStatsMessage(stats)
	if err := n.post(n.statsURL, msg); err != nil {
		return err
	}
	n.logger.Info("stats notification sent",
		slog.String("period", stats.DataPeriod))
	return nil
}

// post marshals and delivers one message, translating any failure into a
// DeliveryError for the caller's error taxonomy.
func (n *Notifier) post(url string, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: encode payload: %v", models.ErrDeliveryFailed, err)
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")

	resp, err := n.dispatcher.Do(http.MethodPost, url, header, body, webhookDispatchOptions())
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrDeliveryFailed, err)
	}
	if !resp.OK() {
		return fmt.Errorf("%w: discord responded %d", models.ErrDeliveryFailed, resp.StatusCode)
	}
	return nil
}

// applyMention prefixes a role ping when mentions are enabled and restricts
// allowed_mentions to exactly that role.
func (n *Notifier) applyMention(msg *Message, roleID string) {
	if !n.enableMentions || roleID == "" {
		msg.AllowedMentions = &AllowedMentions{Parse: []string{}}
		return
	}
	msg.Content = fmt.Sprintf("<@&%s> %s", roleID, msg.Content)
	msg.AllowedMentions = &AllowedMentions{
		Parse: []string{},
		Roles: []string{roleID},
	}
}
