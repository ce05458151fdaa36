package membership

import (
	"errors"
	"net/http"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
	"github.com/gatewarden/gatewarden/internal/gate"
	"go.uber.org/zap"
)

// Sender is the subset of the Discord REST client the notifier uses. It is
// satisfied by rest.Rest and by fakes in tests.
type Sender interface {
	CreateMessage(channelID snowflake.ID, message discord.MessageCreate, opts ...rest.RequestOpt) (*discord.Message, error)
	CreateDMChannel(userID snowflake.ID, opts ...rest.RequestOpt) (*discord.DMChannel, error)
}

// Notifier delivers best-effort notifications to the administrator channel and
// to members. Sends are fire-and-forget: every outcome is reported as a
// gate.DeliveryResult and never as an error, so a failed send can not crash an
// event handler. No retries are attempted.
type Notifier struct {
	sender       Sender
	logChannelID snowflake.ID
	logger       *zap.Logger
}

// NewNotifier creates a Notifier posting admin notices to logChannelID.
func NewNotifier(sender Sender, logChannelID snowflake.ID, logger *zap.Logger) *Notifier {
	return &Notifier{
		sender:       sender,
		logChannelID: logChannelID,
		logger:       logger.Named("notifier"),
	}
}

// NotifyAdmins posts a message to the administrator channel. A missing or
// unreachable channel degrades silently.
func (n *Notifier) NotifyAdmins(message string) gate.DeliveryResult {
	if n.logChannelID == 0 {
		return gate.DeliverySkipped
	}

	_, err := n.sender.CreateMessage(n.logChannelID, discord.NewMessageCreateBuilder().
		SetContent(message).
		Build())
	if err != nil {
		n.logger.Warn("Failed to send admin notification",
			zap.Uint64("channel_id", uint64(n.logChannelID)),
			zap.Error(err))
		return gate.DeliveryFailed
	}

	return gate.DeliverySent
}

// DM attempts a direct message to a member. When delivery fails for any
// reason, exactly one fallback notice is posted to the administrator channel
// and the failure is reported through the result, never as an error.
func (n *Notifier) DM(userID snowflake.ID, mention string, message string) gate.DeliveryResult {
	result := n.sendDM(userID, message)
	if result != gate.DeliverySent {
		n.logger.Debug("DM undeliverable, notifying admins",
			zap.Uint64("user_id", uint64(userID)),
			zap.String("result", result.String()))
		n.NotifyAdmins(gate.DMFallbackNotice(mention))
	}

	return result
}

func (n *Notifier) sendDM(userID snowflake.ID, message string) gate.DeliveryResult {
	channel, err := n.sender.CreateDMChannel(userID)
	if err != nil {
		return classifyDMError(err)
	}

	_, err = n.sender.CreateMessage(channel.ID(), discord.NewMessageCreateBuilder().
		SetContent(message).
		Build())
	if err != nil {
		return classifyDMError(err)
	}

	return gate.DeliverySent
}

// classifyDMError separates "recipient blocks DMs" from other send failures.
// Discord rejects DMs to members with closed DMs with a 403.
func classifyDMError(err error) gate.DeliveryResult {
	var restErr *rest.Error
	if errors.As(err, &restErr) && restErr.Response != nil && restErr.Response.StatusCode == http.StatusForbidden {
		return gate.DeliveryBlocked
	}

	return gate.DeliveryFailed
}
