// Package membership implements the bot-facing side of the gating workflow:
// the join classifier, the approval command, and the pending review listing.
// The decisions themselves live in the gate package; this package executes
// their side effects against live guild state.
package membership

import (
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"
	"github.com/gatewarden/gatewarden/internal/bot/core/session"
	"github.com/gatewarden/gatewarden/internal/setup/config"
	"go.uber.org/zap"
)

// Handler processes member joins, the approve command, the pending listing,
// and its navigation buttons.
type Handler struct {
	roles    config.Roles
	notifier *Notifier
	sessions *session.Manager
	now      func() time.Time
	logger   *zap.Logger
}

// New creates a Handler. The clock is injected so classification and session
// deadlines are testable.
func New(
	roles config.Roles,
	notifier *Notifier,
	sessions *session.Manager,
	now func() time.Time,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		roles:    roles,
		notifier: notifier,
		sessions: sessions,
		now:      now,
		logger:   logger.Named("membership"),
	}
}

// authorized reports whether the invoking member may manage membership roles.
// Commands invoked outside a guild carry no member and are always rejected.
func (h *Handler) authorized(event *events.ApplicationCommandInteractionCreate) bool {
	member := event.Member()
	return member != nil && member.Permissions.Has(discord.PermissionManageRoles)
}

// respond replaces the deferred ephemeral reply with plain text content and
// returns the resulting message, or nil if the update failed.
func (h *Handler) respond(event *events.ApplicationCommandInteractionCreate, content string) *discord.Message {
	message, err := event.Client().Rest().UpdateInteractionResponse(
		event.ApplicationID(), event.Token(),
		discord.NewMessageUpdateBuilder().SetContent(content).Build(),
	)
	if err != nil {
		h.logger.Error("Failed to update interaction response", zap.Error(err))
		return nil
	}

	return message
}

// guildRoles fetches the guild's role list at use time so role renames take
// effect immediately. A fetch failure degrades to "no roles resolvable".
func (h *Handler) guildRoles(client bot.Client, guildID snowflake.ID) []discord.Role {
	roles, err := client.Rest().GetRoles(guildID)
	if err != nil {
		h.logger.Warn("Failed to fetch guild roles",
			zap.Uint64("guild_id", uint64(guildID)),
			zap.Error(err))
		return nil
	}

	return roles
}
